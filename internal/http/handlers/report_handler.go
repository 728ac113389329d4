// Reporting HTTP handlers.
//
//   - GET /reports/overview  (master; ?evaluation_id narrows)
//   - GET /reports/sector    (manager; ?role_id&user_id narrow)
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ReportOverview godoc
// @ID          reportOverview
// @Summary     Master performance overview
// @Description Global statistics with a per-company breakdown. Selecting a single evaluation adds per-question accuracy.
// @Tags        Reports
// @Produce     json
// @Security    BearerAuth
// @Param       evaluation_id  query  string  false  "Evaluation ID or 'all'"
// @Success     200  {object}  services.Overview
// @Failure     500  {object}  handlers.ErrorResponse
// @Router      /reports/overview [get]
func (h *Handlers) ReportOverview(c *gin.Context) {
	out, err := h.reportSvc.Overview(c.Request.Context(), c.Query("evaluation_id"))
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}
	ok(c, http.StatusOK, out)
}

// ReportSector godoc
// @ID          reportSector
// @Summary     Manager's sector overview
// @Description Activity and averages for EMPLOYEE accounts in the manager's sector, optionally narrowed by role or user.
// @Tags        Reports
// @Produce     json
// @Security    BearerAuth
// @Param       role_id  query  string  false  "Role ID or 'all'"
// @Param       user_id  query  string  false  "User ID or 'all'"
// @Success     200  {object}  services.SectorOverview
// @Failure     401  {object}  handlers.ErrorResponse
// @Router      /reports/sector [get]
func (h *Handlers) ReportSector(c *gin.Context) {
	u, found := h.requireUser(c)
	if !found {
		return
	}
	out, err := h.reportSvc.SectorOverview(c.Request.Context(), u, c.Query("role_id"), c.Query("user_id"))
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}
	ok(c, http.StatusOK, out)
}
