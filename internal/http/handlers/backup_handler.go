// Backup HTTP handlers (master only).
//
//   - GET  /backup/export  (download the full record set as one JSON object)
//   - POST /backup/import  (verbatim overwrite from a previous export)
package handlers

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// maxBackupBytes caps an uploaded backup document.
const maxBackupBytes = 50 << 20 // 50 MiB

// ExportBackup godoc
// @ID          exportBackup
// @Summary     Export all data
// @Description Returns every stored collection (and the session record) as one JSON object.
// @Tags        Backup
// @Produce     json
// @Security    BearerAuth
// @Success     200  {object}  map[string]interface{}
// @Failure     500  {object}  handlers.ErrorResponse
// @Router      /backup/export [get]
func (h *Handlers) ExportBackup(c *gin.Context) {
	data, err := h.backup.ExportAll(c.Request.Context())
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}
	name := fmt.Sprintf("evalai-backup-%s.json", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename=%q`, name))
	c.Data(http.StatusOK, "application/json", data)
}

// ImportBackup godoc
// @ID          importBackup
// @Summary     Import a backup
// @Description Overwrites every key contained in the uploaded backup verbatim. No shape validation is performed.
// @Tags        Backup
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Success     204  {string}  string  "No Content"
// @Failure     400  {object}  handlers.ErrorResponse  "Unparseable backup"
// @Router      /backup/import [post]
func (h *Handlers) ImportBackup(c *gin.Context) {
	data, err := io.ReadAll(io.LimitReader(c.Request.Body, maxBackupBytes))
	if err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "could not read request body")
		return
	}
	if err := h.backup.ImportAll(c.Request.Context(), data); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeImportFailed, "backup is not a valid JSON object")
		return
	}
	noContent(c)
}
