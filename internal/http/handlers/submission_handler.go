// Submission HTTP handlers.
//
//   - POST /evaluations/{id}/submissions  (finish; optional Idempotency-Key)
//   - GET  /submissions/mine
//   - GET  /submissions/{id}/report.pdf
package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/evalai/evalai-backend/internal/export"
	"github.com/evalai/evalai-backend/internal/http/middleware"
	"github.com/evalai/evalai-backend/internal/services"
)

// SubmitRequest is the payload for finishing an evaluation.
type SubmitRequest struct {
	// Answers holds one selected option index (0-4) per question.
	Answers []int `json:"answers" binding:"required"`
}

// Submit godoc
// @ID          submitEvaluation
// @Summary     Finish an evaluation
// @Description Scores and stores the answer set. Repeating the request with the same Idempotency-Key returns the original submission.
// @Tags        Submissions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id               path    string  true   "Evaluation ID"
// @Param       Idempotency-Key  header  string  false  "Replay protection key"
// @Param       body             body    handlers.SubmitRequest  true  "Answer set"
// @Success     201  {object}  domain.Submission
// @Failure     400  {object}  handlers.ErrorResponse
// @Failure     404  {object}  handlers.ErrorResponse  "Evaluation not found"
// @Router      /evaluations/{id}/submissions [post]
func (h *Handlers) Submit(c *gin.Context) {
	u, found := h.requireUser(c)
	if !found {
		return
	}
	var req SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "answers are required")
		return
	}

	sub, err := h.subSvc.Submit(c.Request.Context(), u, c.Param("id"), req.Answers, middleware.IdempotencyKeyFrom(c))
	if err != nil {
		svcError(c, err)
		return
	}
	ok(c, http.StatusCreated, sub)
}

// MySubmissions godoc
// @ID          mySubmissions
// @Summary     List the current user's submissions
// @Tags        Submissions
// @Produce     json
// @Security    BearerAuth
// @Success     200  {array}   domain.Submission
// @Failure     401  {object}  handlers.ErrorResponse
// @Router      /submissions/mine [get]
func (h *Handlers) MySubmissions(c *gin.Context) {
	u, found := h.requireUser(c)
	if !found {
		return
	}
	subs, err := h.subSvc.ListForUser(c.Request.Context(), u.ID)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, err.Error())
		return
	}
	ok(c, http.StatusOK, subs)
}

// SubmissionReport godoc
// @ID          submissionReport
// @Summary     Download a submission result as PDF
// @Description Renders the per-question result document. Only the submission owner or the master admin may download it.
// @Tags        Submissions
// @Produce     application/pdf
// @Security    BearerAuth
// @Param       id  path  string  true  "Submission ID"
// @Success     200  {file}    file
// @Failure     403  {object}  handlers.ErrorResponse
// @Failure     404  {object}  handlers.ErrorResponse
// @Router      /submissions/{id}/report.pdf [get]
func (h *Handlers) SubmissionReport(c *gin.Context) {
	u, found := h.requireUser(c)
	if !found {
		return
	}

	sub, err := h.subSvc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		svcError(c, err)
		return
	}
	if sub.UserID != u.ID && u.ID != services.MasterUserID {
		fail(c, http.StatusForbidden, ErrCodeForbidden, "not your submission")
		return
	}

	ev, err := h.evalSvc.Get(c.Request.Context(), sub.EvaluationID)
	if err != nil {
		svcError(c, err)
		return
	}

	ownerName := h.resolveUserName(c, sub.UserID)
	data, err := export.SubmissionPDF(export.SubmissionReport{
		Evaluation: *ev,
		Submission: *sub,
		UserName:   ownerName,
		Passed:     services.Passed(sub.Score),
	})
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="resultado-%s.pdf"`, sub.ID))
	c.Data(http.StatusOK, "application/pdf", data)
}

// resolveUserName maps a user id to its display name, degrading to "N/A" for
// deleted accounts.
func (h *Handlers) resolveUserName(c *gin.Context, userID string) string {
	if userID == services.MasterUserID {
		return h.authSvc.MasterUser().Name
	}
	users, err := h.orgSvc.Users(c.Request.Context())
	if err == nil {
		for _, u := range users {
			if u.ID == userID {
				return u.Name
			}
		}
	}
	return "N/A"
}
