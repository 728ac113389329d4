// Evaluation HTTP handlers.
//
//   - POST   /evaluations/generate   (master: draft questions, nothing stored)
//   - POST   /evaluations            (master: publish a reviewed draft)
//   - GET    /evaluations            (master: full list, paginated)
//   - DELETE /evaluations/{id}       (master)
//   - GET    /evaluations/available  (current user: takeable evaluations)
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/evalai/evalai-backend/internal/domain"
	"github.com/evalai/evalai-backend/internal/services"
)

// GenerateRequest is the payload for drafting questions.
type GenerateRequest struct {
	Title           string        `json:"title" binding:"required"`
	Theme           string        `json:"theme" binding:"required"`
	KnowledgeItemID string        `json:"knowledgeItemId" binding:"required"`
	Count           int           `json:"count" binding:"required" example:"10"`
	Difficulty      string        `json:"difficulty" binding:"required" example:"Médio"`
	Target          domain.Target `json:"target"`
}

// PublishRequest is the payload for publishing a reviewed draft.
type PublishRequest struct {
	Title           string            `json:"title" binding:"required"`
	Theme           string            `json:"theme" binding:"required"`
	KnowledgeItemID string            `json:"knowledgeItemId"`
	Questions       []domain.Question `json:"questions" binding:"required"`
	Target          domain.Target     `json:"target"`
}

// ListEvaluationsResponse wraps a page of evaluations.
type ListEvaluationsResponse struct {
	Evaluations []domain.Evaluation `json:"evaluations"`
	Pagination  Pagination          `json:"pagination"`
}

// GenerateEvaluation godoc
// @ID          generateEvaluation
// @Summary     Draft evaluation questions
// @Description Generates a question set from a knowledge item. The draft is returned for review and is not persisted.
// @Tags        Evaluations
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body  body  handlers.GenerateRequest  true  "Generation parameters"
// @Success     200  {object}  services.Draft
// @Failure     400  {object}  handlers.ErrorResponse
// @Failure     404  {object}  handlers.ErrorResponse  "Knowledge item not found"
// @Failure     502  {object}  handlers.ErrorResponse  "Generation failed"
// @Router      /evaluations/generate [post]
func (h *Handlers) GenerateEvaluation(c *gin.Context) {
	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "title, theme, knowledgeItemId, count and difficulty are required")
		return
	}
	draft, err := h.evalSvc.GenerateDraft(c.Request.Context(), services.DraftRequest{
		Title:           req.Title,
		Theme:           req.Theme,
		KnowledgeItemID: req.KnowledgeItemID,
		Count:           req.Count,
		Difficulty:      req.Difficulty,
		Target:          req.Target,
	})
	if err != nil {
		svcError(c, err)
		return
	}
	ok(c, http.StatusOK, draft)
}

// PublishEvaluation godoc
// @ID          publishEvaluation
// @Summary     Publish an evaluation
// @Description Validates and stores a reviewed draft as a published evaluation.
// @Tags        Evaluations
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body  body  handlers.PublishRequest  true  "Reviewed draft"
// @Success     201  {object}  domain.Evaluation
// @Failure     400  {object}  handlers.ErrorResponse
// @Router      /evaluations [post]
func (h *Handlers) PublishEvaluation(c *gin.Context) {
	var req PublishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "title, theme and questions are required")
		return
	}
	ev, err := h.evalSvc.Publish(c.Request.Context(), services.Draft{
		Title:           req.Title,
		Theme:           req.Theme,
		KnowledgeItemID: req.KnowledgeItemID,
		Questions:       req.Questions,
		Target:          req.Target,
	})
	if err != nil {
		svcError(c, err)
		return
	}
	ok(c, http.StatusCreated, ev)
}

// ListEvaluations godoc
// @ID          listEvaluations
// @Summary     List evaluations (paginated)
// @Tags        Evaluations
// @Produce     json
// @Security    BearerAuth
// @Param       page       query  int  false  "Page number"     minimum(1) default(1)
// @Param       page_size  query  int  false  "Items per page"  minimum(1) maximum(100) default(20)
// @Success     200  {object}  handlers.ListEvaluationsResponse
// @Failure     500  {object}  handlers.ErrorResponse
// @Router      /evaluations [get]
func (h *Handlers) ListEvaluations(c *gin.Context) {
	items, err := h.evalSvc.List(c.Request.Context())
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, err.Error())
		return
	}
	page, pageSize := clampPagination(c)
	slice, meta := paginate(items, page, pageSize)
	ok(c, http.StatusOK, ListEvaluationsResponse{Evaluations: slice, Pagination: meta})
}

// DeleteEvaluation godoc
// @ID          deleteEvaluation
// @Summary     Delete an evaluation
// @Description Removes the evaluation. Existing submissions remain and render "N/A" for its title.
// @Tags        Evaluations
// @Produce     json
// @Security    BearerAuth
// @Param       id  path  string  true  "Evaluation ID"
// @Success     204  {string}  string  "No Content"
// @Failure     404  {object}  handlers.ErrorResponse
// @Router      /evaluations/{id} [delete]
func (h *Handlers) DeleteEvaluation(c *gin.Context) {
	if err := h.evalSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		svcError(c, err)
		return
	}
	noContent(c)
}

// AvailableEvaluations godoc
// @ID          availableEvaluations
// @Summary     Evaluations the current user can take
// @Description Published, not yet taken, and matching the user's target scope.
// @Tags        Evaluations
// @Produce     json
// @Security    BearerAuth
// @Success     200  {array}   domain.Evaluation
// @Failure     401  {object}  handlers.ErrorResponse
// @Router      /evaluations/available [get]
func (h *Handlers) AvailableEvaluations(c *gin.Context) {
	u, found := h.requireUser(c)
	if !found {
		return
	}
	items, err := h.evalSvc.Available(c.Request.Context(), u)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, err.Error())
		return
	}
	ok(c, http.StatusOK, items)
}
