// Knowledge base HTTP handlers (master only).
//
//   - GET    /knowledge        (list, newest first)
//   - POST   /knowledge        (multipart upload + text extraction)
//   - DELETE /knowledge/{id}
package handlers

import (
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/evalai/evalai-backend/internal/services"
)

// maxUploadBytes caps a reference document upload.
const maxUploadBytes = 20 << 20 // 20 MiB

// ListKnowledge godoc
// @ID          listKnowledge
// @Summary     List knowledge items
// @Tags        Knowledge
// @Produce     json
// @Security    BearerAuth
// @Success     200  {array}   domain.KnowledgeItem
// @Failure     500  {object}  handlers.ErrorResponse
// @Router      /knowledge [get]
func (h *Handlers) ListKnowledge(c *gin.Context) {
	items, err := h.knowSvc.List(c.Request.Context())
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, err.Error())
		return
	}
	ok(c, http.StatusOK, items)
}

// CreateKnowledge godoc
// @ID          createKnowledge
// @Summary     Upload a reference document
// @Description Accepts a multipart form with the document file plus metadata; text is extracted server-side.
// @Tags        Knowledge
// @Accept      multipart/form-data
// @Produce     json
// @Security    BearerAuth
// @Param       file        formData  file    true   "Document (.pdf, .docx, or plain text)"
// @Param       name        formData  string  true   "Display name"
// @Param       description formData  string  false  "Description"
// @Param       tags        formData  string  false  "Comma-separated tags"
// @Param       companyId   formData  string  false  "Owning company id (defaults to GLOBAL)"
// @Success     201  {object}  domain.KnowledgeItem
// @Failure     400  {object}  handlers.ErrorResponse
// @Failure     422  {object}  handlers.ErrorResponse  "Extraction failed"
// @Router      /knowledge [post]
func (h *Handlers) CreateKnowledge(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "a document file is required")
		return
	}
	if fileHeader.Size > maxUploadBytes {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "document exceeds the upload limit")
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "could not read uploaded file")
		return
	}
	defer f.Close()
	data, err := io.ReadAll(io.LimitReader(f, maxUploadBytes+1))
	if err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "could not read uploaded file")
		return
	}

	var tags []string
	if raw := c.PostForm("tags"); raw != "" {
		tags = strings.Split(raw, ",")
	}

	item, err := h.knowSvc.Create(c.Request.Context(), services.NewKnowledge{
		Name:        c.PostForm("name"),
		Description: c.PostForm("description"),
		Tags:        tags,
		CompanyID:   c.PostForm("companyId"),
		FileName:    fileHeader.Filename,
		Data:        data,
	})
	if err != nil {
		svcError(c, err)
		return
	}
	ok(c, http.StatusCreated, item)
}

// DeleteKnowledge godoc
// @ID          deleteKnowledge
// @Summary     Delete a knowledge item
// @Tags        Knowledge
// @Produce     json
// @Security    BearerAuth
// @Param       id  path  string  true  "Knowledge item ID"
// @Success     204  {string}  string  "No Content"
// @Failure     404  {object}  handlers.ErrorResponse
// @Router      /knowledge/{id} [delete]
func (h *Handlers) DeleteKnowledge(c *gin.Context) {
	if err := h.knowSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		svcError(c, err)
		return
	}
	noContent(c)
}
