// Authentication HTTP handlers.
//
//   - POST /auth/login   (credentials -> token + user)
//   - POST /auth/logout  (clear session record)
//   - GET  /auth/me      (current identity)
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/evalai/evalai-backend/internal/domain"
	"github.com/evalai/evalai-backend/internal/http/middleware"
)

// LoginRequest is the JSON payload for authentication.
type LoginRequest struct {
	Username string `json:"username" binding:"required" example:"ana.silva"`
	Password string `json:"password" binding:"required" example:"s3cret"`
}

// LoginResponse carries the bearer token and the authenticated user.
type LoginResponse struct {
	Token string      `json:"token"`
	User  domain.User `json:"user"`
}

// Login godoc
// @ID          login
// @Summary     Authenticate
// @Description Validates credentials and returns a bearer token plus the user record.
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body  body  handlers.LoginRequest  true  "Credentials"
// @Success     200  {object}  handlers.LoginResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     401  {object}  handlers.ErrorResponse  "Invalid credentials"
// @Router      /auth/login [post]
func (h *Handlers) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "username and password are required")
		return
	}

	u, err := h.authSvc.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		svcError(c, err)
		return
	}

	token, err := middleware.SignToken(h.jwtSecret, u.ID, u.Name, u.Role, h.tokenTTL)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeInternal, "could not issue token")
		return
	}

	ok(c, http.StatusOK, LoginResponse{Token: token, User: sanitizeUser(*u)})
}

// Logout godoc
// @ID          logout
// @Summary     Log out
// @Description Clears the stored session record. The bearer token itself simply expires.
// @Tags        Auth
// @Produce     json
// @Success     204  {string}  string  "No Content"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /auth/logout [post]
func (h *Handlers) Logout(c *gin.Context) {
	if err := h.authSvc.Logout(c.Request.Context()); err != nil {
		svcError(c, err)
		return
	}
	noContent(c)
}

// Me godoc
// @ID          me
// @Summary     Current identity
// @Description Returns the user record behind the presented token.
// @Tags        Auth
// @Produce     json
// @Success     200  {object}  domain.User
// @Failure     401  {object}  handlers.ErrorResponse  "Unauthorized"
// @Router      /auth/me [get]
func (h *Handlers) Me(c *gin.Context) {
	u, found := h.requireUser(c)
	if !found {
		return
	}
	ok(c, http.StatusOK, sanitizeUser(u))
}
