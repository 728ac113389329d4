// Organizational structure HTTP handlers (master only).
//
//   - GET/POST /companies, DELETE /companies/{id} (cascades to sectors+roles)
//   - GET/POST /sectors,   DELETE /sectors/{id}
//   - GET/POST /roles,     DELETE /roles/{id}
//   - GET/POST /users,     DELETE /users/{id}
package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/evalai/evalai-backend/internal/domain"
	"github.com/evalai/evalai-backend/internal/services"
)

// CreateNamedRequest is the payload for companies (name only).
type CreateNamedRequest struct {
	Name string `json:"name" binding:"required" example:"Acme Corp"`
}

// CreateScopedRequest is the payload for sectors and roles.
type CreateScopedRequest struct {
	CompanyID string `json:"companyId" binding:"required"`
	Name      string `json:"name" binding:"required" example:"Vendas"`
}

// CreateUserRequest is the payload for manager/employee accounts.
type CreateUserRequest struct {
	Name      string `json:"name" binding:"required"`
	Username  string `json:"username" binding:"required"`
	Password  string `json:"password" binding:"required"`
	Role      string `json:"role" binding:"required" example:"EMPLOYEE"`
	CompanyID string `json:"companyId"`
	SectorID  string `json:"sectorId"`
	RoleID    string `json:"roleId"`
}

// ListCompanies godoc
// @ID          listCompanies
// @Summary     List companies
// @Tags        Organization
// @Produce     json
// @Security    BearerAuth
// @Success     200  {array}   domain.Company
// @Failure     500  {object}  handlers.ErrorResponse
// @Router      /companies [get]
func (h *Handlers) ListCompanies(c *gin.Context) {
	items, err := h.orgSvc.Companies(c.Request.Context())
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, err.Error())
		return
	}
	ok(c, http.StatusOK, items)
}

// CreateCompany godoc
// @ID          createCompany
// @Summary     Create a company
// @Tags        Organization
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body  body  handlers.CreateNamedRequest  true  "Company"
// @Success     201  {object}  domain.Company
// @Failure     400  {object}  handlers.ErrorResponse
// @Router      /companies [post]
func (h *Handlers) CreateCompany(c *gin.Context) {
	var req CreateNamedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "name is required")
		return
	}
	company, err := h.orgSvc.CreateCompany(c.Request.Context(), req.Name)
	if err != nil {
		svcError(c, err)
		return
	}
	ok(c, http.StatusCreated, company)
}

// DeleteCompany godoc
// @ID          deleteCompany
// @Summary     Delete a company
// @Description Removes the company and its sectors and roles. Users and evaluations keep their references.
// @Tags        Organization
// @Produce     json
// @Security    BearerAuth
// @Param       id  path  string  true  "Company ID"
// @Success     204  {string}  string  "No Content"
// @Failure     404  {object}  handlers.ErrorResponse
// @Router      /companies/{id} [delete]
func (h *Handlers) DeleteCompany(c *gin.Context) {
	if err := h.orgSvc.DeleteCompany(c.Request.Context(), c.Param("id")); err != nil {
		svcError(c, err)
		return
	}
	noContent(c)
}

// ListSectors godoc
// @ID          listSectors
// @Summary     List sectors
// @Tags        Organization
// @Produce     json
// @Security    BearerAuth
// @Success     200  {array}   domain.Sector
// @Failure     500  {object}  handlers.ErrorResponse
// @Router      /sectors [get]
func (h *Handlers) ListSectors(c *gin.Context) {
	items, err := h.orgSvc.Sectors(c.Request.Context())
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, err.Error())
		return
	}
	ok(c, http.StatusOK, items)
}

// CreateSector godoc
// @ID          createSector
// @Summary     Create a sector
// @Tags        Organization
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body  body  handlers.CreateScopedRequest  true  "Sector"
// @Success     201  {object}  domain.Sector
// @Failure     400  {object}  handlers.ErrorResponse
// @Router      /sectors [post]
func (h *Handlers) CreateSector(c *gin.Context) {
	var req CreateScopedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "companyId and name are required")
		return
	}
	sector, err := h.orgSvc.CreateSector(c.Request.Context(), req.CompanyID, req.Name)
	if err != nil {
		svcError(c, err)
		return
	}
	ok(c, http.StatusCreated, sector)
}

// DeleteSector godoc
// @ID          deleteSector
// @Summary     Delete a sector
// @Tags        Organization
// @Produce     json
// @Security    BearerAuth
// @Param       id  path  string  true  "Sector ID"
// @Success     204  {string}  string  "No Content"
// @Router      /sectors/{id} [delete]
func (h *Handlers) DeleteSector(c *gin.Context) {
	if err := h.orgSvc.DeleteSector(c.Request.Context(), c.Param("id")); err != nil {
		svcError(c, err)
		return
	}
	noContent(c)
}

// ListRoles godoc
// @ID          listRoles
// @Summary     List job titles
// @Tags        Organization
// @Produce     json
// @Security    BearerAuth
// @Success     200  {array}   domain.Role
// @Failure     500  {object}  handlers.ErrorResponse
// @Router      /roles [get]
func (h *Handlers) ListRoles(c *gin.Context) {
	items, err := h.orgSvc.Roles(c.Request.Context())
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, err.Error())
		return
	}
	ok(c, http.StatusOK, items)
}

// CreateRole godoc
// @ID          createRole
// @Summary     Create a job title
// @Tags        Organization
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body  body  handlers.CreateScopedRequest  true  "Role"
// @Success     201  {object}  domain.Role
// @Failure     400  {object}  handlers.ErrorResponse
// @Router      /roles [post]
func (h *Handlers) CreateRole(c *gin.Context) {
	var req CreateScopedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "companyId and name are required")
		return
	}
	role, err := h.orgSvc.CreateRole(c.Request.Context(), req.CompanyID, req.Name)
	if err != nil {
		svcError(c, err)
		return
	}
	ok(c, http.StatusCreated, role)
}

// DeleteRole godoc
// @ID          deleteRole
// @Summary     Delete a job title
// @Tags        Organization
// @Produce     json
// @Security    BearerAuth
// @Param       id  path  string  true  "Role ID"
// @Success     204  {string}  string  "No Content"
// @Router      /roles/{id} [delete]
func (h *Handlers) DeleteRole(c *gin.Context) {
	if err := h.orgSvc.DeleteRole(c.Request.Context(), c.Param("id")); err != nil {
		svcError(c, err)
		return
	}
	noContent(c)
}

// ListUsers godoc
// @ID          listUsers
// @Summary     List user accounts
// @Description Returns every stored account with passwords stripped.
// @Tags        Organization
// @Produce     json
// @Security    BearerAuth
// @Success     200  {array}   domain.User
// @Failure     500  {object}  handlers.ErrorResponse
// @Router      /users [get]
func (h *Handlers) ListUsers(c *gin.Context) {
	users, err := h.orgSvc.Users(c.Request.Context())
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, err.Error())
		return
	}
	out := make([]domain.User, 0, len(users))
	for _, u := range users {
		out = append(out, sanitizeUser(u))
	}
	ok(c, http.StatusOK, out)
}

// CreateUser godoc
// @ID          createUser
// @Summary     Create a user account
// @Tags        Organization
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body  body  handlers.CreateUserRequest  true  "Account"
// @Success     201  {object}  domain.User
// @Failure     400  {object}  handlers.ErrorResponse
// @Router      /users [post]
func (h *Handlers) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "name, username, password and role are required")
		return
	}
	u, err := h.orgSvc.CreateUser(c.Request.Context(), services.NewUser{
		Name:      req.Name,
		Username:  req.Username,
		Password:  req.Password,
		Role:      domain.UserRole(strings.ToUpper(strings.TrimSpace(req.Role))),
		CompanyID: req.CompanyID,
		SectorID:  req.SectorID,
		RoleID:    req.RoleID,
	})
	if err != nil {
		svcError(c, err)
		return
	}
	ok(c, http.StatusCreated, sanitizeUser(*u))
}

// DeleteUser godoc
// @ID          deleteUser
// @Summary     Delete a user account
// @Tags        Organization
// @Produce     json
// @Security    BearerAuth
// @Param       id  path  string  true  "User ID"
// @Success     204  {string}  string  "No Content"
// @Failure     404  {object}  handlers.ErrorResponse
// @Router      /users/{id} [delete]
func (h *Handlers) DeleteUser(c *gin.Context) {
	if err := h.orgSvc.DeleteUser(c.Request.Context(), c.Param("id")); err != nil {
		svcError(c, err)
		return
	}
	noContent(c)
}
