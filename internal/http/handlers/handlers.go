// Handler wiring.
//
// Handlers are transport-thin: they validate input, call application services,
// and translate results (including service sentinel errors) into HTTP
// responses. Service dependencies are abstract interfaces so tests can inject
// fakes.
package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/evalai/evalai-backend/internal/domain"
	"github.com/evalai/evalai-backend/internal/http/middleware"
	"github.com/evalai/evalai-backend/internal/services"
	"github.com/evalai/evalai-backend/internal/utils"
)

//
// Service contracts (context-aware)
//

// AuthService validates credentials and maintains the session record.
type AuthService interface {
	Authenticate(ctx context.Context, username, password string) (*domain.User, error)
	Logout(ctx context.Context) error
	MasterUser() domain.User
}

// OrgService manages the organizational collections.
type OrgService interface {
	Companies(ctx context.Context) ([]domain.Company, error)
	CreateCompany(ctx context.Context, name string) (*domain.Company, error)
	DeleteCompany(ctx context.Context, id string) error
	Sectors(ctx context.Context) ([]domain.Sector, error)
	CreateSector(ctx context.Context, companyID, name string) (*domain.Sector, error)
	DeleteSector(ctx context.Context, id string) error
	Roles(ctx context.Context) ([]domain.Role, error)
	CreateRole(ctx context.Context, companyID, name string) (*domain.Role, error)
	DeleteRole(ctx context.Context, id string) error
	Users(ctx context.Context) ([]domain.User, error)
	CreateUser(ctx context.Context, in services.NewUser) (*domain.User, error)
	DeleteUser(ctx context.Context, id string) error
}

// KnowledgeService manages reference documents.
type KnowledgeService interface {
	Create(ctx context.Context, in services.NewKnowledge) (*domain.KnowledgeItem, error)
	List(ctx context.Context) ([]domain.KnowledgeItem, error)
	Delete(ctx context.Context, id string) error
}

// EvaluationService drives the draft/publish lifecycle and availability.
type EvaluationService interface {
	GenerateDraft(ctx context.Context, req services.DraftRequest) (*services.Draft, error)
	Publish(ctx context.Context, d services.Draft) (*domain.Evaluation, error)
	List(ctx context.Context) ([]domain.Evaluation, error)
	Get(ctx context.Context, id string) (*domain.Evaluation, error)
	Delete(ctx context.Context, id string) error
	Available(ctx context.Context, user domain.User) ([]domain.Evaluation, error)
}

// SubmissionService records and retrieves completed answer sets.
type SubmissionService interface {
	Submit(ctx context.Context, user domain.User, evaluationID string, answers []int, idemKey string) (*domain.Submission, error)
	Get(ctx context.Context, id string) (*domain.Submission, error)
	ListForUser(ctx context.Context, userID string) ([]domain.Submission, error)
}

// ReportService assembles the master and manager report views.
type ReportService interface {
	Overview(ctx context.Context, evaluationID string) (*services.Overview, error)
	SectorOverview(ctx context.Context, manager domain.User, roleID, userID string) (*services.SectorOverview, error)
}

// BackupStore exports and imports the raw record set.
type BackupStore interface {
	ExportAll(ctx context.Context) ([]byte, error)
	ImportAll(ctx context.Context, data []byte) error
}

//
// Handler wiring
//

// Handlers groups the HTTP endpoints of the API.
type Handlers struct {
	authSvc   AuthService
	orgSvc    OrgService
	knowSvc   KnowledgeService
	evalSvc   EvaluationService
	subSvc    SubmissionService
	reportSvc ReportService
	backup    BackupStore

	jwtSecret []byte
	tokenTTL  time.Duration
}

// New constructs a Handlers instance bound to the given services.
func New(
	authSvc AuthService,
	orgSvc OrgService,
	knowSvc KnowledgeService,
	evalSvc EvaluationService,
	subSvc SubmissionService,
	reportSvc ReportService,
	backup BackupStore,
	jwtSecret []byte,
	tokenTTL time.Duration,
) *Handlers {
	return &Handlers{
		authSvc:   authSvc,
		orgSvc:    orgSvc,
		knowSvc:   knowSvc,
		evalSvc:   evalSvc,
		subSvc:    subSvc,
		reportSvc: reportSvc,
		backup:    backup,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
	}
}

//
// Helpers
//

// currentUser reconstructs the acting user from the verified token claims.
// Organizational fields are resolved from the user collection when the caller
// is a stored user; the master identity is synthesized. A store failure is
// returned as an error, distinct from the account genuinely being gone.
func (h *Handlers) currentUser(c *gin.Context) (domain.User, bool, error) {
	claims := middleware.ClaimsFrom(c)
	if claims == nil {
		return domain.User{}, false, nil
	}
	if claims.UID == services.MasterUserID {
		return h.authSvc.MasterUser(), true, nil
	}
	users, err := h.orgSvc.Users(c.Request.Context())
	if err != nil {
		return domain.User{}, false, err
	}
	for _, u := range users {
		if u.ID == claims.UID {
			return u, true, nil
		}
	}
	// Account deleted while the token was still valid.
	return domain.User{}, false, nil
}

// requireUser resolves the acting user and writes the error response itself
// when it cannot: 500 when the store read failed, 401 when the account behind
// a still-valid token is gone.
func (h *Handlers) requireUser(c *gin.Context) (domain.User, bool) {
	u, found, err := h.currentUser(c)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeInternal, "could not load account")
		return domain.User{}, false
	}
	if !found {
		fail(c, http.StatusUnauthorized, ErrCodeUnauthorized, "account no longer exists")
		return domain.User{}, false
	}
	return u, true
}

// svcError maps a service error to the HTTP envelope.
func svcError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrValidation),
		errors.Is(err, services.ErrAnswerCount),
		errors.Is(err, services.ErrUnanswered),
		errors.Is(err, services.ErrNoQuestions),
		errors.Is(err, services.ErrBadQuestion):
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		fail(c, http.StatusUnauthorized, ErrCodeInvalidCredentials, "invalid username or password")
	case errors.Is(err, services.ErrCompanyNotFound),
		errors.Is(err, services.ErrUserNotFound),
		errors.Is(err, services.ErrKnowledgeNotFound),
		errors.Is(err, services.ErrEvaluationNotFound),
		errors.Is(err, services.ErrSubmissionNotFound):
		fail(c, http.StatusNotFound, ErrCodeNotFound, err.Error())
	case errors.Is(err, services.ErrGeneration):
		fail(c, http.StatusBadGateway, ErrCodeGenerationFailed, err.Error())
	case errors.Is(err, services.ErrExtraction):
		fail(c, http.StatusUnprocessableEntity, ErrCodeExtractionFailed, err.Error())
	default:
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
	}
}

// sanitizeUser strips the stored password before a user leaves the API.
func sanitizeUser(u domain.User) domain.User {
	u.Password = ""
	return u
}

// Pagination carries pagination metadata for list responses.
type Pagination struct {
	Page       int  `json:"page"`
	PageSize   int  `json:"page_size"`
	Total      int  `json:"total"`
	TotalPages int  `json:"total_pages"`
	HasNext    bool `json:"has_next"`
}

// clampPagination parses and bounds page and page_size query params.
func clampPagination(c *gin.Context) (page, pageSize int) {
	const (
		defaultPage     = 1
		defaultPageSize = 20
		maxPageSize     = 100
	)
	page = utils.AtoiDefault(c.Query("page"), defaultPage)
	if page < 1 {
		page = 1
	}
	pageSize = utils.AtoiDefault(c.Query("page_size"), defaultPageSize)
	if pageSize < 1 {
		pageSize = 1
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return
}

// paginate slices items for the requested page and fills the metadata.
func paginate[T any](items []T, page, pageSize int) ([]T, Pagination) {
	total := len(items)
	totalPages := (total + pageSize - 1) / pageSize
	start := (page - 1) * pageSize
	if start > total {
		start = total
	}
	end := start + pageSize
	if end > total {
		end = total
	}
	return items[start:end], Pagination{
		Page:       page,
		PageSize:   pageSize,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
	}
}
