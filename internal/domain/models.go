// Package domain defines the entities persisted by the record store:
// companies, sectors, roles, users, knowledge items, evaluations, and
// submissions. Collections are flat and denormalized; relationships are
// expressed only through foreign-key fields resolved by linear scans, and a
// dangling reference is a normal condition (rendered as "N/A"), never an
// error.
//
// JSON tags follow the original browser client's storage format (camelCase
// keys, Portuguese question fields), so exported backups and AI payloads stay
// compatible with data produced by earlier versions.
package domain

// UserRole classifies an account. MASTER_ADMIN is a single hardcoded identity
// that never appears in the user collection; MANAGER runs one sector;
// EMPLOYEE takes evaluations.
type UserRole string

const (
	RoleMasterAdmin UserRole = "MASTER_ADMIN"
	RoleManager     UserRole = "MANAGER"
	RoleEmployee    UserRole = "EMPLOYEE"
)

// CompanyGlobal is the sentinel company id marking a knowledge item as
// visible to every company.
const CompanyGlobal = "GLOBAL"

// Company is the root of an organizational tree.
type Company struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Sector is a department inside exactly one company.
type Sector struct {
	ID        string `json:"id"`
	CompanyID string `json:"companyId"`
	Name      string `json:"name"`
}

// Role is a job title inside exactly one company.
type Role struct {
	ID        string `json:"id"`
	CompanyID string `json:"companyId"`
	Name      string `json:"name"`
}

// User is an account stored in the user collection. Passwords are compared
// and stored as plain strings; hardening is an explicit non-goal of this
// system. CompanyID, SectorID and RoleID are all optional for employees;
// managers are expected to carry CompanyID and SectorID.
type User struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Username  string   `json:"username"`
	Password  string   `json:"password,omitempty"`
	Role      UserRole `json:"role"`
	CompanyID string   `json:"companyId,omitempty"`
	SectorID  string   `json:"sectorId,omitempty"`
	RoleID    string   `json:"roleId,omitempty"`
}

// KnowledgeItem is a reference document whose extracted text serves as
// generation context for new evaluations. CompanyID may be CompanyGlobal.
type KnowledgeItem struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	CompanyID   string   `json:"companyId"`
	Content     string   `json:"content"`
	FileName    string   `json:"fileName"`
}

// QuestionOptionCount is the fixed number of alternatives per question.
const QuestionOptionCount = 5

// Question is one multiple-choice item. Invariant: exactly five options and
// 0 <= Correct < 5.
type Question struct {
	Prompt    string   `json:"enunciado"`
	Options   []string `json:"alternativas"`
	Correct   int      `json:"correta"`
	Rationale string   `json:"justificativa"`
}

// Valid reports whether the question satisfies the option-count and
// correct-index invariants.
func (q Question) Valid() bool {
	return len(q.Options) == QuestionOptionCount && q.Correct >= 0 && q.Correct < QuestionOptionCount
}

// Evaluation is a published (or draft) exam generated from a knowledge item.
// CreatedAt is milliseconds since the Unix epoch, as written by the original
// client.
type Evaluation struct {
	ID              string     `json:"id"`
	Title           string     `json:"title"`
	Theme           string     `json:"theme"`
	KnowledgeItemID string     `json:"knowledgeItemId"`
	Questions       []Question `json:"questions"`
	Target          Target     `json:"target"`
	CreatedAt       int64      `json:"createdAt"`
	Published       bool       `json:"published"`
}

// Submission is one user's completed answer set for one evaluation. Answers
// holds one selected option index per question; Score is an integer
// percentage 0-100. Timestamp is milliseconds since the Unix epoch.
//
// Nothing at the data layer prevents a second submission for the same
// (user, evaluation) pair; the visibility filter hides already-taken
// evaluations and the transport layer offers idempotency-key replay, but a
// duplicate row is tolerated data, not corruption.
type Submission struct {
	ID           string `json:"id"`
	EvaluationID string `json:"evaluationId"`
	UserID       string `json:"userId"`
	Answers      []int  `json:"answers"`
	Score        int    `json:"score"`
	Timestamp    int64  `json:"timestamp"`
}
