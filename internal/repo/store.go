// Package repo implements the record store. This file provides the typed
// per-collection accessors.
//
// Semantics (carried over from the original storage layer):
//   - A collection is one JSON array under one well-known key. Readers get
//     the whole slice; writers replace the whole slice. There are no indices
//     and no cross-key transactions.
//   - A missing key reads as the empty collection (or nil session), never an
//     error.
//   - Foreign keys between collections are not enforced; callers must expect
//     dangling references after deletes.
package repo

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/evalai/evalai-backend/internal/domain"
)

// Storage keys. The evalai_ prefix and key names match the original browser
// client so imported backups line up without translation.
const (
	KeyCompanies   = "evalai_companies"
	KeySectors     = "evalai_sectors"
	KeyRoles       = "evalai_roles"
	KeyUsers       = "evalai_users"
	KeyKnowledge   = "evalai_knowledge"
	KeyEvaluations = "evalai_evaluations"
	KeySubmissions = "evalai_submissions"
	KeySession     = "evalai_auth_user"
)

// CollectionKeys lists every key in canonical order, collections first.
var CollectionKeys = []string{
	KeyCompanies,
	KeySectors,
	KeyRoles,
	KeyUsers,
	KeyKnowledge,
	KeyEvaluations,
	KeySubmissions,
	KeySession,
}

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = gorm.ErrRecordNotFound

// record is the single persistence row: one key, one JSON document.
type record struct {
	Key       string `gorm:"type:TEXT NOT NULL;primaryKey"`
	Value     string `gorm:"type:TEXT NOT NULL"`
	UpdatedAt time.Time
}

// TableName implements the GORM tabler interface.
func (record) TableName() string { return "records" }

// Store wraps a GORM handle with typed get/put operations per collection.
// It is the explicit repository the services receive by injection; nothing
// else touches the records table.
type Store struct {
	db *gorm.DB
}

// NewStore returns a Store backed by db.
func NewStore(db *gorm.DB) *Store { return &Store{db: db} }

// DB exposes the underlying handle for infrastructure that needs it
// (idempotency keys, health checks).
func (s *Store) DB() *gorm.DB { return s.db }

// GetRaw returns the stored JSON document for key, reporting presence.
func (s *Store) GetRaw(ctx context.Context, key string) (string, bool, error) {
	var rec record
	err := s.db.WithContext(ctx).Where("key = ?", key).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return rec.Value, true, nil
}

// PutRaw overwrites the JSON document stored under key.
func (s *Store) PutRaw(ctx context.Context, key, value string) error {
	rec := record{Key: key, Value: value, UpdatedAt: time.Now().UTC()}
	return s.db.WithContext(ctx).Save(&rec).Error
}

// getSlice decodes the collection under key into a slice of T. A missing key
// yields the empty slice.
func getSlice[T any](ctx context.Context, s *Store, key string) ([]T, error) {
	raw, ok, err := s.GetRaw(ctx, key)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []T{}, nil
	}
	var out []T
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []T{}
	}
	return out, nil
}

// putSlice encodes items and replaces the collection under key.
func putSlice[T any](ctx context.Context, s *Store, key string, items []T) error {
	if items == nil {
		items = []T{}
	}
	b, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return s.PutRaw(ctx, key, string(b))
}

// Companies reads the company collection.
func (s *Store) Companies(ctx context.Context) ([]domain.Company, error) {
	return getSlice[domain.Company](ctx, s, KeyCompanies)
}

// SaveCompanies replaces the company collection.
func (s *Store) SaveCompanies(ctx context.Context, items []domain.Company) error {
	return putSlice(ctx, s, KeyCompanies, items)
}

// Sectors reads the sector collection.
func (s *Store) Sectors(ctx context.Context) ([]domain.Sector, error) {
	return getSlice[domain.Sector](ctx, s, KeySectors)
}

// SaveSectors replaces the sector collection.
func (s *Store) SaveSectors(ctx context.Context, items []domain.Sector) error {
	return putSlice(ctx, s, KeySectors, items)
}

// Roles reads the role collection.
func (s *Store) Roles(ctx context.Context) ([]domain.Role, error) {
	return getSlice[domain.Role](ctx, s, KeyRoles)
}

// SaveRoles replaces the role collection.
func (s *Store) SaveRoles(ctx context.Context, items []domain.Role) error {
	return putSlice(ctx, s, KeyRoles, items)
}

// Users reads the user collection.
func (s *Store) Users(ctx context.Context) ([]domain.User, error) {
	return getSlice[domain.User](ctx, s, KeyUsers)
}

// SaveUsers replaces the user collection.
func (s *Store) SaveUsers(ctx context.Context, items []domain.User) error {
	return putSlice(ctx, s, KeyUsers, items)
}

// Knowledge reads the knowledge-item collection.
func (s *Store) Knowledge(ctx context.Context) ([]domain.KnowledgeItem, error) {
	return getSlice[domain.KnowledgeItem](ctx, s, KeyKnowledge)
}

// SaveKnowledge replaces the knowledge-item collection.
func (s *Store) SaveKnowledge(ctx context.Context, items []domain.KnowledgeItem) error {
	return putSlice(ctx, s, KeyKnowledge, items)
}

// Evaluations reads the evaluation collection.
func (s *Store) Evaluations(ctx context.Context) ([]domain.Evaluation, error) {
	return getSlice[domain.Evaluation](ctx, s, KeyEvaluations)
}

// SaveEvaluations replaces the evaluation collection.
func (s *Store) SaveEvaluations(ctx context.Context, items []domain.Evaluation) error {
	return putSlice(ctx, s, KeyEvaluations, items)
}

// Submissions reads the submission collection.
func (s *Store) Submissions(ctx context.Context) ([]domain.Submission, error) {
	return getSlice[domain.Submission](ctx, s, KeySubmissions)
}

// SaveSubmissions replaces the submission collection.
func (s *Store) SaveSubmissions(ctx context.Context, items []domain.Submission) error {
	return putSlice(ctx, s, KeySubmissions, items)
}

// Session returns the stored session user, or nil when nobody is logged in.
func (s *Store) Session(ctx context.Context) (*domain.User, error) {
	raw, ok, err := s.GetRaw(ctx, KeySession)
	if err != nil || !ok {
		return nil, err
	}
	var u *domain.User
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		return nil, err
	}
	return u, nil
}

// SetSession stores the session user; pass nil to clear it.
func (s *Store) SetSession(ctx context.Context, u *domain.User) error {
	b, err := json.Marshal(u) // nil marshals to "null", mirroring the original client
	if err != nil {
		return err
	}
	return s.PutRaw(ctx, KeySession, string(b))
}
