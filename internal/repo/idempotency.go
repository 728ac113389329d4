// Package repo implements the record store. This file provides helpers for
// the submission-key table backing Idempotency-Key replay on the finish
// endpoint. Unlike the collections, these rows live in a real relational
// table with a uniqueness constraint, because replay detection is transport
// infrastructure, not part of the exported data set.
package repo

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/evalai/evalai-backend/internal/domain"
)

// ErrDuplicate indicates that a submission key already exists for the given
// (user_id, evaluation_id, key) tuple.
var ErrDuplicate = errors.New("duplicate")

// GetSubmissionKey returns a non-expired replay record or ErrNotFound.
func GetSubmissionKey(ctx context.Context, db *gorm.DB, userID, evaluationID, key string, now time.Time) (*domain.SubmissionKey, error) {
	if strings.TrimSpace(key) == "" {
		return nil, ErrNotFound
	}
	var rec domain.SubmissionKey
	err := db.WithContext(ctx).
		Where("user_id = ? AND evaluation_id = ? AND key = ? AND expires_at > ?", userID, evaluationID, key, now).
		First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// CreateSubmissionKey inserts a replay record and returns ErrDuplicate on a
// unique violation.
func CreateSubmissionKey(ctx context.Context, db *gorm.DB, userID, evaluationID, key, submissionID string, ttl time.Duration) (*domain.SubmissionKey, error) {
	now := time.Now().UTC()
	rec := &domain.SubmissionKey{
		ID:           uuid.NewString(),
		UserID:       userID,
		EvaluationID: evaluationID,
		Key:          key,
		SubmissionID: submissionID,
		CreatedAt:    now,
		ExpiresAt:    now.Add(ttl),
	}
	if err := db.WithContext(ctx).Create(rec).Error; err != nil {
		// glebarez/sqlite often returns plain-text errors for UNIQUE violations.
		low := strings.ToLower(err.Error())
		if errors.Is(err, gorm.ErrDuplicatedKey) ||
			strings.Contains(low, "unique constraint failed") ||
			strings.Contains(low, "constraint failed: unique") {
			return nil, ErrDuplicate
		}
		return nil, err
	}
	return rec, nil
}
