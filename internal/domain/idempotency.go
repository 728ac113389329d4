package domain

import "time"

// SubmissionKey records the outcome of a finished evaluation keyed by
// (user_id, evaluation_id, key). A client that retries the finish call with
// the same Idempotency-Key gets the originally created submission back
// instead of producing a second one. This is the only GORM-mapped type in the
// package; everything else lives inside the record store's JSON collections.
type SubmissionKey struct {
	ID           string    `gorm:"type:TEXT NOT NULL;primaryKey"`
	UserID       string    `gorm:"type:TEXT NOT NULL;uniqueIndex:ux_user_eval_key,priority:1"`
	EvaluationID string    `gorm:"type:TEXT NOT NULL;uniqueIndex:ux_user_eval_key,priority:2"`
	Key          string    `gorm:"type:TEXT NOT NULL;uniqueIndex:ux_user_eval_key,priority:3"`
	SubmissionID string    `gorm:"type:TEXT NOT NULL"`
	CreatedAt    time.Time `gorm:"type:DATETIME NOT NULL;autoCreateTime"`
	ExpiresAt    time.Time `gorm:"type:DATETIME NOT NULL;index"`
}

// TableName implements the GORM tabler interface.
func (SubmissionKey) TableName() string { return "submission_keys" }
