package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/evalai/evalai-backend/internal/domain"
	"github.com/evalai/evalai-backend/internal/repo"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := repo.OpenSQLite(":memory:")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := repo.AutoMigrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestSubmit(t *testing.T) {
	ev := domain.Evaluation{ID: "e1", Published: true, Questions: validQuestions(4)}
	store := &fakeStore{
		evaluations: []domain.Evaluation{ev},
		submissions: []domain.Submission{{ID: "old"}},
	}
	svc := NewSubmissionService(store, nil, 0)
	user := domain.User{ID: "u1"}

	sub, err := svc.Submit(context.Background(), user, "e1", []int{0, 0, 1, 1}, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sub.Score != 50 {
		t.Errorf("expected score 50, got %d", sub.Score)
	}
	if sub.UserID != "u1" || sub.EvaluationID != "e1" || sub.Timestamp == 0 {
		t.Errorf("unexpected submission: %+v", sub)
	}
	if len(store.submissions) != 2 || store.submissions[0].ID != sub.ID {
		t.Errorf("submission must be prepended: %+v", store.submissions)
	}
}

func TestSubmitValidation(t *testing.T) {
	store := &fakeStore{evaluations: []domain.Evaluation{
		{ID: "e1", Questions: validQuestions(2)},
	}}
	svc := NewSubmissionService(store, nil, 0)
	user := domain.User{ID: "u1"}

	if _, err := svc.Submit(context.Background(), user, "missing", []int{0, 0}, ""); !errors.Is(err, ErrEvaluationNotFound) {
		t.Fatalf("expected ErrEvaluationNotFound, got %v", err)
	}
	if _, err := svc.Submit(context.Background(), user, "e1", []int{0}, ""); !errors.Is(err, ErrAnswerCount) {
		t.Fatalf("expected ErrAnswerCount, got %v", err)
	}
	if _, err := svc.Submit(context.Background(), user, "e1", []int{0, -1}, ""); !errors.Is(err, ErrUnanswered) {
		t.Fatalf("expected ErrUnanswered for the -1 sentinel, got %v", err)
	}
	if _, err := svc.Submit(context.Background(), user, "e1", []int{0, 5}, ""); !errors.Is(err, ErrUnanswered) {
		t.Fatalf("expected ErrUnanswered for out of range index, got %v", err)
	}
	if len(store.submissions) != 0 {
		t.Error("nothing must be stored on validation failure")
	}
}

func TestSubmitIdempotencyReplay(t *testing.T) {
	db := openTestDB(t)
	store := &fakeStore{evaluations: []domain.Evaluation{
		{ID: "e1", Questions: validQuestions(2)},
	}}
	svc := NewSubmissionService(store, db, time.Hour)
	user := domain.User{ID: "u1"}

	first, err := svc.Submit(context.Background(), user, "e1", []int{0, 0}, "key-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	replay, err := svc.Submit(context.Background(), user, "e1", []int{1, 1}, "key-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if replay.ID != first.ID {
		t.Fatalf("replay must return the original submission: %q vs %q", replay.ID, first.ID)
	}
	if len(store.submissions) != 1 {
		t.Fatalf("replay must not append a duplicate, have %d", len(store.submissions))
	}

	fresh, err := svc.Submit(context.Background(), user, "e1", []int{1, 1}, "key-2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fresh.ID == first.ID {
		t.Error("a different key must produce a new submission")
	}
	if len(store.submissions) != 2 {
		t.Fatalf("expected 2 submissions, have %d", len(store.submissions))
	}
}

func TestSubmissionGetAndList(t *testing.T) {
	store := &fakeStore{submissions: []domain.Submission{
		{ID: "s2", UserID: "u1"},
		{ID: "s1", UserID: "u1"},
		{ID: "s3", UserID: "u2"},
	}}
	svc := NewSubmissionService(store, nil, 0)

	sub, err := svc.Get(context.Background(), "s1")
	if err != nil || sub.ID != "s1" {
		t.Fatalf("expected s1, got %+v err %v", sub, err)
	}
	if _, err := svc.Get(context.Background(), "nope"); !errors.Is(err, ErrSubmissionNotFound) {
		t.Fatalf("expected ErrSubmissionNotFound, got %v", err)
	}

	mine, err := svc.ListForUser(context.Background(), "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(mine) != 2 || mine[0].ID != "s2" || mine[1].ID != "s1" {
		t.Fatalf("expected stored order [s2 s1], got %+v", mine)
	}
}
