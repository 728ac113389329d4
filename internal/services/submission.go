package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/evalai/evalai-backend/internal/domain"
	"github.com/evalai/evalai-backend/internal/repo"
)

// SubmissionStore is the record-store contract required by SubmissionService.
type SubmissionStore interface {
	Evaluations(ctx context.Context) ([]domain.Evaluation, error)
	Submissions(ctx context.Context) ([]domain.Submission, error)
	SaveSubmissions(ctx context.Context, items []domain.Submission) error
}

// SubmissionService records completed answer sets. When an Idempotency-Key is
// supplied, a retry of the same finish request within the TTL returns the
// originally stored submission instead of appending a duplicate.
type SubmissionService struct {
	Store SubmissionStore

	// DB backs the submission-key table; nil disables replay detection.
	DB             *gorm.DB
	IdempotencyTTL time.Duration
}

// NewSubmissionService constructs a SubmissionService. db may be nil.
func NewSubmissionService(store SubmissionStore, db *gorm.DB, ttl time.Duration) *SubmissionService {
	return &SubmissionService{Store: store, DB: db, IdempotencyTTL: ttl}
}

// Submit scores and stores one answer set. Answers must carry exactly one
// selected option index per question; the -1 unanswered sentinel (or any out
// of range index) is rejected. idemKey is optional.
func (s *SubmissionService) Submit(ctx context.Context, user domain.User, evaluationID string, answers []int, idemKey string) (*domain.Submission, error) {
	evs, err := s.Store.Evaluations(ctx)
	if err != nil {
		return nil, err
	}
	var ev *domain.Evaluation
	for i := range evs {
		if evs[i].ID == evaluationID {
			ev = &evs[i]
			break
		}
	}
	if ev == nil {
		return nil, ErrEvaluationNotFound
	}
	if len(answers) != len(ev.Questions) {
		return nil, fmt.Errorf("%w: got %d answers for %d questions", ErrAnswerCount, len(answers), len(ev.Questions))
	}
	for _, a := range answers {
		if a < 0 || a >= domain.QuestionOptionCount {
			return nil, ErrUnanswered
		}
	}

	if s.DB != nil && idemKey != "" {
		prior, err := repo.GetSubmissionKey(ctx, s.DB, user.ID, evaluationID, idemKey, time.Now().UTC())
		if err == nil {
			if sub, gerr := s.Get(ctx, prior.SubmissionID); gerr == nil {
				return sub, nil
			}
			// The replayed submission was deleted meanwhile; fall through and
			// record a fresh one.
		} else if !errors.Is(err, repo.ErrNotFound) {
			return nil, err
		}
	}

	sub := domain.Submission{
		ID:           uuid.NewString(),
		EvaluationID: evaluationID,
		UserID:       user.ID,
		Answers:      answers,
		Score:        Score(*ev, answers),
		Timestamp:    time.Now().UnixMilli(),
	}

	subs, err := s.Store.Submissions(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.Store.SaveSubmissions(ctx, append([]domain.Submission{sub}, subs...)); err != nil {
		return nil, err
	}

	if s.DB != nil && idemKey != "" {
		if _, err := repo.CreateSubmissionKey(ctx, s.DB, user.ID, evaluationID, idemKey, sub.ID, s.IdempotencyTTL); err != nil {
			if errors.Is(err, repo.ErrDuplicate) {
				// Concurrent retry won the race; the stored submission stands.
				log.Warn().Str("evaluation_id", evaluationID).Msg("idempotency key raced")
			} else {
				log.Error().Err(err).Msg("failed to record idempotency key")
			}
		}
	}
	return &sub, nil
}

// Get returns one submission by id.
func (s *SubmissionService) Get(ctx context.Context, id string) (*domain.Submission, error) {
	subs, err := s.Store.Submissions(ctx)
	if err != nil {
		return nil, err
	}
	for _, sub := range subs {
		if sub.ID == id {
			return &sub, nil
		}
	}
	return nil, ErrSubmissionNotFound
}

// ListForUser returns the given user's submissions in stored (newest-first)
// order.
func (s *SubmissionService) ListForUser(ctx context.Context, userID string) ([]domain.Submission, error) {
	subs, err := s.Store.Submissions(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Submission, 0, len(subs))
	for _, sub := range subs {
		if sub.UserID == userID {
			out = append(out, sub)
		}
	}
	return out, nil
}
