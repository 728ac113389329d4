package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/evalai/evalai-backend/internal/domain"
)

// Question counts and difficulty labels accepted by GenerateDraft. The labels
// are Portuguese because they are forwarded verbatim into the generation
// prompt and stored data.
const (
	DifficultyBasic    = "Básico"
	DifficultyMedium   = "Médio"
	DifficultyAdvanced = "Avançado"
)

// Generator produces a question set from a theme and reference text.
type Generator interface {
	Generate(ctx context.Context, theme, reference string, count int, difficulty string) ([]domain.Question, error)
}

// EvaluationStore is the record-store contract required by EvaluationService.
type EvaluationStore interface {
	Knowledge(ctx context.Context) ([]domain.KnowledgeItem, error)
	Evaluations(ctx context.Context) ([]domain.Evaluation, error)
	SaveEvaluations(ctx context.Context, items []domain.Evaluation) error
	Submissions(ctx context.Context) ([]domain.Submission, error)
}

// EvaluationService drives the draft/publish lifecycle of evaluations and the
// employee-facing availability view.
type EvaluationService struct {
	Store     EvaluationStore
	Generator Generator
}

// NewEvaluationService constructs an EvaluationService.
func NewEvaluationService(store EvaluationStore, gen Generator) *EvaluationService {
	return &EvaluationService{Store: store, Generator: gen}
}

// DraftRequest carries the parameters of a generation run.
type DraftRequest struct {
	Title           string
	Theme           string
	KnowledgeItemID string
	Count           int
	Difficulty      string
	Target          domain.Target
}

// Draft is an unsaved generation result. Nothing is persisted until Publish.
type Draft struct {
	Title           string            `json:"title"`
	Theme           string            `json:"theme"`
	KnowledgeItemID string            `json:"knowledgeItemId"`
	Questions       []domain.Question `json:"questions"`
	Target          domain.Target     `json:"target"`
}

// GenerateDraft validates the request, resolves the knowledge item, and runs
// the generator against its extracted text. The result is returned to the
// caller for review; it is not stored.
func (s *EvaluationService) GenerateDraft(ctx context.Context, req DraftRequest) (*Draft, error) {
	req.Title = strings.TrimSpace(req.Title)
	req.Theme = strings.TrimSpace(req.Theme)
	if req.Title == "" || req.Theme == "" {
		return nil, fmt.Errorf("%w: title and theme are required", ErrValidation)
	}
	if req.KnowledgeItemID == "" {
		return nil, fmt.Errorf("%w: a knowledge item is required", ErrValidation)
	}
	if req.Count != 10 && req.Count != 20 {
		return nil, fmt.Errorf("%w: question count must be 10 or 20", ErrValidation)
	}
	switch req.Difficulty {
	case DifficultyBasic, DifficultyMedium, DifficultyAdvanced:
	default:
		return nil, fmt.Errorf("%w: difficulty must be %s, %s or %s",
			ErrValidation, DifficultyBasic, DifficultyMedium, DifficultyAdvanced)
	}

	items, err := s.Store.Knowledge(ctx)
	if err != nil {
		return nil, err
	}
	var ref *domain.KnowledgeItem
	for i := range items {
		if items[i].ID == req.KnowledgeItemID {
			ref = &items[i]
			break
		}
	}
	if ref == nil {
		return nil, ErrKnowledgeNotFound
	}

	questions, err := s.Generator.Generate(ctx, req.Theme, ref.Content, req.Count, req.Difficulty)
	if err != nil {
		log.Error().Err(err).
			Str("knowledge_item_id", req.KnowledgeItemID).
			Int("count", req.Count).
			Msg("question generation failed")
		return nil, fmt.Errorf("%w: %v", ErrGeneration, err)
	}

	return &Draft{
		Title:           req.Title,
		Theme:           req.Theme,
		KnowledgeItemID: req.KnowledgeItemID,
		Questions:       questions,
		Target:          req.Target,
	}, nil
}

// Publish validates a reviewed draft and prepends it to the evaluation
// collection as a published evaluation.
func (s *EvaluationService) Publish(ctx context.Context, d Draft) (*domain.Evaluation, error) {
	d.Title = strings.TrimSpace(d.Title)
	d.Theme = strings.TrimSpace(d.Theme)
	if d.Title == "" || d.Theme == "" {
		return nil, fmt.Errorf("%w: title and theme are required", ErrValidation)
	}
	if len(d.Questions) == 0 {
		return nil, ErrNoQuestions
	}
	for i, q := range d.Questions {
		if !q.Valid() {
			return nil, fmt.Errorf("%w (question %d)", ErrBadQuestion, i+1)
		}
	}

	evs, err := s.Store.Evaluations(ctx)
	if err != nil {
		return nil, err
	}
	ev := domain.Evaluation{
		ID:              uuid.NewString(),
		Title:           d.Title,
		Theme:           d.Theme,
		KnowledgeItemID: d.KnowledgeItemID,
		Questions:       d.Questions,
		Target:          d.Target,
		CreatedAt:       time.Now().UnixMilli(),
		Published:       true,
	}
	if err := s.Store.SaveEvaluations(ctx, append([]domain.Evaluation{ev}, evs...)); err != nil {
		return nil, err
	}
	return &ev, nil
}

// List returns the whole collection, newest first.
func (s *EvaluationService) List(ctx context.Context) ([]domain.Evaluation, error) {
	return s.Store.Evaluations(ctx)
}

// Get returns one evaluation by id.
func (s *EvaluationService) Get(ctx context.Context, id string) (*domain.Evaluation, error) {
	evs, err := s.Store.Evaluations(ctx)
	if err != nil {
		return nil, err
	}
	for _, ev := range evs {
		if ev.ID == id {
			return &ev, nil
		}
	}
	return nil, ErrEvaluationNotFound
}

// Delete removes one evaluation. Submissions for it remain and their
// evaluation title renders as "N/A" in reports.
func (s *EvaluationService) Delete(ctx context.Context, id string) error {
	evs, err := s.Store.Evaluations(ctx)
	if err != nil {
		return err
	}
	kept := evs[:0:0]
	found := false
	for _, ev := range evs {
		if ev.ID == id {
			found = true
			continue
		}
		kept = append(kept, ev)
	}
	if !found {
		return ErrEvaluationNotFound
	}
	return s.Store.SaveEvaluations(ctx, kept)
}

// Available returns the evaluations the given user may currently take:
// published, not yet taken by them, and matching their target scope.
func (s *EvaluationService) Available(ctx context.Context, user domain.User) ([]domain.Evaluation, error) {
	evs, err := s.Store.Evaluations(ctx)
	if err != nil {
		return nil, err
	}
	subs, err := s.Store.Submissions(ctx)
	if err != nil {
		return nil, err
	}
	return VisibleEvaluations(user, evs, subs), nil
}
