package services

import (
	"context"
	"errors"

	"github.com/evalai/evalai-backend/internal/domain"
)

// fakeStore is an in-memory stand-in for the record store. A non-nil err is
// returned by every method, simulating storage failure.
type fakeStore struct {
	companies   []domain.Company
	sectors     []domain.Sector
	roles       []domain.Role
	users       []domain.User
	knowledge   []domain.KnowledgeItem
	evaluations []domain.Evaluation
	submissions []domain.Submission
	session     *domain.User

	err error
}

func (f *fakeStore) Companies(context.Context) ([]domain.Company, error) {
	return f.companies, f.err
}

func (f *fakeStore) SaveCompanies(_ context.Context, items []domain.Company) error {
	if f.err != nil {
		return f.err
	}
	f.companies = items
	return nil
}

func (f *fakeStore) Sectors(context.Context) ([]domain.Sector, error) { return f.sectors, f.err }

func (f *fakeStore) SaveSectors(_ context.Context, items []domain.Sector) error {
	if f.err != nil {
		return f.err
	}
	f.sectors = items
	return nil
}

func (f *fakeStore) Roles(context.Context) ([]domain.Role, error) { return f.roles, f.err }

func (f *fakeStore) SaveRoles(_ context.Context, items []domain.Role) error {
	if f.err != nil {
		return f.err
	}
	f.roles = items
	return nil
}

func (f *fakeStore) Users(context.Context) ([]domain.User, error) { return f.users, f.err }

func (f *fakeStore) SaveUsers(_ context.Context, items []domain.User) error {
	if f.err != nil {
		return f.err
	}
	f.users = items
	return nil
}

func (f *fakeStore) Knowledge(context.Context) ([]domain.KnowledgeItem, error) {
	return f.knowledge, f.err
}

func (f *fakeStore) SaveKnowledge(_ context.Context, items []domain.KnowledgeItem) error {
	if f.err != nil {
		return f.err
	}
	f.knowledge = items
	return nil
}

func (f *fakeStore) Evaluations(context.Context) ([]domain.Evaluation, error) {
	return f.evaluations, f.err
}

func (f *fakeStore) SaveEvaluations(_ context.Context, items []domain.Evaluation) error {
	if f.err != nil {
		return f.err
	}
	f.evaluations = items
	return nil
}

func (f *fakeStore) Submissions(context.Context) ([]domain.Submission, error) {
	return f.submissions, f.err
}

func (f *fakeStore) SaveSubmissions(_ context.Context, items []domain.Submission) error {
	if f.err != nil {
		return f.err
	}
	f.submissions = items
	return nil
}

func (f *fakeStore) Session(context.Context) (*domain.User, error) { return f.session, f.err }

func (f *fakeStore) SetSession(_ context.Context, u *domain.User) error {
	if f.err != nil {
		return f.err
	}
	f.session = u
	return nil
}

var errBoom = errors.New("boom")

// fakeGenerator returns canned questions or a canned error.
type fakeGenerator struct {
	questions []domain.Question
	err       error

	gotTheme      string
	gotReference  string
	gotCount      int
	gotDifficulty string
}

func (f *fakeGenerator) Generate(_ context.Context, theme, reference string, count int, difficulty string) ([]domain.Question, error) {
	f.gotTheme = theme
	f.gotReference = reference
	f.gotCount = count
	f.gotDifficulty = difficulty
	return f.questions, f.err
}

// fakeExtractor returns canned text or a canned error.
type fakeExtractor struct {
	text string
	err  error
}

func (f *fakeExtractor) Extract(string, []byte) (string, error) { return f.text, f.err }

// validQuestions builds n well-formed questions with correct index 0.
func validQuestions(n int) []domain.Question {
	out := make([]domain.Question, n)
	for i := range out {
		out[i] = domain.Question{
			Prompt:    "q",
			Options:   []string{"a", "b", "c", "d", "e"},
			Correct:   0,
			Rationale: "r",
		}
	}
	return out
}
