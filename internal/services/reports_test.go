package services

import (
	"context"
	"testing"

	"github.com/evalai/evalai-backend/internal/domain"
)

func TestAverageScore(t *testing.T) {
	if got := AverageScore(nil); got != 0 {
		t.Fatalf("empty set: expected 0, got %v", got)
	}
	subs := []domain.Submission{{Score: 80}, {Score: 60}}
	if got := AverageScore(subs); got != 70.0 {
		t.Fatalf("expected 70.0, got %v", got)
	}
	subs = []domain.Submission{{Score: 70}, {Score: 71}, {Score: 71}}
	if got := AverageScore(subs); got != 70.7 {
		t.Fatalf("expected 70.7, got %v", got)
	}
}

func TestGroupByCompany(t *testing.T) {
	companies := []domain.Company{{ID: "c1", Name: "Acme"}, {ID: "c2", Name: "Globex"}}
	users := []domain.User{
		{ID: "u1", CompanyID: "c1"},
		{ID: "u2", CompanyID: "c1"},
		{ID: "u3", CompanyID: "c2"},
	}
	subs := []domain.Submission{
		{UserID: "u1", Score: 80},
		{UserID: "u2", Score: 60},
		{UserID: "ghost", Score: 100}, // deleted user, falls out
	}

	got := GroupByCompany(subs, users, companies)
	if len(got) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(got))
	}
	if got[0].CompanyName != "Acme" || got[0].Count != 2 || got[0].AvgScore != 70.0 {
		t.Errorf("unexpected Acme row: %+v", got[0])
	}
	if got[1].CompanyName != "Globex" || got[1].Count != 0 || got[1].AvgScore != 0 {
		t.Errorf("company without submissions should appear with zeros: %+v", got[1])
	}
}

func TestPerQuestionAccuracy(t *testing.T) {
	ev := domain.Evaluation{Questions: validQuestions(2)}
	subs := []domain.Submission{
		{Answers: []int{0, 1}},
		{Answers: []int{0, 0}},
		{Answers: []int{1}}, // short answer slice for the second question
	}

	got := PerQuestionAccuracy(ev, subs)
	if len(got) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(got))
	}
	if got[0].QuestionIndex != 1 || got[0].CorrectCount != 2 || got[0].TotalCount != 3 {
		t.Errorf("unexpected first row: %+v", got[0])
	}
	if got[1].CorrectCount != 1 || got[1].TotalCount != 3 {
		t.Errorf("unexpected second row: %+v", got[1])
	}
	for _, row := range got {
		if row.CorrectCount > row.TotalCount {
			t.Errorf("correct count exceeds total: %+v", row)
		}
	}
}

func TestPerQuestionAccuracyNoSubmissions(t *testing.T) {
	ev := domain.Evaluation{Questions: validQuestions(1)}
	got := PerQuestionAccuracy(ev, nil)
	if len(got) != 1 || got[0].Percentage != 0 {
		t.Fatalf("expected zero percentage row, got %+v", got)
	}
}

func TestReportOverview(t *testing.T) {
	store := &fakeStore{
		companies: []domain.Company{{ID: "c1", Name: "Acme"}},
		users:     []domain.User{{ID: "u1", CompanyID: "c1"}},
		evaluations: []domain.Evaluation{
			{ID: "e1", Questions: validQuestions(2)},
		},
		submissions: []domain.Submission{
			{UserID: "u1", EvaluationID: "e1", Score: 50, Answers: []int{0, 1}},
			{UserID: "u1", EvaluationID: "e2", Score: 100, Answers: []int{0}},
		},
	}
	svc := NewReportService(store)

	all, err := svc.Overview(context.Background(), "all")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if all.TotalSubmissions != 2 || all.AverageScore != 75.0 || all.CompanyCount != 1 {
		t.Errorf("unexpected overview: %+v", all)
	}
	if all.Questions != nil {
		t.Error("question section should be omitted without a selected evaluation")
	}

	one, err := svc.Overview(context.Background(), "e1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if one.TotalSubmissions != 1 || one.AverageScore != 50.0 {
		t.Errorf("unexpected narrowed overview: %+v", one)
	}
	if len(one.Questions) != 2 {
		t.Fatalf("expected per-question rows, got %+v", one.Questions)
	}
}

func TestReportSectorOverview(t *testing.T) {
	manager := domain.User{ID: "m1", Role: domain.RoleManager, CompanyID: "c1", SectorID: "s1"}
	store := &fakeStore{
		sectors: []domain.Sector{{ID: "s1", CompanyID: "c1", Name: "Sales"}},
		roles:   []domain.Role{{ID: "r1", CompanyID: "c1", Name: "Rep"}},
		users: []domain.User{
			manager,
			{ID: "u1", Name: "Ana", Role: domain.RoleEmployee, SectorID: "s1", RoleID: "r1"},
			{ID: "u2", Name: "Bob", Role: domain.RoleEmployee, SectorID: "s1"},
			{ID: "u3", Name: "Eve", Role: domain.RoleEmployee, SectorID: "s2"},
		},
		evaluations: []domain.Evaluation{{ID: "e1", Title: "Onboarding"}},
		submissions: []domain.Submission{
			{UserID: "u1", EvaluationID: "e1", Score: 90, Timestamp: 5},
			{UserID: "u2", EvaluationID: "gone", Score: 50, Timestamp: 6},
			{UserID: "u3", EvaluationID: "e1", Score: 10},
		},
	}
	svc := NewReportService(store)

	got, err := svc.SectorOverview(context.Background(), manager, "", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.SectorName != "Sales" || got.TeamSize != 2 || got.Total != 2 {
		t.Fatalf("unexpected overview: %+v", got)
	}
	if got.AverageScore != 70.0 {
		t.Errorf("expected average 70.0, got %v", got.AverageScore)
	}
	for _, row := range got.Activity {
		if row.UserName == "Bob" && row.RoleName != "N/A" {
			t.Errorf("dangling role should render N/A: %+v", row)
		}
		if row.UserName == "Bob" && row.EvaluationTitle != "N/A" {
			t.Errorf("dangling evaluation should render N/A: %+v", row)
		}
	}

	byRole, err := svc.SectorOverview(context.Background(), manager, "r1", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if byRole.Total != 1 || byRole.Activity[0].UserName != "Ana" {
		t.Errorf("role narrowing failed: %+v", byRole)
	}

	byUser, err := svc.SectorOverview(context.Background(), manager, "all", "u2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if byUser.Total != 1 || byUser.Activity[0].UserName != "Bob" {
		t.Errorf("user narrowing failed: %+v", byUser)
	}
}
