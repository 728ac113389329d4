// Package services – aggregation reporting.
//
// This file implements the pure reducers behind the master and sector report
// views, plus the ReportService that feeds them from the record store. All
// statistics are linear scans over the flat collections; dangling foreign
// keys (a submission whose user or evaluation was deleted) degrade to "N/A"
// labels, never to an error.
package services

import (
	"context"
	"math"

	"github.com/evalai/evalai-backend/internal/domain"
)

// CompanyStat is one row of the per-company performance breakdown. Companies
// with no submissions still appear with zero count and average.
type CompanyStat struct {
	CompanyName string  `json:"companyName"`
	Count       int     `json:"count"`
	AvgScore    float64 `json:"avgScore"`
}

// QuestionStat is the accuracy summary of one question across a submission
// set. QuestionIndex is 1-based for display, like the original report.
type QuestionStat struct {
	QuestionIndex int     `json:"questionIndex"`
	Prompt        string  `json:"prompt"`
	CorrectCount  int     `json:"correctCount"`
	TotalCount    int     `json:"totalCount"`
	Percentage    float64 `json:"percentage"`
}

// AverageScore returns the arithmetic mean of submission scores rounded to
// one decimal place, or 0 for an empty set.
func AverageScore(subs []domain.Submission) float64 {
	if len(subs) == 0 {
		return 0
	}
	sum := 0
	for _, s := range subs {
		sum += s.Score
	}
	return round1(float64(sum) / float64(len(subs)))
}

// GroupByCompany partitions submissions by the company of the submitting
// user (resolved through the user collection) and computes count and mean per
// company. Submissions whose user is missing or companyless fall out of every
// partition, matching the original report.
func GroupByCompany(subs []domain.Submission, users []domain.User, companies []domain.Company) []CompanyStat {
	userCompany := make(map[string]string, len(users))
	for _, u := range users {
		userCompany[u.ID] = u.CompanyID
	}

	out := make([]CompanyStat, 0, len(companies))
	for _, c := range companies {
		count, sum := 0, 0
		for _, s := range subs {
			if userCompany[s.UserID] == c.ID {
				count++
				sum += s.Score
			}
		}
		stat := CompanyStat{CompanyName: c.Name, Count: count}
		if count > 0 {
			stat.AvgScore = round1(float64(sum) / float64(count))
		}
		out = append(out, stat)
	}
	return out
}

// PerQuestionAccuracy computes, for each question of ev, how many of the
// given submissions answered it correctly. Percentage is 0 when the set is
// empty.
func PerQuestionAccuracy(ev domain.Evaluation, subs []domain.Submission) []QuestionStat {
	out := make([]QuestionStat, 0, len(ev.Questions))
	total := len(subs)
	for i, q := range ev.Questions {
		correct := 0
		for _, s := range subs {
			if i < len(s.Answers) && s.Answers[i] == q.Correct {
				correct++
			}
		}
		stat := QuestionStat{
			QuestionIndex: i + 1,
			Prompt:        q.Prompt,
			CorrectCount:  correct,
			TotalCount:    total,
		}
		if total > 0 {
			stat.Percentage = float64(correct) / float64(total) * 100
		}
		out = append(out, stat)
	}
	return out
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }

// ReportStore is the record-store contract required by ReportService.
type ReportStore interface {
	Companies(ctx context.Context) ([]domain.Company, error)
	Sectors(ctx context.Context) ([]domain.Sector, error)
	Roles(ctx context.Context) ([]domain.Role, error)
	Users(ctx context.Context) ([]domain.User, error)
	Evaluations(ctx context.Context) ([]domain.Evaluation, error)
	Submissions(ctx context.Context) ([]domain.Submission, error)
}

// ReportService assembles the master overview and the manager's sector view.
type ReportService struct {
	Store ReportStore
}

// NewReportService constructs a ReportService.
func NewReportService(store ReportStore) *ReportService { return &ReportService{Store: store} }

// Overview is the master report: global statistics, the per-company
// breakdown, and, when a single evaluation is selected, its per-question
// accuracy.
type Overview struct {
	TotalSubmissions int            `json:"totalSubmissions"`
	AverageScore     float64        `json:"averageScore"`
	CompanyCount     int            `json:"companyCount"`
	Companies        []CompanyStat  `json:"companies"`
	Questions        []QuestionStat `json:"questions,omitempty"`
}

// Overview computes the master report. evaluationID narrows the submission
// set to one evaluation; empty (or "all") means no narrowing, in which case
// the per-question section is omitted.
func (s *ReportService) Overview(ctx context.Context, evaluationID string) (*Overview, error) {
	subs, err := s.Store.Submissions(ctx)
	if err != nil {
		return nil, err
	}
	users, err := s.Store.Users(ctx)
	if err != nil {
		return nil, err
	}
	companies, err := s.Store.Companies(ctx)
	if err != nil {
		return nil, err
	}

	filtered := subs
	if evaluationID != "" && evaluationID != "all" {
		filtered = make([]domain.Submission, 0, len(subs))
		for _, sub := range subs {
			if sub.EvaluationID == evaluationID {
				filtered = append(filtered, sub)
			}
		}
	}

	out := &Overview{
		TotalSubmissions: len(filtered),
		AverageScore:     AverageScore(filtered),
		CompanyCount:     len(companies),
		Companies:        GroupByCompany(filtered, users, companies),
	}

	if evaluationID != "" && evaluationID != "all" {
		evs, err := s.Store.Evaluations(ctx)
		if err != nil {
			return nil, err
		}
		for _, ev := range evs {
			if ev.ID == evaluationID {
				out.Questions = PerQuestionAccuracy(ev, filtered)
				break
			}
		}
		// A deleted evaluation simply yields no question section.
	}
	return out, nil
}

// SectorActivity is one row of the manager's team activity table.
type SectorActivity struct {
	UserName        string `json:"userName"`
	RoleName        string `json:"roleName"`
	EvaluationTitle string `json:"evaluationTitle"`
	Score           int    `json:"score"`
	Timestamp       int64  `json:"timestamp"`
}

// SectorOverview is the manager report: the manager's sector, direct team
// size, and the (optionally narrowed) activity of that team.
type SectorOverview struct {
	SectorName   string           `json:"sectorName"`
	TeamSize     int              `json:"teamSize"`
	Total        int              `json:"total"`
	AverageScore float64          `json:"averageScore"`
	Activity     []SectorActivity `json:"activity"`
}

// SectorOverview computes the manager report. The base set is restricted to
// EMPLOYEE users whose sector equals the manager's; roleID and userID narrow
// it further, each defaulting to "all" (no restriction) when empty.
func (s *ReportService) SectorOverview(ctx context.Context, manager domain.User, roleID, userID string) (*SectorOverview, error) {
	users, err := s.Store.Users(ctx)
	if err != nil {
		return nil, err
	}
	subs, err := s.Store.Submissions(ctx)
	if err != nil {
		return nil, err
	}
	roles, err := s.Store.Roles(ctx)
	if err != nil {
		return nil, err
	}
	sectors, err := s.Store.Sectors(ctx)
	if err != nil {
		return nil, err
	}
	evs, err := s.Store.Evaluations(ctx)
	if err != nil {
		return nil, err
	}

	employees := make(map[string]domain.User)
	for _, u := range users {
		if u.Role == domain.RoleEmployee && u.SectorID == manager.SectorID {
			employees[u.ID] = u
		}
	}

	roleName := make(map[string]string, len(roles))
	for _, r := range roles {
		roleName[r.ID] = r.Name
	}
	evalTitle := make(map[string]string, len(evs))
	for _, ev := range evs {
		evalTitle[ev.ID] = ev.Title
	}

	out := &SectorOverview{TeamSize: len(employees)}
	for _, sec := range sectors {
		if sec.ID == manager.SectorID {
			out.SectorName = sec.Name
			break
		}
	}

	var kept []domain.Submission
	for _, sub := range subs {
		emp, ok := employees[sub.UserID]
		if !ok {
			continue
		}
		if roleID != "" && roleID != "all" && emp.RoleID != roleID {
			continue
		}
		if userID != "" && userID != "all" && sub.UserID != userID {
			continue
		}
		kept = append(kept, sub)

		row := SectorActivity{
			UserName:        emp.Name,
			RoleName:        orNA(roleName[emp.RoleID]),
			EvaluationTitle: orNA(evalTitle[sub.EvaluationID]),
			Score:           sub.Score,
			Timestamp:       sub.Timestamp,
		}
		out.Activity = append(out.Activity, row)
	}

	out.Total = len(kept)
	out.AverageScore = AverageScore(kept)
	return out, nil
}

// orNA substitutes the display placeholder for a dangling reference.
func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
