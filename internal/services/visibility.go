package services

import "github.com/evalai/evalai-backend/internal/domain"

// VisibleEvaluations returns the subset of evaluations the user may take, in
// stable source order. An evaluation is included when, in this order:
//
//  1. it is published;
//  2. the user has no prior submission for it;
//  3. its target scope matches the user (an unset target company means
//     global; a user without a company therefore only ever sees global
//     evaluations).
//
// The function is pure: it inspects only its arguments.
func VisibleEvaluations(user domain.User, evaluations []domain.Evaluation, submissions []domain.Submission) []domain.Evaluation {
	taken := make(map[string]struct{})
	for _, s := range submissions {
		if s.UserID == user.ID {
			taken[s.EvaluationID] = struct{}{}
		}
	}

	out := make([]domain.Evaluation, 0, len(evaluations))
	for _, ev := range evaluations {
		if !ev.Published {
			continue
		}
		if _, done := taken[ev.ID]; done {
			continue
		}
		if !ev.Target.Matches(user) {
			continue
		}
		out = append(out, ev)
	}
	return out
}
