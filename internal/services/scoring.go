package services

import (
	"math"

	"github.com/evalai/evalai-backend/internal/domain"
)

// PassThreshold is the minimum score considered a pass. It frames result
// display only; the stored submission keeps the raw score.
const PassThreshold = 70

// Score computes the integer percentage 0-100 for an answer set against the
// evaluation's answer key, rounding half up. The caller supplies exactly one
// slot per question; the -1 unanswered sentinel never equals a valid correct
// index and therefore always counts as wrong here.
func Score(ev domain.Evaluation, answers []int) int {
	n := len(ev.Questions)
	if n == 0 {
		return 0
	}
	hits := 0
	for i, q := range ev.Questions {
		if i < len(answers) && answers[i] == q.Correct {
			hits++
		}
	}
	return int(math.Round(float64(hits) / float64(n) * 100))
}

// Passed reports whether a score meets the pass threshold.
func Passed(score int) bool { return score >= PassThreshold }
