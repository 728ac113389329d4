package services

import (
	"testing"

	"github.com/evalai/evalai-backend/internal/domain"
)

func TestScore(t *testing.T) {
	ev := domain.Evaluation{Questions: validQuestions(10)}

	tests := []struct {
		name    string
		answers []int
		want    int
	}{
		{"all correct", []int{0, 0, 0, 0, 0, 0, 0, 0, 0, 0}, 100},
		{"all wrong", []int{1, 1, 1, 1, 1, 1, 1, 1, 1, 1}, 0},
		{"seven of ten", []int{0, 0, 0, 0, 0, 0, 0, 1, 1, 1}, 70},
		{"one of ten", []int{0, 1, 1, 1, 1, 1, 1, 1, 1, 1}, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Score(ev, tt.answers); got != tt.want {
				t.Fatalf("expected %d, got %d", tt.want, got)
			}
		})
	}
}

func TestScoreRoundsHalfUp(t *testing.T) {
	// 1 of 8 correct is 12.5%, which rounds to 13.
	ev := domain.Evaluation{Questions: validQuestions(8)}
	answers := []int{0, 1, 1, 1, 1, 1, 1, 1}
	if got := Score(ev, answers); got != 13 {
		t.Fatalf("expected 13, got %d", got)
	}
}

func TestScoreNoQuestions(t *testing.T) {
	if got := Score(domain.Evaluation{}, nil); got != 0 {
		t.Fatalf("expected 0, got %d", got)
	}
}

func TestScoreShortAnswerSlice(t *testing.T) {
	ev := domain.Evaluation{Questions: validQuestions(4)}
	if got := Score(ev, []int{0, 0}); got != 50 {
		t.Fatalf("expected 50, got %d", got)
	}
}

func TestPassed(t *testing.T) {
	tests := []struct {
		score int
		want  bool
	}{
		{100, true},
		{70, true},
		{69, false},
		{0, false},
	}
	for _, tt := range tests {
		if got := Passed(tt.score); got != tt.want {
			t.Errorf("Passed(%d) = %v, expected %v", tt.score, got, tt.want)
		}
	}
}
