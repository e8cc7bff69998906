package models

import "testing"

func TestCanTransitionTo(t *testing.T) {
	tests := []struct {
		from AssessmentStatus
		to   AssessmentStatus
		want bool
	}{
		{StatusDraft, StatusDraft, true},
		{StatusDraft, StatusInProgress, true},
		{StatusDraft, StatusCompleted, true},
		{StatusInProgress, StatusInProgress, true},
		{StatusInProgress, StatusCompleted, true},
		{StatusInProgress, StatusDraft, false},
		{StatusCompleted, StatusCompleted, true},
		{StatusCompleted, StatusInProgress, false},
		{StatusCompleted, StatusDraft, false},
		{AssessmentStatus("archived"), StatusDraft, false},
		{StatusDraft, AssessmentStatus("archived"), false},
	}

	for _, tt := range tests {
		if got := tt.from.CanTransitionTo(tt.to); got != tt.want {
			t.Errorf("%s -> %s = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestValidLevel(t *testing.T) {
	for level := 0; level <= 5; level++ {
		if !ValidLevel(level) {
			t.Errorf("ValidLevel(%d) = false", level)
		}
	}
	for _, level := range []int{-1, 6, 100} {
		if ValidLevel(level) {
			t.Errorf("ValidLevel(%d) = true", level)
		}
	}
}

func TestLevelNames(t *testing.T) {
	if got := LevelNameEn(3); got != "Activated" {
		t.Errorf("LevelNameEn(3) = %q", got)
	}
	if got := LevelNameAr(5); got != "الريادة" {
		t.Errorf("LevelNameAr(5) = %q", got)
	}
	if got := LevelNameEn(9); got != "Unknown" {
		t.Errorf("LevelNameEn(9) = %q", got)
	}
}
