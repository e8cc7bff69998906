package models

import (
	"time"

	"github.com/google/uuid"
)

type AssessmentType string

const (
	TypeMaturity   AssessmentType = "maturity"
	TypeCompliance AssessmentType = "compliance"
	TypeOE         AssessmentType = "oe" // operational excellence
)

var ValidAssessmentTypes = map[AssessmentType]bool{
	TypeMaturity:   true,
	TypeCompliance: true,
	TypeOE:         true,
}

type AssessmentStatus string

const (
	StatusDraft      AssessmentStatus = "draft"
	StatusInProgress AssessmentStatus = "in_progress"
	StatusCompleted  AssessmentStatus = "completed"
)

var statusRank = map[AssessmentStatus]int{
	StatusDraft:      0,
	StatusInProgress: 1,
	StatusCompleted:  2,
}

// ValidStatus reports whether s is a known assessment status.
func ValidStatus(s AssessmentStatus) bool {
	_, ok := statusRank[s]
	return ok
}

// CanTransitionTo reports whether the status may move to next. The lifecycle
// is one-directional: draft → in_progress → completed, no way back.
func (s AssessmentStatus) CanTransitionTo(next AssessmentStatus) bool {
	from, ok := statusRank[s]
	if !ok {
		return false
	}
	to, ok := statusRank[next]
	if !ok {
		return false
	}
	return to >= from
}

// DefaultTargetLevel is used when an assessment is created without one.
const DefaultTargetLevel = 3

// Assessment is the unit of work: one organization's run through the
// questionnaire. Score fields are derived and nullable until computed;
// only the scoring engine writes them.
type Assessment struct {
	ID              uuid.UUID        `json:"id"`
	OrganizationID  uuid.UUID        `json:"organization_id"`
	AssessmentType  AssessmentType   `json:"assessment_type"`
	Status          AssessmentStatus `json:"status"`
	Name            string           `json:"name"`
	Description     string           `json:"description,omitempty"`
	TargetLevel     int              `json:"target_level"`
	CurrentScore    *float64         `json:"current_score"`
	MaturityScore   *float64         `json:"maturity_score"`
	ComplianceScore *float64         `json:"compliance_score"`
	CreatedBy       *uuid.UUID       `json:"created_by,omitempty"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
	CompletedAt     *time.Time       `json:"completed_at"`

	ResponsesCount     int     `json:"responses_count,omitempty"`
	ProgressPercentage float64 `json:"progress_percentage,omitempty"`
}

// Response is one answer per (assessment, question) pair, upserted in place.
// SelectedLevel nil means "saved but unanswered" — distinct from level 0.
type Response struct {
	ID            uuid.UUID   `json:"id"`
	AssessmentID  uuid.UUID   `json:"assessment_id"`
	QuestionID    uuid.UUID   `json:"question_id"`
	SelectedLevel *int        `json:"selected_level"`
	Justification string      `json:"justification,omitempty"`
	Notes         string      `json:"notes,omitempty"`
	EvidenceIDs   []uuid.UUID `json:"evidence_ids,omitempty"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}

type CreateAssessmentRequest struct {
	Name           string         `json:"name"`
	Description    string         `json:"description"`
	AssessmentType AssessmentType `json:"assessment_type"`
	TargetLevel    *int           `json:"target_level"`
}

type UpdateAssessmentRequest struct {
	Name        *string           `json:"name"`
	Description *string           `json:"description"`
	TargetLevel *int              `json:"target_level"`
	Status      *AssessmentStatus `json:"status"`
}

type SaveResponseRequest struct {
	QuestionID    uuid.UUID   `json:"question_id"`
	SelectedLevel *int        `json:"selected_level"`
	Justification string      `json:"justification"`
	Notes         string      `json:"notes"`
	EvidenceIDs   []uuid.UUID `json:"evidence_ids"`
}
