package assessments

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/ndi-assess/backend/internal/catalog"
	"github.com/ndi-assess/backend/internal/models"
	"github.com/ndi-assess/backend/internal/scoring"
)

var (
	ErrNotFound          = errors.New("assessment not found")
	ErrInvalidType       = errors.New("assessment_type must be maturity, compliance, or oe")
	ErrInvalidStatus     = errors.New("status must be draft, in_progress, or completed")
	ErrQuestionNotFound  = errors.New("question not found")
	ErrCompleted         = errors.New("assessment is completed and can no longer be edited")
	ErrInvalidTransition = errors.New("assessment status cannot move backwards")
	ErrInvalidLevel      = errors.New("selected_level must be between 0 and 5")
)

type Service struct {
	store   *Store
	catalog *catalog.Store
	scorer  *scoring.Service
}

func NewService(store *Store, catalogStore *catalog.Store, scorer *scoring.Service) *Service {
	return &Service{store: store, catalog: catalogStore, scorer: scorer}
}

func (s *Service) Create(ctx context.Context, orgID uuid.UUID, createdBy *uuid.UUID, req models.CreateAssessmentRequest) (*models.Assessment, error) {
	assessmentType := req.AssessmentType
	if assessmentType == "" {
		assessmentType = models.TypeMaturity
	}
	if !models.ValidAssessmentTypes[assessmentType] {
		return nil, ErrInvalidType
	}

	targetLevel := models.DefaultTargetLevel
	if req.TargetLevel != nil {
		targetLevel = *req.TargetLevel
	}
	if !models.ValidLevel(targetLevel) {
		return nil, scoring.ErrInvalidTargetLevel
	}

	a := &models.Assessment{
		ID:             uuid.New(),
		OrganizationID: orgID,
		AssessmentType: assessmentType,
		Status:         models.StatusDraft,
		Name:           req.Name,
		Description:    req.Description,
		TargetLevel:    targetLevel,
		CreatedBy:      createdBy,
	}
	if err := s.store.CreateAssessment(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// Get loads an assessment scoped to the caller's organization and attaches
// progress figures.
func (s *Service) Get(ctx context.Context, orgID, id uuid.UUID) (*models.Assessment, error) {
	a, err := s.store.GetAssessment(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if a.OrganizationID != orgID {
		return nil, ErrNotFound
	}

	answered, err := s.store.CountAnswered(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("count responses: %w", err)
	}
	total, err := s.catalog.CountQuestions(ctx)
	if err != nil {
		return nil, fmt.Errorf("count questions: %w", err)
	}
	a.ResponsesCount = answered
	if total > 0 {
		a.ProgressPercentage = 100 * float64(answered) / float64(total)
	}
	return a, nil
}

func (s *Service) List(ctx context.Context, orgID uuid.UUID, status *models.AssessmentStatus, limit, offset int) ([]models.Assessment, error) {
	return s.store.ListAssessments(ctx, orgID, status, limit, offset)
}

// Update applies mutable fields. Status may only move forward; the move to
// completed goes through the same recompute path as Submit.
func (s *Service) Update(ctx context.Context, orgID, id uuid.UUID, req models.UpdateAssessmentRequest) (*models.Assessment, error) {
	a, err := s.Get(ctx, orgID, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		a.Name = *req.Name
	}
	if req.Description != nil {
		a.Description = *req.Description
	}
	if req.TargetLevel != nil {
		if !models.ValidLevel(*req.TargetLevel) {
			return nil, scoring.ErrInvalidTargetLevel
		}
		a.TargetLevel = *req.TargetLevel
	}

	completing := false
	if req.Status != nil && *req.Status != a.Status {
		if !models.ValidStatus(*req.Status) {
			return nil, ErrInvalidStatus
		}
		if !a.Status.CanTransitionTo(*req.Status) {
			return nil, ErrInvalidTransition
		}
		completing = *req.Status == models.StatusCompleted
		a.Status = *req.Status
	}

	if err := s.store.UpdateAssessment(ctx, a); err != nil {
		return nil, err
	}
	if completing {
		return s.Submit(ctx, orgID, id)
	}
	return s.Get(ctx, orgID, id)
}

func (s *Service) Delete(ctx context.Context, orgID, id uuid.UUID) error {
	if _, err := s.Get(ctx, orgID, id); err != nil {
		return err
	}
	return s.store.DeleteAssessment(ctx, id)
}

// SaveResponse upserts the answer for one question. The first save on a
// draft assessment moves it to in_progress; completed assessments reject
// further edits.
func (s *Service) SaveResponse(ctx context.Context, orgID, assessmentID uuid.UUID, req models.SaveResponseRequest) (*models.Response, error) {
	a, err := s.Get(ctx, orgID, assessmentID)
	if err != nil {
		return nil, err
	}
	if a.Status == models.StatusCompleted {
		return nil, ErrCompleted
	}
	if req.SelectedLevel != nil && !models.ValidLevel(*req.SelectedLevel) {
		return nil, ErrInvalidLevel
	}

	exists, err := s.catalog.QuestionExists(ctx, req.QuestionID)
	if err != nil {
		return nil, fmt.Errorf("check question: %w", err)
	}
	if !exists {
		return nil, ErrQuestionNotFound
	}

	resp := &models.Response{
		ID:            uuid.New(),
		AssessmentID:  assessmentID,
		QuestionID:    req.QuestionID,
		SelectedLevel: req.SelectedLevel,
		Justification: req.Justification,
		Notes:         req.Notes,
		EvidenceIDs:   req.EvidenceIDs,
	}
	if err := s.store.UpsertResponse(ctx, resp); err != nil {
		return nil, err
	}

	if a.Status == models.StatusDraft {
		if err := s.store.SetStatus(ctx, assessmentID, models.StatusInProgress, nil); err != nil {
			return nil, err
		}
	}
	return resp, nil
}

func (s *Service) ListResponses(ctx context.Context, orgID, assessmentID uuid.UUID) ([]models.Response, error) {
	if _, err := s.Get(ctx, orgID, assessmentID); err != nil {
		return nil, err
	}
	return s.store.ListResponses(ctx, assessmentID)
}

// Submit completes the assessment: scores are recomputed and persisted,
// then the status flips to completed with a fresh completed_at stamp.
// Calling it on an already-completed assessment recomputes and re-stamps
// rather than rejecting — submission is idempotent. There is no way out of
// completed.
func (s *Service) Submit(ctx context.Context, orgID, id uuid.UUID) (*models.Assessment, error) {
	if _, err := s.Get(ctx, orgID, id); err != nil {
		return nil, err
	}

	// Recompute before transitioning so a scoring failure leaves the
	// assessment in its prior state.
	if _, err := s.scorer.Recalculate(ctx, id); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	if err := s.store.SetStatus(ctx, id, models.StatusCompleted, &now); err != nil {
		return nil, err
	}
	return s.Get(ctx, orgID, id)
}
