package scoring

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/ndi-assess/backend/internal/models"
)

// ErrAssessmentNotFound is returned when the referenced assessment does not
// exist.
var ErrAssessmentNotFound = errors.New("assessment not found")

// CatalogStore provides the read-only domain/question catalog.
type CatalogStore interface {
	Domains(ctx context.Context) ([]models.Domain, error)
}

// AssessmentStore provides the response snapshot and takes the derived
// score fields back. The engine never writes responses or catalog data.
type AssessmentStore interface {
	GetAssessment(ctx context.Context, id uuid.UUID) (*models.Assessment, error)
	ListResponses(ctx context.Context, assessmentID uuid.UUID) ([]models.Response, error)
	UpdateScores(ctx context.Context, id uuid.UUID, maturity, compliance, current *float64) error
}

// Service loads an assessment snapshot, runs the pure engine over it, and
// persists derived scores. It holds no mutable state of its own — safe to
// share across concurrent requests.
type Service struct {
	catalog     CatalogStore
	assessments AssessmentStore
}

func NewService(catalog CatalogStore, assessments AssessmentStore) *Service {
	return &Service{catalog: catalog, assessments: assessments}
}

func (s *Service) snapshot(ctx context.Context, id uuid.UUID) (*models.Assessment, []models.Domain, []models.Response, error) {
	assessment, err := s.assessments.GetAssessment(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil, nil, ErrAssessmentNotFound
		}
		return nil, nil, nil, fmt.Errorf("load assessment: %w", err)
	}
	domains, err := s.catalog.Domains(ctx)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("load catalog: %w", err)
	}
	responses, err := s.assessments.ListResponses(ctx, id)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("load responses: %w", err)
	}
	return assessment, domains, responses, nil
}

// MaturityScore computes the maturity view for an assessment.
func (s *Service) MaturityScore(ctx context.Context, id uuid.UUID) (*models.MaturityScoreResult, error) {
	_, domains, responses, err := s.snapshot(ctx, id)
	if err != nil {
		return nil, err
	}
	result := MaturityResult(domains, responses)
	return &result, nil
}

// ComplianceScore computes the compliance view. The assessment's stored
// target level is used unless targetOverride is given.
func (s *Service) ComplianceScore(ctx context.Context, id uuid.UUID, targetOverride *int) (*models.ComplianceResult, error) {
	assessment, domains, responses, err := s.snapshot(ctx, id)
	if err != nil {
		return nil, err
	}
	target := assessment.TargetLevel
	if targetOverride != nil {
		target = *targetOverride
	}
	result, err := EvaluateCompliance(DomainScores(domains, responses), target)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// Report assembles the full report for an assessment without persisting
// anything.
func (s *Service) Report(ctx context.Context, id uuid.UUID) (*models.AssessmentReport, error) {
	assessment, domains, responses, err := s.snapshot(ctx, id)
	if err != nil {
		return nil, err
	}
	return BuildReport(*assessment, domains, responses, assessment.TargetLevel)
}

// Recalculate rebuilds the report and writes the derived score fields back
// onto the assessment record. Idempotent: running it twice over the same
// responses yields the same stored scores.
func (s *Service) Recalculate(ctx context.Context, id uuid.UUID) (*models.AssessmentReport, error) {
	report, err := s.Report(ctx, id)
	if err != nil {
		return nil, err
	}

	compliance := report.Compliance.CompliancePercentage
	maturity := report.Maturity.OverallScore
	if err := s.assessments.UpdateScores(ctx, id, maturity, &compliance, maturity); err != nil {
		return nil, fmt.Errorf("persist scores: %w", err)
	}

	report.Assessment.MaturityScore = maturity
	report.Assessment.ComplianceScore = &compliance
	report.Assessment.CurrentScore = maturity
	return report, nil
}
