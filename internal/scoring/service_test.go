package scoring

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/ndi-assess/backend/internal/models"
)

type fakeCatalog struct {
	domains []models.Domain
	err     error
}

func (f *fakeCatalog) Domains(ctx context.Context) ([]models.Domain, error) {
	return f.domains, f.err
}

type fakeAssessments struct {
	assessment *models.Assessment
	responses  []models.Response
	getErr     error

	updatedMaturity   *float64
	updatedCompliance *float64
	updatedCurrent    *float64
	updateCalls       int
	updateErr         error
}

func (f *fakeAssessments) GetAssessment(ctx context.Context, id uuid.UUID) (*models.Assessment, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.assessment, nil
}

func (f *fakeAssessments) ListResponses(ctx context.Context, assessmentID uuid.UUID) ([]models.Response, error) {
	return f.responses, nil
}

func (f *fakeAssessments) UpdateScores(ctx context.Context, id uuid.UUID, maturity, compliance, current *float64) error {
	f.updateCalls++
	f.updatedMaturity = maturity
	f.updatedCompliance = compliance
	f.updatedCurrent = current
	return f.updateErr
}

func serviceFixture() (*Service, *fakeAssessments) {
	assessment, domains, responses := reportFixture()
	store := &fakeAssessments{assessment: &assessment, responses: responses}
	return NewService(&fakeCatalog{domains: domains}, store), store
}

func TestServiceMaturityScoreNotFound(t *testing.T) {
	store := &fakeAssessments{getErr: fmt.Errorf("get assessment: %w", sql.ErrNoRows)}
	svc := NewService(&fakeCatalog{}, store)

	_, err := svc.MaturityScore(context.Background(), uuid.New())
	if !errors.Is(err, ErrAssessmentNotFound) {
		t.Fatalf("err = %v, want ErrAssessmentNotFound", err)
	}
}

func TestServiceComplianceScoreTargetOverride(t *testing.T) {
	svc, _ := serviceFixture()

	// Stored target is 4; override down to 1 and DG (≈4.33) plus DQ (1.5,
	// level 2) both pass while unanswered PDP still fails.
	override := 1
	result, err := svc.ComplianceScore(context.Background(), uuid.New(), &override)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.TargetLevel != 1 {
		t.Errorf("target_level = %d, want override 1", result.TargetLevel)
	}
	if result.DomainsMeetingTarget != 2 {
		t.Errorf("domains_meeting_target = %d, want 2", result.DomainsMeetingTarget)
	}
}

func TestServiceComplianceScoreInvalidOverride(t *testing.T) {
	svc, _ := serviceFixture()

	override := 7
	_, err := svc.ComplianceScore(context.Background(), uuid.New(), &override)
	if !errors.Is(err, ErrInvalidTargetLevel) {
		t.Fatalf("err = %v, want ErrInvalidTargetLevel", err)
	}
}

func TestServiceRecalculatePersistsScores(t *testing.T) {
	svc, store := serviceFixture()

	report, err := svc.Recalculate(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if store.updateCalls != 1 {
		t.Fatalf("update calls = %d, want 1", store.updateCalls)
	}
	if store.updatedMaturity == nil || store.updatedCompliance == nil {
		t.Fatal("persisted scores are nil")
	}
	if *store.updatedMaturity != *report.Maturity.OverallScore {
		t.Errorf("stored maturity %v != reported %v", *store.updatedMaturity, *report.Maturity.OverallScore)
	}
	if *store.updatedCompliance != report.Compliance.CompliancePercentage {
		t.Errorf("stored compliance %v != reported %v", *store.updatedCompliance, report.Compliance.CompliancePercentage)
	}
	if report.Assessment.MaturityScore == nil || *report.Assessment.MaturityScore != *store.updatedMaturity {
		t.Error("returned assessment not stamped with persisted scores")
	}

	// Running it again over the same responses writes the same values.
	first := *store.updatedMaturity
	if _, err := svc.Recalculate(context.Background(), uuid.New()); err != nil {
		t.Fatalf("second run: %v", err)
	}
	if *store.updatedMaturity != first {
		t.Errorf("second run stored %v, want %v", *store.updatedMaturity, first)
	}
}

func TestServiceRecalculateUnanswered(t *testing.T) {
	assessment, domains, _ := reportFixture()
	store := &fakeAssessments{assessment: &assessment}
	svc := NewService(&fakeCatalog{domains: domains}, store)

	_, err := svc.Recalculate(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// No answers anywhere: maturity stays NULL, compliance is a real 0.
	if store.updatedMaturity != nil {
		t.Errorf("stored maturity = %v, want nil", *store.updatedMaturity)
	}
	if store.updatedCompliance == nil || *store.updatedCompliance != 0 {
		t.Errorf("stored compliance = %v, want 0", store.updatedCompliance)
	}
}
