package scoring

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/ndi-assess/backend/internal/models"
)

func reportFixture() (models.Assessment, []models.Domain, []models.Response) {
	dg := makeDomain("DG", 3)
	dq := makeDomain("DQ", 3)
	pdp := makeDomain("PDP", 3)

	assessment := models.Assessment{
		ID:             uuid.New(),
		OrganizationID: uuid.New(),
		Name:           "Annual review",
		AssessmentType: models.TypeMaturity,
		TargetLevel:    4,
		Status:         models.StatusInProgress,
	}

	responses := []models.Response{
		answer(assessment.ID, dg.Questions[0], intPtr(4)),
		answer(assessment.ID, dg.Questions[1], intPtr(4)),
		answer(assessment.ID, dg.Questions[2], intPtr(5)),
		answer(assessment.ID, dq.Questions[0], intPtr(2)),
		answer(assessment.ID, dq.Questions[1], intPtr(1)),
		// PDP untouched
	}

	return assessment, []models.Domain{dg, dq, pdp}, responses
}

func TestBuildReport(t *testing.T) {
	assessment, domains, responses := reportFixture()

	report, err := BuildReport(assessment, domains, responses, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if report.Assessment.ID != assessment.ID {
		t.Error("report does not carry the source assessment")
	}
	if len(report.Maturity.DomainScores) != 3 {
		t.Fatalf("domain_scores length = %d, want 3", len(report.Maturity.DomainScores))
	}
	if len(report.Gaps) != 3 {
		t.Fatalf("gaps length = %d, want 3", len(report.Gaps))
	}

	// DG mean 13/3 ≈ 4.33 meets target 4; DQ 1.5 and PDP (unanswered) fail.
	if report.Compliance.DomainsMeetingTarget != 1 {
		t.Errorf("domains_meeting_target = %d, want 1", report.Compliance.DomainsMeetingTarget)
	}
	if report.Compliance.IsCompliant {
		t.Error("is_compliant = true, want false")
	}

	// DQ gap 2.5 and PDP gap 4.0 are critical; DG exceeds its target.
	if len(report.CriticalActions) != 2 {
		t.Errorf("critical_actions length = %d, want 2", len(report.CriticalActions))
	}
	if len(report.QuickWins) != 0 {
		t.Errorf("quick_wins length = %d, want 0", len(report.QuickWins))
	}
	for _, g := range report.CriticalActions {
		if g.Priority != models.PriorityCritical {
			t.Errorf("critical_actions contains priority %s", g.Priority)
		}
	}

	if report.GeneratedAt.IsZero() || report.GeneratedAt.Location() != time.UTC {
		t.Errorf("generated_at = %v, want non-zero UTC", report.GeneratedAt)
	}
}

func TestBuildReportDeterministic(t *testing.T) {
	assessment, domains, responses := reportFixture()

	first, err := BuildReport(assessment, domains, responses, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := BuildReport(assessment, domains, responses, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Byte-identical modulo the generation timestamp.
	first.GeneratedAt = time.Time{}
	second.GeneratedAt = time.Time{}
	if !reflect.DeepEqual(first, second) {
		t.Error("two reports over the same snapshot differ")
	}
}

func TestBuildReportInvalidTarget(t *testing.T) {
	assessment, domains, responses := reportFixture()

	report, err := BuildReport(assessment, domains, responses, 9)
	if !errors.Is(err, ErrInvalidTargetLevel) {
		t.Fatalf("err = %v, want ErrInvalidTargetLevel", err)
	}
	if report != nil {
		t.Error("report != nil on error, want no partial output")
	}
}
