package scoring

import (
	"errors"
	"testing"

	"github.com/ndi-assess/backend/internal/models"
)

func floatPtr(v float64) *float64 { return &v }

func domainScore(code string, score *float64) models.DomainScore {
	return models.DomainScore{
		DomainCode:   code,
		DomainNameEn: code + " domain",
		DomainNameAr: code,
		Score:        score,
	}
}

func TestEvaluateComplianceInvalidTarget(t *testing.T) {
	for _, target := range []int{-1, 6, 42} {
		_, err := EvaluateCompliance(nil, target)
		if !errors.Is(err, ErrInvalidTargetLevel) {
			t.Errorf("target %d: err = %v, want ErrInvalidTargetLevel", target, err)
		}
	}
}

func TestEvaluateCompliance(t *testing.T) {
	scores := []models.DomainScore{
		domainScore("DG", floatPtr(4.2)), // level 4, meets
		domainScore("DQ", floatPtr(3.5)), // level 3, fails
		domainScore("PDP", floatPtr(1.0)), // level 1, fails
		domainScore("OD", nil),           // unanswered, fails at level 0
	}

	result, err := EvaluateCompliance(scores, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.DomainsMeetingTarget != 1 {
		t.Errorf("domains_meeting_target = %d, want 1", result.DomainsMeetingTarget)
	}
	if result.TotalDomains != 4 {
		t.Errorf("total_domains = %d, want 4", result.TotalDomains)
	}
	if result.CompliancePercentage != 25.0 {
		t.Errorf("compliance_percentage = %v, want 25.0", result.CompliancePercentage)
	}
	if result.IsCompliant {
		t.Error("is_compliant = true, want false below 100%")
	}
	if len(result.GapDomains) != 3 {
		t.Fatalf("gap_domains length = %d, want 3", len(result.GapDomains))
	}
	for _, gd := range result.GapDomains {
		if gd.Gap < 0 {
			t.Errorf("domain %s: gap %d < 0", gd.DomainCode, gd.Gap)
		}
		if gd.Gap != gd.TargetLevel-gd.CurrentLevel {
			t.Errorf("domain %s: gap %d != target-current", gd.DomainCode, gd.Gap)
		}
	}
}

func TestEvaluateComplianceAllUnanswered(t *testing.T) {
	scores := make([]models.DomainScore, 0, 14)
	for i := 0; i < 14; i++ {
		scores = append(scores, domainScore(domainCode(i), nil))
	}

	result, err := EvaluateCompliance(scores, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.CompliancePercentage != 0 {
		t.Errorf("compliance_percentage = %v, want 0", result.CompliancePercentage)
	}
	if len(result.GapDomains) != 14 {
		t.Fatalf("gap_domains length = %d, want 14", len(result.GapDomains))
	}
	for _, gd := range result.GapDomains {
		if gd.CurrentLevel != 0 || gd.Gap != 3 {
			t.Errorf("domain %s: current=%d gap=%d, want 0/3", gd.DomainCode, gd.CurrentLevel, gd.Gap)
		}
	}
}

func TestEvaluateComplianceFullyCompliant(t *testing.T) {
	scores := []models.DomainScore{
		domainScore("DG", floatPtr(4.0)),
		domainScore("DQ", floatPtr(5.0)),
	}

	result, err := EvaluateCompliance(scores, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !result.IsCompliant {
		t.Error("is_compliant = false, want true at 100%")
	}
	if result.CompliancePercentage != 100.0 {
		t.Errorf("compliance_percentage = %v, want 100.0", result.CompliancePercentage)
	}
	if len(result.GapDomains) != 0 {
		t.Errorf("gap_domains length = %d, want 0", len(result.GapDomains))
	}
}

func TestEvaluateComplianceNoDomains(t *testing.T) {
	result, err := EvaluateCompliance(nil, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// An empty catalog can never be compliant.
	if result.IsCompliant {
		t.Error("is_compliant = true with zero domains")
	}
	if result.CompliancePercentage != 0 {
		t.Errorf("compliance_percentage = %v, want 0", result.CompliancePercentage)
	}
}

func TestEvaluateComplianceUsesLevelBoundaries(t *testing.T) {
	// 2.5 sits exactly on the level-3 boundary and must pass a target of 3.
	scores := []models.DomainScore{domainScore("DG", floatPtr(2.5))}

	result, err := EvaluateCompliance(scores, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.DomainsMeetingTarget != 1 {
		t.Errorf("score 2.5 vs target 3: meeting = %d, want 1", result.DomainsMeetingTarget)
	}
}
