package catalog

import (
	"strings"
	"testing"

	"github.com/ndi-assess/backend/internal/models"
)

func TestSeedDomainData(t *testing.T) {
	if len(seedDomains) != 14 {
		t.Fatalf("seed domains = %d, want 14", len(seedDomains))
	}

	codes := map[string]bool{}
	for _, sd := range seedDomains {
		if sd.code == "" || sd.nameEn == "" || sd.nameAr == "" {
			t.Errorf("domain %q has empty required fields", sd.code)
		}
		if codes[sd.code] {
			t.Errorf("duplicate domain code %q", sd.code)
		}
		codes[sd.code] = true
	}

	for _, want := range []string{"DG", "DQ", "OD", "PDP", "FOI"} {
		if !codes[want] {
			t.Errorf("seed data is missing domain %s", want)
		}
	}
}

func TestSeedQuestionTemplates(t *testing.T) {
	if len(questionTemplates) != 3 {
		t.Fatalf("question templates = %d, want 3", len(questionTemplates))
	}
	for i, tmpl := range questionTemplates {
		if !strings.Contains(tmpl.en, "%s") || !strings.Contains(tmpl.ar, "%s") {
			t.Errorf("template %d does not take a domain name", i)
		}
	}
}

func TestSeedLevelCriteria(t *testing.T) {
	for level := models.MinMaturityLevel; level <= models.MaxMaturityLevel; level++ {
		criteria, ok := levelCriteria[level]
		if !ok {
			t.Fatalf("no criteria for level %d", level)
		}
		if criteria.descEn == "" || criteria.descAr == "" {
			t.Errorf("level %d has empty descriptions", level)
		}
		if len(criteria.evidenceEn) != len(criteria.evidenceAr) {
			t.Errorf("level %d evidence lists differ in length", level)
		}
	}
	// Level 0 is the only one with no acceptance evidence.
	if len(levelCriteria[0].evidenceEn) != 0 {
		t.Error("level 0 should carry no acceptance evidence")
	}
	if len(levelCriteria[3].evidenceEn) == 0 {
		t.Error("level 3 should carry acceptance evidence")
	}
}
