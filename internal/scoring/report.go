package scoring

import (
	"time"

	"github.com/ndi-assess/backend/internal/models"
)

// BuildReport runs the whole pipeline — aggregation, rollup, compliance,
// gap analysis — over one immutable snapshot and packages the result.
// Pure orchestration: any sub-step error fails the report as a whole, no
// partial output. Everything except GeneratedAt is deterministic for a
// given snapshot.
func BuildReport(assessment models.Assessment, domains []models.Domain, responses []models.Response, targetLevel int) (*models.AssessmentReport, error) {
	scores := DomainScores(domains, responses)

	compliance, err := EvaluateCompliance(scores, targetLevel)
	if err != nil {
		return nil, err
	}
	gaps, err := AnalyzeGaps(scores, targetLevel)
	if err != nil {
		return nil, err
	}

	quickWins := make([]models.GapItem, 0)
	critical := make([]models.GapItem, 0)
	for _, g := range gaps {
		switch g.Priority {
		case models.PriorityQuickWin:
			quickWins = append(quickWins, g)
		case models.PriorityCritical:
			critical = append(critical, g)
		}
	}

	return &models.AssessmentReport{
		Assessment:      assessment,
		Maturity:        MaturityResult(domains, responses),
		Compliance:      compliance,
		Gaps:            gaps,
		QuickWins:       quickWins,
		CriticalActions: critical,
		GeneratedAt:     time.Now().UTC(),
	}, nil
}
