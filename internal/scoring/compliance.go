package scoring

import (
	"errors"

	"github.com/ndi-assess/backend/internal/models"
)

// ErrInvalidTargetLevel rejects compliance/gap computations with a target
// outside 0-5. Never clamped: a bad target means the assessment was set up
// wrong and the caller has to know.
var ErrInvalidTargetLevel = errors.New("target level must be between 0 and 5")

// EvaluateCompliance compares each domain's discretized level against the
// target. A domain with no answers is evaluated at score 0 here — unlike the
// maturity rollup, compliance is a pass/fail verdict and an unanswered
// domain cannot pass. Compliance is all-or-nothing at the assessment level:
// is_compliant only at exactly 100%.
func EvaluateCompliance(domainScores []models.DomainScore, targetLevel int) (models.ComplianceResult, error) {
	if !models.ValidLevel(targetLevel) {
		return models.ComplianceResult{}, ErrInvalidTargetLevel
	}

	result := models.ComplianceResult{
		TargetLevel:  targetLevel,
		TotalDomains: len(domainScores),
		GapDomains:   []models.GapDomain{},
	}
	for _, ds := range domainScores {
		score := 0.0
		if ds.Score != nil {
			score = *ds.Score
		}
		current := LevelForScore(score)
		if current >= targetLevel {
			result.DomainsMeetingTarget++
			continue
		}
		result.GapDomains = append(result.GapDomains, models.GapDomain{
			DomainCode:   ds.DomainCode,
			CurrentLevel: current,
			TargetLevel:  targetLevel,
			Gap:          targetLevel - current,
		})
	}

	if result.TotalDomains > 0 {
		result.CompliancePercentage = round1(100 * float64(result.DomainsMeetingTarget) / float64(result.TotalDomains))
	}
	result.IsCompliant = result.TotalDomains > 0 && result.DomainsMeetingTarget == result.TotalDomains
	return result, nil
}
