package scoring

import (
	"math"
	"sort"

	"github.com/ndi-assess/backend/internal/models"
)

// Priority buckets on the continuous gap. Everything between the two
// thresholds is "standard" and appears in neither report section.
const (
	criticalGapThreshold = 1.5
	quickWinGapThreshold = 0.5
)

// AnalyzeGaps produces one GapItem per domain, ranked by continuous gap
// descending with ties broken by domain code ascending so report output is
// stable. CurrentLevel here is the floor of the raw domain score (0 when
// unanswered), while the compliance table classifies through the level
// boundaries — the two views keep their own numbers on purpose.
func AnalyzeGaps(domainScores []models.DomainScore, targetLevel int) ([]models.GapItem, error) {
	if !models.ValidLevel(targetLevel) {
		return nil, ErrInvalidTargetLevel
	}

	items := make([]models.GapItem, 0, len(domainScores))
	for _, ds := range domainScores {
		raw := 0.0
		if ds.Score != nil {
			raw = *ds.Score
		}
		current := int(math.Floor(raw))

		continuous := float64(targetLevel) - raw
		if continuous < 0 {
			continuous = 0
		}
		levelGap := targetLevel - current
		if levelGap < 0 {
			levelGap = 0
		}

		items = append(items, models.GapItem{
			DomainCode:    ds.DomainCode,
			DomainNameEn:  ds.DomainNameEn,
			DomainNameAr:  ds.DomainNameAr,
			CurrentLevel:  current,
			TargetLevel:   targetLevel,
			ContinuousGap: round2(continuous),
			LevelGap:      levelGap,
			Priority:      priorityForGap(continuous),
		})
	}

	sort.Slice(items, func(i, j int) bool {
		if items[i].ContinuousGap != items[j].ContinuousGap {
			return items[i].ContinuousGap > items[j].ContinuousGap
		}
		return items[i].DomainCode < items[j].DomainCode
	})
	return items, nil
}

func priorityForGap(gap float64) models.GapPriority {
	switch {
	case gap >= criticalGapThreshold:
		return models.PriorityCritical
	case gap > 0 && gap <= quickWinGapThreshold:
		return models.PriorityQuickWin
	default:
		return models.PriorityStandard
	}
}
