package scoring

import (
	"math"

	"github.com/google/uuid"
	"github.com/ndi-assess/backend/internal/models"
)

// AggregateDomain collapses the responses belonging to one domain into a
// DomainScore. The score is the mean selected level over answered questions;
// it stays nil when nothing in the domain has been answered. TotalQuestions
// comes from the catalog, not from the saved responses, so a domain with no
// responses still reports its full denominator. Responses pointing at
// questions outside the domain are skipped.
func AggregateDomain(domain models.Domain, responses []models.Response) models.DomainScore {
	questionIDs := make(map[uuid.UUID]bool, len(domain.Questions))
	for _, q := range domain.Questions {
		questionIDs[q.ID] = true
	}

	var sum float64
	answered := 0
	for _, r := range responses {
		if !questionIDs[r.QuestionID] {
			continue
		}
		if r.SelectedLevel == nil {
			continue // saved but unanswered
		}
		sum += float64(*r.SelectedLevel)
		answered++
	}

	ds := models.DomainScore{
		DomainCode:     domain.Code,
		DomainNameEn:   domain.NameEn,
		DomainNameAr:   domain.NameAr,
		AnsweredCount:  answered,
		TotalQuestions: domain.QuestionCount,
	}
	if answered > 0 {
		score := sum / float64(answered)
		ds.Score = &score
		ds.Level = LevelForScore(score)
	}
	ds.LevelNameEn = models.LevelNameEn(ds.Level)
	ds.LevelNameAr = models.LevelNameAr(ds.Level)
	return ds
}

// DomainScores aggregates every domain in catalog order. Responses that
// reference a question absent from all domains are dropped silently inside
// AggregateDomain — stale references never fail the computation.
func DomainScores(domains []models.Domain, responses []models.Response) []models.DomainScore {
	scores := make([]models.DomainScore, 0, len(domains))
	for _, d := range domains {
		scores = append(scores, AggregateDomain(d, responses))
	}
	return scores
}

// OverallScore is the unweighted mean over domains that have at least one
// answered question. Domains with zero answers are left out of the
// denominator entirely rather than counted as zero. Returns nil when no
// domain has any answer. The mean is unweighted by design: a 2-question
// domain counts the same as a 4-question one, matching the convention the
// report gap tables assume.
func OverallScore(domainScores []models.DomainScore) *float64 {
	var sum float64
	n := 0
	for _, ds := range domainScores {
		if ds.Score == nil {
			continue
		}
		sum += *ds.Score
		n++
	}
	if n == 0 {
		return nil
	}
	overall := sum / float64(n)
	return &overall
}

// MaturityResult runs aggregation and rollup over one snapshot and shapes
// the maturity score payload. Rounding happens here, once, so repeated runs
// over the same snapshot are byte-identical; the raw per-domain means feed
// the rollup before any rounding.
func MaturityResult(domains []models.Domain, responses []models.Response) models.MaturityScoreResult {
	scores := DomainScores(domains, responses)
	overall := OverallScore(scores)

	result := models.MaturityScoreResult{
		DomainScores: make([]models.DomainScore, len(scores)),
	}
	for i, ds := range scores {
		if ds.Score != nil {
			raw := *ds.Score
			ds.Percentage = round1(raw / 5 * 100)
			rounded := round2(raw)
			ds.Score = &rounded
		}
		result.AnsweredCount += ds.AnsweredCount
		result.TotalQuestions += ds.TotalQuestions
		result.DomainScores[i] = ds
	}

	result.OverallLevel = 0
	if overall != nil {
		raw := *overall
		result.OverallLevel = LevelForScore(raw)
		result.OverallPercentage = round1(raw / 5 * 100)
		rounded := round2(raw)
		result.OverallScore = &rounded
	}
	result.OverallLevelNameEn = models.LevelNameEn(result.OverallLevel)
	result.OverallLevelNameAr = models.LevelNameAr(result.OverallLevel)
	return result
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
