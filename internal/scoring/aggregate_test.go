package scoring

import (
	"testing"

	"github.com/google/uuid"
	"github.com/ndi-assess/backend/internal/models"
)

func makeDomain(code string, questionCount int) models.Domain {
	d := models.Domain{
		ID:            uuid.New(),
		Code:          code,
		NameEn:        code + " domain",
		NameAr:        code,
		QuestionCount: questionCount,
	}
	for i := 0; i < questionCount; i++ {
		d.Questions = append(d.Questions, models.Question{
			ID:       uuid.New(),
			DomainID: d.ID,
		})
	}
	return d
}

func answer(assessmentID uuid.UUID, q models.Question, level *int) models.Response {
	return models.Response{
		ID:            uuid.New(),
		AssessmentID:  assessmentID,
		QuestionID:    q.ID,
		SelectedLevel: level,
	}
}

func intPtr(v int) *int { return &v }

func TestAggregateDomain(t *testing.T) {
	domain := makeDomain("DG", 3)
	assessmentID := uuid.New()
	responses := []models.Response{
		answer(assessmentID, domain.Questions[0], intPtr(3)),
		answer(assessmentID, domain.Questions[1], intPtr(4)),
		answer(assessmentID, domain.Questions[2], nil), // saved but unanswered
	}

	ds := AggregateDomain(domain, responses)

	if ds.Score == nil || *ds.Score != 3.5 {
		t.Fatalf("score = %v, want 3.5", ds.Score)
	}
	if ds.AnsweredCount != 2 {
		t.Errorf("answered_count = %d, want 2", ds.AnsweredCount)
	}
	if ds.TotalQuestions != 3 {
		t.Errorf("total_questions = %d, want 3", ds.TotalQuestions)
	}
	if ds.Level != 3 {
		t.Errorf("level = %d, want 3", ds.Level)
	}
	if ds.LevelNameEn != "Activated" {
		t.Errorf("level_name_en = %q, want Activated", ds.LevelNameEn)
	}
}

func TestAggregateDomainNoAnswers(t *testing.T) {
	domain := makeDomain("DQ", 3)

	ds := AggregateDomain(domain, nil)

	if ds.Score != nil {
		t.Errorf("score = %v, want nil for unanswered domain", *ds.Score)
	}
	if ds.Level != 0 {
		t.Errorf("level = %d, want 0", ds.Level)
	}
	// Denominator comes from the catalog even with zero saved responses.
	if ds.TotalQuestions != 3 {
		t.Errorf("total_questions = %d, want 3", ds.TotalQuestions)
	}
}

func TestAggregateDomainSkipsOrphanResponses(t *testing.T) {
	domain := makeDomain("DG", 2)
	assessmentID := uuid.New()
	orphan := models.Response{
		ID:            uuid.New(),
		AssessmentID:  assessmentID,
		QuestionID:    uuid.New(), // not in any domain
		SelectedLevel: intPtr(5),
	}
	responses := []models.Response{
		answer(assessmentID, domain.Questions[0], intPtr(2)),
		orphan,
	}

	ds := AggregateDomain(domain, responses)

	if ds.AnsweredCount != 1 {
		t.Errorf("answered_count = %d, want 1 (orphan must be excluded)", ds.AnsweredCount)
	}
	if ds.Score == nil || *ds.Score != 2.0 {
		t.Errorf("score = %v, want 2.0", ds.Score)
	}
}

func TestOverallScoreExcludesUnansweredDomains(t *testing.T) {
	assessmentID := uuid.New()
	domains := make([]models.Domain, 14)
	var responses []models.Response
	for i := range domains {
		domains[i] = makeDomain(domainCode(i), 3)
	}
	// Only one domain answered, at level 4. The 13 silent domains must not
	// drag the overall toward zero.
	responses = append(responses, answer(assessmentID, domains[0].Questions[0], intPtr(4)))

	scores := DomainScores(domains, responses)
	overall := OverallScore(scores)

	if overall == nil {
		t.Fatal("overall = nil, want 4.0")
	}
	if *overall != 4.0 {
		t.Errorf("overall = %v, want 4.0", *overall)
	}
}

func TestOverallScoreUndefined(t *testing.T) {
	if got := OverallScore(nil); got != nil {
		t.Errorf("OverallScore(nil) = %v, want nil", *got)
	}

	// Domains exist but nothing is answered: still undefined, never 0.
	scores := DomainScores([]models.Domain{makeDomain("DG", 3), makeDomain("DQ", 3)}, nil)
	if got := OverallScore(scores); got != nil {
		t.Errorf("OverallScore(unanswered) = %v, want nil", *got)
	}
}

func TestOverallScoreUnweightedByQuestionCount(t *testing.T) {
	assessmentID := uuid.New()
	small := makeDomain("OD", 2)
	large := makeDomain("DG", 4)

	var responses []models.Response
	for _, q := range small.Questions {
		responses = append(responses, answer(assessmentID, q, intPtr(1)))
	}
	for _, q := range large.Questions {
		responses = append(responses, answer(assessmentID, q, intPtr(5)))
	}

	overall := OverallScore(DomainScores([]models.Domain{small, large}, responses))
	if overall == nil {
		t.Fatal("overall = nil")
	}
	// Unweighted mean of domain means: (1 + 5) / 2, not the per-question
	// mean (2+10+20)/6.
	if *overall != 3.0 {
		t.Errorf("overall = %v, want 3.0 (equal domain weight)", *overall)
	}
}

func TestMaturityResult(t *testing.T) {
	assessmentID := uuid.New()
	dg := makeDomain("DG", 3)
	dq := makeDomain("DQ", 3)
	responses := []models.Response{
		answer(assessmentID, dg.Questions[0], intPtr(3)),
		answer(assessmentID, dg.Questions[1], intPtr(4)),
		answer(assessmentID, dq.Questions[0], intPtr(2)),
	}

	result := MaturityResult([]models.Domain{dg, dq}, responses)

	if result.OverallScore == nil || *result.OverallScore != 2.75 {
		t.Fatalf("overall_score = %v, want 2.75", result.OverallScore)
	}
	if result.OverallLevel != 3 {
		t.Errorf("overall_level = %d, want 3", result.OverallLevel)
	}
	if result.OverallLevelNameEn != "Activated" || result.OverallLevelNameAr != "التفعيل" {
		t.Errorf("level names = %q/%q", result.OverallLevelNameEn, result.OverallLevelNameAr)
	}
	if result.AnsweredCount != 3 {
		t.Errorf("answered_count = %d, want 3", result.AnsweredCount)
	}
	if result.TotalQuestions != 6 {
		t.Errorf("total_questions = %d, want 6", result.TotalQuestions)
	}
	if len(result.DomainScores) != 2 {
		t.Fatalf("domain_scores length = %d, want 2", len(result.DomainScores))
	}
}

func TestMaturityResultAllUnanswered(t *testing.T) {
	result := MaturityResult([]models.Domain{makeDomain("DG", 3)}, nil)

	if result.OverallScore != nil {
		t.Errorf("overall_score = %v, want nil", *result.OverallScore)
	}
	if result.OverallLevel != 0 {
		t.Errorf("overall_level = %d, want 0", result.OverallLevel)
	}
	if result.OverallLevelNameEn != "Absence of Capabilities" {
		t.Errorf("overall_level_name_en = %q", result.OverallLevelNameEn)
	}
}

func domainCode(i int) string {
	codes := []string{"DG", "MCM", "DQ", "DO", "DCM", "DAM", "DSI", "RMD", "BIA", "DVR", "OD", "FOI", "DC", "PDP"}
	return codes[i%len(codes)]
}
