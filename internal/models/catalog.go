package models

import "github.com/google/uuid"

// Domain is one of the 14 fixed thematic categories of the assessment
// framework. Reference data — seeded once, never mutated by assessments.
type Domain struct {
	ID            uuid.UUID  `json:"id"`
	Code          string     `json:"code"`
	NameEn        string     `json:"name_en"`
	NameAr        string     `json:"name_ar"`
	DescriptionEn string     `json:"description_en,omitempty"`
	DescriptionAr string     `json:"description_ar,omitempty"`
	SortOrder     int        `json:"sort_order"`
	QuestionCount int        `json:"question_count"`
	Questions     []Question `json:"questions,omitempty"`
}

// Question belongs to exactly one domain. Code follows "{domain_code}-{n}".
type Question struct {
	ID             uuid.UUID       `json:"id"`
	DomainID       uuid.UUID       `json:"domain_id"`
	Code           string          `json:"code"`
	QuestionEn     string          `json:"question_en"`
	QuestionAr     string          `json:"question_ar"`
	SortOrder      int             `json:"sort_order"`
	MaturityLevels []MaturityLevel `json:"maturity_levels,omitempty"`
}

// MaturityLevel describes the qualifying criteria and acceptance evidence
// for one (question, level) pair. Every question has exactly one per level 0-5.
type MaturityLevel struct {
	ID                   uuid.UUID `json:"id"`
	QuestionID           uuid.UUID `json:"question_id"`
	Level                int       `json:"level"`
	NameEn               string    `json:"name_en"`
	NameAr               string    `json:"name_ar"`
	DescriptionEn        string    `json:"description_en"`
	DescriptionAr        string    `json:"description_ar"`
	AcceptanceEvidenceEn []string  `json:"acceptance_evidence_en,omitempty"`
	AcceptanceEvidenceAr []string  `json:"acceptance_evidence_ar,omitempty"`
}

const (
	MinMaturityLevel = 0
	MaxMaturityLevel = 5
)

// ValidLevel reports whether l is a usable maturity level (0-5).
func ValidLevel(l int) bool {
	return l >= MinMaturityLevel && l <= MaxMaturityLevel
}

var levelNames = map[int][2]string{
	0: {"Absence of Capabilities", "غياب القدرات"},
	1: {"Establishing", "التأسيس"},
	2: {"Defined", "التحديد"},
	3: {"Activated", "التفعيل"},
	4: {"Managed", "الإدارة"},
	5: {"Pioneer", "الريادة"},
}

func LevelNameEn(level int) string {
	if names, ok := levelNames[level]; ok {
		return names[0]
	}
	return "Unknown"
}

func LevelNameAr(level int) string {
	if names, ok := levelNames[level]; ok {
		return names[1]
	}
	return "غير معروف"
}
