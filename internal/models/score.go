package models

import "time"

// DomainScore is the derived per-domain result. Score is nil when no
// question in the domain has been answered — "no data" is never rendered
// as zero.
type DomainScore struct {
	DomainCode     string   `json:"domain_code"`
	DomainNameEn   string   `json:"domain_name_en"`
	DomainNameAr   string   `json:"domain_name_ar"`
	Score          *float64 `json:"score"`
	Level          int      `json:"level"`
	LevelNameEn    string   `json:"level_name_en"`
	LevelNameAr    string   `json:"level_name_ar"`
	AnsweredCount  int      `json:"answered_count"`
	TotalQuestions int      `json:"total_questions"`
	Percentage     float64  `json:"percentage"`
}

type MaturityScoreResult struct {
	OverallScore       *float64      `json:"overall_score"`
	OverallLevel       int           `json:"overall_level"`
	OverallLevelNameEn string        `json:"overall_level_name_en"`
	OverallLevelNameAr string        `json:"overall_level_name_ar"`
	OverallPercentage  float64       `json:"overall_percentage"`
	DomainScores       []DomainScore `json:"domain_scores"`
	AnsweredCount      int           `json:"answered_count"`
	TotalQuestions     int           `json:"total_questions"`
}

// GapDomain is a compliance-table entry for a domain below target.
// Gap here is the integer level shortfall, clamped at zero.
type GapDomain struct {
	DomainCode   string `json:"domain_code"`
	CurrentLevel int    `json:"current_level"`
	TargetLevel  int    `json:"target_level"`
	Gap          int    `json:"gap"`
}

type ComplianceResult struct {
	CompliancePercentage float64     `json:"compliance_percentage"`
	IsCompliant          bool        `json:"is_compliant"`
	TargetLevel          int         `json:"target_level"`
	DomainsMeetingTarget int         `json:"domains_meeting_target"`
	TotalDomains         int         `json:"total_domains"`
	GapDomains           []GapDomain `json:"gap_domains"`
}

type GapPriority string

const (
	PriorityCritical GapPriority = "critical"
	PriorityQuickWin GapPriority = "quick_win"
	PriorityStandard GapPriority = "standard"
)

// GapItem carries two deliberately distinct gap numbers: ContinuousGap
// (target minus the raw domain score, drives ranking and report bars) and
// LevelGap (target minus the discretized current level, matches the
// compliance table). They must never be collapsed into one field — the
// dashboard and the report would disagree.
type GapItem struct {
	DomainCode    string      `json:"domain_code"`
	DomainNameEn  string      `json:"domain_name_en"`
	DomainNameAr  string      `json:"domain_name_ar"`
	CurrentLevel  int         `json:"current_level"`
	TargetLevel   int         `json:"target_level"`
	ContinuousGap float64     `json:"continuous_gap"`
	LevelGap      int         `json:"level_gap"`
	Priority      GapPriority `json:"priority"`
}

// AssessmentReport is the assembled end-to-end result handed to the
// dashboard, export, and AI prompt-context consumers.
type AssessmentReport struct {
	Assessment      Assessment          `json:"assessment"`
	Maturity        MaturityScoreResult `json:"maturity"`
	Compliance      ComplianceResult    `json:"compliance"`
	Gaps            []GapItem           `json:"gaps"`
	QuickWins       []GapItem           `json:"quick_wins"`
	CriticalActions []GapItem           `json:"critical_actions"`
	GeneratedAt     time.Time           `json:"generated_at"`
}
