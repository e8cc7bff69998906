package dashboard

import (
	"database/sql"
	"encoding/json"
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/ndi-assess/backend/internal/models"
	"github.com/ndi-assess/backend/internal/scoring"
)

// Handler serves the read-only dashboard aggregates. All figures are
// derived on request from the same engine the reports use, so the two
// surfaces can never drift apart.
type Handler struct {
	db     *sql.DB
	scorer *scoring.Service
}

func NewHandler(db *sql.DB, scorer *scoring.Service) *Handler {
	return &Handler{db: db, scorer: scorer}
}

type stats struct {
	TotalAssessments     int      `json:"total_assessments"`
	DraftCount           int      `json:"draft_count"`
	InProgressCount      int      `json:"in_progress_count"`
	CompletedCount       int      `json:"completed_count"`
	AverageMaturityScore *float64 `json:"average_maturity_score"`
	TotalDomains         int      `json:"total_domains"`
	TotalQuestions       int      `json:"total_questions"`
}

func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	orgID, ok := r.Context().Value("organization_id").(uuid.UUID)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Unauthorized"})
		return
	}

	var s stats
	err := h.db.QueryRowContext(r.Context(),
		`SELECT COUNT(*),
		        COUNT(*) FILTER (WHERE status = 'draft'),
		        COUNT(*) FILTER (WHERE status = 'in_progress'),
		        COUNT(*) FILTER (WHERE status = 'completed'),
		        AVG(maturity_score) FILTER (WHERE status = 'completed')
		 FROM assessments WHERE organization_id = $1`, orgID).
		Scan(&s.TotalAssessments, &s.DraftCount, &s.InProgressCount,
			&s.CompletedCount, &s.AverageMaturityScore)
	if err != nil {
		log.Printf("[dashboard] stats query failed: %v", err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to load stats"})
		return
	}

	if err := h.db.QueryRowContext(r.Context(),
		`SELECT (SELECT COUNT(*) FROM domains), (SELECT COUNT(*) FROM questions)`).
		Scan(&s.TotalDomains, &s.TotalQuestions); err != nil {
		log.Printf("[dashboard] catalog count failed: %v", err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to load stats"})
		return
	}

	writeJSON(w, http.StatusOK, s)
}

// GetDomainSummary returns the per-domain maturity breakdown for one
// assessment, defaulting to the organization's most recent one. Domains
// without answers come back with a null score — rendered as "-", never 0.
func (h *Handler) GetDomainSummary(w http.ResponseWriter, r *http.Request) {
	orgID, ok := r.Context().Value("organization_id").(uuid.UUID)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Unauthorized"})
		return
	}

	var assessmentID uuid.UUID
	if raw := r.URL.Query().Get("assessment_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid assessment ID"})
			return
		}
		assessmentID = id
	} else {
		err := h.db.QueryRowContext(r.Context(),
			`SELECT id FROM assessments WHERE organization_id = $1
			 ORDER BY created_at DESC LIMIT 1`, orgID).Scan(&assessmentID)
		if err == sql.ErrNoRows {
			writeJSON(w, http.StatusOK, map[string]interface{}{"domains": []models.DomainScore{}})
			return
		}
		if err != nil {
			log.Printf("[dashboard] latest assessment lookup failed: %v", err)
			writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to load summary"})
			return
		}
	}

	maturity, err := h.scorer.MaturityScore(r.Context(), assessmentID)
	if err != nil {
		log.Printf("[dashboard] domain summary failed: %v", err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to load summary"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"assessment_id": assessmentID,
		"overall_score": maturity.OverallScore,
		"overall_level": maturity.OverallLevel,
		"domains":       maturity.DomainScores,
	})
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
