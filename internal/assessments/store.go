package assessments

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/ndi-assess/backend/internal/models"
)

type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

const assessmentCols = `id, organization_id, assessment_type, status, name, description,
	        target_level, current_score, maturity_score, compliance_score,
	        created_by, created_at, updated_at, completed_at`

func scanAssessment(row interface{ Scan(...interface{}) error }) (*models.Assessment, error) {
	var a models.Assessment
	err := row.Scan(&a.ID, &a.OrganizationID, &a.AssessmentType, &a.Status,
		&a.Name, &a.Description, &a.TargetLevel,
		&a.CurrentScore, &a.MaturityScore, &a.ComplianceScore,
		&a.CreatedBy, &a.CreatedAt, &a.UpdatedAt, &a.CompletedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (s *Store) CreateAssessment(ctx context.Context, a *models.Assessment) error {
	err := s.db.QueryRowContext(ctx,
		`INSERT INTO assessments (id, organization_id, assessment_type, status, name, description, target_level, created_by)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING created_at, updated_at`,
		a.ID, a.OrganizationID, a.AssessmentType, a.Status, a.Name, a.Description, a.TargetLevel, a.CreatedBy,
	).Scan(&a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create assessment: %w", err)
	}
	return nil
}

func (s *Store) GetAssessment(ctx context.Context, id uuid.UUID) (*models.Assessment, error) {
	a, err := scanAssessment(s.db.QueryRowContext(ctx,
		fmt.Sprintf(`SELECT %s FROM assessments WHERE id = $1`, assessmentCols), id))
	if err != nil {
		return nil, fmt.Errorf("get assessment: %w", err)
	}
	return a, nil
}

func (s *Store) ListAssessments(ctx context.Context, orgID uuid.UUID, status *models.AssessmentStatus, limit, offset int) ([]models.Assessment, error) {
	var rows *sql.Rows
	var err error

	if status != nil {
		rows, err = s.db.QueryContext(ctx,
			fmt.Sprintf(`SELECT %s FROM assessments WHERE organization_id = $1 AND status = $2
			 ORDER BY created_at DESC LIMIT $3 OFFSET $4`, assessmentCols),
			orgID, *status, limit, offset)
	} else {
		rows, err = s.db.QueryContext(ctx,
			fmt.Sprintf(`SELECT %s FROM assessments WHERE organization_id = $1
			 ORDER BY created_at DESC LIMIT $2 OFFSET $3`, assessmentCols),
			orgID, limit, offset)
	}
	if err != nil {
		return nil, fmt.Errorf("list assessments: %w", err)
	}
	defer rows.Close()

	var assessments []models.Assessment
	for rows.Next() {
		a, err := scanAssessment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan assessment: %w", err)
		}
		assessments = append(assessments, *a)
	}
	return assessments, rows.Err()
}

func (s *Store) UpdateAssessment(ctx context.Context, a *models.Assessment) error {
	_, err := s.db.ExecContext(ctx,
		`UPDATE assessments
		 SET name = $1, description = $2, target_level = $3, status = $4, updated_at = NOW()
		 WHERE id = $5`,
		a.Name, a.Description, a.TargetLevel, a.Status, a.ID)
	if err != nil {
		return fmt.Errorf("update assessment: %w", err)
	}
	return nil
}

func (s *Store) DeleteAssessment(ctx context.Context, id uuid.UUID) error {
	// Responses go with it via ON DELETE CASCADE.
	res, err := s.db.ExecContext(ctx, `DELETE FROM assessments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete assessment: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("delete assessment: %w", sql.ErrNoRows)
	}
	return nil
}

// SetStatus moves the assessment to the given status. completedAt is only
// written when non-nil.
func (s *Store) SetStatus(ctx context.Context, id uuid.UUID, status models.AssessmentStatus, completedAt *time.Time) error {
	var err error
	if completedAt != nil {
		_, err = s.db.ExecContext(ctx,
			`UPDATE assessments SET status = $1, completed_at = $2, updated_at = NOW() WHERE id = $3`,
			status, *completedAt, id)
	} else {
		_, err = s.db.ExecContext(ctx,
			`UPDATE assessments SET status = $1, updated_at = NOW() WHERE id = $2`,
			status, id)
	}
	if err != nil {
		return fmt.Errorf("set status: %w", err)
	}
	return nil
}

// UpdateScores writes the derived score fields. Nil means "not computable
// yet" and is stored as NULL, never as zero.
func (s *Store) UpdateScores(ctx context.Context, id uuid.UUID, maturity, compliance, current *float64) error {
	_, err := s.db.ExecContext(ctx,
		`UPDATE assessments
		 SET maturity_score = $1, compliance_score = $2, current_score = $3, updated_at = NOW()
		 WHERE id = $4`,
		maturity, compliance, current, id)
	if err != nil {
		return fmt.Errorf("update scores: %w", err)
	}
	return nil
}

// UpsertResponse saves one answer, keyed on (assessment_id, question_id).
// First save inserts, later saves update in place — never a second row.
func (s *Store) UpsertResponse(ctx context.Context, resp *models.Response) error {
	evidence := make([]string, len(resp.EvidenceIDs))
	for i, id := range resp.EvidenceIDs {
		evidence[i] = id.String()
	}

	err := s.db.QueryRowContext(ctx,
		`INSERT INTO assessment_responses
		 (id, assessment_id, question_id, selected_level, justification, notes, evidence_ids)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 ON CONFLICT (assessment_id, question_id) DO UPDATE
		 SET selected_level = EXCLUDED.selected_level,
		     justification  = EXCLUDED.justification,
		     notes          = EXCLUDED.notes,
		     evidence_ids   = EXCLUDED.evidence_ids,
		     updated_at     = NOW()
		 RETURNING id, created_at, updated_at`,
		resp.ID, resp.AssessmentID, resp.QuestionID, resp.SelectedLevel,
		resp.Justification, resp.Notes, pq.Array(evidence),
	).Scan(&resp.ID, &resp.CreatedAt, &resp.UpdatedAt)
	if err != nil {
		return fmt.Errorf("upsert response: %w", err)
	}
	return nil
}

func (s *Store) ListResponses(ctx context.Context, assessmentID uuid.UUID) ([]models.Response, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, assessment_id, question_id, selected_level, justification, notes,
		        evidence_ids, created_at, updated_at
		 FROM assessment_responses WHERE assessment_id = $1
		 ORDER BY created_at`, assessmentID)
	if err != nil {
		return nil, fmt.Errorf("list responses: %w", err)
	}
	defer rows.Close()

	var responses []models.Response
	for rows.Next() {
		var r models.Response
		var evidence []string
		if err := rows.Scan(&r.ID, &r.AssessmentID, &r.QuestionID, &r.SelectedLevel,
			&r.Justification, &r.Notes, pq.Array(&evidence), &r.CreatedAt, &r.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan response: %w", err)
		}
		for _, raw := range evidence {
			if id, err := uuid.Parse(raw); err == nil {
				r.EvidenceIDs = append(r.EvidenceIDs, id)
			}
		}
		responses = append(responses, r)
	}
	return responses, rows.Err()
}

// CountAnswered returns how many responses carry a selected level.
func (s *Store) CountAnswered(ctx context.Context, assessmentID uuid.UUID) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM assessment_responses
		 WHERE assessment_id = $1 AND selected_level IS NOT NULL`, assessmentID).Scan(&n)
	return n, err
}
