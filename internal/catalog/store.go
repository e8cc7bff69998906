package catalog

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/ndi-assess/backend/internal/models"
)

// Store reads the domain/question/level reference catalog. The catalog is
// immutable at runtime — seeded once, never touched by assessment activity.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Domains returns all domains in framework order with their questions
// attached (levels omitted). QuestionCount always equals the number of
// catalog questions, independent of any saved responses.
func (s *Store) Domains(ctx context.Context) ([]models.Domain, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, code, name_en, name_ar, description_en, description_ar, sort_order
		 FROM domains ORDER BY sort_order`)
	if err != nil {
		return nil, fmt.Errorf("list domains: %w", err)
	}
	defer rows.Close()

	var domains []models.Domain
	byID := make(map[string]int)
	for rows.Next() {
		var d models.Domain
		if err := rows.Scan(&d.ID, &d.Code, &d.NameEn, &d.NameAr,
			&d.DescriptionEn, &d.DescriptionAr, &d.SortOrder); err != nil {
			return nil, fmt.Errorf("scan domain: %w", err)
		}
		byID[d.ID.String()] = len(domains)
		domains = append(domains, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	qrows, err := s.db.QueryContext(ctx,
		`SELECT id, domain_id, code, question_en, question_ar, sort_order
		 FROM questions ORDER BY domain_id, sort_order`)
	if err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}
	defer qrows.Close()

	for qrows.Next() {
		var q models.Question
		if err := qrows.Scan(&q.ID, &q.DomainID, &q.Code,
			&q.QuestionEn, &q.QuestionAr, &q.SortOrder); err != nil {
			return nil, fmt.Errorf("scan question: %w", err)
		}
		if idx, ok := byID[q.DomainID.String()]; ok {
			domains[idx].Questions = append(domains[idx].Questions, q)
		}
	}
	if err := qrows.Err(); err != nil {
		return nil, err
	}

	for i := range domains {
		domains[i].QuestionCount = len(domains[i].Questions)
	}
	return domains, nil
}

// DomainByCode returns one domain with questions and the full six maturity
// level definitions per question.
func (s *Store) DomainByCode(ctx context.Context, code string) (*models.Domain, error) {
	var d models.Domain
	err := s.db.QueryRowContext(ctx,
		`SELECT id, code, name_en, name_ar, description_en, description_ar, sort_order
		 FROM domains WHERE code = $1`, code).
		Scan(&d.ID, &d.Code, &d.NameEn, &d.NameAr, &d.DescriptionEn, &d.DescriptionAr, &d.SortOrder)
	if err != nil {
		return nil, fmt.Errorf("get domain %s: %w", code, err)
	}

	qrows, err := s.db.QueryContext(ctx,
		`SELECT id, domain_id, code, question_en, question_ar, sort_order
		 FROM questions WHERE domain_id = $1 ORDER BY sort_order`, d.ID)
	if err != nil {
		return nil, fmt.Errorf("list domain questions: %w", err)
	}
	defer qrows.Close()

	byID := make(map[string]int)
	for qrows.Next() {
		var q models.Question
		if err := qrows.Scan(&q.ID, &q.DomainID, &q.Code,
			&q.QuestionEn, &q.QuestionAr, &q.SortOrder); err != nil {
			return nil, fmt.Errorf("scan question: %w", err)
		}
		byID[q.ID.String()] = len(d.Questions)
		d.Questions = append(d.Questions, q)
	}
	if err := qrows.Err(); err != nil {
		return nil, err
	}
	d.QuestionCount = len(d.Questions)

	lrows, err := s.db.QueryContext(ctx,
		`SELECT ml.id, ml.question_id, ml.level, ml.name_en, ml.name_ar,
		        ml.description_en, ml.description_ar,
		        ml.acceptance_evidence_en, ml.acceptance_evidence_ar
		 FROM maturity_levels ml
		 JOIN questions q ON q.id = ml.question_id
		 WHERE q.domain_id = $1
		 ORDER BY ml.question_id, ml.level`, d.ID)
	if err != nil {
		return nil, fmt.Errorf("list maturity levels: %w", err)
	}
	defer lrows.Close()

	for lrows.Next() {
		var ml models.MaturityLevel
		if err := lrows.Scan(&ml.ID, &ml.QuestionID, &ml.Level, &ml.NameEn, &ml.NameAr,
			&ml.DescriptionEn, &ml.DescriptionAr,
			pq.Array(&ml.AcceptanceEvidenceEn), pq.Array(&ml.AcceptanceEvidenceAr)); err != nil {
			return nil, fmt.Errorf("scan maturity level: %w", err)
		}
		if idx, ok := byID[ml.QuestionID.String()]; ok {
			d.Questions[idx].MaturityLevels = append(d.Questions[idx].MaturityLevels, ml)
		}
	}
	return &d, lrows.Err()
}

// QuestionExists reports whether a catalog question with the given ID exists.
func (s *Store) QuestionExists(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM questions WHERE id = $1)`, id).Scan(&exists)
	return exists, err
}

// CountQuestions returns the total catalog question count.
func (s *Store) CountQuestions(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM questions`).Scan(&n)
	return n, err
}
