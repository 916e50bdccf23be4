package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dmolchanov/magequest/internal/game/question"
	"github.com/dmolchanov/magequest/internal/storage"
)

// QuestionRepository persists teacher-authored custom questions as rows.
type QuestionRepository struct {
	db *pgxpool.Pool
}

var _ storage.QuestionStore = (*QuestionRepository)(nil)

// NewQuestionRepository creates a QuestionRepository backed by the given
// pool.
//
// Precondition: db must be a valid, open connection pool.
func NewQuestionRepository(db *pgxpool.Pool) *QuestionRepository {
	return &QuestionRepository{db: db}
}

// AddQuestion inserts a validated question.
//
// Precondition: q must pass question.Custom.Validate.
func (r *QuestionRepository) AddQuestion(ctx context.Context, q question.Custom) error {
	if err := q.Validate(); err != nil {
		return err
	}
	_, err := r.db.Exec(ctx,
		`INSERT INTO custom_questions (id, subject, text, correct_answer, hint, level, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		q.ID, string(q.Subject), q.Text, q.CorrectAnswer, q.Hint, q.Level, q.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("inserting custom question: %w", err)
	}
	return nil
}

// DeleteQuestion removes the question, storage.ErrNotFound when absent.
func (r *QuestionRepository) DeleteQuestion(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM custom_questions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting custom question: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// Questions returns all custom questions ordered by creation time.
func (r *QuestionRepository) Questions(ctx context.Context) ([]question.Custom, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, subject, text, correct_answer, hint, level, created_at
		 FROM custom_questions
		 ORDER BY created_at`,
	)
	if err != nil {
		return nil, fmt.Errorf("querying custom questions: %w", err)
	}
	defer rows.Close()

	var out []question.Custom
	for rows.Next() {
		var q question.Custom
		var subject string
		if err := rows.Scan(&q.ID, &subject, &q.Text, &q.CorrectAnswer, &q.Hint, &q.Level, &q.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning custom question: %w", err)
		}
		q.Subject = question.Subject(subject)
		out = append(out, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating custom questions: %w", err)
	}
	return out, nil
}
