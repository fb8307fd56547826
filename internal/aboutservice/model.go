package aboutservice

import (
	"context"
	"database/sql"
	"errors"

	"github.com/sushihentaime/wayfarer/internal/common"
)

func newAboutModel(db *sql.DB) *AboutModel {
	return &AboutModel{db: db}
}

func (m *AboutModel) getAboutMe(ctx context.Context) (*AboutMe, error) {
	query := `
		SELECT title, second_title, description, second_description, image, second_image, updated_at
		FROM about_me
		WHERE id = 1`

	var a AboutMe
	err := m.db.QueryRowContext(ctx, query).Scan(&a.Title, &a.SecondTitle, &a.Description, &a.SecondDescription, &a.Image, &a.SecondImage, &a.UpdatedAt)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, common.ErrRecordNotFound
		default:
			return nil, err
		}
	}

	return &a, nil
}

func (m *AboutModel) saveAboutMe(ctx context.Context, a *AboutMe) error {
	query := `
		INSERT INTO about_me (id, title, second_title, description, second_description, image, second_image)
		VALUES (1, $1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE
		SET title = EXCLUDED.title,
			second_title = EXCLUDED.second_title,
			description = EXCLUDED.description,
			second_description = EXCLUDED.second_description,
			image = EXCLUDED.image,
			second_image = EXCLUDED.second_image,
			updated_at = now()
		RETURNING updated_at`

	args := []any{a.Title, a.SecondTitle, a.Description, a.SecondDescription, a.Image, a.SecondImage}

	return m.db.QueryRowContext(ctx, query, args...).Scan(&a.UpdatedAt)
}

func (m *AboutModel) insertQuickFact(ctx context.Context, q *QuickFact) error {
	query := `
		INSERT INTO quick_facts (title, description)
		VALUES ($1, $2)
		RETURNING id, created_at`

	return m.db.QueryRowContext(ctx, query, q.Title, q.Description).Scan(&q.ID, &q.CreatedAt)
}

func (m *AboutModel) getQuickFacts(ctx context.Context) ([]QuickFact, error) {
	query := `
		SELECT id, title, description, created_at
		FROM quick_facts
		ORDER BY id`

	rows, err := m.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	facts := []QuickFact{}
	for rows.Next() {
		var q QuickFact
		if err := rows.Scan(&q.ID, &q.Title, &q.Description, &q.CreatedAt); err != nil {
			return nil, err
		}
		facts = append(facts, q)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return facts, nil
}

func (m *AboutModel) getQuickFactById(ctx context.Context, id int64) (*QuickFact, error) {
	query := `
		SELECT id, title, description, created_at
		FROM quick_facts
		WHERE id = $1`

	var q QuickFact
	err := m.db.QueryRowContext(ctx, query, id).Scan(&q.ID, &q.Title, &q.Description, &q.CreatedAt)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, common.ErrRecordNotFound
		default:
			return nil, err
		}
	}

	return &q, nil
}

func (m *AboutModel) updateQuickFact(ctx context.Context, q *QuickFact) error {
	query := `
		UPDATE quick_facts
		SET title = $1, description = $2
		WHERE id = $3
		RETURNING created_at`

	err := m.db.QueryRowContext(ctx, query, q.Title, q.Description, q.ID).Scan(&q.CreatedAt)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return common.ErrRecordNotFound
		default:
			return err
		}
	}

	return nil
}

func (m *AboutModel) insertFAQ(ctx context.Context, f *FAQ) error {
	query := `
		INSERT INTO faqs (question, answer)
		VALUES ($1, $2)
		RETURNING id, created_at`

	return m.db.QueryRowContext(ctx, query, f.Question, f.Answer).Scan(&f.ID, &f.CreatedAt)
}

func (m *AboutModel) getFAQs(ctx context.Context) ([]FAQ, error) {
	query := `
		SELECT id, question, answer, created_at
		FROM faqs
		ORDER BY id`

	rows, err := m.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	faqs := []FAQ{}
	for rows.Next() {
		var f FAQ
		if err := rows.Scan(&f.ID, &f.Question, &f.Answer, &f.CreatedAt); err != nil {
			return nil, err
		}
		faqs = append(faqs, f)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return faqs, nil
}

func (m *AboutModel) getFAQById(ctx context.Context, id int64) (*FAQ, error) {
	query := `
		SELECT id, question, answer, created_at
		FROM faqs
		WHERE id = $1`

	var f FAQ
	err := m.db.QueryRowContext(ctx, query, id).Scan(&f.ID, &f.Question, &f.Answer, &f.CreatedAt)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, common.ErrRecordNotFound
		default:
			return nil, err
		}
	}

	return &f, nil
}

func (m *AboutModel) updateFAQ(ctx context.Context, f *FAQ) error {
	query := `
		UPDATE faqs
		SET question = $1, answer = $2
		WHERE id = $3
		RETURNING created_at`

	err := m.db.QueryRowContext(ctx, query, f.Question, f.Answer, f.ID).Scan(&f.CreatedAt)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return common.ErrRecordNotFound
		default:
			return err
		}
	}

	return nil
}

func (m *AboutModel) deleteRow(ctx context.Context, table string, id int64) error {
	query := `DELETE FROM ` + table + ` WHERE id = $1`

	res, err := m.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return common.ErrRecordNotFound
	}

	return nil
}
