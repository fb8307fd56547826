package newsletterservice

import (
	"context"
	"database/sql"
	"errors"

	"github.com/sushihentaime/wayfarer/internal/common"
)

const emailConstraint = "newsletter_subscribers_email_key"

var ErrDuplicateEmail = errors.New("duplicate email")

func newSubscriberModel(db *sql.DB) *SubscriberModel {
	return &SubscriberModel{db: db}
}

func (m *SubscriberModel) insert(ctx context.Context, s *Subscriber, hash []byte) error {
	query := `
		INSERT INTO newsletter_subscribers (email, unsubscribe_hash)
		VALUES ($1, $2)
		RETURNING id, created_at`

	err := m.db.QueryRowContext(ctx, query, s.Email, hash).Scan(&s.ID, &s.CreatedAt)
	if err != nil {
		switch {
		case common.UniqueViolation(err, emailConstraint):
			return ErrDuplicateEmail
		default:
			return err
		}
	}

	return nil
}

func (m *SubscriberModel) getSubscribers(ctx context.Context) ([]Subscriber, error) {
	query := `
		SELECT id, email, created_at
		FROM newsletter_subscribers
		ORDER BY id`

	rows, err := m.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	subscribers := []Subscriber{}
	for rows.Next() {
		var s Subscriber
		if err := rows.Scan(&s.ID, &s.Email, &s.CreatedAt); err != nil {
			return nil, err
		}
		subscribers = append(subscribers, s)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return subscribers, nil
}

func (m *SubscriberModel) getSubscriberById(ctx context.Context, id int64) (*Subscriber, error) {
	query := `
		SELECT id, email, created_at
		FROM newsletter_subscribers
		WHERE id = $1`

	var s Subscriber
	err := m.db.QueryRowContext(ctx, query, id).Scan(&s.ID, &s.Email, &s.CreatedAt)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, common.ErrRecordNotFound
		default:
			return nil, err
		}
	}

	return &s, nil
}

func (m *SubscriberModel) updateSubscriber(ctx context.Context, s *Subscriber) error {
	query := `
		UPDATE newsletter_subscribers
		SET email = $1
		WHERE id = $2
		RETURNING created_at`

	err := m.db.QueryRowContext(ctx, query, s.Email, s.ID).Scan(&s.CreatedAt)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return common.ErrRecordNotFound
		case common.UniqueViolation(err, emailConstraint):
			return ErrDuplicateEmail
		default:
			return err
		}
	}

	return nil
}

func (m *SubscriberModel) deleteSubscriber(ctx context.Context, id int64) error {
	query := `
		DELETE FROM newsletter_subscribers
		WHERE id = $1`

	return m.execDelete(ctx, query, id)
}

func (m *SubscriberModel) deleteByHash(ctx context.Context, hash []byte) error {
	query := `
		DELETE FROM newsletter_subscribers
		WHERE unsubscribe_hash = $1`

	return m.execDelete(ctx, query, hash)
}

func (m *SubscriberModel) execDelete(ctx context.Context, query string, arg any) error {
	res, err := m.db.ExecContext(ctx, query, arg)
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
