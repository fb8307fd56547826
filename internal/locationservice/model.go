package locationservice

import (
	"context"
	"database/sql"
	"errors"

	"github.com/sushihentaime/wayfarer/internal/common"
)

func newLocationModel(db *sql.DB) *LocationModel {
	return &LocationModel{db: db}
}

func (m *LocationModel) insert(ctx context.Context, l *Location) error {
	query := `
		INSERT INTO locations (country, city, continent, image)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`

	return m.db.QueryRowContext(ctx, query, l.Country, l.City, l.Continent, l.Image).Scan(&l.ID, &l.CreatedAt)
}

func (m *LocationModel) getLocations(ctx context.Context) ([]Location, error) {
	query := `
		SELECT id, country, city, continent, image, created_at
		FROM locations
		ORDER BY id`

	rows, err := m.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	locations := []Location{}
	for rows.Next() {
		var l Location
		if err := rows.Scan(&l.ID, &l.Country, &l.City, &l.Continent, &l.Image, &l.CreatedAt); err != nil {
			return nil, err
		}
		locations = append(locations, l)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return locations, nil
}

func (m *LocationModel) getLocationById(ctx context.Context, id int64) (*Location, error) {
	query := `
		SELECT id, country, city, continent, image, created_at
		FROM locations
		WHERE id = $1`

	var l Location
	err := m.db.QueryRowContext(ctx, query, id).Scan(&l.ID, &l.Country, &l.City, &l.Continent, &l.Image, &l.CreatedAt)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, common.ErrRecordNotFound
		default:
			return nil, err
		}
	}

	return &l, nil
}

func (m *LocationModel) updateLocation(ctx context.Context, l *Location) error {
	query := `
		UPDATE locations
		SET country = $1, city = $2, continent = $3, image = $4
		WHERE id = $5
		RETURNING created_at`

	err := m.db.QueryRowContext(ctx, query, l.Country, l.City, l.Continent, l.Image, l.ID).Scan(&l.CreatedAt)
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

func (m *LocationModel) deleteLocation(ctx context.Context, id int64) error {
	query := `
		DELETE FROM locations
		WHERE id = $1`

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
