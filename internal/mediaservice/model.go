package mediaservice

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/sushihentaime/wayfarer/internal/common"
)

type mediaTable struct {
	name      string
	urlColumn string
}

var tables = map[MediaType]mediaTable{
	MediaImage: {name: "camera_roll_images", urlColumn: "image"},
	MediaVideo: {name: "camera_roll_videos", urlColumn: "video"},
}

func (t mediaTable) columns() string {
	return fmt.Sprintf("id, %s, continent, country, google_maps, name, location, date, created_at", t.urlColumn)
}

func newMediaModel(db *sql.DB) *MediaModel {
	return &MediaModel{db: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMedia(row rowScanner, typ MediaType) (*Media, error) {
	m := Media{Type: typ}
	err := row.Scan(&m.ID, &m.URL, &m.Continent, &m.Country, &m.GoogleMaps, &m.Name, &m.Location, &m.Date, &m.CreatedAt)
	if err != nil {
		return nil, err
	}

	return &m, nil
}

func (m *MediaModel) insert(ctx context.Context, media *Media) error {
	t := tables[media.Type]
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, continent, country, google_maps, name, location, date)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at`, t.name, t.urlColumn)

	args := []any{media.URL, media.Continent, media.Country, media.GoogleMaps, media.Name, media.Location, media.Date}

	return m.db.QueryRowContext(ctx, query, args...).Scan(&media.ID, &media.CreatedAt)
}

// getMedia lists one media type, or both merged when typ is empty, ordered by date.
func (m *MediaModel) getMedia(ctx context.Context, typ MediaType) ([]Media, error) {
	var query string
	switch typ {
	case "":
		query = fmt.Sprintf(`
			SELECT 'image', %s FROM %s
			UNION ALL
			SELECT 'video', %s FROM %s
			ORDER BY date ASC, 1 ASC, id ASC`,
			tables[MediaImage].columns(), tables[MediaImage].name,
			tables[MediaVideo].columns(), tables[MediaVideo].name)
	default:
		t := tables[typ]
		query = fmt.Sprintf(`
			SELECT '%s', %s FROM %s
			ORDER BY date ASC, id ASC`, typ, t.columns(), t.name)
	}

	rows, err := m.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	media := []Media{}
	for rows.Next() {
		var item Media
		err := rows.Scan(&item.Type, &item.ID, &item.URL, &item.Continent, &item.Country, &item.GoogleMaps, &item.Name, &item.Location, &item.Date, &item.CreatedAt)
		if err != nil {
			return nil, err
		}
		media = append(media, item)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return media, nil
}

func (m *MediaModel) getMediaById(ctx context.Context, typ MediaType, id int64) (*Media, error) {
	t := tables[typ]
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE id = $1`, t.columns(), t.name)

	media, err := scanMedia(m.db.QueryRowContext(ctx, query, id), typ)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, common.ErrRecordNotFound
		default:
			return nil, err
		}
	}

	return media, nil
}

// updateMedia replaces the row. A nil date keeps the stored one.
func (m *MediaModel) updateMedia(ctx context.Context, media *Media, date *time.Time) error {
	t := tables[media.Type]
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $1, continent = $2, country = $3, google_maps = $4, name = $5, location = $6, date = COALESCE($7, date)
		WHERE id = $8
		RETURNING date, created_at`, t.name, t.urlColumn)

	args := []any{media.URL, media.Continent, media.Country, media.GoogleMaps, media.Name, media.Location, date, media.ID}

	err := m.db.QueryRowContext(ctx, query, args...).Scan(&media.Date, &media.CreatedAt)
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

func (m *MediaModel) deleteMedia(ctx context.Context, typ MediaType, id int64) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, tables[typ].name)

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
