package heroservice

import (
	"context"
	"database/sql"
	"errors"

	"github.com/sushihentaime/wayfarer/internal/common"
)

func newHeroModel(db *sql.DB) *HeroModel {
	return &HeroModel{db: db}
}

func (m *HeroModel) getSettings(ctx context.Context) (*HeroSettings, error) {
	query := `
		SELECT title, description, second_description, font_color, text_color, video, background_color, font_size, image, updated_at
		FROM hero_settings
		WHERE id = 1`

	var s HeroSettings
	err := m.db.QueryRowContext(ctx, query).Scan(&s.Title, &s.Description, &s.SecondDescription, &s.FontColor, &s.TextColor, &s.Video, &s.BackgroundColor, &s.FontSize, &s.Image, &s.UpdatedAt)
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

// saveSettings upserts the single hero_settings row.
func (m *HeroModel) saveSettings(ctx context.Context, s *HeroSettings) error {
	query := `
		INSERT INTO hero_settings (id, title, description, second_description, font_color, text_color, video, background_color, font_size, image)
		VALUES (1, $1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (id) DO UPDATE
		SET title = EXCLUDED.title,
			description = EXCLUDED.description,
			second_description = EXCLUDED.second_description,
			font_color = EXCLUDED.font_color,
			text_color = EXCLUDED.text_color,
			video = EXCLUDED.video,
			background_color = EXCLUDED.background_color,
			font_size = EXCLUDED.font_size,
			image = EXCLUDED.image,
			updated_at = now()
		RETURNING updated_at`

	args := []any{s.Title, s.Description, s.SecondDescription, s.FontColor, s.TextColor, s.Video, s.BackgroundColor, s.FontSize, s.Image}

	return m.db.QueryRowContext(ctx, query, args...).Scan(&s.UpdatedAt)
}

func (m *HeroModel) insertFavorite(ctx context.Context, f *Favorite) error {
	query := `
		INSERT INTO hero_favorites (title, description, image, blog_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`

	return m.db.QueryRowContext(ctx, query, f.Title, f.Description, f.Image, f.BlogID).Scan(&f.ID, &f.CreatedAt)
}

func (m *HeroModel) getFavorites(ctx context.Context) ([]Favorite, error) {
	query := `
		SELECT id, title, description, image, blog_id, created_at
		FROM hero_favorites
		ORDER BY id`

	rows, err := m.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	favorites := []Favorite{}
	for rows.Next() {
		var f Favorite
		if err := rows.Scan(&f.ID, &f.Title, &f.Description, &f.Image, &f.BlogID, &f.CreatedAt); err != nil {
			return nil, err
		}
		favorites = append(favorites, f)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return favorites, nil
}

func (m *HeroModel) getFavoriteById(ctx context.Context, id int64) (*Favorite, error) {
	query := `
		SELECT id, title, description, image, blog_id, created_at
		FROM hero_favorites
		WHERE id = $1`

	var f Favorite
	err := m.db.QueryRowContext(ctx, query, id).Scan(&f.ID, &f.Title, &f.Description, &f.Image, &f.BlogID, &f.CreatedAt)
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

func (m *HeroModel) updateFavorite(ctx context.Context, f *Favorite) error {
	query := `
		UPDATE hero_favorites
		SET title = $1, description = $2, image = $3, blog_id = $4
		WHERE id = $5
		RETURNING created_at`

	err := m.db.QueryRowContext(ctx, query, f.Title, f.Description, f.Image, f.BlogID, f.ID).Scan(&f.CreatedAt)
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

func (m *HeroModel) insertTag(ctx context.Context, t *Tag) error {
	query := `
		INSERT INTO hero_tags (tag, image)
		VALUES ($1, $2)
		RETURNING id, created_at`

	return m.db.QueryRowContext(ctx, query, t.Tag, t.Image).Scan(&t.ID, &t.CreatedAt)
}

func (m *HeroModel) getTags(ctx context.Context) ([]Tag, error) {
	query := `
		SELECT id, tag, image, created_at
		FROM hero_tags
		ORDER BY id`

	rows, err := m.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tags := []Tag{}
	for rows.Next() {
		var t Tag
		if err := rows.Scan(&t.ID, &t.Tag, &t.Image, &t.CreatedAt); err != nil {
			return nil, err
		}
		tags = append(tags, t)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return tags, nil
}

func (m *HeroModel) getTagById(ctx context.Context, id int64) (*Tag, error) {
	query := `
		SELECT id, tag, image, created_at
		FROM hero_tags
		WHERE id = $1`

	var t Tag
	err := m.db.QueryRowContext(ctx, query, id).Scan(&t.ID, &t.Tag, &t.Image, &t.CreatedAt)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, common.ErrRecordNotFound
		default:
			return nil, err
		}
	}

	return &t, nil
}

func (m *HeroModel) updateTag(ctx context.Context, t *Tag) error {
	query := `
		UPDATE hero_tags
		SET tag = $1, image = $2
		WHERE id = $3
		RETURNING created_at`

	err := m.db.QueryRowContext(ctx, query, t.Tag, t.Image, t.ID).Scan(&t.CreatedAt)
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

// deleteRow removes a row by id from one of the hero tables.
func (m *HeroModel) deleteRow(ctx context.Context, table string, id int64) error {
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
