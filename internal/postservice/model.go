package postservice

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/sushihentaime/wayfarer/internal/common"
)

const postColumns = `id, title, content, date, image, guide, location, country, tags, created_at`

func newPostModel(db *sql.DB) *PostModel {
	return &PostModel{db: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPost(row rowScanner) (*Post, error) {
	var p Post
	err := row.Scan(&p.ID, &p.Title, &p.Content, &p.Date, &p.Image, &p.Guide, &p.Location, &p.Country, &p.Tags, &p.CreatedAt)
	if err != nil {
		return nil, err
	}

	return &p, nil
}

func (m *PostModel) insert(ctx context.Context, p *Post) error {
	query := `
		INSERT INTO posts (title, content, date, image, guide, location, country, tags)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at`

	args := []any{p.Title, p.Content, p.Date, p.Image, p.Guide, p.Location, p.Country, p.Tags}

	return m.db.QueryRowContext(ctx, query, args...).Scan(&p.ID, &p.CreatedAt)
}

func (m *PostModel) getPostById(ctx context.Context, id int64) (*Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts WHERE id = $1`

	p, err := scanPost(m.db.QueryRowContext(ctx, query, id))
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, common.ErrRecordNotFound
		default:
			return nil, err
		}
	}

	return p, nil
}

// getPosts returns the posts matching the filter sorted by date, oldest first.
func (m *PostModel) getPosts(ctx context.Context, filter ListFilter) ([]Post, error) {
	query := `
		SELECT ` + postColumns + `
		FROM posts
		WHERE tags @> $1::text[]
		AND ($2::text = ''
			OR title ILIKE '%' || $2 || '%'
			OR content ILIKE '%' || $2 || '%'
			OR location ILIKE '%' || $2 || '%'
			OR country ILIKE '%' || $2 || '%')
		ORDER BY date ASC, id ASC`

	rows, err := m.db.QueryContext(ctx, query, Tags(filter.Tags), filter.Query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	posts := []Post{}
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, *p)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return posts, nil
}

func (m *PostModel) updatePost(ctx context.Context, p *Post) error {
	query := `
		UPDATE posts
		SET title = $1, content = $2, date = $3, image = $4, guide = $5, location = $6, country = $7, tags = $8
		WHERE id = $9
		RETURNING created_at`

	args := []any{p.Title, p.Content, p.Date, p.Image, p.Guide, p.Location, p.Country, p.Tags, p.ID}

	err := m.db.QueryRowContext(ctx, query, args...).Scan(&p.CreatedAt)
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

func (m *PostModel) deletePost(ctx context.Context, id int64) error {
	query := `
		DELETE FROM posts
		WHERE id = $1`

	res, err := m.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}

	if rows != 1 {
		switch {
		case rows == 0:
			return common.ErrRecordNotFound
		default:
			return fmt.Errorf("expected 1 row to be affected, got %d", rows)
		}
	}

	return nil
}

// getGuideCountries groups guide posts by (location, country). The representative
// id of a group is its lowest post id.
func (m *PostModel) getGuideCountries(ctx context.Context) (ContinentMap, error) {
	query := `
		SELECT location, country, COUNT(*) AS post_count, MIN(id) AS id
		FROM posts
		WHERE guide = true AND location IS NOT NULL AND location <> ''
		GROUP BY location, country
		ORDER BY location, country NULLS LAST`

	rows, err := m.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	continents := ContinentMap{}
	for rows.Next() {
		var (
			continent string
			summary   CountrySummary
		)
		err := rows.Scan(&continent, &summary.Country, &summary.PostCount, &summary.ID)
		if err != nil {
			return nil, err
		}
		continents[continent] = append(continents[continent], summary)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return continents, nil
}

func (m *PostModel) getTags(ctx context.Context) ([]string, error) {
	query := `
		SELECT DISTINCT tag
		FROM posts, unnest(tags) AS tag
		ORDER BY tag`

	rows, err := m.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tags := []string{}
	for rows.Next() {
		var tag string
		if err := rows.Scan(&tag); err != nil {
			return nil, err
		}
		tags = append(tags, tag)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return tags, nil
}
