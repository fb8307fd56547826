package postservice

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/sushihentaime/wayfarer/internal/common"
)

func NewPostService(db *sql.DB) *PostService {
	return &PostService{m: newPostModel(db)}
}

// likeEscaper makes a search term match literally inside an ILIKE pattern.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// optionalText stores a blank location or country as absent.
func optionalText(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	return s
}

func newPostFromInput(input *PostInput) (*Post, error) {
	v := common.NewValidator()
	v.Struct(input)
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	date, err := common.ParseDate(input.Date)
	if err != nil {
		v.AddError("date", "must be a valid date")
		return nil, v.ValidationError()
	}

	tags := make(Tags, len(input.Tags))
	copy(tags, input.Tags)

	return &Post{
		Title:    input.Title,
		Content:  sanitizeMarkdown(input.Content),
		Date:     date,
		Image:    input.Image,
		Guide:    input.Guide,
		Location: optionalText(input.Location),
		Country:  optionalText(input.Country),
		Tags:     tags,
	}, nil
}

// CreatePost validates the input and stores a new post, returning it with its generated id.
func (s *PostService) CreatePost(ctx context.Context, input *PostInput) (*Post, error) {
	p, err := newPostFromInput(input)
	if err != nil {
		return nil, err
	}

	if err := s.m.insert(ctx, p); err != nil {
		return nil, err
	}

	return p, nil
}

// GetPostByID returns a post by its ID.
func (s *PostService) GetPostByID(ctx context.Context, id int64) (*Post, error) {
	v := common.NewValidator()
	validateID(v, id)
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	return s.m.getPostById(ctx, id)
}

// GetPosts returns every post matching the filter, oldest date first.
func (s *PostService) GetPosts(ctx context.Context, filter ListFilter) ([]Post, error) {
	v := common.NewValidator()
	for _, tag := range filter.Tags {
		validateTag(v, tag)
	}
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	filter.Query = likeEscaper.Replace(strings.TrimSpace(filter.Query))

	return s.m.getPosts(ctx, filter)
}

// GetPostsByTag returns the posts carrying tag.
func (s *PostService) GetPostsByTag(ctx context.Context, tag string) ([]Post, error) {
	return s.GetPosts(ctx, ListFilter{Tags: []string{tag}})
}

// UpdatePost replaces every field of an existing post.
func (s *PostService) UpdatePost(ctx context.Context, id int64, input *PostInput) (*Post, error) {
	v := common.NewValidator()
	validateID(v, id)
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	p, err := newPostFromInput(input)
	if err != nil {
		return nil, err
	}
	p.ID = id

	if err := s.m.updatePost(ctx, p); err != nil {
		return nil, err
	}

	return p, nil
}

// DeletePost deletes a post. Deleting a missing post returns common.ErrRecordNotFound.
func (s *PostService) DeletePost(ctx context.Context, id int64) error {
	v := common.NewValidator()
	validateID(v, id)
	if !v.Valid() {
		return v.ValidationError()
	}

	return s.m.deletePost(ctx, id)
}

// GetGuidePostsByContinent groups guide posts by continent and country for site navigation.
func (s *PostService) GetGuidePostsByContinent(ctx context.Context) (ContinentMap, error) {
	continents, err := s.m.getGuideCountries(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch continent data: %w", err)
	}

	return continents, nil
}

// GetTags returns every distinct tag in use, sorted.
func (s *PostService) GetTags(ctx context.Context) ([]string, error) {
	return s.m.getTags(ctx)
}

// GetRenderedPost returns a post with its content rendered to HTML and split into blocks.
func (s *PostService) GetRenderedPost(ctx context.Context, id int64) (*RenderedPost, error) {
	p, err := s.GetPostByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return renderPost(p)
}
