package heroservice

import (
	"context"
	"database/sql"

	"github.com/sushihentaime/wayfarer/internal/common"
)

const (
	favoritesTable = "hero_favorites"
	tagsTable      = "hero_tags"
)

func NewHeroService(db *sql.DB) *HeroService {
	return &HeroService{m: newHeroModel(db)}
}

// GetSettings returns the hero settings. It returns common.ErrRecordNotFound until they are first saved.
func (s *HeroService) GetSettings(ctx context.Context) (*HeroSettings, error) {
	return s.m.getSettings(ctx)
}

// SaveSettings creates or replaces the hero settings.
func (s *HeroService) SaveSettings(ctx context.Context, input *HeroSettingsInput) (*HeroSettings, error) {
	v := common.NewValidator()
	v.Struct(input)
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	settings := &HeroSettings{
		Title:             input.Title,
		Description:       input.Description,
		SecondDescription: input.SecondDescription,
		FontColor:         input.FontColor,
		TextColor:         input.TextColor,
		Video:             input.Video,
		BackgroundColor:   input.BackgroundColor,
		FontSize:          input.FontSize,
		Image:             input.Image,
	}

	if err := s.m.saveSettings(ctx, settings); err != nil {
		return nil, err
	}

	return settings, nil
}

func (s *HeroService) GetFavorites(ctx context.Context) ([]Favorite, error) {
	return s.m.getFavorites(ctx)
}

func (s *HeroService) GetFavoriteByID(ctx context.Context, id int64) (*Favorite, error) {
	v := common.NewValidator()
	validateID(v, id)
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	return s.m.getFavoriteById(ctx, id)
}

func (s *HeroService) CreateFavorite(ctx context.Context, input *FavoriteInput) (*Favorite, error) {
	v := common.NewValidator()
	v.Struct(input)
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	f := &Favorite{
		Title:       input.Title,
		Description: input.Description,
		Image:       input.Image,
		BlogID:      input.BlogID,
	}

	if err := s.m.insertFavorite(ctx, f); err != nil {
		return nil, err
	}

	return f, nil
}

func (s *HeroService) UpdateFavorite(ctx context.Context, id int64, input *FavoriteInput) (*Favorite, error) {
	v := common.NewValidator()
	validateID(v, id)
	v.Struct(input)
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	f := &Favorite{
		ID:          id,
		Title:       input.Title,
		Description: input.Description,
		Image:       input.Image,
		BlogID:      input.BlogID,
	}

	if err := s.m.updateFavorite(ctx, f); err != nil {
		return nil, err
	}

	return f, nil
}

func (s *HeroService) DeleteFavorite(ctx context.Context, id int64) error {
	v := common.NewValidator()
	validateID(v, id)
	if !v.Valid() {
		return v.ValidationError()
	}

	return s.m.deleteRow(ctx, favoritesTable, id)
}

func (s *HeroService) GetTags(ctx context.Context) ([]Tag, error) {
	return s.m.getTags(ctx)
}

func (s *HeroService) GetTagByID(ctx context.Context, id int64) (*Tag, error) {
	v := common.NewValidator()
	validateID(v, id)
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	return s.m.getTagById(ctx, id)
}

func (s *HeroService) CreateTag(ctx context.Context, input *TagInput) (*Tag, error) {
	v := common.NewValidator()
	v.Struct(input)
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	t := &Tag{Tag: input.Tag, Image: input.Image}
	if err := s.m.insertTag(ctx, t); err != nil {
		return nil, err
	}

	return t, nil
}

func (s *HeroService) UpdateTag(ctx context.Context, id int64, input *TagInput) (*Tag, error) {
	v := common.NewValidator()
	validateID(v, id)
	v.Struct(input)
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	t := &Tag{ID: id, Tag: input.Tag, Image: input.Image}
	if err := s.m.updateTag(ctx, t); err != nil {
		return nil, err
	}

	return t, nil
}

func (s *HeroService) DeleteTag(ctx context.Context, id int64) error {
	v := common.NewValidator()
	validateID(v, id)
	if !v.Valid() {
		return v.ValidationError()
	}

	return s.m.deleteRow(ctx, tagsTable, id)
}
