package mediaservice

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/sushihentaime/wayfarer/internal/common"
)

// NewMediaService returns a camera roll service. storage may be nil, in which case
// deleting media leaves stored files in place.
func NewMediaService(db *sql.DB, storage ObjectRemover, logger *slog.Logger) *MediaService {
	return &MediaService{
		m:       newMediaModel(db),
		storage: storage,
		logger:  logger,
		now:     time.Now,
	}
}

func newMediaFromInput(v *common.Validator, input *MediaInput) (*Media, *time.Time) {
	v.Struct(input)
	if !v.Valid() {
		return nil, nil
	}

	var date *time.Time
	if input.Date != "" {
		d, err := common.ParseDate(input.Date)
		if err != nil {
			v.AddError("date", "must be a valid date")
			return nil, nil
		}
		date = &d
	}

	location := input.Location
	return &Media{
		Type:       MediaType(input.Type),
		URL:        input.URL,
		Continent:  input.Continent,
		Country:    input.Country,
		GoogleMaps: input.GoogleMaps,
		Name:       input.Name,
		Location:   &location,
	}, date
}

// GetMedia lists camera roll entries of one type, or of both types when typ is empty, oldest first.
func (s *MediaService) GetMedia(ctx context.Context, typ MediaType) ([]Media, error) {
	if typ != "" {
		v := common.NewValidator()
		validateType(v, typ)
		if !v.Valid() {
			return nil, v.ValidationError()
		}
	}

	return s.m.getMedia(ctx, typ)
}

func (s *MediaService) GetMediaByID(ctx context.Context, typ MediaType, id int64) (*Media, error) {
	v := common.NewValidator()
	validateType(v, typ)
	validateID(v, id)
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	return s.m.getMediaById(ctx, typ, id)
}

// CreateMedia stores a new entry in the table selected by input.Type. A missing date defaults to now.
func (s *MediaService) CreateMedia(ctx context.Context, input *MediaInput) (*Media, error) {
	v := common.NewValidator()
	media, date := newMediaFromInput(v, input)
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	if date != nil {
		media.Date = *date
	} else {
		media.Date = s.now().UTC()
	}

	if err := s.m.insert(ctx, media); err != nil {
		return nil, err
	}

	return media, nil
}

// UpdateMedia replaces an entry. The body type may be omitted, otherwise it must equal typ.
func (s *MediaService) UpdateMedia(ctx context.Context, typ MediaType, id int64, input *MediaInput) (*Media, error) {
	if input.Type == "" {
		input.Type = string(typ)
	}

	v := common.NewValidator()
	validateType(v, typ)
	validateID(v, id)
	v.Check(input.Type == string(typ), "type", "must match the type of the existing entry")
	media, date := newMediaFromInput(v, input)
	if !v.Valid() {
		return nil, v.ValidationError()
	}
	media.ID = id

	if err := s.m.updateMedia(ctx, media, date); err != nil {
		return nil, err
	}

	return media, nil
}

// DeleteMedia removes the entry and then asks storage to delete fileURL.
// The storage step never fails the call; its errors are only logged.
func (s *MediaService) DeleteMedia(ctx context.Context, typ MediaType, id int64, fileURL string) error {
	v := common.NewValidator()
	validateType(v, typ)
	validateID(v, id)
	v.Check(fileURL != "", "url", "must be provided")
	if !v.Valid() {
		return v.ValidationError()
	}

	if err := s.m.deleteMedia(ctx, typ, id); err != nil {
		return err
	}

	if s.storage == nil {
		return nil
	}

	if err := s.storage.DeleteByURL(ctx, fileURL); err != nil {
		s.logger.Warn("could not delete media file from storage",
			slog.String("type", string(typ)),
			slog.Int64("id", id),
			slog.String("url", fileURL),
			slog.String("error", err.Error()))
	}

	return nil
}
