package locationservice

import (
	"context"
	"database/sql"

	"github.com/sushihentaime/wayfarer/internal/common"
)

func NewLocationService(db *sql.DB) *LocationService {
	return &LocationService{m: newLocationModel(db)}
}

func (s *LocationService) GetLocations(ctx context.Context) ([]Location, error) {
	return s.m.getLocations(ctx)
}

func (s *LocationService) GetLocationByID(ctx context.Context, id int64) (*Location, error) {
	v := common.NewValidator()
	validateID(v, id)
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	return s.m.getLocationById(ctx, id)
}

func (s *LocationService) CreateLocation(ctx context.Context, input *LocationInput) (*Location, error) {
	v := common.NewValidator()
	validateInput(v, input)
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	l := &Location{
		Country:   input.Country,
		City:      input.City,
		Continent: input.Continent,
		Image:     input.Image,
	}

	if err := s.m.insert(ctx, l); err != nil {
		return nil, err
	}

	return l, nil
}

// UpdateLocation replaces every field of the location with the given id.
func (s *LocationService) UpdateLocation(ctx context.Context, id int64, input *LocationInput) (*Location, error) {
	v := common.NewValidator()
	validateID(v, id)
	validateInput(v, input)
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	l := &Location{
		ID:        id,
		Country:   input.Country,
		City:      input.City,
		Continent: input.Continent,
		Image:     input.Image,
	}

	if err := s.m.updateLocation(ctx, l); err != nil {
		return nil, err
	}

	return l, nil
}

func (s *LocationService) DeleteLocation(ctx context.Context, id int64) error {
	v := common.NewValidator()
	validateID(v, id)
	if !v.Valid() {
		return v.ValidationError()
	}

	return s.m.deleteLocation(ctx, id)
}
