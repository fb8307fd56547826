package locationservice

import (
	"database/sql"
	"time"
)

// Location is an entry in the curated destinations list. It is independent of post locations.
type Location struct {
	ID        int64     `json:"id"`
	Country   string    `json:"country"`
	City      string    `json:"city"`
	Continent string    `json:"continent"`
	Image     string    `json:"image"`
	CreatedAt time.Time `json:"createdAt"`
}

type LocationInput struct {
	Country   string `json:"country" validate:"required,max=100"`
	City      string `json:"city" validate:"required,max=100"`
	Continent string `json:"continent" validate:"required,max=100"`
	Image     string `json:"image" validate:"required,url"`
}

type LocationModel struct {
	db *sql.DB
}

type LocationService struct {
	m *LocationModel
}
