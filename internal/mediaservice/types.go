package mediaservice

import (
	"context"
	"database/sql"
	"log/slog"
	"time"
)

type MediaType string

const (
	MediaImage MediaType = "image"
	MediaVideo MediaType = "video"
)

// Media is a camera roll entry. Images and videos live in separate tables and share this shape.
type Media struct {
	ID         int64     `json:"id"`
	Type       MediaType `json:"type"`
	URL        string    `json:"url"`
	Continent  *string   `json:"continent"`
	Country    *string   `json:"country"`
	GoogleMaps *string   `json:"googleMaps"`
	Name       *string   `json:"name"`
	Location   *string   `json:"location"`
	Date       time.Time `json:"date"`
	CreatedAt  time.Time `json:"createdAt"`
}

type MediaInput struct {
	Type       string  `json:"type" validate:"required,oneof=image video"`
	URL        string  `json:"url" validate:"required,url,max=2048"`
	Location   string  `json:"location" validate:"required,max=200"`
	Date       string  `json:"date" validate:"omitempty,anydate"`
	Continent  *string `json:"continent" validate:"omitempty,max=100"`
	Country    *string `json:"country" validate:"omitempty,max=100"`
	Name       *string `json:"name" validate:"omitempty,max=200"`
	GoogleMaps *string `json:"googleMaps" validate:"omitempty,url,max=2048"`
}

// ObjectRemover deletes a stored file by the URL it is served from.
type ObjectRemover interface {
	DeleteByURL(ctx context.Context, fileURL string) error
}

type MediaModel struct {
	db *sql.DB
}

type MediaService struct {
	m       *MediaModel
	storage ObjectRemover
	logger  *slog.Logger
	now     func() time.Time
}
