package heroservice

import (
	"database/sql"
	"time"
)

// HeroSettings is the single configuration row behind the home page hero section.
type HeroSettings struct {
	Title             string    `json:"title"`
	Description       string    `json:"description"`
	SecondDescription string    `json:"secondDescription"`
	FontColor         string    `json:"fontColor"`
	TextColor         string    `json:"textColor"`
	Video             string    `json:"video"`
	BackgroundColor   string    `json:"backgroundColor"`
	FontSize          int       `json:"fontSize"`
	Image             string    `json:"image"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

type HeroSettingsInput struct {
	Title             string `json:"title" validate:"required,max=200"`
	Description       string `json:"description" validate:"required"`
	SecondDescription string `json:"secondDescription" validate:"required"`
	FontColor         string `json:"fontColor" validate:"required,max=32"`
	TextColor         string `json:"textColor" validate:"required,max=32"`
	Video             string `json:"video" validate:"required,url"`
	BackgroundColor   string `json:"backgroundColor" validate:"required,max=32"`
	FontSize          int    `json:"fontSize" validate:"required,min=10,max=60"`
	Image             string `json:"image" validate:"required,url"`
}

type Favorite struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Image       string    `json:"image"`
	BlogID      *int64    `json:"blogId"`
	CreatedAt   time.Time `json:"createdAt"`
}

type FavoriteInput struct {
	Title       string `json:"title" validate:"required,max=200"`
	Description string `json:"description" validate:"required"`
	Image       string `json:"image" validate:"required,url"`
	BlogID      *int64 `json:"blogId" validate:"omitempty,gt=0"`
}

type Tag struct {
	ID        int64     `json:"id"`
	Tag       string    `json:"tag"`
	Image     string    `json:"image"`
	CreatedAt time.Time `json:"createdAt"`
}

type TagInput struct {
	Tag   string `json:"tag" validate:"required,max=50"`
	Image string `json:"image" validate:"required,url"`
}

type HeroModel struct {
	db *sql.DB
}

type HeroService struct {
	m *HeroModel
}
