package aboutservice

import (
	"database/sql"
	"time"
)

// AboutMe is the single row shown on the about page.
type AboutMe struct {
	Title             string    `json:"title"`
	SecondTitle       string    `json:"secondTitle"`
	Description       string    `json:"description"`
	SecondDescription string    `json:"secondDescription"`
	Image             string    `json:"image"`
	SecondImage       string    `json:"secondImage"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

type AboutMeInput struct {
	Title             string `json:"title" validate:"required,max=200"`
	SecondTitle       string `json:"secondTitle" validate:"required,max=200"`
	Description       string `json:"description" validate:"required"`
	SecondDescription string `json:"secondDescription" validate:"required"`
	Image             string `json:"image" validate:"required,url"`
	SecondImage       string `json:"secondImage" validate:"required,url"`
}

type QuickFact struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

type QuickFactInput struct {
	Title       string `json:"title" validate:"required,max=200"`
	Description string `json:"description" validate:"required"`
}

type FAQ struct {
	ID        int64     `json:"id"`
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
	CreatedAt time.Time `json:"createdAt"`
}

type FAQInput struct {
	Question string `json:"question" validate:"required,max=500"`
	Answer   string `json:"answer" validate:"required"`
}

type AboutModel struct {
	db *sql.DB
}

type AboutService struct {
	m *AboutModel
}
