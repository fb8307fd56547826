package postservice

import (
	"database/sql"
	"time"
)

type Post struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
	// Content is stored in Markdown format.
	Content   string    `json:"content"`
	Date      time.Time `json:"date"`
	Image     string    `json:"image"`
	Guide     bool      `json:"guide"`
	Location  *string   `json:"location"`
	Country   *string   `json:"country"`
	Tags      Tags      `json:"tags"`
	CreatedAt time.Time `json:"createdAt"`
}

// PostInput is the accepted shape of a post on create and update.
type PostInput struct {
	Title    string   `json:"title" validate:"required,max=200"`
	Content  string   `json:"content" validate:"required"`
	Date     string   `json:"date" validate:"required,anydate"`
	Image    string   `json:"image" validate:"required,max=2048"`
	Guide    bool     `json:"guide"`
	Location *string  `json:"location" validate:"omitempty,max=100"`
	Country  *string  `json:"country" validate:"omitempty,max=100"`
	Tags     []string `json:"tags" validate:"required,max=50,dive,required,max=50"`
}

// ListFilter narrows a post listing. A post matches when it carries every tag in Tags
// and, if Query is set, Query appears in its title, content, location or country.
type ListFilter struct {
	Tags  []string
	Query string
}

// CountrySummary is one navigation entry under a continent.
type CountrySummary struct {
	Country   *string `json:"country"`
	PostCount int     `json:"postCount"`
	ID        int64   `json:"id"`
}

// ContinentMap maps a continent to its countries with guide posts.
type ContinentMap map[string][]CountrySummary

type BlockType string

const (
	BlockText  BlockType = "text"
	BlockImage BlockType = "image"
)

type Block struct {
	Type     BlockType `json:"type"`
	Markdown string    `json:"markdown,omitempty"`
	HTML     string    `json:"html,omitempty"`
	Src      string    `json:"src,omitempty"`
	Alt      string    `json:"alt,omitempty"`
}

type RenderedPost struct {
	Post        *Post   `json:"post"`
	ReadingTime int     `json:"readingTime"`
	HTML        string  `json:"html"`
	Blocks      []Block `json:"blocks"`
}

type PostModel struct {
	db *sql.DB
}

type PostService struct {
	m *PostModel
}
