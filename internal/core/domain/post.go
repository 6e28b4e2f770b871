package domain

import "time"

// Post is an article. ContentHTML is rendered from ContentMarkdown at
// create/update time and stored alongside it.
type Post struct {
	ID              int64     `json:"id"`
	Title           string    `json:"title"`
	ContentMarkdown string    `json:"content_markdown"`
	ContentHTML     string    `json:"content_html"`
	Summary         *string   `json:"summary,omitempty"`
	Published       bool      `json:"published"`
	AuthorID        int64     `json:"author_id"`
	CategoryID      *int64    `json:"category_id,omitempty"`
	Tags            []Tag     `json:"tags,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
