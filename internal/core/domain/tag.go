package domain

import "time"

// Tag labels posts through the post_tags link table. Names are unique.
type Tag struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}
