package entity

import "time"

// Post is a blog article. ImageURL and ImageKey always travel as a pair:
// the key is what the asset store needs to replace or delete the image later.
type Post struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Content     string    `json:"content"`
	Category    string    `json:"category"`
	ImageURL    string    `json:"image_url"`
	ImageKey    string    `json:"image_key"`
	AuthorName  string    `json:"author_name"`
	AuthorImage string    `json:"author_image"`
	Live        bool      `json:"live"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
