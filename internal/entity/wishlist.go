package entity

import "time"

// WishlistItem snapshots the post's display fields so the wishlist page
// renders without joining back to posts.
type WishlistItem struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	PostID    string    `json:"post_id"`
	Title     string    `json:"title"`
	Category  string    `json:"category"`
	ImageURL  string    `json:"image_url"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
