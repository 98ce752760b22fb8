package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WishlistItemModel enforces one entry per (user, post) pair. The composite
// index is the real guarantee; the use case's pre-check only shortcuts the
// common case. Deletes are hard deletes so a removed entry can be re-added
// without tripping the index.
type WishlistItemModel struct {
	ID        string    `gorm:"type:uuid;primary_key" json:"id"`
	UserID    string    `gorm:"type:uuid;not null;uniqueIndex:idx_wishlist_user_post" json:"user_id"`
	PostID    string    `gorm:"type:uuid;not null;uniqueIndex:idx_wishlist_user_post" json:"post_id"`
	Title     string    `gorm:"type:varchar(255)" json:"title"`
	Category  string    `gorm:"type:varchar(100)" json:"category"`
	ImageURL  string    `gorm:"type:varchar(500)" json:"image_url"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (WishlistItemModel) TableName() string {
	return "wishlist_items"
}

func (w *WishlistItemModel) BeforeCreate(tx *gorm.DB) error {
	if w.ID == "" {
		w.ID = uuid.New().String()
	}
	return nil
}
