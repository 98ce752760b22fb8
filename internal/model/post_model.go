package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PostModel struct {
	ID          string         `gorm:"type:uuid;primary_key" json:"id"`
	Title       string         `gorm:"type:varchar(255);not null" json:"title"`
	Description string         `gorm:"type:text;not null" json:"description"`
	Content     string         `gorm:"type:text;not null" json:"content"`
	Category    string         `gorm:"type:varchar(100);index" json:"category"`
	ImageURL    string         `gorm:"type:varchar(500);not null" json:"image_url"`
	ImageKey    string         `gorm:"type:varchar(500);not null" json:"image_key"`
	AuthorName  string         `gorm:"type:varchar(255);not null" json:"author_name"`
	AuthorImage string         `gorm:"type:varchar(500)" json:"author_image"`
	Live        bool           `gorm:"default:true;index" json:"live"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

func (PostModel) TableName() string {
	return "posts"
}

func (p *PostModel) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}
