package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserModel deletes are hard deletes: the unique indexes on username and
// email must free the values, otherwise a removed account could never sign
// in again and its username would stay reserved forever.
type UserModel struct {
	ID             string    `gorm:"type:uuid;primary_key" json:"id"`
	Username       string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"username"`
	Email          string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	AvatarURL      string    `gorm:"type:varchar(500)" json:"avatar_url"`
	IsAdmin        bool      `gorm:"default:false" json:"is_admin"`
	ProviderUserID string    `gorm:"type:varchar(255)" json:"provider_user_id"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (UserModel) TableName() string {
	return "users"
}

func (u *UserModel) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	return nil
}
