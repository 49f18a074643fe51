package models

import (
	"time"

	"github.com/google/uuid"
)

// Profile holds the user-editable presentation data. One row per user,
// sharing the user's id. Created lazily on first profile access.
type Profile struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Username  string    `gorm:"size:50;not null;index" json:"username"`
	FullName  string    `gorm:"size:100" json:"full_name"`
	Bio       string    `gorm:"type:text" json:"bio"`
	Age       *int      `json:"age"`
	Location  string    `gorm:"size:100" json:"location"`
	AvatarURL string    `gorm:"type:text" json:"avatar_url"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Profile) TableName() string {
	return "profiles"
}
