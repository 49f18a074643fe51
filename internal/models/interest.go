package models

import (
	"time"

	"github.com/google/uuid"
)

// Interest is immutable reference data. The catalog is seeded at startup
// and never mutated by user actions.
type Interest struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"size:100;not null;uniqueIndex" json:"name"`
	Category string `gorm:"size:50;not null;index" json:"category"`
}

func (Interest) TableName() string {
	return "interests"
}

// UserInterest links a user to a selected interest. The composite primary
// key keeps the pair unique. The selection is replaced wholesale on every
// profile update, not diffed.
type UserInterest struct {
	UserID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	InterestID uint      `gorm:"primaryKey" json:"interest_id"`
	CreatedAt  time.Time `json:"created_at"`

	Interest Interest `gorm:"foreignKey:InterestID" json:"-"`
}

func (UserInterest) TableName() string {
	return "user_interests"
}
