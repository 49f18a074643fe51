package models

import (
	"time"

	"github.com/google/uuid"
)

// Friendship stores one row per unordered pair with User1ID < User2ID.
// The composite primary key makes the canonical pair unique; writers must
// go through CanonicalPair so only one orientation is ever inserted.
type Friendship struct {
	User1ID   uuid.UUID `gorm:"type:uuid;primaryKey" json:"user1_id"`
	User2ID   uuid.UUID `gorm:"type:uuid;primaryKey" json:"user2_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (Friendship) TableName() string {
	return "friendships"
}

// CanonicalPair orders two user ids so the smaller one (by canonical
// string form) comes first.
func CanonicalPair(a, b uuid.UUID) (uuid.UUID, uuid.UUID) {
	if a.String() < b.String() {
		return a, b
	}
	return b, a
}

// Other returns the opposite side of the friendship relative to userID.
func (f Friendship) Other(userID uuid.UUID) uuid.UUID {
	if f.User1ID == userID {
		return f.User2ID
	}
	return f.User1ID
}
