package models

import (
	"time"

	"github.com/google/uuid"
)

// FriendRequest statuses. Accepted and rejected are terminal.
const (
	RequestPending  = "pending"
	RequestAccepted = "accepted"
	RequestRejected = "rejected"
)

// FriendRequest is created by the sender and transitioned only by the
// receiver (pending -> accepted|rejected).
type FriendRequest struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	SenderID   uuid.UUID `gorm:"type:uuid;not null;index" json:"sender_id"`
	ReceiverID uuid.UUID `gorm:"type:uuid;not null;index" json:"receiver_id"`
	Status     string    `gorm:"size:20;not null;default:'pending';index" json:"status"`
	CreatedAt  time.Time `json:"created_at"`

	Sender Profile `gorm:"foreignKey:SenderID" json:"-"`
}

func (FriendRequest) TableName() string {
	return "friend_requests"
}
