package dto

import (
	"time"

	"github.com/google/uuid"
)

type SendFriendRequestRequest struct {
	ReceiverID uuid.UUID `json:"receiver_id"`
}

type FriendRequestResponse struct {
	ID         uuid.UUID `json:"id"`
	SenderID   uuid.UUID `json:"sender_id"`
	ReceiverID uuid.UUID `json:"receiver_id"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

type RespondFriendRequestRequest struct {
	RequestID uuid.UUID `json:"request_id"`
	Accept    bool      `json:"accept"`
}

// PendingRequestResponse is a pending request joined with sender profile
// summary fields.
type PendingRequestResponse struct {
	ID              uuid.UUID `json:"id"`
	SenderID        uuid.UUID `json:"sender_id"`
	SenderUsername  string    `json:"sender_username"`
	SenderFullName  string    `json:"sender_full_name"`
	SenderBio       string    `json:"sender_bio"`
	SenderAvatarURL string    `json:"sender_avatar_url"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
}

// FriendResponse is a friend's profile decorated with the interests the
// two users share.
type FriendResponse struct {
	ID                uuid.UUID `json:"id"`
	Username          string    `json:"username"`
	FullName          string    `json:"full_name"`
	Bio               string    `json:"bio"`
	Age               *int      `json:"age"`
	Location          string    `json:"location"`
	AvatarURL         string    `json:"avatar_url"`
	MatchingInterests []string  `json:"matchingInterests"`
}
