package dto

import (
	"time"

	"github.com/google/uuid"
)

// UpdateProfileRequest replaces the profile fields and, when Interests is
// non-nil, the full interest selection.
type UpdateProfileRequest struct {
	Username  string `json:"username"`
	FullName  string `json:"full_name"`
	Bio       string `json:"bio"`
	Age       *int   `json:"age"`
	Location  string `json:"location"`
	AvatarURL string `json:"avatar_url"`
	Interests []uint `json:"interests"`
}

type InterestSummary struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type ProfileResponse struct {
	ID        uuid.UUID         `json:"id"`
	Username  string            `json:"username"`
	FullName  string            `json:"full_name"`
	Bio       string            `json:"bio"`
	Age       *int              `json:"age"`
	Location  string            `json:"location"`
	AvatarURL string            `json:"avatar_url"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
	Interests []InterestSummary `json:"interests"`
}
