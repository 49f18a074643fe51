package dto

import "github.com/google/uuid"

// CandidateMatch is another user surfaced by discovery, annotated with the
// shared-interest names and count.
type CandidateMatch struct {
	ID                uuid.UUID `json:"id"`
	Username          string    `json:"username"`
	FullName          string    `json:"full_name"`
	Bio               string    `json:"bio"`
	Age               *int      `json:"age"`
	Location          string    `json:"location"`
	AvatarURL         string    `json:"avatar_url"`
	MatchingInterests []string  `json:"matchingInterests"`
	MatchCount        int       `json:"matchCount"`
}
