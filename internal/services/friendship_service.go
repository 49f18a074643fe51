package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/friendmatch/backend/internal/config"
	"github.com/friendmatch/backend/internal/dto"
	"github.com/friendmatch/backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrSelfRequest     = errors.New("cannot send a friend request to yourself")
	ErrRequestExists   = errors.New("a pending request already exists between these users")
	ErrAlreadyFriends  = errors.New("users are already friends")
	ErrRequestNotFound = errors.New("friend request not found or already handled")
)

// FriendshipService owns the request lifecycle and the friendships
// relation. Requests move pending -> accepted|rejected; accepting also
// materializes the canonical-ordered friendship row in the same
// transaction.
type FriendshipService struct {
	db  *gorm.DB
	cfg *config.Config
}

func NewFriendshipService(db *gorm.DB, cfg *config.Config) *FriendshipService {
	return &FriendshipService{db: db, cfg: cfg}
}

// SendRequest inserts a pending request from sender to receiver. Requests
// to oneself, duplicate pending requests in either direction and requests
// between existing friends are rejected.
func (s *FriendshipService) SendRequest(ctx context.Context, senderID, receiverID uuid.UUID) (*dto.FriendRequestResponse, error) {
	if senderID == receiverID {
		return nil, ErrSelfRequest
	}

	ctx, cancel := boundCtx(ctx, s.cfg.StoreTimeout)
	defer cancel()
	db := s.db.WithContext(ctx)

	var pending int64
	err := db.Model(&models.FriendRequest{}).
		Where("status = ?", models.RequestPending).
		Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)",
			senderID, receiverID, receiverID, senderID).
		Count(&pending).Error
	if err != nil {
		return nil, storeErr(fmt.Errorf("failed to check pending requests: %w", err))
	}
	if pending > 0 {
		return nil, ErrRequestExists
	}

	user1, user2 := models.CanonicalPair(senderID, receiverID)
	var friends int64
	err = db.Model(&models.Friendship{}).
		Where("user1_id = ? AND user2_id = ?", user1, user2).
		Count(&friends).Error
	if err != nil {
		return nil, storeErr(fmt.Errorf("failed to check friendship: %w", err))
	}
	if friends > 0 {
		return nil, ErrAlreadyFriends
	}

	request := models.FriendRequest{
		ID:         uuid.New(),
		SenderID:   senderID,
		ReceiverID: receiverID,
		Status:     models.RequestPending,
	}
	if err := db.Create(&request).Error; err != nil {
		// A concurrent send for the same pair can slip past the count
		// check; the partial unique index catches it here.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrRequestExists
		}
		return nil, storeErr(fmt.Errorf("failed to create friend request: %w", err))
	}

	return toRequestResponse(&request), nil
}

// Respond transitions a pending request to accepted or rejected. Only the
// receiver may respond, enforced by the conditional update; a request that
// is missing, already handled, or addressed to someone else affects zero
// rows and surfaces as not-found. Accepting inserts the friendship in the
// same transaction, so a failed insert rolls the transition back.
func (s *FriendshipService) Respond(ctx context.Context, requestID, responderID uuid.UUID, accept bool) (*dto.FriendRequestResponse, error) {
	ctx, cancel := boundCtx(ctx, s.cfg.StoreTimeout)
	defer cancel()

	status := models.RequestRejected
	if accept {
		status = models.RequestAccepted
	}

	var request models.FriendRequest
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.FriendRequest{}).
			Where("id = ? AND receiver_id = ? AND status = ?", requestID, responderID, models.RequestPending).
			Update("status", status)
		if result.Error != nil {
			return fmt.Errorf("failed to update friend request: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrRequestNotFound
		}

		if err := tx.First(&request, "id = ?", requestID).Error; err != nil {
			return fmt.Errorf("failed to reload friend request: %w", err)
		}

		if accept {
			user1, user2 := models.CanonicalPair(request.SenderID, request.ReceiverID)
			friendship := models.Friendship{User1ID: user1, User2ID: user2}
			if err := tx.Create(&friendship).Error; err != nil {
				return fmt.Errorf("failed to create friendship: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrRequestNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, storeErr(err)
	}

	return toRequestResponse(&request), nil
}

// RemoveFriendship deletes the row in either orientation. Removing a
// friendship that does not exist is a no-op.
func (s *FriendshipService) RemoveFriendship(ctx context.Context, actingUserID, otherUserID uuid.UUID) error {
	ctx, cancel := boundCtx(ctx, s.cfg.StoreTimeout)
	defer cancel()

	err := s.db.WithContext(ctx).
		Where("(user1_id = ? AND user2_id = ?) OR (user1_id = ? AND user2_id = ?)",
			actingUserID, otherUserID, otherUserID, actingUserID).
		Delete(&models.Friendship{}).Error
	if err != nil {
		return storeErr(fmt.Errorf("failed to remove friendship: %w", err))
	}
	return nil
}

// ListFriends returns the profiles of everyone the user is friends with,
// each decorated with the interests the pair shares. The decoration is
// best-effort: a failed interest lookup leaves the lists empty rather
// than failing the call.
func (s *FriendshipService) ListFriends(ctx context.Context, userID uuid.UUID) ([]dto.FriendResponse, error) {
	ctx, cancel := boundCtx(ctx, s.cfg.StoreTimeout)
	defer cancel()
	db := s.db.WithContext(ctx)

	var friendships []models.Friendship
	err := db.Where("user1_id = ? OR user2_id = ?", userID, userID).
		Find(&friendships).Error
	if err != nil {
		return nil, storeErr(fmt.Errorf("failed to load friendships: %w", err))
	}
	if len(friendships) == 0 {
		return []dto.FriendResponse{}, nil
	}

	friendIDs := make([]uuid.UUID, len(friendships))
	for i, f := range friendships {
		friendIDs[i] = f.Other(userID)
	}

	var profiles []models.Profile
	if err := db.Where("id IN ?", friendIDs).Find(&profiles).Error; err != nil {
		return nil, storeErr(fmt.Errorf("failed to load friend profiles: %w", err))
	}

	sharedNames := s.sharedInterestsWith(db, userID, friendIDs)

	friends := make([]dto.FriendResponse, 0, len(profiles))
	for _, p := range profiles {
		names := sharedNames[p.ID]
		if names == nil {
			names = []string{}
		}
		friends = append(friends, dto.FriendResponse{
			ID:                p.ID,
			Username:          p.Username,
			FullName:          p.FullName,
			Bio:               p.Bio,
			Age:               p.Age,
			Location:          p.Location,
			AvatarURL:         p.AvatarURL,
			MatchingInterests: names,
		})
	}
	return friends, nil
}

// sharedInterestsWith computes the pairwise shared-interest names between
// the user and each friend in one query.
func (s *FriendshipService) sharedInterestsWith(db *gorm.DB, userID uuid.UUID, friendIDs []uuid.UUID) map[uuid.UUID][]string {
	var myInterestIDs []uint
	err := db.Model(&models.UserInterest{}).
		Where("user_id = ?", userID).
		Pluck("interest_id", &myInterestIDs).Error
	if err != nil {
		slog.Warn("failed to load own interests for friend decoration", "user_id", userID, "error", err)
		return map[uuid.UUID][]string{}
	}
	if len(myInterestIDs) == 0 {
		return map[uuid.UUID][]string{}
	}

	var rows []sharedInterestRow
	err = db.Table("user_interests").
		Select("user_interests.user_id AS user_id, interests.name AS name").
		Joins("JOIN interests ON interests.id = user_interests.interest_id").
		Where("user_interests.user_id IN ?", friendIDs).
		Where("user_interests.interest_id IN ?", myInterestIDs).
		Scan(&rows).Error
	if err != nil {
		slog.Warn("failed to load shared interests for friends", "user_id", userID, "error", err)
		return map[uuid.UUID][]string{}
	}

	shared := make(map[uuid.UUID][]string)
	for _, row := range rows {
		shared[row.UserID] = append(shared[row.UserID], row.Name)
	}
	return shared
}

// ListPendingRequests returns requests awaiting the user's response,
// joined with sender profile summary fields.
func (s *FriendshipService) ListPendingRequests(ctx context.Context, userID uuid.UUID) ([]dto.PendingRequestResponse, error) {
	ctx, cancel := boundCtx(ctx, s.cfg.StoreTimeout)
	defer cancel()

	var rows []dto.PendingRequestResponse
	err := s.db.WithContext(ctx).Table("friend_requests").
		Select(`friend_requests.id, friend_requests.sender_id, friend_requests.status, friend_requests.created_at,
			profiles.username AS sender_username, profiles.full_name AS sender_full_name,
			profiles.bio AS sender_bio, profiles.avatar_url AS sender_avatar_url`).
		Joins("JOIN profiles ON profiles.id = friend_requests.sender_id").
		Where("friend_requests.receiver_id = ? AND friend_requests.status = ?", userID, models.RequestPending).
		Order("friend_requests.created_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, storeErr(fmt.Errorf("failed to load friend requests: %w", err))
	}
	if rows == nil {
		rows = []dto.PendingRequestResponse{}
	}
	return rows, nil
}

func toRequestResponse(r *models.FriendRequest) *dto.FriendRequestResponse {
	return &dto.FriendRequestResponse{
		ID:         r.ID,
		SenderID:   r.SenderID,
		ReceiverID: r.ReceiverID,
		Status:     r.Status,
		CreatedAt:  r.CreatedAt,
	}
}
