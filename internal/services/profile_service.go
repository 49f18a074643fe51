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

var ErrProfileNotFound = errors.New("profile not found")

type ProfileService struct {
	db  *gorm.DB
	cfg *config.Config
}

func NewProfileService(db *gorm.DB, cfg *config.Config) *ProfileService {
	return &ProfileService{db: db, cfg: cfg}
}

// GetProfile returns a profile with its selected interests. A user reading
// their own, not-yet-existing profile gets a default one created on the
// fly; reading someone else's missing profile is a not-found.
func (s *ProfileService) GetProfile(ctx context.Context, principalID, userID uuid.UUID) (*dto.ProfileResponse, error) {
	ctx, cancel := boundCtx(ctx, s.cfg.StoreTimeout)
	defer cancel()
	db := s.db.WithContext(ctx)

	var profile models.Profile
	err := db.First(&profile, "id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		if userID != principalID {
			return nil, ErrProfileNotFound
		}
		profile = models.Profile{
			ID:       userID,
			Username: defaultUsername(userID),
		}
		if err := db.Create(&profile).Error; err != nil {
			return nil, storeErr(fmt.Errorf("failed to create profile: %w", err))
		}
	} else if err != nil {
		return nil, storeErr(fmt.Errorf("failed to load profile: %w", err))
	}

	resp := toProfileResponse(&profile)
	resp.Interests = s.selectedInterests(db, userID)
	return resp, nil
}

// UpdateProfile upserts the profile row and, when a selection is present,
// replaces the whole interest set. Both writes share one transaction.
func (s *ProfileService) UpdateProfile(ctx context.Context, principalID uuid.UUID, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	ctx, cancel := boundCtx(ctx, s.cfg.StoreTimeout)
	defer cancel()
	db := s.db.WithContext(ctx)

	var profile models.Profile
	err := db.Transaction(func(tx *gorm.DB) error {
		err := tx.First(&profile, "id = ?", principalID).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			profile = models.Profile{ID: principalID}
			applyProfileFields(&profile, req)
			if profile.Username == "" {
				profile.Username = defaultUsername(principalID)
			}
			if err := tx.Create(&profile).Error; err != nil {
				return fmt.Errorf("failed to create profile: %w", err)
			}
		case err != nil:
			return fmt.Errorf("failed to load profile: %w", err)
		default:
			applyProfileFields(&profile, req)
			if err := tx.Model(&profile).Select("username", "full_name", "bio", "age", "location", "avatar_url").Updates(&profile).Error; err != nil {
				return fmt.Errorf("failed to update profile: %w", err)
			}
		}

		if req.Interests == nil {
			return nil
		}

		// Replace the selection wholesale rather than diffing it.
		if err := tx.Where("user_id = ?", principalID).Delete(&models.UserInterest{}).Error; err != nil {
			return fmt.Errorf("failed to clear interests: %w", err)
		}
		if len(req.Interests) > 0 {
			records := make([]models.UserInterest, len(req.Interests))
			for i, id := range req.Interests {
				records[i] = models.UserInterest{UserID: principalID, InterestID: id}
			}
			if err := tx.Create(&records).Error; err != nil {
				return fmt.Errorf("failed to save interests: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, storeErr(err)
	}

	resp := toProfileResponse(&profile)
	resp.Interests = s.selectedInterests(db, principalID)
	return resp, nil
}

// selectedInterests is decorative: a failed lookup degrades to an empty
// list instead of failing the profile read.
func (s *ProfileService) selectedInterests(db *gorm.DB, userID uuid.UUID) []dto.InterestSummary {
	var rows []dto.InterestSummary
	err := db.Table("user_interests").
		Select("interests.id, interests.name").
		Joins("JOIN interests ON interests.id = user_interests.interest_id").
		Where("user_interests.user_id = ?", userID).
		Order("interests.name").
		Scan(&rows).Error
	if err != nil {
		slog.Warn("failed to load selected interests", "user_id", userID, "error", err)
		return []dto.InterestSummary{}
	}
	if rows == nil {
		rows = []dto.InterestSummary{}
	}
	return rows
}

func applyProfileFields(p *models.Profile, req *dto.UpdateProfileRequest) {
	p.Username = req.Username
	p.FullName = req.FullName
	p.Bio = req.Bio
	p.Age = req.Age
	p.Location = req.Location
	p.AvatarURL = req.AvatarURL
}

func toProfileResponse(p *models.Profile) *dto.ProfileResponse {
	return &dto.ProfileResponse{
		ID:        p.ID,
		Username:  p.Username,
		FullName:  p.FullName,
		Bio:       p.Bio,
		Age:       p.Age,
		Location:  p.Location,
		AvatarURL: p.AvatarURL,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func defaultUsername(userID uuid.UUID) string {
	return "user_" + userID.String()[:8]
}
