package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/friendmatch/backend/internal/config"
	"github.com/friendmatch/backend/internal/dto"
	"github.com/friendmatch/backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// matchLimit caps how many candidates discovery returns.
const matchLimit = 20

// MatchService ranks other users by how many interests they share with
// the caller. Read-only.
type MatchService struct {
	db  *gorm.DB
	cfg *config.Config
}

func NewMatchService(db *gorm.DB, cfg *config.Config) *MatchService {
	return &MatchService{db: db, cfg: cfg}
}

type sharedInterestRow struct {
	UserID uuid.UUID
	Name   string
}

// FindMatches returns up to matchLimit candidates ordered by shared-interest
// count, highest first. Ties are broken by user id ascending so the order
// is deterministic. A caller with no selected interests matches nobody.
func (s *MatchService) FindMatches(ctx context.Context, userID uuid.UUID) ([]dto.CandidateMatch, error) {
	ctx, cancel := boundCtx(ctx, s.cfg.StoreTimeout)
	defer cancel()
	db := s.db.WithContext(ctx)

	var interestIDs []uint
	err := db.Model(&models.UserInterest{}).
		Where("user_id = ?", userID).
		Pluck("interest_id", &interestIDs).Error
	if err != nil {
		return nil, storeErr(fmt.Errorf("failed to load caller interests: %w", err))
	}
	if len(interestIDs) == 0 {
		return []dto.CandidateMatch{}, nil
	}

	var rows []sharedInterestRow
	err = db.Table("user_interests").
		Select("user_interests.user_id AS user_id, interests.name AS name").
		Joins("JOIN interests ON interests.id = user_interests.interest_id").
		Where("user_interests.interest_id IN ?", interestIDs).
		Where("user_interests.user_id <> ?", userID).
		Scan(&rows).Error
	if err != nil {
		return nil, storeErr(fmt.Errorf("failed to find shared interests: %w", err))
	}
	if len(rows) == 0 {
		return []dto.CandidateMatch{}, nil
	}

	shared := make(map[uuid.UUID][]string)
	for _, row := range rows {
		shared[row.UserID] = append(shared[row.UserID], row.Name)
	}

	candidateIDs := make([]uuid.UUID, 0, len(shared))
	for id := range shared {
		candidateIDs = append(candidateIDs, id)
	}

	var profiles []models.Profile
	if err := db.Where("id IN ?", candidateIDs).Find(&profiles).Error; err != nil {
		return nil, storeErr(fmt.Errorf("failed to load candidate profiles: %w", err))
	}

	matches := make([]dto.CandidateMatch, 0, len(profiles))
	for _, p := range profiles {
		names := shared[p.ID]
		matches = append(matches, dto.CandidateMatch{
			ID:                p.ID,
			Username:          p.Username,
			FullName:          p.FullName,
			Bio:               p.Bio,
			Age:               p.Age,
			Location:          p.Location,
			AvatarURL:         p.AvatarURL,
			MatchingInterests: names,
			MatchCount:        len(names),
		})
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].MatchCount != matches[j].MatchCount {
			return matches[i].MatchCount > matches[j].MatchCount
		}
		return matches[i].ID.String() < matches[j].ID.String()
	})

	if len(matches) > matchLimit {
		matches = matches[:matchLimit]
	}
	return matches, nil
}
