package services

import (
	"context"
	"fmt"

	"github.com/friendmatch/backend/internal/config"
	"github.com/friendmatch/backend/internal/models"
	"gorm.io/gorm"
)

// InterestService serves the read-only interest catalog.
type InterestService struct {
	db  *gorm.DB
	cfg *config.Config
}

func NewInterestService(db *gorm.DB, cfg *config.Config) *InterestService {
	return &InterestService{db: db, cfg: cfg}
}

func (s *InterestService) ListInterests(ctx context.Context) ([]models.Interest, error) {
	ctx, cancel := boundCtx(ctx, s.cfg.StoreTimeout)
	defer cancel()

	var interests []models.Interest
	err := s.db.WithContext(ctx).
		Order("category ASC, name ASC").
		Find(&interests).Error
	if err != nil {
		return nil, storeErr(fmt.Errorf("failed to load interests: %w", err))
	}
	return interests, nil
}
