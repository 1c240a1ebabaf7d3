package repository

import (
	"context"
	"fmt"

	"giveaway_system/internal/domain"

	"gorm.io/gorm" // GORM ORM library
)

// GormCampaignRepository persists campaigns through GORM.
type GormCampaignRepository struct {
	db *gorm.DB
}

// NewGormCampaignRepository creates a campaign repository backed by db.
func NewGormCampaignRepository(db *gorm.DB) *GormCampaignRepository {
	return &GormCampaignRepository{db: db}
}

// Create inserts the campaign as a single row. GORM writes the generated
// primary key and creation timestamp back into the struct.
func (r *GormCampaignRepository) Create(ctx context.Context, campaign *domain.Campaign) error {
	if err := r.db.WithContext(ctx).Create(campaign).Error; err != nil {
		return fmt.Errorf("create campaign: %w", err)
	}
	return nil
}

// ListByOwner returns the owner's campaigns ordered by creation time, newest
// first.
func (r *GormCampaignRepository) ListByOwner(ctx context.Context, ownerID uint) ([]domain.Campaign, error) {
	campaigns := make([]domain.Campaign, 0)
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("created_at desc").
		Find(&campaigns).Error; err != nil {
		return nil, fmt.Errorf("list campaigns: %w", err)
	}
	return campaigns, nil
}
