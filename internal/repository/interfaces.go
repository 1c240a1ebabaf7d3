// Package repository provides data access interfaces and implementations.
package repository

import (
	"context"

	"giveaway_system/internal/domain"
)

// CampaignRepository defines methods for campaign data access.
type CampaignRepository interface {
	// Create inserts the campaign and fills in its generated ID and
	// creation timestamp. Storage failures are surfaced as-is; there is
	// no retry.
	Create(ctx context.Context, campaign *domain.Campaign) error
	// ListByOwner returns every campaign owned by ownerID, newest first.
	// An owner with no campaigns gets an empty slice, not an error.
	ListByOwner(ctx context.Context, ownerID uint) ([]domain.Campaign, error)
}
