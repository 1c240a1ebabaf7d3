package api

import (
	"context" // Context for Redis operations
	"errors"  // Sentinel error matching
	"net/http"
	"strconv" // String conversion
	"time"    // Time durations

	"giveaway_system/internal/domain"     // Importing domain models
	"giveaway_system/internal/repository" // Campaign storage
	"giveaway_system/internal/utils"      // Utility functions

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logging library
)

// CreateCampaignRequest carries the campaign creation form fields. The owner
// is never taken from the body; it always comes from the resolved caller
// identity.
type CreateCampaignRequest struct {
	Title           string  `json:"title" binding:"required"`           // Campaign title
	TotalAmount     float64 `json:"totalAmount" binding:"required"`     // Total amount to distribute
	AmountPerWinner float64 `json:"amountPerWinner" binding:"required"` // Amount each winner receives
	Mode            string  `json:"mode" binding:"required"`            // Random or FCFS
	Duration        *int    `json:"duration"`                           // Minutes, only meaningful for Random
}

// campaignListKey builds the cache key for an owner's campaign list
func campaignListKey(ownerID uint) string {
	return "campaigns:user:" + strconv.Itoa(int(ownerID))
}

// isValidationError reports whether err is a caller mistake rather than a
// storage fault.
func isValidationError(err error) bool {
	return errors.Is(err, domain.ErrInvalidTitle) ||
		errors.Is(err, domain.ErrInvalidAmount) ||
		errors.Is(err, domain.ErrInvalidMode) ||
		errors.Is(err, domain.ErrMissingDuration)
}

// CreateCampaignHandler validates and persists a new campaign owned by the
// authenticated caller
func CreateCampaignHandler(repo repository.CampaignRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get("userID") // Get userID from context
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}
		var req CreateCampaignRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request"})
			return
		}
		// Construction derives NumberOfWinners and enforces the invariants;
		// nothing is stored when it fails
		campaign, err := domain.NewCampaign(req.Title, req.TotalAmount, req.AmountPerWinner, req.Mode, req.Duration, userID.(uint))
		if err != nil {
			if isValidationError(err) {
				c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
			return
		}
		if err := repo.Create(c.Request.Context(), campaign); err != nil {
			logrus.WithFields(logrus.Fields{
				"user_id": userID,
				"title":   req.Title,
				"error":   err.Error(),
			}).Error("Campaign creation failed")
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
			return
		}
		logrus.WithFields(logrus.Fields{
			"user_id":           userID,
			"campaign_id":       campaign.ID,
			"mode":              campaign.Mode,
			"number_of_winners": campaign.NumberOfWinners,
			"timestamp":         time.Now().Format(time.RFC3339),
		}).Info("Campaign created")
		// Invalidate the owner's cached campaign list
		if v, ok := c.Get("redisClient"); ok {
			if rdb, ok := v.(*redis.Client); ok && rdb != nil {
				_ = utils.DeleteCache(context.Background(), rdb, campaignListKey(userID.(uint)))
			}
		}
		c.JSON(http.StatusCreated, campaign)
	}
}

// ListCampaignsHandler returns every campaign owned by the authenticated
// caller, newest first
func ListCampaignsHandler(repo repository.CampaignRepository, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get("userID") // Get userID from context
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}
		ownerID := userID.(uint)
		cacheKey := campaignListKey(ownerID)
		ctx := context.Background() // Context for Redis operations
		var campaigns []domain.Campaign
		if rdb != nil {
			// Serve from cache when possible
			found, err := utils.GetCache(ctx, rdb, cacheKey, &campaigns)
			if err == nil && found {
				c.JSON(http.StatusOK, campaigns)
				return
			}
		}
		campaigns, err := repo.ListByOwner(c.Request.Context(), ownerID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
			return
		}
		if rdb != nil {
			_ = utils.SetCache(ctx, rdb, cacheKey, campaigns, 60*time.Second) // Cache the list for 60 seconds
		}
		c.JSON(http.StatusOK, campaigns)
	}
}
