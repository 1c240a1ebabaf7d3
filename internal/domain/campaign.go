package domain

import (
	"errors"
	"math"
)

// Selection modes
const (
	ModeRandom = "Random" // Time-boxed random draw
	ModeFCFS   = "FCFS"   // First come, first served
)

// Campaign statuses, in lifecycle order
const (
	StatusDraft     = "Draft"     // Initial status
	StatusLive      = "Live"      // Accepting entrants
	StatusCompleted = "Completed" // Winners selected
)

// Validation errors surfaced to the caller verbatim
var (
	// ErrInvalidTitle is returned when the campaign title is empty.
	ErrInvalidTitle = errors.New("campaign title is required")
	// ErrInvalidAmount is returned when the amounts are non-positive or inconsistent.
	ErrInvalidAmount = errors.New("amounts must be positive and amount per winner cannot exceed total amount")
	// ErrInvalidMode is returned when the mode is not Random or FCFS.
	ErrInvalidMode = errors.New("mode must be Random or FCFS")
	// ErrMissingDuration is returned when a Random campaign has no positive duration.
	ErrMissingDuration = errors.New("a positive duration is required for Random campaigns")
)

// Campaign Model
type Campaign struct {
	ID              uint    `gorm:"primaryKey" json:"id"`                       // Primary key
	Title           string  `gorm:"not null" json:"title"`                      // Campaign title
	TotalAmount     float64 `gorm:"not null" json:"totalAmount"`                // Total amount to distribute
	AmountPerWinner float64 `gorm:"not null" json:"amountPerWinner"`            // Amount each winner receives
	NumberOfWinners int     `gorm:"not null" json:"numberOfWinners"`            // Derived: floor(TotalAmount / AmountPerWinner)
	Mode            string  `gorm:"not null" json:"mode"`                       // Random or FCFS
	Duration        *int    `json:"duration"`                                   // Minutes; non-nil exactly when Mode is Random
	Status          string  `gorm:"not null;default:Draft" json:"status"`       // Draft, Live or Completed
	UserID          uint    `gorm:"not null;index" json:"userId"`               // Foreign key to the owning User
	CreatedAt       int64   `gorm:"autoCreateTime:milli" json:"createdAt"`      // Timestamp of creation in milliseconds
}

// NewCampaign builds a Draft campaign from caller input, enforcing the
// construction-time invariants. NumberOfWinners is always derived here and
// never taken from the caller. For FCFS campaigns any supplied duration is
// discarded.
func NewCampaign(title string, totalAmount, amountPerWinner float64, mode string, duration *int, ownerID uint) (*Campaign, error) {
	if title == "" {
		return nil, ErrInvalidTitle
	}
	// Zero divisor is rejected before the division ever happens
	if totalAmount <= 0 || amountPerWinner <= 0 || amountPerWinner > totalAmount {
		return nil, ErrInvalidAmount
	}
	if mode != ModeRandom && mode != ModeFCFS {
		return nil, ErrInvalidMode
	}
	var d *int
	if mode == ModeRandom {
		if duration == nil || *duration <= 0 {
			return nil, ErrMissingDuration
		}
		v := *duration
		d = &v
	}
	return &Campaign{
		Title:           title,
		TotalAmount:     totalAmount,
		AmountPerWinner: amountPerWinner,
		NumberOfWinners: int(math.Floor(totalAmount / amountPerWinner)),
		Mode:            mode,
		Duration:        d,
		Status:          StatusDraft,
		UserID:          ownerID,
	}, nil
}

// statusRank orders the lifecycle: Draft < Live < Completed.
func statusRank(status string) int {
	switch status {
	case StatusDraft:
		return 0
	case StatusLive:
		return 1
	case StatusCompleted:
		return 2
	}
	return -1
}

// CanTransitionTo reports whether the campaign may move to the given status.
// The lifecycle is monotonic: Draft to Live to Completed, one step at a time.
// No operation currently drives these transitions; the triggers belong to a
// future draw scheduler.
func (c *Campaign) CanTransitionTo(status string) bool {
	from, to := statusRank(c.Status), statusRank(status)
	return from >= 0 && to == from+1
}
