package domain

import (
	"errors"
	"testing"
)

func intPtr(v int) *int { return &v }

func TestNewCampaign_DerivesNumberOfWinners(t *testing.T) {
	cases := []struct {
		name        string
		total       float64
		perWinner   float64
		mode        string
		duration    *int
		wantWinners int
	}{
		{"even split FCFS", 100000, 5000, ModeFCFS, nil, 20},
		{"floored split Random", 100000, 3000, ModeRandom, intPtr(60), 33},
		{"single winner", 50, 50, ModeFCFS, nil, 1},
		{"fractional amounts", 10.5, 3.5, ModeFCFS, nil, 3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, err := NewCampaign("Launch giveaway", tc.total, tc.perWinner, tc.mode, tc.duration, 1)
			if err != nil {
				t.Fatalf("Expected no error, but got %v", err)
			}
			if c.NumberOfWinners != tc.wantWinners {
				t.Errorf("Expected %d winners, but got %d", tc.wantWinners, c.NumberOfWinners)
			}
			if c.Status != StatusDraft {
				t.Errorf("Expected status %q, but got %q", StatusDraft, c.Status)
			}
		})
	}
}

func TestNewCampaign_InvalidAmounts(t *testing.T) {
	cases := []struct {
		name      string
		total     float64
		perWinner float64
	}{
		{"zero divisor", 100, 0},
		{"negative per winner", 100, -5},
		{"zero total", 0, 10},
		{"per winner exceeds total", 100, 200},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, err := NewCampaign("Bad amounts", tc.total, tc.perWinner, ModeFCFS, nil, 1)
			if !errors.Is(err, ErrInvalidAmount) {
				t.Fatalf("Expected ErrInvalidAmount, but got %v", err)
			}
			if c != nil {
				t.Error("Expected no campaign to be constructed")
			}
		})
	}
}

func TestNewCampaign_DurationRule(t *testing.T) {
	t.Run("Random without duration fails", func(t *testing.T) {
		_, err := NewCampaign("Draw", 1000, 100, ModeRandom, nil, 1)
		if !errors.Is(err, ErrMissingDuration) {
			t.Fatalf("Expected ErrMissingDuration, but got %v", err)
		}
	})

	t.Run("Random with non-positive duration fails", func(t *testing.T) {
		_, err := NewCampaign("Draw", 1000, 100, ModeRandom, intPtr(0), 1)
		if !errors.Is(err, ErrMissingDuration) {
			t.Fatalf("Expected ErrMissingDuration, but got %v", err)
		}
	})

	t.Run("Random keeps its duration", func(t *testing.T) {
		c, err := NewCampaign("Draw", 100000, 3000, ModeRandom, intPtr(60), 1)
		if err != nil {
			t.Fatalf("Expected no error, but got %v", err)
		}
		if c.Duration == nil || *c.Duration != 60 {
			t.Errorf("Expected duration 60, but got %v", c.Duration)
		}
	})

	t.Run("FCFS discards any supplied duration", func(t *testing.T) {
		c, err := NewCampaign("Rush", 100000, 5000, ModeFCFS, intPtr(30), 1)
		if err != nil {
			t.Fatalf("Expected no error, but got %v", err)
		}
		if c.Duration != nil {
			t.Errorf("Expected nil duration, but got %d", *c.Duration)
		}
		if c.NumberOfWinners != 20 {
			t.Errorf("Expected 20 winners, but got %d", c.NumberOfWinners)
		}
	})
}

func TestNewCampaign_ModeAndTitle(t *testing.T) {
	t.Run("Unknown mode fails", func(t *testing.T) {
		_, err := NewCampaign("Draw", 100, 10, "Raffle", nil, 1)
		if !errors.Is(err, ErrInvalidMode) {
			t.Fatalf("Expected ErrInvalidMode, but got %v", err)
		}
	})

	t.Run("Empty title fails", func(t *testing.T) {
		_, err := NewCampaign("", 100, 10, ModeFCFS, nil, 1)
		if !errors.Is(err, ErrInvalidTitle) {
			t.Fatalf("Expected ErrInvalidTitle, but got %v", err)
		}
	})
}

func TestCampaign_StatusTransitions(t *testing.T) {
	c := &Campaign{Status: StatusDraft}
	if !c.CanTransitionTo(StatusLive) {
		t.Error("Expected Draft to allow transition to Live")
	}
	if c.CanTransitionTo(StatusCompleted) {
		t.Error("Expected Draft to forbid skipping to Completed")
	}
	c.Status = StatusLive
	if !c.CanTransitionTo(StatusCompleted) {
		t.Error("Expected Live to allow transition to Completed")
	}
	if c.CanTransitionTo(StatusDraft) {
		t.Error("Expected no transition back to Draft")
	}
	c.Status = StatusCompleted
	if c.CanTransitionTo(StatusLive) || c.CanTransitionTo(StatusDraft) {
		t.Error("Expected Completed to be terminal")
	}
}
