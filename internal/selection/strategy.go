// Package selection implements the winner-selection strategies declared by
// the campaign modes. Nothing invokes a strategy yet: the status lifecycle
// that would trigger a draw (duration expiry for Random, full subscription
// for FCFS) is an extension point, so strategies are only registered here
// per mode.
package selection

import (
	"fmt"
	"math/rand"

	"giveaway_system/internal/domain"
)

// Strategy picks winners for a campaign from the entrants, in the order they
// entered. It returns at most campaign.NumberOfWinners entrant IDs; when
// there are fewer entrants than winner slots, every entrant wins.
type Strategy interface {
	SelectWinners(campaign *domain.Campaign, entrantIDs []string) ([]string, error)
}

// ForMode returns the strategy registered for the campaign mode.
func ForMode(mode string) (Strategy, error) {
	switch mode {
	case domain.ModeRandom:
		return RandomStrategy{}, nil
	case domain.ModeFCFS:
		return FCFSStrategy{}, nil
	}
	return nil, fmt.Errorf("no selection strategy for mode %q", mode)
}

// RandomStrategy draws winners uniformly without replacement.
type RandomStrategy struct{}

// SelectWinners picks NumberOfWinners entrants at random.
func (RandomStrategy) SelectWinners(campaign *domain.Campaign, entrantIDs []string) ([]string, error) {
	n := campaign.NumberOfWinners
	if n >= len(entrantIDs) {
		winners := make([]string, len(entrantIDs))
		copy(winners, entrantIDs)
		return winners, nil
	}
	// Draw one winner at a time from the remaining pool
	pool := make([]string, len(entrantIDs))
	copy(pool, entrantIDs)
	winners := make([]string, 0, n)
	for len(winners) < n {
		i := rand.Intn(len(pool))
		winners = append(winners, pool[i])
		pool[i] = pool[len(pool)-1]
		pool = pool[:len(pool)-1]
	}
	return winners, nil
}

// FCFSStrategy rewards the earliest entrants.
type FCFSStrategy struct{}

// SelectWinners picks the first NumberOfWinners entrants in arrival order.
func (FCFSStrategy) SelectWinners(campaign *domain.Campaign, entrantIDs []string) ([]string, error) {
	n := campaign.NumberOfWinners
	if n > len(entrantIDs) {
		n = len(entrantIDs)
	}
	winners := make([]string, n)
	copy(winners, entrantIDs[:n])
	return winners, nil
}
