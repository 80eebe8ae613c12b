package poker

import (
	"fmt"

	"github.com/lox/pokerhand/internal/combin"
)

const (
	// PrivateSize is the number of hole cards in a community-card pool.
	PrivateSize = 2
	// SharedSize is the number of board cards in a community-card pool.
	SharedSize = 5
	// PoolSize is the total number of cards a best hand is chosen from.
	PoolSize = PrivateSize + SharedSize
)

// Pool is the private cards followed by the shared cards.
type Pool [PoolSize]Card

// NewPool joins two private and five shared cards.
func NewPool(private, shared []Card) (Pool, error) {
	var p Pool
	if len(private) != PrivateSize || len(shared) != SharedSize {
		return p, fmt.Errorf("%w: need %d private and %d shared cards, got %d and %d",
			ErrInvalidPoolSize, PrivateSize, SharedSize, len(private), len(shared))
	}
	copy(p[:PrivateSize], private)
	copy(p[PrivateSize:], shared)
	return p, nil
}

// Private returns the hole cards.
func (p Pool) Private() []Card {
	return append([]Card(nil), p[:PrivateSize]...)
}

// Shared returns the board cards.
func (p Pool) Shared() []Card {
	return append([]Card(nil), p[PrivateSize:]...)
}

// Best returns the strongest five-card hand in the pool.
func (p Pool) Best() Hand {
	h, _ := best(p[:])
	return h
}

// BestHand returns the strongest five-card hand from two private and five
// shared cards. Among equally strong hands the first one enumerated wins, so
// the result is reproducible for a given card order.
func BestHand(private, shared []Card) (Hand, error) {
	p, err := NewPool(private, shared)
	if err != nil {
		return Hand{}, err
	}
	return p.Best(), nil
}

// BestOf returns the strongest five-card hand from any pool of at least five cards.
func BestOf(cards []Card) (Hand, error) {
	if len(cards) < HandSize {
		return Hand{}, fmt.Errorf("%w: need at least %d cards, got %d",
			ErrInvalidPoolSize, HandSize, len(cards))
	}
	return best(cards)
}

func best(cards []Card) (Hand, error) {
	var (
		bestHand    Hand
		bestProfile profile
		seen        bool
	)
	for idx := range combin.Indices(len(cards), HandSize) {
		var candidate Hand
		for i, j := range idx {
			candidate[i] = cards[j]
		}
		p := newProfile(candidate)
		if !seen || compareProfiles(p, bestProfile) == FirstWins {
			bestHand, bestProfile, seen = candidate, p, true
		}
	}
	if !seen {
		return Hand{}, fmt.Errorf("%w: got %d cards", ErrInvalidPoolSize, len(cards))
	}
	return bestHand, nil
}
