package poker

import (
	"errors"
	"fmt"
	"slices"
)

// HandSize is the number of cards in an evaluated hand.
const HandSize = 5

var (
	// ErrInvalidHandSize is returned when a hand does not hold exactly five cards.
	ErrInvalidHandSize = errors.New("hand must contain exactly 5 cards")
	// ErrInvalidPoolSize is returned when a best-hand pool has the wrong shape.
	ErrInvalidPoolSize = errors.New("invalid card pool size")
	// ErrCategoryMismatch is returned by Compare when the hands differ in category.
	ErrCategoryMismatch = errors.New("hands are in different categories")
)

// Hand is exactly five cards in caller order. The evaluator never reorders it;
// sorting and grouping happen on internal copies.
type Hand [HandSize]Card

// NewHand builds a Hand, rejecting any other number of cards.
func NewHand(cards ...Card) (Hand, error) {
	var h Hand
	if len(cards) != HandSize {
		return h, fmt.Errorf("%w: got %d", ErrInvalidHandSize, len(cards))
	}
	copy(h[:], cards)
	return h, nil
}

// MustParseHand parses five cards and panics on error (for tests)
func MustParseHand(s string) Hand {
	h, err := NewHand(MustParseCards(s)...)
	if err != nil {
		panic(fmt.Sprintf("failed to parse hand '%s': %v", s, err))
	}
	return h
}

// Cards returns a copy of the cards as a slice.
func (h Hand) Cards() []Card {
	return slices.Clone(h[:])
}

// Sorted returns the hand ordered by rank, highest first. Equal ranks keep
// their original relative order.
func (h Hand) Sorted() Hand {
	out := h
	slices.SortStableFunc(out[:], func(a, b Card) int {
		return int(b.Rank) - int(a.Rank)
	})
	return out
}

// String renders the cards in caller order, e.g. "A♣ A♦ A♥ K♠ K♣".
func (h Hand) String() string {
	return FormatCards(h[:])
}

// Category is shorthand for Classify(h).
func (h Hand) Category() Category {
	return Classify(h)
}

// Classify returns the strongest category the hand satisfies.
func Classify(h Hand) Category {
	return newProfile(h).category()
}

// ClassifyCards is Classify for callers holding a slice.
func ClassifyCards(cards []Card) (Category, error) {
	h, err := NewHand(cards...)
	if err != nil {
		return HighCard, err
	}
	return Classify(h), nil
}

// The predicates below each test one category pattern on its own. They are
// not exclusive: a straight flush also satisfies IsStraight and IsFlush, which
// is why Classify applies strength order.

// IsHighCard reports that no other category pattern is present.
func IsHighCard(h Hand) bool { return newProfile(h).isHighCard() }

// IsPair reports exactly one pair and three unmatched cards.
func IsPair(h Hand) bool { return newProfile(h).isPair() }

// IsTwoPair reports two disjoint pairs and a kicker. Four of a kind is not two pair.
func IsTwoPair(h Hand) bool { return newProfile(h).isTwoPair() }

// IsThreeOfAKind reports a triple with two unmatched kickers.
func IsThreeOfAKind(h Hand) bool { return newProfile(h).isThreeOfAKind() }

// IsStraight reports five consecutive rank ordinals. Aces are low only, so
// A-2-3-4-5 qualifies and 10-J-Q-K-A does not.
func IsStraight(h Hand) bool { return newProfile(h).straight }

// IsFlush reports five cards of one real suit. UnknownSuit never qualifies.
func IsFlush(h Hand) bool { return newProfile(h).flush }

// IsFullHouse reports a triple plus a pair of another rank.
func IsFullHouse(h Hand) bool { return newProfile(h).isFullHouse() }

// IsFourOfAKind reports four cards of one rank.
func IsFourOfAKind(h Hand) bool { return newProfile(h).isFourOfAKind() }

// IsStraightFlush reports IsStraight and IsFlush together.
func IsStraightFlush(h Hand) bool { return newProfile(h).isStraightFlush() }

// Describe names the category with its defining ranks, e.g.
// "Full House, Aces full of Kings" or "Straight, 8 high".
func Describe(h Hand) string {
	p := newProfile(h)
	c := p.category()
	g := p.groups
	switch c {
	case HighCard, Flush, Straight, StraightFlush:
		return fmt.Sprintf("%s, %s high", c, p.sorted[0].Name())
	case Pair, ThreeOfAKind, FourOfAKind:
		return fmt.Sprintf("%s, %s", c, g[0].rank.plural())
	case TwoPair:
		return fmt.Sprintf("%s, %s and %s", c, g[0].rank.plural(), g[1].rank.plural())
	case FullHouse:
		return fmt.Sprintf("%s, %s full of %s", c, g[0].rank.plural(), g[1].rank.plural())
	}
	return c.String()
}
