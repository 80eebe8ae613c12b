package poker

import (
	"fmt"
	"strings"
)

// Suit represents a card suit
type Suit uint8

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
	UnknownSuit
)

// Valid reports whether s is one of the four real suits.
func (s Suit) Valid() bool {
	return s < UnknownSuit
}

// String returns the suit symbol
func (s Suit) String() string {
	switch s {
	case Clubs:
		return "♣"
	case Diamonds:
		return "♦"
	case Hearts:
		return "♥"
	case Spades:
		return "♠"
	default:
		return "?"
	}
}

// Name returns the suit name, e.g. "Clubs"
func (s Suit) Name() string {
	switch s {
	case Clubs:
		return "Clubs"
	case Diamonds:
		return "Diamonds"
	case Hearts:
		return "Hearts"
	case Spades:
		return "Spades"
	default:
		return "Unknown"
	}
}

// IsRed returns true if the suit is red (Hearts or Diamonds)
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

// Rank represents a card rank. Ranks order by ordinal with the Ace low.
type Rank uint8

const (
	Ace Rank = iota
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	UnknownRank
)

// Valid reports whether r is Ace through King.
func (r Rank) Valid() bool {
	return r < UnknownRank
}

// String returns the short rank label used in card notation
func (r Rank) String() string {
	switch r {
	case Ace:
		return "A"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case UnknownRank:
		return "?"
	}
	if r > UnknownRank {
		return "?"
	}
	return fmt.Sprintf("%d", int(r)+1)
}

// Name returns the rank name, e.g. "Queen" or "7"
func (r Rank) Name() string {
	switch r {
	case Ace:
		return "Ace"
	case Jack:
		return "Jack"
	case Queen:
		return "Queen"
	case King:
		return "King"
	case UnknownRank:
		return "Unknown"
	}
	return r.String()
}

// plural returns the rank name for groups, e.g. "Aces", "Sixes", "7s"
func (r Rank) plural() string {
	if r == Six {
		return "Sixes"
	}
	return r.Name() + "s"
}

// Card represents a playing card
type Card struct {
	Suit Suit
	Rank Rank
}

// NewCard creates a new card
func NewCard(suit Suit, rank Rank) Card {
	return Card{Suit: suit, Rank: rank}
}

// Valid reports whether both rank and suit are real values.
func (c Card) Valid() bool {
	return c.Suit.Valid() && c.Rank.Valid()
}

// String returns the string representation of a card (e.g., "A♠")
func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}

// Name returns the long form, e.g. "Ace of Spades"
func (c Card) Name() string {
	return c.Rank.Name() + " of " + c.Suit.Name()
}

// FormatCards joins card strings with single spaces.
func FormatCards(cards []Card) string {
	parts := make([]string, len(cards))
	for i, card := range cards {
		parts[i] = card.String()
	}
	return strings.Join(parts, " ")
}

// ParseCard parses a single card such as "As", "Td", "10h" or "K♣".
func ParseCard(s string) (Card, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Card{}, fmt.Errorf("empty card")
	}

	runes := []rune(s)
	suit, err := parseSuit(runes[len(runes)-1])
	if err != nil {
		return Card{}, fmt.Errorf("card %q: %w", s, err)
	}

	rank, err := parseRank(string(runes[:len(runes)-1]))
	if err != nil {
		return Card{}, fmt.Errorf("card %q: %w", s, err)
	}

	return Card{Suit: suit, Rank: rank}, nil
}

// ParseCards parses a run of card notation into a slice of cards.
// Format: "AsKsQsJsTs" or "As Ks Qs" where each card is [Rank][Suit]
// Ranks: A, K, Q, J, T (or 10), 9, 8, 7, 6, 5, 4, 3, 2
// Suits: s (spades), h (hearts), d (diamonds), c (clubs) or their symbols
func ParseCards(s string) ([]Card, error) {
	cards := []Card{}
	for _, field := range strings.Fields(s) {
		runes := []rune(field)
		for i := 0; i < len(runes); {
			width := 2
			if runes[i] == '1' {
				width = 3 // "10x"
			}
			if i+width > len(runes) {
				return nil, fmt.Errorf("incomplete card %q at position %d", string(runes[i:]), i)
			}
			card, err := ParseCard(string(runes[i : i+width]))
			if err != nil {
				return nil, fmt.Errorf("position %d: %w", len(cards), err)
			}
			cards = append(cards, card)
			i += width
		}
	}
	return cards, nil
}

// MustParseCards parses cards and panics on error (for tests)
func MustParseCards(s string) []Card {
	cards, err := ParseCards(s)
	if err != nil {
		panic(fmt.Sprintf("failed to parse cards '%s': %v", s, err))
	}
	return cards
}

func parseRank(s string) (Rank, error) {
	switch strings.ToUpper(s) {
	case "A":
		return Ace, nil
	case "K":
		return King, nil
	case "Q":
		return Queen, nil
	case "J":
		return Jack, nil
	case "T", "10":
		return Ten, nil
	case "9":
		return Nine, nil
	case "8":
		return Eight, nil
	case "7":
		return Seven, nil
	case "6":
		return Six, nil
	case "5":
		return Five, nil
	case "4":
		return Four, nil
	case "3":
		return Three, nil
	case "2":
		return Two, nil
	default:
		return 0, fmt.Errorf("unknown rank %q", s)
	}
}

func parseSuit(c rune) (Suit, error) {
	switch c {
	case 'c', 'C', '♣':
		return Clubs, nil
	case 'd', 'D', '♦':
		return Diamonds, nil
	case 'h', 'H', '♥':
		return Hearts, nil
	case 's', 'S', '♠':
		return Spades, nil
	default:
		return 0, fmt.Errorf("unknown suit %q", c)
	}
}
