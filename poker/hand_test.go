package poker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		cards    string
		expected Category
	}{
		{"pair of twos", "2c 2d 7h 9s Kc", Pair},
		{"straight flush", "4c 5c 6c 7c 8c", StraightFlush},
		{"king high straight flush", "9h Th Jh Qh Kh", StraightFlush},
		{"four of a kind", "9c 9d 9h 9s 2c", FourOfAKind},
		{"full house triple low", "Ac Ad Ah Ks Kc", FullHouse},
		{"full house pair low", "3c 3d Jh Js Jc", FullHouse},
		{"flush", "2h 7h 9h Jh Kh", Flush},
		{"straight unsorted", "8d 6c 7h 4s 5c", Straight},
		{"ace low straight", "Ac 2d 3h 4s 5c", Straight},
		{"three of a kind", "7h 7s 7d Ks 9d", ThreeOfAKind},
		{"two pair", "5c 5d 9h 9s Kc", TwoPair},
		{"high card", "2c 5d 9h Js Kc", HighCard},
		// Aces are low only, so ten through ace is not a straight.
		{"broadway is high card", "Tc Jd Qh Ks Ac", HighCard},
		{"broadway suited is flush", "Ts Js Qs Ks As", Flush},
		{"no wraparound", "Qc Kd Ah 2s 3c", HighCard},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h := MustParseHand(tt.cards)
			assert.Equal(t, tt.expected, Classify(h))
			assert.Equal(t, tt.expected, h.Category())
		})
	}
}

func TestPredicates(t *testing.T) {
	t.Parallel()
	type preds struct {
		high, pair, twoPair, trips, straight, flush, fullHouse, quads, straightFlush bool
	}
	check := func(h Hand) preds {
		return preds{
			high:          IsHighCard(h),
			pair:          IsPair(h),
			twoPair:       IsTwoPair(h),
			trips:         IsThreeOfAKind(h),
			straight:      IsStraight(h),
			flush:         IsFlush(h),
			fullHouse:     IsFullHouse(h),
			quads:         IsFourOfAKind(h),
			straightFlush: IsStraightFlush(h),
		}
	}

	tests := []struct {
		name  string
		cards string
		want  preds
	}{
		{"high card", "2c 5d 9h Js Kc", preds{high: true}},
		{"pair", "2c 2d 7h 9s Kc", preds{pair: true}},
		{"two pair", "5c 5d 9h 9s Kc", preds{twoPair: true}},
		{"trips", "7h 7s 7d Ks 9d", preds{trips: true}},
		{"quads are not two pair", "9c 9d 9h 9s 2c", preds{quads: true}},
		{"full house is neither trips nor pair", "Ac Ad Ah Ks Kc", preds{fullHouse: true}},
		{"straight", "4c 5d 6h 7s 8c", preds{straight: true}},
		{"flush", "2h 7h 9h Jh Kh", preds{flush: true}},
		{"straight flush satisfies all three", "4c 5c 6c 7c 8c", preds{straight: true, flush: true, straightFlush: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, check(MustParseHand(tt.cards)))
		})
	}
}

func TestFlushRejectsUnknownSuit(t *testing.T) {
	t.Parallel()

	t.Run("all unknown", func(t *testing.T) {
		var h Hand
		for i := range h {
			h[i] = Card{Suit: UnknownSuit, Rank: Rank(i + 2)}
		}
		assert.False(t, IsFlush(h))
		assert.False(t, IsStraightFlush(h))
		// Still a straight by rank, so classification is not HighCard either.
		assert.Equal(t, Straight, Classify(h))
	})

	t.Run("out of range suit", func(t *testing.T) {
		h := MustParseHand("2c 5c 9c Jc Kc")
		assert.True(t, IsFlush(h))
		for i := range h {
			h[i].Suit = Suit(9)
		}
		assert.False(t, IsFlush(h))
		assert.Equal(t, HighCard, Classify(h))
	})

	t.Run("one unknown breaks the flush", func(t *testing.T) {
		h := MustParseHand("2c 5c 9c Jc Kc")
		h[4].Suit = UnknownSuit
		assert.False(t, IsFlush(h))
	})
}

func TestUnknownRankNeverCompletesStraight(t *testing.T) {
	t.Parallel()
	h := MustParseHand("9c Td Jh Qs Kc")
	assert.Equal(t, Straight, Classify(h))

	h[0].Rank = UnknownRank // would follow King by ordinal
	assert.False(t, IsStraight(h))
	assert.Equal(t, HighCard, Classify(h))
}

func TestNewHandRejectsWrongSize(t *testing.T) {
	t.Parallel()
	for _, n := range []int{0, 1, 4, 6, 7} {
		cards := make([]Card, n)
		_, err := NewHand(cards...)
		require.ErrorIs(t, err, ErrInvalidHandSize, "n=%d", n)

		_, err = ClassifyCards(cards)
		require.ErrorIs(t, err, ErrInvalidHandSize, "n=%d", n)
	}

	c, err := ClassifyCards(MustParseCards("2c 2d 7h 9s Kc"))
	require.NoError(t, err)
	assert.Equal(t, Pair, c)
}

func TestClassifyDoesNotMutate(t *testing.T) {
	t.Parallel()
	cards := MustParseCards("Kc 9s 2d 7h 2c")
	h, err := NewHand(cards...)
	require.NoError(t, err)
	before := h

	Classify(h)
	Describe(h)
	_ = h.Sorted()

	assert.Equal(t, before, h)
	assert.Equal(t, MustParseCards("Kc 9s 2d 7h 2c"), cards)
}

func TestClassifyIsTotal(t *testing.T) {
	t.Parallel()
	deck := NewDeck(newTestRand(7))
	seen := map[Category]int{}
	for range 2000 {
		if deck.Remaining() < HandSize {
			deck.Reset()
		}
		h, err := NewHand(deck.Deal(HandSize)...)
		require.NoError(t, err)

		c := Classify(h)
		require.LessOrEqual(t, c, StraightFlush)
		seen[c]++

		// Exactly one of the exclusive shapes holds, and HighCard is its complement.
		shapes := 0
		for _, ok := range []bool{IsPair(h), IsTwoPair(h), IsThreeOfAKind(h), IsFullHouse(h), IsFourOfAKind(h)} {
			if ok {
				shapes++
			}
		}
		require.LessOrEqual(t, shapes, 1, h.String())
		require.Equal(t, c == HighCard, IsHighCard(h), h.String())
	}
	assert.Greater(t, seen[HighCard], 0)
	assert.Greater(t, seen[Pair], 0)
}

func TestSorted(t *testing.T) {
	t.Parallel()
	h := MustParseHand("2c Kd 7h 2s Ac")
	assert.Equal(t, "K♦ 7♥ 2♣ 2♠ A♣", h.Sorted().String())
}

func TestDescribe(t *testing.T) {
	t.Parallel()
	tests := []struct {
		cards string
		want  string
	}{
		{"Ac Ad Ah Ks Kc", "Full House, Aces full of Kings"},
		{"4c 5c 6c 7c 8c", "Straight Flush, 8 high"},
		{"5c 5d 9h 9s Kc", "Two Pair, 9s and 5s"},
		{"6c 6d 9h 2s Kc", "Pair, Sixes"},
		{"2c 5d 9h Js Kc", "High Card, King high"},
		{"9c 9d 9h 9s 2c", "Four of a Kind, 9s"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Describe(MustParseHand(tt.cards)))
		})
	}
}

func TestParseCategory(t *testing.T) {
	t.Parallel()
	for _, c := range Categories {
		got, err := ParseCategory(c.String())
		require.NoError(t, err)
		assert.Equal(t, c, got)
	}

	got, err := ParseCategory("straight-flush")
	require.NoError(t, err)
	assert.Equal(t, StraightFlush, got)

	_, err = ParseCategory("royal flush")
	assert.Error(t, err)
}
