package poker

import "fmt"

// Result is the outcome of a two-hand comparison. The underlying values are
// the +1/-1/0 signal callers can use directly.
type Result int

const (
	SecondWins Result = -1
	Tie        Result = 0
	FirstWins  Result = 1
)

// String returns a human-readable outcome.
func (r Result) String() string {
	switch r {
	case FirstWins:
		return "first wins"
	case SecondWins:
		return "second wins"
	case Tie:
		return "tie"
	default:
		return "unknown"
	}
}

// Reverse swaps the winner, as if the hands had been passed the other way round.
func (r Result) Reverse() Result {
	return -r
}

func resultOf(sign int) Result {
	switch {
	case sign > 0:
		return FirstWins
	case sign < 0:
		return SecondWins
	}
	return Tie
}

// Compare applies the category-specific tie-break to two hands of the same
// category. It returns ErrCategoryMismatch when the categories differ.
func Compare(a, b Hand) (Result, error) {
	pa, pb := newProfile(a), newProfile(b)
	ca, cb := pa.category(), pb.category()
	if ca != cb {
		return Tie, fmt.Errorf("%w: %s vs %s", ErrCategoryMismatch, ca, cb)
	}
	return resultOf(compareTieBreaks(pa.tieBreak(ca), pb.tieBreak(cb))), nil
}

// CompareHands compares categories first and falls through to the tie-break
// only when they are equal.
func CompareHands(a, b Hand) Result {
	return compareProfiles(newProfile(a), newProfile(b))
}

// CompareCards is CompareHands for callers holding slices.
func CompareCards(a, b []Card) (Result, error) {
	ha, err := NewHand(a...)
	if err != nil {
		return Tie, fmt.Errorf("first hand: %w", err)
	}
	hb, err := NewHand(b...)
	if err != nil {
		return Tie, fmt.Errorf("second hand: %w", err)
	}
	return CompareHands(ha, hb), nil
}

func compareProfiles(pa, pb profile) Result {
	ca, cb := pa.category(), pb.category()
	switch {
	case ca > cb:
		return FirstWins
	case ca < cb:
		return SecondWins
	}
	return resultOf(compareTieBreaks(pa.tieBreak(ca), pb.tieBreak(cb)))
}

// Explain compares two hands and says why the winner won.
func Explain(a, b Hand) (Result, string) {
	pa, pb := newProfile(a), newProfile(b)
	result := compareProfiles(pa, pb)
	if result == Tie {
		return result, fmt.Sprintf("%s ties %s", Describe(a), Describe(b))
	}

	winner, loser := a, b
	pw, pl := pa, pb
	if result == SecondWins {
		winner, loser = b, a
		pw, pl = pb, pa
	}

	explanation := fmt.Sprintf("%s beats %s", Describe(winner), Describe(loser))
	cw, cl := pw.category(), pl.category()
	if cw != cl {
		return result, explanation + fmt.Sprintf(" (%s beats %s)", cw, cl)
	}

	tw, tl := pw.tieBreak(cw), pl.tieBreak(cl)
	pos := 0
	for pos < tw.n && pos < tl.n && tw.ranks[pos] == tl.ranks[pos] {
		pos++
	}
	if pos >= tw.n || pos >= tl.n {
		return result, explanation
	}
	return result, explanation + fmt.Sprintf(": %s (%s vs %s)",
		tieBreakLabel(cw, pos), tw.ranks[pos], tl.ranks[pos])
}

// tieBreakLabel names position pos of a category's tie-break tuple.
func tieBreakLabel(c Category, pos int) string {
	switch c {
	case Straight, StraightFlush:
		return "higher top card"
	case Pair:
		if pos == 0 {
			return "higher pair"
		}
	case TwoPair:
		switch pos {
		case 0:
			return "higher top pair"
		case 1:
			return "higher bottom pair"
		}
	case ThreeOfAKind:
		if pos == 0 {
			return "higher triple"
		}
	case FullHouse:
		if pos == 0 {
			return "higher triple"
		}
		return "higher pair"
	case FourOfAKind:
		if pos == 0 {
			return "higher quads"
		}
	case HighCard, Flush:
		if pos == 0 {
			return "higher top card"
		}
	}
	return "higher kicker"
}
