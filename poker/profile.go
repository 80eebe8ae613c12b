package poker

// group is a run of equal ranks inside a hand.
type group struct {
	rank  Rank
	count uint8
}

// profile is the single-pass analysis every predicate and tie-break reads from.
// groups are ordered by count descending, then rank descending, so a full house
// is always [triple, pair] and two pair is [high pair, low pair, kicker].
type profile struct {
	groups   [HandSize]group
	n        int
	sorted   [HandSize]Rank // all ranks, highest first
	flush    bool
	straight bool
}

func newProfile(h Hand) profile {
	var counts [UnknownRank + 1]uint8
	for _, card := range h {
		counts[clampRank(card.Rank)]++
	}

	var p profile
	i := 0
	for r := int(UnknownRank); r >= int(Ace); r-- {
		for range counts[r] {
			p.sorted[i] = Rank(r)
			i++
		}
		if counts[r] > 0 {
			p.groups[p.n] = group{rank: Rank(r), count: counts[r]}
			p.n++
		}
	}
	sortGroups(p.groups[:p.n])

	p.flush = allSameSuit(h)
	p.straight = p.n == HandSize &&
		p.sorted[0].Valid() &&
		p.sorted[0]-p.sorted[HandSize-1] == HandSize-1
	return p
}

// clampRank folds out-of-range values into UnknownRank so counting stays in bounds.
func clampRank(r Rank) Rank {
	if r > UnknownRank {
		return UnknownRank
	}
	return r
}

// allSameSuit is false whenever any card carries a suit outside the four real ones.
func allSameSuit(h Hand) bool {
	first := h[0].Suit
	if !first.Valid() {
		return false
	}
	for _, card := range h[1:] {
		if card.Suit != first {
			return false
		}
	}
	return true
}

// sortGroups orders by count descending. Insertion sort keeps it stable so the
// rank-descending order from the counting pass survives within equal counts.
func sortGroups(gs []group) {
	for i := 1; i < len(gs); i++ {
		g := gs[i]
		j := i - 1
		for j >= 0 && gs[j].count < g.count {
			gs[j+1] = gs[j]
			j--
		}
		gs[j+1] = g
	}
}

func (p profile) top() uint8 {
	return p.groups[0].count
}

func (p profile) second() uint8 {
	if p.n < 2 {
		return 0
	}
	return p.groups[1].count
}

func (p profile) isFourOfAKind() bool  { return p.top() >= 4 }
func (p profile) isFullHouse() bool    { return p.top() == 3 && p.second() == 2 }
func (p profile) isThreeOfAKind() bool { return p.top() == 3 && p.second() == 1 }
func (p profile) isTwoPair() bool      { return p.top() == 2 && p.second() == 2 }
func (p profile) isPair() bool         { return p.top() == 2 && p.second() == 1 }

func (p profile) isStraightFlush() bool { return p.straight && p.flush }

func (p profile) isHighCard() bool {
	return p.top() == 1 && !p.straight && !p.flush
}

func (p profile) category() Category {
	switch {
	case p.isStraightFlush():
		return StraightFlush
	case p.isFourOfAKind():
		return FourOfAKind
	case p.isFullHouse():
		return FullHouse
	case p.flush:
		return Flush
	case p.straight:
		return Straight
	case p.isThreeOfAKind():
		return ThreeOfAKind
	case p.isTwoPair():
		return TwoPair
	case p.isPair():
		return Pair
	default:
		return HighCard
	}
}

// tieBreak is the ordered tuple of ranks compared once categories match.
type tieBreak struct {
	ranks [HandSize]Rank
	n     int
}

func (t *tieBreak) push(r Rank) {
	t.ranks[t.n] = r
	t.n++
}

func (t tieBreak) slice() []Rank {
	return t.ranks[:t.n]
}

func (p profile) tieBreak(c Category) tieBreak {
	var t tieBreak
	switch c {
	case HighCard, Flush:
		for _, r := range p.sorted {
			t.push(r)
		}
	case Straight, StraightFlush:
		t.push(p.sorted[0])
	case FourOfAKind:
		t.push(p.groups[0].rank)
		if p.n > 1 {
			t.push(p.groups[1].rank)
		} else {
			t.push(p.groups[0].rank) // five of one rank: the kicker is the same rank
		}
	default:
		// Pair, TwoPair, ThreeOfAKind and FullHouse: the group order already
		// lists the defining ranks first and the kickers high to low.
		for _, g := range p.groups[:p.n] {
			t.push(g.rank)
		}
	}
	return t
}

// compareTieBreaks returns +1, -1 or 0 on the first differing position.
func compareTieBreaks(a, b tieBreak) int {
	for i := 0; i < a.n && i < b.n; i++ {
		switch {
		case a.ranks[i] > b.ranks[i]:
			return 1
		case a.ranks[i] < b.ranks[i]:
			return -1
		}
	}
	switch {
	case a.n > b.n:
		return 1
	case a.n < b.n:
		return -1
	}
	return 0
}
