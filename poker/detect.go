package poker

// match is a detector result: the score of the category and the cards that define it.
type match struct {
	score    int
	defining exclusion
}

// detector recognises a single hand category in a profiled card set.
type detector struct {
	rank   Rank
	detect func(p *profile) (match, bool)
}

// detectors are ordered strongest first. Classify stops at the first match.
var detectors = [...]detector{
	{RoyalFlush, detectRoyalFlush},
	{StraightFlush, detectStraightFlush},
	{FourOfAKind, detectFourOfAKind},
	{FullHouse, detectFullHouse},
	{Flush, detectFlush},
	{Straight, detectStraight},
	{ThreeOfAKind, detectThreeOfAKind},
	{TwoPair, detectTwoPair},
	{Pair, detectPair},
	{HighCard, detectHighCard},
}

// profile holds the valid cards of a sorted set together with per-value counts and
// per-suit groups. Out of range cards are dropped.
type profile struct {
	sorted []Card
	counts [Ace + 1]int
	suits  [NumSuits][]Card
}

func newProfile(sorted []Card) *profile {
	p := &profile{sorted: make([]Card, 0, len(sorted))}
	for _, c := range sorted {
		if !c.Valid() {
			continue
		}
		p.sorted = append(p.sorted, c)
		p.counts[c.Value]++
		p.suits[c.Suit] = append(p.suits[c.Suit], c)
	}
	return p
}

// highestWithCount returns the highest value seen exactly n times, skipping except.
func (p *profile) highestWithCount(n int, except Value) (Value, bool) {
	for v := Ace; v >= Two; v-- {
		if v != except && p.counts[v] == n {
			return v, true
		}
	}
	return 0, false
}

// highestWithAtLeast returns the highest value seen n or more times, skipping except.
func (p *profile) highestWithAtLeast(n int, except Value) (Value, bool) {
	for v := Ace; v >= Two; v-- {
		if v != except && p.counts[v] >= n {
			return v, true
		}
	}
	return 0, false
}

// straightRun is a five card run found in a sorted set.
type straightRun struct {
	cards [5]Card
	high  Value
	score int
}

// findStraight looks for the highest five value run in sorted cards, using the first
// card of each value. The wheel (A-2-3-4-5) scores the ace as one.
func findStraight(sorted []Card) (straightRun, bool) {
	var present [Ace + 1]bool
	var first [Ace + 1]Card
	for _, c := range sorted {
		if !present[c.Value] {
			present[c.Value] = true
			first[c.Value] = c
		}
	}

	for high := Ace; high >= Six; high-- {
		run := straightRun{high: high}
		ok := true
		for i := range run.cards {
			v := high - Value(i)
			if !present[v] {
				ok = false
				break
			}
			run.cards[i] = first[v]
			run.score += int(v)
		}
		if ok {
			return run, true
		}
	}

	if present[Ace] && present[Two] && present[Three] && present[Four] && present[Five] {
		return straightRun{
			cards: [5]Card{first[Five], first[Four], first[Three], first[Two], first[Ace]},
			high:  Five,
			score: 1 + 2 + 3 + 4 + 5,
		}, true
	}

	return straightRun{}, false
}

// bestStraightFlush returns the strongest straight found within a single suit.
func (p *profile) bestStraightFlush() (straightRun, bool) {
	var best straightRun
	found := false
	for _, cards := range p.suits {
		if len(cards) < 5 {
			continue
		}
		run, ok := findStraight(cards)
		if ok && (!found || run.score > best.score) {
			best, found = run, true
		}
	}
	return best, found
}

func detectRoyalFlush(p *profile) (match, bool) {
	run, ok := p.bestStraightFlush()
	if !ok || run.high != Ace {
		return match{}, false
	}
	return match{score: run.score, defining: excludeCards(run.cards[:]...)}, true
}

func detectStraightFlush(p *profile) (match, bool) {
	run, ok := p.bestStraightFlush()
	if !ok {
		return match{}, false
	}
	return match{score: run.score, defining: excludeCards(run.cards[:]...)}, true
}

func detectFourOfAKind(p *profile) (match, bool) {
	v, ok := p.highestWithAtLeast(4, 0)
	if !ok {
		return match{}, false
	}
	return match{score: int(v) * 4, defining: excludeValues(v)}, true
}

func detectFullHouse(p *profile) (match, bool) {
	three, ok := p.highestWithAtLeast(3, 0)
	if !ok {
		return match{}, false
	}
	two, ok := p.highestWithAtLeast(2, three)
	if !ok {
		return match{}, false
	}
	return match{
		score:    int(three)*3 + int(two)*2,
		defining: excludeValues(three, two),
	}, true
}

// detectFlush scores the five highest cards of the strongest qualifying suit.
func detectFlush(p *profile) (match, bool) {
	var best []Card
	bestScore := 0
	for _, cards := range p.suits {
		if len(cards) < 5 {
			continue
		}
		top := cards[:5]
		score := 0
		for _, c := range top {
			score += int(c.Value)
		}
		if best == nil || score > bestScore {
			best, bestScore = top, score
		}
	}
	if best == nil {
		return match{}, false
	}
	return match{score: bestScore, defining: excludeCards(best...)}, true
}

func detectStraight(p *profile) (match, bool) {
	run, ok := findStraight(p.sorted)
	if !ok {
		return match{}, false
	}
	return match{score: run.score, defining: excludeCards(run.cards[:]...)}, true
}

func detectThreeOfAKind(p *profile) (match, bool) {
	v, ok := p.highestWithCount(3, 0)
	if !ok {
		return match{}, false
	}
	return match{score: int(v) * 3, defining: excludeValues(v)}, true
}

func detectTwoPair(p *profile) (match, bool) {
	high, ok := p.highestWithCount(2, 0)
	if !ok {
		return match{}, false
	}
	low, ok := p.highestWithCount(2, high)
	if !ok {
		return match{}, false
	}
	return match{
		score:    int(high)*2 + int(low)*2,
		defining: excludeValues(high, low),
	}, true
}

func detectPair(p *profile) (match, bool) {
	v, ok := p.highestWithCount(2, 0)
	if !ok {
		return match{}, false
	}
	return match{score: int(v) * 2, defining: excludeValues(v)}, true
}

// detectHighCard always matches. An empty set scores zero and defines nothing.
func detectHighCard(p *profile) (match, bool) {
	if len(p.sorted) == 0 {
		return match{}, true
	}
	top := p.sorted[0]
	return match{score: int(top.Value), defining: excludeCards(top)}, true
}
