package poker

// exclusion is the set of cards consumed by a matched category. Multiples are excluded
// by value, so every suit of that value is consumed whether or not it was dealt.
// Runs, flushes and the high card are excluded by exact card.
type exclusion struct {
	values uint16
	cards  []Card
}

func excludeValues(values ...Value) exclusion {
	var e exclusion
	for _, v := range values {
		e.values |= 1 << v
	}
	return e
}

func excludeCards(cards ...Card) exclusion {
	return exclusion{cards: append([]Card(nil), cards...)}
}

func (e exclusion) excludes(c Card) bool {
	if c.Value <= Ace && e.values&(1<<c.Value) != 0 {
		return true
	}
	for _, x := range e.cards {
		if x == c {
			return true
		}
	}
	return false
}

// kicker returns the highest card in sorted that the exclusion does not consume.
func kicker(sorted []Card, defining exclusion) (Card, bool) {
	for _, c := range sorted {
		if !defining.excludes(c) {
			return c, true
		}
	}
	return Card{}, false
}
