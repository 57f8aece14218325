package poker

// Classify returns the best hand category found in cards, its score and its kicker.
// Any number of cards is accepted, including none. Cards that are not Valid are
// ignored. The input slice is not modified.
// Classify has no shared state and is safe for concurrent use.
func Classify(cards []Card) Hand {
	p := newProfile(Sorted(cards))

	for _, d := range detectors {
		m, ok := d.detect(p)
		if !ok {
			continue
		}
		hand := Hand{Rank: d.rank, Score: m.score}
		hand.Kicker, hand.HasKicker = kicker(p.sorted, m.defining)
		return hand
	}

	// unreachable: detectHighCard always matches
	return Hand{Rank: HighCard}
}
