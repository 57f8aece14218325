package poker

import "sort"

// Sort orders cards in place by value descending, then suit ascending.
// Equal cards keep their relative order.
func Sort(cards []Card) {
	sort.SliceStable(cards, func(i, j int) bool {
		return cardLess(cards[i], cards[j])
	})
}

// Sorted returns a sorted copy of cards, leaving the input untouched.
func Sorted(cards []Card) []Card {
	out := make([]Card, len(cards))
	copy(out, cards)
	Sort(out)
	return out
}

func cardLess(a, b Card) bool {
	if a.Value != b.Value {
		return a.Value > b.Value
	}
	return a.Suit < b.Suit
}
