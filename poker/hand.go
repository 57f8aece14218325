package poker

import "fmt"

// Hand is the classification of a set of cards.
type Hand struct {
	Rank  Rank
	Score int
	// Kicker is the highest card outside the cards that define Rank.
	// It is only meaningful when HasKicker is set.
	Kicker    Card
	HasKicker bool
}

// String returns a description such as "Flush (39, kicker ♦4)"
func (h Hand) String() string {
	if !h.HasKicker {
		return fmt.Sprintf("%s (%d)", h.Rank, h.Score)
	}
	return fmt.Sprintf("%s (%d, kicker %s)", h.Rank, h.Score, h.Kicker)
}
