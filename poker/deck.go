package poker

import (
	"errors"
	"fmt"

	"github.com/coder/quartz"

	"github.com/lox/handrank/internal/randutil"
)

// DeckSize is the number of cards in a full deck
const DeckSize = NumSuits * 13

// ErrNotEnoughCards is returned when a draw asks for more cards than remain.
var ErrNotEnoughCards = errors.New("not enough cards in deck")

// Deck represents a standard 52-card deck. Cards before next have been drawn.
type Deck struct {
	cards [DeckSize]Card
	next  int
	clock quartz.Clock
}

// DeckOption configures a Deck
type DeckOption func(*Deck)

// WithClock sets the clock used to derive seeds for ShuffleNow
func WithClock(clock quartz.Clock) DeckOption {
	return func(d *Deck) {
		d.clock = clock
	}
}

// NewDeck creates a full deck in its fixed reset order
func NewDeck(opts ...DeckOption) *Deck {
	d := &Deck{clock: quartz.NewReal()}
	for _, opt := range opts {
		opt(d)
	}
	d.Reset()
	return d
}

// Reset restores all 52 cards in a fixed order: clubs 2..A, then diamonds, hearts, spades.
func (d *Deck) Reset() {
	i := 0
	for suit := Clubs; suit <= Spades; suit++ {
		for value := Two; value <= Ace; value++ {
			d.cards[i] = NewCard(suit, value)
			i++
		}
	}
	d.next = 0
}

// Shuffle permutes the undrawn cards with Fisher-Yates, seeded deterministically.
func (d *Deck) Shuffle(seed int64) {
	rng := randutil.New(seed)
	remaining := d.cards[d.next:]
	for i := len(remaining) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		remaining[i], remaining[j] = remaining[j], remaining[i]
	}
}

// ShuffleNow shuffles with a seed taken from the deck clock and returns that seed
// so the order can be reproduced with Shuffle.
func (d *Deck) ShuffleNow() int64 {
	seed := d.clock.Now().UnixNano()
	d.Shuffle(seed)
	return seed
}

// Take removes and returns the top card. It returns false when the deck is empty.
func (d *Deck) Take() (Card, bool) {
	if d.next >= len(d.cards) {
		return Card{}, false
	}
	card := d.cards[d.next]
	d.next++
	return card, true
}

// TakeSlice removes and returns exactly n cards from the top of the deck.
// If fewer than n cards remain the deck is left unchanged and the error wraps
// ErrNotEnoughCards.
func (d *Deck) TakeSlice(n int) ([]Card, error) {
	if n < 0 {
		return nil, fmt.Errorf("invalid card count: %d", n)
	}
	if n > d.Remaining() {
		return nil, fmt.Errorf("take %d: %w (%d remaining)", n, ErrNotEnoughCards, d.Remaining())
	}
	cards := make([]Card, n)
	copy(cards, d.cards[d.next:d.next+n])
	d.next += n
	return cards, nil
}

// Peek returns the top card without removing it from the deck
func (d *Deck) Peek() (Card, bool) {
	if d.next >= len(d.cards) {
		return Card{}, false
	}
	return d.cards[d.next], true
}

// Remaining returns the number of cards left in the deck
func (d *Deck) Remaining() int {
	return len(d.cards) - d.next
}
