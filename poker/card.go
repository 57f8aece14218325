package poker

// Suit represents a card suit. Suits are ordered clubs < diamonds < hearts < spades.
type Suit uint8

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

// NumSuits is the number of suits in a standard deck
const NumSuits = 4

var suitSymbols = [NumSuits]string{"♣", "♦", "♥", "♠"}

// String returns the suit symbol
func (s Suit) String() string {
	if s >= NumSuits {
		return "?"
	}
	return suitSymbols[s]
}

// IsRed returns true for hearts and diamonds
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

// Value is the face value of a card, 2 through 14 with the ace high.
type Value uint8

const (
	Two Value = iota + 2
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
	Ace
)

// String returns the short name of the value (2..10, J, Q, K, A)
func (v Value) String() string {
	switch v {
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	}
	if v >= Two && v <= Ten {
		return valueDigits[v-Two]
	}
	return "?"
}

var valueDigits = [...]string{"2", "3", "4", "5", "6", "7", "8", "9", "10"}

// Card represents a playing card. Cards are plain values and compare with ==.
type Card struct {
	Suit  Suit
	Value Value
}

// NewCard creates a new card
func NewCard(suit Suit, value Value) Card {
	return Card{Suit: suit, Value: value}
}

// Valid reports whether the suit and value are in range
func (c Card) Valid() bool {
	return c.Suit < NumSuits && c.Value >= Two && c.Value <= Ace
}

// String returns the short display form, suit first (e.g. "♣2", "♦10", "♠A").
func (c Card) String() string {
	if !c.Valid() {
		return "??"
	}
	return cardStrings[packCard(c)]
}

// packCard packs a valid card into a 6-bit key: suit in the high bits, value in the low four.
func packCard(c Card) int {
	return int(c.Suit)<<4 | int(c.Value)
}

var cardStrings = func() (table [NumSuits << 4]string) {
	for s := Clubs; s <= Spades; s++ {
		for v := Two; v <= Ace; v++ {
			c := Card{Suit: s, Value: v}
			table[packCard(c)] = s.String() + v.String()
		}
	}
	return table
}()
