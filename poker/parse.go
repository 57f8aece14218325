package poker

import (
	"fmt"
	"strings"
)

// ParseCard parses a single card in [value][suit] notation, e.g. "As", "Td" or "10d".
func ParseCard(s string) (Card, error) {
	cards, err := ParseCards(s)
	if err != nil {
		return Card{}, err
	}
	if len(cards) != 1 {
		return Card{}, fmt.Errorf("expected exactly one card in %q, got %d", s, len(cards))
	}
	return cards[0], nil
}

// ParseCards parses a string of card notation into a slice of cards.
// Format: "AsKsQsJsTs" where each card is [Value][Suit]. Spaces and commas are ignored.
// Values: A, K, Q, J, T (or 10), 9, 8, 7, 6, 5, 4, 3, 2
// Suits: c (clubs), d (diamonds), h (hearts), s (spades)
func ParseCards(s string) ([]Card, error) {
	s = strings.NewReplacer(" ", "", ",", "", "\t", "").Replace(s)

	cards := []Card{}
	for i := 0; i < len(s); {
		value, width, err := parseValue(s[i:])
		if err != nil {
			return nil, fmt.Errorf("invalid value at position %d: %w", i, err)
		}
		i += width

		if i >= len(s) {
			return nil, fmt.Errorf("incomplete card at position %d", i-width)
		}

		suit, err := parseSuit(s[i])
		if err != nil {
			return nil, fmt.Errorf("invalid suit at position %d: %w", i, err)
		}
		i++

		cards = append(cards, Card{Suit: suit, Value: value})
	}

	return cards, nil
}

// MustParseCards parses cards and panics on error (for tests)
func MustParseCards(s string) []Card {
	cards, err := ParseCards(s)
	if err != nil {
		panic(fmt.Sprintf("failed to parse cards '%s': %v", s, err))
	}
	return cards
}

func parseValue(s string) (Value, int, error) {
	if strings.HasPrefix(s, "10") {
		return Ten, 2, nil
	}
	switch s[0] {
	case 'A', 'a':
		return Ace, 1, nil
	case 'K', 'k':
		return King, 1, nil
	case 'Q', 'q':
		return Queen, 1, nil
	case 'J', 'j':
		return Jack, 1, nil
	case 'T', 't':
		return Ten, 1, nil
	}
	if s[0] >= '2' && s[0] <= '9' {
		return Value(s[0]-'0'), 1, nil
	}
	return 0, 0, fmt.Errorf("unknown value '%c'", s[0])
}

func parseSuit(c byte) (Suit, error) {
	switch c {
	case 'c', 'C':
		return Clubs, nil
	case 'd', 'D':
		return Diamonds, nil
	case 'h', 'H':
		return Hearts, nil
	case 's', 'S':
		return Spades, nil
	default:
		return 0, fmt.Errorf("unknown suit '%c'", c)
	}
}
