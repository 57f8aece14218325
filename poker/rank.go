package poker

// Rank is a poker hand category. Larger values are stronger.
type Rank uint8

const (
	HighCard Rank = iota
	Pair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalFlush
)

// NumRanks is the number of hand categories
const NumRanks = 10

// String returns a human-readable hand category
func (r Rank) String() string {
	switch r {
	case HighCard:
		return "High Card"
	case Pair:
		return "Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	case RoyalFlush:
		return "Royal Flush"
	default:
		return "Unknown"
	}
}

// Ranks returns every hand category, strongest first.
func Ranks() []Rank {
	ranks := make([]Rank, 0, NumRanks)
	for r := RoyalFlush; ; r-- {
		ranks = append(ranks, r)
		if r == HighCard {
			return ranks
		}
	}
}
