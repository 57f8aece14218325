package poker

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSort(t *testing.T) {
	cards := MustParseCards("2c Ah 9s 9c Kd 9h")
	Sort(cards)
	assert.Equal(t, MustParseCards("Ah Kd 9c 9h 9s 2c"), cards)
}

func TestSortIsIdempotent(t *testing.T) {
	cards := MustParseCards("Jc5d6d4dQd7d3d")
	once := Sorted(cards)
	twice := Sorted(once)
	assert.Equal(t, once, twice)
}

func TestSortedLeavesInputAlone(t *testing.T) {
	cards := MustParseCards("2c Ah")
	sorted := Sorted(cards)
	assert.Equal(t, MustParseCards("2c Ah"), cards)
	assert.Equal(t, MustParseCards("Ah 2c"), sorted)
}

func TestSortDuplicatesAdjacent(t *testing.T) {
	cards := MustParseCards("6d 4s 6c 6d")
	Sort(cards)
	assert.Equal(t, MustParseCards("6c 6d 6d 4s"), cards)
}

func TestSortEmpty(t *testing.T) {
	assert.NotPanics(t, func() { Sort(nil) })
	assert.Empty(t, Sorted(nil))
}
