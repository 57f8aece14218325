package display

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/handrank/internal/simulate"
	"github.com/lox/handrank/poker"
)

func plainRenderer(buf *bytes.Buffer) *Renderer {
	return NewRenderer(buf, false)
}

func TestCardsPlain(t *testing.T) {
	r := plainRenderer(&bytes.Buffer{})
	assert.Equal(t, "♦10 ♣J ♠A", r.Cards(poker.MustParseCards("Td Jc As")))
}

func TestHandPlain(t *testing.T) {
	r := plainRenderer(&bytes.Buffer{})

	flush := poker.Classify(poker.MustParseCards("Jc4d6c4sQc3c7c"))
	assert.Equal(t, "Flush  score 39  kicker ♦4", r.Hand(flush))

	royal := poker.Classify(poker.MustParseCards("TdJdQdKdAd"))
	assert.Equal(t, "Royal Flush  score 60  kicker none", r.Hand(royal))
}

func TestTallyListsEveryRank(t *testing.T) {
	r := plainRenderer(&bytes.Buffer{})

	var tally simulate.Tally
	tally.Add(poker.Pair)
	tally.Add(poker.Pair)
	tally.Add(poker.Flush)

	out := r.Tally(&tally)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, poker.NumRanks+2)
	assert.Contains(t, lines[1], "Royal Flush")
	assert.Contains(t, lines[poker.NumRanks], "High Card")
	assert.Contains(t, out, "66.667%")
	assert.Contains(t, lines[len(lines)-1], "3")
}

func TestPrintln(t *testing.T) {
	var buf bytes.Buffer
	r := plainRenderer(&buf)
	r.Println("hello", 1)
	assert.Equal(t, "hello 1\n", buf.String())
}
