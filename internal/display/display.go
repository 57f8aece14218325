package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/lox/handrank/internal/simulate"
	"github.com/lox/handrank/poker"
)

// Renderer formats cards, hands and tallies for a terminal
type Renderer struct {
	out io.Writer

	redCard   lipgloss.Style
	blackCard lipgloss.Style
	rank      lipgloss.Style
	muted     lipgloss.Style
	header    lipgloss.Style
}

// NewRenderer creates a renderer writing to w. When color is false all styling is
// dropped and output is plain text.
func NewRenderer(w io.Writer, color bool) *Renderer {
	r := lipgloss.NewRenderer(w)
	if !color {
		r.SetColorProfile(termenv.Ascii)
	}

	return &Renderer{
		out:       w,
		redCard:   r.NewStyle().Foreground(lipgloss.Color("#FF6B6B")).Bold(true),
		blackCard: r.NewStyle().Foreground(lipgloss.Color("#FAFAFA")).Bold(true),
		rank:      r.NewStyle().Foreground(lipgloss.Color("#96CEB4")).Bold(true),
		muted:     r.NewStyle().Foreground(lipgloss.Color("#626262")),
		header: r.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Bold(true),
	}
}

// Card renders a single card, red suits in red
func (r *Renderer) Card(c poker.Card) string {
	if c.Suit.IsRed() {
		return r.redCard.Render(c.String())
	}
	return r.blackCard.Render(c.String())
}

// Cards renders cards separated by spaces
func (r *Renderer) Cards(cards []poker.Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = r.Card(c)
	}
	return strings.Join(parts, " ")
}

// Hand renders a classification, e.g. "Flush  score 39  kicker ♦4"
func (r *Renderer) Hand(h poker.Hand) string {
	kicker := r.muted.Render("none")
	if h.HasKicker {
		kicker = r.Card(h.Kicker)
	}
	return fmt.Sprintf("%s  score %d  kicker %s", r.rank.Render(h.Rank.String()), h.Score, kicker)
}

// Tally renders a frequency table, strongest category first
func (r *Renderer) Tally(t *simulate.Tally) string {
	var b strings.Builder
	b.WriteString(r.header.Render(fmt.Sprintf("%-16s %10s %8s", "Hand", "Count", "Freq")))
	b.WriteString("\n")
	for _, rank := range poker.Ranks() {
		line := fmt.Sprintf("%-16s %10d %7.3f%%", rank, t.Count(rank), 100*t.Frequency(rank))
		if t.Count(rank) == 0 {
			line = r.muted.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString(fmt.Sprintf("%-16s %10d", "Total", t.Total()))
	b.WriteString("\n")
	return b.String()
}

// Println writes a line to the renderer's output
func (r *Renderer) Println(a ...any) {
	fmt.Fprintln(r.out, a...)
}
