package simulate

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/lox/handrank/internal/randutil"
	"github.com/lox/handrank/poker"
)

// Options controls a simulation run
type Options struct {
	Hands        int
	CardsPerHand int
	Workers      int
	Seed         int64
}

// Tally counts how often each hand category was dealt
type Tally struct {
	counts [poker.NumRanks]int
}

// Count returns the number of hands classified as rank
func (t *Tally) Count(rank poker.Rank) int {
	if int(rank) >= len(t.counts) {
		return 0
	}
	return t.counts[rank]
}

// Total returns the number of hands classified
func (t *Tally) Total() int {
	total := 0
	for _, n := range t.counts {
		total += n
	}
	return total
}

// Frequency returns the share of hands classified as rank, between 0 and 1
func (t *Tally) Frequency(rank poker.Rank) float64 {
	total := t.Total()
	if total == 0 {
		return 0
	}
	return float64(t.Count(rank)) / float64(total)
}

// Add records a classified hand
func (t *Tally) Add(rank poker.Rank) {
	t.counts[rank]++
}

// Merge folds another tally into this one
func (t *Tally) Merge(other *Tally) {
	for i, n := range other.counts {
		t.counts[i] += n
	}
}

// Run deals opts.Hands hands of opts.CardsPerHand cards across opts.Workers workers
// and counts the category of each. Each worker owns its deck, seeded from opts.Seed
// and the worker index, so results are reproducible for a fixed seed and worker count.
func Run(ctx context.Context, opts Options, logger *log.Logger) (*Tally, error) {
	if opts.Hands < 0 {
		return nil, fmt.Errorf("invalid hand count: %d", opts.Hands)
	}
	if opts.CardsPerHand < 1 || opts.CardsPerHand > poker.DeckSize {
		return nil, fmt.Errorf("invalid cards per hand: %d", opts.CardsPerHand)
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	workers := opts.Workers
	if workers < 1 {
		workers = 1
	}

	handsPerWorker := opts.Hands / workers
	remainder := opts.Hands % workers
	tallies := make([]Tally, workers)

	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		hands := handsPerWorker
		if w < remainder {
			hands++
		}
		seed := randutil.Derive(opts.Seed, w)
		tally := &tallies[w]

		g.Go(func() error {
			logger.Debug("Worker starting", "worker", w, "hands", hands, "seed", seed)
			if err := runWorker(ctx, hands, opts.CardsPerHand, seed, tally); err != nil {
				return fmt.Errorf("worker %d: %w", w, err)
			}
			logger.Debug("Worker finished", "worker", w, "hands", tally.Total())
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := &Tally{}
	for i := range tallies {
		total.Merge(&tallies[i])
	}
	return total, nil
}

// runWorker deals from a single deck, reshuffling with the next seed in its stream
// whenever too few cards remain for another hand.
func runWorker(ctx context.Context, hands, cardsPerHand int, seed int64, tally *Tally) error {
	deck := poker.NewDeck()
	shuffles := 0
	deck.Shuffle(randutil.Derive(seed, shuffles))

	for i := 0; i < hands; i++ {
		if i%1024 == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}

		if deck.Remaining() < cardsPerHand {
			deck.Reset()
			shuffles++
			deck.Shuffle(randutil.Derive(seed, shuffles))
		}

		cards, err := deck.TakeSlice(cardsPerHand)
		if err != nil {
			return err
		}
		tally.Add(poker.Classify(cards).Rank)
	}
	return nil
}
