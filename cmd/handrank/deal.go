package main

import (
	"fmt"

	"github.com/coder/quartz"

	"github.com/lox/handrank/poker"
)

// DealCmd deals from a freshly shuffled deck
type DealCmd struct {
	Cards int    `kong:"default='7',help='Number of cards to deal'"`
	Seed  *int64 `kong:"help='Shuffle seed (defaults to one derived from the clock)'"`

	clock quartz.Clock
}

func (c *DealCmd) Run(g *Globals) error {
	e, err := g.setup()
	if err != nil {
		return err
	}

	clock := c.clock
	if clock == nil {
		clock = quartz.NewReal()
	}

	deck := poker.NewDeck(poker.WithClock(clock))
	var seed int64
	if c.Seed != nil {
		seed = *c.Seed
		deck.Shuffle(seed)
	} else {
		seed = deck.ShuffleNow()
	}
	e.logger.Info("Shuffled deck", "seed", seed)

	cards, err := deck.TakeSlice(c.Cards)
	if err != nil {
		return fmt.Errorf("dealing %d cards: %w", c.Cards, err)
	}

	hand := poker.Classify(cards)
	e.renderer.Println(e.renderer.Cards(cards))
	e.renderer.Println(e.renderer.Hand(hand))
	return nil
}
