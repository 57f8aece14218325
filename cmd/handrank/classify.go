package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lox/handrank/poker"
)

// ClassifyCmd classifies cards given on the command line
type ClassifyCmd struct {
	Cards []string `arg:"" name:"cards" help:"Cards in [value][suit] notation (As, Td, 10d); may be joined or separate"`
}

func (c *ClassifyCmd) Run(g *Globals) error {
	e, err := g.setup()
	if err != nil {
		return err
	}

	cards, err := poker.ParseCards(strings.Join(c.Cards, " "))
	if err != nil {
		return fmt.Errorf("parsing cards: %w", err)
	}
	if len(cards) == 0 {
		return errors.New("classify requires at least one card")
	}

	hand := poker.Classify(cards)
	e.logger.Debug("Classified cards", "cards", len(cards), "rank", hand.Rank, "score", hand.Score)

	e.renderer.Println(e.renderer.Cards(poker.Sorted(cards)))
	e.renderer.Println(e.renderer.Hand(hand))
	return nil
}
