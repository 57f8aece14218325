// Package report writes simulation results to disk.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/lox/handrank/internal/simulate"
	"github.com/lox/handrank/poker"
)

// Report is the on-disk form of a simulation run
type Report struct {
	Seed         int64         `json:"seed"`
	Hands        int           `json:"hands"`
	CardsPerHand int           `json:"cards_per_hand"`
	Workers      int           `json:"workers"`
	Ranks        []RankSummary `json:"ranks"`
}

// RankSummary is the count and frequency of one hand category
type RankSummary struct {
	Rank      string  `json:"rank"`
	Count     int     `json:"count"`
	Frequency float64 `json:"frequency"`
}

// New builds a report from a finished simulation, strongest category first
func New(opts simulate.Options, tally *simulate.Tally) Report {
	r := Report{
		Seed:         opts.Seed,
		Hands:        tally.Total(),
		CardsPerHand: opts.CardsPerHand,
		Workers:      opts.Workers,
	}
	for _, rank := range poker.Ranks() {
		r.Ranks = append(r.Ranks, RankSummary{
			Rank:      rank.String(),
			Count:     tally.Count(rank),
			Frequency: tally.Frequency(rank),
		})
	}
	return r
}

// Encode writes the report to w as indented JSON
func Encode(w io.Writer, r Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return nil
}

// Write saves the report to filename. It is encoded into a hidden sibling file that
// replaces filename only once synced, so readers see the previous report or the new
// one, never a partial write.
func Write(filename string, r Report) (err error) {
	f, err := os.CreateTemp(filepath.Dir(filename), "."+filepath.Base(filename)+".*")
	if err != nil {
		return fmt.Errorf("failed to create report: %w", err)
	}
	defer func() {
		if err != nil {
			f.Close()
			os.Remove(f.Name())
		}
	}()

	if err = Encode(f, r); err != nil {
		return err
	}
	if err = f.Sync(); err != nil {
		return fmt.Errorf("failed to sync report: %w", err)
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("failed to close report: %w", err)
	}
	if err = os.Chmod(f.Name(), 0o644); err != nil {
		return fmt.Errorf("failed to set report permissions: %w", err)
	}
	if err = os.Rename(f.Name(), filename); err != nil {
		return fmt.Errorf("failed to replace %s: %w", filename, err)
	}
	return nil
}
