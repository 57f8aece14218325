package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/handrank/internal/display"
	"github.com/lox/handrank/internal/report"
	"github.com/lox/handrank/poker"
)

func runCLI(t *testing.T, cli *CLI, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cli.stdout = &out
	cli.stderr = io.Discard

	parser, err := kong.New(cli, kong.Name("handrank"), kong.Exit(func(int) { t.Fatal("unexpected exit") }))
	require.NoError(t, err)

	args = append(args, "--no-color")
	if !slices.Contains(args, "--config") {
		args = append(args, "--config", filepath.Join(t.TempDir(), "none.hcl"))
	}
	ctx, err := parser.Parse(args)
	require.NoError(t, err)

	err = ctx.Run(&cli.Globals)
	return out.String(), err
}

func TestClassifyCommand(t *testing.T) {
	out, err := runCLI(t, &CLI{}, "classify", "Jc", "4d", "6c", "4s", "Qc", "3c", "7c")
	require.NoError(t, err)

	assert.Contains(t, out, "♣Q ♣J ♣7 ♣6 ♦4 ♠4 ♣3")
	assert.Contains(t, out, "Flush  score 39  kicker ♦4")
}

func TestClassifyCommandBadCard(t *testing.T) {
	_, err := runCLI(t, &CLI{}, "classify", "Zz")
	assert.Error(t, err)
}

func TestDealCommandSeeded(t *testing.T) {
	out, err := runCLI(t, &CLI{}, "deal", "--seed", "42", "--cards", "5")
	require.NoError(t, err)

	deck := poker.NewDeck()
	deck.Shuffle(42)
	cards, err := deck.TakeSlice(5)
	require.NoError(t, err)

	r := display.NewRenderer(io.Discard, false)
	assert.Equal(t, r.Cards(cards)+"\n"+r.Hand(poker.Classify(cards))+"\n", out)
}

func TestDealCommandUsesClock(t *testing.T) {
	clock := quartz.NewMock(t)
	cli := &CLI{}
	cli.Deal.clock = clock

	out, err := runCLI(t, cli, "deal", "--cards", "7")
	require.NoError(t, err)

	deck := poker.NewDeck()
	deck.Shuffle(clock.Now().UnixNano())
	cards, err := deck.TakeSlice(7)
	require.NoError(t, err)

	r := display.NewRenderer(io.Discard, false)
	assert.Contains(t, out, r.Cards(cards))
}

func TestDealCommandTooManyCards(t *testing.T) {
	_, err := runCLI(t, &CLI{}, "deal", "--seed", "1", "--cards", "53")
	require.Error(t, err)
	assert.True(t, errors.Is(err, poker.ErrNotEnoughCards))
}

func TestSimulateCommand(t *testing.T) {
	out, err := runCLI(t, &CLI{}, "simulate", "--hands", "250", "--workers", "2", "--seed", "5")
	require.NoError(t, err)

	assert.Contains(t, out, "Royal Flush")
	assert.Contains(t, out, "High Card")
	assert.Regexp(t, `Total\s+250`, out)
}

func TestInvalidLogLevel(t *testing.T) {
	_, err := runCLI(t, &CLI{}, "classify", "As", "--log-level", "chatty")
	assert.Error(t, err)
}

func TestSimulateCommandWritesReport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")
	_, err := runCLI(t, &CLI{}, "simulate", "--hands", "40", "--workers", "1", "--seed", "9", "--cards", "5", "--out", path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var r report.Report
	require.NoError(t, json.Unmarshal(data, &r))
	assert.Equal(t, int64(9), r.Seed)
	assert.Equal(t, 40, r.Hands)
	assert.Equal(t, 5, r.CardsPerHand)
}

func TestClassifyCommandWithConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "handrank.hcl")
	src := "log_level = \"warn\"\n\ndisplay {\n  color = true\n}\n"
	require.NoError(t, os.WriteFile(path, []byte(src), 0o600))

	out, err := runCLI(t, &CLI{}, "classify", "Td", "Jd", "Qd", "Kd", "Ad", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Royal Flush  score 60  kicker none")
}
