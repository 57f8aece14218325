package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Globals

	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Classify ClassifyCmd      `cmd:"" help:"Classify a set of cards, e.g. 'handrank classify Jc 5d 6d 4d Qd 7d 3d'"`
	Deal     DealCmd          `cmd:"" help:"Shuffle a deck, deal cards and classify them"`
	Simulate SimulateCmd      `cmd:"" help:"Deal many hands and report how often each category occurs"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("handrank"),
		kong.Description("Poker hand classifier for 5 to 7 card sets"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}
