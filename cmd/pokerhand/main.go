package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Globals

	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Classify ClassifyCmd      `cmd:"" help:"Classify a five card hand"`
	Compare  CompareCmd       `cmd:"" help:"Compare two five card hands"`
	Best     BestCmd          `cmd:"" help:"Pick the best five cards from two private and five shared cards"`
	Deal     DealCmd          `cmd:"" help:"Deal two random hands and show the winner"`
	Run      RunCmd           `cmd:"" help:"Evaluate an HCL scenario file"`
	Console  ConsoleCmd       `cmd:"" help:"Start the interactive hand console"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("pokerhand"),
		kong.Description("Poker hand classification and comparison"),
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
