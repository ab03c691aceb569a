package main

import (
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version kong.VersionFlag `short:"v" help:"Show version"`
	Debug   bool             `help:"Enable debug logging"`

	Play     PlayCmd     `cmd:"" help:"Play an interactive hand session against bots"`
	Simulate SimulateCmd `cmd:"" help:"Run a bot-vs-bot simulation and report winrates"`
	Odds     OddsCmd     `cmd:"" help:"Estimate hand equity by Monte Carlo simulation"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("holdemcore"),
		kong.Description("Texas hold'em engine: play, simulate, and run the numbers"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)

	logger := log.New(os.Stderr)
	if cli.Debug {
		logger.SetLevel(log.DebugLevel)
	} else {
		logger.SetLevel(log.WarnLevel)
	}

	err := ctx.Run(logger)
	ctx.FatalIfErrorf(err)
}
