package main

import (
	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Globals

	Version kong.VersionFlag `short:"v" help:"Show version"`
	Deal    DealCmd          `cmd:"" help:"Deal cards from a fresh deck"`
	Show    ShowCmd          `cmd:"" help:"Print the remaining cards of a deck"`
	Stats   StatsCmd         `cmd:"" help:"Sample many shuffles and check they look uniform"`
}

func main() {
	// A missing .env file is fine; values can come from the real environment.
	_ = godotenv.Load()

	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("carddeck"),
		kong.Description("Shuffle and deal a standard 52-card deck"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)

	a, err := newApp(&cli.Globals, ctx.Stdout)
	ctx.FatalIfErrorf(err)

	err = ctx.Run(a)
	ctx.FatalIfErrorf(err)
}
