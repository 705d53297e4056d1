package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/carddeck/deck"
	"github.com/lox/carddeck/internal/config"
	"github.com/lox/carddeck/internal/display"
	"github.com/lox/carddeck/internal/msg"
	"github.com/lox/carddeck/internal/randutil"
)

// Globals are flags shared by every command.
type Globals struct {
	Config   string `type:"path" default:"carddeck.hcl" env:"CARDDECK_CONFIG" help:"Path to HCL config file"`
	LogLevel string `env:"CARDDECK_LOG_LEVEL" help:"Log level: debug, info, warn or error (overrides config)"`
	Seed     *int64 `env:"CARDDECK_SEED" help:"Random seed for reproducible shuffles"`
	Locale   string `env:"CARDDECK_LOCALE" help:"Locale for messages (overrides config)"`
	NoColor  bool   `help:"Disable coloured output"`
}

// app holds the dependencies commands run against.
type app struct {
	cfg      *config.Config
	logger   *log.Logger
	printer  *display.Printer
	messages *msg.Catalog
	out      io.Writer
	seed     int64
}

func newApp(g *Globals, out io.Writer) (*app, error) {
	return newAppWithClock(g, out, os.Stderr, quartz.NewReal())
}

func newAppWithClock(g *Globals, out, logOut io.Writer, clock quartz.Clock) (*app, error) {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if g.LogLevel != "" {
		cfg.LogLevel = g.LogLevel
	}
	if g.Locale != "" {
		cfg.Locale = g.Locale
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	logger := newLogger(logOut, cfg.LogLevel)

	tag, err := cfg.Language()
	if err != nil {
		return nil, err
	}
	messages := msg.New(tag)
	deck.Messages = messages

	var seed int64
	switch {
	case g.Seed != nil:
		seed = *g.Seed
	case cfg.Shuffle.Seed != 0:
		seed = cfg.Shuffle.Seed
	default:
		seed = randutil.Seed(clock)
	}
	logger.Debug("Using shuffle seed", "seed", seed, "locale", tag)

	return &app{
		cfg:      cfg,
		logger:   logger,
		printer:  display.New(out, cfg.ColorEnabled() && !g.NoColor),
		messages: messages,
		out:      out,
		seed:     seed,
	}, nil
}

// newDeck builds a sorted deck whose shuffles replay from the app seed.
func (a *app) newDeck() *deck.Deck {
	return deck.New(
		deck.WithRand(randutil.New(a.seed)),
		deck.WithMessages(a.messages),
	)
}

func newLogger(w io.Writer, level string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Prefix:          "carddeck",
	})

	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.InfoLevel
	}
	logger.SetLevel(lvl)
	return logger
}
