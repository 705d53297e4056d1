package main

import (
	"errors"
	"fmt"

	"github.com/lox/carddeck/deck"
)

// DealCmd deals cards one at a time from a fresh deck.
type DealCmd struct {
	Count   int  `short:"n" default:"5" help:"Number of cards to deal"`
	Burn    int  `help:"Cards to burn before dealing"`
	Shuffle bool `default:"true" negatable:"" help:"Shuffle before dealing"`
	Symbols bool `short:"s" help:"Print compact card symbols instead of names"`
}

func (cmd *DealCmd) Run(a *app) error {
	if cmd.Count < 0 {
		return fmt.Errorf("count must not be negative, got %d", cmd.Count)
	}

	d := a.newDeck()
	if cmd.Shuffle {
		d.Shuffle()
	}

	if err := d.Burn(cmd.Burn); err != nil {
		return fmt.Errorf("burning %d cards: %w", cmd.Burn, err)
	}

	dealt := make([]deck.Card, 0, cmd.Count)
	for len(dealt) < cmd.Count {
		card, err := d.DealOneCard()
		if errors.Is(err, deck.ErrEmptyDeck) {
			a.logger.Warn("Deck exhausted", "dealt", len(dealt), "requested", cmd.Count)
			break
		}
		if err != nil {
			return err
		}
		dealt = append(dealt, card)
	}

	a.logger.Debug("Dealt cards", "count", len(dealt), "remaining", d.Len(), "seed", a.seed)

	if cmd.Symbols {
		fmt.Fprintln(a.out, a.printer.Symbols(dealt))
		return nil
	}
	for _, card := range dealt {
		fmt.Fprintln(a.out, a.printer.Card(card))
	}
	return nil
}
