package main

import (
	"fmt"
)

// ShowCmd prints a deck, optionally shuffled and partly dealt.
type ShowCmd struct {
	Shuffle bool `help:"Shuffle before printing"`
	Burn    int  `help:"Cards to burn before printing"`
}

func (cmd *ShowCmd) Run(a *app) error {
	d := a.newDeck()
	if cmd.Shuffle {
		d.Shuffle()
	}
	if err := d.Burn(cmd.Burn); err != nil {
		return fmt.Errorf("burning %d cards: %w", cmd.Burn, err)
	}

	fmt.Fprintln(a.out, a.printer.Deck(d))
	return nil
}
