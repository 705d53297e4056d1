// Package display renders cards for the terminal, colouring red suits.
package display

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/lox/carddeck/deck"
)

// Printer renders cards with styles bound to one output.
type Printer struct {
	red   lipgloss.Style
	black lipgloss.Style
	label lipgloss.Style
	dim   lipgloss.Style
}

// New creates a Printer for w. With color disabled every style renders as
// plain text.
func New(w io.Writer, color bool) *Printer {
	r := lipgloss.NewRenderer(w)
	if !color {
		r.SetColorProfile(termenv.Ascii)
	}

	return &Printer{
		red:   r.NewStyle().Foreground(lipgloss.Color("#FF6B6B")).Bold(true),
		black: r.NewStyle().Bold(true),
		label: r.NewStyle().Foreground(lipgloss.Color("#96CEB4")).Bold(true),
		dim:   r.NewStyle().Foreground(lipgloss.Color("#626262")),
	}
}

func (p *Printer) style(c deck.Card) lipgloss.Style {
	if c.Suit().IsRed() {
		return p.red
	}
	return p.black
}

// Card renders a card in long form, e.g. "Ace of SPADES".
func (p *Printer) Card(c deck.Card) string {
	return p.style(c).Render(c.String())
}

// Symbol renders a card in compact form, e.g. "A♠".
func (p *Printer) Symbol(c deck.Card) string {
	return p.style(c).Render(c.Rank().Short() + c.Suit().Symbol())
}

// Cards renders cards in long form separated by ", ".
func (p *Printer) Cards(cards []deck.Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = p.Card(c)
	}
	return strings.Join(parts, ", ")
}

// Symbols renders cards in compact form separated by spaces.
func (p *Printer) Symbols(cards []deck.Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = p.Symbol(c)
	}
	return strings.Join(parts, " ")
}

// Deck renders the remaining cards the same way Deck.String does, with
// styling.
func (p *Printer) Deck(d *deck.Deck) string {
	return p.label.Render("Deck:") + " " + p.Cards(d.Cards())
}

// Label renders a heading.
func (p *Printer) Label(s string) string {
	return p.label.Render(s)
}

// Dim renders secondary text.
func (p *Printer) Dim(s string) string {
	return p.dim.Render(s)
}
