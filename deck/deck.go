package deck

import (
	"math/rand/v2"
	"strings"

	"github.com/lox/carddeck/internal/msg"
)

// Size is the number of cards in a full deck.
const Size = 52

// Source supplies the random indices used by Shuffle. *rand.Rand from
// math/rand/v2 satisfies it.
type Source interface {
	IntN(n int) int
}

// Option configures a Deck.
type Option func(*Deck)

// WithRand sets the random source used by Shuffle. Pass a seeded generator
// for reproducible shuffles.
func WithRand(src Source) Option {
	return func(d *Deck) {
		d.rng = src
	}
}

// WithMessages sets the formatter used for this deck's error messages.
func WithMessages(f Formatter) Option {
	return func(d *Deck) {
		d.messages = f
	}
}

// Deck is an ordered pile of cards, front to back in dealing order.
// A Deck must not be used from more than one goroutine at a time.
type Deck struct {
	cards    []Card
	rng      Source
	messages Formatter
}

// New creates a full 52-card deck sorted from the Two of Clubs to the Ace of
// Spades.
func New(opts ...Option) *Deck {
	d := &Deck{
		messages: Messages,
	}
	for _, opt := range opts {
		opt(d)
	}
	d.Reset()
	return d
}

// Reset restores the deck to all 52 cards in sorted order.
func (d *Deck) Reset() {
	if cap(d.cards) < Size {
		d.cards = make([]Card, 0, Size)
	}
	d.cards = d.cards[:0]

	for rank := Two; rank <= Ace; rank++ {
		for _, suit := range Suits() {
			d.cards = append(d.cards, Card{rank: rank, suit: suit})
		}
	}
}

// IsEmpty returns true if every card has been dealt.
func (d *Deck) IsEmpty() bool {
	return len(d.cards) == 0
}

// Len returns the number of cards left in the deck.
func (d *Deck) Len() int {
	return len(d.cards)
}

// Cards returns a copy of the remaining cards in dealing order.
func (d *Deck) Cards() []Card {
	out := make([]Card, len(d.cards))
	copy(out, d.cards)
	return out
}

// Peek returns the next card without removing it.
func (d *Deck) Peek() (Card, error) {
	if d.IsEmpty() {
		return Card{}, d.emptyError()
	}
	return d.cards[0], nil
}

// DealOneCard removes and returns the next card. It fails with ErrEmptyDeck
// once the deck is exhausted.
func (d *Deck) DealOneCard() (Card, error) {
	if d.IsEmpty() {
		return Card{}, d.emptyError()
	}

	card := d.cards[0]
	d.cards = d.cards[1:]
	return card, nil
}

// DealN deals n cards one at a time. If the deck runs out, the cards dealt so
// far are returned together with ErrEmptyDeck.
func (d *Deck) DealN(n int) ([]Card, error) {
	if n <= 0 {
		return nil, nil
	}

	cards := make([]Card, 0, min(n, len(d.cards)))
	for range n {
		card, err := d.DealOneCard()
		if err != nil {
			return cards, err
		}
		cards = append(cards, card)
	}
	return cards, nil
}

// Burn deals and discards n cards. Burning more cards than remain empties
// the deck and then reports ErrEmptyDeck; the discarded cards are not
// restored.
func (d *Deck) Burn(n int) error {
	for range max(n, 0) {
		if _, err := d.DealOneCard(); err != nil {
			return err
		}
	}
	return nil
}

// Shuffle randomizes the remaining cards in place using Fisher-Yates. It is
// safe to call on a full, partially dealt or empty deck.
func (d *Deck) Shuffle() {
	for i := len(d.cards) - 1; i > 0; i-- {
		j := d.intN(i + 1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

func (d *Deck) intN(n int) int {
	if d.rng != nil {
		return d.rng.IntN(n)
	}
	return rand.IntN(n)
}

// String lists the remaining cards, e.g. "Deck: Two of CLUBS, Two of DIAMONDS".
func (d *Deck) String() string {
	var sb strings.Builder
	sb.WriteString("Deck: ")
	for i, c := range d.cards {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(c.String())
	}
	return sb.String()
}

func (d *Deck) emptyError() error {
	return newError(d.messages, ErrEmptyDeck, msg.DeckEmptyDeck)
}
