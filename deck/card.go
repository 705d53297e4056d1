// Package deck models a standard 52-card deck: cards with a total order,
// sorted deck construction, Fisher-Yates shuffling and sequential dealing.
package deck

import (
	"fmt"
	"slices"
	"strings"

	"github.com/lox/carddeck/internal/msg"
)

// Suit represents a card suit. The zero value is not a suit.
type Suit int

// Suits are ordered alphabetically, as in poker house rules that break
// rank ties by suit.
const (
	Clubs Suit = iota + 1
	Diamonds
	Hearts
	Spades
)

// Suits returns the four suits in ascending order.
func Suits() []Suit {
	return []Suit{Clubs, Diamonds, Hearts, Spades}
}

// String returns the upper-case suit name, e.g. "CLUBS"
func (s Suit) String() string {
	switch s {
	case Clubs:
		return "CLUBS"
	case Diamonds:
		return "DIAMONDS"
	case Hearts:
		return "HEARTS"
	case Spades:
		return "SPADES"
	default:
		return fmt.Sprintf("Suit(%d)", int(s))
	}
}

// Symbol returns the unicode suit symbol
func (s Suit) Symbol() string {
	switch s {
	case Clubs:
		return "♣"
	case Diamonds:
		return "♦"
	case Hearts:
		return "♥"
	case Spades:
		return "♠"
	default:
		return "?"
	}
}

// IsRed returns true if the suit is red (Hearts or Diamonds)
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

// Valid reports whether s is one of the four suits.
func (s Suit) Valid() bool {
	return s >= Clubs && s <= Spades
}

// Compare returns -1, 0 or +1 depending on whether s sorts before, with or
// after other.
func (s Suit) Compare(other Suit) int {
	switch {
	case s < other:
		return -1
	case s > other:
		return 1
	default:
		return 0
	}
}

// Rank represents a card rank, 2 through 14 with aces high.
type Rank int

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

var rankNames = [...]string{
	Two:   "Two",
	Three: "Three",
	Four:  "Four",
	Five:  "Five",
	Six:   "Six",
	Seven: "Seven",
	Eight: "Eight",
	Nine:  "Nine",
	Ten:   "Ten",
	Jack:  "Jack",
	Queen: "Queen",
	King:  "King",
	Ace:   "Ace",
}

const rankChars = "23456789TJQKA"

// Valid reports whether r lies in [Two, Ace].
func (r Rank) Valid() bool {
	return r >= Two && r <= Ace
}

// String returns the rank name, e.g. "Two" or "Jack"
func (r Rank) String() string {
	if !r.Valid() {
		return fmt.Sprintf("Rank(%d)", int(r))
	}
	return rankNames[r]
}

// Short returns the single character form used in card literals ("T" for ten).
func (r Rank) Short() string {
	if !r.Valid() {
		return "?"
	}
	return string(rankChars[r-Two])
}

// Card is an immutable playing card. Cards are comparable with == and can be
// used as map keys.
type Card struct {
	rank Rank
	suit Suit
}

// NewCard creates a card, rejecting ranks outside [2,14] and the zero Suit.
func NewCard(rank Rank, suit Suit) (Card, error) {
	if !rank.Valid() {
		return Card{}, newError(Messages, ErrInvalidArgument, msg.CardIllegalNumber, int(rank))
	}
	if !suit.Valid() {
		return Card{}, newError(Messages, ErrInvalidArgument, msg.CardNullSuit)
	}
	return Card{rank: rank, suit: suit}, nil
}

// MustCard is like NewCard but panics on invalid input.
func MustCard(rank Rank, suit Suit) Card {
	c, err := NewCard(rank, suit)
	if err != nil {
		panic(err)
	}
	return c
}

// Rank returns the card's rank.
func (c Card) Rank() Rank {
	return c.rank
}

// Suit returns the card's suit.
func (c Card) Suit() Suit {
	return c.suit
}

// String returns a description such as "Six of CLUBS".
func (c Card) String() string {
	return c.rank.String() + " of " + c.suit.String()
}

// Short returns the compact literal form, e.g. "As" or "Tc".
func (c Card) Short() string {
	return c.rank.Short() + strings.ToLower(c.suit.String()[:1])
}

// Compare orders cards by rank, breaking ties by suit. A card that compares
// lower loses to the other in poker under suit tie-break house rules.
func (c Card) Compare(other Card) int {
	switch {
	case c.rank < other.rank:
		return -1
	case c.rank > other.rank:
		return 1
	default:
		return c.suit.Compare(other.suit)
	}
}

// Equal reports whether both cards have the same rank and suit.
func (c Card) Equal(other Card) bool {
	return c == other
}

// SortCards sorts cards in place into ascending order.
func SortCards(cards []Card) {
	slices.SortFunc(cards, Card.Compare)
}

// ParseCard parses a two character literal such as "As", "td" or "2C".
func ParseCard(s string) (Card, error) {
	if len(s) != 2 {
		return Card{}, fmt.Errorf("invalid card %q: want rank and suit like As", s)
	}

	idx := strings.IndexByte(rankChars, upper(s[0]))
	if idx < 0 {
		return Card{}, fmt.Errorf("invalid rank %q in card %q", s[0], s)
	}

	var suit Suit
	switch upper(s[1]) {
	case 'C':
		suit = Clubs
	case 'D':
		suit = Diamonds
	case 'H':
		suit = Hearts
	case 'S':
		suit = Spades
	default:
		return Card{}, fmt.Errorf("invalid suit %q in card %q", s[1], s)
	}

	return NewCard(Two+Rank(idx), suit)
}

// ParseCards parses a run of card literals such as "AsKd2c".
func ParseCards(s string) ([]Card, error) {
	if len(s)%2 != 0 {
		return nil, fmt.Errorf("invalid card string %q: odd length", s)
	}

	cards := make([]Card, 0, len(s)/2)
	for i := 0; i < len(s); i += 2 {
		c, err := ParseCard(s[i : i+2])
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, nil
}

// MustParseCards is like ParseCards but panics on error. Intended for tests.
func MustParseCards(s string) []Card {
	cards, err := ParseCards(s)
	if err != nil {
		panic(err)
	}
	return cards
}

func upper(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - ('a' - 'A')
	}
	return b
}
