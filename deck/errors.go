package deck

import (
	"errors"

	"github.com/lox/carddeck/internal/msg"
)

var (
	// ErrInvalidArgument is the kind of error returned when a card is built
	// from an out-of-range rank or an absent suit.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrEmptyDeck is the kind of error returned when dealing from a deck
	// with no cards remaining.
	ErrEmptyDeck = errors.New("empty deck")
)

// Formatter renders a message key and its parameters as display text.
type Formatter = msg.Formatter

// Messages formats the text of errors raised outside of a Deck, such as
// NewCard. Replace it to localize card construction failures.
var Messages Formatter = msg.Default()

// Error is returned by every failing operation in this package. Match its
// kind with errors.Is against ErrInvalidArgument or ErrEmptyDeck.
type Error struct {
	Kind   error
	Key    string
	Params []any

	text string
}

func newError(f Formatter, kind error, key string, params ...any) *Error {
	if f == nil {
		f = msg.Default()
	}
	return &Error{
		Kind:   kind,
		Key:    key,
		Params: params,
		text:   f.Format(key, params...),
	}
}

func (e *Error) Error() string {
	return e.text
}

func (e *Error) Unwrap() error {
	return e.Kind
}
