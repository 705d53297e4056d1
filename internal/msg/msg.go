// Package msg routes user-facing messages through a parameterized catalog so
// that error text can be localized without touching the code that raises it.
package msg

import (
	"fmt"
	"strings"
	"sync"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Message keys used by the deck package.
const (
	CardIllegalNumber = "Card_illegalNumber"
	CardNullSuit      = "Card_nullSuit"
	DeckEmptyDeck     = "Deck_emptyDeck"
)

// Formatter turns a message key and its parameters into display text.
// Implementations must never panic.
type Formatter interface {
	Format(key string, params ...any) string
}

// FormatterFunc adapts a plain function to a Formatter.
type FormatterFunc func(key string, params ...any) string

// Format calls f(key, params...).
func (f FormatterFunc) Format(key string, params ...any) string {
	return f(key, params...)
}

var english = map[string]string{
	CardIllegalNumber: "The number \"%d\" is not a valid card number.",
	CardNullSuit:      "Cannot construct a Card with a null Suit.",
	DeckEmptyDeck:     "The deck has no more cards in it.",
}

// Catalog is a Formatter backed by golang.org/x/text message catalogs.
type Catalog struct {
	mu      sync.RWMutex
	builder *catalog.Builder
	keys    map[string]bool
	tag     language.Tag
	printer *message.Printer
	english *message.Printer
}

// New creates a catalog seeded with the English messages and resolves tag
// against the languages it knows, falling back to English.
func New(tag language.Tag) *Catalog {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	c := &Catalog{
		builder: b,
		keys:    make(map[string]bool, len(english)),
		tag:     tag,
	}
	for key, format := range english {
		// SetString only fails on malformed tags, never for language.English
		_ = b.SetString(language.English, key, format)
		c.keys[key] = true
	}
	c.resetPrinter()
	return c
}

// Set registers (or replaces) the template for key in the given language.
func (c *Catalog) Set(tag language.Tag, key, format string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.builder.SetString(tag, key, format); err != nil {
		return fmt.Errorf("setting message %q for %s: %w", key, tag, err)
	}
	c.keys[key] = true
	c.resetPrinter()
	return nil
}

// Language returns the language the catalog renders in.
func (c *Catalog) Language() language.Tag {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.tag
}

func (c *Catalog) resetPrinter() {
	matched, _, _ := c.builder.Matcher().Match(c.tag)
	c.printer = message.NewPrinter(matched, message.Catalog(c.builder))
	c.english = message.NewPrinter(language.English, message.Catalog(c.builder))
}

// Format renders key with params. Unknown keys and templates that do not
// accept the supplied params degrade to a diagnostic placeholder.
func (c *Catalog) Format(key string, params ...any) (out string) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if !c.keys[key] {
		return Placeholder(key, params...)
	}
	defer func() {
		if r := recover(); r != nil {
			out = Placeholder(key, params...)
		}
	}()

	out = c.printer.Sprintf(key, params...)
	if strings.HasPrefix(out, key) {
		// no translation for the matched language; keys never contain verbs
		out = c.english.Sprintf(key, params...)
	}
	if strings.HasPrefix(out, key) || strings.Contains(out, "%!") {
		return Placeholder(key, params...)
	}
	return out
}

// Placeholder is the text emitted when a message cannot be rendered.
func Placeholder(key string, params ...any) string {
	return fmt.Sprintf("!!!%s!!! %v", key, params)
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the process-wide English catalog, built on first use.
func Default() *Catalog {
	defaultOnce.Do(func() {
		defaultCatalog = New(language.English)
	})
	return defaultCatalog
}
