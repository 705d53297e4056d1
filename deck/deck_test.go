package deck

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/carddeck/internal/msg"
)

func seeded(seed uint64) Option {
	return WithRand(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

func TestNewDeckIsSorted(t *testing.T) {
	d := New()
	require.False(t, d.IsEmpty())
	require.Equal(t, Size, d.Len())

	first, err := d.DealOneCard()
	require.NoError(t, err)
	assert.Equal(t, MustCard(Two, Clubs), first)

	require.NoError(t, d.Burn(50))

	last, err := d.DealOneCard()
	require.NoError(t, err)
	assert.Equal(t, MustCard(Ace, Spades), last)
	assert.True(t, d.IsEmpty())
}

func TestNewDeckHasEveryCardOnce(t *testing.T) {
	cards := New().Cards()
	require.Len(t, cards, Size)

	seen := make(map[Card]bool, Size)
	for i, c := range cards {
		assert.False(t, seen[c], "duplicate %s", c)
		seen[c] = true
		if i > 0 {
			assert.Negative(t, cards[i-1].Compare(c), "deck not sorted at %d", i)
		}
	}
}

func TestEmptyDeck(t *testing.T) {
	d := New()
	require.NoError(t, d.Burn(Size))
	require.True(t, d.IsEmpty())

	for range 3 {
		_, err := d.DealOneCard()
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrEmptyDeck)
		assert.NotErrorIs(t, err, ErrInvalidArgument)
		assert.Equal(t, "The deck has no more cards in it.", err.Error())
	}

	_, err := d.Peek()
	assert.ErrorIs(t, err, ErrEmptyDeck)
}

func TestDealPreservesOrder(t *testing.T) {
	d := New(seeded(7))
	d.Shuffle()
	before := d.Cards()

	card, err := d.DealOneCard()
	require.NoError(t, err)
	assert.Equal(t, before[0], card)
	assert.Equal(t, before[1:], d.Cards())
}

func TestBurnZeroIsNoop(t *testing.T) {
	d := New()
	require.NoError(t, d.Burn(0))
	require.NoError(t, d.Burn(-3))
	assert.Equal(t, Size, d.Len())
}

func TestBurnPastEndDrainsDeck(t *testing.T) {
	d := New()
	require.NoError(t, d.Burn(50))

	err := d.Burn(5)
	require.ErrorIs(t, err, ErrEmptyDeck)
	assert.True(t, d.IsEmpty(), "cards burned before the failure stay burned")
}

func TestDealN(t *testing.T) {
	d := New()

	cards, err := d.DealN(3)
	require.NoError(t, err)
	assert.Equal(t, MustParseCards("2c2d2h"), cards)

	require.NoError(t, d.Burn(47))
	cards, err = d.DealN(4)
	assert.ErrorIs(t, err, ErrEmptyDeck)
	assert.Equal(t, MustParseCards("AhAs"), cards)

	cards, err = d.DealN(0)
	assert.NoError(t, err)
	assert.Empty(t, cards)
}

func TestShufflePreservesCards(t *testing.T) {
	d := New(seeded(42))
	d.Shuffle()
	require.Equal(t, Size, d.Len())

	dealt, err := d.DealN(Size)
	require.NoError(t, err)
	require.True(t, d.IsEmpty())

	SortCards(dealt)
	assert.Equal(t, New().Cards(), dealt)
}

func TestShuffleChangesOrder(t *testing.T) {
	d := New(seeded(42))
	d.Shuffle()
	assert.NotEqual(t, New().Cards(), d.Cards())
}

func TestShuffleIsDeterministicForSeed(t *testing.T) {
	a := New(seeded(99))
	b := New(seeded(99))
	a.Shuffle()
	b.Shuffle()
	assert.Equal(t, a.Cards(), b.Cards())
}

func TestShuffleEmpty(t *testing.T) {
	d := New()
	require.NoError(t, d.Burn(Size))
	d.Shuffle()
	assert.True(t, d.IsEmpty())
}

func TestShuffleSingleton(t *testing.T) {
	d := New()
	require.NoError(t, d.Burn(51))
	d.Shuffle()

	card, err := d.DealOneCard()
	require.NoError(t, err)
	assert.Equal(t, MustCard(Ace, Spades), card)
	assert.True(t, d.IsEmpty())
}

func TestShuffleHalfDeck(t *testing.T) {
	d := New(seeded(3))
	require.NoError(t, d.Burn(26))
	remaining := d.Cards()

	d.Shuffle()
	require.Equal(t, 26, d.Len())

	got := d.Cards()
	SortCards(got)
	assert.Equal(t, remaining, got)
}

// swapRecorder returns j = 0 every time so the permutation is predictable.
type swapRecorder struct {
	calls []int
}

func (s *swapRecorder) IntN(n int) int {
	s.calls = append(s.calls, n)
	return 0
}

func TestShuffleFisherYatesBounds(t *testing.T) {
	rec := &swapRecorder{}
	d := New(WithRand(rec))
	require.NoError(t, d.Burn(Size-4))

	d.Shuffle()
	assert.Equal(t, []int{4, 3, 2}, rec.calls)
	// Ac Ad Ah As with j always 0: swap(3,0), swap(2,0), swap(1,0).
	assert.Equal(t, MustParseCards("AdAhAsAc"), d.Cards())
}

func TestShuffleMovesFirstAndLast(t *testing.T) {
	twoClubs := MustCard(Two, Clubs)
	rng := rand.New(rand.NewPCG(1, 2))

	movedFirst, movedLast := false, false
	for range 100 {
		d := New(WithRand(rng))
		d.Shuffle()
		cards := d.Cards()
		if cards[0] != twoClubs {
			movedFirst = true
		}
		if cards[Size-1].Rank() != Ace {
			movedLast = true
		}
	}
	assert.True(t, movedFirst, "shuffling should yield a first card other than the Two of Clubs")
	assert.True(t, movedLast, "shuffling should yield a last card other than an Ace")
}

func TestShuffleDefaultSource(t *testing.T) {
	d := New()
	d.Shuffle()
	assert.Equal(t, Size, d.Len())
}

func TestReset(t *testing.T) {
	d := New(seeded(5))
	d.Shuffle()
	require.NoError(t, d.Burn(30))

	d.Reset()
	assert.Equal(t, New().Cards(), d.Cards())
}

func TestDeckString(t *testing.T) {
	d := New()
	require.NoError(t, d.Burn(49))
	assert.Equal(t, "Deck: Ace of DIAMONDS, Ace of HEARTS, Ace of SPADES", d.String())

	require.NoError(t, d.Burn(3))
	assert.Equal(t, "Deck: ", d.String())

	full := New().String()
	assert.True(t, strings.HasPrefix(full, "Deck: Two of CLUBS, Two of DIAMONDS"))
	assert.Equal(t, Size-1, strings.Count(full, ", "))
}

func TestWithMessages(t *testing.T) {
	f := msg.FormatterFunc(func(key string, params ...any) string {
		return "custom:" + key
	})

	d := New(WithMessages(f))
	require.NoError(t, d.Burn(Size))

	_, err := d.DealOneCard()
	assert.EqualError(t, err, "custom:Deck_emptyDeck")
	assert.ErrorIs(t, err, ErrEmptyDeck)
}

func TestPackageMessages(t *testing.T) {
	orig := Messages
	t.Cleanup(func() { Messages = orig })

	Messages = msg.FormatterFunc(func(key string, params ...any) string {
		return msg.Placeholder(key, params...)
	})

	_, err := NewCard(20, Clubs)
	assert.EqualError(t, err, "!!!Card_illegalNumber!!! [20]")
}
