package cards

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDeck(t *testing.T) {
	deck := NewDeck()
	require.Equal(t, DeckSize, deck.Len())

	seen := make(map[Card]bool)
	for _, c := range deck.Cards() {
		assert.False(t, seen[c], "duplicate card %s", c)
		seen[c] = true
	}
	for _, s := range Suits {
		for _, r := range []Rank{Ace, Jack, Queen, King} {
			assert.True(t, seen[Card{Suit: s, Rank: r}])
		}
		for n := 2; n <= 10; n++ {
			assert.True(t, seen[Card{Suit: s, Rank: MustNumber(n)}])
		}
	}
}

func TestNewDeck_Order(t *testing.T) {
	cards := NewDeck().Cards()
	assert.Equal(t, Card{Suit: Hearts, Rank: Ace}, cards[0])
	assert.Equal(t, Card{Suit: Hearts, Rank: Jack}, cards[1])
	assert.Equal(t, Card{Suit: Hearts, Rank: King}, cards[2])
	assert.Equal(t, Card{Suit: Hearts, Rank: Queen}, cards[3])
	assert.Equal(t, Card{Suit: Hearts, Rank: MustNumber(2)}, cards[4])
	assert.Equal(t, Card{Suit: Diamonds, Rank: Ace}, cards[13])
	assert.Equal(t, Card{Suit: Spades, Rank: MustNumber(10)}, cards[51])
}

func TestShuffle_KeepsCards(t *testing.T) {
	original := NewDeck().Cards()
	deck := NewDeck()
	deck.Shuffle(rand.New(rand.NewSource(42)))

	shuffled := deck.Cards()
	assert.ElementsMatch(t, original, shuffled)
	assert.NotEqual(t, original, shuffled)
}

func TestShuffle_SeededIsDeterministic(t *testing.T) {
	a, b := NewDeck(), NewDeck()
	a.Shuffle(rand.New(rand.NewSource(7)))
	b.Shuffle(rand.New(rand.NewSource(7)))
	assert.Equal(t, a.Cards(), b.Cards())
}

func TestDeal_EveryCardOnce(t *testing.T) {
	deck := NewDeck()
	deck.Shuffle(rand.New(rand.NewSource(1)))

	seen := make(map[Card]bool)
	for i := 0; i < DeckSize; i++ {
		c, err := deck.Deal()
		require.NoError(t, err)
		assert.False(t, seen[c], "card %s dealt twice", c)
		seen[c] = true
	}
	assert.Len(t, seen, DeckSize)
	assert.Equal(t, 0, deck.Len())

	_, err := deck.Deal()
	assert.ErrorIs(t, err, ErrEmptyDeck)
}

func TestDeal_FromTop(t *testing.T) {
	bottom := Card{Suit: Clubs, Rank: MustNumber(3)}
	top := Card{Suit: Hearts, Rank: Ace}
	deck := NewDeckFrom([]Card{bottom, top})

	c, err := deck.Deal()
	require.NoError(t, err)
	assert.Equal(t, top, c)

	c, err = deck.Deal()
	require.NoError(t, err)
	assert.Equal(t, bottom, c)
}
