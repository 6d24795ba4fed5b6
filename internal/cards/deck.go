package cards

import "errors"

// DeckSize is the number of distinct cards in a standard deck.
const DeckSize = 52

// ErrEmptyDeck is returned when dealing from an exhausted deck.
var ErrEmptyDeck = errors.New("deck is empty")

var faceRanks = []Rank{Ace, Jack, King, Queen}

// Shuffler permutes n elements through swap. *rand.Rand satisfies it.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

// Deck is an ordered pile of cards. The top of the deck is the end of the slice.
type Deck struct {
	cards []Card
}

// NewDeck creates a standard 52-card deck in a fixed order.
func NewDeck() *Deck {
	cards := make([]Card, 0, DeckSize)
	for _, s := range Suits {
		for _, r := range faceRanks {
			cards = append(cards, Card{Suit: s, Rank: r})
		}
		for n := 2; n <= 10; n++ {
			cards = append(cards, Card{Suit: s, Rank: Rank(n)})
		}
	}
	return &Deck{cards: cards}
}

// NewDeckFrom builds a deck holding exactly the given cards.
// The last card is dealt first.
func NewDeckFrom(cards []Card) *Deck {
	return &Deck{cards: append([]Card(nil), cards...)}
}

// Shuffle permutes the remaining cards in place.
func (d *Deck) Shuffle(s Shuffler) {
	s.Shuffle(len(d.cards), func(i, j int) { d.cards[i], d.cards[j] = d.cards[j], d.cards[i] })
}

// Deal removes and returns the top card.
func (d *Deck) Deal() (Card, error) {
	if len(d.cards) == 0 {
		return Card{}, ErrEmptyDeck
	}
	card := d.cards[len(d.cards)-1]
	d.cards = d.cards[:len(d.cards)-1]
	return card, nil
}

// Len returns the number of cards left.
func (d *Deck) Len() int {
	return len(d.cards)
}

// Cards returns a copy of the remaining cards, bottom first.
func (d *Deck) Cards() []Card {
	return append([]Card(nil), d.cards...)
}
