package cards

import (
	"fmt"
	"strconv"
)

// Suit is the cosmetic part of a card.
type Suit uint8

const (
	Hearts Suit = iota
	Diamonds
	Clubs
	Spades
)

// Suits lists every suit in deck construction order.
var Suits = []Suit{Hearts, Diamonds, Clubs, Spades}

func (s Suit) String() string {
	switch s {
	case Hearts:
		return "♥"
	case Diamonds:
		return "♦"
	case Clubs:
		return "♣"
	case Spades:
		return "♠"
	default:
		return "?"
	}
}

// Letter is the ASCII rendering of the suit.
func (s Suit) Letter() string {
	switch s {
	case Hearts:
		return "H"
	case Diamonds:
		return "D"
	case Clubs:
		return "C"
	case Spades:
		return "S"
	default:
		return "?"
	}
}

// Rank is Ace, Jack, Queen, King or a number card from 2 to 10.
// Number ranks carry their pip value directly.
type Rank uint8

const (
	Ace   Rank = 1
	Jack  Rank = 11
	Queen Rank = 12
	King  Rank = 13
)

const faceValue = 10

// Number returns the number rank n. Only 2 through 10 are valid.
func Number(n int) (Rank, error) {
	if n < 2 || n > 10 {
		return 0, fmt.Errorf("number rank %d out of range [2,10]", n)
	}
	return Rank(n), nil
}

// MustNumber is like Number but panics on an invalid n.
func MustNumber(n int) Rank {
	r, err := Number(n)
	if err != nil {
		panic(err)
	}
	return r
}

// IsNumber reports whether r is a number card.
func (r Rank) IsNumber() bool {
	return r >= 2 && r <= 10
}

func (r Rank) String() string {
	switch {
	case r == Ace:
		return "A"
	case r == Jack:
		return "J"
	case r == Queen:
		return "Q"
	case r == King:
		return "K"
	case r.IsNumber():
		return strconv.Itoa(int(r))
	default:
		return "?"
	}
}

// Values returns every numeric value the rank may count as.
func (r Rank) Values() []int {
	switch {
	case r == Ace:
		return []int{1, 11}
	case r == Jack, r == Queen, r == King:
		return []int{faceValue}
	case r.IsNumber():
		return []int{int(r)}
	default:
		return nil
	}
}

// Card represents a playing card.
type Card struct {
	Suit Suit
	Rank Rank
}

// Values returns the admissible values of the card. Only aces have two.
func (c Card) Values() []int {
	return c.Rank.Values()
}

func (c Card) String() string {
	return c.Suit.String() + c.Rank.String()
}

// Format renders the card with ASCII suit letters when ascii is set.
func (c Card) Format(ascii bool) string {
	if ascii {
		return c.Suit.Letter() + c.Rank.String()
	}
	return c.String()
}
