package blackjack

import (
	"fmt"
	"strings"

	"blackjack/internal/cards"
)

// Blackjack is the best attainable hand value.
const Blackjack = 21

// Hand is the ordered set of cards held by the player or the dealer.
type Hand struct {
	cards []cards.Card
}

// NewHand returns a hand holding the given cards in order.
func NewHand(cs ...cards.Card) *Hand {
	return &Hand{cards: append([]cards.Card(nil), cs...)}
}

func (h *Hand) AddCard(c cards.Card) {
	h.cards = append(h.cards, c)
}

// Value returns the highest total not above 21 over every combination of
// card values. Partial totals above 21 are dropped after each card; once
// none remain the hand is bust and Value returns 0.
func (h *Hand) Value() int {
	reachable := map[int]struct{}{0: {}}
	for _, c := range h.cards {
		next := make(map[int]struct{}, len(reachable)*2)
		for t := range reachable {
			for _, v := range c.Values() {
				if t+v <= Blackjack {
					next[t+v] = struct{}{}
				}
			}
		}
		if len(next) == 0 {
			return 0
		}
		reachable = next
	}

	best := 0
	for t := range reachable {
		best = max(best, t)
	}
	return best
}

// IsBlackjack reports a natural: 21 with exactly two cards.
func (h *Hand) IsBlackjack() bool {
	return len(h.cards) == 2 && h.Value() == Blackjack
}

// IsBust reports whether every combination of the cards exceeds 21.
func (h *Hand) IsBust() bool {
	return len(h.cards) > 0 && h.Value() == 0
}

// LastCard returns the most recently added card.
func (h *Hand) LastCard() (cards.Card, bool) {
	if len(h.cards) == 0 {
		return cards.Card{}, false
	}
	return h.cards[len(h.cards)-1], true
}

func (h *Hand) Len() int {
	return len(h.cards)
}

// Cards returns a copy of the cards in the order they were added.
func (h *Hand) Cards() []cards.Card {
	return append([]cards.Card(nil), h.cards...)
}

func (h *Hand) String() string {
	return h.Format(false)
}

// Format renders the cards comma-joined followed by the hand value.
func (h *Hand) Format(ascii bool) string {
	s := make([]string, 0, len(h.cards))
	for _, c := range h.cards {
		s = append(s, c.Format(ascii))
	}
	return fmt.Sprintf("%s (Value: %d)", strings.Join(s, ", "), h.Value())
}
