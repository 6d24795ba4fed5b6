package blackjack

import (
	"context"
	"errors"
	"fmt"
	"io"

	"blackjack/internal/cards"
	"blackjack/internal/config"
	"blackjack/internal/events"
)

// Table runs rounds against the dealer until the player leaves.
type Table struct {
	term     Terminal
	shuffler cards.Shuffler
	events   *events.Logger
	ascii    bool

	// Rounds counts the rounds played so far.
	Rounds int
}

func NewTable(term Terminal, shuffler cards.Shuffler, logger *events.Logger, cfg *config.Config) *Table {
	return &Table{
		term:     term,
		shuffler: shuffler,
		events:   logger,
		ascii:    cfg.ASCII,
	}
}

// Run plays until the player declines another round, input runs out or ctx
// is cancelled. Cancellation is only observed between rounds.
func (t *Table) Run(ctx context.Context) error {
	t.term.Println("Welcome to Blackjack!")
	t.term.Println("Dealer must draw to 16 and stand on all 17s")

	for ctx.Err() == nil {
		deck := cards.NewDeck()
		deck.Shuffle(t.shuffler)

		round := NewRound(deck, t.term, t.events, t.ascii)
		_, err := round.Play()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("error playing round: %w", err)
		}
		t.Rounds++

		t.term.Println("Thank you for playing! Would you like to play again? (y/n)")
		line, err := t.term.ReadLine()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}
		if ParseReplay(line) == ReplayQuit {
			break
		}
	}

	t.term.Println("Until next time!")
	return nil
}
