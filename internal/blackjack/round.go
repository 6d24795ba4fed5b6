package blackjack

import (
	"fmt"

	"blackjack/internal/cards"
	"blackjack/internal/events"
)

// DealerStandsOn is the lowest value the dealer stands on.
const DealerStandsOn = 17

type State string

const (
	StateDeal       State = "DEAL"
	StatePlayerTurn State = "PLAYER_TURN"
	StateDealerTurn State = "DEALER_TURN"
	StateResolve    State = "RESOLVE"
)

type Outcome string

const (
	OutcomePlayerBlackjack Outcome = "PLAYER_BLACKJACK"
	OutcomeBlackjackPush   Outcome = "BLACKJACK_PUSH"
	OutcomePlayerBust      Outcome = "PLAYER_BUST"
	OutcomeDealerBust      Outcome = "DEALER_BUST"
	OutcomePlayerWin       Outcome = "PLAYER_WIN"
	OutcomeDealerWin       Outcome = "DEALER_WIN"
	OutcomePush            Outcome = "PUSH"
)

// Terminal is the text channel a round talks to the player through.
type Terminal interface {
	ReadLine() (string, error)
	Println(a ...any)
	Printf(format string, a ...any)
}

// DealerShouldDraw applies the fixed house policy: draw to 16, stand on 17+.
// A bust hand (value 0) never draws.
func DealerShouldDraw(value int) bool {
	return value != 0 && value < DealerStandsOn
}

// Round is a single hand of blackjack between the player and the dealer.
type Round struct {
	ID     string
	State  State
	Player *Hand
	Dealer *Hand

	deck   *cards.Deck
	term   Terminal
	events *events.Logger
	ascii  bool
}

// NewRound prepares a round dealt from deck. The deck is owned by the round.
func NewRound(deck *cards.Deck, term Terminal, logger *events.Logger, ascii bool) *Round {
	if logger == nil {
		logger = events.NewLogger(nil)
	}
	return &Round{
		ID:     events.NewRoundID(),
		State:  StateDeal,
		Player: NewHand(),
		Dealer: NewHand(),
		deck:   deck,
		term:   term,
		events: logger,
		ascii:  ascii,
	}
}

// Play runs the round to completion and returns its outcome. Every outcome
// is announced on the terminal before Play returns. Errors come from an
// exhausted deck or from reading input (io.EOF included).
func (r *Round) Play() (Outcome, error) {
	if err := r.deal(); err != nil {
		return "", err
	}
	r.events.OnRoundStart(r.ID, r.Player.Value(), r.Dealer.Value())

	r.State = StatePlayerTurn
	outcome, decisive, err := r.playerTurn()
	if err != nil {
		return "", err
	}

	if !decisive {
		r.State = StateDealerTurn
		if outcome, err = r.dealerTurn(); err != nil {
			return "", err
		}
	}

	r.State = StateResolve
	r.events.OnRoundFinish(r.ID, string(outcome), r.Player.Value(), r.Dealer.Value())
	return outcome, nil
}

func (r *Round) draw(h *Hand) error {
	c, err := r.deck.Deal()
	if err != nil {
		return fmt.Errorf("round %s: %w", r.ID, err)
	}
	h.AddCard(c)
	return nil
}

func (r *Round) deal() error {
	for i := 0; i < 2; i++ {
		if err := r.draw(r.Player); err != nil {
			return err
		}
		if err := r.draw(r.Dealer); err != nil {
			return err
		}
	}
	return nil
}

// playerTurn reports decisive when the round ends without the dealer playing.
func (r *Round) playerTurn() (Outcome, bool, error) {
	for {
		up, _ := r.Dealer.LastCard()
		r.term.Printf("\nDealer hand: ??, %s\n", up.Format(r.ascii))
		r.term.Printf("  Your hand: %s\n", r.Player.Format(r.ascii))

		switch r.Player.Value() {
		case Blackjack:
			// Any 21 stands. Only a natural ends the round here.
			if !r.Player.IsBlackjack() {
				return "", false, nil
			}
			r.term.Println("Blackjack!")
			if r.Dealer.IsBlackjack() {
				r.term.Println("Dealer also has blackjack! It's a push!")
				return OutcomeBlackjackPush, true, nil
			}
			r.term.Println("You win!")
			return OutcomePlayerBlackjack, true, nil
		case 0:
			r.term.Println("Bust! You lose!")
			return OutcomePlayerBust, true, nil
		}

		r.term.Println("\nWhat would you like to do?")
		r.term.Println("1. Hit (H)")
		r.term.Println("2. Stand (S)")

		line, err := r.term.ReadLine()
		if err != nil {
			return "", false, err
		}

		switch ParseChoice(line) {
		case ChoiceHit:
			if err := r.draw(r.Player); err != nil {
				return "", false, err
			}
			r.events.OnPlayerAction(r.ID, string(ChoiceHit), r.Player.Value())
		case ChoiceStand:
			r.events.OnPlayerAction(r.ID, string(ChoiceStand), r.Player.Value())
			return "", false, nil
		default:
			r.events.OnInvalidCommand(r.ID, line)
			r.term.Println("Invalid command. Please try again.")
		}
	}
}

func (r *Round) dealerTurn() (Outcome, error) {
	for {
		r.term.Printf("\nDealer hand: %s\n", r.Dealer.Format(r.ascii))
		r.term.Printf("  Your hand: %s\n", r.Player.Format(r.ascii))

		d, p := r.Dealer.Value(), r.Player.Value()
		switch {
		case d == 0:
			r.term.Println("Dealer busted! You win!")
			return OutcomeDealerBust, nil
		case DealerShouldDraw(d):
			if err := r.draw(r.Dealer); err != nil {
				return "", err
			}
			r.events.OnDealerDraw(r.ID, r.Dealer.Value())
		case d > p:
			r.term.Println("You lost!")
			return OutcomeDealerWin, nil
		case d < p:
			r.term.Println("You won!")
			return OutcomePlayerWin, nil
		default:
			r.term.Println("It's a push!")
			return OutcomePush, nil
		}
	}
}
