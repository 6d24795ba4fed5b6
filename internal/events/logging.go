package events

import (
	"io"
	"log"

	"github.com/google/uuid"
)

// Logger writes round lifecycle diagnostics. Game prose goes to the console,
// never here.
type Logger struct {
	log *log.Logger
}

// NewLogger logs to w. A nil w discards everything.
func NewLogger(w io.Writer) *Logger {
	if w == nil {
		w = io.Discard
	}
	return &Logger{log: log.New(w, "", log.LstdFlags)}
}

// NewRoundID returns a fresh identifier used to correlate a round's log lines.
func NewRoundID() string {
	return uuid.NewString()
}

func (l *Logger) OnRoundStart(roundID string, player, dealer int) {
	l.log.Printf("[BLACKJACK START] Round %s | Player: %d | Dealer: %d", roundID, player, dealer)
}

func (l *Logger) OnPlayerAction(roundID, action string, value int) {
	l.log.Printf("[BLACKJACK ACTION] Round %s | %s | Hand Value: %d", roundID, action, value)
}

func (l *Logger) OnInvalidCommand(roundID, line string) {
	l.log.Printf("[BLACKJACK ACTION] Round %s | Invalid command %q", roundID, line)
}

func (l *Logger) OnDealerDraw(roundID string, value int) {
	l.log.Printf("[BLACKJACK DEALER] Round %s | DRAW | Hand Value: %d", roundID, value)
}

func (l *Logger) OnRoundFinish(roundID, outcome string, player, dealer int) {
	l.log.Printf("[BLACKJACK FINISH] Round %s | Player: %d | Dealer: %d | Result: %s", roundID, player, dealer, outcome)
}
