package blackjack

import (
	"strings"

	"golang.org/x/text/cases"
)

// Choice is a player decision during their turn.
type Choice string

const (
	ChoiceHit     Choice = "HIT"
	ChoiceStand   Choice = "STAND"
	ChoiceInvalid Choice = "INVALID"
)

// Replay is the answer to the play-again prompt.
type Replay string

const (
	ReplayContinue Replay = "CONTINUE"
	ReplayQuit     Replay = "QUIT"
)

// ChoiceVocabulary maps accepted hit/stand input to its decision.
// An empty line hits.
var ChoiceVocabulary = map[string]Choice{
	"1":     ChoiceHit,
	"hit":   ChoiceHit,
	"h":     ChoiceHit,
	"":      ChoiceHit,
	"2":     ChoiceStand,
	"stand": ChoiceStand,
	"s":     ChoiceStand,
}

// ReplayVocabulary lists the answers that start another round.
var ReplayVocabulary = map[string]Replay{
	"y":   ReplayContinue,
	"yes": ReplayContinue,
	"":    ReplayContinue,
}

func normalize(line string) string {
	return cases.Fold().String(strings.TrimSpace(line))
}

// ParseChoice maps a raw input line to a decision.
func ParseChoice(line string) Choice {
	if c, ok := ChoiceVocabulary[normalize(line)]; ok {
		return c
	}
	return ChoiceInvalid
}

// ParseReplay maps a raw input line to a replay answer. Unknown input quits.
func ParseReplay(line string) Replay {
	if r, ok := ReplayVocabulary[normalize(line)]; ok {
		return r
	}
	return ReplayQuit
}
