package event

import (
	"github.com/ratel-online/uno/card"
	"github.com/ratel-online/uno/card/color"
)

// Event is a notification produced by a game transition for the presentation layer.
type Event interface {
	Kind() Kind
}

type Kind int

const (
	_ Kind = iota
	KindFirstCardPlayed
	KindCardPlayed
	KindColorPicked
	KindTurnSkipped
	KindTurnOrderReversed
	KindCardsDrawn
	KindDrawnCardPlayable
	KindDeckReshuffled
	KindReservoirEmpty
	KindPlayerPassed
	KindUnoCalled
	KindUnoPenalty
	KindRoundWon
	KindGameWon
)

type DrawReason int

const (
	ReasonDrawAction DrawReason = iota
	ReasonDrawTwo
	ReasonWildDrawFour
	ReasonUnoPenalty
)

type FirstCardPlayedPayload struct {
	Card card.Card
}

type CardPlayedPayload struct {
	Player int
	Card   card.Card
}

type ColorPickedPayload struct {
	Player int
	Color  color.Color
}

type TurnSkippedPayload struct {
	Player int
}

type TurnOrderReversedPayload struct {
	Direction int
}

type CardsDrawnPayload struct {
	Player int
	Cards  []card.Card
	Reason DrawReason
}

type DrawnCardPlayablePayload struct {
	Player int
	Card   card.Card
}

type DeckReshuffledPayload struct {
	Cards int
}

// ReservoirEmptyPayload reports a forced draw that came up short.
type ReservoirEmptyPayload struct {
	Player int
	Wanted int
	Drawn  int
}

type PlayerPassedPayload struct {
	Player int
}

type UnoCalledPayload struct {
	Player int
}

type UnoPenaltyPayload struct {
	Challenger int
	Player     int
	Cards      int
}

type RoundWonPayload struct {
	Player int
	Points int
	Score  int
}

type GameWonPayload struct {
	Player int
	Score  int
}

func (FirstCardPlayedPayload) Kind() Kind   { return KindFirstCardPlayed }
func (CardPlayedPayload) Kind() Kind        { return KindCardPlayed }
func (ColorPickedPayload) Kind() Kind       { return KindColorPicked }
func (TurnSkippedPayload) Kind() Kind       { return KindTurnSkipped }
func (TurnOrderReversedPayload) Kind() Kind { return KindTurnOrderReversed }
func (CardsDrawnPayload) Kind() Kind        { return KindCardsDrawn }
func (DrawnCardPlayablePayload) Kind() Kind { return KindDrawnCardPlayable }
func (DeckReshuffledPayload) Kind() Kind    { return KindDeckReshuffled }
func (ReservoirEmptyPayload) Kind() Kind    { return KindReservoirEmpty }
func (PlayerPassedPayload) Kind() Kind      { return KindPlayerPassed }
func (UnoCalledPayload) Kind() Kind         { return KindUnoCalled }
func (UnoPenaltyPayload) Kind() Kind        { return KindUnoPenalty }
func (RoundWonPayload) Kind() Kind          { return KindRoundWon }
func (GameWonPayload) Kind() Kind           { return KindGameWon }
