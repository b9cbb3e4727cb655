package consts

import "time"

const (
	MinPlayers = 2
	MaxPlayers = 4

	DeckSize        = 108
	StartingCards   = 7
	TargetScore     = 500
	UnoPenaltyCards = 2

	BotContinueChance = 0.7
	BotDelay          = 1 * time.Second
)

type Error struct {
	Code int
	Msg  string
	Exit bool
}

func (e Error) Error() string {
	return e.Msg
}

func NewErr(code int, exit bool, msg string) Error {
	return Error{Code: code, Exit: exit, Msg: msg}
}

var (
	ErrorsInvalidMove        = NewErr(1, false, "That card cannot be played on the current top card. ")
	ErrorsEmptyReservoir     = NewErr(2, false, "Cannot draw, the deck and discard pile are exhausted. ")
	ErrorsIllegalUnoCall     = NewErr(3, false, "You can only call UNO when you have exactly one card left! ")
	ErrorsNotYourTurn        = NewErr(4, false, "It is not your turn. ")
	ErrorsCardIndex          = NewErr(5, false, "No card at that position. ")
	ErrorsColorRequired      = NewErr(6, false, "A wild card needs a color: red, green, blue or yellow. ")
	ErrorsRoundOver          = NewErr(7, false, "The round is already over. ")
	ErrorsAlreadyDrew        = NewErr(8, false, "You already drew a card this turn. ")
	ErrorsCannotPass         = NewErr(9, false, "You can only pass after drawing a playable card. ")
	ErrorsMustPlayDrawn      = NewErr(10, false, "Only the card you just drew may be played. ")
	ErrorsNoMissedUno        = NewErr(11, false, "Nobody forgot to call UNO. ")
	ErrorsGamePlayersInvalid = NewErr(12, true, "Game players invalid. ")
	ErrorsGameOver           = NewErr(13, false, "The game is over, start a new game. ")
	ErrorsPlayerInvalid      = NewErr(14, false, "Unknown player. ")
	ErrorsSessionInvalid     = NewErr(15, false, "Session invalid. ")
	ErrorsInputInvalid       = NewErr(16, false, "Input invalid. ")
	ErrorsConfigInvalid      = NewErr(17, true, "Config invalid. ")
	ErrorsStrategyInvalid    = NewErr(18, true, "Unknown bot strategy. ")
	ErrorsRoundInProgress    = NewErr(19, false, "The round is still being played. ")
)
