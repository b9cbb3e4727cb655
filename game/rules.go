package game

import (
	"github.com/ratel-online/uno/card"
	"github.com/ratel-online/uno/card/color"
	"github.com/ratel-online/uno/consts"
)

// Playable reports whether candidateCard may be placed on top. When the top card
// is Black its colour is the declared wildColor, not Black.
func Playable(candidateCard card.Card, top *card.Card, wildColor color.Color) bool {
	if top == nil {
		return false
	}
	if candidateCard.IsWild() {
		return true
	}
	if candidateCard.Value == top.Value {
		return true
	}
	if top.IsWild() {
		return candidateCard.Color == wildColor
	}
	return candidateCard.Color == top.Color
}

// Rules holds the per-game settings.
type Rules struct {
	StartingCards int
	TargetScore   int
}

func DefaultRules() Rules {
	return Rules{
		StartingCards: consts.StartingCards,
		TargetScore:   consts.TargetScore,
	}
}

func (r Rules) validate(players int) error {
	if players < consts.MinPlayers || players > consts.MaxPlayers {
		return consts.ErrorsGamePlayersInvalid
	}
	// at least nine cards must stay undealt so a non-black first card exists
	if r.StartingCards < 1 || r.StartingCards*players > consts.DeckSize-9 {
		return consts.ErrorsInputInvalid
	}
	if r.TargetScore < 1 {
		return consts.ErrorsInputInvalid
	}
	return nil
}
