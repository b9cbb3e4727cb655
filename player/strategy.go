package player

import (
	"github.com/ratel-online/uno/card"
	"github.com/ratel-online/uno/card/color"
	"github.com/ratel-online/uno/game"
)

// Strategy decides the moves of a computer controlled seat.
type Strategy interface {
	// Play picks one of the playable positions of hand.
	Play(hand game.Hand, playable []int) int
	// PickColor names the colour for a wild card; hand no longer holds that card.
	PickColor(hand game.Hand) color.Color
	// PlayDrawn reports whether a playable card that was just drawn is played at once.
	PlayDrawn(drawn card.Card) bool
}
