package game

import (
	"github.com/ratel-online/uno/card"
)

// Pile is the discard pile; its last card is the one in play.
type Pile []card.Card

// Top returns the card in play, or nil before anything was discarded.
func (p Pile) Top() *card.Card {
	pileSize := len(p)
	if pileSize == 0 {
		return nil
	}
	top := p[pileSize-1]
	return &top
}

// Reservoir is the number of pile cards that can be shuffled back into the deck.
func (p Pile) Reservoir() int {
	if len(p) == 0 {
		return 0
	}
	return len(p) - 1
}
