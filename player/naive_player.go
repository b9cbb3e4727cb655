package player

import (
	"github.com/ratel-online/uno/card"
	"github.com/ratel-online/uno/card/color"
	"github.com/ratel-online/uno/game"
)

type naivePlayer struct {
	rand *game.Rand
}

// NewNaivePlayer plays the first card that matches and names a random colour.
func NewNaivePlayer(seed uint64) Strategy {
	rng := game.NewRand(seed)
	return naivePlayer{rand: &rng}
}

func (p naivePlayer) PickColor(hand game.Hand) color.Color {
	return color.Colors[p.rand.Intn(len(color.Colors))]
}

func (p naivePlayer) Play(hand game.Hand, playable []int) int {
	return playable[0]
}

func (p naivePlayer) PlayDrawn(drawn card.Card) bool {
	return true
}
