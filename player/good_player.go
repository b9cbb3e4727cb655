package player

import (
	"github.com/ratel-online/uno/card"
	"github.com/ratel-online/uno/card/color"
	"github.com/ratel-online/uno/game"
)

type goodPlayer struct {
	rand           *game.Rand
	continueChance float64
}

// NewGoodPlayer plays action cards first, then wild cards, then whatever matches.
func NewGoodPlayer(seed uint64, continueChance float64) Strategy {
	rng := game.NewRand(seed)
	return goodPlayer{rand: &rng, continueChance: continueChance}
}

func (p goodPlayer) Play(hand game.Hand, playable []int) int {
	for _, index := range playable {
		if hand[index].Value.IsAction() {
			return index
		}
	}
	for _, index := range playable {
		if hand[index].IsWild() {
			return index
		}
	}
	return playable[0]
}

func (p goodPlayer) PickColor(hand game.Hand) color.Color {
	colorCounts := make(map[color.Color]int)
	for _, handCard := range hand {
		if !handCard.IsWild() {
			colorCounts[handCard.Color]++
		}
	}

	mostFrequentColor := color.Colors[0]
	mostFrequentColorAmount := 0
	for _, availableColor := range color.Colors {
		if amount := colorCounts[availableColor]; amount > mostFrequentColorAmount {
			mostFrequentColorAmount = amount
			mostFrequentColor = availableColor
		}
	}
	return mostFrequentColor
}

func (p goodPlayer) PlayDrawn(drawn card.Card) bool {
	return p.rand.Float64() < p.continueChance
}
