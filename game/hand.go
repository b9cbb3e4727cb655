package game

import (
	"github.com/ratel-online/uno/card"
	"github.com/ratel-online/uno/card/color"
)

type Hand []card.Card

func (h Hand) Size() int {
	return len(h)
}

func (h Hand) Empty() bool {
	return len(h) == 0
}

// Add returns a new hand with cards appended; h is left untouched.
func (h Hand) Add(cards ...card.Card) Hand {
	hand := make(Hand, 0, len(h)+len(cards))
	hand = append(hand, h...)
	return append(hand, cards...)
}

// Remove returns a new hand without the card at index, keeping the order of the rest.
func (h Hand) Remove(index int) (Hand, card.Card) {
	removed := h[index]
	hand := make(Hand, 0, len(h)-1)
	hand = append(hand, h[:index]...)
	hand = append(hand, h[index+1:]...)
	return hand, removed
}

// PlayableIndexes lists, in hand order, the positions of cards that may go on top.
func (h Hand) PlayableIndexes(top *card.Card, wildColor color.Color) []int {
	var indexes []int
	for index, candidateCard := range h {
		if Playable(candidateCard, top, wildColor) {
			indexes = append(indexes, index)
		}
	}
	return indexes
}

func (h Hand) Points() int {
	points := 0
	for _, c := range h {
		points += CardPoints(c)
	}
	return points
}

func (h Hand) clone() Hand {
	return append(Hand(nil), h...)
}
