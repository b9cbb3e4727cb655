package game

import (
	"github.com/ratel-online/uno/card"
	"github.com/ratel-online/uno/card/color"
	"github.com/ratel-online/uno/consts"
)

// Deck is the draw pile. Cards are drawn from the end.
type Deck []card.Card

// NewDeck returns the 108 standard cards in a uniformly random order.
func NewDeck(rng *Rand) Deck {
	deck := Deck(StandardCards())
	shuffleCards(deck, rng)
	return deck
}

// StandardCards lists the 108 cards of a deck in a fixed order.
func StandardCards() []card.Card {
	cards := make([]card.Card, 0, consts.DeckSize)
	for _, cardColor := range color.Colors {
		cards = append(cards, createColorCards(cardColor)...)
	}
	cards = append(cards, createBlackCards()...)
	return cards
}

func createColorCards(cardColor color.Color) []card.Card {
	zeroCard := card.NewNumberCard(cardColor, 0)
	skipCard := card.NewSkipCard(cardColor)
	reverseCard := card.NewReverseCard(cardColor)
	drawTwoCard := card.NewDrawTwoCard(cardColor)

	cards := []card.Card{
		zeroCard,
		skipCard, skipCard,
		reverseCard, reverseCard,
		drawTwoCard, drawTwoCard,
	}

	for number := 1; number <= 9; number++ {
		numberCard := card.NewNumberCard(cardColor, number)
		cards = append(cards, numberCard, numberCard)
	}

	return cards
}

func createBlackCards() []card.Card {
	wildCard := card.NewWildCard()
	wildDrawFourCard := card.NewWildDrawFourCard()

	return []card.Card{
		wildCard, wildCard, wildCard, wildCard,
		wildDrawFourCard, wildDrawFourCard, wildDrawFourCard, wildDrawFourCard,
	}
}

func shuffleCards(cards []card.Card, rng *Rand) {
	rng.Shuffle(len(cards), func(i, j int) { cards[i], cards[j] = cards[j], cards[i] })
}

func (d Deck) Len() int {
	return len(d)
}

// Pop removes the last card.
func (d Deck) Pop() (Deck, card.Card) {
	last := len(d) - 1
	return d[:last], d[last]
}
