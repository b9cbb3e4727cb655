package card

import (
	"fmt"

	"github.com/ratel-online/uno/card/action"
	"github.com/ratel-online/uno/card/color"
)

type Value uint8

const (
	Zero Value = iota
	One
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Skip
	Reverse
	DrawTwo
	Wild
	WildDrawFour
)

var valueNames = map[Value]string{
	Skip:         "Skip",
	Reverse:      "Reverse",
	DrawTwo:      "Draw Two",
	Wild:         "Wild",
	WildDrawFour: "Wild Draw Four",
}

func (v Value) String() string {
	if v.IsNumber() {
		return fmt.Sprintf("%d", uint8(v))
	}
	if name, ok := valueNames[v]; ok {
		return name
	}
	return fmt.Sprintf("Value(%d)", uint8(v))
}

func (v Value) IsNumber() bool {
	return v <= Nine
}

// IsAction reports whether v is one of the coloured action values.
func (v Value) IsAction() bool {
	return v == Skip || v == Reverse || v == DrawTwo
}

func (v Value) IsWild() bool {
	return v == Wild || v == WildDrawFour
}

// Points is the value a card scores for the round winner when left in a hand.
func (v Value) Points() int {
	switch {
	case v.IsNumber():
		return int(v)
	case v.IsAction():
		return 20
	case v.IsWild():
		return 50
	default:
		return 0
	}
}

// Card is an immutable UNO card. Wild cards are always Black; the colour declared
// for them is tracked by the game state, not by the card.
type Card struct {
	Color color.Color
	Value Value
}

func New(c color.Color, v Value) Card {
	return Card{Color: c, Value: v}
}

func NewNumberCard(c color.Color, number int) Card {
	return Card{Color: c, Value: Value(number)}
}

func NewSkipCard(c color.Color) Card {
	return Card{Color: c, Value: Skip}
}

func NewReverseCard(c color.Color) Card {
	return Card{Color: c, Value: Reverse}
}

func NewDrawTwoCard(c color.Color) Card {
	return Card{Color: c, Value: DrawTwo}
}

func NewWildCard() Card {
	return Card{Color: color.Black, Value: Wild}
}

func NewWildDrawFourCard() Card {
	return Card{Color: color.Black, Value: WildDrawFour}
}

func (c Card) IsWild() bool {
	return c.Color == color.Black
}

func (c Card) Points() int {
	return c.Value.Points()
}

// Actions lists the effects of playing c, in the order they are resolved.
func (c Card) Actions() []action.Action {
	switch c.Value {
	case Skip:
		return []action.Action{action.NewSkipTurnAction()}
	case Reverse:
		return []action.Action{action.NewReverseTurnsAction()}
	case DrawTwo:
		return []action.Action{
			action.NewDrawCardsAction(2),
			action.NewSkipTurnAction(),
		}
	case Wild:
		return []action.Action{action.NewPickColorAction()}
	case WildDrawFour:
		return []action.Action{
			action.NewPickColorAction(),
			action.NewDrawCardsAction(4),
			action.NewSkipTurnAction(),
		}
	default:
		return []action.Action{}
	}
}

func (c Card) String() string {
	return fmt.Sprintf("%s %s", c.Color, c.Value)
}

// Paint renders the card label in its terminal colour.
func (c Card) Paint() string {
	return c.Color.Paintf("[%s]", c.String())
}
