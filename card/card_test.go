package card_test

import (
	"testing"

	"github.com/ratel-online/uno/card"
	"github.com/ratel-online/uno/card/action"
	"github.com/ratel-online/uno/card/color"
	"github.com/stretchr/testify/require"
)

func TestPoints(t *testing.T) {
	scenarios := []struct {
		description string
		card        card.Card
		expected    int
	}{
		{description: "zero", card: card.NewNumberCard(color.Red, 0), expected: 0},
		{description: "seven", card: card.NewNumberCard(color.Blue, 7), expected: 7},
		{description: "skip", card: card.NewSkipCard(color.Green), expected: 20},
		{description: "reverse", card: card.NewReverseCard(color.Yellow), expected: 20},
		{description: "draw_two", card: card.NewDrawTwoCard(color.Red), expected: 20},
		{description: "wild", card: card.NewWildCard(), expected: 50},
		{description: "wild_draw_four", card: card.NewWildDrawFourCard(), expected: 50},
	}

	for _, scenario := range scenarios {
		t.Run(scenario.description, func(t *testing.T) {
			require.Equal(t, scenario.expected, scenario.card.Points())
		})
	}
}

func TestActions(t *testing.T) {
	require.Empty(t, card.NewNumberCard(color.Red, 4).Actions())
	require.Equal(t, []action.Action{action.NewSkipTurnAction()}, card.NewSkipCard(color.Red).Actions())
	require.Equal(t, []action.Action{action.NewReverseTurnsAction()}, card.NewReverseCard(color.Red).Actions())
	require.Equal(t, []action.Action{
		action.NewDrawCardsAction(2),
		action.NewSkipTurnAction(),
	}, card.NewDrawTwoCard(color.Red).Actions())
	require.Equal(t, []action.Action{action.NewPickColorAction()}, card.NewWildCard().Actions())
	require.Equal(t, []action.Action{
		action.NewPickColorAction(),
		action.NewDrawCardsAction(4),
		action.NewSkipTurnAction(),
	}, card.NewWildDrawFourCard().Actions())
}

func TestWildCardsAreBlack(t *testing.T) {
	require.True(t, card.NewWildCard().IsWild())
	require.True(t, card.NewWildDrawFourCard().IsWild())
	require.Equal(t, color.Black, card.NewWildDrawFourCard().Color)
	require.False(t, card.NewDrawTwoCard(color.Blue).IsWild())
}

func TestString(t *testing.T) {
	require.Equal(t, "Red 7", card.NewNumberCard(color.Red, 7).String())
	require.Equal(t, "Green Draw Two", card.NewDrawTwoCard(color.Green).String())
	require.Equal(t, "Black Wild Draw Four", card.NewWildDrawFourCard().String())
}

func TestValueKinds(t *testing.T) {
	require.True(t, card.Nine.IsNumber())
	require.False(t, card.Skip.IsNumber())
	require.True(t, card.Reverse.IsAction())
	require.False(t, card.Wild.IsAction())
	require.True(t, card.WildDrawFour.IsWild())
	require.Equal(t, "Value(99)", card.Value(99).String())
}
