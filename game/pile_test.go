package game_test

import (
	"testing"

	"github.com/ratel-online/uno/card"
	"github.com/ratel-online/uno/card/color"
	"github.com/ratel-online/uno/game"
	"github.com/stretchr/testify/require"
)

func TestTop(t *testing.T) {
	require.Nil(t, game.Pile{}.Top())

	pile := game.Pile{
		card.NewNumberCard(color.Blue, 5),
		card.NewNumberCard(color.Green, 5),
	}
	require.Equal(t, card.NewNumberCard(color.Green, 5), *pile.Top())
}

func TestReservoir(t *testing.T) {
	require.Equal(t, 0, game.Pile{card.NewWildCard()}.Reservoir())
	require.Equal(t, 2, game.Pile{
		card.NewNumberCard(color.Blue, 5),
		card.NewNumberCard(color.Green, 5),
		card.NewNumberCard(color.Green, 7),
	}.Reservoir())
}
