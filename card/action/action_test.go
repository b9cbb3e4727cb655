package action_test

import (
	"testing"

	"github.com/ratel-online/uno/card/action"
	"github.com/stretchr/testify/require"
)

func TestDrawCardsAction(t *testing.T) {
	drawFour := action.NewDrawCardsAction(4).(action.DrawCardsAction)
	require.Equal(t, 4, drawFour.Amount())
	require.Equal(t, "draw 4", drawFour.String())
}

func TestActionsAreComparable(t *testing.T) {
	require.Equal(t, action.NewSkipTurnAction(), action.NewSkipTurnAction())
	require.NotEqual(t, action.NewDrawCardsAction(2), action.NewDrawCardsAction(4))
}
