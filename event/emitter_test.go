package event_test

import (
	"testing"

	"github.com/ratel-online/uno/card"
	"github.com/ratel-online/uno/card/color"
	"github.com/ratel-online/uno/event"
	"github.com/stretchr/testify/require"
)

func TestEmit(t *testing.T) {
	listenerOne := event.NewDummyListener()
	listenerTwo := event.NewDummyListener()

	emitter := event.NewEmitter()
	emitter.AddListener(listenerOne)
	emitter.AddListener(listenerTwo)

	events := []event.Event{
		event.CardPlayedPayload{
			Player: 0,
			Card:   card.NewWildCard(),
		},
		event.ColorPickedPayload{
			Player: 0,
			Color:  color.Green,
		},
		event.PlayerPassedPayload{
			Player: 1,
		},
	}

	emitter.Emit(events...)

	require.Equal(t, events, listenerOne.ReceivedEvents())
	require.Equal(t, events, listenerTwo.ReceivedEvents())
}

func TestListenerFunc(t *testing.T) {
	var kinds []event.Kind
	emitter := event.NewEmitter()
	emitter.AddListener(event.ListenerFunc(func(e event.Event) {
		kinds = append(kinds, e.Kind())
	}))

	emitter.Emit(event.UnoCalledPayload{Player: 1}, event.RoundWonPayload{Player: 1, Points: 12, Score: 12})

	require.Equal(t, []event.Kind{event.KindUnoCalled, event.KindRoundWon}, kinds)
}

func TestFindAndCount(t *testing.T) {
	events := []event.Event{
		event.TurnSkippedPayload{Player: 1},
		event.CardsDrawnPayload{Player: 1, Cards: []card.Card{card.NewNumberCard(color.Red, 1)}},
		event.TurnSkippedPayload{Player: 2},
	}

	found, ok := event.Find(events, event.KindTurnSkipped)
	require.True(t, ok)
	require.Equal(t, event.TurnSkippedPayload{Player: 1}, found)

	_, ok = event.Find(events, event.KindGameWon)
	require.False(t, ok)

	require.Equal(t, 2, event.Count(events, event.KindTurnSkipped))
	require.Equal(t, 0, event.Count(events, event.KindUnoPenalty))
}
