package player_test

import (
	"testing"

	"github.com/ratel-online/uno/card"
	"github.com/ratel-online/uno/card/color"
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/event"
	"github.com/ratel-online/uno/game"
	"github.com/ratel-online/uno/player"
	"github.com/stretchr/testify/require"
)

func newRound(pile game.Pile, deck game.Deck, hands ...game.Hand) game.State {
	players := len(hands)
	return game.State{
		Deck:       deck,
		Hands:      hands,
		Pile:       pile,
		Turn:       game.NewCycler(players),
		UnoCalled:  make([]bool, players),
		Winner:     -1,
		GameWinner: -1,
		Scores:     make(game.Scores, players),
		Rules:      game.DefaultRules(),
	}
}

func TestBotPlaysPreferredCard(t *testing.T) {
	bot := player.Bot{Seat: 0, Strategy: player.NewGoodPlayer(1, 1)}
	s := newRound(
		game.Pile{card.NewNumberCard(color.Red, 2)},
		game.Deck{card.NewNumberCard(color.Blue, 1)},
		game.Hand{card.NewNumberCard(color.Red, 3), card.NewSkipCard(color.Red), card.NewNumberCard(color.Green, 9)},
		game.Hand{card.NewNumberCard(color.Blue, 3)},
	)

	next, events, err := bot.TakeTurn(s)
	require.NoError(t, err)
	require.Equal(t, card.NewSkipCard(color.Red), *next.Top())
	require.Equal(t, 0, next.Current())
	require.Equal(t, 1, event.Count(events, event.KindTurnSkipped))
}

func TestBotPicksColorFromRemainingHand(t *testing.T) {
	bot := player.Bot{Seat: 0, Strategy: player.NewGoodPlayer(1, 1)}
	s := newRound(
		game.Pile{card.NewNumberCard(color.Red, 2)},
		game.Deck{card.NewNumberCard(color.Blue, 1)},
		game.Hand{card.NewWildCard(), card.NewNumberCard(color.Yellow, 3), card.NewNumberCard(color.Yellow, 9)},
		game.Hand{card.NewNumberCard(color.Blue, 3)},
	)

	next, _, err := bot.TakeTurn(s)
	require.NoError(t, err)
	require.Equal(t, card.NewWildCard(), *next.Top())
	require.Equal(t, color.Yellow, next.WildColor)
}

func TestBotCallsUno(t *testing.T) {
	bot := player.Bot{Seat: 0, Strategy: player.NewGoodPlayer(1, 1)}
	s := newRound(
		game.Pile{card.NewNumberCard(color.Red, 2)},
		game.Deck{card.NewNumberCard(color.Blue, 1)},
		game.Hand{card.NewNumberCard(color.Red, 3), card.NewNumberCard(color.Green, 9)},
		game.Hand{card.NewNumberCard(color.Blue, 3)},
	)

	next, events, err := bot.TakeTurn(s)
	require.NoError(t, err)
	require.True(t, next.UnoCalled[0])
	require.Equal(t, []event.Kind{event.KindCardPlayed, event.KindUnoCalled}, kindsOf(events))
}

func TestBotDrawsAndPlays(t *testing.T) {
	s := newRound(
		game.Pile{card.NewNumberCard(color.Red, 2)},
		game.Deck{card.NewNumberCard(color.Blue, 1), card.NewNumberCard(color.Red, 5)},
		game.Hand{card.NewNumberCard(color.Blue, 3), card.NewNumberCard(color.Green, 9)},
		game.Hand{card.NewNumberCard(color.Blue, 3)},
	)

	t.Run("continues", func(t *testing.T) {
		bot := player.Bot{Seat: 0, Strategy: player.NewGoodPlayer(1, 1)}
		next, events, err := bot.TakeTurn(s)
		require.NoError(t, err)
		require.Equal(t, card.NewNumberCard(color.Red, 5), *next.Top())
		require.Equal(t, 1, next.Current())
		require.False(t, next.Drawn)
		require.Equal(t, []event.Kind{
			event.KindCardsDrawn,
			event.KindDrawnCardPlayable,
			event.KindCardPlayed,
		}, kindsOf(events))
	})

	t.Run("keeps_the_card", func(t *testing.T) {
		bot := player.Bot{Seat: 0, Strategy: player.NewGoodPlayer(1, 0)}
		next, events, err := bot.TakeTurn(s)
		require.NoError(t, err)
		require.Len(t, next.Hands[0], 3)
		require.Equal(t, 1, next.Current())
		require.Equal(t, []event.Kind{
			event.KindCardsDrawn,
			event.KindDrawnCardPlayable,
			event.KindPlayerPassed,
		}, kindsOf(events))
	})
}

func TestBotDrawsAndPasses(t *testing.T) {
	bot := player.Bot{Seat: 0, Strategy: player.NewGoodPlayer(1, 1)}
	s := newRound(
		game.Pile{card.NewNumberCard(color.Red, 2)},
		game.Deck{card.NewNumberCard(color.Blue, 1), card.NewNumberCard(color.Blue, 5)},
		game.Hand{card.NewNumberCard(color.Blue, 3)},
		game.Hand{card.NewNumberCard(color.Blue, 3)},
	)

	next, events, err := bot.TakeTurn(s)
	require.NoError(t, err)
	require.Len(t, next.Hands[0], 2)
	require.Equal(t, 1, next.Current())
	require.Equal(t, []event.Kind{event.KindCardsDrawn, event.KindPlayerPassed}, kindsOf(events))
}

func TestBotErrors(t *testing.T) {
	bot := player.Bot{Seat: 1, Strategy: player.NewNaivePlayer(1)}
	s := newRound(
		game.Pile{card.NewNumberCard(color.Red, 2)},
		nil,
		game.Hand{card.NewNumberCard(color.Blue, 3)},
		game.Hand{card.NewNumberCard(color.Blue, 4)},
	)

	next, _, err := bot.TakeTurn(s)
	require.Equal(t, consts.ErrorsNotYourTurn, err)
	require.Equal(t, s, next)

	bot.Seat = 0
	next, _, err = bot.TakeTurn(s)
	require.Equal(t, consts.ErrorsEmptyReservoir, err)
	require.Equal(t, s, next)
}

func TestBotsFinishRound(t *testing.T) {
	for seed := uint64(1); seed <= 10; seed++ {
		_, bots, err := player.CreatePlayers(4, "You", player.StrategyGood, seed, consts.BotContinueChance)
		require.NoError(t, err)
		seats := append([]player.Bot{{Seat: 0, Strategy: player.NewNaivePlayer(seed)}}, bots...)

		s, _, err := game.StartRound(make(game.Scores, 4), game.DefaultRules(), game.NewRand(seed))
		require.NoError(t, err)
		for step := 0; step < 5000 && !s.RoundOver(); step++ {
			s, _, err = seats[s.Current()].TakeTurn(s)
			if err == consts.ErrorsEmptyReservoir {
				break
			}
			require.NoError(t, err)
			require.Equal(t, consts.DeckSize, s.CardCount())
		}
	}
}

func kindsOf(events []event.Event) []event.Kind {
	result := make([]event.Kind, 0, len(events))
	for _, ev := range events {
		result = append(result, ev.Kind())
	}
	return result
}
