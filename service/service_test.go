package service_test

import (
	"errors"
	"testing"
	"time"

	"github.com/ratel-online/uno/config"
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/service"
	"github.com/stretchr/testify/require"
)

func newConfig(players int, seed uint64) config.Config {
	cfg := config.Default()
	cfg.Players = players
	cfg.Seed = seed
	return cfg
}

func TestCreate(t *testing.T) {
	session, err := service.Create(newConfig(3, 11))
	require.NoError(t, err)
	defer service.Delete(session.ID)

	require.NotEmpty(t, session.ID)
	require.Equal(t, uint64(11), session.Seed)
	require.Len(t, session.Bots, 2)
	require.Equal(t, "You", session.Game.Name(0))
	require.False(t, session.Game.Started())

	found, err := service.Get(session.ID)
	require.NoError(t, err)
	require.Same(t, session, found)
	require.Contains(t, service.List(), session)
}

func TestCreateInvalid(t *testing.T) {
	_, err := service.Create(newConfig(6, 1))
	require.True(t, errors.Is(err, consts.ErrorsConfigInvalid))
}

func TestDelete(t *testing.T) {
	session, err := service.Create(newConfig(2, 3))
	require.NoError(t, err)

	service.Delete(session.ID)
	_, err = service.Get(session.ID)
	require.Equal(t, consts.ErrorsSessionInvalid, err)
	require.NotContains(t, service.List(), session)

	service.Delete(session.ID)
}

func TestPlayBot(t *testing.T) {
	session, err := service.Create(newConfig(2, 5))
	require.NoError(t, err)
	defer service.Delete(session.ID)

	played, err := session.PlayBot()
	require.NoError(t, err)
	require.False(t, played, "nothing dealt yet")

	require.NoError(t, session.Game.NextRound())
	require.True(t, session.HumanTurn())
	played, err = session.PlayBot()
	require.NoError(t, err)
	require.False(t, played)

	require.NoError(t, session.Game.Draw(0))
	if session.Game.State().Drawn {
		require.NoError(t, session.Game.Pass(0))
	}
	for !session.HumanTurn() && !session.Game.State().RoundOver() {
		played, err = session.PlayBot()
		require.NoError(t, err)
		require.True(t, played)
	}
}

func TestSweep(t *testing.T) {
	idle, err := service.Create(newConfig(2, 7))
	require.NoError(t, err)
	defer service.Delete(idle.ID)
	active, err := service.Create(newConfig(2, 8))
	require.NoError(t, err)
	defer service.Delete(active.ID)

	later := time.Now().Add(time.Hour)
	active.Touch()
	require.GreaterOrEqual(t, service.Sweep(2*time.Hour, later), 0)
	_, err = service.Get(idle.ID)
	require.NoError(t, err)

	require.GreaterOrEqual(t, service.Sweep(30*time.Minute, later), 2)
	_, err = service.Get(idle.ID)
	require.Equal(t, consts.ErrorsSessionInvalid, err)
	_, err = service.Get(active.ID)
	require.Equal(t, consts.ErrorsSessionInvalid, err)
}

func TestBotLookup(t *testing.T) {
	session, err := service.Create(newConfig(4, 9))
	require.NoError(t, err)
	defer service.Delete(session.ID)

	_, ok := session.Bot(0)
	require.False(t, ok)
	for seat := 1; seat < 4; seat++ {
		bot, ok := session.Bot(seat)
		require.True(t, ok)
		require.Equal(t, seat, bot.Seat)
		require.Equal(t, bot.Name, session.Game.Name(seat))
	}
}
