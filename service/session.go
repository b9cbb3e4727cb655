package service

import (
	"sync/atomic"
	"time"

	"github.com/ratel-online/uno/game"
	"github.com/ratel-online/uno/player"
)

// Session is one game between the human seat and its bots.
type Session struct {
	ID      string
	Game    *game.Game
	Bots    []player.Bot
	Human   int
	Seed    uint64
	Created time.Time

	lastActive int64
}

func (s *Session) Touch() {
	atomic.StoreInt64(&s.lastActive, time.Now().UnixNano())
}

func (s *Session) LastActive() time.Time {
	return time.Unix(0, atomic.LoadInt64(&s.lastActive))
}

func (s *Session) Bot(seat int) (player.Bot, bool) {
	for _, bot := range s.Bots {
		if bot.Seat == seat {
			return bot, true
		}
	}
	return player.Bot{}, false
}

// HumanTurn reports whether the round is waiting for the human seat.
func (s *Session) HumanTurn() bool {
	state := s.Game.State()
	return !state.RoundOver() && state.Current() == s.Human
}

// PlayBot lets the bot in turn take its turn. It returns false when the seat
// in turn has no bot.
func (s *Session) PlayBot() (bool, error) {
	state := s.Game.State()
	if state.RoundOver() {
		return false, nil
	}
	bot, ok := s.Bot(state.Current())
	if !ok {
		return false, nil
	}
	s.Touch()
	return true, s.Game.Apply(bot.TakeTurn)
}
