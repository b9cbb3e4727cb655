package service

import (
	"sort"
	"time"

	"github.com/awesome-cap/hashmap"
	"github.com/google/uuid"
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/util/async"
	"github.com/ratel-online/uno/config"
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/game"
	"github.com/ratel-online/uno/player"
)

var sessions = hashmap.New()

// Create seats the configured players and registers a new session. No round is
// dealt yet.
func Create(cfg config.Config) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	seed := cfg.GameSeed()
	rng := game.NewRand(seed)
	names, bots, err := player.CreatePlayers(cfg.Players, cfg.PlayerName, cfg.Bot, rng.Uint64(), cfg.BotContinue)
	if err != nil {
		return nil, err
	}
	g, err := game.New(names, cfg.Rules(), rng.Uint64())
	if err != nil {
		return nil, err
	}

	session := &Session{
		ID:      uuid.New().String(),
		Game:    g,
		Bots:    bots,
		Human:   0,
		Seed:    seed,
		Created: time.Now(),
	}
	session.Touch()
	sessions.Set(session.ID, session)
	log.Infof("session %s created, players %v, seed %d\n", session.ID, names, seed)
	return session, nil
}

func Get(id string) (*Session, error) {
	if v, ok := sessions.Get(id); ok {
		return v.(*Session), nil
	}
	return nil, consts.ErrorsSessionInvalid
}

func Delete(id string) {
	if _, ok := sessions.Get(id); ok {
		sessions.Del(id)
		log.Infof("session %s removed.\n", id)
	}
}

func List() []*Session {
	list := make([]*Session, 0)
	sessions.Foreach(func(e *hashmap.Entry) {
		list = append(list, e.Value().(*Session))
	})
	sort.Slice(list, func(i, j int) bool {
		if list[i].Created.Equal(list[j].Created) {
			return list[i].ID < list[j].ID
		}
		return list[i].Created.Before(list[j].Created)
	})
	return list
}

// Sweep removes the sessions idle for longer than ttl and returns how many went.
func Sweep(ttl time.Duration, now time.Time) int {
	removed := 0
	for _, session := range List() {
		if now.Sub(session.LastActive()) > ttl {
			sessions.Del(session.ID)
			log.Infof("session %s is idle for %s, removed.\n", session.ID, ttl)
			removed++
		}
	}
	return removed
}

func StartSweeper(interval, ttl time.Duration) {
	async.Async(func() {
		for {
			time.Sleep(interval)
			Sweep(ttl, time.Now())
		}
	})
}
