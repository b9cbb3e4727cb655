package game

import (
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/uno/card/color"
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/event"
)

// Game is a session of rounds played until one seat reaches the target score.
// It keeps the current State and hands every event to its listeners.
type Game struct {
	names  []string
	rules  Rules
	seed   uint64
	rand   Rand
	state  State
	rounds int
	events *event.Emitter
}

func New(names []string, rules Rules, seed uint64) (*Game, error) {
	scores, err := StartGame(len(names))
	if err != nil {
		return nil, err
	}
	if err = rules.validate(len(names)); err != nil {
		return nil, err
	}
	g := &Game{
		names:  append([]string(nil), names...),
		rules:  rules,
		seed:   seed,
		events: event.NewEmitter(),
	}
	g.reset(scores)
	return g, nil
}

func (g *Game) reset(scores Scores) {
	g.rand = NewRand(g.seed)
	g.rounds = 0
	g.state = State{
		Winner:     -1,
		GameWinner: -1,
		Scores:     scores,
		Rules:      g.rules,
	}
}

func (g *Game) Events() *event.Emitter {
	return g.events
}

func (g *Game) Names() []string {
	return g.names
}

func (g *Game) Name(seat int) string {
	if seat < 0 || seat >= len(g.names) {
		return "?"
	}
	return g.names[seat]
}

func (g *Game) State() State {
	return g.state
}

func (g *Game) Scores() Scores {
	return append(Scores(nil), g.state.Scores...)
}

func (g *Game) Rounds() int {
	return g.rounds
}

func (g *Game) Started() bool {
	return g.rounds > 0
}

// NextRound deals a new round, keeping the scores.
func (g *Game) NextRound() error {
	if g.state.GameOver() {
		return consts.ErrorsGameOver
	}
	if g.Started() && !g.state.RoundOver() {
		return consts.ErrorsRoundInProgress
	}
	state, events, err := StartRound(g.state.Scores, g.rules, NewRand(g.rand.Uint64()))
	if err != nil {
		return err
	}
	g.rounds++
	g.state = state
	g.events.Emit(events...)
	return nil
}

// NewGame zeroes the scores. The next round is dealt by NextRound.
func (g *Game) NewGame() {
	g.seed = g.rand.Uint64()
	g.reset(make(Scores, len(g.names)))
}

func (g *Game) Play(player, cardIndex int, selectedColor color.Color) error {
	return g.Apply(func(s State) (State, []event.Event, error) {
		return ApplyPlay(s, player, cardIndex, selectedColor)
	})
}

func (g *Game) Draw(player int) error {
	return g.Apply(func(s State) (State, []event.Event, error) {
		return ApplyDraw(s, player)
	})
}

func (g *Game) Pass(player int) error {
	return g.Apply(func(s State) (State, []event.Event, error) {
		return ApplyPass(s, player)
	})
}

func (g *Game) CallUno(player int) error {
	return g.Apply(func(s State) (State, []event.Event, error) {
		return DeclareUno(s, player)
	})
}

func (g *Game) CatchUno(challenger, target int) error {
	return g.Apply(func(s State) (State, []event.Event, error) {
		return CatchMissedUno(s, challenger, target)
	})
}

// Apply runs a transition against the current state and commits it when it
// succeeds.
func (g *Game) Apply(transition func(State) (State, []event.Event, error)) error {
	if !g.Started() {
		return consts.ErrorsRoundOver
	}
	next, events, err := transition(g.state)
	if err != nil {
		return err
	}
	g.state = next
	g.events.Emit(events...)
	g.logResults(events)
	return nil
}

func (g *Game) logResults(events []event.Event) {
	for _, ev := range events {
		switch payload := ev.(type) {
		case event.RoundWonPayload:
			log.Infof("round %d won by %s, +%d points, score %d\n", g.rounds, g.Name(payload.Player), payload.Points, payload.Score)
		case event.GameWonPayload:
			log.Infof("game won by %s with %d points after %d rounds\n", g.Name(payload.Player), payload.Score, g.rounds)
		case event.ReservoirEmptyPayload:
			log.Infof("round %d: %s drew %d of %d cards, reservoir empty\n", g.rounds, g.Name(payload.Player), payload.Drawn, payload.Wanted)
		}
	}
}
