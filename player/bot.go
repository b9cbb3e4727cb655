package player

import (
	"github.com/ratel-online/uno/card/color"
	"github.com/ratel-online/uno/event"
	"github.com/ratel-online/uno/game"
)

// Bot drives one seat with a Strategy.
type Bot struct {
	Seat     int
	Name     string
	Strategy Strategy
}

// TakeTurn plays a whole turn: a matching card if there is one, otherwise a draw
// followed by playing or keeping the drawn card. A bot left with one card calls UNO.
func (b Bot) TakeTurn(s game.State) (game.State, []event.Event, error) {
	if !s.Drawn {
		if playable := s.Playable(b.Seat); len(playable) > 0 {
			return b.play(s, playable)
		}
		next, events, err := game.ApplyDraw(s, b.Seat)
		if err != nil || !next.Drawn {
			return next, events, err
		}
		resolved, resolveEvents, err := b.resolveDrawn(next)
		if err != nil {
			return s, nil, err
		}
		return resolved, append(events, resolveEvents...), nil
	}
	return b.resolveDrawn(s)
}

func (b Bot) resolveDrawn(s game.State) (game.State, []event.Event, error) {
	hand := s.Hands[b.Seat]
	last := len(hand) - 1
	if b.Strategy.PlayDrawn(hand[last]) {
		return b.play(s, []int{last})
	}
	return game.ApplyPass(s, b.Seat)
}

func (b Bot) play(s game.State, playable []int) (game.State, []event.Event, error) {
	hand := s.Hands[b.Seat]
	index := b.Strategy.Play(hand, playable)
	selectedColor := color.None
	if hand[index].IsWild() {
		remaining, _ := hand.Remove(index)
		selectedColor = b.Strategy.PickColor(remaining)
	}

	next, events, err := game.ApplyPlay(s, b.Seat, index, selectedColor)
	if err != nil {
		return s, nil, err
	}
	if next.RoundOver() || len(next.Hands[b.Seat]) != 1 {
		return next, events, nil
	}
	called, unoEvents, err := game.DeclareUno(next, b.Seat)
	if err != nil {
		return next, events, nil
	}
	return called, append(events, unoEvents...), nil
}
