package game

import (
	"github.com/ratel-online/uno/card"
	"github.com/ratel-online/uno/card/action"
	"github.com/ratel-online/uno/card/color"
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/event"
)

// ApplyPlay plays the card at cardIndex from a seat's hand. selectedColor is only
// read for Black cards. A rejected play returns s unchanged with the error.
func ApplyPlay(s State, player, cardIndex int, selectedColor color.Color) (State, []event.Event, error) {
	if err := s.checkTurn(player); err != nil {
		return s, nil, err
	}
	hand := s.Hands[player]
	if cardIndex < 0 || cardIndex >= len(hand) {
		return s, nil, consts.ErrorsCardIndex
	}
	if s.Drawn && cardIndex != len(hand)-1 {
		return s, nil, consts.ErrorsMustPlayDrawn
	}
	if !Playable(hand[cardIndex], s.Top(), s.WildColor) {
		return s, nil, consts.ErrorsInvalidMove
	}
	if hand[cardIndex].IsWild() && !selectedColor.Declarable() {
		return s, nil, consts.ErrorsColorRequired
	}

	next := s.clone()
	var playedCard card.Card
	next.Hands[player], playedCard = next.Hands[player].Remove(cardIndex)
	next.Pile = append(next.Pile, playedCard)
	next.Drawn = false
	next.Stats.CardsPlayed++
	if !playedCard.IsWild() {
		next.WildColor = color.None
	}
	events := []event.Event{event.CardPlayedPayload{Player: player, Card: playedCard}}

	turn := next.Turn
	upcoming := turn.Next()
	for _, cardAction := range playedCard.Actions() {
		switch cardAction := cardAction.(type) {
		case action.PickColorAction:
			next.WildColor = selectedColor
			events = append(events, event.ColorPickedPayload{Player: player, Color: selectedColor})
		case action.DrawCardsAction:
			target := upcoming.Current
			reason := event.ReasonDrawTwo
			if playedCard.Value == card.WildDrawFour {
				reason = event.ReasonWildDrawFour
			}
			drawn, drawEvents, err := next.draw(target, cardAction.Amount(), reason)
			events = append(events, drawEvents...)
			if err != nil {
				events = append(events, event.ReservoirEmptyPayload{
					Player: target,
					Wanted: cardAction.Amount(),
					Drawn:  len(drawn),
				})
			}
		case action.SkipTurnAction:
			events = append(events, event.TurnSkippedPayload{Player: upcoming.Current})
			upcoming = upcoming.Next()
		case action.ReverseTurnsAction:
			turn = turn.Reverse()
			events = append(events, event.TurnOrderReversedPayload{Direction: turn.Direction})
			if turn.Size == 2 {
				events = append(events, event.TurnSkippedPayload{Player: upcoming.Current})
				upcoming = turn
			} else {
				upcoming = turn.Next()
			}
		}
	}

	next.Turn = upcoming
	next.Stats.Turns++
	next.handChanged(player)
	if next.Hands[player].Empty() {
		next.Winner = player
		events = append(events, next.settleRound(player)...)
	}
	return next, events, nil
}

// ApplyDraw draws one card for the seat in turn. A playable card keeps the turn
// with the seat, which then either plays it or passes; otherwise the turn passes.
func ApplyDraw(s State, player int) (State, []event.Event, error) {
	if err := s.checkTurn(player); err != nil {
		return s, nil, err
	}
	if s.Drawn {
		return s, nil, consts.ErrorsAlreadyDrew
	}

	next := s.clone()
	drawn, events, err := next.draw(player, 1, event.ReasonDrawAction)
	if err != nil {
		return s, nil, err
	}

	if Playable(drawn[0], next.Top(), next.WildColor) {
		next.Drawn = true
		events = append(events, event.DrawnCardPlayablePayload{Player: player, Card: drawn[0]})
		return next, events, nil
	}
	events = append(events, next.pass(player))
	return next, events, nil
}

// ApplyPass ends the turn of a seat that drew a playable card and kept it.
func ApplyPass(s State, player int) (State, []event.Event, error) {
	if err := s.checkTurn(player); err != nil {
		return s, nil, err
	}
	if !s.Drawn {
		return s, nil, consts.ErrorsCannotPass
	}
	next := s.clone()
	return next, []event.Event{next.pass(player)}, nil
}

// DeclareUno records that a seat holding exactly one card called UNO.
func DeclareUno(s State, player int) (State, []event.Event, error) {
	if err := s.checkSeat(player); err != nil {
		return s, nil, err
	}
	if len(s.Hands[player]) != 1 {
		return s, nil, consts.ErrorsIllegalUnoCall
	}
	next := s.clone()
	next.UnoCalled[player] = true
	return next, []event.Event{event.UnoCalledPayload{Player: player}}, nil
}

// CatchMissedUno makes target draw the penalty cards when it holds one card
// without having called UNO.
func CatchMissedUno(s State, challenger, target int) (State, []event.Event, error) {
	if err := s.checkSeat(challenger); err != nil {
		return s, nil, err
	}
	if err := s.checkSeat(target); err != nil {
		return s, nil, err
	}
	if challenger == target || len(s.Hands[target]) != 1 || s.UnoCalled[target] {
		return s, nil, consts.ErrorsNoMissedUno
	}
	if len(s.Deck)+s.Pile.Reservoir() < consts.UnoPenaltyCards {
		return s, nil, consts.ErrorsEmptyReservoir
	}

	next := s.clone()
	_, events, err := next.draw(target, consts.UnoPenaltyCards, event.ReasonUnoPenalty)
	if err != nil {
		return s, nil, err
	}
	events = append(events, event.UnoPenaltyPayload{
		Challenger: challenger,
		Player:     target,
		Cards:      consts.UnoPenaltyCards,
	})
	return next, events, nil
}

func (s *State) pass(player int) event.Event {
	s.Drawn = false
	s.Turn = s.Turn.Next()
	s.Stats.Turns++
	return event.PlayerPassedPayload{Player: player}
}

func (s State) checkSeat(player int) error {
	if s.RoundOver() {
		return consts.ErrorsRoundOver
	}
	if player < 0 || player >= len(s.Hands) {
		return consts.ErrorsPlayerInvalid
	}
	return nil
}

func (s State) checkTurn(player int) error {
	if err := s.checkSeat(player); err != nil {
		return err
	}
	if player != s.Turn.Current {
		return consts.ErrorsNotYourTurn
	}
	return nil
}
