package game

import (
	"github.com/ratel-online/uno/card"
	"github.com/ratel-online/uno/event"
)

// CardPoints: digits score face value, Skip/Reverse/Draw Two 20, wild cards 50.
func CardPoints(c card.Card) int {
	return c.Points()
}

// RoundPoints is what the winner collects: the points left in every other hand.
func RoundPoints(hands []Hand, winner int) int {
	points := 0
	for seat, hand := range hands {
		if seat != winner {
			points += hand.Points()
		}
	}
	return points
}

// ScoreRound credits winner with the round's points and reports whether the
// target score was reached.
func ScoreRound(scores Scores, hands []Hand, winner, target int) (Scores, int, bool) {
	next := append(Scores(nil), scores...)
	points := RoundPoints(hands, winner)
	next[winner] += points
	return next, points, next[winner] >= target
}

func (s *State) settleRound(winner int) []event.Event {
	scores, points, won := ScoreRound(s.Scores, s.Hands, winner, s.Rules.TargetScore)
	s.Scores = scores
	events := []event.Event{event.RoundWonPayload{
		Player: winner,
		Points: points,
		Score:  scores[winner],
	}}
	if won {
		s.GameWinner = winner
		events = append(events, event.GameWonPayload{Player: winner, Score: scores[winner]})
	}
	return events
}

// Leader returns the seat with the highest score, lowest seat on ties.
func (s Scores) Leader() int {
	leader := 0
	for seat, score := range s {
		if score > s[leader] {
			leader = seat
		}
	}
	return leader
}
