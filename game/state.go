package game

import (
	"fmt"
	"strings"

	"github.com/ratel-online/uno/card"
	"github.com/ratel-online/uno/card/color"
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/event"
)

type Scores []int

type Stats struct {
	Turns       int
	CardsPlayed int
}

// State is one observation of a round. Transitions never modify the State they
// are given; they return a copy.
type State struct {
	Deck       Deck
	Hands      []Hand
	Pile       Pile
	Turn       Cycler
	WildColor  color.Color
	UnoCalled  []bool
	Drawn      bool
	Winner     int
	GameWinner int
	Scores     Scores
	Rules      Rules
	Stats      Stats
	Rand       Rand
}

// StartGame returns the zeroed scores of a new game.
func StartGame(players int) (Scores, error) {
	if players < consts.MinPlayers || players > consts.MaxPlayers {
		return nil, consts.ErrorsGamePlayersInvalid
	}
	return make(Scores, players), nil
}

// StartRound shuffles a fresh deck, deals the hands round-robin and turns up the
// first non-black card. Seat 0 plays first.
func StartRound(scores Scores, rules Rules, rng Rand) (State, []event.Event, error) {
	players := len(scores)
	if err := rules.validate(players); err != nil {
		return State{}, nil, err
	}

	deck := NewDeck(&rng)
	hands := make([]Hand, players)
	for i := 0; i < rules.StartingCards; i++ {
		for p := 0; p < players; p++ {
			var dealt card.Card
			deck, dealt = deck.Pop()
			hands[p] = append(hands[p], dealt)
		}
	}

	var first card.Card
	for {
		deck, first = deck.Pop()
		if !first.IsWild() {
			break
		}
		deck = append(Deck{first}, deck...)
	}

	state := State{
		Deck:       deck,
		Hands:      hands,
		Pile:       Pile{first},
		Turn:       NewCycler(players),
		UnoCalled:  make([]bool, players),
		Winner:     -1,
		GameWinner: -1,
		Scores:     append(Scores(nil), scores...),
		Rules:      rules,
		Rand:       rng,
	}
	return state, []event.Event{event.FirstCardPlayedPayload{Card: first}}, nil
}

func (s State) Players() int {
	return len(s.Hands)
}

func (s State) Current() int {
	return s.Turn.Current
}

func (s State) Direction() int {
	return s.Turn.Direction
}

func (s State) Top() *card.Card {
	return s.Pile.Top()
}

func (s State) RoundOver() bool {
	return s.Winner >= 0
}

func (s State) GameOver() bool {
	return s.GameWinner >= 0
}

// Playable lists the positions in a seat's hand that may be played now.
func (s State) Playable(player int) []int {
	if s.Drawn && player == s.Current() {
		last := len(s.Hands[player]) - 1
		if Playable(s.Hands[player][last], s.Top(), s.WildColor) {
			return []int{last}
		}
		return nil
	}
	return s.Hands[player].PlayableIndexes(s.Top(), s.WildColor)
}

// CardCount is the number of cards across deck, hands and pile.
func (s State) CardCount() int {
	total := len(s.Deck) + len(s.Pile)
	for _, hand := range s.Hands {
		total += len(hand)
	}
	return total
}

func (s State) clone() State {
	next := s
	next.Deck = append(Deck(nil), s.Deck...)
	next.Pile = append(Pile(nil), s.Pile...)
	next.Hands = make([]Hand, len(s.Hands))
	for i, hand := range s.Hands {
		next.Hands[i] = hand.clone()
	}
	next.UnoCalled = append([]bool(nil), s.UnoCalled...)
	next.Scores = append(Scores(nil), s.Scores...)
	return next
}

// draw moves n cards from the deck into a seat's hand, reshuffling the pile
// under its top card whenever the deck runs dry. On ErrorsEmptyReservoir the
// cards drawn so far stay in the hand.
func (s *State) draw(player, n int, reason event.DrawReason) ([]card.Card, []event.Event, error) {
	var events []event.Event
	drawn := make([]card.Card, 0, n)
	var err error
	for len(drawn) < n {
		if len(s.Deck) == 0 {
			if s.Pile.Reservoir() == 0 {
				err = consts.ErrorsEmptyReservoir
				break
			}
			events = append(events, s.reshuffle())
		}
		var c card.Card
		s.Deck, c = s.Deck.Pop()
		drawn = append(drawn, c)
	}
	if len(drawn) > 0 {
		s.Hands[player] = append(s.Hands[player], drawn...)
		s.handChanged(player)
		events = append(events, event.CardsDrawnPayload{Player: player, Cards: drawn, Reason: reason})
	}
	return drawn, events, err
}

func (s *State) reshuffle() event.Event {
	last := len(s.Pile) - 1
	top := s.Pile[last]
	cards := append(Deck(nil), s.Pile[:last]...)
	shuffleCards(cards, &s.Rand)
	s.Deck = append(cards, s.Deck...)
	s.Pile = Pile{top}
	return event.DeckReshuffledPayload{Cards: len(cards)}
}

func (s *State) handChanged(player int) {
	if len(s.Hands[player]) != 1 {
		s.UnoCalled[player] = false
	}
}

func (s State) String() string {
	var lines []string
	top := "none"
	if t := s.Top(); t != nil {
		top = t.String()
		if t.IsWild() && s.WildColor != color.None {
			top += fmt.Sprintf(" (%s)", s.WildColor)
		}
	}
	lines = append(lines, fmt.Sprintf("Last played card: %s", top))

	var playerStatuses []string
	for seat, hand := range s.Hands {
		playerStatuses = append(playerStatuses, fmt.Sprintf("#%d (%d card(s))", seat, len(hand)))
	}
	lines = append(lines, fmt.Sprintf("Turn order: %s", strings.Join(playerStatuses, ", ")))
	lines = append(lines, fmt.Sprintf("Turn: #%d, direction %+d, deck %d", s.Current(), s.Direction(), len(s.Deck)))
	return strings.Join(lines, "\n")
}
