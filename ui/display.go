package ui

import (
	"fmt"
	"strings"

	"github.com/ratel-online/uno/game"
	"github.com/ratel-online/uno/msg"
)

func (c *Console) printfln(format string, args ...interface{}) {
	c.println(fmt.Sprintf(format, args...))
}

func (c *Console) printlns(lines []string) {
	c.println(strings.Join(lines, "\n"))
}

func (c *Console) println(args ...interface{}) {
	_, _ = fmt.Fprintln(c.out, args...)
}

func (c *Console) printStatus(status msg.Status) {
	c.println(status.Paint())
}

func (c *Console) printState(state game.State) {
	g := c.session.Game
	lines := []string{""}

	top := "none"
	if t := state.Top(); t != nil {
		top = t.Paint()
		if t.IsWild() {
			top += " " + state.WildColor.Paint(state.WildColor.String())
		}
	}
	lines = append(lines, fmt.Sprintf("Last played card: %s", top))

	var seats []string
	for seat, hand := range state.Hands {
		if seat == c.session.Human {
			continue
		}
		status := fmt.Sprintf("%s (%d card(s))", g.Name(seat), len(hand))
		if state.UnoCalled[seat] {
			status += " UNO"
		}
		seats = append(seats, status)
	}
	lines = append(lines, fmt.Sprintf("Opponents: %s", strings.Join(seats, ", ")))
	lines = append(lines, fmt.Sprintf("Deck: %d card(s), direction %s", len(state.Deck), direction(state.Direction())))
	c.printlns(lines)
}

func (c *Console) printScores() {
	g := c.session.Game
	state := g.State()
	lines := []string{"Scores:"}
	for seat, score := range state.Scores {
		lines = append(lines, fmt.Sprintf("  %s: %d", g.Name(seat), score))
	}
	lines = append(lines, fmt.Sprintf("Round %d: %d turns, %d cards played.", g.Rounds(), state.Stats.Turns, state.Stats.CardsPlayed))
	c.printlns(lines)
}

func direction(d int) string {
	if d < 0 {
		return "counter-clockwise"
	}
	return "clockwise"
}
