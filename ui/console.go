package ui

import (
	"bufio"
	"io"
	"strings"
	"time"

	"github.com/ratel-online/uno/card/color"
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/event"
	"github.com/ratel-online/uno/msg"
	"github.com/ratel-online/uno/service"
)

const commandHelp = "Enter a card letter, or draw, pass, uno, catch, quit:"

// Console plays a session on a line based terminal. Bot turns are spaced by pace.
type Console struct {
	in      *bufio.Reader
	out     io.Writer
	pace    time.Duration
	session *service.Session
	writer  msg.MessageWriter
}

func NewConsole(session *service.Session, in io.Reader, out io.Writer, pace time.Duration) *Console {
	c := &Console{
		in:      bufio.NewReader(in),
		out:     out,
		pace:    pace,
		session: session,
		writer:  msg.NewMessageWriter(session.Game.Names(), session.Human),
	}
	session.Game.Events().AddListener(event.ListenerFunc(func(ev event.Event) {
		c.printStatus(c.writer.Event(ev))
	}))
	return c
}

// Run plays rounds until the human quits, input ends or a game is over and no
// new one is wanted.
func (c *Console) Run() error {
	g := c.session.Game
	c.println(c.writer.Welcome())
	for {
		if err := g.NextRound(); err != nil {
			return err
		}
		quit, err := c.playRound()
		if err != nil || quit {
			return err
		}
		c.printScores()

		if g.State().GameOver() {
			again, err := c.promptConfirm("Play again? (y/n)")
			if err != nil || !again {
				return nil
			}
			g.NewGame()
			continue
		}
		if _, err := c.promptString("Press enter for the next round."); err != nil {
			return nil
		}
	}
}

func (c *Console) playRound() (bool, error) {
	for !c.session.Game.State().RoundOver() {
		if c.session.HumanTurn() {
			if quit := c.humanTurn(); quit {
				return true, nil
			}
			continue
		}
		time.Sleep(c.pace)
		if _, err := c.session.PlayBot(); err != nil {
			c.printStatus(msg.ErrorStatus(err))
			return false, err
		}
	}
	return false, nil
}

func (c *Console) humanTurn() bool {
	g := c.session.Game
	human := c.session.Human
	state := g.State()

	c.println(c.writer.HumanPlayerTurnStarted())
	c.printState(state)
	options := c.cardOptions(state.Hands[human], state.Playable(human))

	input, err := c.promptString(commandHelp)
	if err != nil {
		return true
	}
	c.session.Touch()

	switch strings.ToLower(input) {
	case "quit", "exit":
		return true
	case "draw":
		c.report(g.Draw(human))
	case "pass":
		c.report(g.Pass(human))
	case "uno":
		c.report(g.CallUno(human))
	case "catch":
		c.report(c.catchMissedUno())
	default:
		index, ok := options[strings.ToUpper(input)]
		if !ok {
			c.printStatus(msg.Status{Text: "No card assigned to '" + input + "'", Severity: msg.Error})
			return false
		}
		selectedColor := color.None
		if state.Hands[human][index].IsWild() {
			if selectedColor, err = c.promptColor(); err != nil {
				return true
			}
		}
		c.report(g.Play(human, index, selectedColor))
	}
	return false
}

func (c *Console) catchMissedUno() error {
	state := c.session.Game.State()
	for seat, hand := range state.Hands {
		if seat != c.session.Human && len(hand) == 1 && !state.UnoCalled[seat] {
			return c.session.Game.CatchUno(c.session.Human, seat)
		}
	}
	return consts.ErrorsNoMissedUno
}

func (c *Console) report(err error) {
	if err != nil {
		c.printStatus(msg.ErrorStatus(err))
	}
}
