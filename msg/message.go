package msg

import (
	"fmt"

	"github.com/ratel-online/uno/card"
	"github.com/ratel-online/uno/card/color"
	"github.com/ratel-online/uno/event"
)

// MessageWriter describes events from the point of view of the human seat.
type MessageWriter struct {
	names []string
	human int
}

func NewMessageWriter(names []string, human int) MessageWriter {
	return MessageWriter{names: names, human: human}
}

func (m MessageWriter) name(seat int) string {
	if seat < 0 || seat >= len(m.names) {
		return fmt.Sprintf("Player %d", seat+1)
	}
	return m.names[seat]
}

// Event returns the status line for ev.
func (m MessageWriter) Event(ev event.Event) Status {
	switch payload := ev.(type) {
	case event.FirstCardPlayedPayload:
		return info(m.FirstCardPlayed(payload.Card))
	case event.CardPlayedPayload:
		return info(m.PlayerPlayedCard(payload.Player, payload.Card))
	case event.ColorPickedPayload:
		return info(m.PlayerPickedColor(payload.Player, payload.Color))
	case event.TurnSkippedPayload:
		return info(m.PlayerTurnSkipped(payload.Player))
	case event.TurnOrderReversedPayload:
		return info(m.TurnOrderReversed())
	case event.CardsDrawnPayload:
		return info(m.PlayerDrewCards(payload.Player, payload.Cards))
	case event.DrawnCardPlayablePayload:
		return info(m.DrawnCardPlayable(payload.Player, payload.Card))
	case event.DeckReshuffledPayload:
		return info(fmt.Sprintf("Shuffled %d cards from the pile back into the deck.", payload.Cards))
	case event.ReservoirEmptyPayload:
		return Status{
			Text:     fmt.Sprintf("%s could only draw %d of %d cards, there are none left!", m.name(payload.Player), payload.Drawn, payload.Wanted),
			Severity: Error,
		}
	case event.PlayerPassedPayload:
		return info(fmt.Sprintf("%s passed!", m.name(payload.Player)))
	case event.UnoCalledPayload:
		return success(fmt.Sprintf("%s calls UNO!", m.name(payload.Player)))
	case event.UnoPenaltyPayload:
		return Status{
			Text:     fmt.Sprintf("%s caught %s without UNO, %d cards penalty!", m.name(payload.Challenger), m.name(payload.Player), payload.Cards),
			Severity: Error,
		}
	case event.RoundWonPayload:
		return success(fmt.Sprintf("%s wins the round! +%d points, %d in total.", m.name(payload.Player), payload.Points, payload.Score))
	case event.GameWonPayload:
		return success(m.WinnerFound(payload.Player, payload.Score))
	default:
		return info(fmt.Sprintf("%v", ev))
	}
}

func (m MessageWriter) FirstCardPlayed(c card.Card) string {
	return fmt.Sprintf("First card is %s", c)
}

func (m MessageWriter) PlayerPlayedCard(seat int, c card.Card) string {
	return fmt.Sprintf("%s played %s!", m.name(seat), c)
}

func (m MessageWriter) PlayerPickedColor(seat int, picked color.Color) string {
	return fmt.Sprintf("%s picked color %s!", m.name(seat), picked)
}

func (m MessageWriter) PlayerTurnSkipped(seat int) string {
	return fmt.Sprintf("%s's turn skipped!", m.name(seat))
}

func (m MessageWriter) TurnOrderReversed() string {
	return "Turn order has been reversed!"
}

func (m MessageWriter) PlayerDrewCards(seat int, cards []card.Card) string {
	if seat == m.human {
		return fmt.Sprintf("You drew %s!", Cards(cards))
	}
	if len(cards) == 1 {
		return fmt.Sprintf("%s drew a card!", m.name(seat))
	}
	return fmt.Sprintf("%s drew %d cards!", m.name(seat), len(cards))
}

func (m MessageWriter) DrawnCardPlayable(seat int, c card.Card) string {
	if seat == m.human {
		return fmt.Sprintf("%s can be played, play it or pass.", c)
	}
	return fmt.Sprintf("%s drew a card that can be played.", m.name(seat))
}

func (m MessageWriter) HumanPlayerTurnStarted() string {
	return fmt.Sprintf("It's your turn, %s!", m.name(m.human))
}

func (m MessageWriter) WinnerFound(seat, score int) string {
	return fmt.Sprintf("%s wins the game with %d points!", m.name(seat), score)
}

func (m MessageWriter) Welcome() string {
	return Sprintfln(
		"WELCOME TO %s%s%s",
		color.Red.Paint("U"),
		color.Yellow.Paint("N"),
		color.Blue.Paint("O"),
	)
}
