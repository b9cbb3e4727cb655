package msg

import (
	"errors"
	"strings"

	"github.com/fatih/color"
	"github.com/ratel-online/uno/consts"
)

type Severity int

const (
	Info Severity = iota
	Success
	Error
)

func (s Severity) String() string {
	switch s {
	case Success:
		return "success"
	case Error:
		return "error"
	default:
		return "info"
	}
}

// Status is a one line message for the player, tagged with how it should be shown.
type Status struct {
	Text     string
	Severity Severity
}

func info(text string) Status {
	return Status{Text: text, Severity: Info}
}

func success(text string) Status {
	return Status{Text: text, Severity: Success}
}

// ErrorStatus turns an engine error into a status line.
func ErrorStatus(err error) Status {
	var gameErr consts.Error
	if errors.As(err, &gameErr) {
		return Status{Text: strings.TrimSpace(gameErr.Msg), Severity: Error}
	}
	return Status{Text: err.Error(), Severity: Error}
}

var severityColors = map[Severity]*color.Color{
	Success: color.New(color.FgHiGreen),
	Error:   color.New(color.FgHiRed),
}

// Paint renders the status text in its severity colour.
func (s Status) Paint() string {
	if c, ok := severityColors[s.Severity]; ok {
		return c.Sprint(s.Text)
	}
	return s.Text
}
