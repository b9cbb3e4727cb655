package color

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

type Color uint8

const (
	None Color = iota
	Red
	Green
	Blue
	Yellow
	Black
)

// Colors lists the four colours a card can be declared as, in tie-break order.
var Colors = []Color{Red, Green, Blue, Yellow}

var Stdout io.Writer = color.Output

var names = map[Color]string{
	None:   "None",
	Red:    "Red",
	Green:  "Green",
	Blue:   "Blue",
	Yellow: "Yellow",
	Black:  "Black",
}

var painters = map[Color]func(string, ...interface{}) string{
	Red:    color.New(color.FgHiRed).SprintfFunc(),
	Green:  color.New(color.FgHiGreen).SprintfFunc(),
	Blue:   color.New(color.FgHiCyan).SprintfFunc(),
	Yellow: color.New(color.FgHiYellow).SprintfFunc(),
	Black:  color.New(color.FgHiMagenta, color.Bold).SprintfFunc(),
}

func (c Color) String() string {
	if name, ok := names[c]; ok {
		return name
	}
	return fmt.Sprintf("Color(%d)", uint8(c))
}

// Declarable reports whether c may be named as the active colour of a wild card.
func (c Color) Declarable() bool {
	return c >= Red && c <= Yellow
}

func (c Color) Paint(text string) string {
	return c.Paintf("%s", text)
}

func (c Color) Paintf(format string, args ...interface{}) string {
	painter, ok := painters[c]
	if !ok {
		return fmt.Sprintf(format, args...)
	}
	return painter(format, args...)
}

// ByName resolves a colour from its name or first letter, ignoring case.
func ByName(name string) (Color, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return None, fmt.Errorf("invalid color '%s'", name)
	}
	for _, c := range []Color{Red, Green, Blue, Yellow, Black} {
		full := strings.ToLower(names[c])
		if name == full || (len(name) == 1 && name[0] == full[0]) {
			return c, nil
		}
	}
	return None, fmt.Errorf("invalid color '%s'", name)
}
