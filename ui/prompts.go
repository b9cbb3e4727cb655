package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/ratel-online/uno/card/color"
	"github.com/ratel-online/uno/game"
)

func (c *Console) promptString(message string) (string, error) {
	c.println(message)
	input, err := c.in.ReadString('\n')
	if err != nil && (err != io.EOF || input == "") {
		return "", err
	}
	return strings.TrimSpace(input), nil
}

func (c *Console) promptColor() (color.Color, error) {
	colorMessage := fmt.Sprintf(
		"Select a color: '%s', '%s', '%s' or '%s'?",
		color.Red.Paint("red"),
		color.Yellow.Paint("yellow"),
		color.Green.Paint("green"),
		color.Blue.Paint("blue"),
	)
	for {
		colorName, err := c.promptString(colorMessage)
		if err != nil {
			return color.None, err
		}
		chosenColor, err := color.ByName(colorName)
		if err != nil || !chosenColor.Declarable() {
			c.printfln("Unknown color '%s'", colorName)
			continue
		}
		return chosenColor, nil
	}
}

func (c *Console) promptConfirm(message string) (bool, error) {
	input, err := c.promptString(message)
	if err != nil {
		return false, err
	}
	switch strings.ToLower(input) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

// cardOptions labels every card of hand and prints them, marking the playable ones.
func (c *Console) cardOptions(hand game.Hand, playable []int) map[string]int {
	isPlayable := make(map[int]bool, len(playable))
	for _, index := range playable {
		isPlayable[index] = true
	}

	sequence := labelSequence{}
	options := make(map[string]int, len(hand))
	lines := []string{"Your hand:"}
	for index, handCard := range hand {
		label := sequence.next()
		options[label] = index
		marker := ""
		if isPlayable[index] {
			marker = " *"
		}
		lines = append(lines, fmt.Sprintf("  %s %s%s", label, handCard.Paint(), marker))
	}
	c.printlns(lines)
	return options
}
