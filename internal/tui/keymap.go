package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Action is a user intent derived from a key press.
type Action int

const (
	ActionNone Action = iota
	ActionUp
	ActionDown
	ActionLeft
	ActionRight
	ActionPlace
	ActionPlaceAt
	ActionNewRound
	ActionQuit
)

// MapKey translates a key message to an action.
// For ActionPlaceAt the returned position is the cell chosen with keys 1-9.
func MapKey(msg tea.KeyMsg) (action Action, position int) {
	key := msg.String()

	switch key {
	case "ctrl+c", "q", "esc":
		return ActionQuit, 0
	case "up", "k", "w":
		return ActionUp, 0
	case "down", "j", "s":
		return ActionDown, 0
	case "left", "h", "a":
		return ActionLeft, 0
	case "right", "l", "d":
		return ActionRight, 0
	case "enter", " ":
		return ActionPlace, 0
	case "n", "r":
		return ActionNewRound, 0
	}

	// Number keys follow the board layout: 1 is top-left, 9 is bottom-right.
	if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
		return ActionPlaceAt, int(key[0] - '1')
	}

	return ActionNone, 0
}
