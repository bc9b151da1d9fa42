package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/amalg/go-tetris/internal/game"
)

// KeyMap binds keys to game intents.
type KeyMap struct {
	Left      key.Binding
	Right     key.Binding
	SoftDrop  key.Binding
	RotateCW  key.Binding
	RotateCCW key.Binding
	HardDrop  key.Binding
	Hold      key.Binding
	Pause     key.Binding
	Restart   key.Binding
	Quit      key.Binding
}

// DefaultKeyMap returns arrow-key bindings with vi-style alternatives.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "move left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "move right"),
		),
		SoftDrop: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "soft drop"),
		),
		RotateCW: key.NewBinding(
			key.WithKeys("up", "x", "k"),
			key.WithHelp("↑/x", "rotate"),
		),
		RotateCCW: key.NewBinding(
			key.WithKeys("z"),
			key.WithHelp("z", "rotate back"),
		),
		HardDrop: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "hard drop"),
		),
		Hold: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "hold"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Action maps a key press to a game intent.
func (k KeyMap) Action(msg tea.KeyMsg) (game.ActionType, bool) {
	switch {
	case key.Matches(msg, k.Left):
		return game.ActionMoveLeft, true
	case key.Matches(msg, k.Right):
		return game.ActionMoveRight, true
	case key.Matches(msg, k.SoftDrop):
		return game.ActionSoftDrop, true
	case key.Matches(msg, k.RotateCW):
		return game.ActionRotateCW, true
	case key.Matches(msg, k.RotateCCW):
		return game.ActionRotateCCW, true
	case key.Matches(msg, k.HardDrop):
		return game.ActionHardDrop, true
	case key.Matches(msg, k.Hold):
		return game.ActionHold, true
	case key.Matches(msg, k.Pause):
		return game.ActionPause, true
	case key.Matches(msg, k.Restart):
		return game.ActionRestart, true
	}
	return 0, false
}

// bindings lists the bindings shown in the HUD, in display order.
func (k KeyMap) bindings() []key.Binding {
	return []key.Binding{
		k.Left, k.Right, k.SoftDrop, k.RotateCW, k.RotateCCW,
		k.HardDrop, k.Hold, k.Pause, k.Restart, k.Quit,
	}
}
