package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/amalg/go-tetris/internal/game"
)

// Source is a running session the TUI can watch and steer.
type Source interface {
	States() <-chan game.Snapshot
	EnqueueAction(game.Action)
}

// stateUpdateMsg carries a new snapshot from the engine.
type stateUpdateMsg game.Snapshot

// errMsg carries an error.
type errMsg struct{ err error }

func (e errMsg) Error() string { return e.err.Error() }

// Model is the Bubbletea model for the game.
type Model struct {
	source   Source
	state    *game.Snapshot
	keys     KeyMap
	err      error
	quitting bool
}

// NewModel creates a new TUI model driven by source.
func NewModel(source Source) Model {
	return Model{
		source: source,
		keys:   DefaultKeyMap(),
	}
}

// Init starts listening for snapshots.
func (m Model) Init() tea.Cmd {
	return waitForState(m.source)
}

// Update handles incoming messages (key presses, state updates).
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case stateUpdateMsg:
		state := game.Snapshot(msg)
		m.state = &state
		return m, waitForState(m.source)

	case errMsg:
		m.err = msg.err
		return m, tea.Quit
	}

	return m, nil
}

// View renders the current game state.
func (m Model) View() string {
	if m.quitting {
		return "Bye!\n"
	}

	if m.err != nil {
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ff4444")).
			Render("Error: "+m.err.Error()) + "\n"
	}

	board := RenderBoard(m.state)
	hud := RenderHUD(m.state, m.keys)

	// Layout: board on the left, HUD on the right
	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		board,
		"  ",
		hud,
	) + "\n"
}

// handleKey forwards intents to the engine.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.quitting = true
		return m, tea.Quit
	}
	if action, ok := m.keys.Action(msg); ok {
		m.source.EnqueueAction(game.Action{Type: action})
	}
	return m, nil
}

// waitForState returns a Cmd that waits for the next snapshot.
func waitForState(source Source) tea.Cmd {
	return func() tea.Msg {
		state, ok := <-source.States()
		if !ok {
			return errMsg{err: fmt.Errorf("game session closed")}
		}
		return stateUpdateMsg(state)
	}
}
