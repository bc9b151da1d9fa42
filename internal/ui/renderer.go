package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/amalg/go-tetris/internal/game"
)

// Color palette
var (
	emptyStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#1a1a2e")).
			Foreground(lipgloss.Color("#2a2a40"))

	ghostStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#1a1a2e")).
			Foreground(lipgloss.Color("#b4b4be"))

	boardBorderStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("#46464e"))

	// HUD styles
	hudBorderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#444466")).
			Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00f0f0")).
			Bold(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#c8c8d0"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#f0f0f8")).
			Bold(true)

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#555555"))

	pausedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#44aaff")).
			Bold(true)

	gameOverStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ff4444")).
			Bold(true).
			Blink(true)
)

const (
	blockGlyph = "██"
	ghostGlyph = "░░"
	emptyGlyph = " ."
)

func blockStyle(c game.Color) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex()))
}

// RenderBoard converts a snapshot into a styled terminal string.
// Each cell is 2 characters wide for a square-ish appearance.
func RenderBoard(state *game.Snapshot) string {
	if state == nil || len(state.Grid) == 0 {
		return "Waiting for game state..."
	}

	current := make(map[game.Point]bool)
	var currentStyle lipgloss.Style
	if state.Current != nil {
		currentStyle = blockStyle(state.Current.Color)
		for _, c := range state.Current.Cells {
			current[c] = true
		}
	}
	ghost := make(map[game.Point]bool, len(state.Ghost))
	for _, c := range state.Ghost {
		ghost[c] = true
	}

	rows := make([]string, 0, state.Rows)
	for y := 0; y < state.Rows; y++ {
		var line strings.Builder
		for x := 0; x < state.Cols; x++ {
			p := game.Point{X: x, Y: y}
			cell := state.Grid[y][x]
			// Priority: Current > Locked > Ghost > Empty
			switch {
			case current[p]:
				line.WriteString(currentStyle.Render(blockGlyph))
			case cell.Occupied:
				line.WriteString(blockStyle(cell.Color).Render(blockGlyph))
			case ghost[p]:
				line.WriteString(ghostStyle.Render(ghostGlyph))
			default:
				line.WriteString(emptyStyle.Render(emptyGlyph))
			}
		}
		rows = append(rows, line.String())
	}

	return boardBorderStyle.Render(strings.Join(rows, "\n"))
}

// renderPreview draws a kind in its spawn orientation, trimmed to the rows
// it occupies.
func renderPreview(kind game.PieceKind, style lipgloss.Style) string {
	cells := game.ShapeCells(kind, 0)
	minY, maxY := cells[0].Y, cells[0].Y
	filled := make(map[game.Point]bool, len(cells))
	for _, c := range cells {
		minY, maxY = min(minY, c.Y), max(maxY, c.Y)
		filled[c] = true
	}

	lines := make([]string, 0, maxY-minY+1)
	for y := minY; y <= maxY; y++ {
		var line strings.Builder
		for x := 0; x < 4; x++ {
			if filled[game.Point{X: x, Y: y}] {
				line.WriteString(style.Render(blockGlyph))
			} else {
				line.WriteString("  ")
			}
		}
		lines = append(lines, line.String())
	}
	return strings.Join(lines, "\n")
}

// RenderHUD renders score, queue, hold slot, status and controls.
func RenderHUD(state *game.Snapshot, keys KeyMap) string {
	if state == nil {
		return ""
	}

	var parts []string

	// Title
	parts = append(parts, titleStyle.Render("TETRIS"))
	parts = append(parts, "")

	// Counters
	stats := []struct {
		label string
		value int
	}{
		{"Score", state.Score},
		{"Level", state.Level},
		{"Lines", state.Lines},
	}
	for _, s := range stats {
		parts = append(parts, fmt.Sprintf("%s %s",
			labelStyle.Render(fmt.Sprintf("%-6s", s.label+":")),
			valueStyle.Render(fmt.Sprint(s.value))))
	}
	parts = append(parts, "")

	// Status
	switch {
	case state.GameOver:
		parts = append(parts, gameOverStyle.Render("GAME OVER"))
		parts = append(parts, dimStyle.Render("Press [r] to play again"))
		parts = append(parts, "")
	case state.Paused:
		parts = append(parts, pausedStyle.Render("PAUSED"))
		parts = append(parts, "")
	}

	// Next queue
	parts = append(parts, labelStyle.Render("Next:"))
	for _, k := range state.Next {
		parts = append(parts, renderPreview(k, blockStyle(k.Color())))
	}
	parts = append(parts, "")

	// Hold slot
	parts = append(parts, labelStyle.Render("Hold:"))
	if state.Hold != nil {
		style := blockStyle(state.Hold.Color())
		if !state.CanHold {
			style = dimStyle
		}
		parts = append(parts, renderPreview(*state.Hold, style))
	} else {
		parts = append(parts, dimStyle.Render("(empty)"))
	}
	parts = append(parts, "")

	// Controls
	for _, b := range keys.bindings() {
		h := b.Help()
		parts = append(parts, dimStyle.Render(fmt.Sprintf("%-6s %s", h.Key, h.Desc)))
	}

	return hudBorderStyle.Render(strings.Join(parts, "\n"))
}
