package game

import (
	"fmt"
	"time"
)

// PieceKind identifies one of the seven tetromino shapes.
type PieceKind uint8

const (
	I PieceKind = iota
	J
	L
	O
	S
	T
	Z
)

// NumKinds is the number of distinct piece kinds.
const NumKinds = 7

// Kinds lists every piece kind in declaration order.
var Kinds = [NumKinds]PieceKind{I, J, L, O, S, T, Z}

var kindNames = [NumKinds]string{"I", "J", "L", "O", "S", "T", "Z"}

func (k PieceKind) String() string {
	if int(k) >= NumKinds {
		return fmt.Sprintf("PieceKind(%d)", uint8(k))
	}
	return kindNames[k]
}

// Color is an RGB triple.
type Color struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// Hex returns the color as "#rrggbb".
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

var kindColors = [NumKinds]Color{
	I: {0, 240, 240}, // Cyan
	J: {0, 0, 240},   // Blue
	L: {240, 160, 0}, // Orange
	O: {240, 240, 0}, // Yellow
	S: {0, 240, 0},   // Green
	T: {160, 0, 240}, // Purple
	Z: {240, 0, 0},   // Red
}

// Color returns the display color of the kind.
func (k PieceKind) Color() Color {
	return kindColors[k]
}

// Point is a coordinate on the board. Y grows downward and may be negative
// for cells above the visible playfield.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Cell is one square of the grid. The zero value is empty.
type Cell struct {
	Color    Color `json:"color"`
	Occupied bool  `json:"occupied"`
}

// ActionType represents a player intent.
type ActionType int

const (
	ActionMoveLeft ActionType = iota
	ActionMoveRight
	ActionSoftDrop
	ActionRotateCW
	ActionRotateCCW
	ActionHardDrop
	ActionHold
	ActionPause
	ActionRestart
)

var actionNames = [...]string{
	"move-left", "move-right", "soft-drop", "rotate-cw", "rotate-ccw",
	"hard-drop", "hold", "pause", "restart",
}

func (a ActionType) String() string {
	if a < 0 || int(a) >= len(actionNames) {
		return fmt.Sprintf("ActionType(%d)", int(a))
	}
	return actionNames[a]
}

// Action is a single queued intent.
type Action struct {
	Type ActionType
}

// GameConfig holds configurable parameters for a game session.
type GameConfig struct {
	Cols        int             `json:"cols"`
	Rows        int             `json:"rows"`
	Lookahead   int             `json:"lookahead"`
	TickRate    int             `json:"tick_rate"`    // Engine cycles per second
	LevelSpeeds []time.Duration `json:"level_speeds"` // Gravity interval per level, non-increasing
	Seed        uint64          `json:"seed"`         // 0 picks a time-based seed
}

// DefaultLevelSpeeds is the gravity table, roughly following NES pace.
var DefaultLevelSpeeds = []time.Duration{
	800 * time.Millisecond,
	720 * time.Millisecond,
	630 * time.Millisecond,
	550 * time.Millisecond,
	470 * time.Millisecond,
	380 * time.Millisecond,
	300 * time.Millisecond,
	220 * time.Millisecond,
	130 * time.Millisecond,
	100 * time.Millisecond,
	90 * time.Millisecond,
	80 * time.Millisecond,
	70 * time.Millisecond,
	60 * time.Millisecond,
	50 * time.Millisecond,
}

// DefaultConfig returns the standard 10x20 configuration.
func DefaultConfig() GameConfig {
	speeds := make([]time.Duration, len(DefaultLevelSpeeds))
	copy(speeds, DefaultLevelSpeeds)
	return GameConfig{
		Cols:        10,
		Rows:        20,
		Lookahead:   5,
		TickRate:    60,
		LevelSpeeds: speeds,
	}
}

// Validate reports whether the configuration can host a game.
func (c GameConfig) Validate() error {
	if c.Cols < 4 {
		return fmt.Errorf("cols must be at least 4, got %d", c.Cols)
	}
	if c.Rows < 2 {
		return fmt.Errorf("rows must be at least 2, got %d", c.Rows)
	}
	if c.Lookahead < 1 {
		return fmt.Errorf("lookahead must be at least 1, got %d", c.Lookahead)
	}
	if c.TickRate < 1 {
		return fmt.Errorf("tick rate must be positive, got %d", c.TickRate)
	}
	if len(c.LevelSpeeds) == 0 {
		return fmt.Errorf("level speeds must not be empty")
	}
	for i, d := range c.LevelSpeeds {
		if d <= 0 {
			return fmt.Errorf("level speed %d must be positive, got %s", i+1, d)
		}
		if i > 0 && d > c.LevelSpeeds[i-1] {
			return fmt.Errorf("level speed %d (%s) is slower than level %d (%s)", i+1, d, i, c.LevelSpeeds[i-1])
		}
	}
	return nil
}
