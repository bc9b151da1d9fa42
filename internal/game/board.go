package game

import (
	"math/rand/v2"
	"time"
)

// Board is the authoritative state of one game session: the locked cells,
// the active piece, hold and next queue, and the progression counters.
//
// Board is not safe for concurrent use. The Engine serializes access.
type Board struct {
	cols, rows int
	grid       [][]Cell

	current    Piece
	hasCurrent bool

	hold    PieceKind
	hasHold bool
	canHold bool

	next      []PieceKind
	lookahead int
	bag       *Bag

	score  int
	lines  int
	level  int
	pieces int // Pieces locked so far

	gameOver bool

	speeds  []time.Duration
	gravity time.Duration // Accumulated time not yet spent on gravity steps
}

// NewBoard creates an empty board, fills the next queue from a bag seeded by
// rng and spawns the first piece. config is assumed to be valid, except that
// an empty speed table falls back to DefaultLevelSpeeds.
func NewBoard(config GameConfig, rng *rand.Rand) *Board {
	speeds := config.LevelSpeeds
	if len(speeds) == 0 {
		speeds = DefaultLevelSpeeds
	}
	b := &Board{
		cols:      config.Cols,
		rows:      config.Rows,
		grid:      newGrid(config.Cols, config.Rows),
		lookahead: config.Lookahead,
		bag:       NewBag(rng),
		level:     1,
		speeds:    speeds,
	}
	b.next = make([]PieceKind, 0, b.lookahead+1)
	for len(b.next) < b.lookahead {
		b.next = append(b.next, b.bag.Next())
	}
	b.Spawn()
	return b
}

func newGrid(cols, rows int) [][]Cell {
	grid := make([][]Cell, rows)
	for y := range grid {
		grid[y] = make([]Cell, cols)
	}
	return grid
}

// Cols returns the board width.
func (b *Board) Cols() int { return b.cols }

// Rows returns the board height.
func (b *Board) Rows() int { return b.rows }

// Current returns the active piece, if any.
func (b *Board) Current() (Piece, bool) {
	return b.current, b.hasCurrent
}

// Hold returns the held kind, if any.
func (b *Board) Hold() (PieceKind, bool) {
	return b.hold, b.hasHold
}

// CanHold reports whether hold is still available for the current piece.
func (b *Board) CanHold() bool { return b.canHold }

// Score returns the current score.
func (b *Board) Score() int { return b.score }

// Lines returns the total number of cleared lines.
func (b *Board) Lines() int { return b.lines }

// Level returns the current level, 1 + lines/10.
func (b *Board) Level() int { return b.level }

// Pieces returns how many pieces have been locked.
func (b *Board) Pieces() int { return b.pieces }

// GameOver reports whether the session has ended.
func (b *Board) GameOver() bool { return b.gameOver }

// Occupied reports whether the grid cell at (x, y) holds a locked block.
// Out-of-range coordinates report false.
func (b *Board) Occupied(x, y int) bool {
	if x < 0 || x >= b.cols || y < 0 || y >= b.rows {
		return false
	}
	return b.grid[y][x].Occupied
}

// Next returns a copy of the upcoming kinds, front first.
func (b *Board) Next() []PieceKind {
	out := make([]PieceKind, len(b.next))
	copy(out, b.next)
	return out
}

// IsValid reports whether p fits on the board. Cells above the playfield
// (y < 0) only need to be within the column range.
func (b *Board) IsValid(p Piece) bool {
	for _, c := range p.Cells() {
		if c.X < 0 || c.X >= b.cols {
			return false
		}
		if c.Y < 0 {
			continue
		}
		if c.Y >= b.rows || b.grid[c.Y][c.X].Occupied {
			return false
		}
	}
	return true
}

// spawnPiece returns a kind at the default spawn anchor in rotation 0.
func (b *Board) spawnPiece(kind PieceKind) Piece {
	return Piece{Kind: kind, X: b.cols/2 - 2, Y: 0}
}
