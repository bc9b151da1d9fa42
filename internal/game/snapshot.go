package game

// PieceView is the presentation view of the active piece.
type PieceView struct {
	Kind  PieceKind `json:"kind"`
	Color Color     `json:"color"`
	Cells []Point   `json:"cells"`
}

// Snapshot is a read-only deep copy of a board, safe to hand to renderers.
type Snapshot struct {
	Cols     int         `json:"cols"`
	Rows     int         `json:"rows"`
	Grid     [][]Cell    `json:"grid"`
	Current  *PieceView  `json:"current,omitempty"`
	Ghost    []Point     `json:"ghost,omitempty"` // Only cells inside the playfield
	Hold     *PieceKind  `json:"hold,omitempty"`
	CanHold  bool        `json:"can_hold"`
	Next     []PieceKind `json:"next"`
	Score    int         `json:"score"`
	Level    int         `json:"level"`
	Lines    int         `json:"lines"`
	Pieces   int         `json:"pieces"`
	GameOver bool        `json:"game_over"`
	Paused   bool        `json:"paused"`
}

// Snapshot copies the board state.
func (b *Board) Snapshot() Snapshot {
	grid := make([][]Cell, b.rows)
	for y := range grid {
		grid[y] = make([]Cell, b.cols)
		copy(grid[y], b.grid[y])
	}

	s := Snapshot{
		Cols:     b.cols,
		Rows:     b.rows,
		Grid:     grid,
		CanHold:  b.canHold,
		Next:     b.Next(),
		Score:    b.score,
		Level:    b.level,
		Lines:    b.lines,
		Pieces:   b.pieces,
		GameOver: b.gameOver,
	}

	if b.hasCurrent {
		cells := b.current.Cells()
		s.Current = &PieceView{
			Kind:  b.current.Kind,
			Color: b.current.Color(),
			Cells: cells[:],
		}
		for _, c := range b.GhostCells() {
			if c.Y >= 0 {
				s.Ghost = append(s.Ghost, c)
			}
		}
	}
	if b.hasHold {
		hold := b.hold
		s.Hold = &hold
	}
	return s
}
