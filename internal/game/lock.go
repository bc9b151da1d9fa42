package game

// lineScore returns the base score for clearing n rows with one lock.
// Any other count scores nothing.
func lineScore(n int) int {
	switch n {
	case 1:
		return 100
	case 2:
		return 300
	case 3:
		return 500
	case 4:
		return 800
	default:
		return 0
	}
}

// LockPiece writes the current piece into the grid, clears completed rows
// and spawns the next piece. A piece locked with any cell above the visible
// playfield ends the game; those cells are dropped.
func (b *Board) LockPiece() {
	if !b.hasCurrent {
		return
	}
	color := b.current.Color()
	for _, c := range b.current.Cells() {
		if c.Y < 0 {
			b.gameOver = true
			continue
		}
		b.grid[c.Y][c.X] = Cell{Color: color, Occupied: true}
	}
	b.current = Piece{}
	b.hasCurrent = false
	b.pieces++

	b.clearLines()
	if b.gameOver {
		return
	}
	b.Spawn()
}

// clearLines removes every full row, shifts the survivors down keeping their
// order and applies line scoring. It returns the number of rows removed.
func (b *Board) clearLines() int {
	kept := make([][]Cell, 0, b.rows)
	for _, row := range b.grid {
		if !rowFull(row) {
			kept = append(kept, row)
		}
	}
	cleared := b.rows - len(kept)
	if cleared == 0 {
		return 0
	}

	grid := make([][]Cell, 0, b.rows)
	for i := 0; i < cleared; i++ {
		grid = append(grid, make([]Cell, b.cols))
	}
	b.grid = append(grid, kept...)

	b.score += lineScore(cleared) * b.level
	b.lines += cleared
	b.level = 1 + b.lines/10
	return cleared
}

func rowFull(row []Cell) bool {
	for _, c := range row {
		if !c.Occupied {
			return false
		}
	}
	return true
}
