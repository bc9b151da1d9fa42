package game

// kicks is the offset search order tried after a rotation, first valid wins:
// no shift, one column either way, one row up, then two columns either way.
var kicks = [...]Point{
	{X: 0, Y: 0},
	{X: 1, Y: 0},
	{X: -1, Y: 0},
	{X: 0, Y: -1},
	{X: 2, Y: 0},
	{X: -2, Y: 0},
}

// active reports whether the board accepts piece commands.
func (b *Board) active() bool {
	return b.hasCurrent && !b.gameOver
}

// TryMove translates the current piece by (dx, dy) if the result is valid.
// A blocked move leaves the board unchanged and returns false.
func (b *Board) TryMove(dx, dy int) bool {
	if !b.active() {
		return false
	}
	moved := b.current.Moved(dx, dy)
	if !b.IsValid(moved) {
		return false
	}
	b.current = moved
	return true
}

// TryRotate turns the current piece one step (dir > 0 clockwise, dir < 0
// counter-clockwise), trying each kick offset in order.
func (b *Board) TryRotate(dir int) bool {
	if !b.active() || dir == 0 {
		return false
	}
	step := 1
	if dir < 0 {
		step = -1
	}
	rotated := b.current.Rotated(step)
	for _, k := range kicks {
		candidate := rotated.Moved(k.X, k.Y)
		if b.IsValid(candidate) {
			b.current = candidate
			return true
		}
	}
	return false
}

// HardDropDistance returns how many rows the current piece can fall.
func (b *Board) HardDropDistance() int {
	if !b.hasCurrent {
		return 0
	}
	return b.dropDistance(b.current)
}

// dropDistance probes one row at a time on a copy of p.
func (b *Board) dropDistance(p Piece) int {
	dist := 0
	for {
		p = p.Moved(0, 1)
		if !b.IsValid(p) {
			return dist
		}
		dist++
	}
}

// HardDrop drops the current piece to its landing row, locks it and awards
// two points per row fallen. It returns the distance dropped.
func (b *Board) HardDrop() int {
	if !b.active() {
		return 0
	}
	dist := b.HardDropDistance()
	b.current = b.current.Moved(0, dist)
	b.LockPiece()
	b.score += 2 * dist
	return dist
}

// SoftDrop moves the current piece down one row, awarding a point on success.
func (b *Board) SoftDrop() bool {
	if !b.TryMove(0, 1) {
		return false
	}
	b.score++
	return true
}

// MoveLeft shifts the current piece one column left.
func (b *Board) MoveLeft() bool { return b.TryMove(-1, 0) }

// MoveRight shifts the current piece one column right.
func (b *Board) MoveRight() bool { return b.TryMove(1, 0) }

// RotateCW rotates the current piece clockwise.
func (b *Board) RotateCW() bool { return b.TryRotate(1) }

// RotateCCW rotates the current piece counter-clockwise.
func (b *Board) RotateCCW() bool { return b.TryRotate(-1) }

// GhostCells returns the cells the current piece would occupy after a hard
// drop. It is computed on a copy; the live piece is never touched.
func (b *Board) GhostCells() []Point {
	if !b.hasCurrent {
		return nil
	}
	ghost := b.current.Moved(0, b.dropDistance(b.current))
	cells := ghost.Cells()
	return cells[:]
}
