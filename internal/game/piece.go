package game

// Piece is one active shape instance. X and Y anchor the top-left corner of
// its 4x4 box. Pieces are values: every move or rotation builds a new one.
type Piece struct {
	Kind     PieceKind `json:"kind"`
	X        int       `json:"x"`
	Y        int       `json:"y"`
	Rotation int       `json:"rotation"`
}

// Cells returns the absolute grid cells the piece covers.
func (p Piece) Cells() [4]Point {
	cells := ShapeCells(p.Kind, p.Rotation)
	for i := range cells {
		cells[i].X += p.X
		cells[i].Y += p.Y
	}
	return cells
}

// Color returns the piece's display color.
func (p Piece) Color() Color {
	return p.Kind.Color()
}

// Rotated returns a copy turned by dr quarter turns (positive is clockwise)
// around the same anchor.
func (p Piece) Rotated(dr int) Piece {
	p.Rotation = mod4(p.Rotation + dr)
	return p
}

// Moved returns a copy translated by (dx, dy).
func (p Piece) Moved(dx, dy int) Piece {
	p.X += dx
	p.Y += dy
	return p
}
