package game

// Base layouts for rotation state 0, inside a 4x4 box.
var shapeDefs = [NumKinds][4]string{
	I: {
		"....",
		"XXXX",
		"....",
		"....",
	},
	J: {
		"X...",
		"XXX.",
		"....",
		"....",
	},
	L: {
		"..X.",
		"XXX.",
		"....",
		"....",
	},
	O: {
		".XX.",
		".XX.",
		"....",
		"....",
	},
	S: {
		".XX.",
		"XX..",
		"....",
		"....",
	},
	T: {
		".X..",
		"XXX.",
		"....",
		"....",
	},
	Z: {
		"XX..",
		".XX.",
		"....",
		"....",
	},
}

// shapes holds the cell offsets of every kind in every rotation state.
// Built once at init and read-only afterwards.
var shapes = buildShapes()

func buildShapes() [NumKinds][4][4]Point {
	var table [NumKinds][4][4]Point
	for _, kind := range Kinds {
		cur := parseShape(shapeDefs[kind])
		for r := 0; r < 4; r++ {
			table[kind][r] = cur
			cur = rotateCW(cur)
		}
	}
	return table
}

func parseShape(rows [4]string) [4]Point {
	var cells [4]Point
	n := 0
	for y, row := range rows {
		for x, ch := range row {
			if ch == 'X' {
				cells[n] = Point{X: x, Y: y}
				n++
			}
		}
	}
	return cells
}

// rotateCW turns cells 90 degrees clockwise around the center of the 4x4 box.
func rotateCW(cells [4]Point) [4]Point {
	var out [4]Point
	for i, c := range cells {
		out[i] = Point{X: 3 - c.Y, Y: c.X}
	}
	return out
}

// ShapeCells returns the box-relative offsets of kind in the given rotation
// state. Rotation is taken modulo 4.
func ShapeCells(kind PieceKind, rotation int) [4]Point {
	return shapes[kind][mod4(rotation)]
}

func mod4(r int) int {
	return ((r % 4) + 4) % 4
}
