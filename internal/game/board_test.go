package game

import (
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBoard(t *testing.T) *Board {
	t.Helper()
	return NewBoard(DefaultConfig(), rand.New(rand.NewPCG(1, 2)))
}

// setCurrent installs p as the active piece, bypassing the queue.
func setCurrent(b *Board, p Piece) {
	b.current = p
	b.hasCurrent = true
	b.canHold = true
}

func fillCell(b *Board, x, y int) {
	b.grid[y][x] = Cell{Color: Color{R: 90, G: 90, B: 90}, Occupied: true}
}

// fillRow occupies row y except the listed columns.
func fillRow(b *Board, y int, except ...int) {
	skip := make(map[int]bool, len(except))
	for _, x := range except {
		skip[x] = true
	}
	for x := 0; x < b.cols; x++ {
		if !skip[x] {
			fillCell(b, x, y)
		}
	}
}

func occupiedCount(b *Board) int {
	n := 0
	for _, row := range b.grid {
		for _, c := range row {
			if c.Occupied {
				n++
			}
		}
	}
	return n
}

func spawnY(kind PieceKind) int {
	if kind == I {
		return -1
	}
	return 0
}

func TestNewBoard(t *testing.T) {
	b := newTestBoard(t)

	require.Len(t, b.grid, 20)
	require.Len(t, b.grid[0], 10)
	assert.Len(t, b.Next(), 5)
	assert.Equal(t, 1, b.Level())
	assert.False(t, b.GameOver())
	assert.True(t, b.CanHold())

	cur, ok := b.Current()
	require.True(t, ok, "first piece should be spawned")
	assert.Equal(t, 3, cur.X)
	assert.Equal(t, spawnY(cur.Kind), cur.Y)
	assert.Equal(t, 0, cur.Rotation)
	assert.Equal(t, 0, occupiedCount(b))
}

func TestIsValid(t *testing.T) {
	b := newTestBoard(t)
	fillCell(b, 5, 10)

	tests := []struct {
		name  string
		piece Piece
		want  bool
	}{
		{"empty area", Piece{Kind: O, X: 0, Y: 0}, true},
		{"above playfield", Piece{Kind: I, X: 3, Y: -3}, true},
		{"above playfield past left edge", Piece{Kind: I, X: -1, Y: -3}, false},
		{"past right edge", Piece{Kind: O, X: 8, Y: 5}, false},
		{"past floor", Piece{Kind: O, X: 3, Y: 19}, false},
		{"resting on floor", Piece{Kind: O, X: 3, Y: 18}, true},
		{"overlaps locked cell", Piece{Kind: O, X: 3, Y: 9}, false},
		{"next to locked cell", Piece{Kind: O, X: 4, Y: 9}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, b.IsValid(tt.piece))
		})
	}
}

func TestTryMove(t *testing.T) {
	b := newTestBoard(t)
	setCurrent(b, Piece{Kind: T, X: 3, Y: 5})

	require.True(t, b.TryMove(1, 2))
	cur, _ := b.Current()
	assert.Equal(t, Piece{Kind: T, X: 4, Y: 7}, cur)

	// Walk to the left wall, then the next step must be rejected.
	for b.MoveLeft() {
	}
	cur, _ = b.Current()
	assert.Equal(t, 0, cur.X)

	before := b.Snapshot()
	assert.False(t, b.TryMove(-1, 0))
	if diff := cmp.Diff(before, b.Snapshot()); diff != "" {
		t.Errorf("blocked move changed state (-before +after):\n%s", diff)
	}
}

func TestTryRotateKickOrder(t *testing.T) {
	t.Run("one column right beats one column left", func(t *testing.T) {
		b := newTestBoard(t)
		setCurrent(b, Piece{Kind: T, X: 3, Y: 5})
		fillCell(b, 5, 7) // blocks the unshifted rotation only

		require.True(t, b.RotateCW())
		cur, _ := b.Current()
		assert.Equal(t, Piece{Kind: T, X: 4, Y: 5, Rotation: 1}, cur)
	})

	t.Run("one row up before two columns", func(t *testing.T) {
		b := newTestBoard(t)
		setCurrent(b, Piece{Kind: T, X: 3, Y: 5})
		fillCell(b, 4, 7)
		fillCell(b, 5, 7)
		fillCell(b, 6, 7)

		require.True(t, b.RotateCW())
		cur, _ := b.Current()
		assert.Equal(t, Piece{Kind: T, X: 3, Y: 4, Rotation: 1}, cur)
	})

	t.Run("no shift when free", func(t *testing.T) {
		b := newTestBoard(t)
		setCurrent(b, Piece{Kind: T, X: 3, Y: 5})

		require.True(t, b.RotateCCW())
		cur, _ := b.Current()
		assert.Equal(t, Piece{Kind: T, X: 3, Y: 5, Rotation: 3}, cur)
	})

	t.Run("fails when every kick is blocked", func(t *testing.T) {
		b := newTestBoard(t)
		p := Piece{Kind: T, X: 3, Y: 5}
		setCurrent(b, p)
		own := make(map[Point]bool)
		for _, c := range p.Cells() {
			own[c] = true
		}
		for y := 0; y < b.rows; y++ {
			for x := 0; x < b.cols; x++ {
				if !own[Point{x, y}] {
					fillCell(b, x, y)
				}
			}
		}

		before := b.Snapshot()
		assert.False(t, b.RotateCW())
		assert.False(t, b.RotateCCW())
		if diff := cmp.Diff(before, b.Snapshot()); diff != "" {
			t.Errorf("failed rotation changed state (-before +after):\n%s", diff)
		}
	})
}

func TestRotateO(t *testing.T) {
	b := newTestBoard(t)
	start := Piece{Kind: O, X: 3, Y: 0}
	setCurrent(b, start)

	for i := 0; i < 4; i++ {
		require.True(t, b.RotateCW(), "rotation %d", i)
		cur, _ := b.Current()
		assertSquare(t, cur.Cells())
	}
	cur, _ := b.Current()
	assert.Equal(t, start.Cells(), cur.Cells())

	require.True(t, b.RotateCW())
	require.True(t, b.RotateCCW())
	cur, _ = b.Current()
	assert.Equal(t, start.Cells(), cur.Cells())
}

func assertSquare(t *testing.T, cells [4]Point) {
	t.Helper()
	minX, maxX, minY, maxY := cells[0].X, cells[0].X, cells[0].Y, cells[0].Y
	for _, c := range cells {
		minX, maxX = min(minX, c.X), max(maxX, c.X)
		minY, maxY = min(minY, c.Y), max(maxY, c.Y)
	}
	assert.Equal(t, 1, maxX-minX, "O should stay two columns wide: %v", cells)
	assert.Equal(t, 1, maxY-minY, "O should stay two rows tall: %v", cells)
}

func TestHardDrop(t *testing.T) {
	b := newTestBoard(t)
	setCurrent(b, Piece{Kind: O, X: 3, Y: 0})

	assert.Equal(t, 18, b.HardDropDistance())
	assert.Equal(t, 18, b.HardDrop())
	assert.Equal(t, 36, b.Score())
	for _, p := range []Point{{4, 18}, {5, 18}, {4, 19}, {5, 19}} {
		assert.True(t, b.Occupied(p.X, p.Y), "cell %v should be locked", p)
	}
	assert.Equal(t, 4, occupiedCount(b))
	assert.Equal(t, 1, b.Pieces())

	cur, ok := b.Current()
	require.True(t, ok, "next piece should spawn")
	assert.Equal(t, spawnY(cur.Kind), cur.Y)
}

func TestHardDropClearsRow(t *testing.T) {
	b := newTestBoard(t)
	fillRow(b, 19, 5)
	setCurrent(b, Piece{Kind: I, X: 3, Y: 0, Rotation: 1}) // column 5, rows 0..3
	level := b.Level()

	assert.Equal(t, 16, b.HardDrop())
	assert.Equal(t, 1, b.Lines())
	assert.Equal(t, 100*level+2*16, b.Score())
	for y := 17; y <= 19; y++ {
		assert.True(t, b.Occupied(5, y), "column 5 row %d should hold the shifted bar", y)
	}
	assert.Equal(t, 3, occupiedCount(b))
}

func TestNewBoardEmptySpeedTable(t *testing.T) {
	config := DefaultConfig()
	config.LevelSpeeds = nil
	b := NewBoard(config, rand.New(rand.NewPCG(1, 2)))

	assert.Equal(t, DefaultLevelSpeeds[0], b.Interval())
	setCurrent(b, Piece{Kind: O, X: 3, Y: 0})
	assert.True(t, b.TickGravity(DefaultLevelSpeeds[0]))
	cur, _ := b.Current()
	assert.Equal(t, 1, cur.Y)
}

func TestSoftDrop(t *testing.T) {
	b := newTestBoard(t)
	setCurrent(b, Piece{Kind: O, X: 3, Y: 0})

	for i := 0; i < 5; i++ {
		require.True(t, b.SoftDrop())
	}
	assert.Equal(t, 5, b.Score())

	setCurrent(b, Piece{Kind: O, X: 3, Y: 18})
	assert.False(t, b.SoftDrop())
	assert.Equal(t, 5, b.Score(), "blocked soft drop scores nothing")
}

func TestGhostCells(t *testing.T) {
	b := newTestBoard(t)
	p := Piece{Kind: T, X: 3, Y: 2}
	setCurrent(b, p)

	ghost := b.GhostCells()
	dist := b.HardDropDistance()
	cells := p.Cells()
	for i := range cells {
		assert.Equal(t, Point{cells[i].X, cells[i].Y + dist}, ghost[i])
	}
	cur, _ := b.Current()
	assert.Equal(t, p, cur, "ghost computation must not move the piece")
}

func TestSnapshotGhostSkipsHiddenRows(t *testing.T) {
	b := newTestBoard(t)
	setCurrent(b, Piece{Kind: I, X: 3, Y: -2, Rotation: 1}) // column 5, rows -2..1
	fillCell(b, 5, 2)

	s := b.Snapshot()
	require.NotNil(t, s.Current)
	assert.Equal(t, []Point{{5, 0}, {5, 1}}, s.Ghost)
	assert.Len(t, s.Current.Cells, 4)
}

func TestClearLinesKeepsSurvivorOrder(t *testing.T) {
	config := DefaultConfig()
	config.Cols = 4
	config.Rows = 8
	b := NewBoard(config, rand.New(rand.NewPCG(1, 2)))

	rows := make([][]Cell, config.Rows)
	for y := range rows {
		rows[y] = make([]Cell, config.Cols)
		mark := Cell{Color: Color{R: uint8(y + 1)}, Occupied: true}
		if y == 2 || y == 5 {
			for x := range rows[y] {
				rows[y][x] = mark
			}
		} else {
			rows[y][y%config.Cols] = mark
		}
	}
	for y := range rows {
		copy(b.grid[y], rows[y])
	}

	want := [][]Cell{
		make([]Cell, config.Cols),
		make([]Cell, config.Cols),
		rows[0], rows[1], rows[3], rows[4], rows[6], rows[7],
	}
	assert.Equal(t, 2, b.clearLines())
	if diff := cmp.Diff(want, b.grid); diff != "" {
		t.Errorf("grid after clear (-want +got):\n%s", diff)
	}
	assert.Equal(t, 2, b.Lines())
	assert.Equal(t, 300, b.Score())
}

func TestLineScoring(t *testing.T) {
	tests := []struct {
		cleared int
		level   int
		want    int
	}{
		{1, 1, 100},
		{2, 1, 300},
		{3, 1, 500},
		{4, 1, 800},
		{1, 3, 300},
		{2, 3, 900},
		{3, 3, 1500},
		{4, 3, 2400},
		{5, 1, 0},
	}
	for _, tt := range tests {
		b := newTestBoard(t)
		b.level = tt.level
		b.lines = (tt.level - 1) * 10
		for i := 0; i < tt.cleared; i++ {
			fillRow(b, b.rows-1-i)
		}

		linesBefore := b.lines
		assert.Equal(t, tt.cleared, b.clearLines())
		assert.Equal(t, tt.want, b.Score(), "%d lines at level %d", tt.cleared, tt.level)
		assert.Equal(t, linesBefore+tt.cleared, b.Lines())
		assert.Equal(t, 1+b.Lines()/10, b.Level())
	}
}

func TestLevelFollowsLines(t *testing.T) {
	b := newTestBoard(t)
	b.lines = 9
	fillRow(b, b.rows-1)

	b.clearLines()
	assert.Equal(t, 10, b.Lines())
	assert.Equal(t, 2, b.Level())
	assert.Equal(t, 100, b.Score(), "score uses the level before the clear")

	for i := 0; i < 4; i++ {
		fillRow(b, b.rows-1-i)
	}
	b.clearLines()
	assert.Equal(t, 14, b.Lines())
	assert.Equal(t, 2, b.Level())
	assert.Equal(t, 100+800*2, b.Score())
}

func TestLockCompletesRow(t *testing.T) {
	b := newTestBoard(t)
	fillRow(b, 19, 5)
	setCurrent(b, Piece{Kind: I, X: 3, Y: 16, Rotation: 1}) // column 5, rows 16..19
	level := b.Level()

	b.LockPiece()

	assert.Equal(t, 1, b.Lines())
	assert.Equal(t, 100*level, b.Score())
	assert.False(t, b.GameOver())
	for y := 17; y <= 19; y++ {
		assert.True(t, b.Occupied(5, y), "column 5 row %d should hold the shifted bar", y)
	}
	assert.Equal(t, 3, occupiedCount(b))

	_, ok := b.Current()
	assert.True(t, ok)
}

func TestLockAboveBoardEndsGame(t *testing.T) {
	b := newTestBoard(t)
	setCurrent(b, Piece{Kind: I, X: 3, Y: -2, Rotation: 1}) // column 5, rows -2..1

	b.LockPiece()

	assert.True(t, b.GameOver())
	assert.True(t, b.Occupied(5, 0))
	assert.True(t, b.Occupied(5, 1))
	assert.Equal(t, 2, occupiedCount(b))
	_, ok := b.Current()
	assert.False(t, ok, "no piece spawns after a game-ending lock")
}

func TestSpawnBlockedEndsGame(t *testing.T) {
	b := newTestBoard(t)
	b.current = Piece{}
	b.hasCurrent = false
	fillRow(b, 0)
	fillRow(b, 1)

	b.Spawn()

	assert.True(t, b.GameOver())
	_, ok := b.Current()
	assert.False(t, ok)
}

func TestCommandsRejectedAfterGameOver(t *testing.T) {
	b := newTestBoard(t)
	setCurrent(b, Piece{Kind: I, X: 3, Y: -2, Rotation: 1})
	b.LockPiece()
	require.True(t, b.GameOver())

	before := b.Snapshot()
	assert.False(t, b.MoveLeft())
	assert.False(t, b.MoveRight())
	assert.False(t, b.SoftDrop())
	assert.False(t, b.RotateCW())
	assert.False(t, b.RotateCCW())
	assert.Equal(t, 0, b.HardDrop())
	assert.False(t, b.HoldPiece())
	assert.False(t, b.TickGravity(DefaultLevelSpeeds[0]*10))
	if diff := cmp.Diff(before, b.Snapshot()); diff != "" {
		t.Errorf("commands changed a finished game (-before +after):\n%s", diff)
	}
}

func TestHoldPiece(t *testing.T) {
	b := newTestBoard(t)
	first, _ := b.Current()
	upcoming := b.Next()[0]

	require.True(t, b.HoldPiece())
	hold, ok := b.Hold()
	require.True(t, ok)
	assert.Equal(t, first.Kind, hold)

	cur, _ := b.Current()
	assert.Equal(t, upcoming, cur.Kind)
	assert.False(t, b.CanHold())
	assert.Len(t, b.Next(), 5)

	assert.False(t, b.HoldPiece(), "hold is allowed once per piece")
	hold, _ = b.Hold()
	assert.Equal(t, first.Kind, hold)

	b.HardDrop()
	require.True(t, b.CanHold(), "spawn re-enables hold")
	second, _ := b.Current()

	require.True(t, b.HoldPiece())
	cur, _ = b.Current()
	assert.Equal(t, Piece{Kind: first.Kind, X: 3, Y: 0}, cur)
	hold, _ = b.Hold()
	assert.Equal(t, second.Kind, hold)
	assert.False(t, b.CanHold())
}

func TestHoldSwapBlockedEndsGame(t *testing.T) {
	b := newTestBoard(t)
	setCurrent(b, Piece{Kind: T, X: 3, Y: 10})
	b.hold = O
	b.hasHold = true
	fillCell(b, 4, 0)
	fillCell(b, 5, 0)

	require.True(t, b.HoldPiece())

	assert.True(t, b.GameOver())
	_, ok := b.Current()
	assert.False(t, ok)
	hold, _ := b.Hold()
	assert.Equal(t, T, hold)
}

func TestNextQueueStaysFull(t *testing.T) {
	b := newTestBoard(t)
	for i := 0; i < 30 && !b.GameOver(); i++ {
		b.HardDrop()
		assert.Len(t, b.Next(), 5)
	}
}
