package game

import "time"

// GravityInterval returns the time per automatic row drop at level. Levels
// past the end of the table reuse its last (fastest) entry. An empty table
// reads as DefaultLevelSpeeds.
func GravityInterval(level int, table []time.Duration) time.Duration {
	if len(table) == 0 {
		table = DefaultLevelSpeeds
	}
	idx := min(level-1, len(table)-1)
	if idx < 0 {
		idx = 0
	}
	return table[idx]
}

// Interval returns the gravity interval for the board's current level.
func (b *Board) Interval() time.Duration {
	return GravityInterval(b.level, b.speeds)
}

// TickGravity advances gravity by elapsed. Each full interval moves the
// piece down one row. The first blocked step locks the piece and ends the
// call, so one call locks at most once. It returns false if the board does
// not accept commands.
func (b *Board) TickGravity(elapsed time.Duration) bool {
	if !b.active() {
		return false
	}
	b.gravity += elapsed
	interval := b.Interval()
	for b.gravity >= interval {
		b.gravity -= interval
		if !b.TryMove(0, 1) {
			b.LockPiece()
			break
		}
	}
	return true
}
