package game

// Spawn takes the front of the next queue, tops the queue back up from the
// bag and places the new piece at the spawn anchor. The long bar starts one
// row higher. If the piece does not fit the game is over and no piece is
// installed.
func (b *Board) Spawn() {
	if b.gameOver {
		return
	}
	if len(b.next) < b.lookahead {
		b.next = append(b.next, b.bag.Next())
	}
	kind := b.next[0]
	b.next = append(b.next[:0], b.next[1:]...)
	b.next = append(b.next, b.bag.Next())

	piece := b.spawnPiece(kind)
	if kind == I {
		piece.Y = -1
	}
	if !b.IsValid(piece) {
		b.gameOver = true
		b.current = Piece{}
		b.hasCurrent = false
		return
	}
	b.current = piece
	b.hasCurrent = true
	b.canHold = true
}

// HoldPiece swaps the current piece with the hold slot, at most once per
// spawned piece. With an empty slot the next piece spawns; otherwise the held
// kind re-enters at the spawn anchor. It returns false when hold is
// unavailable.
func (b *Board) HoldPiece() bool {
	if !b.canHold || !b.active() {
		return false
	}
	kind := b.current.Kind

	if !b.hasHold {
		b.hold = kind
		b.hasHold = true
		b.current = Piece{}
		b.hasCurrent = false
		b.Spawn()
	} else {
		swapped := b.spawnPiece(b.hold)
		b.hold = kind
		if b.IsValid(swapped) {
			b.current = swapped
		} else {
			b.gameOver = true
			b.current = Piece{}
			b.hasCurrent = false
		}
	}
	b.canHold = false
	return true
}
