package game

import (
	"math/rand/v2"
)

// Bag deals piece kinds in shuffled runs of seven. Every run aligned to a
// refill contains each kind exactly once.
type Bag struct {
	rng   *rand.Rand
	kinds []PieceKind
}

// NewBag creates a bag drawing its shuffles from rng.
func NewBag(rng *rand.Rand) *Bag {
	return &Bag{
		rng:   rng,
		kinds: make([]PieceKind, 0, NumKinds),
	}
}

// Next pops one kind, refilling the bag first if it is empty.
func (b *Bag) Next() PieceKind {
	if len(b.kinds) == 0 {
		b.refill()
	}
	last := len(b.kinds) - 1
	k := b.kinds[last]
	b.kinds = b.kinds[:last]
	return k
}

// Remaining returns how many kinds are left before the next refill.
func (b *Bag) Remaining() int {
	return len(b.kinds)
}

func (b *Bag) refill() {
	b.kinds = append(b.kinds[:0], Kinds[:]...)
	b.rng.Shuffle(len(b.kinds), func(i, j int) {
		b.kinds[i], b.kinds[j] = b.kinds[j], b.kinds[i]
	})
}
