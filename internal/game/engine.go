package game

import (
	"log"
	"math/rand/v2"
	"sync"
	"time"
)

// Engine drives one game session. Each cycle it drains queued intents,
// advances gravity by the elapsed wall-clock time and publishes a snapshot,
// in that order.
type Engine struct {
	Config  GameConfig
	board   *Board
	rng     *rand.Rand
	paused  bool
	ended   bool // Game over already logged for this session
	actions chan Action
	states  chan Snapshot
	done    chan struct{}
	stop    sync.Once
	mu      sync.Mutex
	onTick  func(Snapshot) // Callback after each tick with a COPY of state
	last    time.Time
}

// NewEngine creates an engine with a fresh board. rng feeds every bag the
// session uses, including after restarts.
func NewEngine(config GameConfig, rng *rand.Rand) *Engine {
	return &Engine{
		Config:  config,
		board:   NewBoard(config, rng),
		rng:     rng,
		actions: make(chan Action, 256),
		states:  make(chan Snapshot, 1),
		done:    make(chan struct{}),
	}
}

// OnTick sets a callback that is invoked after every cycle with a copy of
// the state.
func (e *Engine) OnTick(fn func(Snapshot)) {
	e.onTick = fn
}

// States returns a channel carrying the most recent snapshot. Stale
// snapshots are replaced rather than queued.
func (e *Engine) States() <-chan Snapshot {
	return e.states
}

// Run starts the game loop at the configured tick rate.
// This blocks until Stop() is called.
func (e *Engine) Run() {
	ticker := time.NewTicker(time.Second / time.Duration(e.Config.TickRate))
	defer ticker.Stop()

	e.last = time.Now()
	for {
		select {
		case <-e.done:
			return
		case now := <-ticker.C:
			elapsed := now.Sub(e.last)
			e.last = now
			e.tick(elapsed)
		}
	}
}

// Stop halts the game loop. It is safe to call more than once.
func (e *Engine) Stop() {
	e.stop.Do(func() { close(e.done) })
}

// EnqueueAction queues an intent for the next cycle.
func (e *Engine) EnqueueAction(a Action) {
	select {
	case e.actions <- a:
	default:
		// Drop action if buffer is full (prevents blocking)
	}
}

// tick runs one cycle and publishes the result.
// The snapshot is taken under the lock; callbacks run after it is released.
func (e *Engine) tick(elapsed time.Duration) {
	e.mu.Lock()
	e.step(elapsed)
	snap := e.snapshotLocked()
	e.mu.Unlock()

	e.publish(snap)
	if e.onTick != nil {
		e.onTick(snap)
	}
}

// step drains intents then applies gravity. MUST be called while e.mu is held.
func (e *Engine) step(elapsed time.Duration) {
	e.drainActions()
	if !e.paused {
		e.board.TickGravity(elapsed)
	}
	if e.board.GameOver() && !e.ended {
		e.ended = true
		log.Printf("[ENGINE] Game over: score=%d lines=%d level=%d",
			e.board.Score(), e.board.Lines(), e.board.Level())
	}
}

// drainActions processes all queued intents.
func (e *Engine) drainActions() {
	for {
		select {
		case a := <-e.actions:
			e.apply(a)
		default:
			return
		}
	}
}

func (e *Engine) apply(a Action) {
	switch a.Type {
	case ActionRestart:
		e.restartLocked()
		return
	case ActionPause:
		if !e.board.GameOver() {
			e.paused = !e.paused
		}
		return
	}
	if e.paused {
		return
	}

	b := e.board
	switch a.Type {
	case ActionMoveLeft:
		b.MoveLeft()
	case ActionMoveRight:
		b.MoveRight()
	case ActionSoftDrop:
		b.SoftDrop()
	case ActionRotateCW:
		b.RotateCW()
	case ActionRotateCCW:
		b.RotateCCW()
	case ActionHardDrop:
		b.HardDrop()
	case ActionHold:
		b.HoldPiece()
	}
}

// Restart discards the current board and starts a new session.
func (e *Engine) Restart() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.restartLocked()
}

func (e *Engine) restartLocked() {
	e.board = NewBoard(e.Config, e.rng)
	e.paused = false
	e.ended = false
	log.Printf("[ENGINE] New game started")
}

// GetStateCopy returns a snapshot of the current session.
func (e *Engine) GetStateCopy() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.snapshotLocked()
}

// snapshotLocked MUST be called while e.mu is held.
func (e *Engine) snapshotLocked() Snapshot {
	s := e.board.Snapshot()
	s.Paused = e.paused
	return s
}

// publish replaces any unread snapshot with s.
func (e *Engine) publish(s Snapshot) {
	select {
	case e.states <- s:
		return
	default:
	}
	select {
	case <-e.states:
	default:
	}
	select {
	case e.states <- s:
	default:
	}
}
