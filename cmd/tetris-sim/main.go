// Command tetris-sim plays seeded games with random intents, without a
// terminal, and reports how far each one got.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"runtime/pprof"
	"time"

	"github.com/amalg/go-tetris/internal/config"
	"github.com/amalg/go-tetris/internal/game"
)

var cpuprofile = flag.String("cpuprofile", "", "write cpu profile to file")

// result summarizes one simulated game.
type result struct {
	pieces int
	lines  int
	score  int
	level  int
}

func main() {
	configPath := flag.String("config", "", "Optional dotenv file with TETRIS_* settings")
	games := flag.Int("games", 10, "Number of games to play")
	seed := flag.Uint64("seed", 1, "Seed of the first game")
	maxSteps := flag.Int("max-steps", 100000, "Step limit per game")
	flag.Parse()

	log.SetPrefix("[SIM] ")
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			log.Fatal(err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal(err)
		}
		defer pprof.StopCPUProfile()
	}

	var total result
	start := time.Now()
	for i := 0; i < *games; i++ {
		s := *seed + uint64(i)
		r := play(cfg.Game, s, *maxSteps)
		fmt.Printf("game %d (seed %d): %d pieces, %d lines, score %d, level %d\n",
			i+1, s, r.pieces, r.lines, r.score, r.level)
		total.pieces += r.pieces
		total.lines += r.lines
		total.score += r.score
	}
	elapsed := time.Since(start)
	fmt.Printf("%d games in %s: %d pieces, %d lines, %.0f pieces/s\n",
		*games, elapsed, total.pieces, total.lines, float64(total.pieces)/elapsed.Seconds())
}

// intents is the pool random play draws from. Moves are weighted up so pieces
// spread across the board before they land.
var intents = []func(*game.Board) bool{
	(*game.Board).MoveLeft,
	(*game.Board).MoveLeft,
	(*game.Board).MoveRight,
	(*game.Board).MoveRight,
	(*game.Board).RotateCW,
	(*game.Board).RotateCCW,
	(*game.Board).SoftDrop,
	(*game.Board).HoldPiece,
	func(b *game.Board) bool { return b.HardDrop() > 0 },
}

// play runs one game: each step issues one random intent, then advances
// gravity by one engine frame.
func play(cfg game.GameConfig, seed uint64, maxSteps int) result {
	rng := rand.New(rand.NewPCG(seed, seed))
	board := game.NewBoard(cfg, rng)
	frame := time.Second / time.Duration(cfg.TickRate)

	for step := 0; step < maxSteps && !board.GameOver(); step++ {
		intents[rng.IntN(len(intents))](board)
		board.TickGravity(frame)
	}
	return result{
		pieces: board.Pieces(),
		lines:  board.Lines(),
		score:  board.Score(),
		level:  board.Level(),
	}
}
