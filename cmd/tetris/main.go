package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/amalg/go-tetris/internal/config"
	"github.com/amalg/go-tetris/internal/game"
	"github.com/amalg/go-tetris/internal/ui"
)

func main() {
	configPath := flag.String("config", ".env", "Optional dotenv file with TETRIS_* settings")
	cols := flag.Int("cols", 10, "Board width")
	rows := flag.Int("rows", 20, "Board height")
	seed := flag.Uint64("seed", 0, "Piece sequence seed (0: time based)")
	tickRate := flag.Int("tick-rate", 60, "Engine cycles per second")
	logFile := flag.String("log", "", "Log file path (default: discard logs)")
	mono := flag.Bool("mono", false, "Disable colors")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Explicit flags win over the file and environment.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "cols":
			cfg.Game.Cols = *cols
		case "rows":
			cfg.Game.Rows = *rows
		case "seed":
			cfg.Game.Seed = *seed
		case "tick-rate":
			cfg.Game.TickRate = *tickRate
		case "log":
			cfg.LogFile = *logFile
		}
	})
	if err := cfg.Game.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid settings: %v\n", err)
		os.Exit(1)
	}

	// Redirect log output before the engine starts.
	// Any stderr output will corrupt Bubbletea's terminal rendering.
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		log.SetOutput(f)
	} else {
		log.SetOutput(io.Discard)
	}

	if *mono {
		lipgloss.SetColorProfile(termenv.Ascii)
	} else {
		lipgloss.SetColorProfile(termenv.EnvColorProfile())
	}

	if cfg.Game.Seed == 0 {
		cfg.Game.Seed = uint64(time.Now().UnixNano())
	}
	log.Printf("[MAIN] Starting %dx%d game, seed=%d", cfg.Game.Cols, cfg.Game.Rows, cfg.Game.Seed)

	engine := game.NewEngine(cfg.Game, rand.New(rand.NewPCG(cfg.Game.Seed, cfg.Game.Seed)))
	go engine.Run()

	// Handle OS signals for clean shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		engine.Stop()
		os.Exit(0)
	}()

	p := tea.NewProgram(ui.NewModel(engine), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		engine.Stop()
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}

	final := engine.GetStateCopy()
	engine.Stop()
	fmt.Printf("Score: %d  Level: %d  Lines: %d\n", final.Score, final.Level, final.Lines)
}
