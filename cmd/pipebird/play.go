package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/pipe-bird/internal/core"
	"github.com/vovakirdan/pipe-bird/internal/game"
	"github.com/vovakirdan/pipe-bird/internal/platform/console"
	"github.com/vovakirdan/pipe-bird/internal/platform/tui"
)

const (
	frontendTea   = "tea"
	frontendTcell = "tcell"
)

var flagFrontend string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start Pipe Bird in the current terminal.

Controls:
  P        - Play (from the menu or after game over)
  Space    - Flap
  Q        - Quit (from the menu or after game over)
  Ctrl+C   - Quit at any time

Frontends:
  tea    - Bubble Tea renderer (default)
  tcell  - Direct cell renderer

The playfield is 80x50 cells; smaller terminals clip the bottom rows.

Examples:
  pipebird play
  pipebird play --frontend tcell
  pipebird play --seed 42 --log-file ./pipebird.log
  pipebird play --config ./my-pipebird.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagFrontend, "frontend", frontendTea, "Renderer to use: tea or tcell")
}

func runPlay(_ *cobra.Command, _ []string) {
	stderr := newStderrLogger()

	if flagFrontend != frontendTea && flagFrontend != frontendTcell {
		fmt.Fprintf(os.Stderr, "Error: unknown frontend %q (want %s or %s)\n", flagFrontend, frontendTea, frontendTcell)
		os.Exit(1)
	}

	loaded, err := loadConfig(stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	gameCfg := loaded.Config

	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		if w < gameCfg.Screen.Width || h < gameCfg.Screen.Height {
			stderr.Warn("terminal smaller than playfield",
				"terminal", fmt.Sprintf("%dx%d", w, h),
				"playfield", fmt.Sprintf("%dx%d", gameCfg.Screen.Width, gameCfg.Screen.Height))
		}
	}

	cfg := core.DefaultConfig()
	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}
	cfg.Seed = flagSeed
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	logger, closeLog, err := openGameLogger(flagLogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger.Info("starting", "frontend", flagFrontend, "seed", cfg.Seed, "fps", cfg.TickRate)

	g := game.New(gameCfg, rand.New(rand.NewSource(cfg.Seed)))

	var runErr error
	switch flagFrontend {
	case frontendTcell:
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		runErr = console.Run(ctx, g, cfg, logger)
		stop()
	default:
		runErr = tui.Run(g, cfg, logger)
	}

	logger.Info("exiting", "score", g.Score())
	_ = closeLog()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
