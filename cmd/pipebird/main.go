// pipebird is a terminal take on the pipe-dodging arcade game.
//
// Usage:
//
//	pipebird play            - Play in this terminal
//	pipebird serve           - Start an SSH server for remote play
//	pipebird config          - Print the effective game configuration
//
// Global flags:
//
//	--fps <rate>        - Render loop rate (default: 60)
//	--seed <value>      - RNG seed for reproducible pipes
//	--config <path>     - Path to a game config YAML
//	--log-file <path>   - Write debug logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/pipe-bird/internal/config"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagConfig  string
	flagLogFile string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pipebird",
	Short: "Pipe Bird - fly through the pipes in your terminal",
	Long: `Pipe Bird is a terminal arcade game. The bird falls under gravity;
press Space to flap and steer it through the gaps in the pipes.
Every pipe you pass scores a point, and the gaps get narrower as you go.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  config   - Print the effective configuration

Examples:
  pipebird play
  pipebird play --frontend tcell --seed 42
  pipebird serve --ssh :2222
  pipebird config > ~/.pipebird/config.yaml`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Render loop rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write debug logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// newStderrLogger returns the logger used before and after the game owns the terminal.
func newStderrLogger() *log.Logger {
	return newLogger(os.Stderr)
}

func newLogger(w io.Writer) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "pipebird",
	})
}

// openGameLogger returns the logger handed to frontends while they own the
// terminal. Without --log-file it discards everything, since writing to the
// terminal would corrupt the game screen.
func openGameLogger(path string) (*log.Logger, func() error, error) {
	if path == "" {
		return log.New(io.Discard), func() error { return nil }, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file %s: %w", path, err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "pipebird",
		Level:           log.DebugLevel,
	})
	return logger, f.Close, nil
}

// loadConfig loads the game config, logging where it came from and every
// config file that was passed over.
func loadConfig(logger *log.Logger) (config.Result, error) {
	res, err := config.Load(flagConfig)
	if err != nil {
		return res, err
	}
	for _, skipped := range res.Skipped {
		logger.Warn("ignoring config", "path", skipped.Path, "err", skipped.Err)
	}
	logger.Info("using config", "source", res.Source)
	return res, nil
}
