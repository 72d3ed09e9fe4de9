package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pipe-bird/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the game configuration as YAML after applying the search order:

  1. --config <path>
  2. ~/.pipebird/config.yaml
  3. ./configs/pipebird.yaml
  4. built-in defaults

The output is a complete config file and can be edited and passed back
with --config.`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func runConfig(cmd *cobra.Command, _ []string) {
	res, err := loadConfig(newLogger(cmd.ErrOrStderr()))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	data, err := config.Encode(res.Config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "# source: %s\n", res.Source)
	_, _ = cmd.OutOrStdout().Write(data)
}
