// Package main implements the pwl command-line front end: a thin operator
// tool around the pwl library for checking, adding, removing, and
// suggesting corrections for words in a personal word list.
package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/Zubayear/pwl/internal/config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "pwl",
		Short:         "pwl manages a personal word list spell-checking dictionary",
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", ".pwl.yml", "path to a pwl YAML config file")

	root.AddCommand(newCheckCmd(&configPath))
	root.AddCommand(newAddCmd(&configPath))
	root.AddCommand(newRemoveCmd(&configPath))
	root.AddCommand(newSuggestCmd(&configPath))
	root.AddCommand(newInitCmd(&configPath))
	return root
}

// newInvocationLogger returns a zerolog.Logger tagged with a per-invocation
// correlation id, the way a multi-command operator CLI needs to thread a
// single id through every log line a command emits.
func newInvocationLogger(cmd string) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().
		Timestamp().
		Str("command", cmd).
		Str("correlation_id", uuid.NewString()).
		Logger()
}

func loadConfig(path string) (config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}
