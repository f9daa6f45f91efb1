package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Zubayear/pwl/pwl"
)

func newAddCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "add <word>",
		Short: "Add a word to the dictionary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newInvocationLogger("add")
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}

			dict, err := pwl.NewWithFile(cfg.DictionaryPath)
			if err != nil {
				return fmt.Errorf("opening dictionary: %w", err)
			}
			dict.SetLogger(logger)
			defer dict.Close()

			if err := dict.Add(args[0]); err != nil {
				return fmt.Errorf("adding %q: %w", args[0], err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "added %q\n", args[0])
			return nil
		},
	}
}
