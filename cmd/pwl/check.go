package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Zubayear/pwl/pwl"
)

func newCheckCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "check <word>",
		Short: "Report whether a word is accepted by the dictionary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newInvocationLogger("check")
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

			word := args[0]
			if dict.Check(word) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: accepted\n", word)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: not found\n", word)
			cmd.SilenceErrors = true
			return errNotFound
		},
	}
}

var errNotFound = fmt.Errorf("word not found")
