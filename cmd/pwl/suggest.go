package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Zubayear/pwl/pwl"
)

func newSuggestCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "suggest <word>",
		Short: "Suggest corrections for a word not in the dictionary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newInvocationLogger("suggest")
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}

			dict, err := pwl.NewWithFile(cfg.DictionaryPath)
			if err != nil {
				return fmt.Errorf("opening dictionary: %w", err)
			}
			dict.SetLogger(logger)
			if cfg.MaxErrors > 0 {
				dict.SetMaxErrors(cfg.MaxErrors)
			}
			if cfg.MaxSuggestions > 0 {
				dict.SetSuggestionLimit(cfg.MaxSuggestions)
			}
			defer dict.Close()

			word := args[0]
			suggestions := dict.Suggest(word, nil)
			if len(suggestions) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: no suggestions\n", word)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", word, strings.Join(suggestions, ", "))
			return nil
		},
	}
}
