package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/Zubayear/pwl/internal/config"
)

func newInitCmd(configPath *string) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a starter config and empty dictionary file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			configExists, err := fileExists(*configPath)
			if err != nil {
				return fmt.Errorf("checking %s: %w", *configPath, err)
			}
			if configExists && !force {
				return fmt.Errorf("%s already exists; use --force to overwrite", *configPath)
			}

			cfg := config.Default()
			body, err := yaml.Marshal(cfg)
			if err != nil {
				return fmt.Errorf("rendering config: %w", err)
			}
			if err := writeFileAtomic(*configPath, body); err != nil {
				return fmt.Errorf("writing %s: %w", *configPath, err)
			}

			dictExists, err := fileExists(cfg.DictionaryPath)
			if err != nil {
				return fmt.Errorf("checking %s: %w", cfg.DictionaryPath, err)
			}
			if !dictExists {
				if err := writeFileAtomic(cfg.DictionaryPath, nil); err != nil {
					return fmt.Errorf("creating %s: %w", cfg.DictionaryPath, err)
				}
			}

			fmt.Fprintf(cmd.OutOrStdout(), "initialized %s and %s\n", *configPath, cfg.DictionaryPath)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing config file")
	return cmd
}

func fileExists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

func writeFileAtomic(path string, content []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".pwl-init-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(content); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
