// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pdiddy/taskmatrix/internal/source"
)

var templateCmd = &cobra.Command{
	Use:   "template",
	Short: "Write manual-entry CSV templates for both sources",
	Long: `Template writes empty record templates to the import directory so
manual data entry has the right columns from the start. The manual fallback
tier reads these same files once filled in.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if err := os.MkdirAll(cfg.Sources.ImportDir, 0o755); err != nil {
			return fmt.Errorf("creating import dir: %w", err)
		}
		for _, name := range []string{"calendar-manual.csv", "cards-manual.csv"} {
			path := filepath.Join(cfg.Sources.ImportDir, name)
			if _, err := os.Stat(path); err == nil {
				fmt.Fprintf(os.Stderr, "warning: %s exists, leaving it alone\n", path)
				continue
			}
			if err := source.WriteTemplate(path); err != nil {
				return err
			}
			fmt.Fprintf(os.Stderr, "Template written to %s\n", path)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(templateCmd)
}
