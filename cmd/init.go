package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zam-dot/carousel/internal/config"
	"github.com/zam-dot/carousel/internal/pages"
)

func newInitCmd() *cobra.Command {
	var force bool

	initCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write a starter " + config.FileName,
		Long: `Write a config file with the default settings.

When the templates directory already holds pages they are listed in the
file so the order can be edited by hand.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := config.FileName
			if len(args) == 1 {
				path = args[0]
			}

			cfg := config.DefaultConfig()
			if dir, _ := cmd.Flags().GetString("dir"); dir != "" {
				cfg.PagesDir = dir
			}
			if found, err := pages.Discover(cfg.PagesDir); err == nil {
				cfg.Pages = found
			}

			if err := cfg.WriteFile(path, force); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s with %d pages from %s\n", path, len(cfg.Pages), cfg.PagesDir)
			return nil
		},
	}

	initCmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing file")
	return initCmd
}
