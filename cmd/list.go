package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zam-dot/carousel/internal/pages"
)

func newListCmd(cfgFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "list [page...]",
		Short: "Print the pages the carousel would show, in order",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, *cfgFile, args)
			if err != nil {
				return err
			}

			list, err := cfg.ResolvePages()
			if err != nil {
				return err
			}

			resolver := pages.TemplateResolver{Dir: cfg.PagesDir}
			out := cmd.OutOrStdout()
			for i, page := range list {
				fmt.Fprintf(out, "%d\t%s\t%s\n", i+1, page, resolver.Resolve(page))
			}
			return nil
		},
	}
}
