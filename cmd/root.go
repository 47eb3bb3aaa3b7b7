package cmd

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zam-dot/carousel/internal/carousel"
	"github.com/zam-dot/carousel/internal/config"
	"github.com/zam-dot/carousel/internal/pages"
	"github.com/zam-dot/carousel/internal/tui"
	"github.com/zam-dot/carousel/internal/viewer"
)

// flagKeys maps config keys to the persistent flags that override them.
var flagKeys = map[string]string{
	"pages_dir":    "dir",
	"viewer.style": "style",
	"logging.file": "log-file",
}

// NewRootCmd builds the carousel command tree.
func NewRootCmd() *cobra.Command {
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "carousel [page...]",
		Short: "Page through HTML dashboards in the terminal",
		Long: `carousel shows one HTML page at a time from a templates directory
and moves between them with the arrow keys or by clicking the arrows.

Pages come from the command line, the "pages" list in carousel.toml, or
every page found in the templates directory, in that order.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, cfgFile, args)
			if err != nil {
				return err
			}

			closeLog := setupLogging(cfg.Logging.File, cmd.ErrOrStderr())
			defer closeLog()

			model, err := buildModel(cfg)
			if err != nil {
				return err
			}

			log.Printf("Starting UI...")
			p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
			if _, err := p.Run(); err != nil {
				log.Printf("Error running program: %v", err)
				return fmt.Errorf("error running program: %w", err)
			}
			log.Printf("UI exited normally")
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default is ./"+config.FileName+")")
	rootCmd.PersistentFlags().StringP("dir", "d", "", "templates directory pages are read from (default \""+pages.DefaultDir+"\")")
	rootCmd.PersistentFlags().String("style", "", "page style: dark, light, notty, dracula, tokyo-night, pink, ascii or auto")
	rootCmd.PersistentFlags().String("log-file", "", "log file (default \"carousel.log\"), empty disables logging")

	rootCmd.AddCommand(newInitCmd(), newListCmd(&cfgFile))
	return rootCmd
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig layers flags over config file, environment and defaults.
// Positional pages replace the configured list.
func loadConfig(cmd *cobra.Command, cfgFile string, args []string) (*config.Config, error) {
	v := viper.New()
	for key, name := range flagKeys {
		if err := v.BindPFlag(key, cmd.Flags().Lookup(name)); err != nil {
			return nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
		}
	}

	cfg, err := config.Load(v, cfgFile)
	if err != nil {
		return nil, err
	}
	if len(args) > 0 {
		cfg.Pages = args
	}
	return cfg, nil
}

// buildModel resolves the page list and wires the carousel to a terminal screen.
func buildModel(cfg *config.Config) (*tui.Model, error) {
	list, err := cfg.ResolvePages()
	if err != nil {
		return nil, err
	}
	log.Printf("Loaded %d pages from %s", len(list), cfg.PagesDir)

	screen := tui.NewScreen(cfg.CarouselElements())
	c, err := carousel.New(screen, list, newLoader(cfg), carousel.Options{
		Elements: cfg.CarouselElements(),
		Resolver: pages.TemplateResolver{Dir: cfg.PagesDir},
	})
	if errors.Is(err, carousel.ErrNoPages) {
		return nil, fmt.Errorf("no pages configured and none found in %s: %w", cfg.PagesDir, err)
	}
	if err != nil {
		return nil, err
	}

	return tui.NewModel(screen, c), nil
}

func newLoader(cfg *config.Config) viewer.Loader {
	return viewer.Loader{
		Style:    cfg.Viewer.Style,
		WordWrap: cfg.Viewer.WordWrap,
	}
}

// setupLogging sends the standard logger to path. The terminal belongs to
// the UI, so logs are discarded when no file is configured or it cannot be
// opened.
func setupLogging(path string, stderr io.Writer) func() {
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}
	}

	logFile, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		fmt.Fprintf(stderr, "Could not open log file: %v\n", err)
		log.SetOutput(io.Discard)
		return func() {}
	}

	log.SetOutput(logFile)
	return func() {
		log.SetOutput(io.Discard)
		logFile.Close()
	}
}
