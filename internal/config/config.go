package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour/styles"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"

	"github.com/zam-dot/carousel/internal/carousel"
	"github.com/zam-dot/carousel/internal/pages"
	"github.com/zam-dot/carousel/internal/viewer"
)

const (
	// FileName is the config file looked up in the working directory.
	FileName  = "carousel.toml"
	envPrefix = "CAROUSEL"
)

var ErrInvalidConfig = errors.New("invalid config")

// Config represents the application configuration
type Config struct {
	Pages    []string `mapstructure:"pages" toml:"pages"`
	PagesDir string   `mapstructure:"pages_dir" toml:"pages_dir"`
	Elements Elements `mapstructure:"elements" toml:"elements"`
	Viewer   Viewer   `mapstructure:"viewer" toml:"viewer"`
	Logging  Logging  `mapstructure:"logging" toml:"logging"`
}

// Elements names the terminal elements the carousel binds to.
type Elements struct {
	Container string `mapstructure:"container" toml:"container"`
	Previous  string `mapstructure:"previous" toml:"previous"`
	Next      string `mapstructure:"next" toml:"next"`
}

// Viewer represents page rendering settings
type Viewer struct {
	Style    string `mapstructure:"style" toml:"style"`
	WordWrap int    `mapstructure:"word_wrap" toml:"word_wrap"`
}

// Logging represents log file settings. An empty File disables logging.
type Logging struct {
	File string `mapstructure:"file" toml:"file"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Pages:    []string{},
		PagesDir: pages.DefaultDir,
		Elements: Elements{
			Container: carousel.DefaultElements.Container,
			Previous:  carousel.DefaultElements.Previous,
			Next:      carousel.DefaultElements.Next,
		},
		Viewer: Viewer{
			Style: viewer.DefaultStyle,
		},
		Logging: Logging{
			File: "carousel.log",
		},
	}
}

// SetDefaults registers the default values on v.
func SetDefaults(v *viper.Viper) {
	d := DefaultConfig()
	v.SetDefault("pages", d.Pages)
	v.SetDefault("pages_dir", d.PagesDir)
	v.SetDefault("elements.container", d.Elements.Container)
	v.SetDefault("elements.previous", d.Elements.Previous)
	v.SetDefault("elements.next", d.Elements.Next)
	v.SetDefault("viewer.style", d.Viewer.Style)
	v.SetDefault("viewer.word_wrap", d.Viewer.WordWrap)
	v.SetDefault("logging.file", d.Logging.File)
}

// Load reads configuration into v from path, or from carousel.toml in the
// working directory when path is empty. Only an explicit path must exist.
func Load(v *viper.Viper, path string) (*Config, error) {
	SetDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName(strings.TrimSuffix(FileName, ".toml"))
		v.SetConfigType("toml")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects blank or duplicate element identifiers and unknown styles.
func (c *Config) Validate() error {
	ids := map[string]string{
		"container": c.Elements.Container,
		"previous":  c.Elements.Previous,
		"next":      c.Elements.Next,
	}
	seen := make(map[string]string, len(ids))
	for _, role := range []string{"container", "previous", "next"} {
		id := strings.TrimSpace(ids[role])
		if id == "" {
			return fmt.Errorf("%w: elements.%s is empty", ErrInvalidConfig, role)
		}
		if other, ok := seen[id]; ok {
			return fmt.Errorf("%w: elements.%s and elements.%s share identifier %q", ErrInvalidConfig, other, role, id)
		}
		seen[id] = role
	}

	if c.Viewer.Style != viewer.AutoStyle {
		if _, ok := styles.DefaultStyles[c.Viewer.Style]; !ok {
			return fmt.Errorf("%w: unknown viewer.style %q", ErrInvalidConfig, c.Viewer.Style)
		}
	}
	if c.Viewer.WordWrap < 0 {
		return fmt.Errorf("%w: viewer.word_wrap must not be negative", ErrInvalidConfig)
	}
	return nil
}

// CarouselElements converts the configured identifiers for carousel.New.
func (c *Config) CarouselElements() carousel.Elements {
	return carousel.Elements{
		Container: c.Elements.Container,
		Previous:  c.Elements.Previous,
		Next:      c.Elements.Next,
	}
}

// ResolvePages returns the configured page list, discovering it from
// PagesDir when none is configured.
func (c *Config) ResolvePages() ([]string, error) {
	if len(c.Pages) > 0 {
		return append([]string(nil), c.Pages...), nil
	}
	found, err := pages.Discover(c.PagesDir)
	if err != nil {
		return nil, err
	}
	return found, nil
}

// WriteFile saves the configuration as TOML at path. It refuses to replace
// an existing file unless overwrite is set.
func (c *Config) WriteFile(path string, overwrite bool) error {
	flags := os.O_CREATE | os.O_WRONLY | os.O_TRUNC
	if !overwrite {
		flags |= os.O_EXCL
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	file, err := os.OpenFile(path, flags, 0644)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	if _, err := file.Write(data); err != nil {
		file.Close()
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return file.Close()
}
