// Package config loads the build configuration: defaults, then an optional
// YAML file, then environment overrides (with .env support).
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/nibzard/awesome-agentic-patterns/pkg/emit"
	"github.com/nibzard/awesome-agentic-patterns/pkg/freshness"
)

// DefaultFile is the config file looked up when none is given.
const DefaultFile = "catalog.yaml"

// Config is the full build configuration.
type Config struct {
	// Dir is the records directory.
	Dir string `yaml:"dir"`
	// Out is where artifacts are written.
	Out string `yaml:"out"`
	// Template is the reserved template file name inside Dir.
	Template string `yaml:"template"`
	// Exclude holds glob patterns skipped during enumeration.
	Exclude []string `yaml:"exclude"`
	// Contract optionally points at a YAML validation contract.
	Contract string `yaml:"contract"`

	Site      SiteConfig      `yaml:"site"`
	Freshness FreshnessConfig `yaml:"freshness"`

	// FeedSize caps the syndication feed.
	FeedSize int `yaml:"feed_size"`
}

// SiteConfig describes the published site.
type SiteConfig struct {
	BaseURL      string   `yaml:"base_url"`
	Title        string   `yaml:"title"`
	Description  string   `yaml:"description"`
	StaticRoutes []string `yaml:"static_routes"`
}

// FreshnessConfig holds the two day-count thresholds.
type FreshnessConfig struct {
	NewDays     int `yaml:"new_days"`
	UpdatedDays int `yaml:"updated_days"`
}

// Default returns the shipped configuration.
func Default() Config {
	return Config{
		Dir:      "patterns",
		Out:      "dist",
		Template: "pattern-template.md",
		Site: SiteConfig{
			BaseURL:      "https://agentic-patterns.com",
			Title:        "Awesome Agentic Patterns",
			Description:  "A curated catalogue of agentic AI patterns.",
			StaticRoutes: []string{"/", "/patterns/"},
		},
		Freshness: FreshnessConfig{
			NewDays:     freshness.DefaultNewDays,
			UpdatedDays: freshness.DefaultUpdatedDays,
		},
		FeedSize: emit.DefaultFeedSize,
	}
}

// Load builds the effective configuration. path may be empty, in which case
// DefaultFile is read when present. A named file that does not exist is an
// error; the default file missing is not.
func Load(path string) (Config, error) {
	// Populate the environment from .env if one exists. Missing is fine.
	_ = godotenv.Load()

	cfg := Default()

	explicit := path != ""
	if path == "" {
		path = DefaultFile
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist) && !explicit:
		// Defaults only.
	default:
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// applyEnv overlays PATTERNS_* environment variables.
func (c *Config) applyEnv() {
	if v := os.Getenv("PATTERNS_DIR"); v != "" {
		c.Dir = v
	}
	if v := os.Getenv("PATTERNS_OUT"); v != "" {
		c.Out = v
	}
	if v := os.Getenv("PATTERNS_BASE_URL"); v != "" {
		c.Site.BaseURL = v
	}
	if v := os.Getenv("PATTERNS_NEW_DAYS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Freshness.NewDays = n
		}
	}
	if v := os.Getenv("PATTERNS_UPDATED_DAYS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Freshness.UpdatedDays = n
		}
	}
}

// Validate checks the configuration is coherent.
func (c Config) Validate() error {
	if err := validation.ValidateStruct(&c,
		validation.Field(&c.Dir, validation.Required),
		validation.Field(&c.Out, validation.Required),
		validation.Field(&c.FeedSize, validation.Min(1)),
	); err != nil {
		return err
	}
	if err := validation.ValidateStruct(&c.Site,
		validation.Field(&c.Site.BaseURL, validation.Required, is.URL),
	); err != nil {
		return err
	}
	if c.Freshness.NewDays >= c.Freshness.UpdatedDays {
		return fmt.Errorf("freshness: new_days (%d) must be less than updated_days (%d)",
			c.Freshness.NewDays, c.Freshness.UpdatedDays)
	}
	return nil
}

// EmitSite converts the site section to the emitter's Site value.
func (c Config) EmitSite() emit.Site {
	return emit.Site{
		BaseURL:      c.Site.BaseURL,
		Title:        c.Site.Title,
		Description:  c.Site.Description,
		StaticRoutes: c.Site.StaticRoutes,
	}
}
