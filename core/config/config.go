// Package config loads run settings from defaults, an optional YAML file,
// and the environment (optionally seeded from a .env file).
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/gaurav-prasanna/hyeat/core"
	"github.com/gaurav-prasanna/hyeat/core/catalog"
	"github.com/gaurav-prasanna/hyeat/core/fetch"
	"github.com/gaurav-prasanna/hyeat/core/output"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Output formats.
const (
	FormatJSON     = "json"
	FormatMarkdown = "markdown"
)

// Environment variables, applied over the YAML file.
const (
	EnvEndpoint    = "HYEAT_ENDPOINT"
	EnvOutputDir   = "HYEAT_OUTPUT_DIR"
	EnvUserAgent   = "HYEAT_USER_AGENT"
	EnvFormat      = "HYEAT_FORMAT"
	EnvMetricsFile = "HYEAT_METRICS_FILE"
)

// Config holds every recognized option. Only DailyOverlayExclude affects extraction.
type Config struct {
	Endpoint    string        `yaml:"endpoint"`
	OutputDir   string        `yaml:"output_dir"`
	UserAgent   string        `yaml:"user_agent"`
	Timeout     time.Duration `yaml:"timeout"`
	Format      string        `yaml:"format"`
	MetricsFile string        `yaml:"metrics_file"`

	// DailyOverlayExclude names restaurants whose weekly records the daily
	// overlay must not touch. Nil means the built-in set; an explicit empty
	// list disables the exclusion.
	DailyOverlayExclude []string `yaml:"daily_overlay_exclude"`
}

func (c *Config) defaults() {
	if c.Endpoint == "" {
		c.Endpoint = fetch.DefaultEndpoint
	}
	if c.OutputDir == "" {
		c.OutputDir = output.DefaultDir
	}
	if c.UserAgent == "" {
		c.UserAgent = fetch.DefaultUserAgent
	}
	if c.Timeout <= 0 {
		c.Timeout = 30 * time.Second
	}
	if c.Format == "" {
		c.Format = FormatJSON
	}
	if c.DailyOverlayExclude == nil {
		c.DailyOverlayExclude = []string{string(core.RestaurantMaterials), string(core.RestaurantLifeScience)}
	}
}

// Load builds a Config from path (skipped when empty), then the environment.
// A .env file in the working directory is read if present; variables already
// set in the process win over it.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}
	cfg.applyEnv()
	cfg.defaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	for env, field := range map[string]*string{
		EnvEndpoint:    &c.Endpoint,
		EnvOutputDir:   &c.OutputDir,
		EnvUserAgent:   &c.UserAgent,
		EnvFormat:      &c.Format,
		EnvMetricsFile: &c.MetricsFile,
	} {
		if v := os.Getenv(env); v != "" {
			*field = v
		}
	}
}

// Validate checks the format and the exclusion list.
func (c *Config) Validate() error {
	switch c.Format {
	case FormatJSON, FormatMarkdown:
	default:
		return fmt.Errorf("unknown format %q (want %s or %s)", c.Format, FormatJSON, FormatMarkdown)
	}
	_, err := c.Excluded()
	return err
}

// Excluded resolves DailyOverlayExclude into restaurant IDs.
func (c *Config) Excluded() ([]core.RestaurantID, error) {
	ids := make([]core.RestaurantID, 0, len(c.DailyOverlayExclude))
	for _, name := range c.DailyOverlayExclude {
		id, ok := catalog.ParseRestaurantID(name)
		if !ok {
			return nil, fmt.Errorf("daily_overlay_exclude: unknown restaurant %q", name)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
