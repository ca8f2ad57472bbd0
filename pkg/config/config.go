// Package config loads pdbcell settings from an optional file, PDBCELL_
// environment variables and built in defaults, in that order of
// precedence after flags.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/andrew-torda/pdbcell/pkg/logging"
)

const envPrefix = "PDBCELL"

type Config struct {
	Log      logging.LogConfig `mapstructure:"log"`
	Cell     CellConfig        `mapstructure:"cell"`
	Contacts ContactsConfig    `mapstructure:"contacts"`
	Batch    BatchConfig       `mapstructure:"batch"`
	Fetch    FetchConfig       `mapstructure:"fetch"`
}

type CellConfig struct {
	SpecialDist float64 `mapstructure:"special_dist"`
}

type ContactsConfig struct {
	Atom   string  `mapstructure:"atom"`
	Cutoff float64 `mapstructure:"cutoff"`
}

type BatchConfig struct {
	Workers     int    `mapstructure:"workers"`
	MaxFiles    int    `mapstructure:"max_files"`
	MaxErr      int    `mapstructure:"max_err"`
	MetricsFile string `mapstructure:"metrics_file"`
}

type FetchConfig struct {
	Site    int           `mapstructure:"site"`
	Timeout time.Duration `mapstructure:"timeout"`
}

var defaults = map[string]any{
	"log.level":          "info",
	"log.format":         "console",
	"cell.special_dist":  0.8,
	"contacts.atom":      "CA",
	"contacts.cutoff":    8.0,
	"batch.workers":      3,
	"batch.max_files":    0,
	"batch.max_err":      10,
	"batch.metrics_file": "",
	"fetch.site":         0,
	"fetch.timeout":      "30s",
}

// New gives a viper with our defaults and environment binding. The
// command line code binds its flags to it before calling Load.
func New() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for k, d := range defaults {
		v.SetDefault(k, d)
	}
	return v
}

// Load reads path, if it is not empty, into v and returns the checked
// settings. The file type comes from the extension, yaml or toml.
func Load(v *viper.Viper, path string) (*Config, error) {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: reading %q: %w", path, err)
		}
	}
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// Default is what you get with no file and no environment.
func Default() *Config {
	cfg, _ := Load(New(), "")
	return cfg
}

// Validate checks ranges. All problems are reported together.
func (c *Config) Validate() error {
	var errs []error
	if !logging.ValidLevel(c.Log.Level) {
		errs = append(errs, fmt.Errorf("log.level %q is not debug, info, warn or error", c.Log.Level))
	}
	if c.Log.Format != "json" && c.Log.Format != "console" {
		errs = append(errs, fmt.Errorf("log.format %q is not json or console", c.Log.Format))
	}
	if c.Cell.SpecialDist <= 0 {
		errs = append(errs, fmt.Errorf("cell.special_dist must be positive, not %g", c.Cell.SpecialDist))
	}
	if c.Contacts.Atom == "" {
		errs = append(errs, errors.New("contacts.atom is empty"))
	}
	if c.Contacts.Cutoff <= 0 {
		errs = append(errs, fmt.Errorf("contacts.cutoff must be positive, not %g", c.Contacts.Cutoff))
	}
	if c.Batch.Workers < 1 {
		errs = append(errs, fmt.Errorf("batch.workers must be at least 1, not %d", c.Batch.Workers))
	}
	if c.Batch.MaxFiles < 0 {
		errs = append(errs, fmt.Errorf("batch.max_files is negative"))
	}
	if c.Fetch.Site < 0 {
		errs = append(errs, fmt.Errorf("fetch.site is negative"))
	}
	if c.Fetch.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("fetch.timeout must be positive, not %v", c.Fetch.Timeout))
	}
	return errors.Join(errs...)
}
