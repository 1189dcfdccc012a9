// Package config loads the settings shared by the etc command line tool.
//
// Values come from, lowest precedence first: built-in defaults, a YAML
// file, a .env file in the working directory, and ETC_* environment
// variables. Command line flags are applied on top by the caller.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/axiomhq/etc"
)

// Config is the complete tool configuration.
type Config struct {
	Order    int    `yaml:"order" validate:"gte=2"`
	Truncate bool   `yaml:"truncate"`
	Verbose  bool   `yaml:"verbose"`
	Tail     int    `yaml:"tail" validate:"gte=0"`
	Workers  int    `yaml:"workers" validate:"gte=0"`
	Format   string `yaml:"format" validate:"oneof=csv xlsx"`
	Recode   string `yaml:"recode" validate:"oneof=lexical alphabetical dna fields"`
	LogLevel string `yaml:"log_level" validate:"oneof=debug info warn error"`
}

var validate = validator.New()

// Default returns the configuration used when nothing else is set.
func Default() Config {
	return Config{
		Order:    2,
		Truncate: true,
		Tail:     0,
		Workers:  0,
		Format:   "csv",
		Recode:   "fields",
		LogLevel: "info",
	}
}

// Load builds a Config from the defaults, the YAML file at path (skipped
// when path is empty), .env and the environment, and validates it.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: %s: %w", path, err)
		}
	}
	// A missing .env is normal.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return cfg, fmt.Errorf("config: .env: %w", err)
	}
	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// Validate checks every field against its constraints.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// Options converts c into the options passed to etc.Compute.
func (c Config) Options() etc.Options {
	return etc.Options{
		Order:    c.Order,
		Truncate: c.Truncate,
		Verbose:  c.Verbose,
		Tail:     c.Tail,
	}
}

// applyEnv overlays ETC_* variables found through lookup.
func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	ints := map[string]*int{
		"ETC_ORDER":   &c.Order,
		"ETC_TAIL":    &c.Tail,
		"ETC_WORKERS": &c.Workers,
	}
	for name, dst := range ints {
		if v, ok := lookup(name); ok {
			n, err := strconv.Atoi(strings.TrimSpace(v))
			if err != nil {
				return fmt.Errorf("config: %s: %w", name, err)
			}
			*dst = n
		}
	}
	bools := map[string]*bool{
		"ETC_TRUNCATE": &c.Truncate,
		"ETC_VERBOSE":  &c.Verbose,
	}
	for name, dst := range bools {
		if v, ok := lookup(name); ok {
			b, err := strconv.ParseBool(strings.TrimSpace(v))
			if err != nil {
				return fmt.Errorf("config: %s: %w", name, err)
			}
			*dst = b
		}
	}
	strs := map[string]*string{
		"ETC_FORMAT":    &c.Format,
		"ETC_RECODE":    &c.Recode,
		"ETC_LOG_LEVEL": &c.LogLevel,
	}
	for name, dst := range strs {
		if v, ok := lookup(name); ok {
			*dst = strings.ToLower(strings.TrimSpace(v))
		}
	}
	return nil
}
