package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gopkg.in/yaml.v3"
)

// Default values.
const (
	DefaultJournal   = "Journal"
	DefaultMarkerTag = "from-notion"
	DefaultDayOneBin = "dayone2"
	DefaultPattern   = "ML *.md"
)

// Environment variable overrides, applied after the file is read.
const (
	EnvJournal   = "MOODLOG_JOURNAL"
	EnvDayOneBin = "MOODLOG_DAYONE_BIN"
	EnvPattern   = "MOODLOG_PATTERN"
)

// Config holds the import policy that is not part of a note itself.
type Config struct {
	// Journal is the Day One journal entries go to. Empty uses Day One's default.
	Journal string `yaml:"journal"`

	// MarkerTag is added to every imported entry. Empty disables it.
	MarkerTag string `yaml:"marker_tag"`

	// Tags are extra tags added to every imported entry.
	Tags []string `yaml:"tags,omitempty"`

	Starred bool `yaml:"starred"`

	// DayOneBin is the Day One CLI, looked up in PATH unless absolute.
	DayOneBin string `yaml:"dayone_bin"`

	// Pattern selects note files when a directory is given as input.
	Pattern string `yaml:"pattern"`

	// Path is the file the config was read from, if any.
	Path string `yaml:"-"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Journal:   DefaultJournal,
		MarkerTag: DefaultMarkerTag,
		DayOneBin: DefaultDayOneBin,
		Pattern:   DefaultPattern,
	}
}

// Load reads and validates the config file at path.
// An empty path reads DefaultPath and falls back to defaults when that file
// does not exist; an explicit path must exist.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}

	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path) // #nosec G304 -- user-provided config path is expected
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parsing config file %s: %w", path, err)
			}
			cfg.Path = path
		case errors.Is(err, os.ErrNotExist) && !explicit:
		default:
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	cfg.applyEnvironmentOverrides()
	cfg.normalize()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return cfg, nil
}

func (c *Config) applyEnvironmentOverrides() {
	if journal, ok := os.LookupEnv(EnvJournal); ok {
		c.Journal = journal
	}
	if bin := os.Getenv(EnvDayOneBin); bin != "" {
		c.DayOneBin = bin
	}
	if pattern := os.Getenv(EnvPattern); pattern != "" {
		c.Pattern = pattern
	}
}

func (c *Config) normalize() {
	c.Journal = strings.TrimSpace(c.Journal)
	c.MarkerTag = strings.TrimSpace(c.MarkerTag)
	for i, tag := range c.Tags {
		c.Tags[i] = strings.TrimSpace(tag)
	}
}

// Validate checks field values.
func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.DayOneBin, validation.Required),
		validation.Field(&c.Pattern, validation.Required, validation.By(validGlob)),
		validation.Field(&c.Tags, validation.Each(validation.Required)),
	)
}

func validGlob(value any) error {
	pattern, _ := value.(string)
	if _, err := filepath.Match(pattern, ""); err != nil {
		return validation.NewError("validation_glob_invalid", "must be a valid glob pattern")
	}
	return nil
}

// Save writes the config as YAML to path, creating parent directories.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
