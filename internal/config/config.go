package config

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
	"go.yaml.in/yaml/v3"

	"vigil/internal/app/errors"
)

// Config represents the application configuration
type Config struct {
	Sources []*Source `yaml:"sources"`
	Display struct {
		Timezone string `yaml:"timezone"`
	} `yaml:"display"`
	Filter struct {
		Include []string `yaml:"include"`
		Exclude []string `yaml:"exclude"`
	} `yaml:"filter"`
	Stream struct {
		Buffer int           `yaml:"buffer"`
		Flush  time.Duration `yaml:"flush"`
		Replay bool          `yaml:"replay"`
	} `yaml:"stream"`
	Logging struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"logging"`
}

// Source represents a single tailed log file
type Source struct {
	Path string `yaml:"path"`
	Name string `yaml:"name"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	cfg := &Config{
		Sources: make([]*Source, 0),
	}

	cfg.Display.Timezone = TimezoneLocal

	cfg.Stream.Buffer = DefaultBufferCap
	cfg.Stream.Flush = DefaultFlushInterval

	cfg.Logging.Level = DefaultLogLevel
	cfg.Logging.Format = DefaultLogFormat

	return cfg
}

// Load loads the configuration from vigil.yaml with VIGIL_* env overrides
func Load() (*Config, error) {
	cfg := DefaultConfig()

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	data, err := os.ReadFile(ConfigFile)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, errors.ErrFailedToReadConfig
		}
	} else if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
		return nil, errors.ErrFailedToParseConfig
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.ErrFailedToParseConfig
	}

	// env overrides win over file values
	bindDisplayEnv(v, cfg)

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrInvalidConfig, err)
	}

	return cfg, nil
}

// bindDisplayEnv applies env overrides that viper cannot map automatically
func bindDisplayEnv(v *viper.Viper, cfg *Config) {
	if tz := v.GetString("display.timezone"); tz != "" {
		cfg.Display.Timezone = strings.ToLower(tz)
	}

	if level := v.GetString("logging.level"); level != "" {
		cfg.Logging.Level = level
	}

	if format := v.GetString("logging.format"); format != "" {
		cfg.Logging.Format = format
	}
}

// ApplyDefaults fills in missing fields after parsing
func (c *Config) ApplyDefaults() {
	for _, src := range c.Sources {
		if src.Name == "" {
			src.Name = baseName(src.Path)
		}
	}

	if c.Display.Timezone == "" {
		c.Display.Timezone = TimezoneLocal
	}

	if c.Stream.Buffer <= 0 {
		c.Stream.Buffer = DefaultBufferCap
	}

	if c.Stream.Flush <= 0 {
		c.Stream.Flush = DefaultFlushInterval
	}

	if c.Logging.Level == "" {
		c.Logging.Level = DefaultLogLevel
	}

	if c.Logging.Format == "" {
		c.Logging.Format = DefaultLogFormat
	}
}

// Validate checks the configuration for invalid values
func (c *Config) Validate() error {
	switch c.Display.Timezone {
	case TimezoneLocal, TimezoneUTC:
	default:
		return fmt.Errorf("%w: %q", errors.ErrInvalidTimezone, c.Display.Timezone)
	}

	for _, src := range c.Sources {
		if src.Path == "" {
			return errors.ErrSourcePathRequired
		}
	}

	return nil
}

// WriteDefault writes a starter vigil.yaml to the working directory
func WriteDefault() error {
	if _, err := os.Stat(ConfigFile); err == nil {
		return errors.ErrConfigAlreadyExists
	}

	starter := DefaultConfig()
	starter.Sources = []*Source{{Path: "app.log", Name: "app"}}

	data, err := yaml.Marshal(starter)
	if err != nil {
		return errors.ErrFailedToWriteConfig
	}

	if err := os.WriteFile(ConfigFile, data, 0o644); err != nil {
		return errors.ErrFailedToWriteConfig
	}

	return nil
}

// baseName returns the file name portion of a path
func baseName(path string) string {
	if idx := strings.LastIndex(path, "/"); idx >= 0 {
		return path[idx+1:]
	}

	return path
}
