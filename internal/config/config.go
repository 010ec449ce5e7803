package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var (
	ErrOutputRequired = errors.New("output path is required (--output, -o or OUTPUT)")
	ErrNegativeCount  = errors.New("counts must not be negative")
	ErrLogEnv         = errors.New("log-env must be one of dev, prod")
)

// Error marks a problem with user input, reported before any generation.
type Error struct {
	Err error
}

func (e *Error) Error() string { return "invalid configuration: " + e.Err.Error() }
func (e *Error) Unwrap() error { return e.Err }

type Config struct {
	FeaturesCount           int    `mapstructure:"features-count"`
	MaxStrategiesPerFeature int    `mapstructure:"max-strategies-per-feature"`
	Output                  string `mapstructure:"output"`
	Seed                    uint64 `mapstructure:"seed"`
	Pretty                  bool   `mapstructure:"pretty"`
	MetricsFile             string `mapstructure:"metrics-file"`
	LogEnv                  string `mapstructure:"log-env"`
}

const (
	DefaultFeaturesCount           = 10000
	DefaultMaxStrategiesPerFeature = 20
)

// NewFlagSet declares every option. Each long name is also read from the
// environment upper-cased with dashes replaced by underscores.
func NewFlagSet(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.IntP("features-count", "f", DefaultFeaturesCount, "number of features to generate")
	fs.IntP("max-strategies-per-feature", "m", DefaultMaxStrategiesPerFeature, "exclusive upper bound of strategies per feature")
	fs.StringP("output", "o", "", "output file path (required)")
	fs.Uint64("seed", 0, "random seed, 0 picks one")
	fs.Bool("pretty", false, "indent the JSON output")
	fs.String("metrics-file", "", "write Prometheus text metrics to this file")
	fs.String("log-env", "prod", "logger profile: dev or prod")
	fs.String("config", "", "optional YAML config file")
	return fs
}

// Load parses args and merges flags, environment, an optional config file
// and defaults, in that order of precedence.
func Load(args []string) (*Config, error) {
	// A missing .env is fine.
	_ = godotenv.Load()

	fs := NewFlagSet("featuregen")
	if err := fs.Parse(args); err != nil {
		return nil, &Error{Err: err}
	}

	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return nil, &Error{Err: err}
	}

	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, &Error{Err: fmt.Errorf("read config %s: %w", path, err)}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, &Error{Err: err}
	}
	if err := cfg.Validate(); err != nil {
		return nil, &Error{Err: err}
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.FeaturesCount < 0 || c.MaxStrategiesPerFeature < 0 {
		return ErrNegativeCount
	}
	if c.LogEnv != "dev" && c.LogEnv != "prod" {
		return ErrLogEnv
	}
	if strings.TrimSpace(c.Output) == "" {
		return ErrOutputRequired
	}
	return nil
}
