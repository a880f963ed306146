package main

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"
)

// Output formats accepted by --format.
const (
	formatText = "text"
	formatYAML = "yaml"
	formatJSON = "json"
)

// Config is the merged CLI configuration.
type Config struct {
	LogLevel string        `mapstructure:"log-level"`
	LogJSON  bool          `mapstructure:"log-json"`
	Format   string        `mapstructure:"format"`
	Explore  ExploreConfig `mapstructure:"explore"`
}

// ExploreConfig holds the [explore] table of galois.toml.
type ExploreConfig struct {
	MaxCounterexamples int    `mapstructure:"max-counterexamples"`
	Script             string `mapstructure:"script"`
}

var errBadFormat = errors.New("unknown output format")

func setDefaults(v *viper.Viper) {
	v.SetDefault("log-level", "warn")
	v.SetDefault("log-json", false)
	v.SetDefault("format", formatText)
	v.SetDefault("explore.max-counterexamples", 0)
	v.SetDefault("explore.script", "")
}

// loadConfig merges defaults, the config file, GALOIS_* variables and any
// flags already bound to v. An explicit path must exist; without one a
// galois.toml in the working directory is used when present.
func loadConfig(v *viper.Viper, path string) (Config, error) {
	v.SetEnvPrefix("GALOIS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	v.SetConfigType("toml")
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, errors.Wrapf(err, "read config %s", path)
		}
	} else {
		v.SetConfigName("galois")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, errors.Wrap(err, "read galois.toml")
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, errors.Wrap(err, "decode config")
	}
	cfg.Format = strings.ToLower(strings.TrimSpace(cfg.Format))
	switch cfg.Format {
	case formatText, formatYAML, formatJSON:
	default:
		return Config{}, errors.WithHint(
			errors.Wrapf(errBadFormat, "%q", cfg.Format),
			"use one of text, yaml, json")
	}

	return cfg, nil
}
