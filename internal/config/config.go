// Package config loads the builder CLI's small environment-driven
// configuration.
package config

import "github.com/ilyakaznacheev/cleanenv"

// Config controls the builder CLI's logging. Word list and output paths
// are positional arguments, not configuration, so they stay out of this
// struct.
type Config struct {
	LogFormat string `env:"SUBDAWG_LOG_FORMAT" env-default:"text"`
}

// MustLoad reads Config from the environment, panicking if a required
// field is missing (none currently are, but this keeps the CLI's
// behavior consistent with adding one later).
func MustLoad() *Config {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		panic("error loading config: " + err.Error())
	}
	return &cfg
}
