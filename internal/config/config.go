// Package config loads runtime settings from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/Zachkp/portfolio/internal/typewriter"
)

// Config holds settings shared by the web server and the terminal preview.
type Config struct {
	Port            string        `env:"PORT" envDefault:"8080"`
	GinMode         string        `env:"GIN_MODE"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat       string        `env:"LOG_FORMAT" envDefault:"console"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`
	ParticleCount   int           `env:"PARTICLE_COUNT" envDefault:"20"`
	Typewriter      Typewriter    `envPrefix:"TYPEWRITER_"`
}

// Typewriter holds the hero animation delays.
type Typewriter struct {
	TypeInterval   time.Duration `env:"TYPE_INTERVAL" envDefault:"100ms"`
	DeleteInterval time.Duration `env:"DELETE_INTERVAL" envDefault:"50ms"`
	Pause          time.Duration `env:"PAUSE" envDefault:"2s"`
}

// Timing converts the settings for typewriter.NewWithTiming.
func (t Typewriter) Timing() typewriter.Timing {
	return typewriter.Timing{
		TypeInterval:   t.TypeInterval,
		DeleteInterval: t.DeleteInterval,
		Pause:          t.Pause,
	}
}

// Load reads the process environment.
func Load() (Config, error) {
	return Parse(nil)
}

// Parse reads settings from environ, or from the process environment when
// environ is nil.
func Parse(environ map[string]string) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: environ}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
