package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zachkp/portfolio/internal/typewriter"
)

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse(map[string]string{})
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "console", cfg.LogFormat)
	assert.Equal(t, 5*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, 20, cfg.ParticleCount)
	assert.Equal(t, typewriter.DefaultTiming(), cfg.Typewriter.Timing())
}

func TestParseOverrides(t *testing.T) {
	cfg, err := Parse(map[string]string{
		"PORT":                       "9000",
		"LOG_FORMAT":                 "json",
		"TYPEWRITER_TYPE_INTERVAL":   "20ms",
		"TYPEWRITER_DELETE_INTERVAL": "10ms",
		"TYPEWRITER_PAUSE":           "1s",
		"PARTICLE_COUNT":             "5",
	})
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 5, cfg.ParticleCount)
	assert.Equal(t, typewriter.Timing{
		TypeInterval:   20 * time.Millisecond,
		DeleteInterval: 10 * time.Millisecond,
		Pause:          time.Second,
	}, cfg.Typewriter.Timing())
}

func TestParseRejectsBadDuration(t *testing.T) {
	_, err := Parse(map[string]string{"TYPEWRITER_PAUSE": "soon"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env")
}
