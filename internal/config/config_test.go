package config

import (
	"bytes"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	t.Setenv("THERMO_TEST_KEY", "  value ")
	assert.Equal(t, "value", Get("THERMO_TEST_KEY", "fallback"))

	t.Setenv("THERMO_TEST_KEY", "")
	assert.Equal(t, "fallback", Get("THERMO_TEST_KEY", "fallback"))
}

func TestGetIntAndDuration(t *testing.T) {
	t.Setenv("THERMO_TEST_INT", "42")
	n, err := GetInt("THERMO_TEST_INT", 1)
	require.NoError(t, err)
	assert.Equal(t, 42, n)

	t.Setenv("THERMO_TEST_INT", "forty")
	_, err = GetInt("THERMO_TEST_INT", 1)
	assert.Error(t, err)

	t.Setenv("THERMO_TEST_TTL", "90m")
	d, err := GetDuration("THERMO_TEST_TTL", time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 90*time.Minute, d)

	d, err = GetDuration("THERMO_TEST_UNSET", time.Hour)
	require.NoError(t, err)
	assert.Equal(t, time.Hour, d)
}

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("PORT", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("ROUTE_CACHE_TTL", "")
	t.Setenv("ORS_MAX_ATTEMPTS", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "data/app.db", cfg.DBPath)
	assert.Empty(t, cfg.DatabaseURL)
	assert.Equal(t, 24*time.Hour, cfg.RouteTTL)
	assert.Equal(t, 4, cfg.ORSAttempts)
}

func TestLoadORSAttempts(t *testing.T) {
	t.Chdir(t.TempDir())

	t.Setenv("ORS_MAX_ATTEMPTS", "2")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.ORSAttempts)

	for _, bad := range []string{"0", "-1", "many"} {
		t.Setenv("ORS_MAX_ATTEMPTS", bad)
		_, err := Load()
		assert.Error(t, err, "ORS_MAX_ATTEMPTS=%s", bad)
	}
}

func TestInitLoggerJSON(t *testing.T) {
	prev := log.Logger
	t.Cleanup(func() { log.Logger = prev })

	var buf bytes.Buffer
	InitLogger("warn", "json", &buf)

	log.Info().Msg("hidden")
	log.Warn().Str("op", "test").Msg("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"op":"test"`)
	assert.Equal(t, zerolog.WarnLevel, log.Logger.GetLevel())
}
