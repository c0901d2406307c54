package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/etnz/screener"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv(EnvMinValuation, "")
	t.Setenv(EnvMaxRisk, "")
	t.Setenv(EnvLogLevel, "")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, screener.DefaultCriteria(), cfg.Criteria())
	assert.Equal(t, zerolog.InfoLevel, cfg.Level())
}

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Setenv(EnvMinValuation, "25.5")
	t.Setenv(EnvMaxRisk, " 3 ")
	t.Setenv(EnvLogLevel, "WARN")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, screener.Criteria{MinValuation: 25.5, MaxRisk: 3}, cfg.Criteria())
	assert.Equal(t, zerolog.WarnLevel, cfg.Level())
}

func TestLoadConfig_CollectsErrors(t *testing.T) {
	t.Setenv(EnvMinValuation, "ten")
	t.Setenv(EnvMaxRisk, "NaN")
	t.Setenv(EnvLogLevel, "loud")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), EnvMinValuation)
	assert.Contains(t, err.Error(), "loud")
	assert.Contains(t, err.Error(), "risk")
}

func TestInit_EnvFile(t *testing.T) {
	newConsole(t, "")
	t.Setenv(EnvMinValuation, "")
	t.Setenv(EnvMaxRisk, "")
	os.Unsetenv(EnvMinValuation)
	os.Unsetenv(EnvMaxRisk)

	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("SCREENER_MIN_VALUATION=42\nSCREENER_MAX_RISK=2\n"), 0644))

	old := *envFile
	t.Cleanup(func() { *envFile = old })
	*envFile = path

	require.NoError(t, Init())
	assert.Equal(t, screener.Criteria{MinValuation: 42, MaxRisk: 2}, config.Criteria())
}

func TestInit_MissingEnvFileIsIgnored(t *testing.T) {
	newConsole(t, "")
	old := *envFile
	t.Cleanup(func() { *envFile = old })
	*envFile = filepath.Join(t.TempDir(), "missing.env")

	assert.NoError(t, Init())
}
