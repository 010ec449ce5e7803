package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load([]string{"-o", "out.json"})
	require.NoError(t, err)
	assert.Equal(t, DefaultFeaturesCount, cfg.FeaturesCount)
	assert.Equal(t, DefaultMaxStrategiesPerFeature, cfg.MaxStrategiesPerFeature)
	assert.Equal(t, "out.json", cfg.Output)
	assert.Zero(t, cfg.Seed)
	assert.False(t, cfg.Pretty)
	assert.Equal(t, "prod", cfg.LogEnv)
}

func TestLoad_Flags(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load([]string{
		"--features-count", "5",
		"-m", "3",
		"--output", "/tmp/x.json",
		"--seed", "1234",
		"--pretty",
		"--metrics-file", "gen.prom",
		"--log-env", "dev",
	})
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.FeaturesCount)
	assert.Equal(t, 3, cfg.MaxStrategiesPerFeature)
	assert.Equal(t, "/tmp/x.json", cfg.Output)
	assert.Equal(t, uint64(1234), cfg.Seed)
	assert.True(t, cfg.Pretty)
	assert.Equal(t, "gen.prom", cfg.MetricsFile)
	assert.Equal(t, "dev", cfg.LogEnv)
}

func TestLoad_Env(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("FEATURES_COUNT", "42")
	t.Setenv("MAX_STRATEGIES_PER_FEATURE", "7")
	t.Setenv("OUTPUT", "env.json")
	t.Setenv("SEED", "9")

	cfg, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, 42, cfg.FeaturesCount)
	assert.Equal(t, 7, cfg.MaxStrategiesPerFeature)
	assert.Equal(t, "env.json", cfg.Output)
	assert.Equal(t, uint64(9), cfg.Seed)
}

func TestLoad_FlagBeatsEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("FEATURES_COUNT", "42")
	t.Setenv("OUTPUT", "env.json")

	cfg, err := Load([]string{"-f", "3", "-o", "flag.json"})
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.FeaturesCount)
	assert.Equal(t, "flag.json", cfg.Output)
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	path := filepath.Join(dir, "featuregen.yaml")
	require.NoError(t, os.WriteFile(path, []byte("features-count: 12\noutput: file.json\npretty: true\n"), 0o644))

	cfg, err := Load([]string{"--config", path, "-m", "4"})
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.FeaturesCount)
	assert.Equal(t, 4, cfg.MaxStrategiesPerFeature)
	assert.Equal(t, "file.json", cfg.Output)
	assert.True(t, cfg.Pretty)
}

func TestLoad_DotEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("OUTPUT=dotenv.json\n"), 0o644))
	// registered so the variable set by godotenv is cleared after the test
	t.Setenv("OUTPUT", "")
	require.NoError(t, os.Unsetenv("OUTPUT"))

	cfg, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, "dotenv.json", cfg.Output)
}

func TestLoad_Errors(t *testing.T) {
	t.Chdir(t.TempDir())

	tests := []struct {
		name string
		args []string
		want error
	}{
		{"missing output", []string{"-f", "10"}, ErrOutputRequired},
		{"negative features", []string{"-f", "-1", "-o", "x.json"}, ErrNegativeCount},
		{"negative strategies", []string{"-m", "-2", "-o", "x.json"}, ErrNegativeCount},
		{"bad log env", []string{"-o", "x.json", "--log-env", "staging"}, ErrLogEnv},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.args)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)

			var cfgErr *Error
			assert.True(t, errors.As(err, &cfgErr))
		})
	}
}

func TestLoad_MalformedFlag(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := Load([]string{"--features-count", "many", "-o", "x.json"})
	require.Error(t, err)
	var cfgErr *Error
	assert.ErrorAs(t, err, &cfgErr)
}

func TestLoad_Help(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := Load([]string{"--help"})
	assert.ErrorIs(t, err, pflag.ErrHelp)
}

func TestLoad_MissingConfigFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := Load([]string{"--config", "nope.yaml", "-o", "x.json"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nope.yaml")
}
