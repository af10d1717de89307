package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/reversemath/internal/domain"
	"svw.info/reversemath/internal/generator"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "file", cfg.ScoreBackend)
	assert.True(t, cfg.Manual)
	assert.Equal(t, 32, cfg.HistorySize)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("REVERSEMATH_SCORE_BACKEND", "sqlite")
	t.Setenv("REVERSEMATH_MANUAL", "false")
	t.Setenv("REVERSEMATH_DATA_DIR", "/tmp/rm")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "sqlite", cfg.ScoreBackend)
	assert.False(t, cfg.Manual)
	assert.Equal(t, filepath.Join("/tmp/rm", "score.db"), cfg.ScoreDB())
}

func TestLoadRejectsUnknownBackend(t *testing.T) {
	t.Setenv("REVERSEMATH_SCORE_BACKEND", "redis")
	_, err := Load()
	assert.Error(t, err)
}

func TestTiersDefaultWithoutFile(t *testing.T) {
	cfg := &Config{}
	tiers, err := cfg.Tiers()
	require.NoError(t, err)
	assert.Equal(t, generator.DefaultTiers(), tiers)
}

func TestTiersOverrideFromTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tiers.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[easy]
start = [5, 9]
steps = 3
operations = ["add"]
operand = [1, 3]
decoys = 1
`), 0o644))

	tiers, err := (&Config{DifficultyFile: path}).Tiers()
	require.NoError(t, err)
	assert.Equal(t, domain.TierConfig{
		Start:      domain.Range{5, 9},
		Steps:      3,
		Operations: []domain.Operation{domain.Add},
		Operand:    domain.Range{1, 3},
		Decoys:     1,
	}, tiers[domain.Easy])
	assert.Equal(t, generator.DefaultTiers()[domain.Hard], tiers[domain.Hard])
}

func TestTiersRejectsInvalidOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tiers.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[hard]
start = [1, 100]
steps = 4
operations = ["add", "divide"]
operand = [0, 10]
decoys = 4
`), 0o644))

	_, err := (&Config{DifficultyFile: path}).Tiers()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "operand")
}
