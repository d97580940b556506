package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aldrin-Shanty/DSA/BTrees"
	"github.com/Aldrin-Shanty/DSA/internal/config"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "dsa.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoadConfig_EmptyFile_UsesDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := config.LoadConfig(writeConfig(t, ""))
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, config.DefaultLevel, cfg.Log.Level)
	assert.Equal(t, config.DefaultFormat, cfg.Output.Format)
	assert.Equal(t, config.DefaultColor, cfg.Output.Color)
	assert.Equal(t, int64(config.DefaultSeed), cfg.Random.Seed)
	assert.Equal(t, uint(config.DefaultBloomExpected), cfg.Bloom.Expected)
	assert.InDelta(t, config.DefaultBloomFP, cfg.Bloom.FP, 1e-9)
	assert.Equal(t, config.DefaultMaxLevel, cfg.SkipList.MaxLevel)
	assert.InDelta(t, config.DefaultP, cfg.SkipList.P, 1e-9)
	assert.Equal(t, config.DefaultDegree, cfg.BTree.Degree)
	assert.Equal(t, config.DefaultOrder, cfg.BPlusTree.Order)
}

func TestLoadConfig_ValidFile_Unmarshals(t *testing.T) {
	t.Parallel()

	content := `log:
  level: debug
output:
  format: yaml
  color: false
random:
  seed: 42
bloom:
  expected: 5000
  fp: 0.001
skiplist:
  max_level: 8
  p: 0.25
btree:
  degree: 4
bplustree:
  order: 7
`
	cfg, err := config.LoadConfig(writeConfig(t, content))
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "yaml", cfg.Output.Format)
	assert.False(t, cfg.Output.Color)
	assert.Equal(t, int64(42), cfg.Random.Seed)
	assert.Equal(t, uint(5000), cfg.Bloom.Expected)
	assert.InDelta(t, 0.001, cfg.Bloom.FP, 1e-9)
	assert.Equal(t, 8, cfg.SkipList.MaxLevel)
	assert.InDelta(t, 0.25, cfg.SkipList.P, 1e-9)
	assert.Equal(t, 4, cfg.BTree.Degree)
	assert.Equal(t, 7, cfg.BPlusTree.Order)
}

func TestLoadConfig_Env_Overrides(t *testing.T) {
	t.Setenv("DSA_OUTPUT_FORMAT", "json")
	t.Setenv("DSA_BTREE_DEGREE", "9")

	cfg, err := config.LoadConfig(writeConfig(t, "output:\n  format: yaml\n"))
	require.NoError(t, err)

	assert.Equal(t, "json", cfg.Output.Format)
	assert.Equal(t, 9, cfg.BTree.Degree)
}

func TestLoadConfig_Invalid(t *testing.T) {
	t.Parallel()

	cases := map[string]error{
		"log:\n  level: loud\n":         config.ErrInvalidLevel,
		"output:\n  format: xml\n":      config.ErrInvalidFormat,
		"bloom:\n  expected: 0\n":       config.ErrInvalidExpected,
		"bloom:\n  fp: 1.5\n":           config.ErrInvalidFP,
		"skiplist:\n  max_level: 0\n":   config.ErrInvalidMaxLevel,
		"skiplist:\n  p: 0\n":           config.ErrInvalidP,
		"btree:\n  degree: 1\n":         config.ErrInvalidDegree,
		"bplustree:\n  order: 2\n":      config.ErrInvalidOrder,
		"skiplist:\n  max_level: 100\n": config.ErrInvalidMaxLevel,
	}
	for content, want := range cases {
		_, err := config.LoadConfig(writeConfig(t, content))
		require.ErrorIs(t, err, want, content)
	}
}

func TestLoadConfig_BadYAML(t *testing.T) {
	t.Parallel()

	_, err := config.LoadConfig(writeConfig(t, "log: [unclosed\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_TreeErrorsMatchLibrary(t *testing.T) {
	t.Parallel()

	_, err := config.LoadConfig(writeConfig(t, "btree:\n  degree: 1\n"))
	require.ErrorIs(t, err, config.ErrInvalidDegree)
	require.ErrorIs(t, err, BTrees.ErrInvalidDegree)

	_, err = config.LoadConfig(writeConfig(t, "bplustree:\n  order: 2\n"))
	require.ErrorIs(t, err, config.ErrInvalidOrder)
	require.ErrorIs(t, err, BTrees.ErrInvalidOrder)
}
