package config

import (
	"os"
	"path/filepath"
	"testing"

	"dama/searcher"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		config, err := Load("")
		require.NoError(t, err)
		require.Equal(t, "info", config.LogLevel)
		require.Equal(t, "ladder", config.Experiment.Name)
		require.Equal(t, 10, config.Experiment.GamesPerMatchUp)
		require.Equal(t, 300, config.Experiment.MaxTurns)
		require.Equal(t, uint64(1), config.Experiment.Seed)

		table, err := config.Table()
		require.NoError(t, err)
		require.Equal(t, searcher.DefaultTable(), table)
	})

	t.Run("environment", func(t *testing.T) {
		t.Setenv("DAMA_LOG_LEVEL", "debug")
		t.Setenv("DAMA_MAX_TURNS", "50")
		t.Setenv("DAMA_HARD_DEPTH", "6")

		config, err := Load("")
		require.NoError(t, err)
		require.Equal(t, "debug", config.LogLevel)
		require.Equal(t, 50, config.Experiment.MaxTurns)

		table, err := config.Table()
		require.NoError(t, err)
		require.Equal(t, 6, table[searcher.Hard].Depth)
		require.Equal(t, searcher.DefaultTable()[searcher.Hard].Weights, table[searcher.Hard].Weights)
	})

	t.Run("file", func(t *testing.T) {
		path := writeFile(t, `
log-level: warn
experiment:
  name: throughput
  games-per-matchup: 3
levels:
  easy:
    depth: 1
    weights:
      man: 100
      king: 250
      advancement: 1
      promotion-zone: 10
      king-centre: 0
      mobility: 0
`)

		config, err := Load(path)
		require.NoError(t, err)
		require.Equal(t, "warn", config.LogLevel)
		require.Equal(t, "throughput", config.Experiment.Name)
		require.Equal(t, 3, config.Experiment.GamesPerMatchUp)
		require.Equal(t, 4, config.Experiment.OpeningPlies)

		table, err := config.Table()
		require.NoError(t, err)
		require.Equal(t, 1, table[searcher.Easy].Depth)
		require.Equal(t, 250, table[searcher.Easy].Weights.King)
		require.Equal(t, 3, table[searcher.Medium].Depth, "levels left out keep their defaults")
	})

	t.Run("depths must increase", func(t *testing.T) {
		path := writeFile(t, `
levels:
  grandmaster:
    depth: 2
`)
		_, err := Load(path)
		require.ErrorIs(t, err, searcher.ErrInconsistentLevels)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "absent.yml"))
		require.Error(t, err)
		require.Panics(t, func() { MustLoad(filepath.Join(t.TempDir(), "absent.yml")) })
	})
}
