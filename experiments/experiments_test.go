package experiments

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"dama/searcher"

	"github.com/stretchr/testify/require"
)

func quickSettings(t *testing.T) Settings {
	table := searcher.DefaultTable()
	for i, d := range searcher.Difficulties {
		level := table[d]
		level.Depth = i + 1
		table[d] = level
	}
	return Settings{
		OutputDir:       t.TempDir(),
		GamesPerMatchUp: 2,
		MaxTurns:        6,
		OpeningPlies:    2,
		Seed:            1,
		Table:           table,
	}
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestRunLadder(t *testing.T) {
	settings := quickSettings(t)

	writer, err := RunLadder(settings)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(settings.OutputDir, "ladder", writer.RunID), writer.Dir())

	configs := readCSV(t, filepath.Join(writer.Dir(), "agent_configs.csv"))
	require.Len(t, configs, 1+1+len(searcher.Difficulties))
	require.Equal(t, []string{"0", "random", "0", "0"}, configs[1])
	require.Equal(t, []string{"3", "hard", "3", "5"}, configs[4])

	games := readCSV(t, filepath.Join(writer.Dir(), "game_records.csv"))
	require.Len(t, games, 1+4*settings.GamesPerMatchUp)

	// Colours alternate within a match-up.
	require.Equal(t, []string{"0", "1"}, games[1][1:3])
	require.Equal(t, []string{"1", "0"}, games[2][1:3])
	require.Equal(t, []string{"3", "4"}, games[7][1:3])
	require.Equal(t, []string{"4", "3"}, games[8][1:3])

	moves := readCSV(t, filepath.Join(writer.Dir(), "move_records.csv"))
	require.Greater(t, len(moves), 1)
	for _, row := range moves[1:] {
		require.NotEqual(t, "1", row[1], "opening plies should not be recorded")
		require.NotEqual(t, "2", row[1], "opening plies should not be recorded")
	}
}

func TestRunThroughputExperiment(t *testing.T) {
	settings := quickSettings(t)
	settings.GamesPerMatchUp = 1

	writer, err := RunThroughputExperiment(settings)
	require.NoError(t, err)

	games := readCSV(t, filepath.Join(writer.Dir(), "game_records.csv"))
	require.Len(t, games, 1+len(searcher.Difficulties))
	for _, row := range games[1:] {
		require.Equal(t, row[1], row[2], "every level plays itself")
	}
}

func TestRunExperimentErrors(t *testing.T) {
	t.Run("no games", func(t *testing.T) {
		settings := quickSettings(t)
		settings.GamesPerMatchUp = 0
		_, err := RunLadder(settings)
		require.ErrorIs(t, err, ErrNoGames)
	})

	t.Run("inconsistent table", func(t *testing.T) {
		settings := quickSettings(t)
		settings.Table[searcher.Grandmaster] = settings.Table[searcher.Easy]
		_, err := RunLadder(settings)
		require.ErrorIs(t, err, searcher.ErrInconsistentLevels)
	})
}
