package experiments

import (
	"errors"
	"fmt"

	"dama/engine"
	"dama/experiments/metrics"
	"dama/searcher"
	"dama/searcher/agent"

	"github.com/rs/zerolog/log"
)

var ErrNoGames = errors.New("experiment needs at least one game per match-up")

// Settings shared by every experiment.
type Settings struct {
	OutputDir       string
	GamesPerMatchUp int
	MaxTurns        int
	OpeningPlies    int // Random plies before the agents take over
	Seed            uint64
	Table           searcher.Table
}

// randomID is the AgentConfig.ID of the random baseline.
const randomID = 0

// RunLadder pairs every difficulty with the next one up, and the weakest
// with a random baseline. Colours alternate between games.
func RunLadder(settings Settings) (*metrics.Writer, error) {
	configs, err := agentConfigs(settings.Table)
	if err != nil {
		return nil, err
	}

	matchUps := [][]metrics.AgentConfig{}
	for i := 1; i < len(configs); i++ {
		matchUps = append(matchUps, []metrics.AgentConfig{configs[i-1], configs[i]})
	}

	return runExperiment("ladder", settings, configs, matchUps)
}

func agentConfigs(table searcher.Table) ([]metrics.AgentConfig, error) {
	if err := table.Validate(); err != nil {
		return nil, err
	}
	configs := []metrics.AgentConfig{{ID: randomID, Difficulty: agent.RandomDifficulty}}
	for _, d := range searcher.Difficulties {
		level, _ := table.Level(d)
		configs = append(configs, metrics.AgentConfig{
			ID:         int(d) + 1,
			Difficulty: d.String(),
			Depth:      level.Depth,
			Mobility:   level.Weights.Mobility,
		})
	}
	return configs, nil
}

func runExperiment(name string, settings Settings, configs []metrics.AgentConfig, matchUps [][]metrics.AgentConfig) (*metrics.Writer, error) {
	if settings.GamesPerMatchUp < 1 {
		return nil, ErrNoGames
	}

	// Run a number of games for each matchup
	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment...", name)

	for mi, matchup := range matchUps {
		config1 := matchup[0]
		config2 := matchup[1]

		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(matchUps), config1, config2)

		for i := 0; i < settings.GamesPerMatchUp; i++ {
			white, black := config1, config2
			if i%2 == 1 {
				white, black = config2, config1
			}

			seed := settings.Seed + uint64(count)
			gameMetric, moveMetrics, err := runGame(settings, white, black, seed)
			if err != nil {
				return nil, fmt.Errorf("matchup %d game %d: %w", mi+1, i+1, err)
			}
			count++
			gameRecords = append(gameRecords, metrics.GameRecord{
				White:      white.ID,
				Black:      black.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       gameMetric.ID,
					MoveMetric: mm,
				})
			}

			log.Info().Msgf("completed matchup %d of %d game %d with winner: %s (%s)", mi+1, len(matchUps), i+1, gameMetric.Winner, gameMetric.Reason)
		}
		log.Info().Msgf("completed matchup %d of %d", mi+1, len(matchUps))
	}

	log.Info().Msgf("completed %s experiment", name)

	writer, err := metrics.NewWriter(settings.OutputDir, name)
	if err != nil {
		return nil, fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteAgentConfigs(configs); err != nil {
		return nil, fmt.Errorf("failed to store agent configs: %w", err)
	}
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return nil, fmt.Errorf("failed to write game records: %w", err)
	}
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return nil, fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msgf("stored %s results in %s", name, writer.Dir())

	return writer, nil
}

// runGame plays a single game between two agents
func runGame(settings Settings, white, black metrics.AgentConfig, seed uint64) (metrics.GameMetric, []metrics.MoveMetric, error) {
	whiteAgent, err := createAgent(settings.Table, white, seed)
	if err != nil {
		return metrics.GameMetric{}, nil, err
	}
	blackAgent, err := createAgent(settings.Table, black, seed+1)
	if err != nil {
		return metrics.GameMetric{}, nil, err
	}

	options := []engine.Option{engine.WithMaxTurns(settings.MaxTurns)}
	if settings.OpeningPlies > 0 {
		options = append(options, engine.WithOpening(settings.OpeningPlies, seed))
	}
	return engine.LocalEngine(whiteAgent, blackAgent, options...).Run()
}

func createAgent(table searcher.Table, config metrics.AgentConfig, seed uint64) (agent.Agent, error) {
	if config.ID == randomID {
		return agent.NewRandomAgent(seed), nil
	}
	difficulty, err := searcher.ParseDifficulty(config.Difficulty)
	if err != nil {
		return nil, err
	}
	minimax := searcher.NewMinimax(searcher.WithTable(table), searcher.WithMetrics())
	return agent.NewEvaluationAgent(minimax, difficulty), nil
}
