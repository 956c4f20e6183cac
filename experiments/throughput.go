package experiments

import (
	"dama/experiments/metrics"
)

// RunThroughputExperiment plays every difficulty against itself, for the
// same playing strength and similar game length, to measure search cost per
// level.
func RunThroughputExperiment(settings Settings) (*metrics.Writer, error) {
	configs, err := agentConfigs(settings.Table)
	if err != nil {
		return nil, err
	}

	matchUps := [][]metrics.AgentConfig{}
	for _, config := range configs[1:] {
		matchUps = append(matchUps, []metrics.AgentConfig{config, config})
	}

	return runExperiment("throughput", settings, configs, matchUps)
}
