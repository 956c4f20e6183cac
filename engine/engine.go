package engine

import "dama/experiments/metrics"

// DefaultMaxTurns bounds games that neither side can finish.
const DefaultMaxTurns = 500

// Stop reasons besides the game's own.
const (
	ReasonMaxTurns   = "max turns"
	ReasonRepetition = "repetition"
)

type Engine interface {
	// Run plays a game till there's a winner, a draw by repetition or a max number of turns is reached
	Run() (gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric, err error)
}
