package engine

import (
	"errors"
	"fmt"
	"time"

	"dama/experiments/metrics"
	"dama/game"
	"dama/searcher/agent"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

var ErrInvalidAgentMove = errors.New("agent chose an invalid move")

// Repetitions of a position that end the game as a draw.
const repetitionLimit = 3

type Update struct {
	Player game.Player
	Move   game.Move
	Hash   game.StateHash
}

type Option func(e *Local)

func WithMaxTurns(turns int) Option {
	return func(e *Local) {
		if turns > 0 {
			e.maxTurns = turns
		}
	}
}

// WithOpening plays plies random moves before handing over to the agents, so
// that games between deterministic agents differ.
func WithOpening(plies int, seed uint64) Option {
	return func(e *Local) {
		e.openingPlies = plies
		e.rng = rand.New(rand.NewSource(seed))
	}
}

var _ Engine = (*Local)(nil)

// Local plays two agents against each other in process.
type Local struct {
	State   *game.GameState
	History []Update

	agents       map[game.Player]agent.Agent
	maxTurns     int
	openingPlies int
	rng          *rand.Rand
	seen         map[game.StateHash]int
}

func LocalEngine(white, black agent.Agent, options ...Option) *Local {
	if white == nil || black == nil {
		panic("both sides need an agent")
	}

	e := &Local{
		State:    game.NewGameState(),
		agents:   map[game.Player]agent.Agent{game.White: white, game.Black: black},
		maxTurns: DefaultMaxTurns,
		seen:     map[game.StateHash]int{},
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Run executes the entire game loop until the game is decided or stopped.
// An agent error or an agent move that ApplyMove rejects ends the run with an
// error; no substitute move is played.
func (e *Local) Run() (metrics.GameMetric, []metrics.MoveMetric, error) {
	gameMetric := metrics.GameMetric{
		ID:             uuid.New().String(),
		StartingPlayer: e.State.Turn.String(),
		StartTime:      time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	log.Info().Msgf("game %s: %s is starting", gameMetric.ID, e.State.Turn)

	e.seen[e.State.Hash()]++
	reason, err := e.play(&moveMetrics)

	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = len(e.History)
	if err != nil {
		return gameMetric, moveMetrics, err
	}

	gameMetric.Reason = reason
	if winner := e.State.Winner(); winner != game.NoPlayer {
		gameMetric.Winner = winner.String()
	}

	log.Info().Msgf("game %s: over after %d moves (%s), winner: %s", gameMetric.ID, gameMetric.TotalMoves, reason, e.State.Winner())
	return gameMetric, moveMetrics, nil
}

func (e *Local) play(moveMetrics *[]metrics.MoveMetric) (string, error) {
	for step := 1; ; step++ {
		if result := e.State.IsGameOver(); result.Over() {
			return result.Reason.String(), nil
		}
		if step > e.maxTurns {
			return ReasonMaxTurns, nil
		}

		player := e.State.Turn
		move, searchMetric, err := e.choose(step)
		if err != nil {
			return "", fmt.Errorf("%s at step %d: %w", player, step, err)
		}

		outcome, err := e.State.ApplyMove(move)
		if err != nil {
			return "", fmt.Errorf("%w: %s at step %d played %s: %w", ErrInvalidAgentMove, player, step, move, err)
		}
		log.Debug().Msgf("step %d: %s played %s", step, player, outcome.Move)

		if step > e.openingPlies {
			*moveMetrics = append(*moveMetrics, metrics.MoveMetric{
				Step:         step,
				Player:       player.String(),
				Move:         outcome.Move.String(),
				SearchMetric: searchMetric,
			})
		}

		hash := e.State.Hash()
		e.History = append(e.History, Update{Player: player, Move: outcome.Move, Hash: hash})
		e.seen[hash]++
		if e.seen[hash] >= repetitionLimit && !outcome.GameOver {
			return ReasonRepetition, nil
		}
	}
}

// choose asks the side to move for a move, or picks a random one during the
// opening.
func (e *Local) choose(step int) (game.Move, metrics.SearchMetric, error) {
	if step <= e.openingPlies && e.rng != nil {
		moves := e.State.LegalMoves()
		return moves[e.rng.Intn(len(moves))], metrics.SearchMetric{}, nil
	}
	return e.agents[e.State.Turn].FindMove(e.State)
}
