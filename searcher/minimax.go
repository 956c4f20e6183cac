package searcher

import (
	"fmt"

	"dama/experiments/metrics"
	"dama/game"

	"github.com/rs/zerolog/log"
)

type Option func(m *Minimax)

// Minimax selects moves by depth-limited minimax with alpha-beta pruning.
// A Minimax holds no position between calls; give each goroutine its own
// instance when metrics are enabled.
type Minimax struct {
	table    Table
	evaluate game.Evaluate
	metrics  metrics.Collector
}

// WithTable replaces the difficulty table.
func WithTable(table Table) Option {
	return func(m *Minimax) {
		if table != nil {
			m.table = table
		}
	}
}

// WithEvaluationFn scores leaves with evaluate instead of the level's weights.
func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(m *Minimax) {
		if evaluate != nil {
			m.evaluate = evaluate
		}
	}
}

func WithMetrics() Option {
	return func(m *Minimax) {
		m.metrics = metrics.NewCollector()
	}
}

func NewMinimax(options ...Option) *Minimax {
	m := &Minimax{ // Default values
		table:   DefaultTable(),
		metrics: metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	return m
}

// SelectMove searches with a default Minimax.
func SelectMove(state *game.GameState, difficulty Difficulty) (SearchResult, error) {
	return NewMinimax().SelectMove(state, difficulty)
}

// SelectMove returns the best move for the side to move in state. The
// caller's state is neither modified nor retained.
func (m *Minimax) SelectMove(state *game.GameState, difficulty Difficulty) (SearchResult, error) {
	result, _, err := m.Search(state, difficulty)
	return result, err
}

// Search is SelectMove plus the metrics of the search. Metrics are zero
// unless the Minimax was built WithMetrics.
func (m *Minimax) Search(state *game.GameState, difficulty Difficulty) (SearchResult, metrics.SearchMetric, error) {
	level, err := m.table.Level(difficulty)
	if err != nil {
		return SearchResult{}, metrics.SearchMetric{}, err
	}
	if level.Depth < 1 {
		return SearchResult{}, metrics.SearchMetric{}, fmt.Errorf("%w: %s has depth %d", ErrInconsistentLevels, difficulty, level.Depth)
	}

	root := state.Copy()
	moves := root.LegalMoves()
	if len(moves) == 0 {
		return SearchResult{}, metrics.SearchMetric{}, fmt.Errorf("%w: %s to move", ErrNoLegalMove, root.Turn)
	}

	evaluate := m.evaluate
	if evaluate == nil {
		evaluate = level.Weights.Evaluator()
	}
	s := &search{evaluate: evaluate, metrics: m.metrics}

	m.metrics.Start(difficulty.String(), level.Depth)
	best, score := s.root(root, moves, level.Depth)
	metric := m.metrics.Complete()
	metric.Score = score
	metric.DepthReached = s.deepest

	event := log.Debug().
		Str("difficulty", difficulty.String()).
		Str("move", best.String()).
		Int("score", score).
		Int("depth", s.deepest)
	if metric.Nodes > 0 { // Collected only WithMetrics
		event = event.Int("nodes", metric.Nodes).Dur("duration", metric.Duration)
	}
	event.Msg("search complete")

	return SearchResult{Move: best, Score: score, DepthReached: s.deepest}, metric, nil
}

type search struct {
	evaluate game.Evaluate
	metrics  metrics.Collector
	deepest  int
}

// root scores every root move and keeps the first one with the best score.
// Later moves are searched with the window narrowed by earlier ones, so a
// move that merely ties returns a bound and never displaces the first.
func (s *search) root(gs *game.GameState, moves []game.Move, depth int) (game.Move, int) {
	s.metrics.AddNode()
	maximizing := gs.Turn == game.White
	alpha, beta := -MaxScore, MaxScore

	best, bestScore := moves[0], 0
	for i, move := range moves {
		score := s.minimax(gs.Play(move), depth-1, 1, alpha, beta)
		if i == 0 || (maximizing && score > bestScore) || (!maximizing && score < bestScore) {
			best, bestScore = move, score
		}
		if maximizing {
			alpha = max(alpha, score)
		} else {
			beta = min(beta, score)
		}
	}
	return best, bestScore
}

func (s *search) minimax(gs *game.GameState, depth, ply, alpha, beta int) int {
	s.deepest = max(s.deepest, ply)

	moves := gs.LegalMoves()
	if len(moves) == 0 {
		s.metrics.AddLeaf()
		return lost(gs.Turn, ply)
	}
	if depth <= 0 {
		s.metrics.AddLeaf()
		return s.evaluate(gs)
	}
	s.metrics.AddNode()

	if gs.Turn == game.White {
		value := -MaxScore
		for _, move := range moves {
			value = max(value, s.minimax(gs.Play(move), depth-1, ply+1, alpha, beta))
			alpha = max(alpha, value)
			if alpha >= beta {
				s.metrics.AddCutoff()
				break
			}
		}
		return value
	}

	value := MaxScore
	for _, move := range moves {
		value = min(value, s.minimax(gs.Play(move), depth-1, ply+1, alpha, beta))
		beta = min(beta, value)
		if alpha >= beta {
			s.metrics.AddCutoff()
			break
		}
	}
	return value
}

// lost scores a position whose side to move has no legal moves.
func lost(turn game.Player, ply int) int {
	if turn == game.White {
		return -(WinScore - ply)
	}
	return WinScore - ply
}
