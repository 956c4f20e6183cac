package game

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

var (
	whiteMan  = Piece{Owner: White, Rank: Man}
	whiteKing = Piece{Owner: White, Rank: King}
	blackMan  = Piece{Owner: Black, Rank: Man}
	blackKing = Piece{Owner: Black, Rank: King}
)

func sq(row, col int) Square {
	return Square{Row: row, Col: col}
}

// position builds a state with only the given pieces.
func position(t *testing.T, turn Player, pieces map[Square]Piece) *GameState {
	t.Helper()
	gs := EmptyState(turn)
	for at, piece := range pieces {
		require.NoError(t, gs.Place(at, piece))
	}
	return gs
}

func notations(moves []Move) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.String()
	}
	return out
}

// walkRandomGames plays seeded random games from the initial position and
// calls visit on every position reached before each move.
func walkRandomGames(t *testing.T, games, maxPlies int, visit func(*GameState)) {
	t.Helper()
	rng := rand.New(rand.NewSource(42))
	for g := 0; g < games; g++ {
		gs := NewGameState()
		for ply := 0; ply < maxPlies; ply++ {
			visit(gs)
			moves := gs.LegalMoves()
			if len(moves) == 0 {
				break
			}
			_, err := gs.ApplyMove(moves[rng.Intn(len(moves))])
			require.NoError(t, err)
		}
	}
}
