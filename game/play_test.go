package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestApplyMove(t *testing.T) {
	t.Run("forced capture removes the captured piece", func(t *testing.T) {
		gs := position(t, Black, map[Square]Piece{
			sq(2, 3): blackMan,
			sq(3, 3): whiteMan,
		})

		moves := gs.LegalMoves()
		require.Equal(t, []Move{{From: sq(2, 3), To: sq(4, 3), Captures: []Square{sq(3, 3)}}}, moves)

		outcome, err := gs.ApplyMove(moves[0])

		require.NoError(t, err)
		require.True(t, gs.Board[2][3].Empty(), "origin should be vacated")
		require.True(t, gs.Board[3][3].Empty(), "captured piece should be removed")
		require.Equal(t, blackMan, gs.Board[4][3])
		require.Equal(t, 1, gs.Captured[Black])
		require.False(t, outcome.Promoted)
		require.True(t, outcome.GameOver, "White has no pieces left")
		require.Equal(t, GameResult{Winner: Black, Reason: NoPiecesLeft}, outcome.Result)
	})

	t.Run("quiet move passes the turn", func(t *testing.T) {
		gs := NewGameState()

		outcome, err := gs.ApplyMove(Move{From: sq(6, 2), To: sq(5, 2)})

		require.NoError(t, err)
		require.Equal(t, Black, gs.Turn)
		require.True(t, gs.Board[6][2].Empty())
		require.Equal(t, whiteMan, gs.Board[5][2])
		require.False(t, outcome.GameOver)
		require.Equal(t, GameResult{Reason: Ongoing}, outcome.Result)
	})

	t.Run("outcome state is a snapshot", func(t *testing.T) {
		gs := NewGameState()

		outcome, err := gs.ApplyMove(Move{From: sq(6, 2), To: sq(5, 2)})
		require.NoError(t, err)
		require.Equal(t, gs, outcome.State)

		_, err = gs.ApplyMove(Move{From: sq(3, 0), To: sq(4, 0)})
		require.NoError(t, err)
		require.Equal(t, Black, outcome.State.Turn, "snapshot should not follow the live state")
		require.Equal(t, blackMan, outcome.State.Board[3][0])
	})

	t.Run("promotion on a quiet move", func(t *testing.T) {
		gs := position(t, White, map[Square]Piece{sq(1, 3): whiteMan, sq(7, 7): blackMan})

		outcome, err := gs.ApplyMove(Move{From: sq(1, 3), To: sq(0, 3)})

		require.NoError(t, err)
		require.True(t, outcome.Promoted)
		require.Equal(t, whiteKing, gs.Board[0][3])
	})

	t.Run("promotion mid-chain sticks after the chain", func(t *testing.T) {
		gs := position(t, Black, map[Square]Piece{
			sq(5, 4): blackMan,
			sq(6, 4): whiteMan,
			sq(7, 1): whiteMan,
			sq(7, 7): whiteMan,
		})

		// The caller's move carries no promotion flag; the engine supplies it.
		move, err := ParseMove("e3xa1(e2,b1)")
		require.NoError(t, err)
		outcome, err := gs.ApplyMove(move)

		require.NoError(t, err)
		require.True(t, outcome.Promoted)
		require.True(t, outcome.Move.Promotes)
		require.Equal(t, blackKing, gs.Board[7][0])
		require.True(t, gs.Board[6][4].Empty())
		require.True(t, gs.Board[7][1].Empty())
		require.Equal(t, whiteMan, gs.Board[7][7])
		require.False(t, outcome.GameOver)
	})

	t.Run("man landing on its far row always becomes a king", func(t *testing.T) {
		walkRandomGames(t, 20, 150, func(gs *GameState) {
			for _, m := range gs.LegalMoves() {
				piece := gs.piece(m.From)
				if piece.Rank != Man {
					continue
				}
				next := gs.Play(m)
				if m.To.Row == piece.Owner.promotionRow() || m.Promotes {
					require.Equal(t, King, next.piece(m.To).Rank, "%s should crown the man", m)
				}
			}
		})
	})
}

func TestApplyMoveErrors(t *testing.T) {
	t.Run("quiet move while a capture is mandatory", func(t *testing.T) {
		gs := position(t, White, map[Square]Piece{
			sq(5, 3): whiteMan,
			sq(7, 0): whiteMan,
			sq(4, 3): blackMan,
		})
		before := *gs

		_, err := gs.ApplyMove(Move{From: sq(7, 0), To: sq(6, 0)})

		require.ErrorIs(t, err, ErrIllegalMove)
		require.Equal(t, before, *gs, "state should be untouched")
	})

	t.Run("shorter chain than the maximum", func(t *testing.T) {
		gs := position(t, White, map[Square]Piece{
			sq(6, 0): whiteMan,
			sq(6, 5): whiteMan,
			sq(5, 0): blackMan,
			sq(3, 0): blackMan,
			sq(5, 5): blackMan,
		})

		_, err := gs.ApplyMove(Move{From: sq(6, 5), To: sq(4, 5), Captures: []Square{sq(5, 5)}})
		require.ErrorIs(t, err, ErrIllegalMove)

		_, err = gs.ApplyMove(Move{From: sq(6, 0), To: sq(4, 0), Captures: []Square{sq(5, 0)}})
		require.ErrorIs(t, err, ErrIllegalMove, "a chain cut short is illegal")
	})

	t.Run("moving the opponent's piece", func(t *testing.T) {
		gs := NewGameState()
		_, err := gs.ApplyMove(Move{From: sq(3, 0), To: sq(4, 0)})
		require.ErrorIs(t, err, ErrIllegalMove)
	})

	t.Run("square off the board", func(t *testing.T) {
		gs := NewGameState()
		_, err := gs.ApplyMove(Move{From: sq(6, 0), To: sq(6, -1)})
		require.ErrorIs(t, err, ErrOutOfBounds)
	})

	t.Run("game already decided", func(t *testing.T) {
		gs := position(t, White, map[Square]Piece{sq(0, 0): blackMan})
		_, err := gs.ApplyMove(Move{From: sq(0, 0), To: sq(1, 0)})
		require.ErrorIs(t, err, ErrGameAlreadyOver)
	})
}

func TestIsGameOver(t *testing.T) {
	t.Run("side without pieces loses", func(t *testing.T) {
		gs := position(t, White, map[Square]Piece{sq(0, 0): blackMan})
		require.Equal(t, GameResult{Winner: Black, Reason: NoPiecesLeft}, gs.IsGameOver())
		require.Equal(t, Black, gs.Winner())
	})

	t.Run("blocked side loses", func(t *testing.T) {
		gs := position(t, White, map[Square]Piece{
			sq(1, 0): whiteMan,
			sq(0, 0): blackMan,
			sq(1, 1): blackMan,
			sq(1, 2): blackMan,
		})
		require.Empty(t, gs.LegalMoves())
		require.Equal(t, GameResult{Winner: Black, Reason: NoLegalMoves}, gs.IsGameOver())
	})

	t.Run("a side with zero legal moves always hands the win to the opponent", func(t *testing.T) {
		walkRandomGames(t, 20, 400, func(gs *GameState) {
			result := gs.IsGameOver()
			if len(gs.LegalMoves()) == 0 {
				require.Equal(t, gs.Turn.Opponent(), result.Winner)
				require.True(t, result.Over())
			} else {
				require.Equal(t, NoPlayer, result.Winner)
				require.False(t, result.Over())
			}
		})
	})
}
