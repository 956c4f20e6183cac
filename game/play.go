package game

import (
	"fmt"

	"golang.org/x/exp/slices"
)

type Reason int

const (
	Ongoing Reason = iota
	NoLegalMoves
	NoPiecesLeft
)

func (r Reason) String() string {
	switch r {
	case NoLegalMoves:
		return "no legal moves"
	case NoPiecesLeft:
		return "no pieces left"
	default:
		return "ongoing"
	}
}

// GameResult describes whether the game is decided. Winner is NoPlayer while
// the game is ongoing.
type GameResult struct {
	Winner Player
	Reason Reason
}

func (r GameResult) Over() bool {
	return r.Reason != Ongoing
}

// MoveOutcome is returned by ApplyMove. State is a snapshot of the position
// after the move, independent of the live state.
type MoveOutcome struct {
	Move     Move
	State    *GameState
	Promoted bool
	GameOver bool
	Result   GameResult
}

// IsGameOver reports whether the side to move has lost: a side without legal
// moves, including one without pieces, loses to its opponent.
func (gs *GameState) IsGameOver() GameResult {
	if gs.Count(gs.Turn) == 0 {
		return GameResult{Winner: gs.Turn.Opponent(), Reason: NoPiecesLeft}
	}
	if len(gs.LegalMoves()) == 0 {
		return GameResult{Winner: gs.Turn.Opponent(), Reason: NoLegalMoves}
	}
	return GameResult{Reason: Ongoing}
}

// Winner returns the winning side, or NoPlayer while the game is ongoing.
func (gs *GameState) Winner() Player {
	return gs.IsGameOver().Winner
}

// ApplyMove plays move for the side to move. The move must be a member of
// LegalMoves; only its origin, destination and captures are compared. On
// error the state is left untouched.
func (gs *GameState) ApplyMove(move Move) (MoveOutcome, error) {
	if err := move.validate(); err != nil {
		return MoveOutcome{}, err
	}

	legal := gs.LegalMoves()
	if len(legal) == 0 {
		return MoveOutcome{}, fmt.Errorf("%w: %s has no legal moves", ErrGameAlreadyOver, gs.Turn)
	}
	i := slices.IndexFunc(legal, move.Equal)
	if i < 0 {
		return MoveOutcome{}, fmt.Errorf("%w: %s for %s", ErrIllegalMove, move, gs.Turn)
	}

	played := legal[i]
	promoted := gs.apply(played)
	result := gs.IsGameOver()

	return MoveOutcome{
		Move:     played,
		State:    gs.Copy(),
		Promoted: promoted,
		GameOver: result.Over(),
		Result:   result,
	}, nil
}

// Play returns a new state with move applied, leaving the receiver untouched.
// The move is trusted to come from LegalMoves.
func (gs *GameState) Play(move Move) *GameState {
	next := gs.Copy()
	next.apply(move)
	return next
}

// apply relocates the piece, clears every captured square, crowns the piece
// if it was promoted on the way or lands on its promotion row, and passes the
// turn. It reports whether a promotion happened.
func (gs *GameState) apply(move Move) bool {
	piece := gs.piece(move.From)
	gs.Board[move.From.Row][move.From.Col] = Piece{}
	for _, sq := range move.Captures {
		gs.Board[sq.Row][sq.Col] = Piece{}
	}
	gs.Captured[gs.Turn] += len(move.Captures)

	promoted := false
	if piece.Rank == Man && (move.Promotes || move.To.Row == piece.Owner.promotionRow()) {
		piece.Rank = King
		promoted = true
	}
	gs.Board[move.To.Row][move.To.Col] = piece

	gs.Turn = gs.Turn.Opponent()
	return promoted
}
