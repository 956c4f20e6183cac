package game

// Weights are the tunables of the static evaluation. All terms are computed
// for both sides and subtracted, White minus Black.
//
// With Mobility at zero, an extra piece or a man further advanced never
// lowers the score. A non-zero Mobility can break that: an advancing man may
// block its own side's king and cost more mobility than it gains in Progress.
type Weights struct {
	Man           int // Material value of a man
	King          int // Material value of a king
	Advancement   int // Per row a man has advanced from its home edge
	PromotionZone int // Extra per row once a man is within three rows of crowning
	KingCentre    int // Per step a king stands closer to the centre
	Mobility      int // Per legal move; zero disables the term
}

// Evaluator returns an Evaluate function scoring positions with w.
func (w Weights) Evaluator() Evaluate {
	return func(gs *GameState) int {
		return w.Evaluate(gs)
	}
}

// Evaluate scores gs from White's point of view.
func (w Weights) Evaluate(gs *GameState) int {
	score := w.Material(gs) + w.Progress(gs) + w.KingCentralisation(gs)
	if w.Mobility != 0 {
		score += w.Mobility * Mobility(gs)
	}
	return score
}

// Material is the weighted piece count difference.
func (w Weights) Material(gs *GameState) int {
	score := 0
	gs.eachOccupied(func(sq Square, p Piece) {
		value := w.Man
		if p.Rank == King {
			value = w.King
		}
		score += sign(p.Owner) * value
	})
	return score
}

// Progress rewards men for the rows they have covered toward their
// promotion row, with a steeper bonus close to it. The term never decreases
// as a man advances.
func (w Weights) Progress(gs *GameState) int {
	score := 0
	gs.eachOccupied(func(sq Square, p Piece) {
		if p.Rank != Man {
			return
		}
		rows := advance(sq, p.Owner)
		bonus := rows * w.Advancement
		if rows > Size-4 {
			bonus += (rows - (Size - 4)) * w.PromotionZone
		}
		score += sign(p.Owner) * bonus
	})
	return score
}

// KingCentralisation rewards kings standing near the middle of the board,
// where their rays are longest.
func (w Weights) KingCentralisation(gs *GameState) int {
	score := 0
	gs.eachOccupied(func(sq Square, p Piece) {
		if p.Rank != King {
			return
		}
		// Distance to the centre in half squares, from 2 to 14.
		distance := abs(2*sq.Row-(Size-1)) + abs(2*sq.Col-(Size-1))
		score += sign(p.Owner) * w.KingCentre * (2*(Size-1) - distance) / 2
	})
	return score
}

// Mobility is White's legal move count minus Black's, each counted as if it
// were that side's turn.
func Mobility(gs *GameState) int {
	view := gs.Copy()
	view.Turn = White
	white := len(view.LegalMoves())
	view.Turn = Black
	black := len(view.LegalMoves())
	return white - black
}

func (gs *GameState) eachOccupied(fn func(Square, Piece)) {
	gs.eachPiece(White, fn)
	gs.eachPiece(Black, fn)
}

// advance is how many rows a piece of player on sq stands from its home edge.
func advance(sq Square, player Player) int {
	if player == White {
		return Size - 1 - sq.Row
	}
	return sq.Row
}

func sign(p Player) int {
	switch p {
	case White:
		return 1
	case Black:
		return -1
	default:
		return 0
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
