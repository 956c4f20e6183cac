package game

// Size is the number of rows and columns of the board.
const Size = 8

// Player identifies a side. NoPlayer marks an empty cell or an undecided game.
type Player int

const (
	NoPlayer Player = iota
	White
	Black
)

func (p Player) String() string {
	switch p {
	case White:
		return "white"
	case Black:
		return "black"
	default:
		return "none"
	}
}

// Opponent returns the other side. NoPlayer has no opponent.
func (p Player) Opponent() Player {
	switch p {
	case White:
		return Black
	case Black:
		return White
	default:
		return NoPlayer
	}
}

// promotionRow is the farthest row from the player's starting side.
func (p Player) promotionRow() int {
	if p == White {
		return 0
	}
	return Size - 1
}

// forward is the row delta of a man advancing toward its promotion row.
func (p Player) forward() int {
	if p == White {
		return -1
	}
	return 1
}

type Rank int

const (
	Man Rank = iota
	King
)

func (r Rank) String() string {
	if r == King {
		return "king"
	}
	return "man"
}

// Piece is the content of a cell. The zero value is an empty cell.
type Piece struct {
	Owner Player
	Rank  Rank
}

func (p Piece) Empty() bool {
	return p.Owner == NoPlayer
}

type StateHash uint64

// Evaluate scores a position from White's point of view: positive favours
// White, negative favours Black.
type Evaluate func(*GameState) int
