package game

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"strings"
)

// GameState is the board, the side to move and the capture tallies. It is a
// plain value: assigning it or calling Copy yields an independent position.
type GameState struct {
	Board    [Size][Size]Piece
	Turn     Player
	Captured [3]int // Pieces taken so far, indexed by Player
}

// NewGameState returns the initial position: White men on rows 6-7, Black
// men on rows 2-3, White to move.
func NewGameState() *GameState {
	gs := EmptyState(White)
	for col := 0; col < Size; col++ {
		for _, row := range []int{2, 3} {
			gs.Board[row][col] = Piece{Owner: Black, Rank: Man}
		}
		for _, row := range []int{6, 7} {
			gs.Board[row][col] = Piece{Owner: White, Rank: Man}
		}
	}
	return gs
}

// EmptyState returns a board without pieces and the given side to move.
func EmptyState(turn Player) *GameState {
	return &GameState{Turn: turn}
}

func (gs GameState) Copy() *GameState {
	return &gs
}

// At returns the piece on sq; the zero Piece means the square is empty.
func (gs *GameState) At(sq Square) (Piece, error) {
	if !sq.Valid() {
		return Piece{}, fmt.Errorf("%w: %s", ErrOutOfBounds, sq)
	}
	return gs.Board[sq.Row][sq.Col], nil
}

// Place puts piece on sq, replacing whatever was there.
func (gs *GameState) Place(sq Square, piece Piece) error {
	if !sq.Valid() {
		return fmt.Errorf("%w: %s", ErrOutOfBounds, sq)
	}
	gs.Board[sq.Row][sq.Col] = piece
	return nil
}

// Remove empties sq.
func (gs *GameState) Remove(sq Square) error {
	return gs.Place(sq, Piece{})
}

func (gs *GameState) piece(sq Square) Piece {
	return gs.Board[sq.Row][sq.Col]
}

// Count returns how many pieces player has on the board.
func (gs *GameState) Count(player Player) int {
	count := 0
	for row := range gs.Board {
		for _, p := range gs.Board[row] {
			if p.Owner == player {
				count++
			}
		}
	}
	return count
}

// Player returns the side to move.
func (gs *GameState) Player() Player {
	return gs.Turn
}

// Hash identifies the position (board and side to move). Capture tallies are
// not part of it.
func (gs *GameState) Hash() StateHash {
	hasher := fnv.New64a()

	binary.Write(hasher, binary.LittleEndian, int64(gs.Turn))

	var cells [Size * Size]byte
	for row := range gs.Board {
		for col, p := range gs.Board[row] {
			cells[row*Size+col] = byte(p.Owner)<<1 | byte(p.Rank)
		}
	}
	hasher.Write(cells[:])

	return StateHash(hasher.Sum64())
}

// String draws the board with rank numbers and column letters. White men are
// "w", White kings "W", Black men "b", Black kings "B".
func (gs *GameState) String() string {
	var sb strings.Builder
	for row := 0; row < Size; row++ {
		fmt.Fprintf(&sb, "%d ", Size-row)
		for col := 0; col < Size; col++ {
			sb.WriteByte(symbol(gs.Board[row][col]))
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  abcdefgh\n")
	fmt.Fprintf(&sb, "%s to move\n", gs.Turn)
	return sb.String()
}

func symbol(p Piece) byte {
	var c byte
	switch p.Owner {
	case White:
		c = 'w'
	case Black:
		c = 'b'
	default:
		return '.'
	}
	if p.Rank == King {
		c -= 'a' - 'A'
	}
	return c
}
