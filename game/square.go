package game

import "fmt"

// Square is a (row, column) pair. Row 0 is Black's far edge and White's
// promotion row; row 7 is White's home edge.
type Square struct {
	Row int
	Col int
}

// NewSquare returns the square at row, col or ErrOutOfBounds.
func NewSquare(row, col int) (Square, error) {
	sq := Square{Row: row, Col: col}
	if !sq.Valid() {
		return Square{}, fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, row, col)
	}
	return sq, nil
}

func (s Square) Valid() bool {
	return s.Row >= 0 && s.Row < Size && s.Col >= 0 && s.Col < Size
}

// index is the square's bit position in a 64-bit set.
func (s Square) index() uint {
	return uint(s.Row*Size + s.Col)
}

func (s Square) add(d direction) Square {
	return Square{Row: s.Row + d.dRow, Col: s.Col + d.dCol}
}

// String renders the square as column letter and rank number, e.g. "a1" for
// (7,0) and "h8" for (0,7).
func (s Square) String() string {
	if !s.Valid() {
		return fmt.Sprintf("(%d,%d)", s.Row, s.Col)
	}
	return fmt.Sprintf("%c%d", 'a'+s.Col, Size-s.Row)
}

// ParseSquare is the inverse of Square.String.
func ParseSquare(text string) (Square, error) {
	if len(text) != 2 {
		return Square{}, fmt.Errorf("%w: square %q", ErrBadNotation, text)
	}
	col := int(text[0] - 'a')
	rank := int(text[1] - '0')
	if text[0] < 'a' || text[1] < '0' || text[1] > '9' {
		return Square{}, fmt.Errorf("%w: square %q", ErrBadNotation, text)
	}
	return NewSquare(Size-rank, col)
}

type direction struct {
	dRow int
	dCol int
}

var (
	up    = direction{dRow: -1}
	down  = direction{dRow: 1}
	left  = direction{dCol: -1}
	right = direction{dCol: 1}

	orthogonal = [4]direction{up, down, left, right}
)

// squareSet is a set of squares packed into a bitmask.
type squareSet uint64

func (s squareSet) has(sq Square) bool {
	return s&(1<<sq.index()) != 0
}

func (s squareSet) with(sq Square) squareSet {
	return s | 1<<sq.index()
}
