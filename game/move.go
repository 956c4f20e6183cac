package game

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
)

// Move relocates one piece from From to To. A capturing move lists every
// captured square in the order the chain takes them; it is applied as a
// single step.
type Move struct {
	From     Square
	To       Square
	Captures []Square
	// Promotes is set on generated moves whose piece is crowned during the
	// move, including crowning mid-chain. It is not part of move identity.
	Promotes bool
}

func (m Move) IsCapture() bool {
	return len(m.Captures) > 0
}

// Equal reports whether two moves have the same origin, destination and
// capture sequence.
func (m Move) Equal(other Move) bool {
	return m.From == other.From && m.To == other.To && slices.Equal(m.Captures, other.Captures)
}

// String renders the move as "a3-a4" or, for captures, "d2xf4(d3,e4)".
func (m Move) String() string {
	if !m.IsCapture() {
		return m.From.String() + "-" + m.To.String()
	}
	captured := make([]string, len(m.Captures))
	for i, sq := range m.Captures {
		captured[i] = sq.String()
	}
	return fmt.Sprintf("%sx%s(%s)", m.From, m.To, strings.Join(captured, ","))
}

// ParseMove is the inverse of Move.String.
func ParseMove(text string) (Move, error) {
	text = strings.TrimSpace(text)
	if from, to, ok := strings.Cut(text, "-"); ok {
		return parseEnds(from, to, nil)
	}

	from, rest, ok := strings.Cut(text, "x")
	if !ok {
		return Move{}, fmt.Errorf("%w: move %q", ErrBadNotation, text)
	}
	to, list, ok := strings.Cut(rest, "(")
	if !ok || !strings.HasSuffix(list, ")") {
		return Move{}, fmt.Errorf("%w: move %q", ErrBadNotation, text)
	}
	list = strings.TrimSuffix(list, ")")
	if list == "" {
		return Move{}, fmt.Errorf("%w: capture without captured squares %q", ErrBadNotation, text)
	}
	var captures []Square
	for _, part := range strings.Split(list, ",") {
		sq, err := ParseSquare(strings.TrimSpace(part))
		if err != nil {
			return Move{}, err
		}
		captures = append(captures, sq)
	}
	return parseEnds(from, to, captures)
}

func parseEnds(from, to string, captures []Square) (Move, error) {
	origin, err := ParseSquare(from)
	if err != nil {
		return Move{}, err
	}
	destination, err := ParseSquare(to)
	if err != nil {
		return Move{}, err
	}
	return Move{From: origin, To: destination, Captures: captures}, nil
}

func (m Move) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *Move) UnmarshalText(text []byte) error {
	parsed, err := ParseMove(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// validate checks that every square the move references is on the board.
func (m Move) validate() error {
	if !m.From.Valid() {
		return fmt.Errorf("%w: origin %s", ErrOutOfBounds, m.From)
	}
	if !m.To.Valid() {
		return fmt.Errorf("%w: destination %s", ErrOutOfBounds, m.To)
	}
	for _, sq := range m.Captures {
		if !sq.Valid() {
			return fmt.Errorf("%w: captured square %s", ErrOutOfBounds, sq)
		}
	}
	return nil
}
