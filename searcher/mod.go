package searcher

import (
	"errors"
	"fmt"
	"strings"

	"dama/game"
)

var (
	ErrNoLegalMove        = errors.New("no legal move to select")
	ErrUnknownDifficulty  = errors.New("unknown difficulty")
	ErrInconsistentLevels = errors.New("difficulty depths must strictly increase")
)

// Scores are from White's point of view. A decided position scores
// WinScore minus the ply at which it occurs, so faster wins rank higher.
const (
	WinScore = 1_000_000
	MaxScore = WinScore + 1
)

type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
	Grandmaster
)

// Difficulties lists every level from weakest to strongest.
var Difficulties = []Difficulty{Easy, Medium, Hard, Grandmaster}

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	case Grandmaster:
		return "grandmaster"
	default:
		return fmt.Sprintf("difficulty(%d)", int(d))
	}
}

// ParseDifficulty accepts a level name in any case.
func ParseDifficulty(name string) (Difficulty, error) {
	for _, d := range Difficulties {
		if strings.EqualFold(name, d.String()) {
			return d, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownDifficulty, name)
}

// SearchResult is the selected move with its minimax score and the deepest
// ply the search visited.
type SearchResult struct {
	Move         game.Move
	Score        int
	DepthReached int
}
