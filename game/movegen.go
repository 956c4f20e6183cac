package game

import "golang.org/x/exp/slices"

// LegalMoves returns every legal move for the side to move. Captures are
// compulsory and only the longest capture chains on the whole board are
// legal; quiet moves are legal only when nothing can be captured. An empty
// result means the side to move has lost.
//
// Moves are listed square by square (row 0 first, then column order), and
// per piece in direction order up, down, left, right.
func (gs *GameState) LegalMoves() []Move {
	if captures := gs.captureMoves(); len(captures) > 0 {
		return captures
	}
	return gs.quietMoves()
}

// captureMoves returns the maximal capture chains of the side to move that
// reach the globally longest length.
func (gs *GameState) captureMoves() []Move {
	var longest []Move
	best := 0
	gs.eachPiece(gs.Turn, func(from Square, piece Piece) {
		for _, chain := range gs.chainsFrom(from, piece) {
			switch n := len(chain.Captures); {
			case n > best:
				best = n
				longest = append(longest[:0], chain)
			case n == best:
				longest = append(longest, chain)
			}
		}
	})
	return longest
}

func (gs *GameState) quietMoves() []Move {
	var moves []Move
	gs.eachPiece(gs.Turn, func(from Square, piece Piece) {
		moves = gs.appendQuiet(moves, from, piece)
	})
	return moves
}

func (gs *GameState) eachPiece(player Player, fn func(Square, Piece)) {
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if p := gs.Board[row][col]; p.Owner == player {
				fn(Square{Row: row, Col: col}, p)
			}
		}
	}
}

// directions returns the directions a piece may move or capture in. A man
// never heads back toward its own side.
func directions(piece Piece) []direction {
	if piece.Rank == King {
		return orthogonal[:]
	}
	if piece.Owner == White {
		return []direction{up, left, right}
	}
	return []direction{down, left, right}
}

func (gs *GameState) appendQuiet(moves []Move, from Square, piece Piece) []Move {
	for _, d := range directions(piece) {
		for to := from.add(d); to.Valid() && gs.piece(to).Empty(); to = to.add(d) {
			moves = append(moves, Move{
				From:     from,
				To:       to,
				Promotes: piece.Rank == Man && to.Row == piece.Owner.promotionRow(),
			})
			if piece.Rank == Man {
				break
			}
		}
	}
	return moves
}

// chainSearch enumerates capture chains of a single piece by depth-first
// search over (square, captured set). Captured pieces stay on the board
// until the chain ends, so they block rays and cannot be landed on or taken
// twice. The origin square is vacated for the duration of the chain.
type chainSearch struct {
	gs     *GameState
	origin Square
	owner  Player
	path   []Square
	chains []Move
}

func (gs *GameState) chainsFrom(from Square, piece Piece) []Move {
	cs := &chainSearch{gs: gs, origin: from, owner: piece.Owner}
	cs.extend(from, piece.Rank, 0, false)
	return cs.chains
}

func (cs *chainSearch) vacant(sq Square) bool {
	return sq == cs.origin || cs.gs.piece(sq).Empty()
}

func (cs *chainSearch) capturable(sq Square, captured squareSet) bool {
	p := cs.gs.piece(sq)
	return sq != cs.origin && p.Owner == cs.owner.Opponent() && !captured.has(sq)
}

func (cs *chainSearch) extend(at Square, rank Rank, captured squareSet, promoted bool) {
	piece := Piece{Owner: cs.owner, Rank: rank}
	continued := false

	for _, d := range directions(piece) {
		victim := at.add(d)
		if rank == King {
			for victim.Valid() && cs.vacant(victim) {
				victim = victim.add(d)
			}
		}
		if !victim.Valid() || !cs.capturable(victim, captured) {
			continue
		}

		for landing := victim.add(d); landing.Valid() && cs.vacant(landing); landing = landing.add(d) {
			continued = true
			crowned := rank == Man && landing.Row == cs.owner.promotionRow()
			next := rank
			if crowned {
				next = King
			}

			cs.path = append(cs.path, victim)
			cs.extend(landing, next, captured.with(victim), promoted || crowned)
			cs.path = cs.path[:len(cs.path)-1]

			if rank == Man {
				break
			}
		}
	}

	if !continued && len(cs.path) > 0 {
		cs.record(Move{
			From:     cs.origin,
			To:       at,
			Captures: slices.Clone(cs.path),
			Promotes: promoted,
		})
	}
}

// record keeps a finished chain unless an identical move was already found
// through a different sequence of king landings.
func (cs *chainSearch) record(m Move) {
	if slices.ContainsFunc(cs.chains, m.Equal) {
		return
	}
	cs.chains = append(cs.chains, m)
}
