package rules

// Direction and offset sets for piece movement, as (row, col) deltas.
var (
	knightOffsets = [8][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingOffsets   = [8][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
	rookDirs      = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	bishopDirs    = [4][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	queenDirs     = [8][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}, {-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
)

// pawnDir is the row step of a pawn advance: White moves toward row 0.
func pawnDir(c Color) int {
	if c == White {
		return -1
	}
	return 1
}

func pawnStartRow(c Color) int {
	if c == White {
		return 6
	}
	return 1
}

func backRow(c Color) int {
	if c == White {
		return 7
	}
	return 0
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// ==========================
// Pseudo-legal generation
// ==========================

// pseudoLegal returns the destinations of the piece on from that satisfy its
// movement geometry and occupancy rules, ignoring the safety of the mover's king.
func (g *Game) pseudoLegal(from Position, p Piece) []Position {
	c := p.Color()
	switch p.Type() {
	case Pawn:
		return g.pawnMoves(from, c)
	case Knight:
		return g.offsetMoves(from, c, knightOffsets[:])
	case Bishop:
		return g.slidingMoves(from, c, bishopDirs[:])
	case Rook:
		return g.slidingMoves(from, c, rookDirs[:])
	case Queen:
		return g.slidingMoves(from, c, queenDirs[:])
	case King:
		return g.kingMoves(from, c)
	}
	return nil
}

func (g *Game) pawnMoves(from Position, c Color) []Position {
	moves := make([]Position, 0, 4)
	dir := pawnDir(c)

	// Forward pushes
	one := from.offset(dir, 0)
	if one.Valid() && g.board.At(one) == NoPiece {
		moves = append(moves, one)
		two := from.offset(2*dir, 0)
		if from.Row == pawnStartRow(c) && g.board.At(two) == NoPiece {
			moves = append(moves, two)
		}
	}

	// Captures
	for _, dc := range [2]int{-1, 1} {
		to := from.offset(dir, dc)
		if g.board.At(to).Is(c.Other()) {
			moves = append(moves, to)
		}
	}

	// En passant
	if ep := g.enPassant; ep != NoPosition && ep.Row == from.Row+dir && abs(ep.Col-from.Col) == 1 {
		if g.board.At(ep) == NoPiece && g.board.At(Pos(from.Row, ep.Col)) == NewPiece(c.Other(), Pawn) {
			moves = append(moves, ep)
		}
	}
	return moves
}

func (g *Game) offsetMoves(from Position, c Color, offsets [][2]int) []Position {
	moves := make([]Position, 0, len(offsets))
	for _, d := range offsets {
		to := from.offset(d[0], d[1])
		if to.Valid() && !g.board.At(to).Is(c) {
			moves = append(moves, to)
		}
	}
	return moves
}

// slidingMoves casts a ray along each direction until the board edge, an own
// piece (excluded) or an enemy piece (included).
func (g *Game) slidingMoves(from Position, c Color, dirs [][2]int) []Position {
	moves := make([]Position, 0, 14)
	for _, d := range dirs {
		for to := from.offset(d[0], d[1]); to.Valid(); to = to.offset(d[0], d[1]) {
			target := g.board.At(to)
			if target == NoPiece {
				moves = append(moves, to)
				continue
			}
			if target.Color() != c {
				moves = append(moves, to)
			}
			break
		}
	}
	return moves
}

func (g *Game) kingMoves(from Position, c Color) []Position {
	moves := g.offsetMoves(from, c, kingOffsets[:])
	row := backRow(c)
	if from != Pos(row, 4) || g.IsSquareAttacked(from, c) {
		return moves
	}
	rook := NewPiece(c, Rook)

	// Kingside: f and g empty and not attacked
	if g.castling.Kingside(c) && g.board[row][7] == rook &&
		g.board[row][5] == NoPiece && g.board[row][6] == NoPiece &&
		!g.IsSquareAttacked(Pos(row, 5), c) && !g.IsSquareAttacked(Pos(row, 6), c) {
		moves = append(moves, Pos(row, 6))
	}

	// Queenside: b, c and d empty; c and d not attacked
	if g.castling.Queenside(c) && g.board[row][0] == rook &&
		g.board[row][3] == NoPiece && g.board[row][2] == NoPiece && g.board[row][1] == NoPiece &&
		!g.IsSquareAttacked(Pos(row, 3), c) && !g.IsSquareAttacked(Pos(row, 2), c) {
		moves = append(moves, Pos(row, 2))
	}
	return moves
}

// ==========================
// Attack detection
// ==========================

// forEachAttack visits every square the piece on from attacks, stopping early
// when visit returns false. Pawns attack their two forward diagonals and kings
// their adjacent squares only; no castling, pushes or check filtering apply.
func (g *Game) forEachAttack(from Position, p Piece, visit func(Position) bool) {
	switch p.Type() {
	case Pawn:
		dir := pawnDir(p.Color())
		for _, dc := range [2]int{-1, 1} {
			if to := from.offset(dir, dc); to.Valid() && !visit(to) {
				return
			}
		}
	case Knight:
		for _, d := range knightOffsets {
			if to := from.offset(d[0], d[1]); to.Valid() && !visit(to) {
				return
			}
		}
	case King:
		for _, d := range kingOffsets {
			if to := from.offset(d[0], d[1]); to.Valid() && !visit(to) {
				return
			}
		}
	case Bishop, Rook, Queen:
		dirs := queenDirs[:]
		if p.Type() == Bishop {
			dirs = bishopDirs[:]
		} else if p.Type() == Rook {
			dirs = rookDirs[:]
		}
		for _, d := range dirs {
			for to := from.offset(d[0], d[1]); to.Valid(); to = to.offset(d[0], d[1]) {
				if !visit(to) {
					return
				}
				if g.board.At(to) != NoPiece {
					break
				}
			}
		}
	}
}

// Attacks lists the squares attacked by the piece on pos. Empty squares attack nothing.
func (g *Game) Attacks(pos Position) []Position {
	p := g.board.At(pos)
	if p == NoPiece {
		return nil
	}
	var out []Position
	g.forEachAttack(pos, p, func(to Position) bool {
		out = append(out, to)
		return true
	})
	return out
}

// IsSquareAttacked reports whether any piece of the side opposing defending
// attacks pos. The scan works outward from pos, so it is equivalent to asking
// whether pos is in the Attacks set of any opposing piece.
func (g *Game) IsSquareAttacked(pos Position, defending Color) bool {
	if !pos.Valid() {
		return false
	}
	by := defending.Other()

	// Pawns attacking pos stand one row behind it, relative to their advance.
	pawn := NewPiece(by, Pawn)
	dir := pawnDir(by)
	if g.board.At(pos.offset(-dir, -1)) == pawn || g.board.At(pos.offset(-dir, 1)) == pawn {
		return true
	}

	knight := NewPiece(by, Knight)
	for _, d := range knightOffsets {
		if g.board.At(pos.offset(d[0], d[1])) == knight {
			return true
		}
	}

	king := NewPiece(by, King)
	for _, d := range kingOffsets {
		if g.board.At(pos.offset(d[0], d[1])) == king {
			return true
		}
	}

	queen := NewPiece(by, Queen)
	if g.rayHits(pos, rookDirs[:], NewPiece(by, Rook), queen) {
		return true
	}
	return g.rayHits(pos, bishopDirs[:], NewPiece(by, Bishop), queen)
}

// rayHits reports whether the first piece met along any of dirs is a or b.
func (g *Game) rayHits(pos Position, dirs [][2]int, a, b Piece) bool {
	for _, d := range dirs {
		for sq := pos.offset(d[0], d[1]); sq.Valid(); sq = sq.offset(d[0], d[1]) {
			p := g.board.At(sq)
			if p == NoPiece {
				continue
			}
			if p == a || p == b {
				return true
			}
			break
		}
	}
	return false
}

// ==========================
// Legal moves
// ==========================

// leavesKingInCheck simulates the move with full piece relocation (en passant
// removal and castling rook included) and reports whether the mover's king is
// attacked afterwards.
func (g *Game) leavesKingInCheck(from, to Position, p Piece) bool {
	pl := g.place(Move{From: from, To: to})
	inCheck := g.InCheck(p.Color())
	g.unplace(pl)
	return inCheck
}

// ValidMoves returns the legal destinations of the piece on pos. It is empty when
// the square is empty or holds a piece of the side not to move.
func (g *Game) ValidMoves(pos Position) []Position {
	p := g.board.At(pos)
	if !p.Is(g.turn) {
		return nil
	}
	candidates := g.pseudoLegal(pos, p)
	legal := candidates[:0]
	for _, to := range candidates {
		if !g.leavesKingInCheck(pos, to, p) {
			legal = append(legal, to)
		}
	}
	return legal
}

func (g *Game) hasValidMove(pos Position) bool {
	p := g.board.At(pos)
	if !p.Is(g.turn) {
		return false
	}
	for _, to := range g.pseudoLegal(pos, p) {
		if !g.leavesKingInCheck(pos, to, p) {
			return true
		}
	}
	return false
}

// HasLegalMoves reports whether the side to move has any legal moves.
func (g *Game) HasLegalMoves() bool {
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			if g.hasValidMove(Pos(row, col)) {
				return true
			}
		}
	}
	return false
}

// LegalMoves returns every legal move of the side to move, scanning squares
// from row 0. A pawn reaching the far rank yields one move per promotion piece,
// queen first.
func (g *Game) LegalMoves() []Move {
	moves := make([]Move, 0, 48)
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			from := Pos(row, col)
			p := g.board.At(from)
			if !p.Is(g.turn) {
				continue
			}
			for _, to := range g.ValidMoves(from) {
				if p.Type() == Pawn && (to.Row == 0 || to.Row == 7) {
					for _, pt := range promotionTypes {
						moves = append(moves, Move{From: from, To: to, Promotion: pt})
					}
					continue
				}
				moves = append(moves, Move{From: from, To: to})
			}
		}
	}
	return moves
}
