package rules

import (
	"strings"

	"golang.org/x/exp/slices"
)

// Board is the 8x8 square array, indexed [row][col].
type Board [8][8]Piece

// At returns the piece on a square, or NoPiece when the square is empty or off the board.
func (b *Board) At(pos Position) Piece {
	if !pos.Valid() {
		return NoPiece
	}
	return b[pos.Row][pos.Col]
}

// Set places p on a square. Off-board positions are ignored.
func (b *Board) Set(pos Position, p Piece) {
	if !pos.Valid() {
		return
	}
	b[pos.Row][pos.Col] = p
}

// String draws the board from White's side with rank and file labels.
func (b Board) String() string {
	var sb strings.Builder
	for row := 0; row < 8; row++ {
		sb.WriteByte('8' - byte(row))
		sb.WriteByte(' ')
		for col := 0; col < 8; col++ {
			p := b[row][col]
			if p == NoPiece {
				sb.WriteByte('.')
			} else {
				sb.WriteRune(charFromPiece(p))
			}
			if col < 7 {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  a b c d e f g h\n")
	return sb.String()
}

// MoveRecord is one entry of the move history.
type MoveRecord struct {
	Move       Move
	Notation   string
	MoveNumber int
	Color      Color
}

// Status classifies the position for the side to move.
type Status uint8

const (
	Ongoing Status = iota
	Checkmate
	Stalemate
)

func (s Status) String() string {
	switch s {
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	default:
		return "ongoing"
	}
}

// Game holds the board and every piece of state needed to judge legality.
// It is mutated in place by move application and is not safe for concurrent use.
type Game struct {
	board Board

	// Side to move
	turn Color

	history []MoveRecord

	// Captured piece types, indexed by the color of the captured piece
	captured [2][]PieceType

	// Square a pawn may capture onto this ply, or NoPosition
	enPassant Position

	castling CastlingRights

	// Half-moves since the last capture or pawn move. Informational only.
	halfMoveClock int

	// Starts at 1, incremented after Black's move
	fullMoveNumber int

	// Cached king squares (NoPosition when a side has no king)
	kings [2]Position
}

// NewGame returns a game set up in the standard initial position.
func NewGame() *Game {
	g := &Game{
		turn:           White,
		enPassant:      NoPosition,
		castling:       AllCastling,
		fullMoveNumber: 1,
	}
	back := [8]PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for col := 0; col < 8; col++ {
		g.board[0][col] = NewPiece(Black, back[col])
		g.board[1][col] = BlackPawn
		g.board[6][col] = WhitePawn
		g.board[7][col] = NewPiece(White, back[col])
	}
	g.locateKings()
	return g
}

// PieceAt returns the piece on a square. Off-board positions hold NoPiece.
func (g *Game) PieceAt(pos Position) Piece { return g.board.At(pos) }

// SetPiece sets a piece on a square, replacing any existing piece. NoPiece clears
// the square and off-board positions are ignored.
func (g *Game) SetPiece(pos Position, p Piece) {
	if !pos.Valid() {
		return
	}
	prev := g.board.At(pos)
	g.board.Set(pos, p)
	if prev.Type() == King || p.Type() == King {
		g.locateKings()
	}
}

// Board returns a copy of the board.
func (g *Game) Board() Board { return g.board }

// Turn reports which side is to play.
func (g *Game) Turn() Color { return g.turn }

// EnPassantTarget returns the current en passant square or NoPosition.
func (g *Game) EnPassantTarget() Position { return g.enPassant }

// CastlingRights returns the rights still held by both sides.
func (g *Game) CastlingRights() CastlingRights { return g.castling }

// HalfMoveClock accessor for consumers that want read-only access.
func (g *Game) HalfMoveClock() int { return g.halfMoveClock }

// FullMoveNumber returns the full move counter (incremented after Black's move).
func (g *Game) FullMoveNumber() int { return g.fullMoveNumber }

// MoveCount returns how many moves have been applied since the game started.
func (g *Game) MoveCount() int { return len(g.history) }

// History returns a copy of the move history.
func (g *Game) History() []MoveRecord { return slices.Clone(g.history) }

// Captured returns the types captured from side c, in capture order.
func (g *Game) Captured(c Color) []PieceType { return slices.Clone(g.captured[c]) }

// KingPosition returns the square of c's king, or NoPosition.
func (g *Game) KingPosition(c Color) Position { return g.kings[c] }

func (g *Game) locateKings() {
	g.kings = [2]Position{NoPosition, NoPosition}
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			p := g.board[row][col]
			if p.Type() == King && g.kings[p.Color()] == NoPosition {
				g.kings[p.Color()] = Pos(row, col)
			}
		}
	}
}

// InCheck reports whether c's king is attacked. A side without a king is never in check.
func (g *Game) InCheck(c Color) bool {
	ks := g.kings[c]
	if ks == NoPosition {
		return false
	}
	return g.IsSquareAttacked(ks, c)
}

// Status reports checkmate, stalemate or an ongoing game for the side to move.
func (g *Game) Status() Status {
	if g.HasLegalMoves() {
		return Ongoing
	}
	if g.InCheck(g.turn) {
		return Checkmate
	}
	return Stalemate
}

// IsCheckmate reports whether the side to move is checkmated.
func (g *Game) IsCheckmate() bool {
	return g.InCheck(g.turn) && !g.HasLegalMoves()
}

// IsStalemate reports whether the side to move is stalemated.
func (g *Game) IsStalemate() bool {
	return !g.InCheck(g.turn) && !g.HasLegalMoves()
}

// Snapshot is a read-only copy of the game for rendering and status display.
type Snapshot struct {
	Board          Board
	Turn           Color
	IsCheck        bool
	IsCheckmate    bool
	IsStalemate    bool
	MoveHistory    []MoveRecord
	Captured       [2][]PieceType
	EnPassant      Position
	Castling       CastlingRights
	HalfMoveClock  int
	FullMoveNumber int
}

// State returns a snapshot of the game. Later moves do not affect it.
func (g *Game) State() Snapshot {
	status := g.Status()
	return Snapshot{
		Board:          g.board,
		Turn:           g.turn,
		IsCheck:        g.InCheck(g.turn),
		IsCheckmate:    status == Checkmate,
		IsStalemate:    status == Stalemate,
		MoveHistory:    slices.Clone(g.history),
		Captured:       [2][]PieceType{slices.Clone(g.captured[White]), slices.Clone(g.captured[Black])},
		EnPassant:      g.enPassant,
		Castling:       g.castling,
		HalfMoveClock:  g.halfMoveClock,
		FullMoveNumber: g.fullMoveNumber,
	}
}

// Clone returns an independent deep copy of the game.
func (g *Game) Clone() *Game {
	c := *g
	c.history = slices.Clone(g.history)
	c.captured = [2][]PieceType{slices.Clone(g.captured[White]), slices.Clone(g.captured[Black])}
	return &c
}

// Validate checks internal consistency: cached king squares match the board and
// the en passant target, if any, sits on the third or sixth rank.
// Returns true if consistent, false otherwise.
func (g *Game) Validate() bool {
	kings := g.kings
	g.locateKings()
	ok := kings == g.kings
	g.kings = kings
	if !ok {
		return false
	}
	if g.enPassant != NoPosition {
		if !g.enPassant.Valid() || (g.enPassant.Row != 2 && g.enPassant.Row != 5) {
			return false
		}
	}
	return g.fullMoveNumber >= 1
}
