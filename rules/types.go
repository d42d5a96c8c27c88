package rules

// Piece constants and types for pieces and colors
type Piece uint8

const (
	NoPiece     Piece = 0
	WhitePawn   Piece = 1
	WhiteKnight Piece = 2
	WhiteBishop Piece = 3
	WhiteRook   Piece = 4
	WhiteQueen  Piece = 5
	WhiteKing   Piece = 6

	// Black pieces are encoded as (white piece type | 8) so that
	// - piece & 7 gives the type in [1..6]
	// - piece & 8 != 0 indicates Black
	BlackPawn   Piece = 1 | 8
	BlackKnight Piece = 2 | 8
	BlackBishop Piece = 3 | 8
	BlackRook   Piece = 4 | 8
	BlackQueen  Piece = 5 | 8
	BlackKing   Piece = 6 | 8
)

// PieceType is a colorless representation of a chess piece.
type PieceType uint8

const (
	NoPieceType PieceType = 0
	Pawn        PieceType = 1
	Knight      PieceType = 2
	Bishop      PieceType = 3
	Rook        PieceType = 4
	Queen       PieceType = 5
	King        PieceType = 6
)

// promotionTypes lists the pieces a pawn may become, in the order moves are generated.
var promotionTypes = [4]PieceType{Queen, Rook, Bishop, Knight}

func (t PieceType) String() string {
	switch t {
	case Pawn:
		return "pawn"
	case Knight:
		return "knight"
	case Bishop:
		return "bishop"
	case Rook:
		return "rook"
	case Queen:
		return "queen"
	case King:
		return "king"
	default:
		return "none"
	}
}

// Letter returns the upper-case notation letter of the type. Pawns have none.
func (t PieceType) Letter() string {
	switch t {
	case Knight:
		return "N"
	case Bishop:
		return "B"
	case Rook:
		return "R"
	case Queen:
		return "Q"
	case King:
		return "K"
	default:
		return ""
	}
}

// IsPromotion reports whether a pawn may promote to t.
func (t PieceType) IsPromotion() bool {
	return t == Knight || t == Bishop || t == Rook || t == Queen
}

type Color uint8

const (
	White Color = 0
	Black Color = 1
)

// Other returns the opposing side.
func (c Color) Other() Color { return 1 - c }

func (c Color) String() string {
	if c == Black {
		return "black"
	}
	return "white"
}

// NewPiece combines a side and a colorless type. NoPieceType yields NoPiece.
func NewPiece(c Color, t PieceType) Piece {
	if t == NoPieceType || t > King {
		return NoPiece
	}
	p := Piece(t)
	if c == Black {
		p |= 8
	}
	return p
}

// Type returns the colorless type of the piece (ignores side).
func (p Piece) Type() PieceType { return PieceType(p & 7) }

// Color returns the side that owns the piece. NoPiece defaults to White.
func (p Piece) Color() Color {
	if p&8 != 0 {
		return Black
	}
	return White
}

// Is reports whether p is a piece of side c.
func (p Piece) Is(c Color) bool { return p != NoPiece && p.Color() == c }

func (p Piece) String() string { return string(charFromPiece(p)) }

// Castling rights bit flags
type CastlingRights uint8

const (
	// White king-side (short) castling
	CastlingWhiteK CastlingRights = 1 << iota
	// White queen-side (long) castling
	CastlingWhiteQ
	// Black king-side castling
	CastlingBlackK
	// Black queen-side castling
	CastlingBlackQ
)

// AllCastling is the set of rights held at the start of a game.
const AllCastling = CastlingWhiteK | CastlingWhiteQ | CastlingBlackK | CastlingBlackQ

func castlingFlag(c Color, kingside bool) CastlingRights {
	switch {
	case c == White && kingside:
		return CastlingWhiteK
	case c == White:
		return CastlingWhiteQ
	case kingside:
		return CastlingBlackK
	default:
		return CastlingBlackQ
	}
}

// Kingside reports whether c may still castle short.
func (cr CastlingRights) Kingside(c Color) bool { return cr&castlingFlag(c, true) != 0 }

// Queenside reports whether c may still castle long.
func (cr CastlingRights) Queenside(c Color) bool { return cr&castlingFlag(c, false) != 0 }

// Position is a square addressed by row and column. Row 0 is Black's back
// rank (rank 8) and row 7 is White's (rank 1); column 0 is the a-file.
type Position struct {
	Row int
	Col int
}

// NoPosition marks an absent square, e.g. no en passant target.
var NoPosition = Position{Row: -1, Col: -1}

// Pos is shorthand for Position{row, col}.
func Pos(row, col int) Position { return Position{Row: row, Col: col} }

// Valid reports whether the position lies on the board.
func (p Position) Valid() bool {
	return p.Row >= 0 && p.Row < 8 && p.Col >= 0 && p.Col < 8
}

func (p Position) offset(dr, dc int) Position {
	return Position{Row: p.Row + dr, Col: p.Col + dc}
}

// Move is a request to move the piece on From to To. Promotion only matters
// when a pawn reaches the far rank; NoPieceType then means queen.
type Move struct {
	From      Position
	To        Position
	Promotion PieceType
}
