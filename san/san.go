// Package san converts between rules moves and Standard Algebraic Notation
// ("Nf3", "exd5", "O-O", "e8=Q+") using github.com/notnil/chess.
package san

import (
	"errors"
	"fmt"

	"github.com/notnil/chess"

	"minimax-chess/rules"
)

var ErrNoPosition = errors.New("san: cannot load position")

var toChessPromo = map[rules.PieceType]chess.PieceType{
	rules.NoPieceType: chess.NoPieceType,
	rules.Queen:       chess.Queen,
	rules.Rook:        chess.Rook,
	rules.Bishop:      chess.Bishop,
	rules.Knight:      chess.Knight,
}

var fromChessPromo = map[chess.PieceType]rules.PieceType{
	chess.NoPieceType: rules.NoPieceType,
	chess.Queen:       rules.Queen,
	chess.Rook:        rules.Rook,
	chess.Bishop:      rules.Bishop,
	chess.Knight:      rules.Knight,
}

func position(g *rules.Game) (*chess.Position, error) {
	opt, err := chess.FEN(g.FEN())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoPosition, err)
	}
	return chess.NewGame(opt).Position(), nil
}

// square maps a notnil square (a1 = 0) onto a board position (row 0 = rank 8).
func square(sq chess.Square) rules.Position {
	return rules.Pos(7-int(sq.Rank()), int(sq.File()))
}

func fromChess(m *chess.Move) rules.Move {
	return rules.Move{
		From:      square(m.S1()),
		To:        square(m.S2()),
		Promotion: fromChessPromo[m.Promo()],
	}
}

// Encode returns the SAN of m in the position of g. A pawn move to the far
// rank without a promotion piece is encoded as a queen promotion.
func Encode(g *rules.Game, m rules.Move) (string, error) {
	pos, err := position(g)
	if err != nil {
		return "", err
	}
	if g.PieceAt(m.From).Type() == rules.Pawn && (m.To.Row == 0 || m.To.Row == 7) && m.Promotion == rules.NoPieceType {
		m.Promotion = rules.Queen
	}
	want, ok := toChessPromo[m.Promotion]
	if !ok {
		return "", fmt.Errorf("%w: %s", rules.ErrInvalidMove, m)
	}
	for _, cm := range pos.ValidMoves() {
		if square(cm.S1()) == m.From && square(cm.S2()) == m.To && cm.Promo() == want {
			return chess.AlgebraicNotation{}.Encode(pos, cm), nil
		}
	}
	return "", fmt.Errorf("%w: %s", rules.ErrInvalidMove, m)
}

// Decode parses s as SAN in the position of g. The returned move has not been played.
func Decode(g *rules.Game, s string) (rules.Move, error) {
	pos, err := position(g)
	if err != nil {
		return rules.Move{}, err
	}
	cm, err := chess.AlgebraicNotation{}.Decode(pos, s)
	if err != nil {
		return rules.Move{}, fmt.Errorf("%w: %q: %v", rules.ErrInvalidMove, s, err)
	}
	return fromChess(cm), nil
}

// ParseMove accepts either coordinate notation ("e2e4", "e7e8q") or SAN.
func ParseMove(g *rules.Game, s string) (rules.Move, error) {
	if m, err := rules.ParseMove(s); err == nil && g.PieceAt(m.From).Is(g.Turn()) {
		return m, nil
	}
	return Decode(g, s)
}

// History renders the moves of g in SAN by replaying them from start, which
// must be the position g began in.
func History(start *rules.Game, g *rules.Game) ([]string, error) {
	replay := start.Clone()
	records := g.History()
	out := make([]string, 0, len(records))
	for _, rec := range records {
		s, err := Encode(replay, rec.Move)
		if err != nil {
			return out, err
		}
		if _, ok := replay.PushMove(rec.Move); !ok {
			return out, fmt.Errorf("%w: %s", rules.ErrInvalidMove, rec.Move)
		}
		out = append(out, s)
	}
	return out, nil
}
