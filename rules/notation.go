package rules

import (
	"fmt"
	"strings"
)

// String returns the square name, e.g. "e4". Row 0 is rank 8.
func (p Position) String() string {
	if !p.Valid() {
		return "-"
	}
	return string([]byte{'a' + byte(p.Col), '8' - byte(p.Row)})
}

// ParseSquare converts a square name such as "e4" into a Position.
func ParseSquare(s string) (Position, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) != 2 || s[0] < 'a' || s[0] > 'h' || s[1] < '1' || s[1] > '8' {
		return NoPosition, fmt.Errorf("%w: %q", ErrInvalidSquare, s)
	}
	return Pos(int('8'-s[1]), int(s[0]-'a')), nil
}

// String produces the coordinate form of the move (e.g. "e2e4", "e7e8q").
func (m Move) String() string {
	str := m.From.String() + m.To.String()
	if m.Promotion.IsPromotion() {
		str += strings.ToLower(m.Promotion.Letter())
	}
	return str
}

// ParseMove converts a coordinate string (e2e4, e7e8q) into a Move.
func ParseMove(movestr string) (Move, error) {
	movestr = strings.TrimSpace(strings.ToLower(movestr))
	if len(movestr) < 4 || len(movestr) > 5 {
		return Move{}, fmt.Errorf("%w: %q has invalid length", ErrInvalidMove, movestr)
	}
	from, err := ParseSquare(movestr[0:2])
	if err != nil {
		return Move{}, fmt.Errorf("%w: %v", ErrInvalidMove, err)
	}
	to, err := ParseSquare(movestr[2:4])
	if err != nil {
		return Move{}, fmt.Errorf("%w: %v", ErrInvalidMove, err)
	}
	m := Move{From: from, To: to}
	if len(movestr) == 5 {
		switch movestr[4] {
		case 'q':
			m.Promotion = Queen
		case 'r':
			m.Promotion = Rook
		case 'b':
			m.Promotion = Bishop
		case 'n':
			m.Promotion = Knight
		default:
			return Move{}, fmt.Errorf("%w: unknown promotion piece %q", ErrInvalidMove, movestr[4])
		}
	}
	return m, nil
}

// moveNotation renders the informational history form <PieceLetter><from>-<to>,
// e.g. "Ng1-f3" or "e2-e4".
func moveNotation(m Move, p Piece) string {
	return p.Type().Letter() + m.From.String() + "-" + m.To.String()
}
