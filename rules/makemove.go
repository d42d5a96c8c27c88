package rules

// placement records the squares a move touched so the pieces can be put back.
type placement struct {
	from, to   Position
	moved      Piece
	captured   Piece
	capturedAt Position
	rookFrom   Position // for castling undo
	rookTo     Position // for castling undo
}

// MoveState holds everything needed to undo a move exactly.
type MoveState struct {
	move          Move
	placed        placement
	prevTurn      Color
	prevCastling  CastlingRights
	prevEnPassant Position
	prevHalfmove  int
	prevFullmove  int
	historyLen    int
}

// Move returns the move the state was recorded for.
func (st MoveState) Move() Move { return st.move }

// Captured returns the piece removed by the move (en passant included), or NoPiece.
func (st MoveState) Captured() Piece { return st.placed.captured }

// place relocates the pieces for m: the mover, an en passant victim behind the
// destination, the rook of a castling move, and the promoted piece. It does not
// touch turn, rights or history.
func (g *Game) place(m Move) placement {
	from, to := m.From, m.To
	moved := g.board.At(from)
	pl := placement{
		from:       from,
		to:         to,
		moved:      moved,
		captured:   g.board.At(to),
		capturedAt: to,
		rookFrom:   NoPosition,
		rookTo:     NoPosition,
	}
	c := moved.Color()

	switch moved.Type() {
	case Pawn:
		// Captured pawn is behind 'to'
		if to == g.enPassant && to.Col != from.Col && pl.captured == NoPiece {
			pl.capturedAt = Pos(from.Row, to.Col)
			pl.captured = g.board.At(pl.capturedAt)
			g.board.Set(pl.capturedAt, NoPiece)
		}
	case King:
		if abs(to.Col-from.Col) == 2 {
			if to.Col > from.Col {
				pl.rookFrom, pl.rookTo = Pos(from.Row, 7), Pos(from.Row, 5)
			} else {
				pl.rookFrom, pl.rookTo = Pos(from.Row, 0), Pos(from.Row, 3)
			}
			g.board.Set(pl.rookTo, g.board.At(pl.rookFrom))
			g.board.Set(pl.rookFrom, NoPiece)
		}
		g.kings[c] = to
	}

	g.board.Set(from, NoPiece)
	g.board.Set(to, moved)
	if moved.Type() == Pawn && (to.Row == 0 || to.Row == 7) {
		promo := m.Promotion
		if !promo.IsPromotion() {
			promo = Queen
		}
		g.board.Set(to, NewPiece(c, promo))
	}
	return pl
}

// unplace reverses place.
func (g *Game) unplace(pl placement) {
	g.board.Set(pl.from, pl.moved)
	g.board.Set(pl.to, NoPiece)
	g.board.Set(pl.capturedAt, pl.captured)
	if pl.rookFrom != NoPosition {
		g.board.Set(pl.rookFrom, g.board.At(pl.rookTo))
		g.board.Set(pl.rookTo, NoPiece)
	}
	if pl.moved.Type() == King {
		g.kings[pl.moved.Color()] = pl.from
	}
}

// apply performs the full move: pieces, captures, en passant target, castling
// rights, clocks, history and turn. The move is assumed legal.
func (g *Game) apply(m Move) MoveState {
	mover := g.board.At(m.From)
	if mover.Type() != Pawn || (m.To.Row != 0 && m.To.Row != 7) {
		m.Promotion = NoPieceType
	} else if !m.Promotion.IsPromotion() {
		m.Promotion = Queen
	}

	st := MoveState{
		move:          m,
		prevTurn:      g.turn,
		prevCastling:  g.castling,
		prevEnPassant: g.enPassant,
		prevHalfmove:  g.halfMoveClock,
		prevFullmove:  g.fullMoveNumber,
		historyLen:    len(g.history),
	}

	notation := moveNotation(m, mover)
	st.placed = g.place(m)
	pl := st.placed

	if pl.captured != NoPiece {
		cc := pl.captured.Color()
		g.captured[cc] = append(g.captured[cc], pl.captured.Type())
	}

	// Set en passant square if double pawn push
	g.enPassant = NoPosition
	if mover.Type() == Pawn && abs(m.To.Row-m.From.Row) == 2 {
		g.enPassant = Pos((m.From.Row+m.To.Row)/2, m.From.Col)
	}

	// Update castling rights
	g.castling &^= rightsLostAt(m.From, mover)
	if pl.captured.Type() == Rook {
		g.castling &^= rightsLostAt(pl.capturedAt, pl.captured)
	}

	// Halfmove clock
	if mover.Type() == Pawn || pl.captured != NoPiece {
		g.halfMoveClock = 0
	} else {
		g.halfMoveClock++
	}

	g.history = append(g.history, MoveRecord{
		Move:       m,
		Notation:   notation,
		MoveNumber: g.fullMoveNumber,
		Color:      g.turn,
	})

	g.turn = g.turn.Other()
	if g.turn == White {
		g.fullMoveNumber++
	}
	return st
}

// rightsLostAt returns the castling rights revoked when p leaves (or is captured on) sq.
func rightsLostAt(sq Position, p Piece) CastlingRights {
	c := p.Color()
	switch p.Type() {
	case King:
		return castlingFlag(c, true) | castlingFlag(c, false)
	case Rook:
		if sq.Row != backRow(c) {
			return 0
		}
		switch sq.Col {
		case 0:
			return castlingFlag(c, false)
		case 7:
			return castlingFlag(c, true)
		}
	}
	return 0
}

// undo restores the game to the state captured in st.
func (g *Game) undo(st MoveState) {
	pl := st.placed
	g.unplace(pl)
	if pl.captured != NoPiece {
		cc := pl.captured.Color()
		g.captured[cc] = g.captured[cc][:len(g.captured[cc])-1]
	}
	g.history = g.history[:st.historyLen]
	g.turn = st.prevTurn
	g.castling = st.prevCastling
	g.enPassant = st.prevEnPassant
	g.halfMoveClock = st.prevHalfmove
	g.fullMoveNumber = st.prevFullmove
}

// ==========================
// Move helpers for drivers
// ==========================

// isLegal reports whether m can be played now. A promotion piece other than
// knight, bishop, rook or queen is rejected; NoPieceType stands for queen.
func (g *Game) isLegal(m Move) bool {
	p := g.board.At(m.From)
	if !p.Is(g.turn) {
		return false
	}
	if p.Type() == Pawn && (m.To.Row == 0 || m.To.Row == 7) &&
		m.Promotion != NoPieceType && !m.Promotion.IsPromotion() {
		return false
	}
	for _, to := range g.ValidMoves(m.From) {
		if to == m.To {
			return true
		}
	}
	return false
}

// PushMove applies m if it is legal and returns the state needed to undo it.
// On failure the game is unchanged and ok is false.
func (g *Game) PushMove(m Move) (st MoveState, ok bool) {
	if !g.isLegal(m) {
		return MoveState{}, false
	}
	return g.apply(m), true
}

// PushLegal applies a move taken from LegalMoves without validating it again.
func (g *Game) PushLegal(m Move) MoveState { return g.apply(m) }

// PopMove undoes the last move pushed with PushMove or PushLegal. Moves must be
// popped in reverse order; it panics otherwise.
func (g *Game) PopMove(st MoveState) {
	if len(g.history) != st.historyLen+1 || g.history[st.historyLen].Move != st.move {
		panic("PopMove: state does not match the last applied move")
	}
	g.undo(st)
}

// Apply plays a legal move and returns an undo closure, or nil and false if
// the move is illegal.
func (g *Game) Apply(m Move) (func(), bool) {
	st, ok := g.PushMove(m)
	if !ok {
		return nil, false
	}
	return func() { g.PopMove(st) }, true
}

// MakeMove moves the piece on from to to. promotion is only used when a pawn
// reaches the far rank; NoPieceType means queen. It returns false and leaves
// the game untouched when the move is not legal.
func (g *Game) MakeMove(from, to Position, promotion PieceType) bool {
	_, ok := g.PushMove(Move{From: from, To: to, Promotion: promotion})
	return ok
}
