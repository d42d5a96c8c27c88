package rules_test

import (
	"errors"
	"testing"

	"minimax-chess/rules"
)

func TestFENRoundTrip(t *testing.T) {
	fens := []string{
		rules.FENStartPos,
		kiwipete,
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1",
		"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
		"rnbqkbnr/pp1ppppp/8/2p5/4P3/8/PPPP1PPP/RNBQKBNR w KQkq c6 0 2",
	}
	for _, fen := range fens {
		g := mustFEN(t, fen)
		if got := g.FEN(); got != fen {
			t.Fatalf("round trip: got %q want %q", got, fen)
		}
	}
}

func TestFENAfterMoves(t *testing.T) {
	g := rules.NewGame()
	play(t, g, "e2e4", "c7c5")
	want := "rnbqkbnr/pp1ppppp/8/2p5/4P3/8/PPPP1PPP/RNBQKBNR w KQkq c6 0 2"
	if got := g.FEN(); got != want {
		t.Fatalf("FEN after 1.e4 c5: got %q want %q", got, want)
	}
}

func TestFENOptionalCounters(t *testing.T) {
	g := mustFEN(t, "4k3/8/8/8/8/8/8/4K3 b - -")
	if g.HalfMoveClock() != 0 || g.FullMoveNumber() != 1 {
		t.Fatalf("defaults: halfmove %d fullmove %d", g.HalfMoveClock(), g.FullMoveNumber())
	}
	if g.Turn() != rules.Black {
		t.Fatalf("side to move not parsed")
	}
	if g.MoveCount() != 0 {
		t.Fatalf("history should start empty")
	}
}

func TestFENRejectsMalformed(t *testing.T) {
	bad := []string{
		"",
		"8/8/8/8/8/8/8/8 w",
		"8/8/8/8/8/8/8 w - - 0 1",
		"9/8/8/8/8/8/8/8 w - - 0 1",
		"rnbqkbnrr/8/8/8/8/8/8/8 w - - 0 1",
		"xnbqkbnr/8/8/8/8/8/8/8 w - - 0 1",
		"8/8/8/8/8/8/8/8 x - - 0 1",
		"8/8/8/8/8/8/8/8 w KX - 0 1",
		"8/8/8/8/8/8/8/8 w - z9 0 1",
		"8/8/8/8/8/8/8/8 w - - -1 1",
		"8/8/8/8/8/8/8/8 w - - 0 0",
	}
	for _, fen := range bad {
		if _, err := rules.ParseFEN(fen); !errors.Is(err, rules.ErrInvalidFEN) {
			t.Fatalf("ParseFEN(%q): got %v, want ErrInvalidFEN", fen, err)
		}
	}
}
