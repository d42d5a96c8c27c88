package engine

import (
	"testing"

	"minimax-chess/rules"
)

func move(t *testing.T, s string) rules.Move {
	t.Helper()
	m, err := rules.ParseMove(s)
	if err != nil {
		t.Fatalf("parse move: %v", err)
	}
	return m
}

func TestScoreMovesPrefersPromotionsThenCaptures(t *testing.T) {
	// b7 can capture the a8 rook with promotion or push to b8; Qd4 can take d5 or h8.
	g, err := rules.ParseFEN("r3k2b/1P6/8/3p4/3Q4/8/8/4K3 w - - 0 1")
	if err != nil {
		t.Fatalf("parse FEN: %v", err)
	}
	s := NewSearcher(WithDepth(2))
	s.killers = newKillerTable(2)
	quiet := move(t, "e1d1")
	s.killers.insert(quiet, 1)

	list := s.scoreMoves(g, []rules.Move{
		quiet,
		move(t, "e1f1"),
		move(t, "d4d5"),
		move(t, "d4h8"),
		move(t, "b7b8q"),
		move(t, "b7a8n"),
	}, 1)
	for i := range list {
		orderNextMove(i, list)
	}
	want := []string{"b7b8q", "b7a8n", "d4h8", "d4d5", "e1d1", "e1f1"}
	for i, w := range want {
		if list[i].move.String() != w {
			got := make([]string, len(list))
			for j := range list {
				got[j] = list[j].move.String()
			}
			t.Fatalf("order: got %v want %v", got, want)
		}
	}
}

func TestEnPassantScoredAsCapture(t *testing.T) {
	g, err := rules.ParseFEN("4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1")
	if err != nil {
		t.Fatalf("parse FEN: %v", err)
	}
	victim, ok := isCapture(g, move(t, "e5d6"))
	if !ok || victim != rules.Pawn {
		t.Fatalf("en passant: victim %v capture %v", victim, ok)
	}
	if _, ok := isCapture(g, move(t, "e5e6")); ok {
		t.Fatalf("push reported as capture")
	}
}

func TestKillerTable(t *testing.T) {
	k := newKillerTable(3)
	a, b, c := move(t, "a2a3"), move(t, "b2b3"), move(t, "c2c3")
	k.insert(a, 2)
	k.insert(b, 2)
	k.insert(b, 2)
	if k.rank(b, 2) != 2 || k.rank(a, 2) != 1 || k.rank(c, 2) != 0 {
		t.Fatalf("ranks: %d %d %d", k.rank(b, 2), k.rank(a, 2), k.rank(c, 2))
	}
	k.insert(c, 2)
	if k.rank(a, 2) != 0 {
		t.Fatalf("oldest killer not evicted")
	}
	k.insert(a, 9)
	if k.rank(a, 9) != 0 || k.rank(a, -1) != 0 {
		t.Fatalf("out of range plies must be ignored")
	}
}

func TestSearchRecordsCutoffs(t *testing.T) {
	g, err := rules.ParseFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	if err != nil {
		t.Fatalf("parse FEN: %v", err)
	}
	res := NewSearcher(WithDepth(3), WithSeed(5)).Search(g)
	if res.Cuts.BetaCutoffs == 0 {
		t.Fatalf("expected beta cutoffs at depth 3")
	}
	if res.Cuts.CaptureCuts+res.Cuts.KillerCutoffs > res.Cuts.BetaCutoffs {
		t.Fatalf("cut breakdown exceeds total: %+v", res.Cuts)
	}
	if len(res.Cuts.Lines()) != 4 {
		t.Fatalf("unexpected stats lines: %v", res.Cuts.Lines())
	}
}
