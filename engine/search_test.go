package engine_test

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"minimax-chess/engine"
	"minimax-chess/rules"
)

func TestSearchFindsMateInOne(t *testing.T) {
	// Qxg7 and Qe8 both mate.
	g := mustFEN(t, "7k/6pp/6Q1/8/8/2B5/8/6K1 w - - 0 1")
	res := engine.NewSearcher(engine.WithDepth(2), engine.WithSeed(3)).Search(g)
	if !res.Found {
		t.Fatalf("no move found")
	}
	if res.Score != engine.MateScore {
		t.Fatalf("score: got %d want %d", res.Score, engine.MateScore)
	}
	if !g.MakeMove(res.Move.From, res.Move.To, res.Move.Promotion) {
		t.Fatalf("search returned illegal move %s", res.Move)
	}
	if !g.IsCheckmate() {
		t.Fatalf("%s does not mate", res.Move)
	}
}

func TestSearchCapturesHangingQueen(t *testing.T) {
	g := mustFEN(t, "4k3/8/8/3q4/4P3/8/8/4K3 w - - 0 1")
	for depth := 1; depth <= 3; depth++ {
		m, ok := engine.NewSearcher(engine.WithDepth(depth), engine.WithSeed(1)).SelectMove(g)
		if !ok || m.String() != "e4d5" {
			t.Fatalf("depth %d: got %s want e4d5", depth, m)
		}
	}
}

func TestAlphaBetaMatchesMinimax(t *testing.T) {
	fens := []string{
		rules.FENStartPos,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"7k/6pp/6Q1/8/8/2B5/8/6K1 w - - 0 1",
	}
	for _, fen := range fens {
		for depth := 1; depth <= 2; depth++ {
			g := mustFEN(t, fen)
			want := engine.Minimax(g, depth)
			res := engine.NewSearcher(engine.WithDepth(depth), engine.WithoutShuffle()).Search(g)
			if res.Score != want {
				t.Fatalf("%s depth %d: alpha-beta %d, minimax %d", fen, depth, res.Score, want)
			}
		}
	}

	g := mustFEN(t, "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1")
	if got, want := engine.NewSearcher(engine.WithDepth(3), engine.WithSeed(9)).Search(g).Score, engine.Minimax(g, 3); got != want {
		t.Fatalf("depth 3 shuffled: alpha-beta %d, minimax %d", got, want)
	}
}

func TestSearchLeavesGameUnchanged(t *testing.T) {
	g := mustFEN(t, "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	before := g.FEN()
	engine.NewSearcher(engine.WithDepth(2)).Search(g)
	if g.FEN() != before || g.MoveCount() != 0 || len(g.Captured(rules.Black)) != 0 {
		t.Fatalf("search modified the game: %s", g.FEN())
	}
}

func TestSameSeedSameMove(t *testing.T) {
	a, okA := engine.NewSearcher(engine.WithDepth(2), engine.WithSeed(42)).SelectMove(rules.NewGame())
	b, okB := engine.NewSearcher(engine.WithDepth(2), engine.WithSeed(42)).SelectMove(rules.NewGame())
	if !okA || !okB || a != b {
		t.Fatalf("seeded searches differ: %s vs %s", a, b)
	}
}

func TestNoMoveWhenMatedOrStalemated(t *testing.T) {
	for _, fen := range []string{
		"rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3",
		"7k/5Q2/6K1/8/8/8/8/8 b - - 0 1",
	} {
		g := mustFEN(t, fen)
		if m, ok := engine.SelectMove(g, 3); ok {
			t.Fatalf("%s: expected no move, got %s", fen, m)
		}
		res := engine.NewSearcher().Search(g)
		if res.Found || res.Score != engine.Evaluate(g) {
			t.Fatalf("%s: result %+v", fen, res)
		}
	}
}

func TestSelectMoveReturnsLegalMove(t *testing.T) {
	g := rules.NewGame()
	m, ok := engine.SelectMove(g, 2)
	if !ok {
		t.Fatalf("no move from the start position")
	}
	if _, ok := g.PushMove(m); !ok {
		t.Fatalf("SelectMove returned illegal %s", m)
	}
}

func TestSearcherOptions(t *testing.T) {
	s := engine.NewSearcher()
	if s.Depth() != engine.Medium.Depth() {
		t.Fatalf("default depth: got %d want %d", s.Depth(), engine.Medium.Depth())
	}
	if d := engine.NewSearcher(engine.WithDifficulty(engine.Hard)).Depth(); d != 4 {
		t.Fatalf("hard depth: got %d", d)
	}
	if d := engine.NewSearcher(engine.WithDepth(0)).Depth(); d != 1 {
		t.Fatalf("depth below one should clamp to 1, got %d", d)
	}
}

func TestSearchLogsResult(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	s := engine.NewSearcher(engine.WithDepth(1), engine.WithLogger(zap.New(core)))
	res := s.Search(rules.NewGame())
	if res.Nodes != 20 {
		t.Fatalf("depth 1 nodes: got %d want 20", res.Nodes)
	}
	entries := logs.FilterMessage("search complete").All()
	if len(entries) != 1 {
		t.Fatalf("expected one log entry, got %d", len(entries))
	}
	if got := entries[0].ContextMap()["nodes"]; got != uint64(20) {
		t.Fatalf("logged nodes: %v", got)
	}
}

func BenchmarkSearchStartDepth3(b *testing.B) {
	for i := 0; i < b.N; i++ {
		engine.NewSearcher(engine.WithDepth(3), engine.WithSeed(1)).Search(rules.NewGame())
	}
}
