package bench

import (
	"testing"

	"minimax-chess/rules"
)

func benchLegalMoves(b *testing.B, fen string) {
	g, err := rules.ParseFEN(fen)
	if err != nil {
		b.Fatalf("ParseFEN: %v", err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.LegalMoves()
	}
}

func BenchmarkLegalMoves_Initial(b *testing.B) {
	benchLegalMoves(b, rules.FENStartPos)
}

func BenchmarkLegalMoves_Kiwipete(b *testing.B) {
	fen := "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	benchLegalMoves(b, fen)
}

func BenchmarkLegalMoves_Pos6(b *testing.B) {
	fen := "r4rk1/1pp1qppp/p1np1n2/2b1p3/2B1P3/2NP1N2/PPP1QPPP/R4RK1 w - - 0 10"
	benchLegalMoves(b, fen)
}

func BenchmarkValidMoves_EP(b *testing.B) {
	g, err := rules.ParseFEN("k7/8/8/3pP3/8/8/8/7K w - d6 0 2")
	if err != nil {
		b.Fatalf("ParseFEN: %v", err)
	}
	e5 := rules.Pos(3, 4)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.ValidMoves(e5)
	}
}

func BenchmarkIsSquareAttacked_Kiwipete(b *testing.B) {
	g, err := rules.ParseFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	if err != nil {
		b.Fatalf("ParseFEN: %v", err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for row := 0; row < 8; row++ {
			for col := 0; col < 8; col++ {
				_ = g.IsSquareAttacked(rules.Pos(row, col), rules.White)
			}
		}
	}
}

func BenchmarkPushPop_AllMoves_Initial(b *testing.B) {
	g := rules.NewGame()
	moves := g.LegalMoves()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, m := range moves {
			st, ok := g.PushMove(m)
			if !ok {
				b.Fatalf("illegal move in cached list: %v", m)
			}
			g.PopMove(st)
		}
	}
}
