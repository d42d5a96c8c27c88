package engine

import (
	"time"

	"go.uber.org/zap"
	"golang.org/x/exp/rand"

	"minimax-chess/rules"
)

// Result describes the outcome of one root search.
type Result struct {
	Move    rules.Move
	Score   int // from the point of view of the side to move at the root
	Nodes   uint64
	Depth   int
	Elapsed time.Duration
	Found   bool // false only when the side to move has no legal move
	Cuts    CutStatistics
}

// Searcher runs fixed-depth negamax with alpha-beta pruning.
//
// A search applies and reverts moves on the caller's Game in place, so the game
// must not be read or changed elsewhere while Search runs, and a Searcher must
// not be used from several goroutines at once.
type Searcher struct {
	depth   int
	shuffle bool
	rng     *rand.Rand
	logger  *zap.Logger
	nodes   uint64
	killers killerTable
	cuts    CutStatistics
}

// Option configures a Searcher.
type Option func(*Searcher)

// WithDepth sets the ply budget. Values below 1 are raised to 1.
func WithDepth(depth int) Option {
	return func(s *Searcher) { s.SetDepth(depth) }
}

// WithDifficulty sets the ply budget from a preset.
func WithDifficulty(d Difficulty) Option {
	return func(s *Searcher) { s.SetDepth(d.Depth()) }
}

// WithSeed makes the root move shuffle reproducible.
func WithSeed(seed uint64) Option {
	return func(s *Searcher) { s.rng = rand.New(rand.NewSource(seed)) }
}

// WithoutShuffle searches root moves in generation order.
func WithoutShuffle() Option {
	return func(s *Searcher) { s.shuffle = false }
}

// WithLogger sets the logger used for per-search debug entries.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Searcher) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewSearcher returns a Searcher at Medium depth with a time-seeded shuffle.
func NewSearcher(opts ...Option) *Searcher {
	s := &Searcher{
		depth:   Medium.Depth(),
		shuffle: true,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	return s
}

// Depth returns the ply budget.
func (s *Searcher) Depth() int { return s.depth }

// SetDepth changes the ply budget. Values below 1 are raised to 1.
func (s *Searcher) SetDepth(depth int) {
	if depth < 1 {
		depth = 1
	}
	s.depth = depth
}

// SetSeed reseeds the root move shuffle.
func (s *Searcher) SetSeed(seed uint64) { s.rng = rand.New(rand.NewSource(seed)) }

// SelectMove returns the move chosen for the side to move, or false when it has none.
func SelectMove(g *rules.Game, depth int) (rules.Move, bool) {
	return NewSearcher(WithDepth(depth)).SelectMove(g)
}

// SelectMove returns the best move found for the side to move, or false when it has none.
func (s *Searcher) SelectMove(g *rules.Game) (rules.Move, bool) {
	res := s.Search(g)
	return res.Move, res.Found
}

// Search explores every root move to the configured depth and returns the
// highest scoring one. Ties keep the first move in (shuffled) root order.
func (s *Searcher) Search(g *rules.Game) Result {
	start := time.Now()
	s.nodes = 0
	s.cuts = CutStatistics{}
	s.killers = newKillerTable(s.depth)
	res := Result{Depth: s.depth, Score: -Infinity}

	moves := s.rootMoves(g)
	if len(moves) == 0 {
		res.Score = Evaluate(g)
		res.Elapsed = time.Since(start)
		return res
	}

	alpha, beta := -Infinity, Infinity
	for _, m := range moves {
		st := g.PushLegal(m)
		score := -s.negamax(g, s.depth-1, 1, -beta, -alpha)
		g.PopMove(st)

		if score > res.Score {
			res.Score = score
			res.Move = m
			res.Found = true
		}
		if score > alpha {
			alpha = score
		}
	}

	res.Nodes = s.nodes
	res.Cuts = s.cuts
	res.Elapsed = time.Since(start)
	s.logger.Debug("search complete",
		zap.Int("depth", res.Depth),
		zap.String("move", res.Move.String()),
		zap.Int("score", res.Score),
		zap.Uint64("nodes", res.Nodes),
		zap.Uint64("beta_cutoffs", res.Cuts.BetaCutoffs),
		zap.Duration("elapsed", res.Elapsed),
	)
	return res
}

// rootMoves enumerates the legal moves and shuffles them once, so equally
// scored moves are not always resolved the same way.
func (s *Searcher) rootMoves(g *rules.Game) []rules.Move {
	moves := g.LegalMoves()
	if s.shuffle {
		s.rng.Shuffle(len(moves), func(i, j int) { moves[i], moves[j] = moves[j], moves[i] })
	}
	return moves
}

// negamax returns the score of the position for the side to move. Each level
// negates its children, so maximizing and minimizing nodes share one routine:
// alpha rises with the best child and siblings are cut once alpha >= beta.
// Interior moves are ordered first; ordering changes node counts, not scores.
func (s *Searcher) negamax(g *rules.Game, depth, ply int, alpha, beta int) int {
	s.nodes++
	if depth <= 0 {
		return Evaluate(g)
	}

	moves := g.LegalMoves()
	if len(moves) == 0 {
		return Evaluate(g)
	}

	list := s.scoreMoves(g, moves, ply)
	best := -Infinity
	for i := range list {
		orderNextMove(i, list)
		m := list[i].move
		st := g.PushLegal(m)
		score := -s.negamax(g, depth-1, ply+1, -beta, -alpha)
		g.PopMove(st)

		if score > best {
			best = score
		}
		if best > alpha {
			alpha = best
		}
		if alpha >= beta {
			s.cuts.BetaCutoffs++
			switch {
			case list[i].score >= captureOffset:
				s.cuts.CaptureCuts++
			case list[i].score >= killerOffset:
				s.cuts.KillerCutoffs++
			}
			if st.Captured() == rules.NoPiece && !m.Promotion.IsPromotion() {
				s.killers.insert(m, ply)
			}
			break
		}
	}
	return best
}

// Minimax is the unpruned search: the score of the position for the side to
// move after exploring every line to depth plies. It returns the same value as
// an alpha-beta search of the same depth and exists to check that equivalence.
func Minimax(g *rules.Game, depth int) int {
	if depth <= 0 {
		return Evaluate(g)
	}
	moves := g.LegalMoves()
	if len(moves) == 0 {
		return Evaluate(g)
	}
	best := -Infinity
	for _, m := range moves {
		st := g.PushLegal(m)
		score := -Minimax(g, depth-1)
		g.PopMove(st)
		if score > best {
			best = score
		}
	}
	return best
}
