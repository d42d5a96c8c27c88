package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"minimax-chess/engine"
	"minimax-chess/rules"
	"minimax-chess/san"
)

func main() {
	debug := flag.Bool("debug", false, "Log search and protocol details to stderr")
	flag.Parse()

	logger := zap.NewNop()
	if *debug {
		cfg := zap.NewDevelopmentConfig()
		cfg.OutputPaths = []string{"stderr"}
		if l, err := cfg.Build(); err == nil {
			logger = l
		}
	}
	defer func() { _ = logger.Sync() }()

	uciLoop(os.Stdin, os.Stdout, logger)
}

// session is the state carried between protocol commands.
type session struct {
	out      io.Writer
	logger   *zap.Logger
	game     *rules.Game
	searcher *engine.Searcher
	gameID   string
	cutStats bool
}

func newSession(out io.Writer, logger *zap.Logger) *session {
	s := &session{out: out, logger: logger}
	s.searcher = engine.NewSearcher(engine.WithLogger(logger))
	s.newGame()
	return s
}

func (s *session) newGame() {
	s.game = rules.NewGame()
	s.gameID = uuid.NewString()
	s.searcher = engine.NewSearcher(engine.WithLogger(s.logger.With(zap.String("game_id", s.gameID))),
		engine.WithDepth(s.searcher.Depth()))
}

func (s *session) println(a ...any) { fmt.Fprintln(s.out, a...) }

func uciLoop(in io.Reader, out io.Writer, logger *zap.Logger) {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := newSession(out, logger)
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := scanner.Text()
		tokens := strings.Fields(line)
		if len(tokens) == 0 { // ignore blank lines
			continue
		}
		switch strings.ToLower(tokens[0]) {
		case "uci":
			s.println("id name MinimaxChess")
			s.println("id author minimax-chess")
			s.println("option name Difficulty type combo default medium var easy var medium var hard")
			s.println("option name Depth type spin default 3 min 1 max 8")
			s.println("option name Seed type string default <random>")
			s.println("option name CutStats type check default false")
			s.println("uciok")
		case "isready":
			s.println("readyok")
		case "ucinewgame":
			s.newGame()
		case "quit":
			return
		case "go":
			s.goCommand(tokens[1:])
		case "position":
			s.positionCommand(tokens[1:])
		case "setoption":
			s.setOption(tokens[1:])
		case "d":
			s.display()
		default:
			s.println("info string Unknown command:", line)
			s.logger.Warn("unknown command", zap.String("game_id", s.gameID), zap.String("line", line))
		}
	}
}

func (s *session) goCommand(args []string) {
	depth := s.searcher.Depth()
	for i := 0; i < len(args); i++ {
		switch strings.ToLower(args[i]) {
		case "depth":
			if i+1 >= len(args) {
				s.println("info string Malformed go command option depth")
				continue
			}
			i++
			d, err := strconv.Atoi(args[i])
			if err != nil || d < 1 {
				s.println("info string Malformed go command option; could not convert depth")
				continue
			}
			depth = d
		case "infinite":
			continue
		default:
			s.println("info string Unknown go subcommand", args[i])
		}
	}

	prev := s.searcher.Depth()
	s.searcher.SetDepth(depth)
	res := s.searcher.Search(s.game)
	s.searcher.SetDepth(prev)

	fmt.Fprintf(s.out, "info depth %d score cp %d nodes %d time %d\n",
		res.Depth, res.Score, res.Nodes, res.Elapsed.Milliseconds())
	if s.cutStats {
		for _, l := range res.Cuts.Lines() {
			s.println(l)
		}
	}
	if !res.Found {
		s.println("bestmove (none)")
		return
	}
	s.println("bestmove", res.Move.String())
}

func (s *session) positionCommand(args []string) {
	if len(args) == 0 {
		s.println("info string Malformed position command")
		return
	}

	var game *rules.Game
	rest := args[1:]
	switch strings.ToLower(args[0]) {
	case "startpos":
		game = rules.NewGame()
	case "fen":
		end := len(rest)
		for i, tok := range rest {
			if strings.ToLower(tok) == "moves" {
				end = i
				break
			}
		}
		g, err := rules.ParseFEN(strings.Join(rest[:end], " "))
		if err != nil {
			s.println("info string Invalid fen position")
			s.logger.Warn("invalid fen", zap.String("game_id", s.gameID), zap.Error(err))
			return
		}
		game = g
		rest = rest[end:]
	default:
		s.println("info string Invalid position subcommand")
		return
	}

	if len(rest) > 0 && strings.ToLower(rest[0]) == "moves" {
		for _, tok := range rest[1:] {
			m, err := san.ParseMove(game, tok)
			if err != nil || !game.MakeMove(m.From, m.To, m.Promotion) {
				s.println("info string Move", tok, "not found for position", game.FEN())
				s.logger.Warn("illegal move", zap.String("game_id", s.gameID),
					zap.String("move", tok), zap.String("fen", game.FEN()))
				break
			}
		}
	}
	s.game = game
}

func (s *session) setOption(args []string) {
	// setoption name <id> value <x>
	var name, value string
	for i := 0; i+1 < len(args); i++ {
		switch strings.ToLower(args[i]) {
		case "name":
			name = strings.ToLower(args[i+1])
		case "value":
			value = args[i+1]
		}
	}
	switch name {
	case "difficulty":
		s.searcher.SetDepth(engine.ParseDifficulty(value).Depth())
	case "depth":
		d, err := strconv.Atoi(value)
		if err != nil {
			s.println("info string Malformed setoption value", value)
			return
		}
		s.searcher.SetDepth(d)
	case "seed":
		seed, err := strconv.ParseUint(value, 10, 64)
		if err != nil {
			s.println("info string Malformed setoption value", value)
			return
		}
		s.searcher.SetSeed(seed)
	case "cutstats":
		s.cutStats = strings.EqualFold(value, "true")
	default:
		s.println("info string Unknown option", name)
		s.logger.Warn("unknown option", zap.String("game_id", s.gameID), zap.String("name", name))
	}
}

func (s *session) display() {
	fmt.Fprint(s.out, s.game.Board().String())
	s.println("Fen:", s.game.FEN())
	s.println("Status:", s.game.Status())
	notations := make([]string, 0, s.game.MoveCount())
	for _, rec := range s.game.History() {
		notations = append(notations, rec.Notation)
	}
	s.println("Moves:", strings.Join(notations, " "))
}
