package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"runtime/pprof"
	"time"

	"go.uber.org/zap"

	"minimax-chess/engine"
	"minimax-chess/rules"
)

func main() {
	// --- Flags ---
	depthFlag := flag.Int("depth", 0, "search depth in plies (0 = use -difficulty)")
	difficultyFlag := flag.String("difficulty", "medium", "easy, medium or hard")
	repeatFlag := flag.Int("repeat", 1, "number of searches to run")
	fenFlag := flag.String("fen", "", "FEN to search (empty = startpos)")
	seedFlag := flag.Uint64("seed", 1, "root shuffle seed")
	verbose := flag.Bool("v", false, "log each search")
	cpuProfile := flag.String("cpuprofile", "", "write CPU profile to file")
	memProfile := flag.String("memprofile", "", "write memory profile (heap) to file")
	flag.Parse()

	if *depthFlag < 0 {
		log.Fatalf("depth must not be negative, got %d", *depthFlag)
	}

	logger := zap.NewNop()
	if *verbose {
		l, err := zap.NewDevelopment()
		if err != nil {
			log.Fatalf("could not build logger: %v", err)
		}
		logger = l
	}
	defer func() { _ = logger.Sync() }()

	// --- Optional CPU profiling setup ---
	if *cpuProfile != "" {
		cpuFile, err := os.Create(*cpuProfile)
		if err != nil {
			log.Fatalf("could not create CPU profile: %v", err)
		}
		if err := pprof.StartCPUProfile(cpuFile); err != nil {
			log.Fatalf("could not start CPU profile: %v", err)
		}
		defer func() {
			pprof.StopCPUProfile()
			cpuFile.Close()
		}()
	}

	opts := []engine.Option{
		engine.WithDifficulty(engine.ParseDifficulty(*difficultyFlag)),
		engine.WithSeed(*seedFlag),
		engine.WithLogger(logger),
	}
	if *depthFlag > 0 {
		opts = append(opts, engine.WithDepth(*depthFlag))
	}
	searcher := engine.NewSearcher(opts...)

	fen := rules.FENStartPos
	if *fenFlag != "" {
		fen = *fenFlag
	}

	fmt.Printf("searchbench: fen=%q depth=%d repeat=%d\n", fen, searcher.Depth(), *repeatFlag)

	var totalNodes uint64
	startAll := time.Now()
	for i := 0; i < *repeatFlag; i++ {
		// Fresh position for each run
		game, err := rules.ParseFEN(fen)
		if err != nil {
			log.Fatalf("invalid fen: %v", err)
		}
		res := searcher.Search(game)
		totalNodes += res.Nodes
		fmt.Printf("iteration %d: bestmove %v score=%d nodes=%d time=%v\n",
			i+1, res.Move, res.Score, res.Nodes, res.Elapsed)
	}
	totalElapsed := time.Since(startAll)
	fmt.Printf("total time: %v  nodes: %d  nps: %.0f\n",
		totalElapsed, totalNodes, float64(totalNodes)/totalElapsed.Seconds())

	// --- Optional heap profile at the end ---
	if *memProfile != "" {
		f, err := os.Create(*memProfile)
		if err != nil {
			log.Fatalf("could not create memory profile: %v", err)
		}
		defer f.Close()

		runtime.GC() // get up-to-date heap info
		if err := pprof.WriteHeapProfile(f); err != nil {
			log.Fatalf("could not write memory profile: %v", err)
		}
	}
}
