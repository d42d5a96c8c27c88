package engine

import "fmt"

// CutStatistics counts how often alpha-beta cut a node short during one search.
type CutStatistics struct {
	BetaCutoffs   uint64
	KillerCutoffs uint64 // cutoffs caused by a killer move
	CaptureCuts   uint64 // cutoffs caused by a capture or promotion
}

// Lines renders the counters as protocol info strings.
func (c CutStatistics) Lines() []string {
	return []string{
		"info string Cut statistics:",
		fmt.Sprintf("info string   Beta cutoffs: %d", c.BetaCutoffs),
		fmt.Sprintf("info string   Killer cutoffs: %d", c.KillerCutoffs),
		fmt.Sprintf("info string   Capture cutoffs: %d", c.CaptureCuts),
	}
}
