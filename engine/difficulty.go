package engine

import "strings"

// Difficulty names a fixed search depth preset.
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

// Depth returns the ply budget of the preset. Unknown presets search like Medium.
func (d Difficulty) Depth() int {
	switch d {
	case Easy:
		return 2
	case Hard:
		return 4
	default:
		return 3
	}
}

// ParseDifficulty maps a case-insensitive name to a preset, falling back to Medium.
func ParseDifficulty(s string) Difficulty {
	switch d := Difficulty(strings.ToLower(strings.TrimSpace(s))); d {
	case Easy, Medium, Hard:
		return d
	default:
		return Medium
	}
}
