package heading

import "github.com/rohmanhakim/docs-toc/pkg/set"

// FilterLevels keeps the matches whose level is in levels, preserving
// order. A set holding all six levels keeps everything.
func FilterLevels(matches []Match, levels set.Set[int]) []Match {
	if allLevels(levels) {
		return matches
	}
	kept := make([]Match, 0, len(matches))
	for _, m := range matches {
		if levels.Contains(m.Level) {
			kept = append(kept, m)
		}
	}
	return kept
}

// DropBlank removes matches with no visible text.
func DropBlank(matches []Match) []Match {
	kept := make([]Match, 0, len(matches))
	for _, m := range matches {
		if m.Text() != "" {
			kept = append(kept, m)
		}
	}
	return kept
}

func allLevels(levels set.Set[int]) bool {
	for level := MinLevel; level <= MaxLevel; level++ {
		if !levels.Contains(level) {
			return false
		}
	}
	return true
}
