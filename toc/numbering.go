package toc

import (
	"strconv"
	"strings"
)

// numberingDepths is the number of nesting depths the counters support.
const numberingDepths = 6

// AssignNumbering computes hierarchical numbering in place. The minimum
// level present among the entries anchors depth 0; each entry increments the
// counter at its own depth and resets every deeper counter, then emits the
// dot-joined counters from depth 0 through its depth. A sibling at the same
// or a shallower depth therefore restarts its children: for levels
// [1,2,3,1,2] the numbering reads 1, 1.1, 1.1.1, 2, 2.1.
func AssignNumbering(entries []Entry) []Entry {
	if len(entries) == 0 {
		return entries
	}

	minLevel := entries[0].Level
	for _, e := range entries[1:] {
		if e.Level < minLevel {
			minLevel = e.Level
		}
	}

	counters := make([]int, numberingDepths)
	for i := range entries {
		depth := entries[i].Level - minLevel
		if depth >= len(counters) {
			grown := make([]int, depth+1)
			copy(grown, counters)
			counters = grown
		}

		counters[depth]++
		for d := depth + 1; d < len(counters); d++ {
			counters[d] = 0
		}

		parts := make([]string, depth+1)
		for d := 0; d <= depth; d++ {
			parts[d] = strconv.Itoa(counters[d])
		}
		entries[i].Numbering = strings.Join(parts, ".")
	}
	return entries
}
