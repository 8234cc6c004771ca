package naming

import (
	"strconv"
	"strings"
)

// NextNumber derives the next sequence number from the numbering history:
// the leading integers of already-assigned filenames. Part photos usually
// come in front/back pairs, so a number stays open until two assigned names
// carry it, then the next confirmation advances to the following number.
//
//	history empty           → 1
//	max number used once    → max (still open for its pair partner)
//	max number used twice+  → max + 1
//
// Names without a parseable leading integer are ignored. The result never
// goes below an already-assigned number and never skips a value.
func NextNumber(history []string) int {
	counts := make(map[int]int, len(history))
	max := 0
	for _, name := range history {
		n, ok := leadingNumber(name)
		if !ok {
			continue
		}
		counts[n]++
		if n > max {
			max = n
		}
	}
	if max == 0 {
		return 1
	}
	if counts[max] < 2 {
		return max
	}
	return max + 1
}

// leadingNumber parses the integer before the first underscore of an
// assigned filename. Malformed prefixes report ok=false so they drop out of
// the numbering history instead of failing it.
func leadingNumber(name string) (int, bool) {
	prefix, _, _ := strings.Cut(name, "_")
	n, err := strconv.Atoi(prefix)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}
