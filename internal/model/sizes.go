package model

import (
	"sort"
	"strconv"
	"strings"
	"unicode"
)

// SizeSet is a sorted, duplicate-free list of square edge lengths in pixels
type SizeSet []int

// ParseSizeSet parses a comma-separated size list. Whitespace is discarded, tokens
// that are not plain ASCII digits or fall outside bounds are skipped silently.
func ParseSizeSet(spec string, bounds SizeBounds) SizeSet {
	compact := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, spec)

	seen := make(map[int]struct{})
	set := SizeSet{}
	for _, token := range strings.Split(compact, ",") {
		if !isDigits(token) {
			continue
		}
		n, err := strconv.Atoi(token)
		if err != nil || !bounds.Contains(n) {
			continue
		}
		if _, dup := seen[n]; dup {
			continue
		}
		seen[n] = struct{}{}
		set = append(set, n)
	}

	sort.Ints(set)
	return set
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// String returns the canonical rendering, e.g. "16,32,64"
func (s SizeSet) String() string {
	parts := make([]string, len(s))
	for i, n := range s {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ",")
}

// IsEmpty reports whether the set holds no sizes
func (s SizeSet) IsEmpty() bool {
	return len(s) == 0
}

// Smallest returns the first (smallest) size
func (s SizeSet) Smallest() (int, bool) {
	if len(s) == 0 {
		return 0, false
	}
	return s[0], true
}

// Above returns the sizes strictly greater than limit
func (s SizeSet) Above(limit int) SizeSet {
	var out SizeSet
	for _, n := range s {
		if n > limit {
			out = append(out, n)
		}
	}
	return out
}

// Filter splits the set into sizes accepted by keep and the rejected rest
func (s SizeSet) Filter(keep func(int) bool) (kept, dropped SizeSet) {
	for _, n := range s {
		if keep(n) {
			kept = append(kept, n)
		} else {
			dropped = append(dropped, n)
		}
	}
	return kept, dropped
}
