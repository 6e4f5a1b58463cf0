package evaluate

import (
	"cmp"
	"slices"
	"strings"

	"github.com/spf13/cast"

	"topologia/internal/topology"
)

// sorted lists the points of s with numeric points first in numeric order,
// then the rest lexicographically.
func sorted(s topology.Set[string]) []string {
	out := s.Items()
	slices.SortFunc(out, comparePoints)

	return out
}

func comparePoints(a, b string) int {
	x, errA := cast.ToFloat64E(a)
	y, errB := cast.ToFloat64E(b)
	switch {
	case errA == nil && errB == nil:
		if c := cmp.Compare(x, y); c != 0 {
			return c
		}
	case errA == nil:
		return -1
	case errB == nil:
		return 1
	}

	return strings.Compare(a, b)
}
