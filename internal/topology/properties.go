package topology

import (
	"errors"
	"fmt"
)

// MaxDiscretePoints bounds the universe size accepted by Discrete; the power
// set grows as 2^n.
const MaxDiscretePoints = 16

// ErrUniverseTooLarge indicates Discrete was asked for more than MaxDiscretePoints points.
var ErrUniverseTooLarge = errors.New("topology: universe too large for a discrete topology")

// Validate checks the topology axioms on the family: ∅ and X are open, every
// open set lies in X, and the family is closed under pairwise union and
// intersection (enough for a finite family). The first violation is returned.
func (sp *Space[T]) Validate() error {
	if indexOf(sp.open, Set[T]{}) < 0 {
		return ErrMissingEmptySet
	}
	if indexOf(sp.open, sp.universe) < 0 {
		return ErrMissingUniverse
	}
	for i, u := range sp.open {
		if !u.IsSubsetOf(sp.universe) {
			return fmt.Errorf("%w: open set #%d", ErrNotInUniverse, i)
		}
	}
	for i := range sp.open {
		for j := i + 1; j < len(sp.open); j++ {
			if indexOf(sp.open, sp.open[i].Union(sp.open[j])) < 0 {
				return fmt.Errorf("%w: open sets #%d and #%d", ErrUnionNotClosed, i, j)
			}
			if indexOf(sp.open, sp.open[i].Intersect(sp.open[j])) < 0 {
				return fmt.Errorf("%w: open sets #%d and #%d", ErrIntersectionNotClosed, i, j)
			}
		}
	}

	return nil
}

// Subspace returns the subspace topology on X ∩ s: every U ∩ s for U open,
// duplicates dropped, first occurrence order kept.
func (sp *Space[T]) Subspace(s Set[T]) *Space[T] {
	universe := sp.universe.Intersect(s)
	var open []Set[T]
	for _, u := range sp.open {
		trace := u.Intersect(universe)
		if indexOf(open, trace) < 0 {
			open = append(open, trace)
		}
	}

	return NewSpace(universe, open)
}

// IsConnected reports whether no open set other than ∅ and X is also closed.
func (sp *Space[T]) IsConnected() bool {
	for _, u := range sp.open {
		if u.IsEmpty() || u.Equal(sp.universe) {
			continue
		}
		if sp.IsClosed(u) {
			return false
		}
	}

	return true
}

// IsCompact always holds for a finite family: any open cover is finite.
func (sp *Space[T]) IsCompact() bool {
	return true
}

// IsHausdorff reports whether every two distinct points have disjoint open
// neighbourhoods.
func (sp *Space[T]) IsHausdorff() bool {
	points := sp.universe.Items()
	for i := range points {
		for j := i + 1; j < len(points); j++ {
			if !sp.separated(points[i], points[j]) {
				return false
			}
		}
	}

	return true
}

func (sp *Space[T]) separated(p, q T) bool {
	for _, u := range sp.open {
		if !u.Has(p) || u.Has(q) {
			continue
		}
		for _, v := range sp.open {
			if v.Has(q) && !v.Has(p) && u.Intersect(v).IsEmpty() {
				return true
			}
		}
	}

	return false
}

// IsContinuous reports whether f: from → to pulls every open set of to back
// to an open set of from.
func IsContinuous[T, U comparable](f func(T) U, from *Space[T], to *Space[U]) bool {
	for _, v := range to.open {
		pre := make(Set[T])
		for x := range from.universe {
			if v.Has(f(x)) {
				pre.Add(x)
			}
		}
		if !from.IsOpen(pre) {
			return false
		}
	}

	return true
}

// Discrete returns the space on points where every subset is open. Open sets
// are ordered by the bitmask of their members over points.
func Discrete[T comparable](points ...T) (*Space[T], error) {
	universe := NewSet(points...)
	if universe.Len() > MaxDiscretePoints {
		return nil, fmt.Errorf("%w: %d points", ErrUniverseTooLarge, universe.Len())
	}
	uniq := make([]T, 0, universe.Len())
	seen := make(Set[T], universe.Len())
	for _, p := range points {
		if !seen.Has(p) {
			seen.Add(p)
			uniq = append(uniq, p)
		}
	}

	open := make([]Set[T], 0, 1<<len(uniq))
	for mask := 0; mask < 1<<len(uniq); mask++ {
		s := make(Set[T])
		for i, p := range uniq {
			if mask&(1<<i) != 0 {
				s.Add(p)
			}
		}
		open = append(open, s)
	}

	return NewSpace(universe, open), nil
}

// Indiscrete returns the space on points whose only open sets are ∅ and X.
func Indiscrete[T comparable](points ...T) *Space[T] {
	universe := NewSet(points...)

	return NewSpace(universe, []Set[T]{{}, universe})
}
