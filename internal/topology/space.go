package topology

// Space is a finite topological space (X, τ) given by an explicit universe
// and an explicit, ordered open-set family. A Space is immutable once built
// and safe for concurrent reads.
type Space[T comparable] struct {
	universe Set[T]
	open     []Set[T]
	closed   []Set[T]
}

// NewSpace builds a Space from universe and open. Both are copied. The
// family is taken as given; see Validate.
func NewSpace[T comparable](universe Set[T], open []Set[T]) *Space[T] {
	sp := &Space[T]{
		universe: universe.Clone(),
		open:     make([]Set[T], len(open)),
		closed:   make([]Set[T], len(open)),
	}
	for i, u := range open {
		sp.open[i] = u.Clone()
		sp.closed[i] = sp.universe.Difference(u)
	}

	return sp
}

// Universe returns a copy of X.
func (sp *Space[T]) Universe() Set[T] {
	return sp.universe.Clone()
}

// OpenSets returns copies of the open sets in family order.
func (sp *Space[T]) OpenSets() []Set[T] {
	return cloneAll(sp.open)
}

// ClosedSets returns copies of the derived closed sets, index-aligned with OpenSets.
func (sp *Space[T]) ClosedSets() []Set[T] {
	return cloneAll(sp.closed)
}

// IsOpen reports whether a is literally one of the open sets.
func (sp *Space[T]) IsOpen(a Set[T]) bool {
	return indexOf(sp.open, a) >= 0
}

// IsClosed reports whether a is one of the derived closed sets.
func (sp *Space[T]) IsClosed(a Set[T]) bool {
	return indexOf(sp.closed, a) >= 0
}

// Interior returns the union of every open set contained in a.
func (sp *Space[T]) Interior(a Set[T]) Set[T] {
	in := make(Set[T])
	for _, u := range sp.open {
		if u.IsSubsetOf(a) {
			for p := range u {
				in.Add(p)
			}
		}
	}

	return in
}

// Closure returns the intersection of every closed set containing a,
// starting from the whole universe.
func (sp *Space[T]) Closure(a Set[T]) Set[T] {
	cl := sp.universe.Clone()
	for _, f := range sp.closed {
		if a.IsSubsetOf(f) {
			cl = cl.Intersect(f)
		}
	}

	return cl
}

// Boundary returns Closure(a) \ Interior(a).
func (sp *Space[T]) Boundary(a Set[T]) Set[T] {
	return sp.Closure(a).Difference(sp.Interior(a))
}

// LimitPoints returns the points p of X such that every open set holding p
// also holds a point of a other than p, and p lies in Closure(a).
func (sp *Space[T]) LimitPoints(a Set[T]) Set[T] {
	cl := sp.Closure(a)
	out := make(Set[T])
	for p := range sp.universe {
		if sp.isLimitPoint(p, a) && cl.Has(p) {
			out.Add(p)
		}
	}

	return out
}

func (sp *Space[T]) isLimitPoint(p T, a Set[T]) bool {
	for _, u := range sp.open {
		if !u.Has(p) {
			continue
		}
		hit := false
		for q := range u {
			if q != p && a.Has(q) {
				hit = true
				break
			}
		}
		if !hit {
			return false
		}
	}

	return true
}

func indexOf[T comparable](family []Set[T], a Set[T]) int {
	for i, s := range family {
		if s.Equal(a) {
			return i
		}
	}

	return -1
}

func cloneAll[T comparable](family []Set[T]) []Set[T] {
	out := make([]Set[T], len(family))
	for i, s := range family {
		out[i] = s.Clone()
	}

	return out
}
