package topology

import (
	"cmp"
	"slices"
)

// Set is a finite set of comparable points.
type Set[T comparable] map[T]struct{}

// NewSet returns a set holding items; duplicates collapse.
func NewSet[T comparable](items ...T) Set[T] {
	s := make(Set[T], len(items))
	for _, item := range items {
		s[item] = struct{}{}
	}

	return s
}

// Add inserts item into s.
func (s Set[T]) Add(item T) {
	s[item] = struct{}{}
}

// Has reports whether item is in s.
func (s Set[T]) Has(item T) bool {
	_, ok := s[item]
	return ok
}

func (s Set[T]) Len() int {
	return len(s)
}

func (s Set[T]) IsEmpty() bool {
	return len(s) == 0
}

// Clone returns an independent copy of s.
func (s Set[T]) Clone() Set[T] {
	c := make(Set[T], len(s))
	for item := range s {
		c[item] = struct{}{}
	}

	return c
}

// Union returns s ∪ o as a new set.
func (s Set[T]) Union(o Set[T]) Set[T] {
	out := s.Clone()
	for item := range o {
		out[item] = struct{}{}
	}

	return out
}

// Intersect returns s ∩ o as a new set.
func (s Set[T]) Intersect(o Set[T]) Set[T] {
	small, large := s, o
	if len(small) > len(large) {
		small, large = large, small
	}
	out := make(Set[T])
	for item := range small {
		if large.Has(item) {
			out[item] = struct{}{}
		}
	}

	return out
}

// Difference returns s \ o as a new set.
func (s Set[T]) Difference(o Set[T]) Set[T] {
	out := make(Set[T])
	for item := range s {
		if !o.Has(item) {
			out[item] = struct{}{}
		}
	}

	return out
}

// IsSubsetOf reports whether every point of s is in o.
func (s Set[T]) IsSubsetOf(o Set[T]) bool {
	if len(s) > len(o) {
		return false
	}
	for item := range s {
		if !o.Has(item) {
			return false
		}
	}

	return true
}

// Equal reports whether s and o hold the same points.
func (s Set[T]) Equal(o Set[T]) bool {
	return len(s) == len(o) && s.IsSubsetOf(o)
}

// Items returns the points of s in unspecified order.
func (s Set[T]) Items() []T {
	out := make([]T, 0, len(s))
	for item := range s {
		out = append(out, item)
	}

	return out
}

// Sorted returns the points of s in ascending order.
func Sorted[T cmp.Ordered](s Set[T]) []T {
	out := s.Items()
	slices.Sort(out)

	return out
}
