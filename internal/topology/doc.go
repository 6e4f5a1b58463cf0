// Package topology evaluates point-set topology queries over an explicit,
// finite topological space.
//
// What:
//
//   - Set[T]: a map-backed finite set with union, intersection, difference
//     and subset tests.
//   - Space[T]: a universe plus an ordered open-set family supplied by the
//     caller. Closed sets are derived once, as complements of the open sets,
//     in the same order.
//   - Queries: IsOpen, IsClosed, Interior, Closure, Boundary, LimitPoints.
//   - Companions: Subspace, IsConnected, IsCompact, IsHausdorff,
//     IsContinuous, and the Discrete / Indiscrete builders.
//
// Semantics:
//
//   - Interior(A)  = ⋃{U ∈ τ : U ⊆ A}
//   - Closure(A)   = X ∩ ⋂{F closed : A ⊆ F}
//   - Boundary(A)  = Closure(A) \ Interior(A)
//   - LimitPoints  = points p of X such that every open U ∋ p meets A \ {p},
//     restricted to Closure(A).
//
// The family is NOT checked against the topology axioms at construction;
// operations on a malformed family return well-defined but meaningless
// results. Call Validate to check the axioms explicitly.
//
// Complexity:
//
//   - IsOpen / IsClosed: O(|τ|·|X|)
//   - Interior / Closure / Boundary: O(|τ|·|X|)
//   - LimitPoints: O(|X|·|τ|·|X|)
//   - Validate: O(|τ|²·|X|)
//   - IsHausdorff: O(|X|²·|τ|²·|X|)
//
// Errors (Validate only):
//
//   - ErrMissingEmptySet        ∅ is not in the family
//   - ErrMissingUniverse        X is not in the family
//   - ErrNotInUniverse          an open set has a point outside X
//   - ErrUnionNotClosed         some pairwise union is missing
//   - ErrIntersectionNotClosed  some pairwise intersection is missing
package topology
