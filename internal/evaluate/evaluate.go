// Package evaluate connects the JSON-facing finite-space requests to the
// evaluator in internal/topology. Points arrive as arbitrary JSON scalars and
// are identified by their string form.
package evaluate

import (
	"errors"
	"fmt"

	"github.com/spf13/cast"

	"topologia/internal/catalog"
	"topologia/internal/topology"
	"topologia/pkg"
)

var (
	// ErrNoSpace indicates the request names neither a catalog space nor a universe.
	ErrNoSpace = errors.New("evaluate: space_type or universe is required")
	// ErrBadPoint indicates a point that cannot be read as a scalar.
	ErrBadPoint = errors.New("evaluate: invalid point")
	// ErrUnmappedPoint indicates a mapping that leaves a point of the domain undefined.
	ErrUnmappedPoint = errors.New("evaluate: mapping does not cover the domain")
)

// Resolve returns the finite space described by req. A catalog space_type
// wins over an explicit universe. The explicit family is not validated; the
// axiom check is reported separately by Analyze.
func Resolve(c *catalog.Catalog, req pkg.FiniteSpaceRequest) (*topology.Space[string], error) {
	if req.SpaceType != "" {
		sp, err := c.Space(req.SpaceType)
		if err != nil {
			return nil, err
		}
		return sp.Finite()
	}
	if req.Universe == nil {
		return nil, ErrNoSpace
	}

	universe, err := toSet(req.Universe)
	if err != nil {
		return nil, fmt.Errorf("universe: %w", err)
	}
	open := make([]topology.Set[string], len(req.OpenSets))
	for i, raw := range req.OpenSets {
		if open[i], err = toSet(raw); err != nil {
			return nil, fmt.Errorf("open set #%d: %w", i, err)
		}
	}

	return topology.NewSpace(universe, open), nil
}

// Analyze runs every evaluator query for subset over sp and reports, without
// failing, whether the family satisfies the topology axioms.
func Analyze(sp *topology.Space[string], subset []any) (pkg.FiniteAnalysis, error) {
	a, err := toSet(subset)
	if err != nil {
		return pkg.FiniteAnalysis{}, fmt.Errorf("subset: %w", err)
	}

	out := pkg.FiniteAnalysis{
		Universe:    sorted(sp.Universe()),
		Subset:      sorted(a),
		IsOpen:      sp.IsOpen(a),
		IsClosed:    sp.IsClosed(a),
		Interior:    sorted(sp.Interior(a)),
		Closure:     sorted(sp.Closure(a)),
		Boundary:    sorted(sp.Boundary(a)),
		LimitPoints: sorted(sp.LimitPoints(a)),
		IsConnected: sp.IsConnected(),
		IsCompact:   sp.IsCompact(),
		IsHausdorff: sp.IsHausdorff(),
	}
	if err := sp.Validate(); err != nil {
		out.AxiomError = err.Error()
	}

	return out, nil
}

// Subspace returns the subspace topology of sp on subset.
func Subspace(sp *topology.Space[string], subset []any) (pkg.SubspaceResponse, error) {
	s, err := toSet(subset)
	if err != nil {
		return pkg.SubspaceResponse{}, fmt.Errorf("subset: %w", err)
	}

	sub := sp.Subspace(s)
	out := pkg.SubspaceResponse{Universe: sorted(sub.Universe())}
	for _, u := range sub.OpenSets() {
		out.OpenSets = append(out.OpenSets, sorted(u))
	}

	return out, nil
}

// Continuity checks whether mapping, keyed by the string form of each point
// of from, is continuous into to.
func Continuity(from, to *topology.Space[string], mapping map[string]any) (pkg.ContinuityResponse, error) {
	f := make(map[string]string, len(mapping))
	for k, v := range mapping {
		s, err := point(v)
		if err != nil {
			return pkg.ContinuityResponse{}, fmt.Errorf("mapping %q: %w", k, err)
		}
		f[k] = s
	}
	for x := range from.Universe() {
		if _, ok := f[x]; !ok {
			return pkg.ContinuityResponse{}, fmt.Errorf("%w: %s", ErrUnmappedPoint, x)
		}
	}

	ok := topology.IsContinuous(func(x string) string { return f[x] }, from, to)

	return pkg.ContinuityResponse{Continuous: ok}, nil
}

func toSet(raw []any) (topology.Set[string], error) {
	s := make(topology.Set[string], len(raw))
	for _, v := range raw {
		p, err := point(v)
		if err != nil {
			return nil, err
		}
		s.Add(p)
	}

	return s, nil
}

func point(v any) (string, error) {
	switch v.(type) {
	case map[string]any, []any, nil:
		return "", fmt.Errorf("%w: %v", ErrBadPoint, v)
	}
	s, err := cast.ToStringE(v)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrBadPoint, err)
	}

	return s, nil
}
