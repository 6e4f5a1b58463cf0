package catalog

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"topologia/internal/topology"
	"topologia/pkg"
)

var (
	// ErrSpaceNotFound indicates an unknown space key.
	ErrSpaceNotFound = errors.New("catalog: space not found")
	// ErrNotFinite indicates the space has no finite model for the evaluator.
	ErrNotFinite = errors.New("catalog: space has no finite model")
	// ErrInvalidCatalog indicates the catalog document is inconsistent.
	ErrInvalidCatalog = errors.New("catalog: invalid document")
)

// Space is a predefined space: public metadata, fixed property flags and, for
// the finite examples, an evaluator model.
type Space struct {
	Key        string
	Info       pkg.SpaceInfo
	Properties pkg.SpaceProperties

	finite *topology.Space[string]
}

// Finite returns the evaluator model of the space.
func (s Space) Finite() (*topology.Space[string], error) {
	if s.finite == nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFinite, s.Key)
	}

	return s.finite, nil
}

// Catalog is the immutable content served by the API. Accessors return
// copies so callers can never mutate shared state.
type Catalog struct {
	spaces   map[string]Space
	order    []string
	quiz     []pkg.QuizQuestion
	glossary map[string]pkg.GlossaryTerm
	concepts map[string]pkg.Concept
}

// Space looks up a space by key.
func (c *Catalog) Space(key string) (Space, error) {
	sp, ok := c.spaces[key]
	if !ok {
		return Space{}, fmt.Errorf("%w: %s", ErrSpaceNotFound, key)
	}

	return sp, nil
}

// Spaces returns every space in document order.
func (c *Catalog) Spaces() []Space {
	out := make([]Space, 0, len(c.order))
	for _, key := range c.order {
		out = append(out, c.spaces[key])
	}

	return out
}

func (c *Catalog) Quiz() []pkg.QuizQuestion {
	out := make([]pkg.QuizQuestion, len(c.quiz))
	for i, q := range c.quiz {
		q.Options = slices.Clone(q.Options)
		out[i] = q
	}

	return out
}

func (c *Catalog) Glossary() map[string]pkg.GlossaryTerm {
	return maps.Clone(c.glossary)
}

func (c *Catalog) Concepts() map[string]pkg.Concept {
	return maps.Clone(c.concepts)
}
