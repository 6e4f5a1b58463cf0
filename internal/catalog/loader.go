package catalog

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"topologia/internal/topology"
	"topologia/pkg"
)

//go:embed catalog.yaml
var defaultDocument []byte

// document mirrors the structure of catalog.yaml
type document struct {
	Spaces []struct {
		Key        string              `yaml:"key"`
		Info       pkg.SpaceInfo       `yaml:",inline"`
		Properties pkg.SpaceProperties `yaml:"properties"`
		Finite     *finiteModel        `yaml:"finite"`
	} `yaml:"spaces"`
	Quiz     []pkg.QuizQuestion          `yaml:"quiz"`
	Glossary map[string]pkg.GlossaryTerm `yaml:"glossary"`
	Concepts map[string]pkg.Concept      `yaml:"concepts"`
}

// finiteModel describes the evaluator model of a finite example space
type finiteModel struct {
	Kind     string     `yaml:"kind"` // discrete, indiscrete, explicit
	Points   []string   `yaml:"points"`
	OpenSets [][]string `yaml:"open_sets"`
}

// Default returns the catalog embedded in the binary.
func Default() (*Catalog, error) {
	return Parse(defaultDocument)
}

// Load reads the catalog from path, or the embedded one when path is empty.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading catalog file: %w", err)
	}

	return Parse(data)
}

// Parse decodes and checks a catalog document.
func Parse(data []byte) (*Catalog, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("error parsing catalog YAML: %w", err)
	}

	c := &Catalog{
		spaces:   make(map[string]Space, len(doc.Spaces)),
		quiz:     doc.Quiz,
		glossary: doc.Glossary,
		concepts: doc.Concepts,
	}
	for _, s := range doc.Spaces {
		if s.Key == "" {
			return nil, fmt.Errorf("%w: space without key", ErrInvalidCatalog)
		}
		if _, dup := c.spaces[s.Key]; dup {
			return nil, fmt.Errorf("%w: duplicate space %q", ErrInvalidCatalog, s.Key)
		}

		sp := Space{Key: s.Key, Info: s.Info, Properties: s.Properties}
		if s.Finite != nil {
			model, err := s.Finite.build()
			if err != nil {
				return nil, fmt.Errorf("%w: space %q: %w", ErrInvalidCatalog, s.Key, err)
			}
			sp.finite = model
		}
		c.spaces[s.Key] = sp
		c.order = append(c.order, s.Key)
	}

	for _, q := range doc.Quiz {
		if q.Correct < 0 || q.Correct >= len(q.Options) {
			return nil, fmt.Errorf("%w: question %d has no option %d", ErrInvalidCatalog, q.ID, q.Correct)
		}
	}

	return c, nil
}

func (m *finiteModel) build() (*topology.Space[string], error) {
	switch m.Kind {
	case "discrete":
		return topology.Discrete(m.Points...)
	case "indiscrete":
		return topology.Indiscrete(m.Points...), nil
	case "explicit":
		open := make([]topology.Set[string], len(m.OpenSets))
		for i, u := range m.OpenSets {
			open[i] = topology.NewSet(u...)
		}
		sp := topology.NewSpace(topology.NewSet(m.Points...), open)
		if err := sp.Validate(); err != nil {
			return nil, err
		}
		return sp, nil
	default:
		return nil, fmt.Errorf("unknown finite kind %q", m.Kind)
	}
}
