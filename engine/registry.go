package engine

import (
	"strings"

	"github.com/katalvlaran/pathviz/astar"
	"github.com/katalvlaran/pathviz/bmssp"
	"github.com/katalvlaran/pathviz/dijkstra"
	"github.com/katalvlaran/pathviz/dstarlite"
	"github.com/katalvlaran/pathviz/search"
)

// Registry maps display names and aliases to strategies. It is not safe for
// concurrent Register calls; populate it before use.
type Registry struct {
	byKey map[string]search.Strategy
	names []string
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{byKey: make(map[string]search.Strategy)}
}

// DefaultRegistry returns the four built-in strategies in display order.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(astar.New(), "astar", "a-star")
	r.Register(dijkstra.New())
	r.Register(dstarlite.New(), "dstarlite", "dstar", "d*lite")
	r.Register(bmssp.New(), "bmssp", "bounded")

	return r
}

// Register adds s under its display name and the given aliases. A later
// registration under the same key replaces the earlier one.
func (r *Registry) Register(s search.Strategy, aliases ...string) {
	name := s.Name()
	if _, ok := r.byKey[key(name)]; !ok {
		r.names = append(r.names, name)
	}
	r.byKey[key(name)] = s
	for _, a := range aliases {
		r.byKey[key(a)] = s
	}
}

// Lookup resolves a display name or alias, ignoring case and surrounding
// whitespace.
func (r *Registry) Lookup(name string) (search.Strategy, bool) {
	s, ok := r.byKey[key(name)]
	return s, ok
}

// Names returns the display names in registration order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

func key(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
