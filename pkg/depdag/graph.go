package depdag

import (
	"fmt"
	"iter"
	"slices"
)

// Option configures a [Graph] at construction time.
type Option func(*options)

type options struct {
	failOnCycle bool
}

// WithFailOnCycle makes every [Vertex.DependsOn] check the graph for cycles
// and fail with a [*CycleError] when one is found.
func WithFailOnCycle() Option {
	return func(o *options) { o.failOnCycle = true }
}

// Graph owns a set of named vertices and the dependency edges between them.
// Vertices are kept in creation order.
//
// The zero value is not usable - use New to create a Graph.
// Graph is not safe for concurrent use without external synchronization.
type Graph[N comparable] struct {
	vertices    map[N]*Vertex[N]
	order       []*Vertex[N]
	failOnCycle bool
}

// New creates an empty graph.
func New[N comparable](opts ...Option) *Graph[N] {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return &Graph[N]{
		vertices:    make(map[N]*Vertex[N]),
		failOnCycle: o.failOnCycle,
	}
}

// FailOnCycle reports whether the graph was built with [WithFailOnCycle].
func (g *Graph[N]) FailOnCycle() bool { return g.failOnCycle }

// Vertex returns the vertex called name, creating an empty one first if the
// graph does not have it yet. It never fails.
func (g *Graph[N]) Vertex(name N) *Vertex[N] {
	if v, ok := g.vertices[name]; ok {
		return v
	}
	return g.add(name)
}

// Create adds a new empty vertex called name. It returns ErrDuplicateVertex
// if the name is already taken, whether by an earlier Create or by a lazy
// reference through [Graph.Vertex] or [Vertex.DependsOn].
func (g *Graph[N]) Create(name N) (*Vertex[N], error) {
	if _, exists := g.vertices[name]; exists {
		return nil, fmt.Errorf("%w: %v", ErrDuplicateVertex, name)
	}
	return g.add(name), nil
}

// MustCreate is like [Graph.Create] but panics if the name is taken.
func (g *Graph[N]) MustCreate(name N) *Vertex[N] {
	v, err := g.Create(name)
	if err != nil {
		panic(err)
	}
	return v
}

func (g *Graph[N]) add(name N) *Vertex[N] {
	v := newVertex(name, g)
	g.vertices[name] = v
	g.order = append(g.order, v)
	return v
}

// Lookup returns the vertex called name without creating it.
func (g *Graph[N]) Lookup(name N) (*Vertex[N], bool) {
	v, ok := g.vertices[name]
	return v, ok
}

// Contains reports whether a vertex called name exists.
func (g *Graph[N]) Contains(name N) bool {
	_, ok := g.vertices[name]
	return ok
}

// Len returns the number of vertices.
func (g *Graph[N]) Len() int { return len(g.order) }

// EdgeCount returns the number of dependency edges.
func (g *Graph[N]) EdgeCount() int {
	n := 0
	for _, v := range g.order {
		n += len(v.supporters)
	}
	return n
}

// Vertices returns all vertices in creation order. The returned slice is a
// copy; the vertices are not.
func (g *Graph[N]) Vertices() []*Vertex[N] { return slices.Clone(g.order) }

// All returns a sequence over all vertices in creation order.
func (g *Graph[N]) All() iter.Seq[*Vertex[N]] {
	return func(yield func(*Vertex[N]) bool) {
		for _, v := range g.order {
			if !yield(v) {
				return
			}
		}
	}
}

// Names returns the names of all vertices in creation order.
func (g *Graph[N]) Names() []N {
	names := make([]N, len(g.order))
	for i, v := range g.order {
		names[i] = v.name
	}
	return names
}

// EnsureAcyclic returns a [*CycleError] carrying message if the graph
// contains a cycle, and nil otherwise.
func (g *Graph[N]) EnsureAcyclic(message string) error {
	if g.IsCyclic() {
		return &CycleError{Message: message}
	}
	return nil
}

// VertexNames extracts the name of each vertex in vs, preserving order.
func VertexNames[N comparable](vs []*Vertex[N]) []N {
	names := make([]N, len(vs))
	for i, v := range vs {
		names[i] = v.name
	}
	return names
}

// CollectNames drains seq into a slice of vertex names.
func CollectNames[N comparable](seq iter.Seq[*Vertex[N]]) []N {
	var names []N
	for v := range seq {
		names = append(names, v.name)
	}
	return names
}
