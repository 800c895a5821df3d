package depdag

import (
	"fmt"
	"iter"
	"slices"
)

// Vertex is a named node that knows its direct supporters and its payload.
//
// Vertices are owned by the [Graph] that created them. The back-reference to
// the graph is only used to look up or create supporters in [Vertex.DependsOn].
type Vertex[N comparable] struct {
	name       N
	graph      *Graph[N]
	supporters []*Vertex[N]
	index      map[N]struct{} // names in supporters
	payload    Payload
}

func newVertex[N comparable](name N, g *Graph[N]) *Vertex[N] {
	return &Vertex[N]{
		name:  name,
		graph: g,
		index: make(map[N]struct{}),
	}
}

// Name returns the vertex name. It never changes.
func (v *Vertex[N]) Name() N { return v.name }

// String returns a short description including the vertex name.
func (v *Vertex[N]) String() string { return fmt.Sprintf("Vertex(%v)", v.name) }

// DependsOn adds edges from v to each named vertex, creating missing vertices
// in the owning graph. Names already among the supporters are skipped, so the
// position of a supporter is fixed by its first declaration.
//
// On a graph built with [WithFailOnCycle], the whole graph is checked after
// the edges are added. If a cycle exists DependsOn returns a [*CycleError];
// the edges stay in place and the graph should be considered unusable for
// further mutation.
func (v *Vertex[N]) DependsOn(names ...N) error {
	for _, name := range names {
		if _, ok := v.index[name]; ok {
			continue
		}
		v.index[name] = struct{}{}
		v.supporters = append(v.supporters, v.graph.Vertex(name))
	}
	if !v.graph.failOnCycle || len(names) == 0 {
		return nil
	}
	return v.graph.EnsureAcyclic(fmt.Sprintf("%v depends on %v", v.name, names))
}

// Payload returns the payload currently attached to v.
func (v *Vertex[N]) Payload() Payload { return v.payload }

// SetPayload replaces the payload of v.
func (v *Vertex[N]) SetPayload(p Payload) { v.payload = p }

// SetValue attaches a value payload. A nil value clears the payload.
func (v *Vertex[N]) SetValue(value any) { v.payload = ValueOf(value) }

// SetPredicate attaches a predicate payload. The predicate is called on every
// [Vertex.HasPayload] and [Vertex.IsResolved]; memoize it yourself if it is
// expensive.
func (v *Vertex[N]) SetPredicate(ready func() bool) { v.payload = PredicateOf(ready) }

// ClearPayload removes any payload from v.
func (v *Vertex[N]) ClearPayload() { v.payload = Payload{} }

// HasPayload reports whether v has been provided with a payload. For a
// predicate payload this is the predicate's current result.
func (v *Vertex[N]) HasPayload() bool { return v.payload.Provided() }

// DirectSupporters returns the vertices v depends on directly, in the order
// they were first declared. The returned slice is a copy.
func (v *Vertex[N]) DirectSupporters() []*Vertex[N] { return slices.Clone(v.supporters) }

// AllSupporters returns a sequence over every vertex reachable from v. For
// each direct supporter in declaration order it yields the supporter and then
// that supporter's own AllSupporters.
//
// Vertices reachable through several paths are yielded once per path. The
// sequence is restartable and evaluated lazily; on a cyclic graph it is
// infinite, so callers must check [Graph.IsCyclic] first or stop early.
func (v *Vertex[N]) AllSupporters() iter.Seq[*Vertex[N]] {
	return func(yield func(*Vertex[N]) bool) {
		v.walkSupporters(yield)
	}
}

func (v *Vertex[N]) walkSupporters(yield func(*Vertex[N]) bool) bool {
	for _, s := range v.supporters {
		if !yield(s) || !s.walkSupporters(yield) {
			return false
		}
	}
	return true
}

// IsResolved reports whether v has a payload and every supporter is resolved,
// recursively. The result is recomputed on every call and stops at the first
// unresolved vertex.
//
// IsResolved does not terminate on a cycle in which every vertex has a
// payload.
func (v *Vertex[N]) IsResolved() bool {
	if !v.HasPayload() {
		return false
	}
	for _, s := range v.supporters {
		if !s.IsResolved() {
			return false
		}
	}
	return true
}
