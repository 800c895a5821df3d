// Package depdag tracks dependency relationships between named vertices and
// answers whether a vertex is resolved.
//
// # Overview
//
// A vertex depending on other vertices is a dependant, and a vertex that other
// vertices depend on is a supporter. Each vertex may carry a [Payload]: a plain
// value, or a predicate reporting readiness. A vertex is resolved when it has
// a payload and all of its supporters, recursively, are resolved too.
//
// The package is the substrate for build graphs, module-loading order, task
// schedulers and configuration resolution. It stores vertices and edges,
// detects cycles, walks transitive supporters and propagates resolution.
//
// # Basic Usage
//
// Create a graph with [New] and reference vertices by name with [Graph.Vertex].
// Referencing a name creates the vertex on first use, and so does naming it in
// [Vertex.DependsOn]:
//
//	g := depdag.New[string]()
//	_ = g.Vertex("app").DependsOn("lib", "config")
//	_ = g.Vertex("lib").DependsOn("config")
//
//	g.Vertex("config").SetValue("loaded")
//	g.Vertex("lib").SetPredicate(func() bool { return libReady })
//	g.Vertex("app").SetValue(appHandle)
//
//	if g.Vertex("app").IsResolved() {
//	    // app, lib and config all have payloads
//	}
//
// Any comparable type works as a vertex name, including structs and arrays.
//
// # Cycles
//
// [Graph.IsCyclic] reports whether the graph contains a cycle. A graph built
// with [WithFailOnCycle] re-checks after every [Vertex.DependsOn] and returns a
// [*CycleError] matching [ErrCycleDetected] when the new edges close a cycle.
// The offending edges are not rolled back: the graph is left as it was after
// the insertion so callers can inspect it, but it should not be mutated
// further.
//
// [Vertex.AllSupporters] never terminates on a cyclic graph unless the caller
// stops iterating. Check [Graph.IsCyclic] first, or bound the walk.
//
// # Resolution
//
// [Vertex.IsResolved] and [Vertex.HasPayload] are computed on every call.
// Predicate payloads are invoked each time and never cached, so toggling the
// state a predicate observes changes the answer immediately.
//
// # Concurrency
//
// Graph and Vertex are not safe for concurrent use. Writers (vertex creation,
// DependsOn, payload assignment) must be serialized by the caller, typically
// behind a single mutex owned by the embedding application. Concurrent reads
// are fine only while no writer is active.
package depdag
