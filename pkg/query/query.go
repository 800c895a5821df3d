// Package query runs named read-only operations against a string-keyed
// dependency graph.
//
// It is the dynamic surface of the tool: operation names arrive from the
// command line, so a misspelled operation must fail loudly rather than be
// mistaken for a vertex name. Run never creates vertices. Operations that
// take a vertex look it up and fail with VERTEX_NOT_FOUND when it is missing.
//
//	res, err := query.Run(ctx, g, "is-resolved", "app")
//	if errors.Is(err, errors.ErrCodeUnknownOperation) {
//	    // typo in the operation name
//	}
//	fmt.Println(res)
package query

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/matzehuels/depdag/pkg/depdag"
	"github.com/matzehuels/depdag/pkg/errors"
	"github.com/matzehuels/depdag/pkg/observability"
)

// Graph is the graph type queries run against.
type Graph = depdag.Graph[string]

// Result is the outcome of an operation. Value is a bool, an int or a
// []string depending on the operation.
type Result struct {
	Operation string
	Vertex    string // empty for whole-graph operations
	Value     any
}

// String formats the value for display: booleans and counts as-is, name
// lists one per line.
func (r Result) String() string {
	switch v := r.Value.(type) {
	case []string:
		return strings.Join(v, "\n")
	default:
		return fmt.Sprint(v)
	}
}

type arity int

const (
	noArgs arity = iota
	oneName
)

type operation struct {
	help  string
	arity arity
	run   func(g *Graph, name string) (any, error)
}

var operations = map[string]operation{
	"is-cyclic": {
		help: "report whether the graph contains a cycle",
		run:  func(g *Graph, _ string) (any, error) { return g.IsCyclic(), nil },
	},
	"size": {
		help: "count the vertices",
		run:  func(g *Graph, _ string) (any, error) { return g.Len(), nil },
	},
	"vertices": {
		help: "list vertex names in creation order",
		run:  func(g *Graph, _ string) (any, error) { return g.Names(), nil },
	},
	"unresolved": {
		help: "list vertices that are not resolved",
		run:  unresolved,
	},
	"contains": {
		help:  "report whether a vertex exists",
		arity: oneName,
		run:   func(g *Graph, name string) (any, error) { return g.Contains(name), nil },
	},
	"has-payload": {
		help:  "report whether a vertex has a payload",
		arity: oneName,
		run: withVertex(func(_ *Graph, v *depdag.Vertex[string]) (any, error) {
			return v.HasPayload(), nil
		}),
	},
	"is-resolved": {
		help:  "report whether a vertex and all its supporters have payloads",
		arity: oneName,
		run:   withVertex(isResolved),
	},
	"direct-supporters": {
		help:  "list the vertices a vertex depends on directly",
		arity: oneName,
		run: withVertex(func(_ *Graph, v *depdag.Vertex[string]) (any, error) {
			return depdag.VertexNames(v.DirectSupporters()), nil
		}),
	},
	"all-supporters": {
		help:  "list every transitive supporter, depth first, once per path",
		arity: oneName,
		run:   withVertex(allSupporters),
	},
}

// Operations returns the operation names in sorted order.
func Operations() []string {
	return slices.Sorted(maps.Keys(operations))
}

// Help returns the one-line description of op, or "" if op is unknown.
func Help(op string) string {
	return operations[op].help
}

// NeedsVertex reports whether op takes a vertex argument.
func NeedsVertex(op string) bool {
	return operations[op].arity == oneName
}

// Run executes op against g. Operations that take a vertex expect exactly
// one argument; the others expect none.
func Run(ctx context.Context, g *Graph, op string, args ...string) (res Result, err error) {
	start := time.Now()
	defer func() {
		observability.Query().OnQuery(ctx, op, time.Since(start), err)
	}()

	def, ok := operations[op]
	if !ok {
		return Result{}, errors.New(errors.ErrCodeUnknownOperation,
			"unknown operation %q (available: %s)", op, strings.Join(Operations(), ", "))
	}

	var name string
	switch def.arity {
	case noArgs:
		if len(args) != 0 {
			return Result{}, errors.New(errors.ErrCodeInvalidInput, "%s takes no arguments, got %d", op, len(args))
		}
	case oneName:
		if len(args) != 1 {
			return Result{}, errors.New(errors.ErrCodeInvalidInput, "%s takes exactly one vertex, got %d arguments", op, len(args))
		}
		name = args[0]
	}

	value, err := def.run(g, name)
	if err != nil {
		return Result{}, err
	}
	return Result{Operation: op, Vertex: name, Value: value}, nil
}

// withVertex adapts fn to look up its vertex first. Missing vertices are
// reported, never created.
func withVertex(fn func(g *Graph, v *depdag.Vertex[string]) (any, error)) func(*Graph, string) (any, error) {
	return func(g *Graph, name string) (any, error) {
		v, ok := g.Lookup(name)
		if !ok {
			return nil, errors.New(errors.ErrCodeVertexNotFound, "vertex %q not found", name)
		}
		return fn(g, v)
	}
}

// CheckCycles runs a whole-graph cycle check and reports it to the query hooks.
func CheckCycles(ctx context.Context, g *Graph) bool {
	start := time.Now()
	cyclic := g.IsCyclic()
	observability.Query().OnCycleCheck(ctx, g.Len(), cyclic, time.Since(start))
	return cyclic
}

// requireAcyclic guards traversals that do not terminate on cycles.
func requireAcyclic(g *Graph, op string) error {
	if err := g.EnsureAcyclic(op + " needs an acyclic graph"); err != nil {
		return errors.FromGraphError(err, "%s", op)
	}
	return nil
}

func isResolved(g *Graph, v *depdag.Vertex[string]) (any, error) {
	if err := requireAcyclic(g, "is-resolved"); err != nil {
		return nil, err
	}
	return v.IsResolved(), nil
}

func allSupporters(g *Graph, v *depdag.Vertex[string]) (any, error) {
	if err := requireAcyclic(g, "all-supporters"); err != nil {
		return nil, err
	}
	return depdag.CollectNames(v.AllSupporters()), nil
}

func unresolved(g *Graph, _ string) (any, error) {
	if err := requireAcyclic(g, "unresolved"); err != nil {
		return nil, err
	}
	var names []string
	for v := range g.All() {
		if !v.IsResolved() {
			names = append(names, v.Name())
		}
	}
	return names, nil
}
