package depdag

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/dominikbraun/graph"
)

func TestIsCyclic(t *testing.T) {
	tests := []struct {
		name  string
		build func(g *Graph[string])
		want  bool
	}{
		{
			name:  "empty",
			build: func(*Graph[string]) {},
			want:  false,
		},
		{
			name:  "one vertex",
			build: func(g *Graph[string]) { g.MustCreate("a") },
			want:  false,
		},
		{
			name: "linear chain",
			build: func(g *Graph[string]) {
				_ = g.Vertex("a").DependsOn("b")
				_ = g.Vertex("b").DependsOn("c")
			},
			want: false,
		},
		{
			name: "diamond",
			build: func(g *Graph[string]) {
				_ = g.Vertex("a").DependsOn("b")
				_ = g.Vertex("b").DependsOn("c", "d")
				_ = g.Vertex("c").DependsOn("e")
				_ = g.Vertex("d").DependsOn("e")
				_ = g.Vertex("e").DependsOn("f")
			},
			want: false,
		},
		{
			name: "forest",
			build: func(g *Graph[string]) {
				_ = g.Vertex("a").DependsOn("b", "c")
				_ = g.Vertex("x").DependsOn("y")
				_ = g.Vertex("y").DependsOn("c")
			},
			want: false,
		},
		{
			name:  "self reference",
			build: func(g *Graph[string]) { _ = g.Vertex("a").DependsOn("a") },
			want:  true,
		},
		{
			name: "two vertices",
			build: func(g *Graph[string]) {
				_ = g.Vertex("a").DependsOn("b")
				_ = g.Vertex("b").DependsOn("a")
			},
			want: true,
		},
		{
			name: "three vertices",
			build: func(g *Graph[string]) {
				_ = g.Vertex("a").DependsOn("b")
				_ = g.Vertex("b").DependsOn("c")
				_ = g.Vertex("c").DependsOn("a")
			},
			want: true,
		},
		{
			name: "cycle below an acyclic prefix",
			build: func(g *Graph[string]) {
				_ = g.Vertex("root").DependsOn("a", "x")
				_ = g.Vertex("a").DependsOn("b")
				_ = g.Vertex("x").DependsOn("y")
				_ = g.Vertex("y").DependsOn("z")
				_ = g.Vertex("z").DependsOn("x")
			},
			want: true,
		},
		{
			name: "cycle only reachable from a later vertex",
			build: func(g *Graph[string]) {
				_ = g.Vertex("a").DependsOn("b")
				_ = g.Vertex("p").DependsOn("q")
				_ = g.Vertex("q").DependsOn("p")
			},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := New[string]()
			tt.build(g)
			if got := g.IsCyclic(); got != tt.want {
				t.Errorf("IsCyclic() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsCyclicDeepChain(t *testing.T) {
	const depth = 100_000

	g := New[int]()
	for i := range depth - 1 {
		_ = g.Vertex(i).DependsOn(i + 1)
	}
	if g.IsCyclic() {
		t.Fatal("IsCyclic() = true on a long chain")
	}

	_ = g.Vertex(depth - 1).DependsOn(0)
	if !g.IsCyclic() {
		t.Error("IsCyclic() = false after closing the chain")
	}
}

// TestIsCyclicMatchesTopologicalSort compares IsCyclic against an independent
// implementation on random graphs: a topological sort exists iff there is no
// cycle.
func TestIsCyclicMatchesTopologicalSort(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))

	for round := range 200 {
		n := 2 + rng.IntN(12)
		edges := rng.IntN(n * 2)

		g := New[int]()
		oracle := graph.New(graph.IntHash, graph.Directed())
		for i := range n {
			g.Vertex(i)
			if err := oracle.AddVertex(i); err != nil {
				t.Fatalf("oracle AddVertex(%d): %v", i, err)
			}
		}
		for range edges {
			from, to := rng.IntN(n), rng.IntN(n)
			if from == to {
				continue
			}
			_ = g.Vertex(from).DependsOn(to)
			if err := oracle.AddEdge(from, to); err != nil && !errors.Is(err, graph.ErrEdgeAlreadyExists) {
				t.Fatalf("oracle AddEdge(%d, %d): %v", from, to, err)
			}
		}

		_, sortErr := graph.TopologicalSort(oracle)
		want := sortErr != nil
		if got := g.IsCyclic(); got != want {
			t.Errorf("round %d: IsCyclic() = %v, topological sort error = %v", round, got, sortErr)
		}
	}
}
