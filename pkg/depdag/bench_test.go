package depdag

import (
	"strconv"
	"testing"
)

// buildWide adds n/3 vertices, each with two fresh supporters, in the shape
// used to compare the eager cycle policy against the default.
func buildWide(n int, opts ...Option) *Graph[string] {
	g := New[string](opts...)
	for i := range n / 3 {
		name := "node-" + strconv.Itoa(i)
		v := g.MustCreate(name)
		_ = v.DependsOn(name + "-one")
		_ = v.DependsOn(name + "-two")
	}
	return g
}

func BenchmarkDependsOn(b *testing.B) {
	b.Run("default", func(b *testing.B) {
		for b.Loop() {
			buildWide(3000)
		}
	})
	b.Run("fail-on-cycle", func(b *testing.B) {
		for b.Loop() {
			buildWide(3000, WithFailOnCycle())
		}
	})
}

func BenchmarkIsCyclic(b *testing.B) {
	g := buildWide(30000)
	b.ResetTimer()
	for b.Loop() {
		g.IsCyclic()
	}
}

func BenchmarkIsResolved(b *testing.B) {
	g := New[int]()
	for i := range 1000 {
		_ = g.Vertex(i).DependsOn(i + 1)
		g.Vertex(i).SetValue(i)
	}
	g.Vertex(1000).SetValue(1000)
	b.ResetTimer()
	for b.Loop() {
		g.Vertex(0).IsResolved()
	}
}
