package manifest

import (
	"os"
	"path/filepath"

	"github.com/matzehuels/depdag/pkg/depdag"
	"github.com/matzehuels/depdag/pkg/errors"
)

// Build creates a graph from the declarations, in order. The manifest's
// fail_on_cycle policy is applied in addition to opts.
//
// When the policy is on, the first declaration that closes a cycle aborts the
// build with a CYCLE_DETECTED error. The partially built graph is returned
// with the error; it keeps the offending edges and is cyclic.
func (m *Manifest) Build(opts ...depdag.Option) (*depdag.Graph[string], error) {
	if m.FailOnCycle {
		opts = append(opts, depdag.WithFailOnCycle())
	}
	g := depdag.New[string](opts...)

	for _, decl := range m.Vertices {
		v := g.Vertex(decl.Name)
		v.SetPayload(m.payload(decl))
		if len(decl.DependsOn) == 0 {
			continue
		}
		if err := v.DependsOn(decl.DependsOn...); err != nil {
			return g, errors.FromGraphError(err, "vertex %q", decl.Name)
		}
	}
	return g, nil
}

// payload converts the declared payload source into a depdag payload.
func (m *Manifest) payload(decl Vertex) depdag.Payload {
	switch {
	case decl.Payload != nil:
		return depdag.ValueOf(*decl.Payload)
	case decl.ReadyFile != "":
		return depdag.PredicateOf(fileExists(m.resolvePath(decl.ReadyFile)))
	case decl.ReadyEnv != "":
		return depdag.PredicateOf(envSet(decl.ReadyEnv))
	}
	return depdag.NoPayload()
}

func (m *Manifest) resolvePath(path string) string {
	if m.Dir == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(m.Dir, path)
}

func fileExists(path string) func() bool {
	return func() bool {
		_, err := os.Stat(path)
		return err == nil
	}
}

func envSet(name string) func() bool {
	return func() bool {
		return os.Getenv(name) != ""
	}
}
