// Package pkg provides the libraries behind the depdag tool.
//
// # Overview
//
// depdag records which things depend on which, attaches an optional payload
// to each of them, and answers two questions: does the graph contain a cycle,
// and is a given vertex resolved (provided, with everything it transitively
// depends on also provided). The pkg directory is organized as:
//
//  1. [depdag] - the generic graph: vertices, edges, payloads, cycle checks
//  2. [manifest] - TOML, JSON and HCL declarations that build graphs
//  3. [query] - named read-only operations for dynamic callers such as the CLI
//  4. [errors] - error codes shared by the upper layers
//  5. [observability] - hooks for load, query and cycle-check events
//  6. [buildinfo] - version information injected at build time
//
// # Data Flow
//
//	manifest file (.toml / .json / .hcl)
//	         ↓
//	    [manifest] package (decode, validate, build)
//	         ↓
//	    [depdag] package (graph + resolution)
//	         ↓
//	    [query] package (named operations)
//
// # Quick Start
//
//	g, _, err := manifest.Open(ctx, "release.toml")
//	if err != nil {
//	    return err
//	}
//	deploy, _ := g.Lookup("deploy")
//	fmt.Println(deploy.IsResolved())
//
// The core graph is usable on its own:
//
//	g := depdag.New[string]()
//	_ = g.Vertex("app").DependsOn("lib")
//	g.Vertex("lib").SetValue("v1.2.0")
//	g.Vertex("app").SetValue("main")
//	fmt.Println(g.Vertex("app").IsResolved()) // true
//
// [depdag]: https://pkg.go.dev/github.com/matzehuels/depdag/pkg/depdag
// [manifest]: https://pkg.go.dev/github.com/matzehuels/depdag/pkg/manifest
// [query]: https://pkg.go.dev/github.com/matzehuels/depdag/pkg/query
// [errors]: https://pkg.go.dev/github.com/matzehuels/depdag/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/depdag/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/depdag/pkg/buildinfo
package pkg
