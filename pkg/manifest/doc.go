// Package manifest reads declarative dependency graphs from TOML, JSON and
// HCL files and builds them into [depdag.Graph] values.
//
// # Schema
//
// A manifest has an optional name, an optional fail_on_cycle policy and a
// list of vertex declarations. Each declaration names a vertex, the vertices
// it depends on, and at most one payload source:
//
//   - payload: a literal value; the vertex is provided
//   - ready_file: a path; the vertex is provided while the file exists
//   - ready_env: a variable name; the vertex is provided while it is non-empty
//
// File and environment payloads are predicates, evaluated again on every
// query. Vertices that only appear in depends_on are created without a
// payload.
//
// TOML:
//
//	name = "build"
//	fail_on_cycle = true
//
//	[[vertex]]
//	name = "app"
//	depends_on = ["lib", "config"]
//	payload = "main.go"
//
//	[[vertex]]
//	name = "lib"
//	ready_file = "build/lib.a"
//
// JSON:
//
//	{
//	  "name": "build",
//	  "vertices": [
//	    {"name": "app", "depends_on": ["lib"], "payload": "main.go"},
//	    {"name": "lib", "ready_env": "LIB_READY"}
//	  ]
//	}
//
// HCL:
//
//	name = "build"
//
//	vertex "app" {
//	  depends_on = ["lib"]
//	  payload    = "main.go"
//	}
//
// # Loading
//
// [Load] picks the format from the file extension, decodes, and validates.
// [Open] additionally builds the graph. Relative ready_file paths are
// resolved against the manifest's directory.
//
// Errors carry codes from pkg/errors: FILE_NOT_FOUND, INVALID_FORMAT,
// INVALID_MANIFEST, and CYCLE_DETECTED when a graph with the fail_on_cycle
// policy closes a cycle during [Manifest.Build].
package manifest
