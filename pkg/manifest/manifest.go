package manifest

import (
	"encoding/json"
	"fmt"

	"github.com/cespare/xxhash/v2"

	"github.com/matzehuels/depdag/pkg/errors"
)

// Manifest is a decoded graph declaration.
type Manifest struct {
	Name        string   `toml:"name,omitempty" json:"name,omitempty"`
	FailOnCycle bool     `toml:"fail_on_cycle,omitempty" json:"fail_on_cycle,omitempty"`
	Vertices    []Vertex `toml:"vertex" json:"vertices,omitempty"`

	// Dir is the directory relative ready_file paths are resolved against.
	// Load sets it to the manifest's directory.
	Dir string `toml:"-" json:"-"`
}

// Vertex declares one vertex, its direct supporters and its payload source.
type Vertex struct {
	Name      string   `toml:"name" json:"name"`
	DependsOn []string `toml:"depends_on,omitempty" json:"depends_on,omitempty"`
	Payload   *string  `toml:"payload" json:"payload,omitempty"`
	ReadyFile string   `toml:"ready_file,omitempty" json:"ready_file,omitempty"`
	ReadyEnv  string   `toml:"ready_env,omitempty" json:"ready_env,omitempty"`
}

// PayloadSource names the declared payload source: "payload", "ready_file",
// "ready_env", or "" when none is declared.
func (v Vertex) PayloadSource() string {
	switch {
	case v.Payload != nil:
		return "payload"
	case v.ReadyFile != "":
		return "ready_file"
	case v.ReadyEnv != "":
		return "ready_env"
	}
	return ""
}

// Validate checks names, duplicate declarations and payload sources.
// Errors have code INVALID_MANIFEST.
func (m *Manifest) Validate() error {
	seen := make(map[string]struct{}, len(m.Vertices))
	for i, v := range m.Vertices {
		if err := errors.ValidateVertexName(v.Name); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidManifest, err, "vertex #%d", i+1)
		}
		if _, dup := seen[v.Name]; dup {
			return errors.New(errors.ErrCodeInvalidManifest, "vertex %q declared more than once", v.Name)
		}
		seen[v.Name] = struct{}{}

		for _, dep := range v.DependsOn {
			if err := errors.ValidateVertexName(dep); err != nil {
				return errors.Wrap(errors.ErrCodeInvalidManifest, err, "vertex %q depends_on", v.Name)
			}
		}

		sources := 0
		if v.Payload != nil {
			sources++
		}
		if v.ReadyFile != "" {
			sources++
			if err := errors.ValidatePath(v.ReadyFile); err != nil {
				return errors.Wrap(errors.ErrCodeInvalidManifest, err, "vertex %q ready_file", v.Name)
			}
		}
		if v.ReadyEnv != "" {
			sources++
			if err := errors.ValidateEnvName(v.ReadyEnv); err != nil {
				return errors.Wrap(errors.ErrCodeInvalidManifest, err, "vertex %q ready_env", v.Name)
			}
		}
		if sources > 1 {
			return errors.New(errors.ErrCodeInvalidManifest,
				"vertex %q declares more than one of payload, ready_file, ready_env", v.Name)
		}
	}
	return nil
}

// Digest returns a stable 64-bit hex digest of the manifest content. The
// digest does not depend on the file format or on Dir, so the same graph
// written in TOML and JSON digests identically.
func (m *Manifest) Digest() string {
	data, err := json.Marshal(m)
	if err != nil {
		// Manifest only holds strings, bools and slices of them.
		panic(fmt.Sprintf("manifest: marshal for digest: %v", err))
	}
	return fmt.Sprintf("%016x", xxhash.Sum64(data))
}

// EdgeCount returns the number of depends_on entries across declarations,
// counting repeated names once per vertex.
func (m *Manifest) EdgeCount() int {
	n := 0
	for _, v := range m.Vertices {
		seen := make(map[string]struct{}, len(v.DependsOn))
		for _, dep := range v.DependsOn {
			seen[dep] = struct{}{}
		}
		n += len(seen)
	}
	return n
}
