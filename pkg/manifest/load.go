package manifest

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/matzehuels/depdag/pkg/depdag"
	"github.com/matzehuels/depdag/pkg/errors"
	"github.com/matzehuels/depdag/pkg/observability"
)

// Load reads and validates the manifest at path. The format is detected
// from the file extension, and Dir is set to the manifest's directory.
func Load(ctx context.Context, path string) (*Manifest, error) {
	return LoadFormat(ctx, path, "")
}

// LoadFormat is like Load but decodes the file as format regardless of its
// extension. An empty format falls back to extension detection.
func LoadFormat(ctx context.Context, path string, format Format) (m *Manifest, err error) {
	hooks := observability.Manifest()
	start := time.Now()
	hooks.OnLoadStart(ctx, path)
	defer func() {
		n := 0
		if m != nil {
			n = len(m.Vertices)
		}
		hooks.OnLoadComplete(ctx, path, n, time.Since(start), err)
	}()

	if format == "" {
		if format, err = FormatFromPath(path); err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "manifest %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidManifest, err, "read %s", path)
	}

	m, err = decode(data, format, path)
	if err != nil {
		return nil, err
	}
	m.Dir = filepath.Dir(path)
	return m, nil
}

// Open loads the manifest at path and builds its graph. A build error is
// returned together with the partial graph, as with [Manifest.Build].
func Open(ctx context.Context, path string, opts ...depdag.Option) (*depdag.Graph[string], *Manifest, error) {
	m, err := Load(ctx, path)
	if err != nil {
		return nil, nil, err
	}
	g, err := m.Build(opts...)
	return g, m, err
}
