package manifest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"

	"github.com/matzehuels/depdag/pkg/errors"
)

// Format identifies a manifest encoding.
type Format string

const (
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
	FormatHCL  Format = "hcl"
)

// Formats lists the supported formats.
var Formats = []Format{FormatTOML, FormatJSON, FormatHCL}

// ParseFormat converts a format name such as "toml" into a Format.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimPrefix(s, ".")))
	if !slices.Contains(Formats, f) {
		return "", errors.New(errors.ErrCodeInvalidFormat, "unsupported manifest format %q (want toml, json or hcl)", s)
	}
	return f, nil
}

// FormatFromPath detects the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	ext := filepath.Ext(path)
	if ext == "" {
		return "", errors.New(errors.ErrCodeInvalidFormat, "cannot detect manifest format of %s: no file extension", path)
	}
	return ParseFormat(ext)
}

// Decode reads a manifest in the given format from r and validates it.
// Unknown keys are rejected in every format.
func Decode(r io.Reader, format Format) (*Manifest, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidManifest, err, "read manifest")
	}
	return decode(data, format, "manifest."+string(format))
}

func decode(data []byte, format Format, filename string) (*Manifest, error) {
	var (
		m   *Manifest
		err error
	)
	switch format {
	case FormatTOML:
		m, err = decodeTOML(data)
	case FormatJSON:
		m, err = decodeJSON(data)
	case FormatHCL:
		m, err = decodeHCL(data, filename)
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported manifest format %q", format)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidManifest, err, "decode %s", filename)
	}
	if len(m.Vertices) == 0 {
		m.Vertices = nil
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

func decodeTOML(data []byte) (*Manifest, error) {
	var m Manifest
	md, err := toml.Decode(string(data), &m)
	if err != nil {
		return nil, err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("unknown key %q", undecoded[0].String())
	}
	return &m, nil
}

func decodeJSON(data []byte) (*Manifest, error) {
	var m Manifest
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&m); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("unexpected data after the manifest object")
	}
	return &m, nil
}

// hclFile mirrors Manifest with HCL tags; vertex names are block labels.
type hclFile struct {
	Name        string      `hcl:"name,optional"`
	FailOnCycle bool        `hcl:"fail_on_cycle,optional"`
	Vertices    []hclVertex `hcl:"vertex,block"`
}

// hclVertex keeps payload as an expression so that numbers and bools are
// accepted and stored in their string form.
type hclVertex struct {
	Name      string         `hcl:"name,label"`
	DependsOn []string       `hcl:"depends_on,optional"`
	Payload   hcl.Expression `hcl:"payload,optional"`
	ReadyFile string         `hcl:"ready_file,optional"`
	ReadyEnv  string         `hcl:"ready_env,optional"`
}

func decodeHCL(data []byte, filename string) (*Manifest, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(data, filename)
	if diags.HasErrors() {
		return nil, diags
	}

	var parsed hclFile
	if diags := gohcl.DecodeBody(file.Body, nil, &parsed); diags.HasErrors() {
		return nil, diags
	}

	m := &Manifest{
		Name:        parsed.Name,
		FailOnCycle: parsed.FailOnCycle,
		Vertices:    make([]Vertex, 0, len(parsed.Vertices)),
	}
	for _, v := range parsed.Vertices {
		payload, err := hclPayload(v.Payload)
		if err != nil {
			return nil, fmt.Errorf("vertex %q: %w", v.Name, err)
		}
		m.Vertices = append(m.Vertices, Vertex{
			Name:      v.Name,
			DependsOn: v.DependsOn,
			Payload:   payload,
			ReadyFile: v.ReadyFile,
			ReadyEnv:  v.ReadyEnv,
		})
	}
	return m, nil
}

// hclPayload evaluates a payload expression. A missing or null payload
// yields nil; primitives are converted to strings.
func hclPayload(expr hcl.Expression) (*string, error) {
	if expr == nil {
		return nil, nil
	}
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return nil, diags
	}
	if val.IsNull() {
		return nil, nil
	}
	if !val.IsWhollyKnown() || !val.Type().IsPrimitiveType() {
		return nil, fmt.Errorf("payload must be a string, number or bool, got %s", val.Type().FriendlyName())
	}
	str, err := convert.Convert(val, cty.String)
	if err != nil {
		return nil, fmt.Errorf("payload: %w", err)
	}
	s := str.AsString()
	return &s, nil
}
