package manifest

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/zclconf/go-cty/cty"

	"github.com/matzehuels/depdag/pkg/errors"
)

// Encode writes m to w in the given format. The output decodes back to an
// equal manifest with the same digest.
func Encode(m *Manifest, w io.Writer, format Format) error {
	var err error
	switch format {
	case FormatTOML:
		err = toml.NewEncoder(w).Encode(m)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		err = enc.Encode(m)
	case FormatHCL:
		_, err = w.Write(encodeHCL(m))
	default:
		return errors.New(errors.ErrCodeInvalidFormat, "unsupported manifest format %q", format)
	}
	if err != nil {
		return fmt.Errorf("encode %s: %w", format, err)
	}
	return nil
}

// Export writes m to a file at path, in the format given by its extension.
func Export(m *Manifest, path string) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	return WriteFile(m, path, format)
}

// WriteFile encodes m into a new file at path. The file's close error is
// reported when encoding succeeds.
func WriteFile(m *Manifest, path string, format Format) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()
	return Encode(m, f, format)
}

func encodeHCL(m *Manifest) []byte {
	f := hclwrite.NewEmptyFile()
	body := f.Body()

	if m.Name != "" {
		body.SetAttributeValue("name", cty.StringVal(m.Name))
	}
	if m.FailOnCycle {
		body.SetAttributeValue("fail_on_cycle", cty.True)
	}

	for _, v := range m.Vertices {
		if len(body.Attributes()) > 0 || len(body.Blocks()) > 0 {
			body.AppendNewline()
		}
		vb := body.AppendNewBlock("vertex", []string{v.Name}).Body()
		if len(v.DependsOn) > 0 {
			deps := make([]cty.Value, len(v.DependsOn))
			for i, d := range v.DependsOn {
				deps[i] = cty.StringVal(d)
			}
			vb.SetAttributeValue("depends_on", cty.ListVal(deps))
		}
		switch {
		case v.Payload != nil:
			vb.SetAttributeValue("payload", cty.StringVal(*v.Payload))
		case v.ReadyFile != "":
			vb.SetAttributeValue("ready_file", cty.StringVal(v.ReadyFile))
		case v.ReadyEnv != "":
			vb.SetAttributeValue("ready_env", cty.StringVal(v.ReadyEnv))
		}
	}
	return f.Bytes()
}
