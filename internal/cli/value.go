package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/davecgh/go-spew/spew"
	"sigs.k8s.io/yaml"
)

// valueDumper renders var_export output. Keys are sorted and addresses
// omitted so the dump is stable across runs.
var valueDumper = spew.ConfigState{
	Indent:                  "  ",
	SortKeys:                true,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
}

// WriteValue renders an arbitrary result value, such as the output of an
// ability run, in one of RunFormats.
func WriteValue(w io.Writer, format OutputFormat, v any) error {
	switch format {
	case OutputFormatJSON:
		return writeJSONValue(w, v)
	case OutputFormatYAML:
		data, err := yaml.Marshal(v)
		if err != nil {
			return fmt.Errorf("failed to format as YAML: %w", err)
		}
		_, err = w.Write(data)
		return err
	case OutputFormatVarExport:
		valueDumper.Fdump(w, v)
		return nil
	default:
		return &UnsupportedFormatError{Format: string(format), Valid: RunFormats}
	}
}

func writeJSONValue(w io.Writer, v any) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to format as JSON: %w", err)
	}
	_, err := w.Write(buf.Bytes())
	return err
}
