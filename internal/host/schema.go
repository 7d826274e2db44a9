package host

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"

	pkgstrings "ability/pkg/strings"
)

// schema is a compiled JSON schema together with its raw document, which is
// consulted for defaults and property types.
type schema struct {
	compiled *jsonschema.Schema
	raw      map[string]any
}

// compileSchema compiles a schema value taken from a definition. A nil value
// means the ability declares no schema and yields a nil *schema.
func compileSchema(name string, value any) (*schema, error) {
	if value == nil {
		return nil, nil
	}

	doc, err := toJSONValue(value)
	if err != nil {
		return nil, fmt.Errorf("schema is not JSON-serializable: %w", err)
	}

	c := jsonschema.NewCompiler()
	url := "mem://ability/" + name + ".json"
	if err := c.AddResource(url, doc); err != nil {
		return nil, fmt.Errorf("invalid schema: %w", err)
	}
	compiled, err := c.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("invalid schema: %w", err)
	}

	raw, _ := value.(map[string]any)
	if raw == nil {
		// Normalize other map shapes through JSON.
		var m map[string]any
		if data, err := json.Marshal(value); err == nil && json.Unmarshal(data, &m) == nil {
			raw = m
		}
	}
	return &schema{compiled: compiled, raw: raw}, nil
}

// validate checks instance against the schema. The error message lists each
// failing location on its own clause.
func (s *schema) validate(instance any) error {
	doc, err := toJSONValue(instance)
	if err != nil {
		return fmt.Errorf("value is not JSON-serializable: %v", err)
	}
	if err := s.compiled.Validate(doc); err != nil {
		return fmt.Errorf("%s", validationReason(err))
	}
	return nil
}

// validationReason flattens a jsonschema error into "at '/x': reason" clauses.
func validationReason(err error) string {
	var reasons []string
	for _, line := range strings.Split(err.Error(), "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "- ") {
			reasons = append(reasons, strings.TrimPrefix(line, "- "))
		}
	}
	if len(reasons) == 0 {
		return err.Error()
	}
	return strings.Join(reasons, "; ")
}

// toJSONValue round-trips v through encoding/json so the validator sees only
// the value types it produces itself.
func toJSONValue(v any) (any, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return jsonschema.UnmarshalJSON(bytes.NewReader(data))
}

// defaultValue returns the schema's top-level default.
func (s *schema) defaultValue() (any, bool) {
	if s == nil || s.raw == nil {
		return nil, false
	}
	v, ok := s.raw["default"]
	return v, ok
}

// normalize fills absent top-level properties with their declared defaults and
// coerces string values to the declared scalar type. Strings that do not
// parse are left for validation to reject. input is not modified.
func (s *schema) normalize(input map[string]any) map[string]any {
	out := make(map[string]any, len(input))
	for k, v := range input {
		out[k] = v
	}
	if s == nil || s.raw == nil {
		return out
	}

	properties, _ := s.raw["properties"].(map[string]any)
	for name, p := range properties {
		prop, ok := p.(map[string]any)
		if !ok {
			continue
		}

		value, present := out[name]
		if !present {
			if def, ok := prop["default"]; ok {
				out[name] = def
			}
			continue
		}

		if str, ok := value.(string); ok {
			out[name] = coerce(str, scalarType(prop["type"]))
		}
	}
	return out
}

// scalarType returns the first non-null type named by a "type" keyword.
func scalarType(t any) string {
	switch v := t.(type) {
	case string:
		return v
	case []any:
		for _, item := range v {
			if s, ok := item.(string); ok && s != "null" {
				return s
			}
		}
	}
	return ""
}

func coerce(s, typ string) any {
	switch typ {
	case "integer":
		if i, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64); err == nil {
			return i
		}
	case "number":
		if f, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
			return f
		}
	case "boolean":
		if b, err := pkgstrings.ParseBool(s); err == nil {
			return b
		}
	}
	return s
}
