package ability

import (
	"bytes"
	"encoding/json"
	"fmt"

	orderedmap "github.com/wk8/go-ordered-map/v2"
	"gopkg.in/yaml.v3"
)

// Meta is an open, insertion-ordered map of string keys to JSON values.
// Typed getters return "absent" rather than failing when a key is missing or
// holds a value of another type. The zero value is an empty map.
type Meta struct {
	values *orderedmap.OrderedMap[string, any]
}

// Len returns the number of keys.
func (m Meta) Len() int {
	if m.values == nil {
		return 0
	}
	return m.values.Len()
}

// Get returns the raw value stored under key.
func (m Meta) Get(key string) (any, bool) {
	if m.values == nil {
		return nil, false
	}
	return m.values.Get(key)
}

// Set stores value under key, appending the key if it is new.
func (m *Meta) Set(key string, value any) {
	if m.values == nil {
		m.values = orderedmap.New[string, any]()
	}
	m.values.Set(key, value)
}

// Keys returns the keys in insertion order.
func (m Meta) Keys() []string {
	if m.values == nil {
		return nil
	}
	keys := make([]string, 0, m.values.Len())
	for pair := m.values.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

// Bool returns the boolean stored under key, or nil when the key is absent or
// not a boolean.
func (m Meta) Bool(key string) *bool {
	v, ok := m.Get(key)
	if !ok {
		return nil
	}
	b, ok := v.(bool)
	if !ok {
		return nil
	}
	return &b
}

// Map returns the object stored under key.
func (m Meta) Map(key string) (map[string]any, bool) {
	v, ok := m.Get(key)
	if !ok {
		return nil, false
	}
	switch obj := v.(type) {
	case map[string]any:
		return obj, true
	case Meta:
		out := make(map[string]any, obj.Len())
		for _, k := range obj.Keys() {
			out[k], _ = obj.Get(k)
		}
		return out, true
	default:
		return nil, false
	}
}

// MarshalJSON encodes the map in insertion order; an empty map is "{}".
// Strings are not HTML-escaped.
func (m Meta) MarshalJSON() ([]byte, error) {
	if m.Len() == 0 {
		return []byte("{}"), nil
	}

	var out bytes.Buffer
	out.WriteByte('{')
	for pair := m.values.Oldest(); pair != nil; pair = pair.Next() {
		if pair != m.values.Oldest() {
			out.WriteByte(',')
		}
		key, err := marshalNoEscape(pair.Key)
		if err != nil {
			return nil, err
		}
		value, err := marshalNoEscape(pair.Value)
		if err != nil {
			return nil, fmt.Errorf("meta value %q: %w", pair.Key, err)
		}
		out.Write(key)
		out.WriteByte(':')
		out.Write(value)
	}
	out.WriteByte('}')
	return out.Bytes(), nil
}

func marshalNoEscape(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// UnmarshalJSON decodes a JSON object, keeping key order. JSON null leaves the
// map empty.
func (m *Meta) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*m = Meta{}
		return nil
	}
	values := orderedmap.New[string, any]()
	if err := values.UnmarshalJSON(data); err != nil {
		return fmt.Errorf("meta must be an object: %w", err)
	}
	m.values = values
	return nil
}

// UnmarshalYAML decodes a YAML mapping, keeping key order. Nested values are
// decoded as plain maps and slices.
func (m *Meta) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode && node.Tag == "!!null" {
		*m = Meta{}
		return nil
	}
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("meta must be a mapping, got %s at line %d", kindName(node.Kind), node.Line)
	}

	values := orderedmap.New[string, any]()
	for i := 0; i+1 < len(node.Content); i += 2 {
		var key string
		if err := node.Content[i].Decode(&key); err != nil {
			return fmt.Errorf("meta key at line %d: %w", node.Content[i].Line, err)
		}
		var value any
		if err := node.Content[i+1].Decode(&value); err != nil {
			return fmt.Errorf("meta value %q: %w", key, err)
		}
		values.Set(key, value)
	}
	m.values = values
	return nil
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "unknown"
	}
}
