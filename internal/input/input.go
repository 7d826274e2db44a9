package input

import (
	"encoding/json"
	"errors"
	"io"
	"strconv"
	"strings"
)

// StdinMarker is the --input value that selects standard input as the JSON
// source in stdin-capable mode.
const StdinMarker = "-"

var (
	// ErrInvalidJSON is returned when --input does not hold valid JSON.
	ErrInvalidJSON = errors.New("Invalid JSON provided for --input.") //nolint:staticcheck

	// ErrStdinRead is returned when --input=- cannot read standard input.
	ErrStdinRead = errors.New("Failed to read from stdin.") //nolint:staticcheck
)

// Field is one free-form --<key>=<value> flag.
type Field struct {
	Key   string
	Value string
}

// BuildStrict assembles a payload in strict mode. raw is the --input value
// (empty when the flag was not given). A JSON object populates the payload
// directly and an array populates it under index keys; other scalars are
// discarded and a literal null is ErrInvalidJSON. Fields are merged afterwards, later keys overwriting earlier ones.
// An empty result is returned as nil, meaning no input.
func BuildStrict(raw string, fields []Field) (map[string]any, error) {
	payload, err := decode(raw)
	if err != nil {
		return nil, err
	}
	payload = merge(payload, fields)
	if len(payload) == 0 {
		return nil, nil
	}
	return payload, nil
}

// BuildFromStdin assembles a payload in stdin-capable mode. When raw is "-"
// the JSON is read from stdin until EOF and trimmed before parsing; this read
// blocks until the stream is closed. The result is never nil.
func BuildFromStdin(raw string, fields []Field, stdin io.Reader) (map[string]any, error) {
	if raw == StdinMarker {
		if stdin == nil {
			return nil, ErrStdinRead
		}
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, ErrStdinRead
		}
		raw = strings.TrimSpace(string(data))
	}

	payload, err := decode(raw)
	if err != nil {
		return nil, err
	}
	payload = merge(payload, fields)
	if payload == nil {
		payload = map[string]any{}
	}
	return payload, nil
}

func decode(raw string) (map[string]any, error) {
	if raw == "" {
		return nil, nil
	}

	var v any
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return nil, ErrInvalidJSON
	}

	switch value := v.(type) {
	case nil:
		// A literal null cannot be told apart from a failed parse.
		return nil, ErrInvalidJSON
	case map[string]any:
		return value, nil
	case []any:
		payload := make(map[string]any, len(value))
		for i, item := range value {
			payload[strconv.Itoa(i)] = item
		}
		return payload, nil
	default:
		return nil, nil
	}
}

func merge(payload map[string]any, fields []Field) map[string]any {
	if len(fields) == 0 {
		return payload
	}
	if payload == nil {
		payload = make(map[string]any, len(fields))
	}
	for _, f := range fields {
		payload[f.Key] = f.Value
	}
	return payload
}
