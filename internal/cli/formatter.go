package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
	"gopkg.in/yaml.v3"

	pkgstrings "ability/pkg/strings"
)

// Record is one row of formatted output: field name to display string, in
// column order.
type Record = orderedmap.OrderedMap[string, string]

// FormatterOptions configures a Formatter.
type FormatterOptions struct {
	// Format is the selected output format. Empty means table.
	Format OutputFormat

	// Field prints only this field's value, one line per record.
	Field string

	// Fields selects and orders the columns. Empty means Defaults.
	Fields []string

	// Defaults are the columns shown when Fields is empty. Empty means every
	// field of the record.
	Defaults []string

	// Available lists the field names the records may carry. Field and
	// Fields are checked against it. Empty means the keys of the first record.
	Available []string

	// IDField is the column printed by the ids format. Empty means the first
	// column.
	IDField string

	// Truncate caps the width of these columns in table output.
	Truncate []string
}

// Formatter renders records in the selected output format.
type Formatter struct {
	out     io.Writer
	options FormatterOptions
}

// NewFormatter creates a formatter writing to out.
func NewFormatter(out io.Writer, options FormatterOptions) *Formatter {
	if options.Format == "" {
		options.Format = OutputFormatTable
	}
	return &Formatter{out: out, options: options}
}

// DisplayItems renders a list of records.
func (f *Formatter) DisplayItems(records []*Record) error {
	columns, err := f.columns(records)
	if err != nil {
		return err
	}

	if f.options.Field != "" {
		return f.displayField(records, false)
	}

	switch f.options.Format {
	case OutputFormatCount:
		_, err := fmt.Fprintln(f.out, len(records))
		return err
	case OutputFormatIDs:
		return f.displayIDs(records, columns)
	case OutputFormatJSON:
		return f.writeJSONList(records, columns)
	case OutputFormatYAML:
		return f.writeYAML(yamlSequence(records, columns))
	case OutputFormatCSV:
		_, err := fmt.Fprintln(f.out, renderCSV(columns, rows(records, columns, nil)))
		return err
	case OutputFormatTable:
		_, err := fmt.Fprintln(f.out, renderTable(columns, rows(records, columns, f.truncated(columns))))
		return err
	default:
		return fmt.Errorf("unsupported output format: %s", f.options.Format)
	}
}

// DisplayItem renders a single record. Table and CSV output show one
// Field/Value row per column.
func (f *Formatter) DisplayItem(record *Record) error {
	records := []*Record{record}
	columns, err := f.columns(records)
	if err != nil {
		return err
	}

	if f.options.Field != "" {
		return f.displayField(records, true)
	}

	switch f.options.Format {
	case OutputFormatJSON:
		data, err := jsonObject(record, columns)
		if err != nil {
			return err
		}
		return f.writeIndentedJSON(data)
	case OutputFormatYAML:
		return f.writeYAML(yamlMapping(record, columns))
	case OutputFormatCSV:
		_, err := fmt.Fprintln(f.out, renderCSV(verticalHeader, verticalRows(record, columns)))
		return err
	case OutputFormatTable:
		_, err := fmt.Fprintln(f.out, renderTable(verticalHeader, verticalRows(record, columns)))
		return err
	default:
		return fmt.Errorf("unsupported output format: %s", f.options.Format)
	}
}

func (f *Formatter) available(records []*Record) []string {
	if len(f.options.Available) > 0 {
		return f.options.Available
	}
	if len(records) > 0 {
		return keys(records[0])
	}
	return f.options.Defaults
}

func (f *Formatter) columns(records []*Record) ([]string, error) {
	available := f.available(records)

	if f.options.Field != "" {
		if !slices.Contains(available, f.options.Field) {
			return nil, &InvalidFieldError{Field: f.options.Field}
		}
		return []string{f.options.Field}, nil
	}

	if len(f.options.Fields) > 0 {
		for _, field := range f.options.Fields {
			if !slices.Contains(available, field) {
				return nil, &InvalidFieldError{Field: field}
			}
		}
		return f.options.Fields, nil
	}

	if len(f.options.Defaults) > 0 {
		return f.options.Defaults, nil
	}
	return available, nil
}

// displayField prints the raw value of one field per record. JSON and YAML
// encode the values instead: a list for many records, a scalar for one.
func (f *Formatter) displayField(records []*Record, single bool) error {
	values := make([]string, len(records))
	for i, r := range records {
		values[i], _ = r.Get(f.options.Field)
	}

	switch f.options.Format {
	case OutputFormatJSON:
		var v any = values
		if single {
			v = values[0]
		}
		data, err := marshalNoEscape(v)
		if err != nil {
			return err
		}
		return f.writeIndentedJSON(data)
	case OutputFormatYAML:
		var v any = values
		if single {
			v = values[0]
		}
		return f.writeYAMLValue(v)
	case OutputFormatCount:
		_, err := fmt.Fprintln(f.out, len(records))
		return err
	default:
		for _, v := range values {
			if _, err := fmt.Fprintln(f.out, v); err != nil {
				return err
			}
		}
		return nil
	}
}

func (f *Formatter) displayIDs(records []*Record, columns []string) error {
	idField := f.options.IDField
	if idField == "" && len(columns) > 0 {
		idField = columns[0]
	}

	ids := make([]string, 0, len(records))
	for _, r := range records {
		v, _ := r.Get(idField)
		ids = append(ids, v)
	}
	_, err := fmt.Fprintln(f.out, strings.Join(ids, " "))
	return err
}

func (f *Formatter) truncated(columns []string) map[int]int {
	if len(f.options.Truncate) == 0 {
		return nil
	}
	limits := make(map[int]int)
	for i, c := range columns {
		if slices.Contains(f.options.Truncate, c) {
			limits[i] = pkgstrings.DefaultCellMaxLen
		}
	}
	return limits
}

func (f *Formatter) writeJSONList(records []*Record, columns []string) error {
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, r := range records {
		if i > 0 {
			buf.WriteByte(',')
		}
		obj, err := jsonObject(r, columns)
		if err != nil {
			return err
		}
		buf.Write(obj)
	}
	buf.WriteByte(']')
	return f.writeIndentedJSON(buf.Bytes())
}

func (f *Formatter) writeIndentedJSON(data []byte) error {
	var out bytes.Buffer
	if err := json.Indent(&out, data, "", "  "); err != nil {
		return fmt.Errorf("failed to format JSON: %w", err)
	}
	out.WriteByte('\n')
	_, err := f.out.Write(out.Bytes())
	return err
}

func (f *Formatter) writeYAML(node *yaml.Node) error {
	enc := yaml.NewEncoder(f.out)
	enc.SetIndent(2)
	if err := enc.Encode(node); err != nil {
		return fmt.Errorf("failed to convert to YAML: %w", err)
	}
	return enc.Close()
}

func (f *Formatter) writeYAMLValue(v any) error {
	enc := yaml.NewEncoder(f.out)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to convert to YAML: %w", err)
	}
	return enc.Close()
}

// jsonObject encodes the selected columns of r as a JSON object in column
// order.
func jsonObject(r *Record, columns []string) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, c := range columns {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := marshalNoEscape(c)
		if err != nil {
			return nil, err
		}
		v, _ := r.Get(c)
		value, err := marshalNoEscape(v)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
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

func yamlMapping(r *Record, columns []string) *yaml.Node {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, c := range columns {
		v, _ := r.Get(c)
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: c},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v},
		)
	}
	return node
}

func yamlSequence(records []*Record, columns []string) *yaml.Node {
	node := &yaml.Node{Kind: yaml.SequenceNode}
	for _, r := range records {
		node.Content = append(node.Content, yamlMapping(r, columns))
	}
	return node
}

func keys(r *Record) []string {
	out := make([]string, 0, r.Len())
	for pair := r.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, pair.Key)
	}
	return out
}

func rows(records []*Record, columns []string, limits map[int]int) [][]string {
	out := make([][]string, 0, len(records))
	for _, r := range records {
		row := make([]string, len(columns))
		for i, c := range columns {
			row[i], _ = r.Get(c)
			if limit, ok := limits[i]; ok {
				row[i] = pkgstrings.TruncateCell(row[i], limit)
			}
		}
		out = append(out, row)
	}
	return out
}

var verticalHeader = []string{"Field", "Value"}

func verticalRows(r *Record, columns []string) [][]string {
	out := make([][]string, 0, len(columns))
	for _, c := range columns {
		v, _ := r.Get(c)
		out = append(out, []string{c, v})
	}
	return out
}
