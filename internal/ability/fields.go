package ability

import (
	"bytes"
	"encoding/json"
	"slices"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	pkgstrings "ability/pkg/strings"
)

// Record is one formatted row: field name to display string, in column order.
type Record = orderedmap.OrderedMap[string, string]

// Ability field names.
const (
	FieldName         = "name"
	FieldLabel        = "label"
	FieldCategory     = "category"
	FieldDescription  = "description"
	FieldInputSchema  = "input_schema"
	FieldOutputSchema = "output_schema"
	FieldReadOnly     = "readonly"
	FieldDestructive  = "destructive"
	FieldIdempotent   = "idempotent"
	FieldShowInREST   = "show_in_rest"
)

// Category field names.
const (
	FieldSlug = "slug"
	FieldMeta = "meta"
)

// DefaultFields are always present on ability records.
var DefaultFields = []string{FieldName, FieldLabel, FieldCategory, FieldDescription}

// OptionalFields may be requested on list records through --field or --fields.
var OptionalFields = []string{FieldReadOnly, FieldDestructive, FieldIdempotent, FieldShowInREST}

// DetailFields is the full field set of a single ability record. It contains
// every list field, so any list column can also be selected on get.
var DetailFields = []string{
	FieldName, FieldLabel, FieldCategory, FieldDescription,
	FieldInputSchema, FieldOutputSchema,
	FieldReadOnly, FieldDestructive, FieldIdempotent, FieldShowInREST,
}

// CategoryListFields are shown by default when listing categories.
var CategoryListFields = []string{FieldSlug, FieldLabel, FieldDescription}

// CategoryFields is the full field set of a category record.
var CategoryFields = []string{FieldSlug, FieldLabel, FieldDescription, FieldMeta}

// ListRecord shapes a for list output: the default fields plus whichever of
// the optional fields appear in requested. Unknown names in requested are
// ignored here; the formatter reports them.
func ListRecord(a *Ability, requested []string) *Record {
	r := orderedmap.New[string, string]()
	for _, field := range DefaultFields {
		r.Set(field, abilityField(a, field))
	}
	for _, field := range OptionalFields {
		if slices.Contains(requested, field) {
			r.Set(field, abilityField(a, field))
		}
	}
	return r
}

// DetailRecord shapes a for get output with every field in DetailFields.
func DetailRecord(a *Ability) *Record {
	r := orderedmap.New[string, string]()
	for _, field := range DetailFields {
		r.Set(field, abilityField(a, field))
	}
	return r
}

// CategoryRecord shapes c with every field in CategoryFields.
func CategoryRecord(c *Category) *Record {
	r := orderedmap.New[string, string]()
	r.Set(FieldSlug, c.Slug)
	r.Set(FieldLabel, c.Label)
	r.Set(FieldDescription, c.Description)
	r.Set(FieldMeta, FormatMeta(c.Meta))
	return r
}

func abilityField(a *Ability, field string) string {
	switch field {
	case FieldName:
		return a.Name
	case FieldLabel:
		return a.Label
	case FieldCategory:
		return a.Category
	case FieldDescription:
		return a.Description
	case FieldInputSchema:
		return FormatJSON(a.InputSchema)
	case FieldOutputSchema:
		return FormatJSON(a.OutputSchema)
	case FieldReadOnly:
		return pkgstrings.FormatOptionalBool(a.Annotations().ReadOnly)
	case FieldDestructive:
		return pkgstrings.FormatOptionalBool(a.Annotations().Destructive)
	case FieldIdempotent:
		return pkgstrings.FormatOptionalBool(a.Annotations().Idempotent)
	case FieldShowInREST:
		return pkgstrings.FormatBool(a.ShowInREST())
	default:
		return ""
	}
}

// FormatJSON serializes v as compact JSON without HTML escaping. A nil value
// becomes "null".
func FormatJSON(v any) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return "null"
	}
	return strings.TrimSuffix(buf.String(), "\n")
}

// FormatMeta serializes a meta map; an empty or absent map is "{}".
func FormatMeta(m Meta) string {
	if m.Len() == 0 {
		return "{}"
	}
	return FormatJSON(m)
}
