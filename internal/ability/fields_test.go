package ability

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func recordPairs(r *Record) [][2]string {
	var out [][2]string
	for pair := r.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, [2]string{pair.Key, pair.Value})
	}
	return out
}

func recordKeys(r *Record) []string {
	var out []string
	for pair := r.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, pair.Key)
	}
	return out
}

func TestListRecord_DefaultFields(t *testing.T) {
	a := &Ability{Name: "test/greet", Label: "Greet", Category: "text", Description: "Says hello"}

	want := [][2]string{
		{"name", "test/greet"},
		{"label", "Greet"},
		{"category", "text"},
		{"description", "Says hello"},
	}
	if diff := cmp.Diff(want, recordPairs(ListRecord(a, nil))); diff != "" {
		t.Errorf("ListRecord mismatch (-want +got):\n%s", diff)
	}
}

func TestListRecord_OptionalFields(t *testing.T) {
	a := &Ability{
		Name: "test/delete",
		Meta: metaWith(t,
			"annotations", map[string]any{"readonly": false, "destructive": true},
			"show_in_rest", true,
		),
	}

	r := ListRecord(a, []string{"show_in_rest", "readonly", "destructive", "idempotent", "bogus"})

	assert.Equal(t, []string{"name", "label", "category", "description", "readonly", "destructive", "idempotent", "show_in_rest"}, recordKeys(r))
	v, _ := r.Get("readonly")
	assert.Equal(t, "0", v)
	v, _ = r.Get("destructive")
	assert.Equal(t, "1", v)
	v, _ = r.Get("idempotent")
	assert.Equal(t, "", v, "absent annotation renders empty")
	v, _ = r.Get("show_in_rest")
	assert.Equal(t, "1", v)
	_, ok := r.Get("bogus")
	assert.False(t, ok)
}

func TestDetailRecord(t *testing.T) {
	a := &Ability{
		Name:        "test/count",
		InputSchema: map[string]any{"type": "object", "required": []any{"count"}},
	}

	r := DetailRecord(a)
	assert.Equal(t, DetailFields, recordKeys(r))

	v, _ := r.Get("input_schema")
	assert.Equal(t, `{"required":["count"],"type":"object"}`, v)
	v, _ = r.Get("output_schema")
	assert.Equal(t, "null", v)
	v, _ = r.Get("show_in_rest")
	assert.Equal(t, "0", v)
}

func TestListFieldsAreSubsetOfDetailFields(t *testing.T) {
	for _, f := range append(append([]string{}, DefaultFields...), OptionalFields...) {
		assert.Contains(t, DetailFields, f)
	}
	for _, f := range CategoryListFields {
		assert.Contains(t, CategoryFields, f)
	}
}

func TestCategoryRecord(t *testing.T) {
	t.Run("no meta renders empty object", func(t *testing.T) {
		r := CategoryRecord(&Category{Slug: "math", Label: "Math", Description: "Numbers"})
		v, _ := r.Get("meta")
		assert.Equal(t, "{}", v)
	})

	t.Run("meta keeps declared order", func(t *testing.T) {
		r := CategoryRecord(&Category{Slug: "math", Meta: metaWith(t, "icon", "calculator", "color", "blue")})
		v, _ := r.Get("meta")
		assert.Equal(t, `{"icon":"calculator","color":"blue"}`, v)
	})
}

func TestFormatMeta_NoHTMLEscape(t *testing.T) {
	m := metaWith(t, "z", "<b>&", "a", map[string]any{"tag": "<i>"})
	assert.Equal(t, `{"z":"<b>&","a":{"tag":"<i>"}}`, FormatMeta(m))
	assert.Equal(t, `{"z":"<b>&","a":{"tag":"<i>"}}`, FormatJSON(m))

	c := &Category{Slug: "html", Label: "HTML", Description: "Markup.", Meta: m}
	v, _ := CategoryRecord(c).Get(FieldMeta)
	assert.Equal(t, `{"z":"<b>&","a":{"tag":"<i>"}}`, v)
}

func TestFormatJSON(t *testing.T) {
	assert.Equal(t, "null", FormatJSON(nil))
	assert.Equal(t, `"a<b"`, FormatJSON("a<b"))
	assert.Equal(t, `[1,2]`, FormatJSON([]any{1, 2}))
}
