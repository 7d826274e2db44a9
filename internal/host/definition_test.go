package host

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ability/internal/config"
)

func validAbility() AbilityDefinition {
	return AbilityDefinition{
		Name:        "test/greet",
		Label:       "Greet",
		Description: "Says hello.",
		Execute:     ExecuteDefinition{Template: "hello"},
	}
}

func TestDefinitionValidator_Ability(t *testing.T) {
	tests := []struct {
		name       string
		mutate     func(d *AbilityDefinition)
		wantFields []string
	}{
		{
			name:   "valid template ability",
			mutate: func(d *AbilityDefinition) {},
		},
		{
			name: "valid command ability",
			mutate: func(d *AbilityDefinition) {
				d.Execute = ExecuteDefinition{Command: []string{"true"}, Timeout: "5s"}
			},
		},
		{
			name:       "name without namespace",
			mutate:     func(d *AbilityDefinition) { d.Name = "greet" },
			wantFields: []string{"name"},
		},
		{
			name:       "uppercase name",
			mutate:     func(d *AbilityDefinition) { d.Name = "Test/Greet" },
			wantFields: []string{"name"},
		},
		{
			name:       "three segments",
			mutate:     func(d *AbilityDefinition) { d.Name = "a/b/c" },
			wantFields: []string{"name"},
		},
		{
			name: "missing label and description",
			mutate: func(d *AbilityDefinition) {
				d.Label = ""
				d.Description = ""
			},
			wantFields: []string{"label", "description"},
		},
		{
			name:       "bad category slug",
			mutate:     func(d *AbilityDefinition) { d.Category = "Two Words" },
			wantFields: []string{"category"},
		},
		{
			name:       "no executor",
			mutate:     func(d *AbilityDefinition) { d.Execute = ExecuteDefinition{} },
			wantFields: []string{"execute.template", "execute.command"},
		},
		{
			name: "both executors",
			mutate: func(d *AbilityDefinition) {
				d.Execute.Command = []string{"true"}
			},
			wantFields: []string{"execute.template", "execute.command"},
		},
		{
			name:       "empty command",
			mutate:     func(d *AbilityDefinition) { d.Execute = ExecuteDefinition{Command: []string{}} },
			wantFields: []string{"execute.command"},
		},
		{
			name:       "blank program",
			mutate:     func(d *AbilityDefinition) { d.Execute = ExecuteDefinition{Command: []string{"", "-c"}} },
			wantFields: []string{"execute.command[0]"},
		},
		{
			name:       "bad timeout",
			mutate:     func(d *AbilityDefinition) { d.Execute.Timeout = "soon" },
			wantFields: []string{"execute.timeout"},
		},
	}

	v := newDefinitionValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			def := validAbility()
			tt.mutate(&def)

			err := v.Struct(def)
			if len(tt.wantFields) == 0 {
				assert.NoError(t, err)
				return
			}

			var errs config.ValidationErrors
			require.True(t, errors.As(err, &errs), "unexpected error type %T", err)
			var fields []string
			for _, e := range errs {
				fields = append(fields, e.Field)
			}
			assert.ElementsMatch(t, tt.wantFields, fields)
		})
	}
}

func TestDefinitionValidator_Category(t *testing.T) {
	v := newDefinitionValidator()

	assert.NoError(t, v.Struct(CategoryDefinition{Slug: "site-info", Label: "Site", Description: "About the site."}))

	for _, slug := range []string{"", "Site", "site--info", "-site", "site/info"} {
		err := v.Struct(CategoryDefinition{Slug: slug, Label: "Site", Description: "About the site."})
		assert.Error(t, err, "slug %q", slug)
	}
}

func TestExecuteDefinition_TimeoutDuration(t *testing.T) {
	assert.Equal(t, DefaultTimeout, ExecuteDefinition{}.TimeoutDuration())
	assert.Equal(t, 5*time.Second, ExecuteDefinition{Timeout: "5s"}.TimeoutDuration())
	assert.Equal(t, DefaultTimeout, ExecuteDefinition{Timeout: "-1s"}.TimeoutDuration())
}

func TestDecodeDefinition(t *testing.T) {
	var def CategoryDefinition
	require.NoError(t, decodeDefinition([]byte("slug = \"math\"\nlabel = \"Math\"\ndescription = \"Numbers.\"\n\n[meta]\nicon = \"calc\"\n"), ".toml", &def))
	assert.Equal(t, "math", def.Slug)
	assert.Equal(t, []string{"icon"}, def.Meta.Keys())

	assert.Error(t, decodeDefinition([]byte("   \n"), ".yaml", &def))
	assert.Error(t, decodeDefinition([]byte("slug: x"), ".ini", &def))
	assert.Error(t, decodeDefinition([]byte(`{"slug": "x", "extra": 1}`), ".json", &def))
}
