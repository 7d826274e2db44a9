package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationErrors(t *testing.T) {
	var errs ValidationErrors
	assert.False(t, errs.HasErrors())
	assert.Equal(t, "no validation errors", errs.Error())

	errs.Add("name", "is required")
	assert.Equal(t, "field 'name': is required", errs.Error())

	errs.Add("", "something else")
	assert.Equal(t, "validation failed: field 'name': is required; something else", errs.Error())
}

func TestValidateConfig(t *testing.T) {
	require.NoError(t, ValidateConfig(GetDefaultConfig()))

	cfg := GetDefaultConfig()
	cfg.Host.Version = " "
	cfg.Log.Level = "loud"

	err := ValidateConfig(cfg)
	require.Error(t, err)

	var errs ValidationErrors
	require.True(t, errors.As(err, &errs))
	require.Len(t, errs, 2)
	assert.Equal(t, "host.version", errs[0].Field)
	assert.Equal(t, "log.level", errs[1].Field)
}

func TestValidateRequired(t *testing.T) {
	assert.NoError(t, ValidateRequired("label", "Greet", "ability"))
	assert.EqualError(t, ValidateRequired("label", "", "ability"), "field 'label': is required for ability")
}

func TestFormatValidationError(t *testing.T) {
	assert.Nil(t, FormatValidationError("ability", "x/y", nil))
	assert.EqualError(t,
		FormatValidationError("ability", "x/y", errors.New("bad")),
		"validation failed for ability 'x/y': bad")
	assert.EqualError(t,
		FormatValidationError("category", "", errors.New("bad")),
		"validation failed for category: bad")
}
