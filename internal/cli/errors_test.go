package cli

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExitStatusError(t *testing.T) {
	err := NewExitStatusError(1)

	assert.Equal(t, "exit status 1", err.Error())
	assert.True(t, IsSilent(err))
	assert.True(t, IsSilent(fmt.Errorf("wrapped: %w", err)))
	assert.True(t, errors.Is(err, &ExitStatusError{}))
	assert.False(t, IsSilent(errors.New("loud")))
	assert.False(t, IsSilent(nil))
}

func TestInvalidFieldError(t *testing.T) {
	err := &InvalidFieldError{Field: "bogus"}
	assert.Equal(t, "Invalid field: bogus.", err.Error())
	assert.ErrorIs(t, fmt.Errorf("format: %w", err), &InvalidFieldError{})
}
