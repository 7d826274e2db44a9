package host

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckVersion(t *testing.T) {
	tests := []struct {
		version string
		wantErr bool
	}{
		{version: "6.9.0"},
		{version: "6.9"},
		{version: "7.1.2"},
		{version: "6.9.0-beta1"},
		{version: "6.8.3", wantErr: true},
		{version: "5.0", wantErr: true},
		{version: "not-a-version", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.version, func(t *testing.T) {
			err := CheckVersion(tt.version)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			var unsupported *UnsupportedHostError
			require.ErrorAs(t, err, &unsupported)
			assert.Equal(t, "Requires host version 6.9 or newer; found "+tt.version+".", err.Error())
		})
	}
}

func TestHost_CheckVersion(t *testing.T) {
	assert.NoError(t, New("6.9.0").CheckVersion())
	assert.Error(t, New("6.2.0").CheckVersion())
	assert.Equal(t, "6.2.0", New("6.2.0").Version())
}
