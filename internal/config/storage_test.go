package config

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStorage_List(t *testing.T) {
	fs := afero.NewMemMapFs()
	files := map[string]string{
		"/cfg/abilities/b-second.yaml": "name: b/second",
		"/cfg/abilities/a-first.json":  `{"name": "a/first"}`,
		"/cfg/abilities/c-third.toml":  `name = "c/third"`,
		"/cfg/abilities/d.yml":         "name: d/fourth",
		"/cfg/abilities/README.md":     "ignored",
		"/cfg/abilities/.hidden.yaml":  "ignored",
		"/cfg/abilities/nested/x.yaml": "ignored",
	}
	for path, content := range files {
		require.NoError(t, afero.WriteFile(fs, path, []byte(content), 0o644))
	}

	storage := NewStorage(fs)
	got, err := storage.List("/cfg/abilities")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"/cfg/abilities/a-first.json",
		"/cfg/abilities/b-second.yaml",
		"/cfg/abilities/c-third.toml",
		"/cfg/abilities/d.yml",
	}, got)

	data, err := storage.Load("/cfg/abilities/d.yml")
	require.NoError(t, err)
	assert.Equal(t, "name: d/fourth", string(data))
}

func TestStorage_ListMissingDirectory(t *testing.T) {
	got, err := NewStorage(afero.NewMemMapFs()).List("/nowhere")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestStorage_Errors(t *testing.T) {
	storage := NewStorage(afero.NewMemMapFs())

	_, err := storage.List("")
	assert.Error(t, err)

	_, err = storage.Load("/missing.yaml")
	assert.Error(t, err)
}
