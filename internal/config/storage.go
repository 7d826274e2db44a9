package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"ability/pkg/logging"

	"github.com/spf13/afero"
)

// DefinitionExtensions are the file extensions Storage lists, in the order
// they are tried when several files share a base name.
var DefinitionExtensions = []string{".yaml", ".yml", ".json", ".toml"}

// Storage provides read access to definition files kept in directories under
// the configuration path.
type Storage struct {
	fs afero.Fs
}

// NewStorage creates a Storage reading from fs.
func NewStorage(fs afero.Fs) *Storage {
	return &Storage{fs: fs}
}

// List returns the definition files in dir, sorted by file name. A missing
// directory yields an empty list.
func (ds *Storage) List(dir string) ([]string, error) {
	if dir == "" {
		return nil, fmt.Errorf("dir cannot be empty")
	}

	entries, err := afero.ReadDir(ds.fs, dir)
	if err != nil {
		if os.IsNotExist(err) {
			logging.Debug("Storage", "Directory %s does not exist", dir)
			return nil, nil
		}
		return nil, fmt.Errorf("failed to list %s: %w", dir, err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		if !slices.Contains(DefinitionExtensions, strings.ToLower(filepath.Ext(entry.Name()))) {
			continue
		}
		files = append(files, filepath.Join(dir, entry.Name()))
	}
	slices.Sort(files)

	logging.Debug("Storage", "Listed %d definition files in %s", len(files), dir)
	return files, nil
}

// Load reads one definition file.
func (ds *Storage) Load(path string) ([]byte, error) {
	data, err := afero.ReadFile(ds.fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}
	return data, nil
}
