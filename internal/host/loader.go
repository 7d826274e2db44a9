package host

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"ability/internal/config"
	"ability/pkg/logging"
)

// Load builds a Host from the definition directories named by cfg.
// Categories load first so abilities can reference them. A definition that
// cannot be decoded or validated is skipped with a warning; only unreadable
// directories fail the load.
func Load(fs afero.Fs, cfg config.AbilityConfig) (*Host, error) {
	h := New(cfg.Host.Version)
	storage := config.NewStorage(fs)

	categoryFiles, err := storage.List(cfg.CategoriesPath())
	if err != nil {
		return nil, err
	}
	for _, path := range categoryFiles {
		var def CategoryDefinition
		if err := loadDefinition(storage, path, &def); err != nil {
			logging.Warn("HostLoader", "Skipping category %s: %v", path, err)
			continue
		}
		if err := h.AddCategory(def); err != nil {
			logging.Warn("HostLoader", "Skipping category %s: %v", path, err)
		}
	}

	abilityFiles, err := storage.List(cfg.AbilitiesPath())
	if err != nil {
		return nil, err
	}
	for _, path := range abilityFiles {
		var def AbilityDefinition
		if err := loadDefinition(storage, path, &def); err != nil {
			logging.Warn("HostLoader", "Skipping ability %s: %v", path, err)
			continue
		}
		if err := h.AddAbility(def, filepath.Dir(path)); err != nil {
			logging.Warn("HostLoader", "Skipping ability %s: %v", path, err)
		}
	}

	logging.Debug("HostLoader", "Loaded %d categories and %d abilities", len(h.categories), len(h.abilities))
	return h, nil
}

func loadDefinition(storage *config.Storage, path string, out any) error {
	data, err := storage.Load(path)
	if err != nil {
		return err
	}
	return decodeDefinition(data, strings.ToLower(filepath.Ext(path)), out)
}

// decodeDefinition decodes data in the format named by ext. Unknown fields
// are rejected.
func decodeDefinition(data []byte, ext string, out any) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return errors.New("definition is empty")
	}

	switch ext {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(out); err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("invalid YAML: %w", err)
		}
		return nil
	case ".json":
		return decodeJSON(data, out)
	case ".toml":
		var doc map[string]any
		if err := toml.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("invalid TOML: %w", err)
		}
		converted, err := json.Marshal(doc)
		if err != nil {
			return fmt.Errorf("invalid TOML: %w", err)
		}
		return decodeJSON(converted, out)
	default:
		return fmt.Errorf("unsupported definition format %q", ext)
	}
}

func decodeJSON(data []byte, out any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(out); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	return nil
}
