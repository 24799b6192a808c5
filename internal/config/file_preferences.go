package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/ytget/psy/internal/platform"
)

// FilePreferences stores settings in a YAML file.
// Every SetString writes the file back.
type FilePreferences struct {
	path   string
	values map[string]string
}

// LoadFilePreferences reads path. A missing file yields empty preferences.
func LoadFilePreferences(path string) (*FilePreferences, error) {
	fp := &FilePreferences{
		path:   path,
		values: make(map[string]string),
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return fp, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	if err := yaml.Unmarshal(data, &fp.values); err != nil {
		return nil, fmt.Errorf("failed to parse settings file %s: %w", path, err)
	}
	if fp.values == nil {
		fp.values = make(map[string]string)
	}
	return fp, nil
}

// Path returns the backing file path
func (fp *FilePreferences) Path() string {
	return fp.path
}

// StringWithFallback returns the stored value or fallback when unset
func (fp *FilePreferences) StringWithFallback(key, fallback string) string {
	if value, ok := fp.values[key]; ok {
		return value
	}
	return fallback
}

// SetString stores a value and saves the file
func (fp *FilePreferences) SetString(key, value string) {
	fp.values[key] = value
	if err := fp.Save(); err != nil {
		log.Printf("Failed to save settings: %v", err)
	}
}

// Save writes all values to the backing file
func (fp *FilePreferences) Save() error {
	if err := platform.CreateDirectoryIfNotExists(filepath.Dir(fp.path)); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	data, err := yaml.Marshal(fp.values)
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}

	if err := os.WriteFile(fp.path, data, platform.DefaultFilePermissions); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}
	return nil
}
