// Package validation holds the file-validation host configuration: the loose
// user-facing settings shape, its finalized runtime form, and the YAML
// loader that produces the former.
package validation

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
)

// UnsetFileSizeLimit is the sentinel meaning no explicit numeric limit was
// configured.
const UnsetFileSizeLimit = -1

// Settings is the user-facing configuration shape. It is deliberately loose;
// Finalize turns it into the stricter Config the validator consumes.
type Settings struct {
	SupportedFileTypes []string        `yaml:"supportedFileTypes"`
	FileSizeLimit      int64           `yaml:"fileSizeLimit"`
	UnitFileSizeLimit  string          `yaml:"unitFileSizeLimit"`
	FailOnInvalidFile  bool            `yaml:"failOnInvalidFile"`
	Scanner            *ScannerSection `yaml:"scanner"`
}

// ScannerSection is the parsed scanner registration block. Its absence means
// no scanner is configured, which is a valid no-op state.
type ScannerSection struct {
	ScannerType string         `yaml:"scannerType"`
	Constraint  string         `yaml:"constraint"`
	Options     map[string]any `yaml:"options"`
}

// DefaultSettings returns settings with the numeric size limit unset.
func DefaultSettings() Settings {
	return Settings{FileSizeLimit: UnsetFileSizeLimit}
}

// LoadSettings reads settings from a YAML file. A missing file yields
// DefaultSettings: nothing configured is a valid state, not an error.
func LoadSettings(path string) (Settings, error) {
	dir := filepath.Dir(path)
	base := filepath.Base(path)

	// Scope file access to the settings directory to prevent path traversal.
	root, err := os.OpenRoot(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return Settings{}, fmt.Errorf("failed to open directory %q: %w", dir, err)
	}
	defer func() { _ = root.Close() }()

	file, err := root.Open(base)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return Settings{}, fmt.Errorf("failed to open settings file %q: %w", base, err)
	}
	defer func() { _ = file.Close() }()

	out := DefaultSettings()
	if err := yaml.NewDecoder(file).Decode(&out); err != nil {
		if errors.Is(err, io.EOF) {
			return DefaultSettings(), nil
		}
		return Settings{}, fmt.Errorf("failed to parse settings file %q: %w", path, err)
	}
	return out, nil
}
