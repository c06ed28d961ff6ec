package project

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/crishoj/formkit/internal/defs"
)

// Sentinel errors for rc-file loading.
var (
	// ErrInvalidRC indicates the rc file exists but could not be parsed.
	ErrInvalidRC = errors.New("project: invalid .formkitrc.yaml")

	// ErrInvalidRCLang indicates an unsupported export language in the rc file.
	ErrInvalidRCLang = errors.New("project: rc export.lang must be one of: ts, js")
)

// RC holds the optional per-project CLI defaults read from
// .formkitrc.yaml in the working directory.
type RC struct {
	Export ExportDefaults `yaml:"export"`
}

// ExportDefaults configures defaults for the export command. Explicit
// command-line flags always win over these.
type ExportDefaults struct {
	// Dir is the default output directory, relative to the working
	// directory unless absolute.
	Dir string `yaml:"dir"`

	// Lang is the default output language ("ts" or "js"). When empty
	// the language is guessed from the project.
	Lang string `yaml:"lang"`
}

// LoadRC reads .formkitrc.yaml from dir. A missing file is not an
// error and yields the zero RC. A malformed file is reported via
// ErrInvalidRC so callers can warn and fall back to defaults.
func LoadRC(dir string) (*RC, error) {
	path := filepath.Join(dir, defs.RCFileYAML)

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &RC{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRC, err)
	}

	rc := &RC{}
	if err := yaml.Unmarshal(data, rc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRC, err)
	}

	if rc.Export.Lang != "" && !slices.Contains([]string{defs.LangTS, defs.LangJS}, rc.Export.Lang) {
		return nil, fmt.Errorf("%w (got: %q)", ErrInvalidRCLang, rc.Export.Lang)
	}

	return rc, nil
}

// LoadRCOrDefault loads the rc file, logging a warning and returning
// the zero RC when it cannot be read.
func LoadRCOrDefault(dir string, logger *slog.Logger) *RC {
	rc, err := LoadRC(dir)
	if err != nil {
		logger.Warn("failed to load rc file, using defaults", "error", err)
		return &RC{}
	}
	return rc
}
