package domain

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format identifies the serialization format of a configuration document.
type Format string

const (
	FormatUnknown Format = ""
	FormatJSON    Format = "json"
	FormatYAML    Format = "yaml"
)

// ValidFormats enumerates the formats accepted on the command line.
var ValidFormats = []Format{FormatJSON, FormatYAML}

// ParseFormat parses an explicit --format value.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return FormatUnknown, fmt.Errorf("unsupported format %q, must be json or yaml", s)
	}
}

// InferFormat derives the format from the file name suffix, case-insensitively.
// Returns ErrFormatUnresolved when the suffix is neither JSON nor YAML.
func InferFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return FormatUnknown, fmt.Errorf("%s: %w", path, ErrFormatUnresolved)
	}
}
