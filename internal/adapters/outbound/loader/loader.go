// Package loader implements domain.DocumentLoader for JSON and YAML files.
package loader

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/confguard/confguard/internal/domain"
)

// FileLoader reads configuration documents from the filesystem.
type FileLoader struct{}

// New creates a FileLoader.
func New() *FileLoader { return &FileLoader{} }

// Load reads path and parses it under the given format. FormatUnknown
// requests suffix inference. The file is read before the format is resolved,
// so a missing file always wins over an unresolvable suffix.
func (l *FileLoader) Load(path string, format domain.Format) (domain.Value, domain.Format, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.Value{}, format, &domain.NotFoundError{Path: path, Err: err}
		}
		return domain.Value{}, format, fmt.Errorf("reading %s: %w", path, err)
	}

	if format == domain.FormatUnknown {
		format, err = domain.InferFormat(path)
		if err != nil {
			return domain.Value{}, domain.FormatUnknown, err
		}
	}

	var raw any
	switch format {
	case domain.FormatJSON:
		err = json.Unmarshal(data, &raw)
	case domain.FormatYAML:
		err = yaml.Unmarshal(data, &raw)
	default:
		return domain.Value{}, format, fmt.Errorf("unsupported format %q", format)
	}
	if err != nil {
		return domain.Value{}, format, &domain.ParseError{Path: path, Format: format, Err: err}
	}

	value, err := domain.FromGo(raw)
	if err != nil {
		return domain.Value{}, format, &domain.ParseError{Path: path, Format: format, Err: err}
	}
	return value, format, nil
}
