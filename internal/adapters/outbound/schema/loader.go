// Package schema loads JSON-Schema documents and validates configuration
// values against them.
package schema

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/confguard/confguard/internal/domain"
)

// Loader implements domain.SchemaLoader. Schema files are always JSON in
// this tool's scope.
type Loader struct{}

// NewLoader creates a schema Loader.
func NewLoader() *Loader { return &Loader{} }

// LoadSchema reads and parses a JSON-Schema document into the same Value
// representation the document loader produces.
func (l *Loader) LoadSchema(path string) (domain.Value, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.Value{}, &domain.NotFoundError{Path: path, Err: err}
		}
		return domain.Value{}, fmt.Errorf("reading %s: %w", path, err)
	}

	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return domain.Value{}, &domain.ParseError{Path: path, Format: domain.FormatJSON, Err: err}
	}

	value, err := domain.FromGo(raw)
	if err != nil {
		return domain.Value{}, &domain.ParseError{Path: path, Format: domain.FormatJSON, Err: err}
	}
	return value, nil
}
