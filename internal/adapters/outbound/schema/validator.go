package schema

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/confguard/confguard/internal/domain"
)

// Validator implements domain.SchemaValidator on top of gojsonschema.
type Validator struct{}

// NewValidator creates a Validator.
func NewValidator() *Validator { return &Validator{} }

// Validate checks document against schema. Three failure classes surface in
// the outcome message and never as a crash: constraint violations report the
// offending field path, a malformed schema is prefixed "schema error:", and
// anything else is prefixed "unexpected validation error:".
func (v *Validator) Validate(document, schema domain.Value) (outcome domain.Outcome) {
	defer func() {
		if r := recover(); r != nil {
			outcome = domain.Outcome{
				Valid:   false,
				Message: fmt.Sprintf("unexpected validation error: %v", r),
			}
		}
	}()

	schemaLoader := gojsonschema.NewGoLoader(schema.Interface())
	documentLoader := gojsonschema.NewGoLoader(document.Interface())

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		// gojsonschema only errors here when the schema itself cannot be
		// compiled; document problems come back inside the result.
		return domain.Outcome{Valid: false, Message: "schema error: " + err.Error()}
	}

	if result.Valid() {
		return domain.Outcome{Valid: true}
	}

	var b strings.Builder
	for i, desc := range result.Errors() {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(desc.String())
	}
	return domain.Outcome{Valid: false, Message: b.String()}
}
