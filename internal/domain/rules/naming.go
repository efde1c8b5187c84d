package rules

import (
	"fmt"
	"sort"
	"strings"

	"github.com/fatih/camelcase"

	"github.com/confguard/confguard/internal/domain"
)

// checkKeyNaming flags top-level camelCase keys. Configuration keys in this
// tool's ecosystem are snake_case; mixed conventions in one file are a
// frequent source of silently ignored settings.
func checkKeyNaming(doc domain.Value) []domain.Warning {
	keys := doc.Keys()
	sort.Strings(keys)

	var warnings []domain.Warning
	for _, key := range keys {
		if key == strings.ToLower(key) {
			continue
		}
		words := camelcase.Split(key)
		if len(words) < 2 {
			continue
		}
		suggestion := strings.ToLower(strings.Join(words, "_"))
		warnings = append(warnings, domain.Warning{
			Rule:    "key-naming",
			Message: fmt.Sprintf("key %q is not snake_case, consider %q", key, suggestion),
		})
	}
	return warnings
}
