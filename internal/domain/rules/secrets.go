package rules

import (
	"fmt"
	"strings"

	"github.com/confguard/confguard/internal/domain"
)

// placeholderAPIKey is the canonical placeholder shipped in sample configs.
const placeholderAPIKey = "YOUR_API_KEY"

// checkDefaultAPIKey flags a top-level api_key left at the canonical
// placeholder value.
func checkDefaultAPIKey(doc domain.Value) []domain.Warning {
	v, ok := doc.Get("api_key")
	if !ok || v.Kind() != domain.KindString || v.Str() != placeholderAPIKey {
		return nil
	}
	return []domain.Warning{{
		Rule:    "default-api-key",
		Message: "api_key is set to the default API key placeholder, update it to a secure value",
	}}
}

// secretKeyFragments marks keys that are expected to hold credentials.
var secretKeyFragments = []string{"password", "passphrase", "secret", "token", "api_key", "apikey"}

// placeholderValues are common stand-ins that should never reach production.
var placeholderValues = map[string]bool{
	"":          true,
	"changeme":  true,
	"change_me": true,
	"password":  true,
	"secret":    true,
	"todo":      true,
	"xxx":       true,
}

// checkPlaceholderSecrets walks the whole document and flags secret-bearing
// keys holding placeholder or empty values. The canonical top-level api_key
// placeholder is owned by the default-api-key rule and skipped here.
func checkPlaceholderSecrets(doc domain.Value) []domain.Warning {
	var warnings []domain.Warning
	visitEntries(doc, func(path, key string, v domain.Value) {
		if v.Kind() != domain.KindString || !isSecretKey(key) {
			return
		}
		if path == "api_key" && v.Str() == placeholderAPIKey {
			return
		}
		if !isPlaceholder(v.Str()) {
			return
		}
		warnings = append(warnings, domain.Warning{
			Rule:    "placeholder-secret",
			Message: fmt.Sprintf("%s looks like a placeholder secret (%q)", path, v.Str()),
		})
	})
	return warnings
}

func isSecretKey(key string) bool {
	lower := strings.ToLower(key)
	for _, fragment := range secretKeyFragments {
		if strings.Contains(lower, fragment) {
			return true
		}
	}
	return false
}

func isPlaceholder(value string) bool {
	if placeholderValues[strings.ToLower(value)] {
		return true
	}
	return strings.HasPrefix(value, "YOUR_")
}
