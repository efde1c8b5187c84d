package rules

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/confguard/confguard/internal/domain"
)

// checkPlaintextEndpoints flags URL-valued fields that use http instead of
// https. Loopback addresses are exempt, local development is not a finding.
func checkPlaintextEndpoints(doc domain.Value) []domain.Warning {
	var warnings []domain.Warning
	visitEntries(doc, func(path, key string, v domain.Value) {
		if v.Kind() != domain.KindString || !strings.HasPrefix(v.Str(), "http://") {
			return
		}
		if u, err := url.Parse(v.Str()); err == nil && isLoopback(u.Hostname()) {
			return
		}
		warnings = append(warnings, domain.Warning{
			Rule:    "plaintext-endpoint",
			Message: fmt.Sprintf("%s uses a plaintext http:// endpoint (%s), prefer https", path, v.Str()),
		})
	})
	return warnings
}

func isLoopback(host string) bool {
	return host == "localhost" || host == "127.0.0.1" || host == "::1"
}

// checkTLSVerifyDisabled flags configurations that switch certificate
// verification off: insecure_skip_verify anywhere, or verify: false inside
// a tls/ssl block.
func checkTLSVerifyDisabled(doc domain.Value) []domain.Warning {
	var warnings []domain.Warning
	visitEntries(doc, func(path, key string, v domain.Value) {
		if v.Kind() != domain.KindBool {
			return
		}
		lower := strings.ToLower(key)
		insecure := lower == "insecure_skip_verify" && v.Bool()
		verifyOff := lower == "verify" && !v.Bool() && underTLSBlock(path)
		if !insecure && !verifyOff {
			return
		}
		warnings = append(warnings, domain.Warning{
			Rule:    "tls-verify-disabled",
			Message: fmt.Sprintf("%s disables TLS certificate verification", path),
		})
	})
	return warnings
}

func underTLSBlock(path string) bool {
	segments := strings.Split(path, ".")
	for _, segment := range segments[:len(segments)-1] {
		lower := strings.ToLower(segment)
		if lower == "tls" || lower == "ssl" {
			return true
		}
	}
	return false
}

// checkDebugEnabled flags a top-level debug switch left on.
func checkDebugEnabled(doc domain.Value) []domain.Warning {
	v, ok := doc.Get("debug")
	if !ok || v.Kind() != domain.KindBool || !v.Bool() {
		return nil
	}
	return []domain.Warning{{
		Rule:    "debug-enabled",
		Message: "debug is enabled, disable debug mode before deploying",
	}}
}
