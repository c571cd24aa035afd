// Package phonerr defines the error kinds shared by the phonology packages.
//
// ConfigError reports a malformed dialect description (bad threshold, bad
// inventory reference, bad context pattern) detected at construction time.
// ValidationError reports a structurally invalid request (mismatched rule
// shapes, comparing representations at different levels). Both are returned
// eagerly; per-phone conditions such as an unknown symbol are data, not
// errors, and flow through result types instead.
package phonerr

import "fmt"

// ConfigError reports an invalid value in a dialect or engine configuration.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	if e.Field == "" {
		return "config: " + e.Reason
	}
	return fmt.Sprintf("config: %s: %s", e.Field, e.Reason)
}

// Configf builds a ConfigError with a formatted reason.
func Configf(field, format string, args ...any) error {
	return &ConfigError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// ValidationError reports a structurally invalid rule or request.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "validation: " + e.Reason
}

// Validationf builds a ValidationError with a formatted reason.
func Validationf(format string, args ...any) error {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}
