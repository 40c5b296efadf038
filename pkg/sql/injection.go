// Package sql screens user-supplied text for SQL injection patterns.
// Every statement in this codebase is parameter-bound, so screening is
// defense in depth for the free-text inputs that reach query composition.
package sql

import (
	libinjection "github.com/corazawaf/libinjection-go"
)

// InjectionCheckResult contains the result of an injection check on a
// user-supplied value.
type InjectionCheckResult struct {
	IsSQLi      bool   // True if SQL injection pattern detected
	Fingerprint string // libinjection fingerprint of the detected pattern
	FieldName   string // Name of the field that failed the check
	FieldValue  string // The value that was checked
}

// CheckFieldForInjection uses libinjection to detect SQL injection
// patterns in a text field.
//
// Returns nil if no injection is detected, or an InjectionCheckResult with
// details about the detected pattern.
//
// Example:
//
//	// Safe value - no injection
//	result := CheckFieldForInjection("search", "hip openers")
//	// result == nil
//
//	// Injection attempt detected
//	result := CheckFieldForInjection("search", "'; DROP TABLE classes_taught--")
//	// result.IsSQLi == true
//	// result.Fingerprint == "s&1c" (or similar)
func CheckFieldForInjection(fieldName, value string) *InjectionCheckResult {
	if value == "" {
		return nil
	}

	isSQLi, fingerprint := libinjection.IsSQLi(value)
	if isSQLi {
		return &InjectionCheckResult{
			IsSQLi:      true,
			Fingerprint: string(fingerprint),
			FieldName:   fieldName,
			FieldValue:  value,
		}
	}

	return nil
}
