package board

import "strings"

// Guards are pure precondition checks evaluated before any mutation
// touches a document. They have no side effects.

// GuardResult represents the outcome of a guard evaluation.
type GuardResult struct {
	Allowed bool
	Field   string // offending field when a validation guard fails
}

// Err converts the guard result to an error if not allowed.
func (r GuardResult) Err() error {
	if r.Allowed {
		return nil
	}
	return &ValidationError{Field: r.Field}
}

// CheckRequiredText evaluates whether a required text field is
// non-empty after trimming.
func CheckRequiredText(field, value string) GuardResult {
	if strings.TrimSpace(value) == "" {
		return GuardResult{Allowed: false, Field: field}
	}
	return GuardResult{Allowed: true}
}

// CheckPatchText evaluates an optional patch field: nil means
// "leave unchanged" and always passes; a set pointer must be
// non-empty after trimming.
func CheckPatchText(field string, value *string) GuardResult {
	if value == nil {
		return GuardResult{Allowed: true}
	}
	return CheckRequiredText(field, *value)
}
