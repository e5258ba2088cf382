package checkout

import "fmt"

// ValidationError rejects a checkout with a field-identified message, so the
// UI can highlight the offending input.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func invalid(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
