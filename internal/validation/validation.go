package validation

import (
	"strings"
)

// FieldError describes a single violated field constraint.
type FieldError struct {
	Field   string
	Message string
}

// Errors collects every violated field of a request. A nil or empty Errors means the
// request is valid.
type Errors []FieldError

// Error implements the error interface
func (e Errors) Error() string {
	messages := make([]string, 0, len(e))
	for _, fe := range e {
		messages = append(messages, fe.Field+": "+fe.Message)
	}

	return strings.Join(messages, "; ")
}

// Messages returns the message of every violation in collection order.
func (e Errors) Messages() []string {
	messages := make([]string, 0, len(e))
	for _, fe := range e {
		messages = append(messages, fe.Message)
	}

	return messages
}

// NotBlank records a violation when value is empty or whitespace only.
func (e Errors) NotBlank(field, value, message string) Errors {
	if strings.TrimSpace(value) == "" {
		return append(e, FieldError{Field: field, Message: message})
	}

	return e
}

// Require records a violation when present is false.
func (e Errors) Require(field string, present bool, message string) Errors {
	if !present {
		return append(e, FieldError{Field: field, Message: message})
	}

	return e
}

// Err returns the collected violations as an error, or nil when there are none.
func (e Errors) Err() error {
	if len(e) == 0 {
		return nil
	}

	return e
}
