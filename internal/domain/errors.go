package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ErrorCode represents a specific type of error in the domain
type ErrorCode string

const (
	// Common errors
	CodeInternal      ErrorCode = "INTERNAL_ERROR"
	CodeValidation    ErrorCode = "VALIDATION_ERROR"
	CodeMissingField  ErrorCode = "MISSING_FIELD"
	CodeInvalidFormat ErrorCode = "INVALID_FORMAT"
	CodeOutOfRange    ErrorCode = "OUT_OF_RANGE"

	// Session errors
	CodeSessionNotFound  ErrorCode = "SESSION_NOT_FOUND"
	CodeNoActiveQuiz     ErrorCode = "NO_ACTIVE_QUIZ"
	CodeQuizNotCompleted ErrorCode = "QUIZ_NOT_COMPLETED"

	// Generation pipeline errors
	CodeGenerationFailed ErrorCode = "GENERATION_FAILED"
	CodeExtractionFailed ErrorCode = "EXTRACTION_FAILED"
	CodeParseFailed      ErrorCode = "PARSE_FAILED"
)

// DomainError represents a domain-specific error
type DomainError struct {
	Code    ErrorCode              `json:"code"`
	Message string                 `json:"message"`
	Cause   error                  `json:"-"`
	Context map[string]interface{} `json:"-"`
}

func (e *DomainError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Cause
}

// MarshalJSON implements the json.Marshaler interface
func (e *DomainError) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}{
		Code:    string(e.Code),
		Message: e.Message,
	})
}

// NewError creates a new DomainError
func NewError(code ErrorCode, message string, cause error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

func NewInternalError(message string, cause error) *DomainError {
	return NewError(CodeInternal, message, cause)
}

func NewSessionNotFoundError(sessionID string) *DomainError {
	return NewError(CodeSessionNotFound, fmt.Sprintf("Session not found: %s", sessionID), nil)
}

func NewNoActiveQuizError() *DomainError {
	return NewError(CodeNoActiveQuiz, "No quiz has been generated for this session", nil)
}

func NewQuizNotCompletedError(current, total int) *DomainError {
	return NewError(CodeQuizNotCompleted,
		fmt.Sprintf("Quiz is not completed yet: question %d of %d", current+1, total), nil)
}

// NewGenerationFailedError wraps a model-invocation failure (network, auth,
// quota). The previous session state is left untouched by the caller.
func NewGenerationFailedError(cause error) *DomainError {
	return NewError(CodeGenerationFailed, "Failed to generate quiz from the language model", cause)
}

func NewExtractionFailedError(message string) *DomainError {
	return NewError(CodeExtractionFailed, message, nil)
}

// NewParseFailedError wraps a malformed-payload failure and carries the
// offending candidate text for diagnostics.
func NewParseFailedError(cause error, payload string) *DomainError {
	return &DomainError{
		Code:    CodeParseFailed,
		Message: "Failed to parse quiz data from the model reply",
		Cause:   cause,
		Context: map[string]interface{}{"payload": payload},
	}
}

// ValidationError represents a single field-level validation failure
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors aggregates field-level failures for one request
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	msgs := make([]string, len(e))
	for i, v := range e {
		msgs[i] = v.Error()
	}
	return strings.Join(msgs, "; ")
}

func NewMissingFieldError(field string) ValidationError {
	return ValidationError{Field: field, Message: "is required"}
}

func NewInvalidFormatError(field, value string) ValidationError {
	return ValidationError{Field: field, Message: fmt.Sprintf("has invalid format: %q", value)}
}

func NewOutOfRangeError(field string, value, min, max int) ValidationError {
	return ValidationError{
		Field:   field,
		Message: fmt.Sprintf("must be between %d and %d, got %d", min, max, value),
	}
}
