package validation

import (
	"regexp"
	"strings"

	"quizforge/internal/domain"
)

// validULID matches Crockford's Base32, 26 characters.
var validULID = regexp.MustCompile(`^[0-9A-HJKMNP-TV-Z]{26}$`)

// Validator provides request validation functionality
type Validator struct {
	maxQuestions int
}

// NewValidator creates a new validator instance. maxQuestions caps the
// per-request question count.
func NewValidator(maxQuestions int) *Validator {
	return &Validator{maxQuestions: maxQuestions}
}

// ValidateGenerateRequest validates the quiz generation request
func (v *Validator) ValidateGenerateRequest(topic string, numQuestions int) domain.ValidationErrors {
	var errs domain.ValidationErrors

	if strings.TrimSpace(topic) == "" {
		errs = append(errs, domain.NewMissingFieldError("topic"))
	} else if len(topic) > 200 {
		errs = append(errs, domain.NewOutOfRangeError("topic", len(topic), 1, 200))
	}

	if numQuestions < 1 || numQuestions > v.maxQuestions {
		errs = append(errs, domain.NewOutOfRangeError("num_questions", numQuestions, 1, v.maxQuestions))
	}

	return errs
}

// ValidateAnswerRequest validates the answer selection request
func (v *Validator) ValidateAnswerRequest(index int, label string) domain.ValidationErrors {
	var errs domain.ValidationErrors

	if index < 0 {
		errs = append(errs, domain.NewOutOfRangeError("index", index, 0, v.maxQuestions-1))
	}

	if strings.TrimSpace(label) == "" {
		errs = append(errs, domain.NewMissingFieldError("label"))
	} else if !domain.IsValidLabel(label) {
		errs = append(errs, domain.NewInvalidFormatError("label", label))
	}

	return errs
}

// ValidateSessionID validates the session cookie value
func (v *Validator) ValidateSessionID(sessionID string) domain.ValidationErrors {
	var errs domain.ValidationErrors

	if strings.TrimSpace(sessionID) == "" {
		errs = append(errs, domain.NewMissingFieldError("session_id"))
	} else if !validULID.MatchString(sessionID) {
		errs = append(errs, domain.NewInvalidFormatError("session_id", sessionID))
	}

	return errs
}
