package domain

import "context"

// OptionLabels is the fixed, ordered set of option identifiers. Order is
// significant for display.
var OptionLabels = []string{"A", "B", "C", "D"}

// IsValidLabel reports whether s is one of the fixed option labels.
func IsValidLabel(s string) bool {
	for _, l := range OptionLabels {
		if s == l {
			return true
		}
	}
	return false
}

// Question is one multiple-choice question as produced by the generator.
// The JSON tags mirror the payload schema the model is prompted to emit.
type Question struct {
	Question    string            `json:"question"`
	Options     map[string]string `json:"options"`
	Answer      string            `json:"answer"`
	Explanation string            `json:"explanation"`
}

// Validate checks the data contract the generator's prompt demands: exactly
// four options keyed A-D and an answer that names one of them. It is only
// enforced when strict generation is enabled; by default a malformed question
// surfaces later, at display or comparison time.
func (q *Question) Validate() error {
	if q.Question == "" {
		return NewError(CodeValidation, "question text is required", nil)
	}
	if len(q.Options) != len(OptionLabels) {
		return NewError(CodeValidation, "question must have exactly 4 options", nil)
	}
	for label := range q.Options {
		if !IsValidLabel(label) {
			return NewError(CodeValidation, "option labels must be A, B, C or D", nil)
		}
	}
	if _, ok := q.Options[q.Answer]; !ok {
		return NewError(CodeValidation, "answer must be one of the option labels", nil)
	}
	return nil
}

// Quiz is an ordered sequence of questions. Length is best-effort relative to
// the requested count; consumers must not assume an exact match.
type Quiz []Question

// QuizGenerator produces a quiz for a topic by invoking an external
// text-generation model and parsing its reply.
type QuizGenerator interface {
	Generate(ctx context.Context, topic string, numQuestions int) (Quiz, error)
}
