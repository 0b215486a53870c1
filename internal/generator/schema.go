package generator

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"quizforge/internal/domain"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// quizSchema is the payload contract the prompt demands from the model:
// a top-level quiz array of questions with exactly the options A-D, an answer
// label and an explanation.
const quizSchema = `{
  "type": "object",
  "properties": {
    "quiz": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "question": {"type": "string", "minLength": 1},
          "options": {
            "type": "object",
            "properties": {
              "A": {"type": "string"},
              "B": {"type": "string"},
              "C": {"type": "string"},
              "D": {"type": "string"}
            },
            "required": ["A", "B", "C", "D"],
            "additionalProperties": false
          },
          "answer": {"enum": ["A", "B", "C", "D"]},
          "explanation": {"type": "string"}
        },
        "required": ["question", "options", "answer", "explanation"]
      }
    }
  }
}`

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

func getCompiledSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(strings.NewReader(quizSchema))
		if err != nil {
			compileErr = fmt.Errorf("parse quiz schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource("schema://quiz.json", doc); err != nil {
			compileErr = fmt.Errorf("add quiz schema resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile("schema://quiz.json")
	})
	return compiledSchema, compileErr
}

// validateQuizPayload enforces the payload contract in strict mode. The JSON
// Schema covers shape and label sets; the per-question check covers the one
// cross-field invariant a schema cannot express, answer ∈ options.
func validateQuizPayload(candidate string, questions []domain.Question) error {
	schema, err := getCompiledSchema()
	if err != nil {
		return err
	}

	var parsed any
	if err := json.Unmarshal([]byte(candidate), &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	if err := schema.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}

	for i := range questions {
		if err := questions[i].Validate(); err != nil {
			return fmt.Errorf("question %d: %w", i+1, err)
		}
	}
	return nil
}
