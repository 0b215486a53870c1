package generator

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"quizforge/internal/config"
	"quizforge/internal/domain"
	"quizforge/internal/logger"

	"github.com/tmc/langchaingo/llms"
	"go.uber.org/zap"
)

const codeFence = "```"

const promptTemplate = `Generate a multiple-choice quiz on the topic of "%s".
The quiz should have %d questions.
Each question should have 4 options (A, B, C, D) and specify the correct answer and a brief explanation.
Provide the output strictly in a JSON format like this, wrapped in markdown code block fences:
%sjson
{
  "quiz": [
    {
      "question": "Question 1 text?",
      "options": {
        "A": "Option A text",
        "B": "Option B text",
        "C": "Option C text",
        "D": "Option D text"
      },
      "answer": "A",
      "explanation": "Explanation for why A is correct."
    }
  ]
}
%s
Do not include any other text or conversational elements outside the JSON code block.`

// Generator builds the quiz prompt, invokes the model and parses its reply.
// It is pure given its inputs and the model's reply; the invocation is its
// only side effect.
type Generator struct {
	llm         llms.Model
	temperature float64
	strict      bool
}

// New creates a Generator. With cfg.Strict enabled, parsed quizzes are checked
// against the payload schema before they are returned, turning malformed
// questions into generation-time parse failures instead of later display
// failures.
func New(llm llms.Model, llmCfg config.LLMConfig, genCfg config.GenerationConfig) *Generator {
	return &Generator{
		llm:         llm,
		temperature: llmCfg.Temperature,
		strict:      genCfg.Strict,
	}
}

// BuildPrompt renders the generation prompt for a topic and question count.
func BuildPrompt(topic string, numQuestions int) string {
	return fmt.Sprintf(promptTemplate, topic, numQuestions, codeFence, codeFence)
}

// Generate implements domain.QuizGenerator. Failure taxonomy:
// invocation errors become GENERATION_FAILED, a reply with no JSON-like
// content becomes EXTRACTION_FAILED, and a malformed payload becomes
// PARSE_FAILED carrying the candidate text. A reply whose payload lacks the
// "quiz" field yields an empty quiz, not an error.
func (g *Generator) Generate(ctx context.Context, topic string, numQuestions int) (domain.Quiz, error) {
	log := logger.Get()

	prompt := BuildPrompt(topic, numQuestions)
	log.Info("Invoking model for quiz generation",
		zap.String("topic", topic),
		zap.Int("num_questions", numQuestions),
	)

	raw, err := llms.GenerateFromSinglePrompt(ctx, g.llm, prompt, llms.WithTemperature(g.temperature))
	if err != nil {
		log.Error("Model invocation failed", zap.Error(err), zap.String("topic", topic))
		return nil, domain.NewGenerationFailedError(err)
	}
	log.Debug("Raw model reply received", zap.String("raw_reply", raw))

	candidate, err := ExtractJSON(raw)
	if err != nil {
		log.Error("No JSON content in model reply",
			zap.String("raw_reply", raw),
			zap.String("topic", topic),
		)
		return nil, err
	}

	var payload struct {
		Quiz []domain.Question `json:"quiz"`
	}
	if err := json.Unmarshal([]byte(candidate), &payload); err != nil {
		log.Error("Failed to parse quiz payload",
			zap.Error(err),
			zap.String("candidate", candidate),
		)
		return nil, domain.NewParseFailedError(err, candidate)
	}

	if g.strict {
		if err := validateQuizPayload(candidate, payload.Quiz); err != nil {
			log.Error("Generated quiz failed strict validation",
				zap.Error(err),
				zap.String("candidate", candidate),
			)
			return nil, domain.NewParseFailedError(err, candidate)
		}
	}

	// Absent "quiz" field: nothing to take, not a failure.
	quiz := domain.Quiz(payload.Quiz)
	if quiz == nil {
		quiz = domain.Quiz{}
	}

	if len(quiz) != numQuestions {
		log.Warn("Model returned a different question count than requested",
			zap.Int("requested", numQuestions),
			zap.Int("returned", len(quiz)),
		)
	}
	log.Info("Quiz generated",
		zap.String("topic", strings.TrimSpace(topic)),
		zap.Int("num_questions", len(quiz)),
	)
	return quiz, nil
}

var _ domain.QuizGenerator = (*Generator)(nil)
