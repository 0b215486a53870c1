package generator

import (
	"context"
	"errors"
	"testing"

	"quizforge/internal/config"
	"quizforge/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmc/langchaingo/llms"
)

// fakeModel is a canned-reply llms.Model.
type fakeModel struct {
	reply string
	err   error
}

func (f *fakeModel) GenerateContent(ctx context.Context, messages []llms.MessageContent, options ...llms.CallOption) (*llms.ContentResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &llms.ContentResponse{
		Choices: []*llms.ContentChoice{{Content: f.reply}},
	}, nil
}

func (f *fakeModel) Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

func newGenerator(model llms.Model, strict bool) *Generator {
	return New(model,
		config.LLMConfig{Temperature: 0.7},
		config.GenerationConfig{MaxQuestions: 10, Strict: strict},
	)
}

const wellFormedReply = "Here you go:\n```json\n{\n  \"quiz\": [\n    {\n      \"question\": \"What pigment drives photosynthesis?\",\n      \"options\": {\"A\": \"Chlorophyll\", \"B\": \"Hemoglobin\", \"C\": \"Keratin\", \"D\": \"Melanin\"},\n      \"answer\": \"A\",\n      \"explanation\": \"Chlorophyll absorbs light energy.\"\n    },\n    {\n      \"question\": \"Where does the Calvin cycle occur?\",\n      \"options\": {\"A\": \"Nucleus\", \"B\": \"Stroma\", \"C\": \"Cell wall\", \"D\": \"Ribosome\"},\n      \"answer\": \"B\",\n      \"explanation\": \"The Calvin cycle runs in the chloroplast stroma.\"\n    }\n  ]\n}\n```\nHave fun!"

func TestGenerator_Generate_Success(t *testing.T) {
	g := newGenerator(&fakeModel{reply: wellFormedReply}, false)

	quiz, err := g.Generate(context.Background(), "Photosynthesis", 2)
	require.NoError(t, err)
	require.Len(t, quiz, 2)

	assert.Equal(t, "A", quiz[0].Answer)
	assert.Equal(t, "Chlorophyll", quiz[0].Options["A"])
	assert.Equal(t, "B", quiz[1].Answer)
	assert.NotEmpty(t, quiz[1].Explanation)
}

func TestGenerator_Generate_InvocationFailure(t *testing.T) {
	g := newGenerator(&fakeModel{err: errors.New("quota exceeded")}, false)

	_, err := g.Generate(context.Background(), "Photosynthesis", 3)
	require.Error(t, err)

	var domainErr *domain.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, domain.CodeGenerationFailed, domainErr.Code)
	assert.ErrorContains(t, err, "quota exceeded")
}

func TestGenerator_Generate_NoJSONContent(t *testing.T) {
	g := newGenerator(&fakeModel{reply: "```json\n\n```"}, false)

	_, err := g.Generate(context.Background(), "History", 3)
	require.Error(t, err)

	var domainErr *domain.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, domain.CodeExtractionFailed, domainErr.Code)
}

func TestGenerator_Generate_ParseFailureCarriesPayload(t *testing.T) {
	g := newGenerator(&fakeModel{reply: "```json\n{\"quiz\": [}\n```"}, false)

	_, err := g.Generate(context.Background(), "History", 3)
	require.Error(t, err)

	var domainErr *domain.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, domain.CodeParseFailed, domainErr.Code)
	require.NotNil(t, domainErr.Context)
	assert.Contains(t, domainErr.Context["payload"], "{\"quiz\": [}")
}

func TestGenerator_Generate_MissingQuizFieldYieldsEmptyQuiz(t *testing.T) {
	g := newGenerator(&fakeModel{reply: "```json\n{\"questions\": []}\n```"}, false)

	quiz, err := g.Generate(context.Background(), "History", 3)
	require.NoError(t, err)
	assert.NotNil(t, quiz)
	assert.Empty(t, quiz)
}

func TestGenerator_Generate_FewerQuestionsThanRequested(t *testing.T) {
	// The model may return fewer questions than asked for; that is not an error.
	g := newGenerator(&fakeModel{reply: wellFormedReply}, false)

	quiz, err := g.Generate(context.Background(), "Photosynthesis", 5)
	require.NoError(t, err)
	assert.Len(t, quiz, 2)
}

func TestGenerator_Generate_StrictRejectsBadAnswerLabel(t *testing.T) {
	reply := "```json\n{\"quiz\": [{\"question\": \"Q?\", \"options\": {\"A\": \"a\", \"B\": \"b\", \"C\": \"c\", \"D\": \"d\"}, \"answer\": \"E\", \"explanation\": \"e\"}]}\n```"

	loose := newGenerator(&fakeModel{reply: reply}, false)
	quiz, err := loose.Generate(context.Background(), "Topic", 1)
	require.NoError(t, err, "loose mode lets a bad answer label through")
	require.Len(t, quiz, 1)
	assert.Equal(t, "E", quiz[0].Answer)

	strict := newGenerator(&fakeModel{reply: reply}, true)
	_, err = strict.Generate(context.Background(), "Topic", 1)
	require.Error(t, err)
	var domainErr *domain.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, domain.CodeParseFailed, domainErr.Code)
}

func TestGenerator_Generate_StrictRejectsMissingOption(t *testing.T) {
	reply := "```json\n{\"quiz\": [{\"question\": \"Q?\", \"options\": {\"A\": \"a\", \"B\": \"b\", \"C\": \"c\"}, \"answer\": \"A\", \"explanation\": \"e\"}]}\n```"

	strict := newGenerator(&fakeModel{reply: reply}, true)
	_, err := strict.Generate(context.Background(), "Topic", 1)
	require.Error(t, err)

	var domainErr *domain.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, domain.CodeParseFailed, domainErr.Code)
}

func TestGenerator_Generate_StrictAcceptsWellFormedQuiz(t *testing.T) {
	g := newGenerator(&fakeModel{reply: wellFormedReply}, true)

	quiz, err := g.Generate(context.Background(), "Photosynthesis", 2)
	require.NoError(t, err)
	assert.Len(t, quiz, 2)
}

func TestBuildPrompt(t *testing.T) {
	prompt := BuildPrompt("Photosynthesis", 3)

	assert.Contains(t, prompt, "\"Photosynthesis\"")
	assert.Contains(t, prompt, "3 questions")
	assert.Contains(t, prompt, "```json")
	assert.Contains(t, prompt, "\"quiz\"")
	assert.Contains(t, prompt, "Do not include any other text")
}
