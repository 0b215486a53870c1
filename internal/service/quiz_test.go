package service

import (
	"context"
	"testing"

	"quizforge/internal/domain"
	"quizforge/internal/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockQuizGenerator is a mock implementation of domain.QuizGenerator
type MockQuizGenerator struct {
	mock.Mock
}

func (m *MockQuizGenerator) Generate(ctx context.Context, topic string, numQuestions int) (domain.Quiz, error) {
	args := m.Called(ctx, topic, numQuestions)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(domain.Quiz), args.Error(1)
}

func testQuiz() domain.Quiz {
	return domain.Quiz{
		{
			Question:    "What pigment drives photosynthesis?",
			Options:     map[string]string{"A": "Chlorophyll", "B": "Hemoglobin", "C": "Keratin", "D": "Melanin"},
			Answer:      "A",
			Explanation: "Chlorophyll absorbs light energy.",
		},
		{
			Question:    "Where does the Calvin cycle occur?",
			Options:     map[string]string{"A": "Nucleus", "B": "Stroma", "C": "Cell wall", "D": "Ribosome"},
			Answer:      "B",
			Explanation: "The Calvin cycle runs in the chloroplast stroma.",
		},
	}
}

func TestQuizService_GenerateCreatesSession(t *testing.T) {
	gen := new(MockQuizGenerator)
	gen.On("Generate", mock.Anything, "Photosynthesis", 2).Return(testQuiz(), nil)

	svc := NewQuizService(session.NewStore(), gen)

	id, state, err := svc.Generate(context.Background(), "", "Photosynthesis", 2)
	require.NoError(t, err)
	require.NotEmpty(t, id)

	assert.Equal(t, string(domain.StateInProgress), state.Status)
	require.NotNil(t, state.Question)
	assert.Equal(t, 1, state.Question.Number)
	assert.Equal(t, 2, state.Question.Total)
	assert.Equal(t, "What pigment drives photosynthesis?", state.Question.Question)
	require.Len(t, state.Question.Options, 4)
	assert.Equal(t, "A", state.Question.Options[0].Label)
	assert.False(t, state.CanGoPrevious)
	assert.Equal(t, "Next Question", state.NextButtonText)

	gen.AssertExpectations(t)
}

func TestQuizService_GenerateFailureLeavesPreviousQuiz(t *testing.T) {
	gen := new(MockQuizGenerator)
	gen.On("Generate", mock.Anything, "Photosynthesis", 2).Return(testQuiz(), nil).Once()
	gen.On("Generate", mock.Anything, "Chemistry", 2).
		Return(nil, domain.NewGenerationFailedError(assert.AnError)).Once()

	store := session.NewStore()
	svc := NewQuizService(store, gen)

	id, _, err := svc.Generate(context.Background(), "", "Photosynthesis", 2)
	require.NoError(t, err)

	// Answer the first question, then fail a regeneration.
	_, err = svc.SelectAnswer(id, 0, "A")
	require.NoError(t, err)

	_, _, err = svc.Generate(context.Background(), id, "Chemistry", 2)
	require.Error(t, err)
	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.CodeGenerationFailed, domainErr.Code)

	// The previous quiz and the recorded answer survive the failed attempt.
	state, err := svc.State(id)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StateInProgress), state.Status)
	require.NotNil(t, state.Question)
	assert.Equal(t, "What pigment drives photosynthesis?", state.Question.Question)
	assert.Equal(t, "A", state.Question.SelectedLabel)

	gen.AssertExpectations(t)
}

func TestQuizService_RegenerateReplacesQuiz(t *testing.T) {
	chemistry := domain.Quiz{{
		Question:    "Symbol for gold?",
		Options:     map[string]string{"A": "Au", "B": "Ag", "C": "Gd", "D": "Go"},
		Answer:      "A",
		Explanation: "From the Latin aurum.",
	}}

	gen := new(MockQuizGenerator)
	gen.On("Generate", mock.Anything, "Photosynthesis", 2).Return(testQuiz(), nil).Once()
	gen.On("Generate", mock.Anything, "Chemistry", 1).Return(chemistry, nil).Once()

	svc := NewQuizService(session.NewStore(), gen)

	id, _, err := svc.Generate(context.Background(), "", "Photosynthesis", 2)
	require.NoError(t, err)
	_, err = svc.SelectAnswer(id, 0, "D")
	require.NoError(t, err)

	sameID, state, err := svc.Generate(context.Background(), id, "Chemistry", 1)
	require.NoError(t, err)
	assert.Equal(t, id, sameID, "an existing session keeps its id across regeneration")

	require.NotNil(t, state.Question)
	assert.Equal(t, "Symbol for gold?", state.Question.Question)
	assert.Empty(t, state.Question.SelectedLabel, "answers are reset by regeneration")
}

func TestQuizService_FullFlowToResults(t *testing.T) {
	gen := new(MockQuizGenerator)
	gen.On("Generate", mock.Anything, "Photosynthesis", 2).Return(testQuiz(), nil)

	svc := NewQuizService(session.NewStore(), gen)
	id, _, err := svc.Generate(context.Background(), "", "Photosynthesis", 2)
	require.NoError(t, err)

	_, err = svc.SelectAnswer(id, 0, "A")
	require.NoError(t, err)
	state, err := svc.Next(id)
	require.NoError(t, err)
	assert.Equal(t, "Complete Quiz", state.NextButtonText)

	// Leave question 2 unanswered.
	state, err = svc.Next(id)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StateCompleted), state.Status)
	assert.Nil(t, state.Question)
	assert.False(t, state.CanGoNext)

	results, err := svc.Results(id)
	require.NoError(t, err)
	assert.Equal(t, 1, results.Score)
	assert.Equal(t, 2, results.Total)
	assert.Equal(t, "You scored 1 out of 2 questions!", results.ScoreLine)
	assert.False(t, results.AllAnswered)
	assert.NotEmpty(t, results.Note)

	require.Len(t, results.Results, 2)
	assert.True(t, results.Results[0].Correct)
	assert.Equal(t, "Chlorophyll", results.Results[0].UserAnswerText)
	assert.False(t, results.Results[1].Answered)
	assert.Equal(t, "Stroma", results.Results[1].CorrectAnswerText)
}

func TestQuizService_EmptyQuizRendersZeroOutOfZero(t *testing.T) {
	gen := new(MockQuizGenerator)
	gen.On("Generate", mock.Anything, "Obscure", 3).Return(domain.Quiz{}, nil)

	svc := NewQuizService(session.NewStore(), gen)
	id, state, err := svc.Generate(context.Background(), "", "Obscure", 3)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StateCompleted), state.Status)

	results, err := svc.Results(id)
	require.NoError(t, err)
	assert.Equal(t, 0, results.Score)
	assert.Equal(t, 0, results.Total)
	assert.Equal(t, "You scored 0 out of 0 questions!", results.ScoreLine)
}

func TestQuizService_ResultsBeforeCompletion(t *testing.T) {
	gen := new(MockQuizGenerator)
	gen.On("Generate", mock.Anything, "Photosynthesis", 2).Return(testQuiz(), nil)

	svc := NewQuizService(session.NewStore(), gen)
	id, _, err := svc.Generate(context.Background(), "", "Photosynthesis", 2)
	require.NoError(t, err)

	_, err = svc.Results(id)
	require.Error(t, err)
	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.CodeQuizNotCompleted, domainErr.Code)
}

func TestQuizService_RestartClearsSession(t *testing.T) {
	gen := new(MockQuizGenerator)
	gen.On("Generate", mock.Anything, "Photosynthesis", 2).Return(testQuiz(), nil)

	svc := NewQuizService(session.NewStore(), gen)
	id, _, err := svc.Generate(context.Background(), "", "Photosynthesis", 2)
	require.NoError(t, err)

	state, err := svc.Restart(id)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StateEmpty), state.Status)
	assert.Nil(t, state.Question)

	_, err = svc.Next(id)
	require.Error(t, err)
	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.CodeNoActiveQuiz, domainErr.Code)
}

func TestQuizService_UnknownSession(t *testing.T) {
	svc := NewQuizService(session.NewStore(), new(MockQuizGenerator))

	_, err := svc.State("01JYZ0000000000000000000AA")
	require.Error(t, err)
	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.CodeSessionNotFound, domainErr.Code)
}

func TestQuizService_NavigationNoOps(t *testing.T) {
	gen := new(MockQuizGenerator)
	gen.On("Generate", mock.Anything, "Photosynthesis", 2).Return(testQuiz(), nil)

	svc := NewQuizService(session.NewStore(), gen)
	id, _, err := svc.Generate(context.Background(), "", "Photosynthesis", 2)
	require.NoError(t, err)

	// Previous on the first question returns the unchanged state, no error.
	state, err := svc.Previous(id)
	require.NoError(t, err)
	require.NotNil(t, state.Question)
	assert.Equal(t, 1, state.Question.Number)
}
