package service

import (
	"context"
	"fmt"

	"quizforge/internal/domain"
	"quizforge/internal/dto"
	"quizforge/internal/logger"
	"quizforge/internal/session"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// QuizService defines the operations the HTTP surface dispatches to.
type QuizService interface {
	// Generate produces a quiz for the session and returns the id the session
	// lives under (a new one when the given id was empty or unknown).
	Generate(ctx context.Context, sessionID, topic string, numQuestions int) (string, *dto.StateResponse, error)

	// State returns the render instruction for the session's current state.
	State(sessionID string) (*dto.StateResponse, error)

	// SelectAnswer records a label for a question index. Last write wins.
	SelectAnswer(sessionID string, index int, label string) (*dto.StateResponse, error)

	// Next advances the question pointer; Previous moves it back. Invalid
	// navigation is a no-op that returns the unchanged state.
	Next(sessionID string) (*dto.StateResponse, error)
	Previous(sessionID string) (*dto.StateResponse, error)

	// Results computes the score table. Valid only once the quiz is completed.
	Results(sessionID string) (*dto.ResultsResponse, error)

	// Restart clears the session back to Empty.
	Restart(sessionID string) (*dto.StateResponse, error)
}

type quizService struct {
	store     *session.Store
	generator domain.QuizGenerator
	flight    singleflight.Group
}

// NewQuizService creates a new instance of quizService
func NewQuizService(store *session.Store, generator domain.QuizGenerator) QuizService {
	return &quizService{
		store:     store,
		generator: generator,
	}
}

// Generate runs the generation pipeline and replaces the session's quiz only
// on success; any pipeline failure leaves the previous quiz state exactly as
// it was. Concurrent generate calls for the same session collapse into one
// in-flight generation via singleflight.
func (s *quizService) Generate(ctx context.Context, sessionID, topic string, numQuestions int) (string, *dto.StateResponse, error) {
	id, sess := s.store.GetOrCreate(sessionID)

	_, err, shared := s.flight.Do(id, func() (interface{}, error) {
		quiz, err := s.generator.Generate(ctx, topic, numQuestions)
		if err != nil {
			return nil, err
		}
		sess.Start(quiz)
		return nil, nil
	})
	if shared {
		logger.Get().Info("Joined an in-flight generation for session", zap.String("session_id", id))
	}
	if err != nil {
		return id, nil, err
	}

	return id, buildState(id, sess), nil
}

func (s *quizService) State(sessionID string) (*dto.StateResponse, error) {
	sess := s.store.Get(sessionID)
	if sess == nil {
		return nil, domain.NewSessionNotFoundError(sessionID)
	}
	return buildState(sessionID, sess), nil
}

func (s *quizService) SelectAnswer(sessionID string, index int, label string) (*dto.StateResponse, error) {
	sess := s.store.Get(sessionID)
	if sess == nil {
		return nil, domain.NewSessionNotFoundError(sessionID)
	}
	if sess.State() == domain.StateEmpty {
		return nil, domain.NewNoActiveQuizError()
	}
	sess.SelectAnswer(index, label)
	return buildState(sessionID, sess), nil
}

func (s *quizService) Next(sessionID string) (*dto.StateResponse, error) {
	sess := s.store.Get(sessionID)
	if sess == nil {
		return nil, domain.NewSessionNotFoundError(sessionID)
	}
	if sess.State() == domain.StateEmpty {
		return nil, domain.NewNoActiveQuizError()
	}
	sess.Next()
	return buildState(sessionID, sess), nil
}

func (s *quizService) Previous(sessionID string) (*dto.StateResponse, error) {
	sess := s.store.Get(sessionID)
	if sess == nil {
		return nil, domain.NewSessionNotFoundError(sessionID)
	}
	if sess.State() == domain.StateEmpty {
		return nil, domain.NewNoActiveQuizError()
	}
	sess.Previous()
	return buildState(sessionID, sess), nil
}

func (s *quizService) Results(sessionID string) (*dto.ResultsResponse, error) {
	sess := s.store.Get(sessionID)
	if sess == nil {
		return nil, domain.NewSessionNotFoundError(sessionID)
	}

	res, err := sess.Results()
	if err != nil {
		return nil, err
	}

	resp := &dto.ResultsResponse{
		SessionID:   sessionID,
		Score:       res.Score,
		Total:       res.Total,
		ScoreLine:   fmt.Sprintf("You scored %d out of %d questions!", res.Score, res.Total),
		AllAnswered: res.AllAnswered,
		Results:     make([]dto.ResultRow, 0, len(res.Questions)),
	}
	if !res.AllAnswered {
		resp.Note = "Some questions were not answered. Your score reflects answered questions only."
	}

	for _, q := range res.Questions {
		row := dto.ResultRow{
			Number:            q.Index + 1,
			Question:          q.Question,
			Answered:          q.Answered,
			CorrectAnswer:     q.CorrectAnswer,
			CorrectAnswerText: q.Options[q.CorrectAnswer],
			Correct:           q.Correct,
			Explanation:       q.Explanation,
		}
		if q.Answered {
			row.UserAnswer = q.UserAnswer
			// A label outside the option set renders with empty text rather
			// than failing; that is the loose-mode data-contract tradeoff.
			row.UserAnswerText = q.Options[q.UserAnswer]
		}
		resp.Results = append(resp.Results, row)
	}
	return resp, nil
}

func (s *quizService) Restart(sessionID string) (*dto.StateResponse, error) {
	sess := s.store.Get(sessionID)
	if sess == nil {
		return nil, domain.NewSessionNotFoundError(sessionID)
	}
	sess.Restart()
	return buildState(sessionID, sess), nil
}

// buildState derives the render instruction from a session snapshot.
func buildState(sessionID string, sess *domain.Session) *dto.StateResponse {
	v := sess.View()

	resp := &dto.StateResponse{
		SessionID:     sessionID,
		Status:        string(v.State),
		CanGoPrevious: v.CanGoPrevious,
		CanGoNext:     v.State == domain.StateInProgress,
	}
	if v.Question == nil {
		return resp
	}

	qv := &dto.QuestionView{
		Number:        v.CurrentIndex + 1,
		Total:         v.Total,
		Question:      v.Question.Question,
		SelectedLabel: v.SelectedLabel,
	}
	// Fixed label order for display; options the model omitted are skipped.
	for _, label := range domain.OptionLabels {
		if text, ok := v.Question.Options[label]; ok {
			qv.Options = append(qv.Options, dto.OptionView{Label: label, Text: text})
		}
	}
	resp.Question = qv

	if v.IsLastQuestion {
		resp.NextButtonText = "Complete Quiz"
	} else {
		resp.NextButtonText = "Next Question"
	}
	return resp
}
