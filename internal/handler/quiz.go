package handler

import (
	"time"

	"quizforge/internal/dto"
	"quizforge/internal/logger"
	"quizforge/internal/service"
	"quizforge/internal/validation"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// SessionCookie is the cookie carrying the ULID a browser's session lives under.
const SessionCookie = "quiz_session"

// QuizHandler handles quiz-related HTTP requests
type QuizHandler struct {
	service   service.QuizService
	validator *validation.Validator
}

// NewQuizHandler creates a new QuizHandler instance
func NewQuizHandler(service service.QuizService, validator *validation.Validator) *QuizHandler {
	return &QuizHandler{
		service:   service,
		validator: validator,
	}
}

// Generate godoc
// @Summary Generate a quiz
// @Description Generates a multiple-choice quiz for a topic and replaces the session's quiz on success
// @Tags quiz
// @Accept json
// @Produce json
// @Param request body dto.GenerateRequest true "Topic and question count"
// @Success 200 {object} dto.StateResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 502 {object} middleware.ErrorResponse
// @Failure 503 {object} middleware.ErrorResponse
// @Router /quiz/generate [post]
func (h *QuizHandler) Generate(c *fiber.Ctx) error {
	var req dto.GenerateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if errs := h.validator.ValidateGenerateRequest(req.Topic, req.NumQuestions); len(errs) > 0 {
		return errs
	}

	id, state, err := h.service.Generate(c.Context(), c.Cookies(SessionCookie), req.Topic, req.NumQuestions)
	if err != nil {
		// The previous quiz (if any) is untouched; the client may retry.
		return err
	}

	c.Cookie(&fiber.Cookie{
		Name:     SessionCookie,
		Value:    id,
		HTTPOnly: true,
		SameSite: "Lax",
		Expires:  time.Now().Add(24 * time.Hour),
	})

	logger.Get().Info("Quiz generated for session",
		zap.String("session_id", id),
		zap.String("topic", req.Topic),
		zap.Int("num_questions", req.NumQuestions),
	)
	return c.JSON(state)
}

// State godoc
// @Summary Get current quiz state
// @Description Returns the render state of the active session: question, options, selected label, navigation
// @Tags quiz
// @Produce json
// @Success 200 {object} dto.StateResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /quiz [get]
func (h *QuizHandler) State(c *fiber.Ctx) error {
	sessionID, err := h.sessionID(c)
	if err != nil {
		return err
	}
	state, err := h.service.State(sessionID)
	if err != nil {
		return err
	}
	return c.JSON(state)
}

// SelectAnswer godoc
// @Summary Select an answer
// @Description Records the chosen label for a question index; last write wins and the pointer does not advance
// @Tags quiz
// @Accept json
// @Produce json
// @Param request body dto.AnswerRequest true "Question index and chosen label"
// @Success 200 {object} dto.StateResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /quiz/answer [post]
func (h *QuizHandler) SelectAnswer(c *fiber.Ctx) error {
	var req dto.AnswerRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if errs := h.validator.ValidateAnswerRequest(req.Index, req.Label); len(errs) > 0 {
		return errs
	}

	sessionID, err := h.sessionID(c)
	if err != nil {
		return err
	}
	state, err := h.service.SelectAnswer(sessionID, req.Index, req.Label)
	if err != nil {
		return err
	}
	return c.JSON(state)
}

// Next godoc
// @Summary Go to the next question
// @Description Advances the pointer, answered or not; past the last question the quiz is completed
// @Tags quiz
// @Produce json
// @Success 200 {object} dto.StateResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /quiz/next [post]
func (h *QuizHandler) Next(c *fiber.Ctx) error {
	sessionID, err := h.sessionID(c)
	if err != nil {
		return err
	}
	state, err := h.service.Next(sessionID)
	if err != nil {
		return err
	}
	return c.JSON(state)
}

// Previous godoc
// @Summary Go to the previous question
// @Description Moves the pointer back; a no-op on the first question
// @Tags quiz
// @Produce json
// @Success 200 {object} dto.StateResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /quiz/previous [post]
func (h *QuizHandler) Previous(c *fiber.Ctx) error {
	sessionID, err := h.sessionID(c)
	if err != nil {
		return err
	}
	state, err := h.service.Previous(sessionID)
	if err != nil {
		return err
	}
	return c.JSON(state)
}

// Results godoc
// @Summary Get quiz results
// @Description Returns the score and the per-question results table once the quiz is completed
// @Tags quiz
// @Produce json
// @Success 200 {object} dto.ResultsResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 409 {object} middleware.ErrorResponse
// @Router /quiz/results [get]
func (h *QuizHandler) Results(c *fiber.Ctx) error {
	sessionID, err := h.sessionID(c)
	if err != nil {
		return err
	}
	results, err := h.service.Results(sessionID)
	if err != nil {
		return err
	}
	return c.JSON(results)
}

// Restart godoc
// @Summary Restart the session
// @Description Clears the quiz, answers and pointer, returning the session to its empty state
// @Tags quiz
// @Produce json
// @Success 200 {object} dto.StateResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /quiz/restart [post]
func (h *QuizHandler) Restart(c *fiber.Ctx) error {
	sessionID, err := h.sessionID(c)
	if err != nil {
		return err
	}
	state, err := h.service.Restart(sessionID)
	if err != nil {
		return err
	}
	return c.JSON(state)
}

func (h *QuizHandler) sessionID(c *fiber.Ctx) (string, error) {
	sessionID := c.Cookies(SessionCookie)
	if errs := h.validator.ValidateSessionID(sessionID); len(errs) > 0 {
		return "", errs
	}
	return sessionID, nil
}
