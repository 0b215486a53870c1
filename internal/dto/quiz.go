package dto

// GenerateRequest asks for a fresh quiz for the session.
// @Description Request body for generating a quiz
type GenerateRequest struct {
	Topic        string `json:"topic" example:"Photosynthesis"`
	NumQuestions int    `json:"num_questions" example:"5"`
}

// AnswerRequest records a chosen label for a question index.
// @Description Request body for selecting an answer
type AnswerRequest struct {
	Index int    `json:"index" example:"0"`
	Label string `json:"label" example:"A"`
}

// OptionView is one labeled option in display order.
type OptionView struct {
	Label string `json:"label"`
	Text  string `json:"text"`
}

// QuestionView is the render instruction for the active question.
type QuestionView struct {
	Number        int          `json:"number"`
	Total         int          `json:"total"`
	Question      string       `json:"question"`
	Options       []OptionView `json:"options"`
	SelectedLabel string       `json:"selected_label,omitempty"`
}

// StateResponse is the full render instruction for the session's current
// state: the active question (if any) plus navigation enablement.
type StateResponse struct {
	SessionID      string        `json:"session_id"`
	Status         string        `json:"status"`
	Question       *QuestionView `json:"question,omitempty"`
	CanGoPrevious  bool          `json:"can_go_previous"`
	CanGoNext      bool          `json:"can_go_next"`
	NextButtonText string        `json:"next_button_text,omitempty"`
}

// ResultRow is one line of the results table.
type ResultRow struct {
	Number            int    `json:"number"`
	Question          string `json:"question"`
	Answered          bool   `json:"answered"`
	UserAnswer        string `json:"user_answer,omitempty"`
	UserAnswerText    string `json:"user_answer_text,omitempty"`
	CorrectAnswer     string `json:"correct_answer"`
	CorrectAnswerText string `json:"correct_answer_text"`
	Correct           bool   `json:"correct"`
	Explanation       string `json:"explanation"`
}

// ResultsResponse is the completed-quiz summary.
type ResultsResponse struct {
	SessionID   string      `json:"session_id"`
	Score       int         `json:"score"`
	Total       int         `json:"total"`
	ScoreLine   string      `json:"score_line"`
	AllAnswered bool        `json:"all_answered"`
	Note        string      `json:"note,omitempty"`
	Results     []ResultRow `json:"results"`
}

// ErrorResponse represents an error in the API response
type ErrorResponse struct {
	Error string `json:"error"`
}
