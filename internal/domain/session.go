package domain

import "sync"

// SessionState identifies where a session is in its lifecycle.
type SessionState string

const (
	// StateEmpty means no quiz has been generated yet.
	StateEmpty SessionState = "empty"
	// StateInProgress means the pointer is on a question.
	StateInProgress SessionState = "in_progress"
	// StateCompleted means the pointer has moved past the last question.
	StateCompleted SessionState = "completed"
)

// Session is the mutable per-user record of the active quiz, the current
// question pointer and the answers given so far. All transitions are no-ops
// when invalid; none of them can corrupt state. The mutex makes a session safe
// under concurrent requests from the same browser.
type Session struct {
	mu           sync.Mutex
	quiz         Quiz
	currentIndex int
	answers      map[int]string
}

func NewSession() *Session {
	return &Session{}
}

// Start loads a freshly generated quiz and resets the pointer and answers.
// An empty quiz is allowed and lands the session directly in Completed.
func (s *Session) Start(quiz Quiz) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if quiz == nil {
		quiz = Quiz{}
	}
	s.quiz = quiz
	s.currentIndex = 0
	s.answers = make(map[int]string)
}

// Restart clears all fields, returning the session to Empty.
func (s *Session) Restart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.quiz = nil
	s.currentIndex = 0
	s.answers = nil
}

// State derives the lifecycle state. A nil quiz means Empty; a pointer equal
// to the quiz length means Completed.
func (s *Session) State() SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stateLocked()
}

func (s *Session) stateLocked() SessionState {
	switch {
	case s.quiz == nil:
		return StateEmpty
	case s.currentIndex < len(s.quiz):
		return StateInProgress
	default:
		return StateCompleted
	}
}

// SelectAnswer records or overwrites the chosen label for a question index.
// Last write wins. It never advances the pointer and is a no-op outside
// InProgress or for an index outside the quiz.
func (s *Session) SelectAnswer(index int, label string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stateLocked() != StateInProgress {
		return
	}
	if index < 0 || index >= len(s.quiz) {
		return
	}
	s.answers[index] = label
}

// Next advances the pointer by one, whether or not the current question has
// been answered. Reaching the quiz length puts the session in Completed.
// Returns false when the session is not InProgress.
func (s *Session) Next() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stateLocked() != StateInProgress {
		return false
	}
	s.currentIndex++
	return true
}

// Previous moves the pointer back by one. No-op at index 0 or when Empty.
func (s *Session) Previous() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.quiz == nil || s.currentIndex == 0 {
		return false
	}
	s.currentIndex--
	return true
}

// AnswerFor returns the last chosen label for a question index, so the UI can
// pre-select it on re-render.
func (s *Session) AnswerFor(index int) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	label, ok := s.answers[index]
	return label, ok
}

// View is the render derivation of a session: everything the UI shell needs
// to draw the current state. Computed per call, never stored.
type View struct {
	State          SessionState
	CurrentIndex   int
	Total          int
	Question       *Question
	SelectedLabel  string
	HasSelection   bool
	CanGoPrevious  bool
	IsLastQuestion bool
}

// View captures a consistent snapshot under one lock.
func (s *Session) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := View{
		State:        s.stateLocked(),
		CurrentIndex: s.currentIndex,
		Total:        len(s.quiz),
	}
	if v.State != StateInProgress {
		return v
	}

	q := s.quiz[s.currentIndex]
	v.Question = &q
	v.SelectedLabel, v.HasSelection = s.answers[s.currentIndex]
	v.CanGoPrevious = s.currentIndex > 0
	v.IsLastQuestion = s.currentIndex == len(s.quiz)-1
	return v
}

// QuestionResult is the per-question row of the results table.
type QuestionResult struct {
	Index         int
	Question      string
	Options       map[string]string
	UserAnswer    string
	Answered      bool
	CorrectAnswer string
	Correct       bool
	Explanation   string
}

// Results is the completed-quiz summary.
type Results struct {
	Score       int
	Total       int
	AllAnswered bool
	Questions   []QuestionResult
}

// Results recomputes the score from the recorded answers. Valid only in
// Completed; it is deterministic and idempotent on unchanged state. Unanswered
// questions count as not correct and clear the AllAnswered flag.
func (s *Session) Results() (*Results, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.stateLocked() {
	case StateEmpty:
		return nil, NewNoActiveQuizError()
	case StateInProgress:
		return nil, NewQuizNotCompletedError(s.currentIndex, len(s.quiz))
	}

	res := &Results{
		Total:       len(s.quiz),
		AllAnswered: true,
		Questions:   make([]QuestionResult, 0, len(s.quiz)),
	}
	for i, q := range s.quiz {
		row := QuestionResult{
			Index:         i,
			Question:      q.Question,
			Options:       q.Options,
			CorrectAnswer: q.Answer,
			Explanation:   q.Explanation,
		}
		if label, ok := s.answers[i]; ok {
			row.Answered = true
			row.UserAnswer = label
			row.Correct = label == q.Answer
			if row.Correct {
				res.Score++
			}
		} else {
			res.AllAnswered = false
		}
		res.Questions = append(res.Questions, row)
	}
	return res, nil
}
