package quiz

import "errors"

var (
	ErrNoQuestions     = errors.New("quiz has no questions")
	ErrQuizFinished    = errors.New("quiz already finished")
	ErrWrongQuestion   = errors.New("answer does not match the current question")
	ErrUnknownQuestion = errors.New("unknown question id")
)

// Option is one selectable answer with its score weight.
type Option struct {
	Value  int    `json:"value"`
	Label  string `json:"label"`
	Points int    `json:"points"`
}

// Question is one quiz step. Questions are asked in order, with no backward
// navigation.
type Question struct {
	ID       string   `json:"id"`
	Question string   `json:"question"`
	Options  []Option `json:"options"`
}

// Session walks a visitor through the questions and accumulates points.
//
// States: question i for i in [0, len-1], then a terminal result state.
// Answering the current question records (or overwrites) its points and
// advances; Reset returns to the first question with an empty answer set.
type Session struct {
	questions []Question
	current   int
	answers   map[string]int
	finished  bool
}

func NewSession(questions []Question) (*Session, error) {
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}
	return &Session{
		questions: questions,
		answers:   make(map[string]int),
	}, nil
}

// Answer records points for the current question and advances. The last
// answer moves the session to the result state.
func (s *Session) Answer(questionID string, points int) error {
	if s.finished {
		return ErrQuizFinished
	}
	if s.questions[s.current].ID != questionID {
		return ErrWrongQuestion
	}
	s.answers[questionID] = points
	if s.current < len(s.questions)-1 {
		s.current++
	} else {
		s.finished = true
	}
	return nil
}

// Current returns the index of the question being asked. Only meaningful
// while Finished is false.
func (s *Session) Current() int {
	return s.current
}

func (s *Session) Finished() bool {
	return s.finished
}

// Total is the sum of all recorded points.
func (s *Session) Total() int {
	return Score(s.answers)
}

// Answers returns a copy of the recorded answer set.
func (s *Session) Answers() map[string]int {
	out := make(map[string]int, len(s.answers))
	for k, v := range s.answers {
		out[k] = v
	}
	return out
}

// Reset returns to the first question with an empty answer set. Safe to call
// from any state.
func (s *Session) Reset() {
	s.current = 0
	s.finished = false
	s.answers = make(map[string]int)
}

// Score sums a recorded answer set.
func Score(answers map[string]int) int {
	total := 0
	for _, points := range answers {
		total += points
	}
	return total
}

// CatalogSize is the number of plans the tier mapping assumes, in ascending
// speed order. The thresholds below are calibrated against it.
const CatalogSize = 4

// TierIndex maps a quiz total to a position in the speed-ascending catalog.
// Fixed boundaries: <=3, <=5, <=7, above.
func TierIndex(total int) int {
	switch {
	case total <= 3:
		return 0
	case total <= 5:
		return 1
	case total <= 7:
		return 2
	default:
		return 3
	}
}
