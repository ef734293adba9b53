package request

// QuizAnswersRequest carries the completed answer set keyed by question id,
// each value being the points of the chosen option.
type QuizAnswersRequest struct {
	Answers map[string]int `json:"answers" binding:"required"`
}
