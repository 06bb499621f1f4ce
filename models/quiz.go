package models

// Question is a single multiple-choice quiz question. The json tags match
// the shape the model is asked to return for generated quizzes.
type Question struct {
	Question    string   `json:"question"`
	Options     []string `json:"options"`
	Correct     int      `json:"correct"`
	Explanation string   `json:"explanation"`
}

type AnswerRequest struct {
	Choice int `json:"choice"`
}

// QuestionView is the client-facing rendering of the current question.
// Correct index and explanation are withheld until the question is answered.
type QuestionView struct {
	Question    string   `json:"question"`
	Options     []string `json:"options"`
	Correct     *int     `json:"correct,omitempty"`
	Explanation string   `json:"explanation,omitempty"`
}

// QuizState is a snapshot of the quiz workflow.
type QuizState struct {
	TotalQuestions int           `json:"total_questions"`
	CurrentIndex   int           `json:"current_index"`
	Question       *QuestionView `json:"question,omitempty"`
	Score          int           `json:"score"`
	Answered       bool          `json:"answered"`
	Selected       *int          `json:"selected,omitempty"`
	SelectedRight  *bool         `json:"selected_right,omitempty"`
	Finished       bool          `json:"finished"`
	Generating     bool          `json:"generating"`
	Error          string        `json:"error"`
}
