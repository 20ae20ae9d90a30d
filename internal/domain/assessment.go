package domain

// QuestionType identifies the response format of an assessment question.
type QuestionType string

// Supported question types.
const (
	QuestionTypeMultipleChoice QuestionType = "multiple-choice"
	QuestionTypeShortAnswer    QuestionType = "short-answer"
	QuestionTypeCaseAnalysis   QuestionType = "case-analysis"
	QuestionTypeDifferential   QuestionType = "differential"
)

// AssessmentQuestion is a single exam item with its model answer and
// explanation.
type AssessmentQuestion struct {
	ID            string       `json:"id"`
	Type          QuestionType `json:"type"`
	Question      string       `json:"question"`
	Options       []string     `json:"options,omitempty"`
	CorrectAnswer string       `json:"correctAnswer,omitempty"`
	Explanation   string       `json:"explanation,omitempty"`
	Difficulty    Difficulty   `json:"difficulty"`
	Category      string       `json:"category"`
}

// Assessment is a timed set of questions on one topic.
type Assessment struct {
	Title       string               `json:"title"`
	Description string               `json:"description"`
	TimeLimit   int                  `json:"timeLimit"`
	Difficulty  string               `json:"difficulty"`
	Category    string               `json:"category"`
	Questions   []AssessmentQuestion `json:"questions"`
}

// AssessmentTemplate summarizes a prebuilt assessment offered by the catalog.
type AssessmentTemplate struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Difficulty  string `json:"difficulty"`
	Questions   int    `json:"questions"`
	TimeLimit   int    `json:"timeLimit"`
}
