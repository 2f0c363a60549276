package request_models

// QuizQuestionRequest asks for the next quiz question. Category 0 plays
// across all categories.
type QuizQuestionRequest struct {
	Category          *uint  `json:"category" binding:"required"`
	PreviousQuestions []uint `json:"previous_questions"`
}
