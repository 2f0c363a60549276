package response_models

// QuizQuestion is the next quiz step. Question is nil and QuizComplete is
// true once every question of the category has been served.
type QuizQuestion struct {
	Question               *QuestionResponse `json:"question"`
	TotalCategoryQuestions int               `json:"total_category_questions"`
	CurrentCategory        string            `json:"current_category"`
	QuizComplete           bool              `json:"quiz_complete"`
}
