package request_models

// CreateQuestionRequest uses pointers so that a JSON null or an absent
// field fails `required` while zero values such as difficulty 0 pass.
type CreateQuestionRequest struct {
	Question   *string `json:"question" binding:"required"`
	Answer     *string `json:"answer" binding:"required"`
	Difficulty *int    `json:"difficulty" binding:"required"`
	Category   *uint   `json:"category" binding:"required"`
}

type SearchQuestionsRequest struct {
	SearchTerm *string `json:"search_term" binding:"required"`
}

type CategoryQuestionsRequest struct {
	Category *uint `json:"category" binding:"required"`
}
