package response_models

type QuestionResponse struct {
	ID         uint   `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   uint   `json:"category"`
	Difficulty int    `json:"difficulty"`
}

type QuestionPage struct {
	Questions       []QuestionResponse `json:"questions"`
	TotalQuestions  int                `json:"total_questions"`
	CurrentCategory string             `json:"current_category"`
	Categories      []string           `json:"categories"`
}

type CreatedQuestion struct {
	ID             uint               `json:"created"`
	Questions      []QuestionResponse `json:"questions"`
	TotalQuestions int                `json:"total_questions"`
}

type DeletedQuestion struct {
	ID               uint               `json:"deleted_question"`
	CurrentQuestions []QuestionResponse `json:"current_questions"`
	TotalQuestions   int                `json:"total_questions"`
}

type SearchResult struct {
	SearchTerm     string             `json:"search_term"`
	Questions      []QuestionResponse `json:"questions"`
	TotalQuestions int                `json:"total_questions"`
}

type CategoryQuestions struct {
	Questions              []QuestionResponse `json:"questions"`
	TotalCategoryQuestions int                `json:"total_category_questions"`
	CurrentCategory        string             `json:"current_category"`
	Categories             []string           `json:"categories"`
}
