package response_models

type CategoryResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type CategoryList struct {
	Categories      []CategoryResponse `json:"categories"`
	TotalCategories int                `json:"total_categories"`
}
