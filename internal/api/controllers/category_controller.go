package controllers

import (
	"github.com/gin-gonic/gin"
	"trivia/internal/services"
	"trivia/pkg/utils"
)

type CategoryController struct {
	categoryService services.CategoryServiceInterface
}

func NewCategoryController(categoryService services.CategoryServiceInterface) *CategoryController {
	return &CategoryController{
		categoryService: categoryService,
	}
}

// ListCategories godoc
// @Summary List categories
// @Description Fetch every category in id order
// @Tags Categories
// @Produce json
// @Success 200 {object} response_models.CategoryList
// @Failure 404 {object} utils.ErrorResponse
// @Router /categories [get]
func (cc *CategoryController) ListCategories(c *gin.Context) {
	categories, err := cc.categoryService.ListCategories(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, categories)
}
