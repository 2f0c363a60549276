package controllers

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"trivia/internal/infra"
	"trivia/pkg/utils"
)

type HealthController struct {
	db *gorm.DB
}

func NewHealthController(db *gorm.DB) *HealthController {
	return &HealthController{db: db}
}

// Health godoc
// @Summary Liveness check
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} utils.ErrorResponse
// @Router /health [get]
func (h *HealthController) Health(c *gin.Context) {
	if err := infra.Ping(c.Request.Context(), h.db); err != nil {
		utils.HandleServiceError(c, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err))
		return
	}

	utils.RespondSuccess(c, gin.H{"status": "ok"})
}
