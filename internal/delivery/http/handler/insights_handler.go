package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lifetree-app/lifetree-backend/internal/usecase/insights"
)

type InsightsHandler struct {
	insightsUseCase *insights.InsightsUseCase
}

func NewInsightsHandler(insightsUseCase *insights.InsightsUseCase) *InsightsHandler {
	return &InsightsHandler{
		insightsUseCase: insightsUseCase,
	}
}

// Generate handles POST /insights/generate
// @Summary Generate journal insight
// @Description Produce an AI observation over the user's recent reflections
// @Tags insights
// @Security BearerAuth
// @Produce json
// @Success 200 {object} insights.InsightResponse
// @Failure 401 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /insights/generate [post]
func (h *InsightsHandler) Generate(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	resp, err := h.insightsUseCase.Generate(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{
			Error: "insight generation is unavailable right now",
		})
		return
	}

	c.JSON(http.StatusOK, resp)
}
