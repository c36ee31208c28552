package delivery

import (
	"net/http"

	"github.com/whoisanshul/insight-dump/internal/insight/usecase"

	"github.com/gin-gonic/gin"
)

// InsightHandler handles insight HTTP requests
type InsightHandler struct {
	insightUsecase usecase.InsightUsecase
}

// NewInsightHandler creates a new InsightHandler
func NewInsightHandler(insightUsecase usecase.InsightUsecase) *InsightHandler {
	return &InsightHandler{
		insightUsecase: insightUsecase,
	}
}

// GenerateInsightsRequest is the optional body of generate-insights
type GenerateInsightsRequest struct {
	Type    string `json:"type"`
	Persist bool   `json:"persist"`
}

// GenerateInsights analyzes the user's recent entries
// POST /api/ai/generate-insights
func (h *InsightHandler) GenerateInsights(c *gin.Context) {
	userID := c.GetString("userID")

	// Body is optional; default to the general kind, transient
	var req GenerateInsightsRequest
	_ = c.ShouldBindJSON(&req)
	if req.Type == "" {
		req.Type = "general"
	}

	result, err := h.insightUsecase.Generate(c.Request.Context(), userID, req.Type, req.Persist)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if result.Message != "" {
		c.JSON(http.StatusOK, gin.H{"insights": result.Generated, "message": result.Message})
		return
	}

	if req.Persist {
		c.JSON(http.StatusOK, gin.H{"insights": result.Saved})
		return
	}

	c.JSON(http.StatusOK, gin.H{"insights": result.Generated})
}

// GetInsights lists the user's persisted insights
// GET /api/insights
func (h *InsightHandler) GetInsights(c *gin.Context) {
	userID := c.GetString("userID")

	insights, err := h.insightUsecase.ListInsights(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"insights": insights})
}

// DeleteInsight deletes a persisted insight
// DELETE /api/insights/:id
func (h *InsightHandler) DeleteInsight(c *gin.Context) {
	userID := c.GetString("userID")
	insightID := c.Param("id")

	err := h.insightUsecase.DeleteInsight(userID, insightID)
	if err != nil {
		if err.Error() == "insight not found" {
			c.JSON(http.StatusNotFound, gin.H{"error": "Insight not found"})
			return
		}
		if err.Error() == "unauthorized" {
			c.JSON(http.StatusForbidden, gin.H{"error": "Unauthorized"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "insight deleted"})
}
