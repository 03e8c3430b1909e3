package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fridgy/backend/internal/service"
	"github.com/fridgy/backend/internal/store"
)

// AnalyticsHandler serves the derived views: recommendations, nutrition
// summaries, and period statistics.
type AnalyticsHandler struct {
	repo      store.Repository
	nutrition *service.NutritionService
}

func NewAnalyticsHandler(repo store.Repository, nutrition *service.NutritionService) *AnalyticsHandler {
	return &AnalyticsHandler{repo: repo, nutrition: nutrition}
}

func (h *AnalyticsHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/recommendations", h.GetRecommendations)
	router.GET("/nutrition/daily", h.GetDailyNutrition)
	router.GET("/nutrition/trends", h.GetNutritionTrends)
	router.GET("/stats", h.GetStats)
}

func (h *AnalyticsHandler) GetRecommendations(c *gin.Context) {
	doc, ok := loadDocument(c, h.repo)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, service.Recommend(doc))
}

func (h *AnalyticsHandler) GetDailyNutrition(c *gin.Context) {
	doc, ok := loadDocument(c, h.repo)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.nutrition.Daily(doc, c.Query("date")))
}

func (h *AnalyticsHandler) GetNutritionTrends(c *gin.Context) {
	days := intQuery(c, "days", 30)

	doc, ok := loadDocument(c, h.repo)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.nutrition.Trends(doc, days))
}

func (h *AnalyticsHandler) GetStats(c *gin.Context) {
	days := intQuery(c, "days", 30)

	doc, ok := loadDocument(c, h.repo)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.nutrition.Stats(doc, days))
}
