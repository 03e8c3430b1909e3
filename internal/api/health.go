package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/fridgy/backend/internal/model"
	"github.com/fridgy/backend/internal/service"
	"github.com/fridgy/backend/internal/store"
)

// HealthHandler serves the liveness probe, health metrics, and step tracking.
type HealthHandler struct {
	repo      store.Repository
	clock     service.Clock
	nutrition *service.NutritionService
	newID     IDGenerator
}

func NewHealthHandler(repo store.Repository, clock service.Clock, nutrition *service.NutritionService, newID IDGenerator) *HealthHandler {
	return &HealthHandler{repo: repo, clock: clock, nutrition: nutrition, newID: newID}
}

func (h *HealthHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/health", h.HealthCheck)

	metrics := router.Group("/health-metrics")
	{
		metrics.GET("", h.ListMetrics)
		metrics.POST("", h.CreateMetric)
		metrics.GET("/trends", h.GetMetricTrends)
		metrics.DELETE("/:id", h.DeleteMetric)
	}

	steps := router.Group("/steps")
	{
		steps.GET("", h.GetSteps)
		steps.POST("", h.CreateStepEntry)
	}
}

func (h *HealthHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "API is running"})
}

func (h *HealthHandler) ListMetrics(c *gin.Context) {
	doc, ok := loadDocument(c, h.repo)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, doc.HealthMetrics)
}

func (h *HealthHandler) CreateMetric(c *gin.Context) {
	var metric model.HealthMetric
	if err := c.ShouldBindJSON(&metric); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	doc, ok := loadDocument(c, h.repo)
	if !ok {
		return
	}

	// Server stamps both id and date, whatever the client sent.
	metric.ID = h.newID()
	metric.Date = h.clock.Now().Format(service.TimestampLayout)
	doc.HealthMetrics = append(doc.HealthMetrics, metric)

	if !saveDocument(c, h.repo, doc) {
		return
	}
	c.JSON(http.StatusCreated, metric)
}

func (h *HealthHandler) DeleteMetric(c *gin.Context) {
	doc, ok := loadDocument(c, h.repo)
	if !ok {
		return
	}

	doc.HealthMetrics, _ = model.RemoveByID(doc.HealthMetrics, c.Param("id"))

	if !saveDocument(c, h.repo, doc) {
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Metric deleted"})
}

func (h *HealthHandler) GetMetricTrends(c *gin.Context) {
	metricType := c.DefaultQuery("type", "weight")
	days := intQuery(c, "days", 30)

	doc, ok := loadDocument(c, h.repo)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.nutrition.MetricTrends(doc, metricType, days))
}

func (h *HealthHandler) GetSteps(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		date = h.clock.Now().Format(service.DateLayout)
	}

	doc, ok := loadDocument(c, h.repo)
	if !ok {
		return
	}

	entries := []model.StepEntry{}
	var total float64
	for _, entry := range doc.Steps {
		if strings.HasPrefix(entry.Date, date) {
			entries = append(entries, entry)
			total += entry.Steps
		}
	}
	c.JSON(http.StatusOK, gin.H{"date": date, "total": total, "entries": entries})
}

func (h *HealthHandler) CreateStepEntry(c *gin.Context) {
	var entry model.StepEntry
	if err := c.ShouldBindJSON(&entry); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	doc, ok := loadDocument(c, h.repo)
	if !ok {
		return
	}

	entry.ID = h.newID()
	entry.Date = h.clock.Now().Format(service.TimestampLayout)
	doc.Steps = append(doc.Steps, entry)

	if !saveDocument(c, h.repo, doc) {
		return
	}
	c.JSON(http.StatusCreated, entry)
}
