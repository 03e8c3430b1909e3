package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fridgy/backend/internal/model"
	"github.com/fridgy/backend/internal/service"
	"github.com/fridgy/backend/internal/store"
)

// FoodHandler serves the food inventory and its expiry reminders.
type FoodHandler struct {
	repo      store.Repository
	reminders *service.ReminderService
	newID     IDGenerator
}

func NewFoodHandler(repo store.Repository, reminders *service.ReminderService, newID IDGenerator) *FoodHandler {
	return &FoodHandler{repo: repo, reminders: reminders, newID: newID}
}

func (h *FoodHandler) RegisterRoutes(router *gin.RouterGroup) {
	foods := router.Group("/foods")
	{
		foods.GET("", h.ListFoods)
		foods.POST("", h.CreateFood)
		foods.PUT("/:id", h.UpdateFood)
		foods.DELETE("/:id", h.DeleteFood)
	}
	router.GET("/reminders", h.GetReminders)
}

func (h *FoodHandler) ListFoods(c *gin.Context) {
	doc, ok := loadDocument(c, h.repo)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, doc.Foods)
}

func (h *FoodHandler) CreateFood(c *gin.Context) {
	var food model.Food
	if err := c.ShouldBindJSON(&food); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	doc, ok := loadDocument(c, h.repo)
	if !ok {
		return
	}

	// Server-issued id wins over anything the client sent.
	food.ID = h.newID()
	doc.Foods = append(doc.Foods, food)

	if !saveDocument(c, h.repo, doc) {
		return
	}
	c.JSON(http.StatusCreated, food)
}

func (h *FoodHandler) UpdateFood(c *gin.Context) {
	id := c.Param("id")

	var patch map[string]any
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	delete(patch, "id")

	doc, ok := loadDocument(c, h.repo)
	if !ok {
		return
	}

	i := model.FindByID(doc.Foods, id)
	if i < 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Food not found"})
		return
	}
	if err := model.MergePatch(&doc.Foods[i], patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !saveDocument(c, h.repo, doc) {
		return
	}
	c.JSON(http.StatusOK, doc.Foods[i])
}

func (h *FoodHandler) DeleteFood(c *gin.Context) {
	id := c.Param("id")

	doc, ok := loadDocument(c, h.repo)
	if !ok {
		return
	}

	// Deleting an unknown id is a silent success, matching list semantics.
	doc.Foods, _ = model.RemoveByID(doc.Foods, id)

	if !saveDocument(c, h.repo, doc) {
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Food deleted"})
}

func (h *FoodHandler) GetReminders(c *gin.Context) {
	window := intQuery(c, "days", service.DefaultReminderWindow)

	doc, ok := loadDocument(c, h.repo)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.reminders.Upcoming(doc, window))
}
