package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fridgy/backend/internal/model"
	"github.com/fridgy/backend/internal/service"
	"github.com/fridgy/backend/internal/store"
)

// MealHandler serves meal logging.
type MealHandler struct {
	repo  store.Repository
	clock service.Clock
	newID IDGenerator
}

func NewMealHandler(repo store.Repository, clock service.Clock, newID IDGenerator) *MealHandler {
	return &MealHandler{repo: repo, clock: clock, newID: newID}
}

func (h *MealHandler) RegisterRoutes(router *gin.RouterGroup) {
	meals := router.Group("/meals")
	{
		meals.GET("", h.ListMeals)
		meals.POST("", h.CreateMeal)
		meals.DELETE("/:id", h.DeleteMeal)
	}
}

func (h *MealHandler) ListMeals(c *gin.Context) {
	doc, ok := loadDocument(c, h.repo)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, doc.Meals)
}

func (h *MealHandler) CreateMeal(c *gin.Context) {
	var meal model.Meal
	if err := c.ShouldBindJSON(&meal); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	doc, ok := loadDocument(c, h.repo)
	if !ok {
		return
	}

	meal.ID = h.newID()

	now := h.clock.Now()
	if meal.Date == "" {
		meal.Date = now.Format(service.TimestampLayout)
	}
	if meal.Time == "" {
		meal.Time = now.Format(service.ClockLayout)
	}

	// A client-supplied nutrition profile is taken verbatim; only an absent
	// or all-zero one is computed from the referenced foods.
	if meal.Nutrition.IsZero() {
		meal.Nutrition = service.ComputeMealNutrition(doc, meal.Foods)
	}

	doc.Meals = append(doc.Meals, meal)

	if !saveDocument(c, h.repo, doc) {
		return
	}
	c.JSON(http.StatusCreated, meal)
}

func (h *MealHandler) DeleteMeal(c *gin.Context) {
	doc, ok := loadDocument(c, h.repo)
	if !ok {
		return
	}

	doc.Meals, _ = model.RemoveByID(doc.Meals, c.Param("id"))

	if !saveDocument(c, h.repo, doc) {
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Meal deleted"})
}
