package api

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/fridgy/backend/internal/service"
	"github.com/fridgy/backend/internal/store"
)

// IDGenerator produces a fresh opaque record id on each call.
type IDGenerator func() string

// SetupAPI wires every handler under /api against the given repository. The
// clock and id generator are injectable for tests; pass nil for production
// defaults.
func SetupAPI(router *gin.Engine, repo store.Repository, clock service.Clock, newID IDGenerator) {
	if clock == nil {
		clock = service.SystemClock()
	}
	if newID == nil {
		newID = uuid.NewString
	}

	api := router.Group("/api")
	{
		// Initialize services
		nutritionService := service.NewNutritionService(clock)
		reminderService := service.NewReminderService(clock)

		// Initialize handlers
		foodHandler := NewFoodHandler(repo, reminderService, newID)
		recipeHandler := NewRecipeHandler(repo, clock, newID)
		mealHandler := NewMealHandler(repo, clock, newID)
		healthHandler := NewHealthHandler(repo, clock, nutritionService, newID)
		analyticsHandler := NewAnalyticsHandler(repo, nutritionService)

		// Register routes
		foodHandler.RegisterRoutes(api)
		recipeHandler.RegisterRoutes(api)
		mealHandler.RegisterRoutes(api)
		healthHandler.RegisterRoutes(api)
		analyticsHandler.RegisterRoutes(api)
	}
}
