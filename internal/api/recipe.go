package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fridgy/backend/internal/model"
	"github.com/fridgy/backend/internal/service"
	"github.com/fridgy/backend/internal/store"
)

// RecipeHandler serves recipes and recipe sharing.
type RecipeHandler struct {
	repo  store.Repository
	clock service.Clock
	newID IDGenerator
}

func NewRecipeHandler(repo store.Repository, clock service.Clock, newID IDGenerator) *RecipeHandler {
	return &RecipeHandler{repo: repo, clock: clock, newID: newID}
}

func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup) {
	recipes := router.Group("/recipes")
	{
		recipes.GET("", h.ListRecipes)
		recipes.POST("", h.CreateRecipe)
		recipes.GET("/shared", h.ListSharedRecipes)
		recipes.GET("/:id", h.GetRecipe)
		recipes.PUT("/:id", h.UpdateRecipe)
		recipes.DELETE("/:id", h.DeleteRecipe)
		recipes.POST("/:id/share", h.ShareRecipe)
	}
}

func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	doc, ok := loadDocument(c, h.repo)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, doc.Recipes)
}

func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	doc, ok := loadDocument(c, h.repo)
	if !ok {
		return
	}

	i := model.FindByID(doc.Recipes, c.Param("id"))
	if i < 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
		return
	}
	c.JSON(http.StatusOK, doc.Recipes[i])
}

func (h *RecipeHandler) CreateRecipe(c *gin.Context) {
	var recipe model.Recipe
	if err := c.ShouldBindJSON(&recipe); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	doc, ok := loadDocument(c, h.repo)
	if !ok {
		return
	}

	recipe.ID = h.newID()
	doc.Recipes = append(doc.Recipes, recipe)

	if !saveDocument(c, h.repo, doc) {
		return
	}
	c.JSON(http.StatusCreated, recipe)
}

func (h *RecipeHandler) UpdateRecipe(c *gin.Context) {
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

	i := model.FindByID(doc.Recipes, id)
	if i < 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
		return
	}
	if err := model.MergePatch(&doc.Recipes[i], patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !saveDocument(c, h.repo, doc) {
		return
	}
	c.JSON(http.StatusOK, doc.Recipes[i])
}

func (h *RecipeHandler) DeleteRecipe(c *gin.Context) {
	doc, ok := loadDocument(c, h.repo)
	if !ok {
		return
	}

	doc.Recipes, _ = model.RemoveByID(doc.Recipes, c.Param("id"))

	if !saveDocument(c, h.repo, doc) {
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Recipe deleted"})
}

// shareRequest is the body of the share operation.
type shareRequest struct {
	SharedBy string `json:"sharedBy"`
	IsPublic *bool  `json:"isPublic"`
}

func (h *RecipeHandler) ShareRecipe(c *gin.Context) {
	id := c.Param("id")

	var req shareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	doc, ok := loadDocument(c, h.repo)
	if !ok {
		return
	}

	i := model.FindByID(doc.Recipes, id)
	if i < 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
		return
	}

	sharedBy := req.SharedBy
	if sharedBy == "" {
		sharedBy = "Anonymous"
	}
	isPublic := true
	if req.IsPublic != nil {
		isPublic = *req.IsPublic
	}

	// The shared record embeds a copy of the recipe taken now; later edits
	// to the original do not reach it.
	shared := model.SharedRecipe{
		ID:       h.newID(),
		RecipeID: id,
		Recipe:   doc.Recipes[i],
		SharedBy: sharedBy,
		SharedAt: h.clock.Now().Format(service.TimestampLayout),
		IsPublic: isPublic,
	}
	doc.SharedRecipes = append(doc.SharedRecipes, shared)

	if !saveDocument(c, h.repo, doc) {
		return
	}
	c.JSON(http.StatusCreated, shared)
}

func (h *RecipeHandler) ListSharedRecipes(c *gin.Context) {
	doc, ok := loadDocument(c, h.repo)
	if !ok {
		return
	}

	public := []model.SharedRecipe{}
	for _, shared := range doc.SharedRecipes {
		if shared.IsPublic {
			public = append(public, shared)
		}
	}
	c.JSON(http.StatusOK, public)
}
