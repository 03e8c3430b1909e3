package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fridgy/backend/internal/model"
)

func TestRecipeCRUD(t *testing.T) {
	router := setupTestRouter(t, nil)

	w := performRequest(t, router, "POST", "/api/recipes", map[string]any{
		"name":        "Tomato Pasta",
		"ingredients": []string{"Tomato", "Pasta", "Olive Oil"},
		"cookTime":    20,
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	var recipe model.Recipe
	decodeBody(t, w, &recipe)
	assert.NotEmpty(t, recipe.ID)
	assert.Equal(t, float64(20), recipe.CookTime)

	// Read one
	w = performRequest(t, router, "GET", "/api/recipes/"+recipe.ID, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var fetched model.Recipe
	decodeBody(t, w, &fetched)
	assert.Equal(t, recipe, fetched)

	// Read one: miss
	w = performRequest(t, router, "GET", "/api/recipes/no-such-id", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Recipe not found")

	// Partial update keeps the rest intact
	w = performRequest(t, router, "PUT", "/api/recipes/"+recipe.ID, map[string]any{"cookTime": 25})
	assert.Equal(t, http.StatusOK, w.Code)
	var updated model.Recipe
	decodeBody(t, w, &updated)
	assert.Equal(t, float64(25), updated.CookTime)
	assert.Equal(t, "Tomato Pasta", updated.Name)
	assert.Equal(t, []string{"Tomato", "Pasta", "Olive Oil"}, updated.Ingredients)

	// Update miss
	w = performRequest(t, router, "PUT", "/api/recipes/no-such-id", map[string]any{"cookTime": 5})
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Delete
	w = performRequest(t, router, "DELETE", "/api/recipes/"+recipe.ID, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = performRequest(t, router, "GET", "/api/recipes", nil)
	var recipes []model.Recipe
	decodeBody(t, w, &recipes)
	assert.Empty(t, recipes)
}

func TestShareRecipeSnapshotsContent(t *testing.T) {
	router := setupTestRouter(t, nil)

	w := performRequest(t, router, "POST", "/api/recipes", map[string]any{
		"name":        "Tomato Pasta",
		"ingredients": []string{"Tomato", "Pasta"},
	})
	var recipe model.Recipe
	decodeBody(t, w, &recipe)

	w = performRequest(t, router, "POST", "/api/recipes/"+recipe.ID+"/share", map[string]any{
		"sharedBy": "zoe",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	var shared model.SharedRecipe
	decodeBody(t, w, &shared)
	assert.NotEmpty(t, shared.ID)
	assert.Equal(t, recipe.ID, shared.RecipeID)
	assert.Equal(t, "zoe", shared.SharedBy)
	assert.True(t, shared.IsPublic)
	assert.NotEmpty(t, shared.SharedAt)

	// Edit the original; the snapshot must not move.
	w = performRequest(t, router, "PUT", "/api/recipes/"+recipe.ID, map[string]any{
		"name":        "Spicy Tomato Pasta",
		"ingredients": []string{"Tomato", "Pasta", "Chili"},
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = performRequest(t, router, "GET", "/api/recipes/shared", nil)
	var sharedList []model.SharedRecipe
	decodeBody(t, w, &sharedList)
	require.Len(t, sharedList, 1)
	assert.Equal(t, "Tomato Pasta", sharedList[0].Recipe.Name)
	assert.Equal(t, []string{"Tomato", "Pasta"}, sharedList[0].Recipe.Ingredients)
}

func TestShareRecipeDefaultsAndPrivacy(t *testing.T) {
	router := setupTestRouter(t, nil)

	w := performRequest(t, router, "POST", "/api/recipes", map[string]any{"name": "Secret Sauce"})
	var recipe model.Recipe
	decodeBody(t, w, &recipe)

	// No body fields: anonymous and public.
	w = performRequest(t, router, "POST", "/api/recipes/"+recipe.ID+"/share", map[string]any{})
	var shared model.SharedRecipe
	decodeBody(t, w, &shared)
	assert.Equal(t, "Anonymous", shared.SharedBy)
	assert.True(t, shared.IsPublic)

	// Private shares are invisible in the public listing.
	w = performRequest(t, router, "POST", "/api/recipes/"+recipe.ID+"/share", map[string]any{
		"isPublic": false,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = performRequest(t, router, "GET", "/api/recipes/shared", nil)
	var sharedList []model.SharedRecipe
	decodeBody(t, w, &sharedList)
	assert.Len(t, sharedList, 1)
}

func TestShareUnknownRecipe(t *testing.T) {
	router := setupTestRouter(t, nil)

	w := performRequest(t, router, "POST", "/api/recipes/no-such-id/share", map[string]any{})
	assert.Equal(t, http.StatusNotFound, w.Code)
}
