package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fridgy/backend/internal/model"
)

func TestFileStoreCreatesDefaultDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "food_data.json")
	s := NewFileStore(path)

	doc, err := s.Load(context.Background())
	require.NoError(t, err)

	assert.NotNil(t, doc.Foods)
	assert.NotNil(t, doc.Recipes)
	assert.NotNil(t, doc.Meals)
	assert.NotNil(t, doc.HealthMetrics)
	assert.NotNil(t, doc.SharedRecipes)
	assert.NotNil(t, doc.Steps)

	// The default document is persisted immediately.
	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestFileStoreRoundTrip(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "food_data.json"))
	ctx := context.Background()

	doc := model.NewDocument()
	doc.Foods = append(doc.Foods, model.Food{
		ID:          "f1",
		Name:        "Milk",
		StorageType: "fridge",
		Quantity:    1,
		Unit:        "liter",
		Nutrition:   &model.NutritionProfile{Calories: 42},
	})
	doc.Meals = append(doc.Meals, model.Meal{ID: "m1", MealType: "breakfast", Date: "2025-03-15T08:00:00"})
	require.NoError(t, s.Save(ctx, doc))

	loaded, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, doc.Foods, loaded.Foods)
	assert.Equal(t, doc.Meals, loaded.Meals)
}

func TestFileStoreBackfillsMissingCollections(t *testing.T) {
	path := filepath.Join(t.TempDir(), "food_data.json")
	legacy := `{"foods":[{"id":"f1","name":"Milk","quantity":1}],"recipes":[],"meals":[],"healthMetrics":[],"sharedRecipes":[]}`
	require.NoError(t, os.WriteFile(path, []byte(legacy), 0o644))

	s := NewFileStore(path)
	doc, err := s.Load(context.Background())
	require.NoError(t, err)

	assert.NotNil(t, doc.Steps)
	assert.Len(t, doc.Foods, 1)

	// The backfill is persisted, so a raw reload sees the steps key.
	payload, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(payload), `"steps"`)
}

func TestFileStoreRecoversFromCorruptContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "food_data.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	s := NewFileStore(path)
	doc, err := s.Load(context.Background())
	require.NoError(t, err)

	assert.Empty(t, doc.Foods)
	assert.Empty(t, doc.Meals)

	// The reset document replaces the corrupt file.
	payload, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(payload), `"foods"`)
}

func TestFileStoreListIdempotent(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "food_data.json"))
	ctx := context.Background()

	doc := model.NewDocument()
	doc.Recipes = append(doc.Recipes, model.Recipe{ID: "r1", Name: "Pasta"})
	require.NoError(t, s.Save(ctx, doc))

	first, err := s.Load(ctx)
	require.NoError(t, err)
	second, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
