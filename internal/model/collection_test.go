package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergePatchKeepsUnspecifiedFields(t *testing.T) {
	food := Food{
		ID:          "f1",
		Name:        "Milk",
		StorageType: "fridge",
		Quantity:    1,
		Unit:        "liter",
	}

	err := MergePatch(&food, map[string]any{"quantity": 5.0})
	require.NoError(t, err)

	assert.Equal(t, float64(5), food.Quantity)
	assert.Equal(t, "Milk", food.Name)
	assert.Equal(t, "fridge", food.StorageType)
	assert.Equal(t, "liter", food.Unit)
}

func TestMergePatchDoesNotAliasSnapshots(t *testing.T) {
	recipe := Recipe{ID: "r1", Name: "Pasta", Ingredients: []string{"Tomato", "Pasta"}}
	snapshot := recipe

	err := MergePatch(&recipe, map[string]any{"ingredients": []string{"Rice"}})
	require.NoError(t, err)

	assert.Equal(t, []string{"Rice"}, recipe.Ingredients)
	assert.Equal(t, []string{"Tomato", "Pasta"}, snapshot.Ingredients)
}

func TestRemoveByID(t *testing.T) {
	foods := []Food{{ID: "a"}, {ID: "b"}, {ID: "c"}}

	foods, removed := RemoveByID(foods, "b")
	assert.True(t, removed)
	require.Len(t, foods, 2)
	assert.Equal(t, "a", foods[0].ID)
	assert.Equal(t, "c", foods[1].ID)

	foods, removed = RemoveByID(foods, "missing")
	assert.False(t, removed)
	assert.Len(t, foods, 2)
}

func TestFindByID(t *testing.T) {
	recipes := []Recipe{{ID: "x"}, {ID: "y"}}
	assert.Equal(t, 1, FindByID(recipes, "y"))
	assert.Equal(t, -1, FindByID(recipes, "z"))
}
