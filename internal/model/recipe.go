package model

// Recipe is a stored recipe. Ingredients are plain names matched against the
// inventory by the recommendation engine.
type Recipe struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description,omitempty"`
	Category     string   `json:"category,omitempty"`
	Ingredients  []string `json:"ingredients,omitempty"`
	Instructions []string `json:"instructions,omitempty"`
	CookTime     float64  `json:"cookTime,omitempty"`
	Servings     float64  `json:"servings,omitempty"`
}

func (r Recipe) RecordID() string { return r.ID }

// SharedRecipe embeds a snapshot of the recipe taken at share time, so later
// edits to the original do not propagate.
type SharedRecipe struct {
	ID       string `json:"id"`
	RecipeID string `json:"recipeId"`
	Recipe   Recipe `json:"recipe"`
	SharedBy string `json:"sharedBy"`
	SharedAt string `json:"sharedAt"`
	IsPublic bool   `json:"isPublic"`
}

func (s SharedRecipe) RecordID() string { return s.ID }
