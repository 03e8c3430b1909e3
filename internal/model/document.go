package model

// Document is the aggregate root: every collection lives in this one
// structure, and the store loads and saves it whole.
type Document struct {
	Foods         []Food         `json:"foods"`
	Recipes       []Recipe       `json:"recipes"`
	Meals         []Meal         `json:"meals"`
	HealthMetrics []HealthMetric `json:"healthMetrics"`
	SharedRecipes []SharedRecipe `json:"sharedRecipes"`
	Steps         []StepEntry    `json:"steps"`
}

// NewDocument returns an empty document with all collections present.
func NewDocument() *Document {
	return &Document{
		Foods:         []Food{},
		Recipes:       []Recipe{},
		Meals:         []Meal{},
		HealthMetrics: []HealthMetric{},
		SharedRecipes: []SharedRecipe{},
		Steps:         []StepEntry{},
	}
}

// Normalize backfills any collection that decoded to nil so all six are
// always present. It reports whether anything changed, so callers can
// persist the backfill.
func (d *Document) Normalize() bool {
	changed := false
	if d.Foods == nil {
		d.Foods = []Food{}
		changed = true
	}
	if d.Recipes == nil {
		d.Recipes = []Recipe{}
		changed = true
	}
	if d.Meals == nil {
		d.Meals = []Meal{}
		changed = true
	}
	if d.HealthMetrics == nil {
		d.HealthMetrics = []HealthMetric{}
		changed = true
	}
	if d.SharedRecipes == nil {
		d.SharedRecipes = []SharedRecipe{}
		changed = true
	}
	if d.Steps == nil {
		d.Steps = []StepEntry{}
		changed = true
	}
	return changed
}
