package service

import (
	"strings"

	"github.com/fridgy/backend/internal/model"
)

// ComputeMealNutrition sums the nutrition of every resolvable food reference
// in a meal, scaled by quantity. Unresolvable references and foods without a
// nutrition profile are skipped. The result is a one-time snapshot: the meal
// keeps it even if the referenced foods change later.
func ComputeMealNutrition(doc *model.Document, refs []model.FoodRef) model.NutritionProfile {
	var total model.NutritionProfile
	for _, ref := range refs {
		food, ok := resolveFood(doc.Foods, ref)
		if !ok || food.Nutrition == nil {
			continue
		}
		total.Add(*food.Nutrition, ref.Qty())
	}
	return total
}

// resolveFood prefers an exact id match (id or foodId) and falls back to a
// case-insensitive name match.
func resolveFood(foods []model.Food, ref model.FoodRef) (model.Food, bool) {
	id := ref.ID
	if id == "" {
		id = ref.FoodID
	}
	if id != "" {
		if i := model.FindByID(foods, id); i >= 0 {
			return foods[i], true
		}
		return model.Food{}, false
	}
	if ref.Name != "" {
		for _, f := range foods {
			if strings.EqualFold(f.Name, ref.Name) {
				return f, true
			}
		}
	}
	return model.Food{}, false
}
