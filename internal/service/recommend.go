package service

import (
	"sort"
	"strings"

	"github.com/fridgy/backend/internal/model"
)

// Recommendation is a recipe augmented with its inventory match score.
type Recommendation struct {
	model.Recipe
	MatchScore float64 `json:"matchScore"`
}

// Recommend scores every recipe against the current inventory. An ingredient
// counts as available when, case-insensitively, it contains a food name or a
// food name contains it. Recipes with no matching ingredient are left out;
// the rest come back sorted by descending score, ties keeping list order.
func Recommend(doc *model.Document) []Recommendation {
	available := make([]string, 0, len(doc.Foods))
	for _, food := range doc.Foods {
		available = append(available, strings.ToLower(food.Name))
	}

	recommendations := []Recommendation{}
	for _, recipe := range doc.Recipes {
		if len(recipe.Ingredients) == 0 {
			continue
		}
		matches := 0
		for _, ingredient := range recipe.Ingredients {
			ing := strings.ToLower(ingredient)
			for _, name := range available {
				if strings.Contains(ing, name) || strings.Contains(name, ing) {
					matches++
					break
				}
			}
		}
		if matches == 0 {
			continue
		}
		recommendations = append(recommendations, Recommendation{
			Recipe:     recipe,
			MatchScore: float64(matches) / float64(len(recipe.Ingredients)),
		})
	}

	sort.SliceStable(recommendations, func(i, j int) bool {
		return recommendations[i].MatchScore > recommendations[j].MatchScore
	})
	return recommendations
}
