package model

// NutritionProfile is the fixed nutrient breakdown used by foods and meals.
// Absent fields decode to zero, which is also their semantic default.
type NutritionProfile struct {
	Calories      float64 `json:"calories"`
	Protein       float64 `json:"protein"`
	Carbs         float64 `json:"carbs"`
	Fats          float64 `json:"fats"`
	SaturatedFats float64 `json:"saturatedFats"`
	Sodium        float64 `json:"sodium"`
	Cholesterol   float64 `json:"cholesterol"`
	Fiber         float64 `json:"fiber"`
	Sugar         float64 `json:"sugar"`
}

// Add accumulates other scaled by factor into p.
func (p *NutritionProfile) Add(other NutritionProfile, factor float64) {
	p.Calories += other.Calories * factor
	p.Protein += other.Protein * factor
	p.Carbs += other.Carbs * factor
	p.Fats += other.Fats * factor
	p.SaturatedFats += other.SaturatedFats * factor
	p.Sodium += other.Sodium * factor
	p.Cholesterol += other.Cholesterol * factor
	p.Fiber += other.Fiber * factor
	p.Sugar += other.Sugar * factor
}

// Scale returns a copy of p with every field divided by n. Returns a zero
// profile when n is 0.
func (p NutritionProfile) Scale(n float64) NutritionProfile {
	if n == 0 {
		return NutritionProfile{}
	}
	return NutritionProfile{
		Calories:      p.Calories / n,
		Protein:       p.Protein / n,
		Carbs:         p.Carbs / n,
		Fats:          p.Fats / n,
		SaturatedFats: p.SaturatedFats / n,
		Sodium:        p.Sodium / n,
		Cholesterol:   p.Cholesterol / n,
		Fiber:         p.Fiber / n,
		Sugar:         p.Sugar / n,
	}
}

// IsZero reports whether every field of the profile is zero.
func (p NutritionProfile) IsZero() bool {
	return p == NutritionProfile{}
}
