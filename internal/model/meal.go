package model

import (
	"encoding/json"
)

// FoodRef is one entry of a meal's foods list. The wire form is either a bare
// food-name string or an object carrying an id/foodId/name plus an optional
// quantity, so it needs a custom JSON codec.
type FoodRef struct {
	ID       string   `json:"id,omitempty"`
	FoodID   string   `json:"foodId,omitempty"`
	Name     string   `json:"name,omitempty"`
	Quantity *float64 `json:"quantity,omitempty"`

	// bare records that the entry arrived as a plain string, so it is
	// written back out the same way.
	bare bool
}

// FoodRefByName builds a bare-string reference, mainly for tests and seeds.
func FoodRefByName(name string) FoodRef {
	return FoodRef{Name: name, bare: true}
}

// Qty returns the effective quantity: the explicit value when present,
// otherwise 1.
func (r FoodRef) Qty() float64 {
	if r.Quantity != nil {
		return *r.Quantity
	}
	return 1
}

func (r *FoodRef) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var name string
		if err := json.Unmarshal(data, &name); err != nil {
			return err
		}
		*r = FoodRef{Name: name, bare: true}
		return nil
	}
	type plain FoodRef
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*r = FoodRef(p)
	return nil
}

func (r FoodRef) MarshalJSON() ([]byte, error) {
	if r.bare {
		return json.Marshal(r.Name)
	}
	type plain FoodRef
	return json.Marshal(plain(r))
}

// Meal is one logged meal. Nutrition is computed from the referenced foods at
// creation time when the client does not provide it; it is never recomputed.
type Meal struct {
	ID        string           `json:"id"`
	MealType  string           `json:"mealType"`
	Date      string           `json:"date"`
	Time      string           `json:"time"`
	Foods     []FoodRef        `json:"foods,omitempty"`
	Nutrition NutritionProfile `json:"nutrition"`
}

func (m Meal) RecordID() string { return m.ID }
