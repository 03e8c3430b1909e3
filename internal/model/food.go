package model

// Food is a single inventory item. Dates are stored as the ISO strings the
// client sent; matching on Name is case-insensitive.
type Food struct {
	ID           string            `json:"id"`
	Name         string            `json:"name"`
	StorageType  string            `json:"storageType,omitempty"`
	Quantity     float64           `json:"quantity"`
	Unit         string            `json:"unit,omitempty"`
	PurchaseDate string            `json:"purchaseDate,omitempty"`
	ExpiryDate   string            `json:"expiryDate,omitempty"`
	Category     string            `json:"category,omitempty"`
	Nutrition    *NutritionProfile `json:"nutrition,omitempty"`
}

func (f Food) RecordID() string { return f.ID }
