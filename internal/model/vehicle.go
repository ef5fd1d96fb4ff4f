package model

import "time"

// MaxVehicleImages caps the image gallery per vehicle.
const MaxVehicleImages = 4

// Vehicle is a listed car in the dealer's inventory.
// This is a pure domain model with no database-specific dependencies or tags.
type Vehicle struct {
	ID           string    `json:"id"`
	Category     string    `json:"category"`
	Brand        string    `json:"brand"`
	ModelName    string    `json:"modelName"`
	Year         int       `json:"year"`
	Kilometers   int       `json:"kilometers"`
	Fuel         string    `json:"fuel"`
	Transmission string    `json:"transmission"`
	Description  string    `json:"description"`
	Featured     bool      `json:"featured"`
	Priority     int       `json:"priority"`
	Sold         bool      `json:"sold"`
	Images       []string  `json:"images"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
