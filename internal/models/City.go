package models

import "gorm.io/gorm"

// City is the read-only destination catalog. Coordinates feed the trip
// map endpoint.
type City struct {
	gorm.Model
	Name        string  `json:"name" gorm:"uniqueIndex:idx_cities_name_country"`
	Country     string  `json:"country" gorm:"uniqueIndex:idx_cities_name_country"`
	Region      string  `json:"region"`
	CostIndex   int     `json:"cost_index"`
	Popularity  int     `json:"popularity"`
	Description string  `json:"description"`
	ImageURL    string  `json:"image_url"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
}
