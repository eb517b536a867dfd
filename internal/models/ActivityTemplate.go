package models

import "gorm.io/gorm"

// ActivityTemplate is a read-only catalog entry used by the activity
// suggestor. An empty CityName means the template is generic and applies
// to any destination.
type ActivityTemplate struct {
	gorm.Model
	Name              string  `json:"name"`
	Description       string  `json:"description"`
	Category          string  `json:"category"`
	EstimatedCost     float64 `json:"estimated_cost"`
	EstimatedDuration int     `json:"estimated_duration"` // minutes, 0 = unknown
	CityName          string  `json:"city_name" gorm:"index"`
	Country           string  `json:"country" gorm:"index"`
	ImageURL          string  `json:"image_url"`
	Popularity        int     `json:"popularity"`
}
