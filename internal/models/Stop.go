package models

import (
	"time"

	"gorm.io/gorm"
)

// Stop is a city visit within a trip. Order is unique per trip and drives
// the itinerary sequence; gaps are allowed.
type Stop struct {
	gorm.Model
	TripID    uint      `json:"trip_id" gorm:"index;uniqueIndex:idx_stops_trip_order"`
	CityName  string    `json:"city_name" binding:"required"`
	Country   string    `json:"country" binding:"required"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	Order     int       `json:"order" gorm:"uniqueIndex:idx_stops_trip_order"`
	Notes     string    `json:"notes"`

	Activities []Activity `gorm:"foreignKey:StopID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"activities,omitempty"`
}
