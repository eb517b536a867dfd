package models

import (
	"time"

	"gorm.io/gorm"
)

// Activity categories: sightseeing, food, adventure, culture, relaxation,
// shopping, entertainment, other.
type Activity struct {
	gorm.Model
	StopID      uint      `json:"stop_id" gorm:"index"`
	Name        string    `json:"name" binding:"required"`
	Description string    `json:"description"`
	Category    string    `json:"category" gorm:"default:other"`
	Date        time.Time `json:"date"`
	StartTime   string    `json:"start_time"`
	EndTime     string    `json:"end_time"`
	Duration    int       `json:"duration"` // minutes
	Cost        float64   `json:"cost"`
	Location    string    `json:"location"`
	Notes       string    `json:"notes"`
}
