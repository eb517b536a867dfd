package models

import (
	"time"

	"gorm.io/gorm"
)

type Expense struct {
	gorm.Model
	TripID      uint      `json:"trip_id" gorm:"index"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
	Date        time.Time `json:"date"`
	Notes       string    `json:"notes"`
}
