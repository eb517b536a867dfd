package models

import (
	"time"

	"gorm.io/gorm"
)

// Trip is the top-level aggregate. Deleting a trip cascades to its stops
// (and their activities), expenses, packing list and share record.
type Trip struct {
	gorm.Model
	UserID      uint      `json:"user_id" gorm:"index"`
	User        User      `gorm:"foreignKey:UserID" json:"-"`
	Name        string    `json:"name" binding:"required"`
	Description string    `json:"description"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	CoverImage  string    `json:"cover_image"`
	BudgetLimit float64   `json:"budget_limit"`

	Stops       []Stop       `gorm:"foreignKey:TripID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"stops,omitempty"`
	Expenses    []Expense    `gorm:"foreignKey:TripID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"expenses,omitempty"`
	PackingList *PackingList `gorm:"foreignKey:TripID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"packing_list,omitempty"`
	Share       *SharedTrip  `gorm:"foreignKey:TripID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"share,omitempty"`
}
