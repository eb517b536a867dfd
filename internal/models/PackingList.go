package models

import "gorm.io/gorm"

// PackingList is created lazily, at most once per trip, and never
// regenerated over user edits.
type PackingList struct {
	gorm.Model
	TripID uint `json:"trip_id" gorm:"uniqueIndex"`

	Items []PackingItem `gorm:"foreignKey:PackingListID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"items,omitempty"`
}

type PackingItem struct {
	gorm.Model
	PackingListID uint   `json:"packing_list_id" gorm:"index"`
	Item          string `json:"item"`
	Category      string `json:"category"`
	Checked       bool   `json:"checked" gorm:"default:false"`
}
