package models

import "gorm.io/gorm"

// SharedTrip holds the single share configuration of a trip. Re-sharing
// toggles IsPublic on the existing record instead of minting a new token.
type SharedTrip struct {
	gorm.Model
	ShareID  string `json:"share_id" gorm:"uniqueIndex"`
	TripID   uint   `json:"trip_id" gorm:"uniqueIndex"`
	IsPublic bool   `json:"is_public"`
}
