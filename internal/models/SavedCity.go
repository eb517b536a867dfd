package models

import "gorm.io/gorm"

// SavedCity is a user's bookmarked destination. A user can save a given
// city/country pair at most once.
type SavedCity struct {
	gorm.Model
	UserID   uint   `json:"user_id" gorm:"index;uniqueIndex:idx_saved_cities_user_city"`
	CityName string `json:"city_name" binding:"required" gorm:"uniqueIndex:idx_saved_cities_user_city"`
	Country  string `json:"country" binding:"required" gorm:"uniqueIndex:idx_saved_cities_user_city"`
	Notes    string `json:"notes"`
}
