package models

import "gorm.io/gorm"

type User struct {
	gorm.Model
	Name     string `json:"name"`
	Email    string `json:"email" gorm:"unique"`
	Password string `json:"-"`
	Image    string `json:"image"`
	IsAdmin  bool   `json:"is_admin" gorm:"default:false"`

	// Owned aggregates
	Trips       []Trip      `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"trips,omitempty"`
	SavedCities []SavedCity `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"saved_cities,omitempty"`
}
