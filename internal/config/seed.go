package config

import (
	"gorm.io/gorm"

	"github.com/eswar0113/travel/internal/models"
)

// SeedCatalogs loads the read-only city and activity-template catalogs.
// It is a no-op when the catalogs already contain rows, so restarting the
// server never duplicates entries.
func SeedCatalogs(db *gorm.DB) error {
	var cityCount int64
	if err := db.Model(&models.City{}).Count(&cityCount).Error; err != nil {
		return err
	}
	if cityCount == 0 {
		if err := db.Create(seedCities()).Error; err != nil {
			return err
		}
	}

	var templateCount int64
	if err := db.Model(&models.ActivityTemplate{}).Count(&templateCount).Error; err != nil {
		return err
	}
	if templateCount == 0 {
		if err := db.Create(seedTemplates()).Error; err != nil {
			return err
		}
	}
	return nil
}

func seedCities() []models.City {
	return []models.City{
		{Name: "Paris", Country: "France", Region: "Europe", CostIndex: 75, Popularity: 950, Description: "The City of Light", Latitude: 48.8566, Longitude: 2.3522},
		{Name: "Tokyo", Country: "Japan", Region: "Asia", CostIndex: 70, Popularity: 920, Description: "Modern metropolis meets tradition", Latitude: 35.6762, Longitude: 139.6503},
		{Name: "New York", Country: "USA", Region: "North America", CostIndex: 85, Popularity: 940, Description: "The city that never sleeps", Latitude: 40.7128, Longitude: -74.0060},
		{Name: "Barcelona", Country: "Spain", Region: "Europe", CostIndex: 65, Popularity: 880, Description: "Gaudí's architectural masterpiece", Latitude: 41.3874, Longitude: 2.1686},
		{Name: "Bali", Country: "Indonesia", Region: "Asia", CostIndex: 40, Popularity: 850, Description: "Island paradise", Latitude: -8.6705, Longitude: 115.2126},
		{Name: "London", Country: "UK", Region: "Europe", CostIndex: 80, Popularity: 930, Description: "Historic and cosmopolitan", Latitude: 51.5072, Longitude: -0.1276},
		{Name: "Dubai", Country: "UAE", Region: "Middle East", CostIndex: 75, Popularity: 820, Description: "Luxury and innovation", Latitude: 25.2048, Longitude: 55.2708},
		{Name: "Rome", Country: "Italy", Region: "Europe", CostIndex: 65, Popularity: 910, Description: "The Eternal City", Latitude: 41.9028, Longitude: 12.4964},
		{Name: "Bangkok", Country: "Thailand", Region: "Asia", CostIndex: 35, Popularity: 870, Description: "Vibrant street life and temples", Latitude: 13.7563, Longitude: 100.5018},
		{Name: "Sydney", Country: "Australia", Region: "Oceania", CostIndex: 70, Popularity: 860, Description: "Harbor city with iconic landmarks", Latitude: -33.8688, Longitude: 151.2093},
	}
}

func seedTemplates() []models.ActivityTemplate {
	return []models.ActivityTemplate{
		{Name: "Eiffel Tower Visit", Category: "sightseeing", EstimatedCost: 30, EstimatedDuration: 180, CityName: "Paris", Country: "France", Popularity: 95},
		{Name: "Louvre Museum", Category: "culture", EstimatedCost: 20, EstimatedDuration: 240, CityName: "Paris", Country: "France", Popularity: 90},
		{Name: "Seine River Cruise", Category: "relaxation", EstimatedCost: 40, EstimatedDuration: 120, CityName: "Paris", Country: "France", Popularity: 85},
		{Name: "Tokyo Tower", Category: "sightseeing", EstimatedCost: 15, EstimatedDuration: 120, CityName: "Tokyo", Country: "Japan", Popularity: 88},
		{Name: "Sushi Making Class", Category: "food", EstimatedCost: 80, EstimatedDuration: 180, CityName: "Tokyo", Country: "Japan", Popularity: 82},
		{Name: "Statue of Liberty Tour", Category: "sightseeing", EstimatedCost: 25, EstimatedDuration: 180, CityName: "New York", Country: "USA", Popularity: 92},
		{Name: "Broadway Show", Category: "culture", EstimatedCost: 120, EstimatedDuration: 150, CityName: "New York", Country: "USA", Popularity: 89},
		{Name: "Sagrada Familia", Category: "sightseeing", EstimatedCost: 35, EstimatedDuration: 120, CityName: "Barcelona", Country: "Spain", Popularity: 94},
		{Name: "Beach Day", Category: "relaxation", EstimatedCost: 0, EstimatedDuration: 360, CityName: "Bali", Country: "Indonesia", Popularity: 87},
		{Name: "Scuba Diving", Category: "adventure", EstimatedCost: 75, EstimatedDuration: 240, CityName: "Bali", Country: "Indonesia", Popularity: 83},
		// Generic templates apply to any destination.
		{Name: "Free Walking Tour", Category: "sightseeing", EstimatedCost: 0, EstimatedDuration: 120, Popularity: 80},
		{Name: "Local Food Market", Category: "food", EstimatedCost: 15, EstimatedDuration: 90, Popularity: 76},
		{Name: "City Park Picnic", Category: "relaxation", EstimatedCost: 10, EstimatedDuration: 120, Popularity: 70},
	}
}
