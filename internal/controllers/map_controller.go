package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/twpayne/go-geom"
	gjson "github.com/twpayne/go-geom/encoding/geojson"

	"github.com/eswar0113/travel/internal/config"
	"github.com/eswar0113/travel/internal/models"
)

// stopMarker is one map pin for a resolvable stop.
type stopMarker struct {
	StopID    uint    `json:"stop_id"`
	CityName  string  `json:"city_name"`
	Country   string  `json:"country"`
	Order     int     `json:"order"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// TripMap returns the trip's itinerary as a GeoJSON LineString through its
// stops, with per-stop markers. Stops whose city is not in the catalog are
// skipped; fewer than two resolvable stops yields a null geometry.
func TripMap(c *gin.Context) {
	trip, ok := ownedTrip(c, c.Param("id"))
	if !ok {
		return
	}

	var stops []models.Stop
	err := config.DB.
		Where("trip_id = ?", trip.ID).
		Order(`"order" ASC`).
		Find(&stops).Error
	if err != nil {
		logrus.WithError(err).Error("TripMap: stop query failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load trip map"})
		return
	}

	var (
		markers []stopMarker
		coords  []geom.Coord
	)
	for _, stop := range stops {
		var city models.City
		if err := config.DB.Where("name = ? AND country = ?", stop.CityName, stop.Country).First(&city).Error; err != nil {
			continue
		}
		markers = append(markers, stopMarker{
			StopID:    stop.ID,
			CityName:  stop.CityName,
			Country:   stop.Country,
			Order:     stop.Order,
			Latitude:  city.Latitude,
			Longitude: city.Longitude,
		})
		coords = append(coords, geom.Coord{city.Longitude, city.Latitude})
	}

	var geometry json.RawMessage
	if len(coords) >= 2 {
		line := geom.NewLineString(geom.XY).MustSetCoords(coords)
		b, err := gjson.Marshal(line)
		if err != nil {
			logrus.WithError(err).Error("TripMap: geojson marshal failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build trip geometry"})
			return
		}
		geometry = b
	}

	c.JSON(http.StatusOK, gin.H{
		"geometry": geometry,
		"stops":    markers,
	})
}
