package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/eswar0113/travel/internal/config"
	"github.com/eswar0113/travel/internal/models"
)

// currentUserID extracts the authenticated user's id from the JWT claims
// stored by the auth middleware.
func currentUserID(c *gin.Context) uint {
	return uint(c.MustGet("user_id").(float64))
}

// ownedTrip loads a trip and verifies the caller owns it. On failure it
// writes the error response itself and returns ok=false, so handlers can
// bail out with a bare return. Every mutating handler goes through this.
func ownedTrip(c *gin.Context, tripID string) (models.Trip, bool) {
	var trip models.Trip
	if err := config.DB.First(&trip, "id = ?", tripID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Trip not found"})
		} else {
			logrus.WithError(err).Error("ownedTrip: trip lookup failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return models.Trip{}, false
	}
	if trip.UserID != currentUserID(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
		return models.Trip{}, false
	}
	return trip, true
}

// ownedStop resolves a stop through its trip and verifies ownership the
// same way ownedTrip does.
func ownedStop(c *gin.Context, stopID string) (models.Stop, bool) {
	var stop models.Stop
	if err := config.DB.First(&stop, "id = ?", stopID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Stop not found"})
		} else {
			logrus.WithError(err).Error("ownedStop: stop lookup failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return models.Stop{}, false
	}

	var trip models.Trip
	if err := config.DB.First(&trip, stop.TripID).Error; err != nil {
		logrus.WithError(err).Error("ownedStop: trip lookup failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return models.Stop{}, false
	}
	if trip.UserID != currentUserID(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
		return models.Stop{}, false
	}
	return stop, true
}

// parseDate accepts both RFC3339 timestamps and bare YYYY-MM-DD dates.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}
