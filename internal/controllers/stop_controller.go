package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/eswar0113/travel/internal/config"
	"github.com/eswar0113/travel/internal/models"
)

// stopWithinTrip checks the latent validation gap from the original app:
// stop dates must fall inside the trip's date range.
func stopWithinTrip(trip models.Trip, start, end time.Time) bool {
	return !start.Before(trip.StartDate) && !end.After(trip.EndDate)
}

func AddStop(c *gin.Context) {
	trip, ok := ownedTrip(c, c.Param("id"))
	if !ok {
		return
	}

	var input struct {
		CityName  string `json:"city_name" binding:"required"`
		Country   string `json:"country" binding:"required"`
		StartDate string `json:"start_date" binding:"required"`
		EndDate   string `json:"end_date" binding:"required"`
		Notes     string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid stop input: " + err.Error()})
		return
	}

	start, err := parseDate(input.StartDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid start_date"})
		return
	}
	end, err := parseDate(input.EndDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid end_date"})
		return
	}
	if end.Before(start) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "end_date must not be before start_date"})
		return
	}
	if !stopWithinTrip(trip, start, end) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "stop dates must fall within the trip dates"})
		return
	}

	// Append at the end of the itinerary: next order is max(order)+1.
	var maxOrder int
	err = config.DB.Model(&models.Stop{}).
		Where("trip_id = ?", trip.ID).
		Select(`COALESCE(MAX("order"), 0)`).
		Scan(&maxOrder).Error
	if err != nil {
		logrus.WithError(err).Error("AddStop: order lookup failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create stop"})
		return
	}

	stop := models.Stop{
		TripID:    trip.ID,
		CityName:  input.CityName,
		Country:   input.Country,
		StartDate: start,
		EndDate:   end,
		Order:     maxOrder + 1,
		Notes:     input.Notes,
	}
	if err := config.DB.Create(&stop).Error; err != nil {
		logrus.WithError(err).Error("AddStop: create failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create stop"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"stop": stop})
}

func ListStops(c *gin.Context) {
	trip, ok := ownedTrip(c, c.Param("id"))
	if !ok {
		return
	}

	var stops []models.Stop
	err := config.DB.
		Where("trip_id = ?", trip.ID).
		Preload("Activities", activitiesByDate).
		Order(`"order" ASC`).
		Find(&stops).Error
	if err != nil {
		logrus.WithError(err).Error("ListStops: query failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list stops"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": stops})
}

func UpdateStop(c *gin.Context) {
	trip, ok := ownedTrip(c, c.Param("id"))
	if !ok {
		return
	}

	var stop models.Stop
	if err := config.DB.Where("id = ? AND trip_id = ?", c.Param("stopId"), trip.ID).First(&stop).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Stop not found"})
		return
	}

	var input struct {
		CityName  *string `json:"city_name"`
		Country   *string `json:"country"`
		StartDate *string `json:"start_date"`
		EndDate   *string `json:"end_date"`
		Notes     *string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid update: " + err.Error()})
		return
	}

	if input.CityName != nil {
		stop.CityName = *input.CityName
	}
	if input.Country != nil {
		stop.Country = *input.Country
	}
	if input.StartDate != nil {
		start, err := parseDate(*input.StartDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid start_date"})
			return
		}
		stop.StartDate = start
	}
	if input.EndDate != nil {
		end, err := parseDate(*input.EndDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid end_date"})
			return
		}
		stop.EndDate = end
	}
	if input.Notes != nil {
		stop.Notes = *input.Notes
	}

	if stop.EndDate.Before(stop.StartDate) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "end_date must not be before start_date"})
		return
	}
	if !stopWithinTrip(trip, stop.StartDate, stop.EndDate) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "stop dates must fall within the trip dates"})
		return
	}

	if err := config.DB.Save(&stop).Error; err != nil {
		logrus.WithError(err).Error("UpdateStop: save failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update stop"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"stop": stop})
}

func DeleteStop(c *gin.Context) {
	trip, ok := ownedTrip(c, c.Param("id"))
	if !ok {
		return
	}

	var stop models.Stop
	if err := config.DB.Where("id = ? AND trip_id = ?", c.Param("stopId"), trip.ID).First(&stop).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Stop not found"})
		return
	}

	tx := config.DB.Begin()
	if tx.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start transaction"})
		return
	}
	// Hard delete: a soft-deleted stop would still occupy the
	// (trip_id, order) unique index and collide with the next AddStop,
	// which computes its order over live rows only.
	if err := tx.Unscoped().Where("stop_id = ?", stop.ID).Delete(&models.Activity{}).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete stop"})
		return
	}
	if err := tx.Unscoped().Delete(&stop).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete stop"})
		return
	}
	if err := tx.Commit().Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Transaction commit failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Stop deleted"})
}
