package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/eswar0113/travel/internal/config"
	"github.com/eswar0113/travel/internal/models"
	"github.com/eswar0113/travel/internal/planner"
)

// SuggestActivities recommends catalog activities for a stop given the
// caller's free time and remaining budget. An empty result is a normal
// response, not an error.
func SuggestActivities(c *gin.Context) {
	trip, ok := ownedTrip(c, c.Param("id"))
	if !ok {
		return
	}

	var stop models.Stop
	err := config.DB.
		Where("id = ? AND trip_id = ?", c.Param("stopId"), trip.ID).
		Preload("Activities", activitiesByDate).
		First(&stop).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Stop not found"})
		return
	}

	var input struct {
		AvailableHours  float64 `json:"available_hours" binding:"gt=0"`
		BudgetRemaining float64 `json:"budget_remaining" binding:"gte=0"`
		CurrentTime     string  `json:"current_time"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	// Candidate pool: templates tied to this city or country, plus the
	// generic ones. Popularity ordering here fixes the rank.
	var templates []models.ActivityTemplate
	err = config.DB.
		Where("city_name = ? OR country = ? OR city_name = ''", stop.CityName, stop.Country).
		Order("popularity DESC").
		Find(&templates).Error
	if err != nil {
		logrus.WithError(err).Error("SuggestActivities: template query failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to suggest activities"})
		return
	}

	suggestions := planner.SuggestActivities(templates, stop.Activities, input.AvailableHours, input.BudgetRemaining)

	c.JSON(http.StatusOK, gin.H{
		"suggestions": suggestions,
		"context": gin.H{
			"location":         fmt.Sprintf("%s, %s", stop.CityName, stop.Country),
			"available_hours":  input.AvailableHours,
			"budget_remaining": input.BudgetRemaining,
		},
	})
}
