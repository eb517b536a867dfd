package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/eswar0113/travel/internal/config"
	"github.com/eswar0113/travel/internal/models"
)

func CreateActivity(c *gin.Context) {
	var input struct {
		StopID      uint    `json:"stop_id" binding:"required"`
		Name        string  `json:"name" binding:"required"`
		Description string  `json:"description"`
		Category    string  `json:"category"`
		Date        string  `json:"date" binding:"required"`
		StartTime   string  `json:"start_time"`
		EndTime     string  `json:"end_time"`
		Duration    int     `json:"duration" binding:"gte=0"`
		Cost        float64 `json:"cost" binding:"gte=0"`
		Location    string  `json:"location"`
		Notes       string  `json:"notes"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid activity input: " + err.Error()})
		return
	}

	stop, ok := ownedStop(c, strconv.FormatUint(uint64(input.StopID), 10))
	if !ok {
		return
	}

	date, err := parseDate(input.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date"})
		return
	}

	category := input.Category
	if category == "" {
		category = "other"
	}

	activity := models.Activity{
		StopID:      stop.ID,
		Name:        input.Name,
		Description: input.Description,
		Category:    category,
		Date:        date,
		StartTime:   input.StartTime,
		EndTime:     input.EndTime,
		Duration:    input.Duration,
		Cost:        input.Cost,
		Location:    input.Location,
		Notes:       input.Notes,
	}
	if err := config.DB.Create(&activity).Error; err != nil {
		logrus.WithError(err).Error("CreateActivity: create failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create activity"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"activity": activity})
}

func UpdateActivity(c *gin.Context) {
	var activity models.Activity
	if err := config.DB.First(&activity, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Activity not found"})
		return
	}
	if _, ok := ownedStop(c, strconv.FormatUint(uint64(activity.StopID), 10)); !ok {
		return
	}

	var input struct {
		Name        *string  `json:"name"`
		Description *string  `json:"description"`
		Category    *string  `json:"category"`
		Date        *string  `json:"date"`
		StartTime   *string  `json:"start_time"`
		EndTime     *string  `json:"end_time"`
		Duration    *int     `json:"duration"`
		Cost        *float64 `json:"cost"`
		Location    *string  `json:"location"`
		Notes       *string  `json:"notes"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid update: " + err.Error()})
		return
	}

	if input.Name != nil {
		activity.Name = *input.Name
	}
	if input.Description != nil {
		activity.Description = *input.Description
	}
	if input.Category != nil {
		activity.Category = *input.Category
	}
	if input.Date != nil {
		date, err := parseDate(*input.Date)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date"})
			return
		}
		activity.Date = date
	}
	if input.StartTime != nil {
		activity.StartTime = *input.StartTime
	}
	if input.EndTime != nil {
		activity.EndTime = *input.EndTime
	}
	if input.Duration != nil {
		activity.Duration = *input.Duration
	}
	if input.Cost != nil {
		if *input.Cost < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "cost must be non-negative"})
			return
		}
		activity.Cost = *input.Cost
	}
	if input.Location != nil {
		activity.Location = *input.Location
	}
	if input.Notes != nil {
		activity.Notes = *input.Notes
	}

	if err := config.DB.Save(&activity).Error; err != nil {
		logrus.WithError(err).Error("UpdateActivity: save failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update activity"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"activity": activity})
}

func DeleteActivity(c *gin.Context) {
	var activity models.Activity
	if err := config.DB.First(&activity, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Activity not found"})
		return
	}
	if _, ok := ownedStop(c, strconv.FormatUint(uint64(activity.StopID), 10)); !ok {
		return
	}

	if err := config.DB.Delete(&activity).Error; err != nil {
		logrus.WithError(err).Error("DeleteActivity: delete failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete activity"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Activity deleted"})
}

// ListActivityTemplates searches the read-only activity catalog.
func ListActivityTemplates(c *gin.Context) {
	query := config.DB.Model(&models.ActivityTemplate{})

	if q := c.Query("q"); q != "" {
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(q)+"%")
	}
	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}
	if city := c.Query("city"); city != "" {
		query = query.Where("city_name = ?", city)
	}

	var templates []models.ActivityTemplate
	if err := query.Order("popularity DESC").Limit(30).Find(&templates).Error; err != nil {
		logrus.WithError(err).Error("ListActivityTemplates: query failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list templates"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": templates})
}
