package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/eswar0113/travel/internal/config"
	"github.com/eswar0113/travel/internal/models"
)

// SearchCities queries the read-only destination catalog. Anonymous access
// is allowed; the catalog holds nothing user-specific.
func SearchCities(c *gin.Context) {
	query := config.DB.Model(&models.City{})

	if q := c.Query("q"); q != "" {
		like := "%" + strings.ToLower(q) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(country) LIKE ?", like, like)
	}
	if region := c.Query("region"); region != "" {
		query = query.Where("region = ?", region)
	}

	var cities []models.City
	if err := query.Order("popularity DESC").Limit(20).Find(&cities).Error; err != nil {
		logrus.WithError(err).Error("SearchCities: query failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to search cities"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": cities})
}

func SaveCity(c *gin.Context) {
	var input struct {
		CityName string `json:"city_name" binding:"required"`
		Country  string `json:"country" binding:"required"`
		Notes    string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	userID := currentUserID(c)

	var existing models.SavedCity
	err := config.DB.
		Where("user_id = ? AND city_name = ? AND country = ?", userID, input.CityName, input.Country).
		First(&existing).Error
	if err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "City already saved"})
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		logrus.WithError(err).Error("SaveCity: lookup failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save city"})
		return
	}

	saved := models.SavedCity{
		UserID:   userID,
		CityName: input.CityName,
		Country:  input.Country,
		Notes:    input.Notes,
	}
	if err := config.DB.Create(&saved).Error; err != nil {
		if pgErr, ok := err.(*pq.Error); ok && pgErr.Code == "23505" {
			c.JSON(http.StatusConflict, gin.H{"error": "City already saved"})
			return
		}
		logrus.WithError(err).Error("SaveCity: create failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save city"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"saved_city": saved})
}

func ListSavedCities(c *gin.Context) {
	var saved []models.SavedCity
	err := config.DB.
		Where("user_id = ?", currentUserID(c)).
		Order("created_at DESC").
		Find(&saved).Error
	if err != nil {
		logrus.WithError(err).Error("ListSavedCities: query failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list saved cities"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": saved})
}

func DeleteSavedCity(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is required"})
		return
	}

	var saved models.SavedCity
	err := config.DB.Where("id = ? AND user_id = ?", id, currentUserID(c)).First(&saved).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Saved city not found"})
		return
	}

	// Hard delete: a soft-deleted row would still occupy the
	// (user_id, city_name, country) unique index and block re-saving.
	if err := config.DB.Unscoped().Delete(&saved).Error; err != nil {
		logrus.WithError(err).Error("DeleteSavedCity: delete failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete saved city"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Saved city removed"})
}
