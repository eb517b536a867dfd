package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/eswar0113/travel/internal/config"
	"github.com/eswar0113/travel/internal/models"
)

// orderedStops preloads a trip's stops in itinerary order.
func orderedStops(db *gorm.DB) *gorm.DB {
	return db.Order(`"order" ASC`)
}

func activitiesByDate(db *gorm.DB) *gorm.DB {
	return db.Order("date ASC")
}

func CreateTrip(c *gin.Context) {
	var input struct {
		Name        string  `json:"name" binding:"required"`
		Description string  `json:"description"`
		StartDate   string  `json:"start_date" binding:"required"`
		EndDate     string  `json:"end_date" binding:"required"`
		CoverImage  string  `json:"cover_image"`
		BudgetLimit float64 `json:"budget_limit" binding:"gte=0"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid trip input: " + err.Error()})
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

	trip := models.Trip{
		UserID:      currentUserID(c),
		Name:        input.Name,
		Description: input.Description,
		StartDate:   start,
		EndDate:     end,
		CoverImage:  input.CoverImage,
		BudgetLimit: input.BudgetLimit,
	}
	if err := config.DB.Create(&trip).Error; err != nil {
		logrus.WithError(err).Error("CreateTrip: create failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create trip"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"trip": trip})
}

func ListTrips(c *gin.Context) {
	var trips []models.Trip
	err := config.DB.
		Where("user_id = ?", currentUserID(c)).
		Preload("Stops", orderedStops).
		Preload("Expenses").
		Order("created_at DESC").
		Find(&trips).Error
	if err != nil {
		logrus.WithError(err).Error("ListTrips: query failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list trips"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": trips})
}

func GetTrip(c *gin.Context) {
	trip, ok := ownedTrip(c, c.Param("id"))
	if !ok {
		return
	}

	var full models.Trip
	err := config.DB.
		Preload("Stops", orderedStops).
		Preload("Stops.Activities", activitiesByDate).
		Preload("Expenses", func(db *gorm.DB) *gorm.DB { return db.Order("date ASC") }).
		Preload("User").
		First(&full, trip.ID).Error
	if err != nil {
		logrus.WithError(err).Error("GetTrip: load failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load trip"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"trip": full,
		"user": gin.H{"ID": full.User.ID, "name": full.User.Name, "email": full.User.Email},
	})
}

func UpdateTrip(c *gin.Context) {
	trip, ok := ownedTrip(c, c.Param("id"))
	if !ok {
		return
	}

	var input struct {
		Name        *string  `json:"name"`
		Description *string  `json:"description"`
		StartDate   *string  `json:"start_date"`
		EndDate     *string  `json:"end_date"`
		CoverImage  *string  `json:"cover_image"`
		BudgetLimit *float64 `json:"budget_limit"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid update: " + err.Error()})
		return
	}

	updates := map[string]interface{}{}
	if input.Name != nil {
		updates["name"] = *input.Name
	}
	if input.Description != nil {
		updates["description"] = *input.Description
	}
	start, end := trip.StartDate, trip.EndDate
	if input.StartDate != nil {
		parsed, err := parseDate(*input.StartDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid start_date"})
			return
		}
		start = parsed
		updates["start_date"] = parsed
	}
	if input.EndDate != nil {
		parsed, err := parseDate(*input.EndDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid end_date"})
			return
		}
		end = parsed
		updates["end_date"] = parsed
	}
	// The merged pair must stay ordered even when only one side moves.
	if end.Before(start) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "end_date must not be before start_date"})
		return
	}
	if input.CoverImage != nil {
		updates["cover_image"] = *input.CoverImage
	}
	if input.BudgetLimit != nil {
		if *input.BudgetLimit < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "budget_limit must be non-negative"})
			return
		}
		updates["budget_limit"] = *input.BudgetLimit
	}

	if len(updates) > 0 {
		if err := config.DB.Model(&trip).Updates(updates).Error; err != nil {
			logrus.WithError(err).Error("UpdateTrip: update failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update trip"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"trip": trip})
}

// DeleteTrip removes a trip and its whole subtree. Soft deletes do not
// fire the database cascades, so children are deleted explicitly inside
// one transaction.
func DeleteTrip(c *gin.Context) {
	trip, ok := ownedTrip(c, c.Param("id"))
	if !ok {
		return
	}

	tx := config.DB.Begin()
	if tx.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start transaction"})
		return
	}

	var stopIDs []uint
	if err := tx.Model(&models.Stop{}).Where("trip_id = ?", trip.ID).Pluck("id", &stopIDs).Error; err != nil {
		tx.Rollback()
		logrus.WithError(err).Error("DeleteTrip: stop lookup failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete trip"})
		return
	}
	if len(stopIDs) > 0 {
		if err := tx.Where("stop_id IN ?", stopIDs).Delete(&models.Activity{}).Error; err != nil {
			tx.Rollback()
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete trip"})
			return
		}
	}

	var listIDs []uint
	if err := tx.Model(&models.PackingList{}).Where("trip_id = ?", trip.ID).Pluck("id", &listIDs).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete trip"})
		return
	}
	if len(listIDs) > 0 {
		if err := tx.Where("packing_list_id IN ?", listIDs).Delete(&models.PackingItem{}).Error; err != nil {
			tx.Rollback()
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete trip"})
			return
		}
	}

	for _, m := range []interface{}{&models.Stop{}, &models.Expense{}, &models.PackingList{}, &models.SharedTrip{}} {
		if err := tx.Where("trip_id = ?", trip.ID).Delete(m).Error; err != nil {
			tx.Rollback()
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete trip"})
			return
		}
	}

	if err := tx.Delete(&trip).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete trip"})
		return
	}

	if err := tx.Commit().Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Transaction commit failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Trip deleted"})
}
