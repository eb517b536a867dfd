package controllers

import (
	"errors"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/eswar0113/travel/internal/config"
	"github.com/eswar0113/travel/internal/models"
)

func shareURL(shareID string) string {
	base := os.Getenv("APP_URL")
	if base == "" {
		base = "http://localhost:8080"
	}
	return base + "/shared/" + shareID
}

func newShareToken() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// ShareTrip creates or updates the single share record of a trip.
// Re-invoking toggles visibility on the existing record; the token is
// minted once and kept stable.
func ShareTrip(c *gin.Context) {
	trip, ok := ownedTrip(c, c.Param("id"))
	if !ok {
		return
	}

	var input struct {
		IsPublic bool `json:"is_public"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	var share models.SharedTrip
	err := config.DB.Where("trip_id = ?", trip.ID).First(&share).Error
	switch {
	case err == nil:
		if err := config.DB.Model(&share).Update("is_public", input.IsPublic).Error; err != nil {
			logrus.WithError(err).Error("ShareTrip: update failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update share"})
			return
		}
		share.IsPublic = input.IsPublic
	case errors.Is(err, gorm.ErrRecordNotFound):
		share = models.SharedTrip{
			ShareID:  newShareToken(),
			TripID:   trip.ID,
			IsPublic: input.IsPublic,
		}
		if err := config.DB.Create(&share).Error; err != nil {
			logrus.WithError(err).Error("ShareTrip: create failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create share"})
			return
		}
	default:
		logrus.WithError(err).Error("ShareTrip: lookup failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create share"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"share_id":  share.ShareID,
		"share_url": shareURL(share.ShareID),
		"is_public": share.IsPublic,
	})
}

func DeleteShare(c *gin.Context) {
	trip, ok := ownedTrip(c, c.Param("id"))
	if !ok {
		return
	}

	// Hard delete: a soft-deleted row would still occupy the trip_id
	// unique index and block re-sharing the trip.
	if err := config.DB.Unscoped().Where("trip_id = ?", trip.ID).Delete(&models.SharedTrip{}).Error; err != nil {
		logrus.WithError(err).Error("DeleteShare: delete failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete share"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Share link deleted"})
}

// GetSharedTrip serves the public read of a shared trip. No auth: anyone
// holding the link can view a public trip. Private shares are refused.
func GetSharedTrip(c *gin.Context) {
	var share models.SharedTrip
	if err := config.DB.Where("share_id = ?", c.Param("shareId")).First(&share).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Shared trip not found"})
		return
	}
	if !share.IsPublic {
		c.JSON(http.StatusForbidden, gin.H{"error": "This trip is private"})
		return
	}

	var trip models.Trip
	err := config.DB.
		Preload("Stops", orderedStops).
		Preload("Stops.Activities", activitiesByDate).
		Preload("Expenses").
		First(&trip, share.TripID).Error
	if err != nil {
		logrus.WithError(err).Error("GetSharedTrip: trip load failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"share_id":  share.ShareID,
		"is_public": share.IsPublic,
		"trip":      trip,
	})
}

// CopyTrip deep-copies a publicly shared trip into the caller's account.
// The copy is a fresh planning start: share record, packing list and
// checked state do not come along, and the original is never touched.
func CopyTrip(c *gin.Context) {
	var body struct {
		ShareID string `json:"share_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "share_id is required"})
		return
	}

	var share models.SharedTrip
	if err := config.DB.Where("share_id = ?", body.ShareID).First(&share).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Shared trip not found"})
		return
	}
	if !share.IsPublic {
		c.JSON(http.StatusForbidden, gin.H{"error": "This trip is private"})
		return
	}

	var source models.Trip
	err := config.DB.
		Preload("Stops", orderedStops).
		Preload("Stops.Activities").
		Preload("Expenses").
		First(&source, share.TripID).Error
	if err != nil {
		logrus.WithError(err).Error("CopyTrip: source load failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to copy trip"})
		return
	}

	clone := models.Trip{
		UserID:      currentUserID(c),
		Name:        source.Name + " (Copy)",
		Description: source.Description,
		StartDate:   source.StartDate,
		EndDate:     source.EndDate,
		CoverImage:  source.CoverImage,
		BudgetLimit: source.BudgetLimit,
	}
	for _, stop := range source.Stops {
		newStop := models.Stop{
			CityName:  stop.CityName,
			Country:   stop.Country,
			StartDate: stop.StartDate,
			EndDate:   stop.EndDate,
			Order:     stop.Order,
			Notes:     stop.Notes,
		}
		for _, a := range stop.Activities {
			newStop.Activities = append(newStop.Activities, models.Activity{
				Name:        a.Name,
				Description: a.Description,
				Category:    a.Category,
				Date:        a.Date,
				StartTime:   a.StartTime,
				EndTime:     a.EndTime,
				Duration:    a.Duration,
				Cost:        a.Cost,
				Location:    a.Location,
				Notes:       a.Notes,
			})
		}
		clone.Stops = append(clone.Stops, newStop)
	}
	for _, e := range source.Expenses {
		clone.Expenses = append(clone.Expenses, models.Expense{
			Category:    e.Category,
			Description: e.Description,
			Amount:      e.Amount,
			Date:        e.Date,
			Notes:       e.Notes,
		})
	}

	tx := config.DB.Begin()
	if tx.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start transaction"})
		return
	}
	// Nested create persists the trip, its stops, their activities and the
	// expenses in one go.
	if err := tx.Create(&clone).Error; err != nil {
		tx.Rollback()
		logrus.WithError(err).Error("CopyTrip: create failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to copy trip"})
		return
	}
	if err := tx.Commit().Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Transaction commit failed"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"trip": clone})
}
