package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/eswar0113/travel/internal/config"
	"github.com/eswar0113/travel/internal/models"
	"github.com/eswar0113/travel/internal/planner"
)

// GetPackingList returns the trip's packing list, generating and
// persisting it on first access. An existing list is returned verbatim:
// regenerating would clobber checked state and custom items.
func GetPackingList(c *gin.Context) {
	trip, ok := ownedTrip(c, c.Param("id"))
	if !ok {
		return
	}

	var list models.PackingList
	err := config.DB.
		Where("trip_id = ?", trip.ID).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		First(&list).Error
	if err == nil {
		c.JSON(http.StatusOK, gin.H{"packing_list": list})
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		logrus.WithError(err).Error("GetPackingList: lookup failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load packing list"})
		return
	}

	// First access: derive the destination from the first stop, fall back
	// to the trip name.
	destination := trip.Name
	var firstStop models.Stop
	if err := config.DB.Where("trip_id = ?", trip.ID).Order(`"order" ASC`).First(&firstStop).Error; err == nil {
		destination = fmt.Sprintf("%s, %s", firstStop.CityName, firstStop.Country)
	}

	duration := planner.TripDurationDays(trip.StartDate, trip.EndDate)
	items := planner.GeneratePackingList(destination, duration, trip.StartDate)

	tx := config.DB.Begin()
	if tx.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start transaction"})
		return
	}
	list = models.PackingList{TripID: trip.ID, Items: items}
	if err := tx.Create(&list).Error; err != nil {
		tx.Rollback()
		logrus.WithError(err).Error("GetPackingList: create failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create packing list"})
		return
	}
	if err := tx.Commit().Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Transaction commit failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"packing_list": list})
}

func AddPackingItem(c *gin.Context) {
	trip, ok := ownedTrip(c, c.Param("id"))
	if !ok {
		return
	}

	var input struct {
		Item     string `json:"item" binding:"required"`
		Category string `json:"category" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item input: " + err.Error()})
		return
	}

	var list models.PackingList
	if err := config.DB.Where("trip_id = ?", trip.ID).First(&list).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Packing list not found"})
		return
	}

	item := models.PackingItem{
		PackingListID: list.ID,
		Item:          input.Item,
		Category:      input.Category,
	}
	if err := config.DB.Create(&item).Error; err != nil {
		logrus.WithError(err).Error("AddPackingItem: create failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add item"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"item": item})
}

// tripPackingItem loads a packing item and verifies it belongs to the
// given trip's list.
func tripPackingItem(c *gin.Context, trip models.Trip) (models.PackingItem, bool) {
	var item models.PackingItem
	if err := config.DB.First(&item, "id = ?", c.Param("itemId")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
		return models.PackingItem{}, false
	}

	var list models.PackingList
	if err := config.DB.First(&list, item.PackingListID).Error; err != nil || list.TripID != trip.ID {
		c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
		return models.PackingItem{}, false
	}
	return item, true
}

func UpdatePackingItem(c *gin.Context) {
	trip, ok := ownedTrip(c, c.Param("id"))
	if !ok {
		return
	}
	item, ok := tripPackingItem(c, trip)
	if !ok {
		return
	}

	var input struct {
		Checked *bool `json:"checked" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "checked is required"})
		return
	}

	if err := config.DB.Model(&item).Update("checked", *input.Checked).Error; err != nil {
		logrus.WithError(err).Error("UpdatePackingItem: update failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update item"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"item": item})
}

func DeletePackingItem(c *gin.Context) {
	trip, ok := ownedTrip(c, c.Param("id"))
	if !ok {
		return
	}
	item, ok := tripPackingItem(c, trip)
	if !ok {
		return
	}

	if err := config.DB.Delete(&item).Error; err != nil {
		logrus.WithError(err).Error("DeletePackingItem: delete failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete item"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Item deleted"})
}
