package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/eswar0113/travel/internal/config"
	"github.com/eswar0113/travel/internal/models"
)

func CreateExpense(c *gin.Context) {
	trip, ok := ownedTrip(c, c.Param("id"))
	if !ok {
		return
	}

	var input struct {
		Category    string  `json:"category" binding:"required"`
		Description string  `json:"description" binding:"required"`
		Amount      float64 `json:"amount" binding:"gte=0"`
		Date        string  `json:"date" binding:"required"`
		Notes       string  `json:"notes"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid expense input: " + err.Error()})
		return
	}

	date, err := parseDate(input.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date"})
		return
	}

	expense := models.Expense{
		TripID:      trip.ID,
		Category:    input.Category,
		Description: input.Description,
		Amount:      input.Amount,
		Date:        date,
		Notes:       input.Notes,
	}
	if err := config.DB.Create(&expense).Error; err != nil {
		logrus.WithError(err).Error("CreateExpense: create failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create expense"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"expense": expense})
}

func ListExpenses(c *gin.Context) {
	trip, ok := ownedTrip(c, c.Param("id"))
	if !ok {
		return
	}

	var expenses []models.Expense
	err := config.DB.
		Where("trip_id = ?", trip.ID).
		Order("date DESC").
		Find(&expenses).Error
	if err != nil {
		logrus.WithError(err).Error("ListExpenses: query failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list expenses"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": expenses})
}

func DeleteExpense(c *gin.Context) {
	trip, ok := ownedTrip(c, c.Param("id"))
	if !ok {
		return
	}

	var body struct {
		ExpenseID uint `json:"expense_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "expense_id is required"})
		return
	}

	var expense models.Expense
	if err := config.DB.Where("id = ? AND trip_id = ?", body.ExpenseID, trip.ID).First(&expense).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Expense not found"})
		return
	}

	if err := config.DB.Delete(&expense).Error; err != nil {
		logrus.WithError(err).Error("DeleteExpense: delete failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete expense"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Expense deleted"})
}
