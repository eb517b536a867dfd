package controllers_test

import (
	"fmt"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpenseLifecycle(t *testing.T) {
	r := setupRouter(t)
	token := signup(t, r, "alice@example.com")
	tripID := createTrip(t, r, token, "Summer Trip", "2026-07-01", "2026-07-11")
	path := fmt.Sprintf("/trips/%d/expenses", tripID)

	w := doJSON(t, r, "POST", path, token, gin.H{
		"category":    "food",
		"description": "Street noodles",
		"amount":      8.5,
		"date":        "2026-07-02",
	})
	require.Equal(t, 201, w.Code)
	expense := decode(t, w)["expense"].(map[string]interface{})
	id := uint(expense["ID"].(float64))

	w = doJSON(t, r, "POST", path, token, gin.H{
		"category":    "transport",
		"description": "Metro pass",
		"amount":      14,
		"date":        "2026-07-05",
	})
	require.Equal(t, 201, w.Code)

	// Newest first.
	w = doJSON(t, r, "GET", path, token, nil)
	require.Equal(t, 200, w.Code)
	data := decode(t, w)["data"].([]interface{})
	require.Len(t, data, 2)
	assert.Equal(t, "Metro pass", data[0].(map[string]interface{})["description"])

	w = doJSON(t, r, "DELETE", path, token, gin.H{"expense_id": id})
	require.Equal(t, 200, w.Code)

	w = doJSON(t, r, "GET", path, token, nil)
	require.Equal(t, 200, w.Code)
	assert.Len(t, decode(t, w)["data"].([]interface{}), 1)
}

func TestExpenseValidation(t *testing.T) {
	r := setupRouter(t)
	token := signup(t, r, "alice@example.com")
	tripID := createTrip(t, r, token, "Summer Trip", "2026-07-01", "2026-07-11")
	path := fmt.Sprintf("/trips/%d/expenses", tripID)

	// Missing description.
	w := doJSON(t, r, "POST", path, token, gin.H{
		"category": "food",
		"amount":   8.5,
		"date":     "2026-07-02",
	})
	assert.Equal(t, 400, w.Code)

	// Negative amount.
	w = doJSON(t, r, "POST", path, token, gin.H{
		"category":    "food",
		"description": "Refund?",
		"amount":      -3,
		"date":        "2026-07-02",
	})
	assert.Equal(t, 400, w.Code)

	// Deleting an expense from another trip fails.
	other := createTrip(t, r, token, "Other Trip", "2026-08-01", "2026-08-05")
	w = doJSON(t, r, "POST", fmt.Sprintf("/trips/%d/expenses", other), token, gin.H{
		"category":    "food",
		"description": "Elsewhere",
		"amount":      5,
		"date":        "2026-08-02",
	})
	require.Equal(t, 201, w.Code)
	strayID := uint(decode(t, w)["expense"].(map[string]interface{})["ID"].(float64))

	w = doJSON(t, r, "DELETE", path, token, gin.H{"expense_id": strayID})
	assert.Equal(t, 404, w.Code)
}
