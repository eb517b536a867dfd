package controllers_test

import (
	"fmt"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func suggestPath(tripID, stopID uint) string {
	return fmt.Sprintf("/trips/%d/stops/%d/suggest", tripID, stopID)
}

func TestSuggestActivitiesForParisStop(t *testing.T) {
	r := setupRouter(t)
	token := signup(t, r, "alice@example.com")
	tripID := createTrip(t, r, token, "Euro Tour", "2026-07-01", "2026-07-20")
	stopID := addStop(t, r, token, tripID, "Paris", "France", "2026-07-01", "2026-07-05")

	// Seeded Paris catalog: Eiffel Tower (cost 30, 3h, pop 95), Louvre
	// (20, 4h), Seine Cruise (40, 2h), plus three generic templates.
	w := doJSON(t, r, "POST", suggestPath(tripID, stopID), token, gin.H{
		"available_hours":  3,
		"budget_remaining": 35,
	})
	require.Equal(t, 200, w.Code)
	body := decode(t, w)

	suggestions := body["suggestions"].([]interface{})
	// Louvre is out on time, Seine Cruise on budget; Eiffel plus the
	// three generics survive.
	require.Len(t, suggestions, 4)

	first := suggestions[0].(map[string]interface{})
	assert.Equal(t, "Eiffel Tower Visit", first["name"])
	assert.Equal(t, "Takes 3.0h of your 3h free time • Costs $30 (You have $35 left)", first["reason"])

	names := make([]string, 0, len(suggestions))
	for _, raw := range suggestions {
		names = append(names, raw.(map[string]interface{})["name"].(string))
	}
	assert.NotContains(t, names, "Louvre Museum")
	assert.NotContains(t, names, "Seine River Cruise")

	context := body["context"].(map[string]interface{})
	assert.Equal(t, "Paris, France", context["location"])
	assert.Equal(t, float64(3), context["available_hours"])
	assert.Equal(t, float64(35), context["budget_remaining"])
}

func TestSuggestSkipsPlannedActivity(t *testing.T) {
	r := setupRouter(t)
	token := signup(t, r, "alice@example.com")
	tripID := createTrip(t, r, token, "Euro Tour", "2026-07-01", "2026-07-20")
	stopID := addStop(t, r, token, tripID, "Paris", "France", "2026-07-01", "2026-07-05")

	w := doJSON(t, r, "POST", "/activities", token, gin.H{
		"stop_id": stopID,
		"name":    "eiffel tower visit",
		"date":    "2026-07-02",
	})
	require.Equal(t, 201, w.Code)

	w = doJSON(t, r, "POST", suggestPath(tripID, stopID), token, gin.H{
		"available_hours":  8,
		"budget_remaining": 500,
	})
	require.Equal(t, 200, w.Code)
	for _, raw := range decode(t, w)["suggestions"].([]interface{}) {
		assert.NotEqual(t, "Eiffel Tower Visit", raw.(map[string]interface{})["name"])
	}
}

func TestSuggestUnknownCityFallsBackToGenerics(t *testing.T) {
	r := setupRouter(t)
	token := signup(t, r, "alice@example.com")
	tripID := createTrip(t, r, token, "Off The Map", "2026-07-01", "2026-07-20")
	stopID := addStop(t, r, token, tripID, "Ulaanbaatar", "Mongolia", "2026-07-01", "2026-07-05")

	w := doJSON(t, r, "POST", suggestPath(tripID, stopID), token, gin.H{
		"available_hours":  8,
		"budget_remaining": 500,
	})
	require.Equal(t, 200, w.Code)
	suggestions := decode(t, w)["suggestions"].([]interface{})
	require.Len(t, suggestions, 3)
	assert.Equal(t, "Free Walking Tour", suggestions[0].(map[string]interface{})["name"])
	assert.Contains(t, suggestions[0].(map[string]interface{})["reason"], "Free activity!")
}

func TestSuggestRequiresPositiveHours(t *testing.T) {
	r := setupRouter(t)
	token := signup(t, r, "alice@example.com")
	tripID := createTrip(t, r, token, "Euro Tour", "2026-07-01", "2026-07-20")
	stopID := addStop(t, r, token, tripID, "Paris", "France", "2026-07-01", "2026-07-05")

	w := doJSON(t, r, "POST", suggestPath(tripID, stopID), token, gin.H{
		"available_hours":  0,
		"budget_remaining": 100,
	})
	assert.Equal(t, 400, w.Code)
}
