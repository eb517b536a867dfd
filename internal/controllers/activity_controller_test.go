package controllers_test

import (
	"fmt"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateActivityDefaults(t *testing.T) {
	r := setupRouter(t)
	token := signup(t, r, "alice@example.com")
	tripID := createTrip(t, r, token, "Euro Tour", "2026-07-01", "2026-07-20")
	stopID := addStop(t, r, token, tripID, "Paris", "France", "2026-07-01", "2026-07-05")

	w := doJSON(t, r, "POST", "/activities", token, gin.H{
		"stop_id": stopID,
		"name":    "Wander Le Marais",
		"date":    "2026-07-02",
	})
	require.Equal(t, 201, w.Code)
	activity := decode(t, w)["activity"].(map[string]interface{})
	assert.Equal(t, "other", activity["category"])
	assert.Equal(t, float64(0), activity["cost"])
}

func TestCreateActivityOwnership(t *testing.T) {
	r := setupRouter(t)
	alice := signup(t, r, "alice@example.com")
	bob := signup(t, r, "bob@example.com")
	tripID := createTrip(t, r, alice, "Euro Tour", "2026-07-01", "2026-07-20")
	stopID := addStop(t, r, alice, tripID, "Paris", "France", "2026-07-01", "2026-07-05")

	w := doJSON(t, r, "POST", "/activities", bob, gin.H{
		"stop_id": stopID,
		"name":    "Gatecrash",
		"date":    "2026-07-02",
	})
	assert.Equal(t, 403, w.Code)
}

func TestUpdateActivity(t *testing.T) {
	r := setupRouter(t)
	token := signup(t, r, "alice@example.com")
	tripID := createTrip(t, r, token, "Euro Tour", "2026-07-01", "2026-07-20")
	stopID := addStop(t, r, token, tripID, "Paris", "France", "2026-07-01", "2026-07-05")

	w := doJSON(t, r, "POST", "/activities", token, gin.H{
		"stop_id": stopID,
		"name":    "Louvre Museum",
		"date":    "2026-07-02",
	})
	require.Equal(t, 201, w.Code)
	activity := decode(t, w)["activity"].(map[string]interface{})
	id := uint(activity["ID"].(float64))

	w = doJSON(t, r, "PUT", fmt.Sprintf("/activities/%d", id), token, gin.H{
		"cost":     25.5,
		"category": "culture",
	})
	require.Equal(t, 200, w.Code)
	updated := decode(t, w)["activity"].(map[string]interface{})
	assert.Equal(t, 25.5, updated["cost"])
	assert.Equal(t, "culture", updated["category"])
	assert.Equal(t, "Louvre Museum", updated["name"])
}

func TestListActivityTemplatesFilters(t *testing.T) {
	r := setupRouter(t)

	// Catalog search is anonymous.
	w := doJSON(t, r, "GET", "/activities/templates?city=Paris", "", nil)
	require.Equal(t, 200, w.Code)
	data := decode(t, w)["data"].([]interface{})
	require.NotEmpty(t, data)
	for _, raw := range data {
		assert.Equal(t, "Paris", raw.(map[string]interface{})["city_name"])
	}

	w = doJSON(t, r, "GET", "/activities/templates?q=sushi", "", nil)
	require.Equal(t, 200, w.Code)
	data = decode(t, w)["data"].([]interface{})
	require.Len(t, data, 1)
	assert.Equal(t, "Sushi Making Class", data[0].(map[string]interface{})["name"])
}
