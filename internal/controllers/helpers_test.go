package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/eswar0113/travel/internal/config"
	"github.com/eswar0113/travel/internal/routes"
)

// setupRouter gives each test a fresh in-memory database with seeded
// catalogs and the real route table.
func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	// A pooled :memory: DSN opens one database per connection; pin the
	// pool to a single connection so every query sees the same data.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, config.Migrate(db))
	require.NoError(t, config.SeedCatalogs(db))
	config.DB = db

	return routes.SetupRouter()
}

// doJSON performs a request with an optional bearer token and JSON body.
func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var m map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &m), "body: %s", w.Body.String())
	return m
}

// signup registers a user and returns their bearer token.
func signup(t *testing.T, r *gin.Engine, email string) string {
	t.Helper()
	w := doJSON(t, r, "POST", "/auth/signup", "", gin.H{
		"name":     "Test User",
		"email":    email,
		"password": "password123",
	})
	require.Equal(t, 201, w.Code, "signup: %s", w.Body.String())
	token, ok := decode(t, w)["token"].(string)
	require.True(t, ok)
	return token
}

// createTrip makes a trip for the given token and returns its id.
func createTrip(t *testing.T, r *gin.Engine, token, name, start, end string) uint {
	t.Helper()
	w := doJSON(t, r, "POST", "/trips", token, gin.H{
		"name":       name,
		"start_date": start,
		"end_date":   end,
	})
	require.Equal(t, 201, w.Code, "create trip: %s", w.Body.String())
	trip := decode(t, w)["trip"].(map[string]interface{})
	return uint(trip["ID"].(float64))
}

// addStop appends a stop and returns its id.
func addStop(t *testing.T, r *gin.Engine, token string, tripID uint, city, country, start, end string) uint {
	t.Helper()
	w := doJSON(t, r, "POST", fmt.Sprintf("/trips/%d/stops", tripID), token, gin.H{
		"city_name":  city,
		"country":    country,
		"start_date": start,
		"end_date":   end,
	})
	require.Equal(t, 201, w.Code, "add stop: %s", w.Body.String())
	stop := decode(t, w)["stop"].(map[string]interface{})
	return uint(stop["ID"].(float64))
}
