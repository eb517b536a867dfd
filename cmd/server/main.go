package main

import (
	"log"
	"net/http"

	"github.com/eswar0113/travel/internal/config"
	"github.com/eswar0113/travel/internal/logger"
	"github.com/eswar0113/travel/internal/middleware"
	"github.com/eswar0113/travel/internal/routes"
)

func main() {
	// Initialize structured logging to file
	logger.Setup()

	// Connect to the database
	config.InitDB()

	// Setup Gin router
	r := routes.SetupRouter()

	// Wrap with CORS
	handler := middleware.EnableCORS(r)

	log.Println("🚀 Server running at :8080")
	log.Fatal(http.ListenAndServe("0.0.0.0:8080", handler))
}
