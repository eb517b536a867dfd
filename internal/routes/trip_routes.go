package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/eswar0113/travel/internal/controllers"
	"github.com/eswar0113/travel/internal/middleware"
)

func TripRoutes(r *gin.Engine) {
	trips := r.Group("/trips")
	trips.Use(middleware.RequireAuth())
	{
		trips.POST("", controllers.CreateTrip)
		trips.GET("", controllers.ListTrips)
		trips.POST("/copy", controllers.CopyTrip)
		trips.GET("/:id", controllers.GetTrip)
		trips.PUT("/:id", controllers.UpdateTrip)
		trips.DELETE("/:id", controllers.DeleteTrip)

		trips.POST("/:id/stops", controllers.AddStop)
		trips.GET("/:id/stops", controllers.ListStops)
		trips.PUT("/:id/stops/:stopId", controllers.UpdateStop)
		trips.DELETE("/:id/stops/:stopId", controllers.DeleteStop)
		trips.POST("/:id/stops/:stopId/suggest", controllers.SuggestActivities)

		trips.POST("/:id/expenses", controllers.CreateExpense)
		trips.GET("/:id/expenses", controllers.ListExpenses)
		trips.DELETE("/:id/expenses", controllers.DeleteExpense)

		trips.GET("/:id/packing", controllers.GetPackingList)
		trips.POST("/:id/packing", controllers.AddPackingItem)
		trips.PATCH("/:id/packing/:itemId", controllers.UpdatePackingItem)
		trips.DELETE("/:id/packing/:itemId", controllers.DeletePackingItem)

		trips.POST("/:id/share", controllers.ShareTrip)
		trips.DELETE("/:id/share", controllers.DeleteShare)

		trips.GET("/:id/map", controllers.TripMap)
	}

	activities := r.Group("/activities")
	activities.Use(middleware.RequireAuth())
	{
		activities.POST("", controllers.CreateActivity)
		activities.PUT("/:id", controllers.UpdateActivity)
		activities.DELETE("/:id", controllers.DeleteActivity)
	}
}
