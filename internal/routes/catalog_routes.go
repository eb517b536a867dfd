package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/eswar0113/travel/internal/controllers"
	"github.com/eswar0113/travel/internal/middleware"
)

// CatalogRoutes exposes the read-only city and activity catalogs plus the
// per-user saved-city list.
func CatalogRoutes(r *gin.Engine) {
	r.GET("/cities", controllers.SearchCities)
	r.GET("/activities/templates", controllers.ListActivityTemplates)

	saved := r.Group("/cities/save")
	saved.Use(middleware.RequireAuth())
	{
		saved.POST("", controllers.SaveCity)
		saved.GET("", controllers.ListSavedCities)
		saved.DELETE("", controllers.DeleteSavedCity)
	}
}
