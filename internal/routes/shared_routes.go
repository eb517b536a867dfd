package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/eswar0113/travel/internal/controllers"
)

// SharedRoutes is the only anonymous read surface: a public trip behind
// its share token.
func SharedRoutes(r *gin.Engine) {
	r.GET("/shared/:shareId", controllers.GetSharedTrip)
}
