package routes

import (
	ginlog "github.com/gin-contrib/logger"
	"github.com/gin-gonic/gin"
)

// SetupRouter builds the engine and mounts every route group. The caller
// owns listening.
func SetupRouter() *gin.Engine {
	r := gin.New()
	r.Use(ginlog.SetLogger())
	r.Use(gin.Recovery())

	AuthRoutes(r)
	TripRoutes(r)
	CatalogRoutes(r)
	SharedRoutes(r)

	return r
}
