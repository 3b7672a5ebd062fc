package routes

import (
	"eventos_api/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathCatalog         = "/catalog"
	PathRecommendations = "/recommendations"
)

func addCatalogRoutes(rg *gin.RouterGroup, catalogHandler *handlers.CatalogHandler, recommendationHandler *handlers.RecommendationHandler) {
	catalog := rg.Group(PathCatalog)
	{
		catalog.GET("/events", catalogHandler.ListEvents)
		catalog.GET("/themes", catalogHandler.ListThemes)
		catalog.GET("/services", catalogHandler.ListServices)
		catalog.GET("/packages", catalogHandler.ListPackages)
	}

	rg.POST(PathRecommendations, recommendationHandler.Recommend)
}
