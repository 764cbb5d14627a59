package news

import (
	"github.com/gin-gonic/gin"

	"github.com/fightpulse/combat-api/api/types"
)

// RegisterRoutes registers news routes
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	// GET /api/v1/news - List news articles
	router.GET("", List(deps))

	// GET /api/v1/news/:id - Get article details
	router.GET("/:id", GetByID(deps))
}
