package clubs

import (
	"github.com/gin-gonic/gin"

	"github.com/fightpulse/combat-api/api/types"
)

// RegisterRoutes registers club routes
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	// GET /api/v1/clubs - List clubs
	router.GET("", List(deps))

	// GET /api/v1/clubs/:id - Get club details
	router.GET("/:id", GetByID(deps))
}
