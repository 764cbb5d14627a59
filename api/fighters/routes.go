package fighters

import (
	"github.com/gin-gonic/gin"

	"github.com/fightpulse/combat-api/api/types"
)

// RegisterRoutes registers fighter routes
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	// GET /api/v1/fighters - List fighters
	router.GET("", List(deps))

	// GET /api/v1/fighters/:id - Get fighter details
	router.GET("/:id", GetByID(deps))
}
