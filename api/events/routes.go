package events

import (
	"github.com/gin-gonic/gin"

	"github.com/fightpulse/combat-api/api/types"
)

// RegisterRoutes registers event routes
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	// GET /api/v1/events - List events
	router.GET("", List(deps))

	// GET /api/v1/events/:id - Get event details
	router.GET("/:id", GetByID(deps))
}
