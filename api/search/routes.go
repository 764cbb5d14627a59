package search

import (
	"github.com/gin-gonic/gin"

	"github.com/fightpulse/combat-api/api/types"
)

// RegisterRoutes registers search routes
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	// GET /api/v1/search - Cross-entity search
	router.GET("", Get(deps))

	// GET /api/v1/search/suggestions - Autocomplete
	router.GET("/suggestions", GetSuggestions(deps))
}
