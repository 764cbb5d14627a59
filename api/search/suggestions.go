package search

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fightpulse/combat-api/api/types"
	"github.com/fightpulse/combat-api/internal/services/cache"
	"github.com/fightpulse/combat-api/internal/services/search"
)

// GetSuggestions handles autocomplete requests
// @Summary      Autocomplete suggestions
// @Description  Returns lightweight name suggestions grouped by entity kind, without relevance ranking.
// @Tags         search
// @Produce      json
// @Param        q     query string true  "Search text (1-100 characters)"
// @Param        limit query int    false "Maximum suggestions (1-20, default 10)"
// @Success      200 {object} types.SuccessResponse "Suggestions"
// @Failure      400 {object} types.ErrorResponse   "Invalid parameters"
// @Failure      500 {object} types.ErrorResponse   "Lookup failed"
// @Router       /api/v1/search/suggestions [get]
func GetSuggestions(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		text, limit, issues := parseSuggestionQuery(c)
		if len(issues) > 0 {
			types.RespondValidationError(c, "Invalid suggestion parameters", issues)
			return
		}

		key := cache.SuggestionKey(text, limit)
		if deps.Cache != nil {
			if data, found := deps.Cache.Get(c.Request.Context(), key); found {
				var suggestions []search.Suggestion
				if err := json.Unmarshal(data, &suggestions); err == nil {
					c.Header("X-Cache", "HIT")
					types.RespondSuccess(c, http.StatusOK, suggestions)
					return
				}
			}
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), handlerTimeout)
		defer cancel()

		suggestions, err := deps.Search.Suggest(ctx, text, limit)
		if err != nil {
			log.Printf("[ERROR] Suggestion lookup failed for query %q: %v", text, err)
			types.RespondError(c, http.StatusInternalServerError, "Unable to load suggestions")
			return
		}
		if suggestions == nil {
			suggestions = []search.Suggestion{}
		}

		if deps.Cache != nil {
			if data, err := json.Marshal(suggestions); err == nil {
				_ = deps.Cache.Set(ctx, key, data, 0)
			}
		}

		types.RespondSuccess(c, http.StatusOK, suggestions)
	}
}
