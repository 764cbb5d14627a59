package search

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fightpulse/combat-api/api/types"
	"github.com/fightpulse/combat-api/internal/services/cache"
	"github.com/fightpulse/combat-api/internal/services/search"
)

const handlerTimeout = 10 * time.Second

// Get handles cross-entity search requests
// @Summary      Search fighters, events, news and clubs
// @Description  Runs a scored cross-entity search. Results from every matched kind are merged and ordered by relevance.
// @Tags         search
// @Produce      json
// @Param        q         query string true  "Search text (2-100 characters)"
// @Param        limit     query int    false "Maximum results (1-50, default 20)"
// @Param        fuzzy     query bool   false "Enable fuzzy matching (default true)"
// @Param        highlight query bool   false "Include highlighted fragments (default true)"
// @Param        type      query string false "Comma-separated entity kinds (fighter,event,news,club)"
// @Param        category  query string false "Comma-separated news categories"
// @Param        location  query string false "Comma-separated locations"
// @Param        from      query string false "Earliest date, RFC 3339"
// @Param        to        query string false "Latest date, RFC 3339"
// @Success      200 {object} types.SuccessResponse "Ranked search results"
// @Failure      400 {object} types.ErrorResponse   "Invalid parameters"
// @Failure      500 {object} types.ErrorResponse   "Search failed"
// @Router       /api/v1/search [get]
func Get(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		query, issues := parseSearchQuery(c)
		if len(issues) > 0 {
			types.RespondValidationError(c, "Invalid search parameters", issues)
			return
		}

		key := cache.SearchKey(query)
		if deps.Cache != nil {
			if data, found := deps.Cache.Get(c.Request.Context(), key); found {
				var results []search.Result
				if err := json.Unmarshal(data, &results); err == nil {
					c.Header("X-Cache", "HIT")
					types.RespondSuccess(c, http.StatusOK, results)
					return
				}
			}
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), handlerTimeout)
		defer cancel()

		results, err := deps.Search.Search(ctx, query)
		if err != nil {
			log.Printf("[ERROR] Search failed for query %q: %v", query.Text, err)
			types.RespondError(c, http.StatusInternalServerError, "Unable to perform search")
			return
		}
		if results == nil {
			results = []search.Result{}
		}

		if deps.Cache != nil {
			if data, err := json.Marshal(results); err == nil {
				_ = deps.Cache.Set(ctx, key, data, 0)
			}
		}

		types.RespondSuccess(c, http.StatusOK, results)
	}
}
