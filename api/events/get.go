package events

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/fightpulse/combat-api/api/types"
	apperrors "github.com/fightpulse/combat-api/pkg/errors"
)

// List handles event list requests
// @Summary      List events
// @Tags         events
// @Produce      json
// @Param        limit  query int false "Page size (1-100, default 20)"
// @Param        offset query int false "Page offset"
// @Success      200 {object} types.SuccessResponse "Events"
// @Router       /api/v1/events [get]
func List(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, offset, issues := parsePageParams(c)
		if len(issues) > 0 {
			types.RespondValidationError(c, "Invalid pagination parameters", issues)
			return
		}

		events, total, err := deps.Catalog.ListEvents(c.Request.Context(), limit, offset)
		if err != nil {
			log.Printf("[ERROR] Failed to list events: %v", err)
			types.RespondError(c, http.StatusInternalServerError, "Unable to load events")
			return
		}

		types.RespondSuccess(c, http.StatusOK, types.ListData{
			Items:  events,
			Total:  total,
			Limit:  limit,
			Offset: offset,
		})
	}
}

// GetByID handles single event requests
// @Summary      Get an event
// @Tags         events
// @Produce      json
// @Param        id path string true "Event ID"
// @Success      200 {object} types.SuccessResponse "Event"
// @Failure      404 {object} types.ErrorResponse   "Not found"
// @Router       /api/v1/events/{id} [get]
func GetByID(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		event, err := deps.Catalog.GetEvent(c.Request.Context(), c.Param("id"))
		if err != nil {
			if apperrors.IsCode(err, apperrors.ErrCodeNotFound) {
				types.RespondError(c, http.StatusNotFound, "Event not found")
				return
			}
			log.Printf("[ERROR] Failed to get event %s: %v", c.Param("id"), err)
			types.RespondError(c, http.StatusInternalServerError, "Unable to load event")
			return
		}

		types.RespondSuccess(c, http.StatusOK, event)
	}
}

func parsePageParams(c *gin.Context) (limit, offset int, issues []types.Issue) {
	limit = 20
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 100 {
			issues = append(issues, types.Issue{Field: "limit", Message: "must be an integer between 1 and 100"})
		} else {
			limit = parsed
		}
	}
	if raw := c.Query("offset"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			issues = append(issues, types.Issue{Field: "offset", Message: "must be a non-negative integer"})
		} else {
			offset = parsed
		}
	}
	return limit, offset, issues
}
