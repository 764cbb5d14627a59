package clubs

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/fightpulse/combat-api/api/types"
	apperrors "github.com/fightpulse/combat-api/pkg/errors"
)

// List handles club list requests
// @Summary      List clubs
// @Tags         clubs
// @Produce      json
// @Param        limit  query int false "Page size (1-100, default 20)"
// @Param        offset query int false "Page offset"
// @Success      200 {object} types.SuccessResponse "Clubs"
// @Router       /api/v1/clubs [get]
func List(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, offset, issues := parsePageParams(c)
		if len(issues) > 0 {
			types.RespondValidationError(c, "Invalid pagination parameters", issues)
			return
		}

		clubs, total, err := deps.Catalog.ListClubs(c.Request.Context(), limit, offset)
		if err != nil {
			log.Printf("[ERROR] Failed to list clubs: %v", err)
			types.RespondError(c, http.StatusInternalServerError, "Unable to load clubs")
			return
		}

		types.RespondSuccess(c, http.StatusOK, types.ListData{
			Items:  clubs,
			Total:  total,
			Limit:  limit,
			Offset: offset,
		})
	}
}

// GetByID handles single club requests
// @Summary      Get a club
// @Tags         clubs
// @Produce      json
// @Param        id path string true "Club ID"
// @Success      200 {object} types.SuccessResponse "Club"
// @Failure      404 {object} types.ErrorResponse   "Not found"
// @Router       /api/v1/clubs/{id} [get]
func GetByID(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		club, err := deps.Catalog.GetClub(c.Request.Context(), c.Param("id"))
		if err != nil {
			if apperrors.IsCode(err, apperrors.ErrCodeNotFound) {
				types.RespondError(c, http.StatusNotFound, "Club not found")
				return
			}
			log.Printf("[ERROR] Failed to get club %s: %v", c.Param("id"), err)
			types.RespondError(c, http.StatusInternalServerError, "Unable to load club")
			return
		}

		types.RespondSuccess(c, http.StatusOK, club)
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
