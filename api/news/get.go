package news

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/fightpulse/combat-api/api/types"
	apperrors "github.com/fightpulse/combat-api/pkg/errors"
)

// List handles news list requests, newest first
// @Summary      List news articles
// @Tags         news
// @Produce      json
// @Param        limit  query int false "Page size (1-100, default 20)"
// @Param        offset query int false "Page offset"
// @Success      200 {object} types.SuccessResponse "News articles"
// @Router       /api/v1/news [get]
func List(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, offset, issues := parsePageParams(c)
		if len(issues) > 0 {
			types.RespondValidationError(c, "Invalid pagination parameters", issues)
			return
		}

		articles, total, err := deps.Catalog.ListNews(c.Request.Context(), limit, offset)
		if err != nil {
			log.Printf("[ERROR] Failed to list news: %v", err)
			types.RespondError(c, http.StatusInternalServerError, "Unable to load news")
			return
		}

		types.RespondSuccess(c, http.StatusOK, types.ListData{
			Items:  articles,
			Total:  total,
			Limit:  limit,
			Offset: offset,
		})
	}
}

// GetByID handles single article requests
// @Summary      Get a news article
// @Tags         news
// @Produce      json
// @Param        id path string true "Article ID"
// @Success      200 {object} types.SuccessResponse "Article"
// @Failure      404 {object} types.ErrorResponse   "Not found"
// @Router       /api/v1/news/{id} [get]
func GetByID(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		article, err := deps.Catalog.GetNews(c.Request.Context(), c.Param("id"))
		if err != nil {
			if apperrors.IsCode(err, apperrors.ErrCodeNotFound) {
				types.RespondError(c, http.StatusNotFound, "News article not found")
				return
			}
			log.Printf("[ERROR] Failed to get news article %s: %v", c.Param("id"), err)
			types.RespondError(c, http.StatusInternalServerError, "Unable to load news article")
			return
		}

		types.RespondSuccess(c, http.StatusOK, article)
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
