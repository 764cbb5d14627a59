package search

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fightpulse/combat-api/api/types"
	"github.com/fightpulse/combat-api/internal/services/cache"
	"github.com/fightpulse/combat-api/internal/services/search"
)

// mockProvider implements search.Provider for handler tests
type mockProvider struct {
	searchFunc  func(ctx context.Context, q search.Query) ([]search.Result, error)
	suggestFunc func(ctx context.Context, text string, limit int) ([]search.Suggestion, error)
}

func (m *mockProvider) Search(ctx context.Context, q search.Query) ([]search.Result, error) {
	if m.searchFunc != nil {
		return m.searchFunc(ctx, q)
	}
	return nil, nil
}

func (m *mockProvider) Suggest(ctx context.Context, text string, limit int) ([]search.Suggestion, error) {
	if m.suggestFunc != nil {
		return m.suggestFunc(ctx, text, limit)
	}
	return nil, nil
}

func setupRouter(deps *types.Dependencies) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	group := router.Group("/api/v1/search")
	RegisterRoutes(group, deps)
	return router
}

func doRequest(router *gin.Engine, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	router.ServeHTTP(w, req)
	return w
}

func TestGetSearch(t *testing.T) {
	t.Run("returns ranked results", func(t *testing.T) {
		provider := &mockProvider{
			searchFunc: func(ctx context.Context, q search.Query) ([]search.Result, error) {
				assert.Equal(t, "Belgrade", q.Text)
				assert.Equal(t, 20, q.Limit)
				assert.True(t, q.Fuzzy)
				assert.True(t, q.Highlight)
				return []search.Result{
					{ID: "n1", Kind: search.KindNews, Title: "Belgrade", Score: 1.0, URL: "/news/n1"},
					{ID: "f1", Kind: search.KindFighter, Title: "Belgrade Warrior", Score: 0.7, URL: "/fighters/f1"},
				}, nil
			},
		}
		router := setupRouter(&types.Dependencies{Search: provider})

		w := doRequest(router, "/api/v1/search?q=Belgrade")
		require.Equal(t, http.StatusOK, w.Code)

		// data carries the result array itself, not a wrapper object
		var envelope struct {
			Success bool            `json:"success"`
			Data    []search.Result `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
		assert.True(t, envelope.Success)
		require.Len(t, envelope.Data, 2)
		assert.Equal(t, "n1", envelope.Data[0].ID)
		assert.Equal(t, "news", string(envelope.Data[0].Kind))
	})

	t.Run("empty results are a success, not an error", func(t *testing.T) {
		router := setupRouter(&types.Dependencies{Search: &mockProvider{}})

		w := doRequest(router, "/api/v1/search?q=nothing")
		require.Equal(t, http.StatusOK, w.Code)

		var envelope struct {
			Success bool            `json:"success"`
			Data    json.RawMessage `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
		assert.True(t, envelope.Success)
		assert.JSONEq(t, `[]`, string(envelope.Data))
	})

	t.Run("passes filters through", func(t *testing.T) {
		var captured search.Query
		provider := &mockProvider{
			searchFunc: func(ctx context.Context, q search.Query) ([]search.Result, error) {
				captured = q
				return nil, nil
			},
		}
		router := setupRouter(&types.Dependencies{Search: provider})

		w := doRequest(router, "/api/v1/search?q=Belgrade&limit=5&fuzzy=false&type=news,club&category=mma&location=Serbia&from=2026-01-01T00:00:00Z")
		require.Equal(t, http.StatusOK, w.Code)

		assert.Equal(t, 5, captured.Limit)
		assert.False(t, captured.Fuzzy)
		assert.True(t, captured.Highlight)
		assert.Equal(t, []search.Kind{search.KindNews, search.KindClub}, captured.Kinds)
		assert.Equal(t, []string{"mma"}, captured.Categories)
		assert.Equal(t, []string{"Serbia"}, captured.Locations)
		require.NotNil(t, captured.From)
		assert.Nil(t, captured.To)
	})

	t.Run("drops unknown kinds", func(t *testing.T) {
		var captured search.Query
		provider := &mockProvider{
			searchFunc: func(ctx context.Context, q search.Query) ([]search.Result, error) {
				captured = q
				return nil, nil
			},
		}
		router := setupRouter(&types.Dependencies{Search: provider})

		w := doRequest(router, "/api/v1/search?q=Belgrade&type=news,podcast")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, []search.Kind{search.KindNews}, captured.Kinds)
	})

	t.Run("rejects invalid parameters with issues", func(t *testing.T) {
		tests := []struct {
			name   string
			target string
			field  string
		}{
			{name: "missing query", target: "/api/v1/search", field: "q"},
			{name: "query too short", target: "/api/v1/search?q=a", field: "q"},
			{name: "limit too large", target: "/api/v1/search?q=Belgrade&limit=51", field: "limit"},
			{name: "limit not a number", target: "/api/v1/search?q=Belgrade&limit=many", field: "limit"},
			{name: "bad fuzzy flag", target: "/api/v1/search?q=Belgrade&fuzzy=maybe", field: "fuzzy"},
			{name: "bad from date", target: "/api/v1/search?q=Belgrade&from=yesterday", field: "from"},
		}

		router := setupRouter(&types.Dependencies{Search: &mockProvider{}})
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				w := doRequest(router, tt.target)
				require.Equal(t, http.StatusBadRequest, w.Code)

				var envelope types.ErrorResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
				assert.False(t, envelope.Success)
				require.NotEmpty(t, envelope.Issues)
				assert.Equal(t, tt.field, envelope.Issues[0].Field)
			})
		}
	})

	t.Run("provider failure yields a generic error", func(t *testing.T) {
		provider := &mockProvider{
			searchFunc: func(ctx context.Context, q search.Query) ([]search.Result, error) {
				return nil, errors.New("all entity lookups failed: store down")
			},
		}
		router := setupRouter(&types.Dependencies{Search: provider})

		w := doRequest(router, "/api/v1/search?q=Belgrade")
		require.Equal(t, http.StatusInternalServerError, w.Code)

		var envelope types.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
		assert.False(t, envelope.Success)
		assert.Equal(t, "Unable to perform search", envelope.Error)
		assert.NotContains(t, envelope.Error, "store down")
	})

	t.Run("serves repeated queries from cache", func(t *testing.T) {
		calls := 0
		provider := &mockProvider{
			searchFunc: func(ctx context.Context, q search.Query) ([]search.Result, error) {
				calls++
				return []search.Result{{ID: "f1", Kind: search.KindFighter, Title: "Belgrade Warrior", Score: 0.7, URL: "/fighters/f1"}}, nil
			},
		}
		mc := cache.NewMemoryCache(1)
		defer mc.Stop()
		router := setupRouter(&types.Dependencies{Search: provider, Cache: mc})

		first := doRequest(router, "/api/v1/search?q=Belgrade")
		require.Equal(t, http.StatusOK, first.Code)

		second := doRequest(router, "/api/v1/search?q=Belgrade")
		require.Equal(t, http.StatusOK, second.Code)
		assert.Equal(t, "HIT", second.Header().Get("X-Cache"))
		assert.Equal(t, 1, calls)
		assert.JSONEq(t, first.Body.String(), second.Body.String())
	})
}
