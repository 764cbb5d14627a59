package search

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fightpulse/combat-api/api/types"
	"github.com/fightpulse/combat-api/internal/services/search"
)

func TestGetSuggestions(t *testing.T) {
	t.Run("returns suggestions with defaults", func(t *testing.T) {
		provider := &mockProvider{
			suggestFunc: func(ctx context.Context, text string, limit int) ([]search.Suggestion, error) {
				assert.Equal(t, "Bel", text)
				assert.Equal(t, 10, limit)
				return []search.Suggestion{
					{ID: "f1", Text: "Belgrade Warrior", Kind: search.KindFighter},
					{ID: "e1", Text: "Belgrade Fight Night", Kind: search.KindEvent},
				}, nil
			},
		}
		router := setupRouter(&types.Dependencies{Search: provider})

		w := doRequest(router, "/api/v1/search/suggestions?q=Bel")
		require.Equal(t, http.StatusOK, w.Code)

		// data carries the suggestion array itself, not a wrapper object
		var envelope struct {
			Success bool                `json:"success"`
			Data    []search.Suggestion `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
		assert.True(t, envelope.Success)
		require.Len(t, envelope.Data, 2)
		assert.Equal(t, "fighter", string(envelope.Data[0].Kind))
	})

	t.Run("single character query is allowed", func(t *testing.T) {
		router := setupRouter(&types.Dependencies{Search: &mockProvider{}})

		w := doRequest(router, "/api/v1/search/suggestions?q=B")
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("rejects invalid parameters", func(t *testing.T) {
		tests := []struct {
			name   string
			target string
			field  string
		}{
			{name: "missing query", target: "/api/v1/search/suggestions", field: "q"},
			{name: "limit too large", target: "/api/v1/search/suggestions?q=Bel&limit=21", field: "limit"},
			{name: "limit not a number", target: "/api/v1/search/suggestions?q=Bel&limit=x", field: "limit"},
		}

		router := setupRouter(&types.Dependencies{Search: &mockProvider{}})
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				w := doRequest(router, tt.target)
				require.Equal(t, http.StatusBadRequest, w.Code)

				var envelope types.ErrorResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
				require.NotEmpty(t, envelope.Issues)
				assert.Equal(t, tt.field, envelope.Issues[0].Field)
			})
		}
	})

	t.Run("lookup failure yields a generic error", func(t *testing.T) {
		provider := &mockProvider{
			suggestFunc: func(ctx context.Context, text string, limit int) ([]search.Suggestion, error) {
				return nil, errors.New("store down")
			},
		}
		router := setupRouter(&types.Dependencies{Search: provider})

		w := doRequest(router, "/api/v1/search/suggestions?q=Bel")
		require.Equal(t, http.StatusInternalServerError, w.Code)

		var envelope types.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
		assert.Equal(t, "Unable to load suggestions", envelope.Error)
	})
}
