package fighters

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fightpulse/combat-api/api/types"
	"github.com/fightpulse/combat-api/internal/models"
	apperrors "github.com/fightpulse/combat-api/pkg/errors"
)

// mockStore implements catalog.Store with overridable fighter reads
type mockStore struct {
	listFighters func(ctx context.Context, limit, offset int) ([]models.Fighter, int64, error)
	getFighter   func(ctx context.Context, id string) (*models.Fighter, error)
}

func (m *mockStore) ListFighters(ctx context.Context, limit, offset int) ([]models.Fighter, int64, error) {
	if m.listFighters != nil {
		return m.listFighters(ctx, limit, offset)
	}
	return nil, 0, nil
}

func (m *mockStore) GetFighter(ctx context.Context, id string) (*models.Fighter, error) {
	if m.getFighter != nil {
		return m.getFighter(ctx, id)
	}
	return nil, apperrors.New(apperrors.ErrCodeNotFound, "fighter not found")
}

func (m *mockStore) ListEvents(ctx context.Context, limit, offset int) ([]models.Event, int64, error) {
	return nil, 0, nil
}

func (m *mockStore) GetEvent(ctx context.Context, id string) (*models.Event, error) {
	return nil, apperrors.New(apperrors.ErrCodeNotFound, "event not found")
}

func (m *mockStore) ListNews(ctx context.Context, limit, offset int) ([]models.News, int64, error) {
	return nil, 0, nil
}

func (m *mockStore) GetNews(ctx context.Context, id string) (*models.News, error) {
	return nil, apperrors.New(apperrors.ErrCodeNotFound, "news article not found")
}

func (m *mockStore) ListClubs(ctx context.Context, limit, offset int) ([]models.Club, int64, error) {
	return nil, 0, nil
}

func (m *mockStore) GetClub(ctx context.Context, id string) (*models.Club, error) {
	return nil, apperrors.New(apperrors.ErrCodeNotFound, "club not found")
}

func setupRouter(store *mockStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	group := router.Group("/api/v1/fighters")
	RegisterRoutes(group, &types.Dependencies{Catalog: store})
	return router
}

func TestList(t *testing.T) {
	t.Run("returns a page with total", func(t *testing.T) {
		store := &mockStore{
			listFighters: func(ctx context.Context, limit, offset int) ([]models.Fighter, int64, error) {
				assert.Equal(t, 20, limit)
				assert.Equal(t, 0, offset)
				return []models.Fighter{{ID: "f1", Name: "Nikola Petrovic"}}, 1, nil
			},
		}
		router := setupRouter(store)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/fighters", nil))
		require.Equal(t, http.StatusOK, w.Code)

		var envelope struct {
			Success bool `json:"success"`
			Data    struct {
				Items []models.Fighter `json:"items"`
				Total int64            `json:"total"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
		assert.True(t, envelope.Success)
		assert.Equal(t, int64(1), envelope.Data.Total)
		require.Len(t, envelope.Data.Items, 1)
		assert.Equal(t, "Nikola Petrovic", envelope.Data.Items[0].Name)
	})

	t.Run("rejects bad pagination", func(t *testing.T) {
		router := setupRouter(&mockStore{})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/fighters?limit=0", nil))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestGetByID(t *testing.T) {
	t.Run("returns the fighter", func(t *testing.T) {
		store := &mockStore{
			getFighter: func(ctx context.Context, id string) (*models.Fighter, error) {
				assert.Equal(t, "f1", id)
				return &models.Fighter{ID: "f1", Name: "Nikola Petrovic"}, nil
			},
		}
		router := setupRouter(store)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/fighters/f1", nil))
		require.Equal(t, http.StatusOK, w.Code)

		var envelope struct {
			Success bool           `json:"success"`
			Data    models.Fighter `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
		assert.Equal(t, "f1", envelope.Data.ID)
	})

	t.Run("missing fighter yields 404", func(t *testing.T) {
		router := setupRouter(&mockStore{})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/fighters/missing", nil))
		require.Equal(t, http.StatusNotFound, w.Code)

		var envelope types.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
		assert.False(t, envelope.Success)
		assert.Equal(t, "Fighter not found", envelope.Error)
	})
}
