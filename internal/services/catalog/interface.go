package catalog

import (
	"context"

	"github.com/fightpulse/combat-api/internal/models"
)

// Store defines the read operations the entity routes need
type Store interface {
	ListFighters(ctx context.Context, limit, offset int) ([]models.Fighter, int64, error)
	GetFighter(ctx context.Context, id string) (*models.Fighter, error)

	ListEvents(ctx context.Context, limit, offset int) ([]models.Event, int64, error)
	GetEvent(ctx context.Context, id string) (*models.Event, error)

	ListNews(ctx context.Context, limit, offset int) ([]models.News, int64, error)
	GetNews(ctx context.Context, id string) (*models.News, error)

	ListClubs(ctx context.Context, limit, offset int) ([]models.Club, int64, error)
	GetClub(ctx context.Context, id string) (*models.Club, error)
}
