package types

import (
	"github.com/fightpulse/combat-api/internal/database"
	"github.com/fightpulse/combat-api/internal/services/cache"
	"github.com/fightpulse/combat-api/internal/services/catalog"
	"github.com/fightpulse/combat-api/internal/services/search"
)

// Dependencies holds all the dependencies needed by handlers
type Dependencies struct {
	DB      *database.DB
	Search  search.Provider
	Catalog catalog.Store
	Cache   cache.Cache
}
