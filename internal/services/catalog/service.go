package catalog

import (
	"context"
	"log/slog"

	"github.com/gamestorehq/gamestore/internal/dependencies/clock"
	"github.com/gamestorehq/gamestore/internal/model"
	"github.com/gamestorehq/gamestore/internal/storage"
)

// ListLimit caps public catalog listings
const ListLimit = 50

// Service manages the game catalog. Reads are public; writes happen only
// behind the admin gate, which the handlers enforce.
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	logger  *slog.Logger
}

// New creates a new catalog Service
func New(storage storage.Storage, clock clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		clock:   clock,
		logger:  logger,
	}
}

// ListGames returns catalog entries matching the filter, capped at ListLimit
func (s *Service) ListGames(ctx context.Context, filter storage.GameFilter) ([]*model.Game, error) {
	if filter.Limit <= 0 || filter.Limit > ListLimit {
		filter.Limit = ListLimit
	}
	return s.storage.ListGames(ctx, filter)
}

// GetGame returns a single catalog entry
func (s *Service) GetGame(ctx context.Context, id model.ID) (*model.Game, error) {
	return s.storage.GetGame(ctx, id)
}

// CreateGame adds a game to the catalog
func (s *Service) CreateGame(ctx context.Context, game model.Game) (*model.Game, error) {
	now := s.clock.Now()
	game.ID = model.NewID()
	game.CreatedAt = now
	game.UpdatedAt = now
	if game.Images == nil {
		game.Images = []string{}
	}

	if err := s.storage.CreateGame(ctx, &game); err != nil {
		return nil, err
	}

	s.logger.Info("game created",
		slog.String("game_id", string(game.ID)),
		slog.String("title", game.Title),
	)
	return &game, nil
}

// UpdateGame applies a partial update to a game. An empty patch is a no-op
// and reports updated=false without touching the store.
func (s *Service) UpdateGame(ctx context.Context, id model.ID, patch model.GamePatch) (bool, error) {
	if patch.IsZero() {
		return false, nil
	}

	if err := s.storage.UpdateGame(ctx, id, patch, s.clock.Now()); err != nil {
		return false, err
	}
	return true, nil
}

// DeleteGame removes a game from the catalog
func (s *Service) DeleteGame(ctx context.Context, id model.ID) error {
	return s.storage.DeleteGame(ctx, id)
}
