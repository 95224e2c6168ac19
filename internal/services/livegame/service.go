// Package livegame exposes the read side of in-flight game snapshots.
// Snapshots arrive from an external simulation feed; this service never
// writes them.
package livegame

import (
	"context"

	"github.com/snakeduel/snakeduel-go/internal/model"
	"github.com/snakeduel/snakeduel-go/internal/storage"
)

// Service lists live game snapshots
type Service struct {
	storage storage.Store
}

// New creates a new livegame Service
func New(store storage.Store) *Service {
	return &Service{storage: store}
}

// List returns all current live game snapshots
func (s *Service) List(ctx context.Context) ([]*model.LiveGame, error) {
	return s.storage.ListLiveGames(ctx)
}
