// Package ledger owns the append-only store of completed match outcomes.
package ledger

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/snakeduel/snakeduel-go/internal/dependencies/clock"
	"github.com/snakeduel/snakeduel-go/internal/dependencies/random"
	"github.com/snakeduel/snakeduel-go/internal/model"
	"github.com/snakeduel/snakeduel-go/internal/storage"
)

// Service records and lists match results
type Service struct {
	storage storage.Store
	clock   clock.Clock
	random  random.Random
	logger  *slog.Logger
}

// New creates a new ledger Service
func New(store storage.Store, clk clock.Clock, rnd random.Random, logger *slog.Logger) *Service {
	return &Service{
		storage: store,
		clock:   clk,
		random:  rnd,
		logger:  logger,
	}
}

// Record validates the input, assigns an id and server-side timestamp, and
// appends the result to the ledger. Caller-supplied timestamps are never
// accepted.
func (s *Service) Record(ctx context.Context, input model.MatchResultInput) (*model.MatchResult, error) {
	if err := validate(input); err != nil {
		return nil, err
	}

	result := &model.MatchResult{
		ID:           model.ResultID(s.random.ID("r_")),
		Player1:      input.Player1,
		Player2:      input.Player2,
		Winner:       input.Winner,
		Player1Score: input.Player1Score,
		Player2Score: input.Player2Score,
		Mode:         input.Mode,
		Duration:     input.Duration,
		Timestamp:    s.clock.Now().Unix(),
	}

	if err := s.storage.AppendResult(ctx, result); err != nil {
		return nil, err
	}

	s.logger.Info("match result recorded",
		slog.String("result_id", string(result.ID)),
		slog.String("winner", result.Winner),
		slog.String("mode", string(result.Mode)),
	)

	return result, nil
}

// ListAll returns every recorded result in storage order
func (s *Service) ListAll(ctx context.Context) ([]*model.MatchResult, error) {
	return s.storage.ListResults(ctx)
}

func validate(input model.MatchResultInput) error {
	if input.Player1 == "" || input.Player2 == "" {
		return fmt.Errorf("%w: both players are required", model.ErrInvalidResult)
	}
	if input.Winner != input.Player1 && input.Winner != input.Player2 {
		return fmt.Errorf("%w: winner must be one of the players", model.ErrInvalidResult)
	}
	if input.Player1Score < 0 || input.Player2Score < 0 {
		return fmt.Errorf("%w: scores must be non-negative", model.ErrInvalidResult)
	}
	if !input.Mode.Valid() {
		return fmt.Errorf("%w: unknown mode %q", model.ErrInvalidResult, input.Mode)
	}
	if input.Duration < 0 {
		return fmt.Errorf("%w: duration must be non-negative", model.ErrInvalidResult)
	}
	return nil
}
