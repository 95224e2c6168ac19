// Package room implements the pre-game lobby state machine: create, join,
// leave, and start. A room that empties out or loses its host is destroyed;
// absence from storage is the only terminal state.
package room

import (
	"context"
	"log/slog"

	"github.com/snakeduel/snakeduel-go/internal/dependencies/random"
	"github.com/snakeduel/snakeduel-go/internal/model"
	"github.com/snakeduel/snakeduel-go/internal/storage"
)

// Registry manages room lifecycle and membership
type Registry struct {
	storage storage.Store
	random  random.Random
	logger  *slog.Logger

	// Per-room lock: join/leave/start are read-modify-write cycles and
	// would lose updates under concurrent requests otherwise
	locks *keyedMutex
}

// NewRegistry creates a new room Registry
func NewRegistry(store storage.Store, rnd random.Random, logger *slog.Logger) *Registry {
	return &Registry{
		storage: store,
		random:  rnd,
		logger:  logger,
		locks:   newKeyedMutex(),
	}
}

// Create makes a new waiting room with the host as its only member.
// maxPlayers <= 0 falls back to the default of two.
func (r *Registry) Create(ctx context.Context, hostUsername string, mode model.GameMode, maxPlayers int) (*model.Room, error) {
	if maxPlayers <= 0 {
		maxPlayers = model.DefaultMaxPlayers
	}

	room := &model.Room{
		ID:           model.RoomID(r.random.ID("room_")),
		HostUsername: hostUsername,
		Mode:         mode,
		Status:       model.RoomStatusWaiting,
		Players:      []string{hostUsername},
		MaxPlayers:   maxPlayers,
	}

	if err := r.storage.SaveRoom(ctx, room); err != nil {
		return nil, err
	}

	r.logger.Info("room created",
		slog.String("room_id", string(room.ID)),
		slog.String("host", hostUsername),
		slog.String("mode", string(mode)),
	)

	return room, nil
}

// Get retrieves a room by id
func (r *Registry) Get(ctx context.Context, id model.RoomID) (*model.Room, error) {
	return r.storage.GetRoom(ctx, id)
}

// Join adds a player to a room, preserving insertion order. Joining an
// in-progress room is allowed; capacity and duplicate membership are the
// only gates.
func (r *Registry) Join(ctx context.Context, id model.RoomID, username string) (*model.Room, error) {
	r.locks.Lock(string(id))
	defer r.locks.Unlock(string(id))

	room, err := r.storage.GetRoom(ctx, id)
	if err != nil {
		return nil, err
	}

	if room.Full() {
		return nil, model.ErrRoomFull
	}
	if room.HasPlayer(username) {
		return nil, model.ErrAlreadyJoined
	}

	room.Players = append(room.Players, username)

	if err := r.storage.SaveRoom(ctx, room); err != nil {
		return nil, err
	}

	return room, nil
}

// Leave removes a player from a room. Leaving a room you are not in is an
// idempotent success; only an absent room is an error. The host leaving,
// or the membership reaching zero, destroys the room.
func (r *Registry) Leave(ctx context.Context, id model.RoomID, username string) error {
	r.locks.Lock(string(id))
	defer r.locks.Unlock(string(id))

	room, err := r.storage.GetRoom(ctx, id)
	if err != nil {
		return err
	}

	if !room.HasPlayer(username) {
		return nil
	}

	players := make([]string, 0, len(room.Players)-1)
	for _, p := range room.Players {
		if p != username {
			players = append(players, p)
		}
	}
	room.Players = players

	if len(room.Players) == 0 || username == room.HostUsername {
		r.logger.Info("room destroyed",
			slog.String("room_id", string(room.ID)),
			slog.Bool("host_left", username == room.HostUsername),
		)
		return r.storage.DeleteRoom(ctx, id)
	}

	return r.storage.SaveRoom(ctx, room)
}

// Start transitions a room to in-progress. There is deliberately no check
// that the room is full, or who asked: clients decide when to start, and
// starting an in-progress room again is a no-op.
func (r *Registry) Start(ctx context.Context, id model.RoomID) (*model.Room, error) {
	r.locks.Lock(string(id))
	defer r.locks.Unlock(string(id))

	room, err := r.storage.GetRoom(ctx, id)
	if err != nil {
		return nil, err
	}

	if room.Status == model.RoomStatusInProgress {
		return room, nil
	}

	room.Status = model.RoomStatusInProgress

	if err := r.storage.SaveRoom(ctx, room); err != nil {
		return nil, err
	}

	r.logger.Info("room started", slog.String("room_id", string(room.ID)))

	return room, nil
}
