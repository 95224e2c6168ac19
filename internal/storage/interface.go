package storage

import (
	"context"

	"github.com/snakeduel/snakeduel-go/internal/model"
)

// Store defines the interface for data persistence
type Store interface {
	// User operations
	SaveUser(ctx context.Context, user *model.User) error
	GetUser(ctx context.Context, id model.UserID) (*model.User, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)

	// Token operations. SaveToken and DeleteToken must be atomic with
	// respect to GetTokenUser: once DeleteToken returns, the token no
	// longer resolves.
	SaveToken(ctx context.Context, token model.Token, userID model.UserID) error
	GetTokenUser(ctx context.Context, token model.Token) (model.UserID, error)
	DeleteToken(ctx context.Context, token model.Token) error

	// Result operations. The result ledger is append-only; ListResults
	// returns records in insertion order.
	AppendResult(ctx context.Context, result *model.MatchResult) error
	ListResults(ctx context.Context) ([]*model.MatchResult, error)

	// Room operations
	SaveRoom(ctx context.Context, room *model.Room) error
	GetRoom(ctx context.Context, id model.RoomID) (*model.Room, error)
	DeleteRoom(ctx context.Context, id model.RoomID) error

	// Live game operations (read side only; snapshots are written by an
	// external simulation feed)
	SaveLiveGame(ctx context.Context, game *model.LiveGame) error
	ListLiveGames(ctx context.Context) ([]*model.LiveGame, error)
}
