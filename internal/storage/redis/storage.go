package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/snakeduel/snakeduel-go/internal/model"
	"github.com/snakeduel/snakeduel-go/internal/storage"
)

// Store is a Redis-backed implementation of the storage interface
type Store struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis store instance
func New(cfg Config) (*Store, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Store{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis store with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Store {
	return &Store{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Store) Close() error {
	return s.client.Close()
}

// Ensure Store implements the interface
var _ storage.Store = (*Store)(nil)

// User operations

func (s *Store) SaveUser(ctx context.Context, user *model.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return err
	}

	// Pipeline the record and both lookup indexes so a reader never sees
	// an index pointing at a missing user
	pipe := s.client.Pipeline()
	pipe.Set(ctx, userKey(user.ID), data, 0)
	pipe.Set(ctx, emailIndexKey(user.Email), string(user.ID), 0)
	pipe.Set(ctx, usernameIndexKey(user.Username), string(user.ID), 0)
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Store) GetUser(ctx context.Context, id model.UserID) (*model.User, error) {
	data, err := s.client.Get(ctx, userKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrUserNotFound
		}
		return nil, err
	}

	var user model.User
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *Store) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	userID, err := s.client.Get(ctx, emailIndexKey(email)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrUserNotFound
		}
		return nil, err
	}
	return s.GetUser(ctx, model.UserID(userID))
}

func (s *Store) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	userID, err := s.client.Get(ctx, usernameIndexKey(username)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrUserNotFound
		}
		return nil, err
	}
	return s.GetUser(ctx, model.UserID(userID))
}

// Token operations

func (s *Store) SaveToken(ctx context.Context, token model.Token, userID model.UserID) error {
	return s.client.Set(ctx, tokenKey(token), string(userID), 0).Err()
}

func (s *Store) GetTokenUser(ctx context.Context, token model.Token) (model.UserID, error) {
	userID, err := s.client.Get(ctx, tokenKey(token)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", model.ErrTokenNotFound
		}
		return "", err
	}
	return model.UserID(userID), nil
}

func (s *Store) DeleteToken(ctx context.Context, token model.Token) error {
	return s.client.Del(ctx, tokenKey(token)).Err()
}

// Result operations

func (s *Store) AppendResult(ctx context.Context, result *model.MatchResult) error {
	data, err := json.Marshal(result)
	if err != nil {
		return err
	}
	// RPUSH keeps the ledger in insertion order
	return s.client.RPush(ctx, resultsKey(), data).Err()
}

func (s *Store) ListResults(ctx context.Context) ([]*model.MatchResult, error) {
	items, err := s.client.LRange(ctx, resultsKey(), 0, -1).Result()
	if err != nil {
		return nil, err
	}

	results := make([]*model.MatchResult, 0, len(items))
	for _, item := range items {
		var result model.MatchResult
		if err := json.Unmarshal([]byte(item), &result); err != nil {
			return nil, err
		}
		results = append(results, &result)
	}
	return results, nil
}

// Room operations

func (s *Store) SaveRoom(ctx context.Context, room *model.Room) error {
	data, err := json.Marshal(room)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, roomKey(room.ID), data, s.cfg.RoomTTL).Err()
}

func (s *Store) GetRoom(ctx context.Context, id model.RoomID) (*model.Room, error) {
	data, err := s.client.Get(ctx, roomKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrRoomNotFound
		}
		return nil, err
	}

	var room model.Room
	if err := json.Unmarshal(data, &room); err != nil {
		return nil, err
	}
	return &room, nil
}

func (s *Store) DeleteRoom(ctx context.Context, id model.RoomID) error {
	return s.client.Del(ctx, roomKey(id)).Err()
}

// Live game operations

func (s *Store) SaveLiveGame(ctx context.Context, game *model.LiveGame) error {
	data, err := json.Marshal(game)
	if err != nil {
		return err
	}

	pipe := s.client.Pipeline()
	pipe.Set(ctx, liveGameKey(game.ID), data, 0)
	pipe.SAdd(ctx, liveGamesIndexKey(), string(game.ID))
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Store) ListLiveGames(ctx context.Context) ([]*model.LiveGame, error) {
	ids, err := s.client.SMembers(ctx, liveGamesIndexKey()).Result()
	if err != nil {
		return nil, err
	}

	games := make([]*model.LiveGame, 0, len(ids))
	for _, id := range ids {
		data, err := s.client.Get(ctx, liveGameKey(model.LiveGameID(id))).Bytes()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				continue
			}
			return nil, err
		}
		var game model.LiveGame
		if err := json.Unmarshal(data, &game); err != nil {
			return nil, err
		}
		games = append(games, &game)
	}
	return games, nil
}
