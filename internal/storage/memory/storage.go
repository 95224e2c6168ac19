package memory

import (
	"context"
	"sync"

	"github.com/snakeduel/snakeduel-go/internal/model"
	"github.com/snakeduel/snakeduel-go/internal/storage"
)

// Store is an in-memory implementation of the storage interface
type Store struct {
	mu sync.RWMutex

	users         map[model.UserID]*model.User
	emailIndex    map[string]model.UserID
	usernameIndex map[string]model.UserID
	tokens        map[model.Token]model.UserID
	results       []*model.MatchResult
	rooms         map[model.RoomID]*model.Room
	liveGames     []*model.LiveGame
}

// New creates a new in-memory store instance
func New() *Store {
	return &Store{
		users:         make(map[model.UserID]*model.User),
		emailIndex:    make(map[string]model.UserID),
		usernameIndex: make(map[string]model.UserID),
		tokens:        make(map[model.Token]model.UserID),
		rooms:         make(map[model.RoomID]*model.Room),
	}
}

// Ensure Store implements the interface
var _ storage.Store = (*Store)(nil)

// User operations

func (s *Store) SaveUser(ctx context.Context, user *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[user.ID] = user
	s.emailIndex[user.Email] = user.ID
	s.usernameIndex[user.Username] = user.ID
	return nil
}

func (s *Store) GetUser(ctx context.Context, id model.UserID) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.users[id]
	if !ok {
		return nil, model.ErrUserNotFound
	}
	return user, nil
}

func (s *Store) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.emailIndex[email]
	if !ok {
		return nil, model.ErrUserNotFound
	}
	user, ok := s.users[id]
	if !ok {
		return nil, model.ErrUserNotFound
	}
	return user, nil
}

func (s *Store) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.usernameIndex[username]
	if !ok {
		return nil, model.ErrUserNotFound
	}
	user, ok := s.users[id]
	if !ok {
		return nil, model.ErrUserNotFound
	}
	return user, nil
}

// Token operations

func (s *Store) SaveToken(ctx context.Context, token model.Token, userID model.UserID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens[token] = userID
	return nil
}

func (s *Store) GetTokenUser(ctx context.Context, token model.Token) (model.UserID, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	userID, ok := s.tokens[token]
	if !ok {
		return "", model.ErrTokenNotFound
	}
	return userID, nil
}

func (s *Store) DeleteToken(ctx context.Context, token model.Token) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tokens, token)
	return nil
}

// Result operations

func (s *Store) AppendResult(ctx context.Context, result *model.MatchResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.results = append(s.results, result)
	return nil
}

func (s *Store) ListResults(ctx context.Context) ([]*model.MatchResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	results := make([]*model.MatchResult, len(s.results))
	copy(results, s.results)
	return results, nil
}

// Room operations

// copyRoom clones a room including its players slice. Rooms are copied on
// both save and get so callers never share mutable state with the map;
// the other backends get the same isolation from (de)serialization.
func copyRoom(room *model.Room) *model.Room {
	c := *room
	c.Players = make([]string, len(room.Players))
	copy(c.Players, room.Players)
	return &c
}

func (s *Store) SaveRoom(ctx context.Context, room *model.Room) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rooms[room.ID] = copyRoom(room)
	return nil
}

func (s *Store) GetRoom(ctx context.Context, id model.RoomID) (*model.Room, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	room, ok := s.rooms[id]
	if !ok {
		return nil, model.ErrRoomNotFound
	}
	return copyRoom(room), nil
}

func (s *Store) DeleteRoom(ctx context.Context, id model.RoomID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.rooms, id)
	return nil
}

// Live game operations

func (s *Store) SaveLiveGame(ctx context.Context, game *model.LiveGame) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, g := range s.liveGames {
		if g.ID == game.ID {
			s.liveGames[i] = game
			return nil
		}
	}
	s.liveGames = append(s.liveGames, game)
	return nil
}

func (s *Store) ListLiveGames(ctx context.Context) ([]*model.LiveGame, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	games := make([]*model.LiveGame, len(s.liveGames))
	copy(games, s.liveGames)
	return games, nil
}
