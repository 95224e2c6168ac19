package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/snakeduel/snakeduel-go/internal/model"
)

type StoreSuite struct {
	suite.Suite
	store *Store
	ctx   context.Context
}

func TestStoreSuite(t *testing.T) {
	suite.Run(t, new(StoreSuite))
}

func (s *StoreSuite) SetupTest() {
	s.store = New()
	s.ctx = context.Background()
}

// User tests

func (s *StoreSuite) TestSaveAndGetUser() {
	user := &model.User{
		ID:       "user-1",
		Username: "alice",
		Email:    "alice@example.com",
	}

	err := s.store.SaveUser(s.ctx, user)
	s.Require().NoError(err)

	retrieved, err := s.store.GetUser(s.ctx, "user-1")
	s.Require().NoError(err)
	s.Equal(user.Username, retrieved.Username)
	s.Equal(user.Email, retrieved.Email)
}

func (s *StoreSuite) TestGetUserNotFound() {
	_, err := s.store.GetUser(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrUserNotFound)
}

func (s *StoreSuite) TestGetUserByEmail() {
	user := &model.User{ID: "user-1", Username: "alice", Email: "alice@example.com"}
	_ = s.store.SaveUser(s.ctx, user)

	retrieved, err := s.store.GetUserByEmail(s.ctx, "alice@example.com")
	s.Require().NoError(err)
	s.Equal(model.UserID("user-1"), retrieved.ID)

	_, err = s.store.GetUserByEmail(s.ctx, "bob@example.com")
	s.ErrorIs(err, model.ErrUserNotFound)
}

func (s *StoreSuite) TestGetUserByUsername() {
	user := &model.User{ID: "user-1", Username: "alice", Email: "alice@example.com"}
	_ = s.store.SaveUser(s.ctx, user)

	retrieved, err := s.store.GetUserByUsername(s.ctx, "alice")
	s.Require().NoError(err)
	s.Equal(model.UserID("user-1"), retrieved.ID)
}

// Token tests

func (s *StoreSuite) TestSaveAndGetToken() {
	err := s.store.SaveToken(s.ctx, "tok-1", "user-1")
	s.Require().NoError(err)

	userID, err := s.store.GetTokenUser(s.ctx, "tok-1")
	s.Require().NoError(err)
	s.Equal(model.UserID("user-1"), userID)
}

func (s *StoreSuite) TestDeleteToken() {
	_ = s.store.SaveToken(s.ctx, "tok-1", "user-1")

	err := s.store.DeleteToken(s.ctx, "tok-1")
	s.Require().NoError(err)

	_, err = s.store.GetTokenUser(s.ctx, "tok-1")
	s.ErrorIs(err, model.ErrTokenNotFound)
}

func (s *StoreSuite) TestDeleteTokenUnknownIsNoOp() {
	err := s.store.DeleteToken(s.ctx, "never-issued")
	s.NoError(err)
}

// Result tests

func (s *StoreSuite) TestAppendAndListResultsPreservesOrder() {
	first := &model.MatchResult{ID: "r-1", Player1: "alice", Player2: "bob"}
	second := &model.MatchResult{ID: "r-2", Player1: "bob", Player2: "carol"}

	s.Require().NoError(s.store.AppendResult(s.ctx, first))
	s.Require().NoError(s.store.AppendResult(s.ctx, second))

	results, err := s.store.ListResults(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(results, 2)
	s.Equal(model.ResultID("r-1"), results[0].ID)
	s.Equal(model.ResultID("r-2"), results[1].ID)
}

func (s *StoreSuite) TestListResultsEmpty() {
	results, err := s.store.ListResults(s.ctx)
	s.Require().NoError(err)
	s.Empty(results)
}

// Room tests

func (s *StoreSuite) TestSaveAndGetRoom() {
	room := &model.Room{
		ID:           "room-1",
		HostUsername: "alice",
		Mode:         model.ModeWalls,
		Status:       model.RoomStatusWaiting,
		Players:      []string{"alice"},
		MaxPlayers:   2,
	}

	err := s.store.SaveRoom(s.ctx, room)
	s.Require().NoError(err)

	retrieved, err := s.store.GetRoom(s.ctx, "room-1")
	s.Require().NoError(err)
	s.Equal(room.HostUsername, retrieved.HostUsername)
	s.Equal([]string{"alice"}, retrieved.Players)
}

func (s *StoreSuite) TestRoomsAreCopiedOnSaveAndGet() {
	room := &model.Room{
		ID:           "room-1",
		HostUsername: "alice",
		Mode:         model.ModeWalls,
		Status:       model.RoomStatusWaiting,
		Players:      []string{"alice"},
		MaxPlayers:   2,
	}

	s.Require().NoError(s.store.SaveRoom(s.ctx, room))

	// Mutating the caller's room after save must not leak into the store
	room.Players = append(room.Players, "bob")
	room.Status = model.RoomStatusInProgress

	stored, err := s.store.GetRoom(s.ctx, "room-1")
	s.Require().NoError(err)
	s.Equal([]string{"alice"}, stored.Players)
	s.Equal(model.RoomStatusWaiting, stored.Status)

	// Mutating a retrieved room must not leak into the store either
	stored.Players = append(stored.Players, "carol")

	again, err := s.store.GetRoom(s.ctx, "room-1")
	s.Require().NoError(err)
	s.Equal([]string{"alice"}, again.Players)
}

func (s *StoreSuite) TestGetRoomNotFound() {
	_, err := s.store.GetRoom(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrRoomNotFound)
}

func (s *StoreSuite) TestDeleteRoom() {
	room := &model.Room{ID: "room-1", HostUsername: "alice", Players: []string{"alice"}}
	_ = s.store.SaveRoom(s.ctx, room)

	err := s.store.DeleteRoom(s.ctx, "room-1")
	s.Require().NoError(err)

	_, err = s.store.GetRoom(s.ctx, "room-1")
	s.ErrorIs(err, model.ErrRoomNotFound)
}

// Live game tests

func (s *StoreSuite) TestSaveAndListLiveGames() {
	game := &model.LiveGame{ID: "live-1", Player1: "alice", Player2: "bob", Mode: model.ModeWalls}

	err := s.store.SaveLiveGame(s.ctx, game)
	s.Require().NoError(err)

	games, err := s.store.ListLiveGames(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(games, 1)
	s.Equal(model.LiveGameID("live-1"), games[0].ID)
}

func (s *StoreSuite) TestSaveLiveGameReplacesExisting() {
	_ = s.store.SaveLiveGame(s.ctx, &model.LiveGame{ID: "live-1", Player1Score: 1})
	_ = s.store.SaveLiveGame(s.ctx, &model.LiveGame{ID: "live-1", Player1Score: 5})

	games, err := s.store.ListLiveGames(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(games, 1)
	s.Equal(5, games[0].Player1Score)
}
