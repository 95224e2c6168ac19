package factory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/snakeduel/snakeduel-go/internal/model"
)

type IntegrationSuite struct {
	suite.Suite
	app *TestApp
	ctx context.Context
}

func TestIntegrationSuite(t *testing.T) {
	suite.Run(t, new(IntegrationSuite))
}

func (s *IntegrationSuite) SetupTest() {
	s.app = NewTestApp()
	s.ctx = context.Background()
}

func (s *IntegrationSuite) signup(username, email string) *model.User {
	user, err := s.app.IdentityService.Signup(s.ctx, username, email, "hunter2")
	s.Require().NoError(err)
	return user
}

// Test: Complete flow from signup through a match to the leaderboard
func (s *IntegrationSuite) TestCompleteMatchFlow() {
	// Step 1: Two players sign up
	alice := s.signup("alice", "alice@example.com")
	bob := s.signup("bob", "bob@example.com")

	// Step 2: Alice logs in and gets a token
	loggedIn, err := s.app.IdentityService.Authenticate(s.ctx, "alice@example.com", "anything")
	s.Require().NoError(err)
	s.Equal(alice.ID, loggedIn.ID)

	token, err := s.app.IdentityService.IssueToken(s.ctx, alice.ID)
	s.Require().NoError(err)

	resolved, err := s.app.IdentityService.Resolve(s.ctx, token)
	s.Require().NoError(err)
	s.Equal(alice.ID, resolved.ID)

	// Step 3: Alice hosts a room and Bob joins
	created, err := s.app.RoomRegistry.Create(s.ctx, alice.Username, model.ModeWalls, 0)
	s.Require().NoError(err)
	s.Equal(model.RoomStatusWaiting, created.Status)
	s.Equal(model.DefaultMaxPlayers, created.MaxPlayers)

	joined, err := s.app.RoomRegistry.Join(s.ctx, created.ID, bob.Username)
	s.Require().NoError(err)
	s.Len(joined.Players, 2)

	// Step 4: The match starts
	started, err := s.app.RoomRegistry.Start(s.ctx, created.ID)
	s.Require().NoError(err)
	s.Equal(model.RoomStatusInProgress, started.Status)

	// Step 5: The result is recorded
	result, err := s.app.LedgerService.Record(s.ctx, model.MatchResultInput{
		Player1:      alice.Username,
		Player2:      bob.Username,
		Winner:       alice.Username,
		Player1Score: 12,
		Player2Score: 7,
		Mode:         model.ModeWalls,
		Duration:     95,
	})
	s.Require().NoError(err)
	s.Equal(s.app.MockClock.Now().Unix(), result.Timestamp)

	// Step 6: The leaderboard reflects the match
	entries, err := s.app.LeaderboardService.Compute(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(entries, 2)
	s.Equal("alice", entries[0].Username)
	s.Equal(1, entries[0].Rank)
	s.Equal(1, entries[0].Wins)
	s.Equal(12, entries[0].HighestScore)
	s.Equal("bob", entries[1].Username)
	s.Equal(2, entries[1].Rank)
	s.Equal(0, entries[1].Wins)

	// Step 7: Alice logs out and the token stops working
	s.Require().NoError(s.app.IdentityService.Revoke(s.ctx, token))
	_, err = s.app.IdentityService.Resolve(s.ctx, token)
	s.Error(err)
}

// Test: Host leaving destroys the room for everyone
func (s *IntegrationSuite) TestHostLeavingDestroysRoom() {
	alice := s.signup("alice", "alice@example.com")
	bob := s.signup("bob", "bob@example.com")

	created, err := s.app.RoomRegistry.Create(s.ctx, alice.Username, model.ModePassThrough, 0)
	s.Require().NoError(err)

	_, err = s.app.RoomRegistry.Join(s.ctx, created.ID, bob.Username)
	s.Require().NoError(err)

	s.Require().NoError(s.app.RoomRegistry.Leave(s.ctx, created.ID, alice.Username))

	_, err = s.app.RoomRegistry.Get(s.ctx, created.ID)
	s.ErrorIs(err, model.ErrRoomNotFound)
}

// Test: Leaderboard aggregates across multiple matches and modes
func (s *IntegrationSuite) TestLeaderboardAcrossMatches() {
	record := func(winner, loser string, winScore, loseScore int, mode model.GameMode) {
		_, err := s.app.LedgerService.Record(s.ctx, model.MatchResultInput{
			Player1:      winner,
			Player2:      loser,
			Winner:       winner,
			Player1Score: winScore,
			Player2Score: loseScore,
			Mode:         mode,
			Duration:     60,
		})
		s.Require().NoError(err)
	}

	record("alice", "bob", 10, 4, model.ModeWalls)
	record("bob", "alice", 9, 8, model.ModePassThrough)
	record("alice", "carol", 15, 2, model.ModeWalls)

	entries, err := s.app.LeaderboardService.Compute(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(entries, 3)

	s.Equal("alice", entries[0].Username)
	s.Equal(2, entries[0].Wins)
	s.Equal(3, entries[0].TotalGames)
	s.Equal(15, entries[0].HighestScore)

	s.Equal("bob", entries[1].Username)
	s.Equal(1, entries[1].Wins)
	s.Equal(2, entries[1].TotalGames)

	s.Equal("carol", entries[2].Username)
	s.Equal(0, entries[2].Wins)
	s.InDelta(0.0, entries[2].WinRate, 1e-9)
}

// Test: Full room does not accept a token-holding latecomer
func (s *IntegrationSuite) TestFullRoomRejectsJoin() {
	alice := s.signup("alice", "alice@example.com")
	bob := s.signup("bob", "bob@example.com")
	carol := s.signup("carol", "carol@example.com")

	created, err := s.app.RoomRegistry.Create(s.ctx, alice.Username, model.ModeWalls, 2)
	s.Require().NoError(err)

	_, err = s.app.RoomRegistry.Join(s.ctx, created.ID, bob.Username)
	s.Require().NoError(err)

	_, err = s.app.RoomRegistry.Join(s.ctx, created.ID, carol.Username)
	s.ErrorIs(err, model.ErrRoomFull)
}

// Test: Signing up with a taken email fails regardless of storage state
func (s *IntegrationSuite) TestDuplicateSignupRejected() {
	s.signup("alice", "alice@example.com")

	_, err := s.app.IdentityService.Signup(s.ctx, "alice2", "alice@example.com", "pw")
	s.ErrorIs(err, model.ErrEmailExists)

	_, err = s.app.IdentityService.Signup(s.ctx, "alice", "other@example.com", "pw")
	s.ErrorIs(err, model.ErrUsernameExists)
}
