package response

import (
	"github.com/snakeduel/snakeduel-go/internal/model"
)

// Field names follow the original public API contract (camelCase), which
// existing game clients depend on.

// User represents a user in API responses
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// UserFromModel converts a model.User to a response User
func UserFromModel(u *model.User) User {
	return User{
		ID:       string(u.ID),
		Username: u.Username,
		Email:    u.Email,
	}
}

// AuthResponse is the response for signup and login
type AuthResponse struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

// Mode describes a game mode
type Mode struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ModeFromModel converts a model.ModeInfo
func ModeFromModel(m model.ModeInfo) Mode {
	return Mode{
		ID:          string(m.ID),
		Name:        m.Name,
		Description: m.Description,
	}
}

// MatchResult represents a recorded match result
type MatchResult struct {
	ID           string `json:"id"`
	Player1      string `json:"player1"`
	Player2      string `json:"player2"`
	Winner       string `json:"winner"`
	Player1Score int    `json:"player1Score"`
	Player2Score int    `json:"player2Score"`
	Mode         string `json:"mode"`
	Duration     int    `json:"duration"`
	Timestamp    int64  `json:"timestamp"`
}

// MatchResultFromModel converts a model.MatchResult
func MatchResultFromModel(r *model.MatchResult) MatchResult {
	return MatchResult{
		ID:           string(r.ID),
		Player1:      r.Player1,
		Player2:      r.Player2,
		Winner:       r.Winner,
		Player1Score: r.Player1Score,
		Player2Score: r.Player2Score,
		Mode:         string(r.Mode),
		Duration:     r.Duration,
		Timestamp:    r.Timestamp,
	}
}

// LeaderboardEntry represents one ranked leaderboard row
type LeaderboardEntry struct {
	Rank         int     `json:"rank"`
	Username     string  `json:"username"`
	Wins         int     `json:"wins"`
	TotalGames   int     `json:"totalGames"`
	HighestScore int     `json:"highestScore"`
	WinRate      float64 `json:"winRate"`
}

// LeaderboardFromModel converts leaderboard entries
func LeaderboardFromModel(entries []model.LeaderboardEntry) []LeaderboardEntry {
	out := make([]LeaderboardEntry, len(entries))
	for i, e := range entries {
		out[i] = LeaderboardEntry{
			Rank:         e.Rank,
			Username:     e.Username,
			Wins:         e.Wins,
			TotalGames:   e.TotalGames,
			HighestScore: e.HighestScore,
			WinRate:      e.WinRate,
		}
	}
	return out
}

// Room represents a room in API responses
type Room struct {
	ID           string   `json:"id"`
	HostUsername string   `json:"hostUsername"`
	Mode         string   `json:"mode"`
	Status       string   `json:"status"`
	Players      []string `json:"players"`
	MaxPlayers   int      `json:"maxPlayers"`
}

// RoomFromModel converts a model.Room
func RoomFromModel(r *model.Room) Room {
	players := make([]string, len(r.Players))
	copy(players, r.Players)
	return Room{
		ID:           string(r.ID),
		HostUsername: r.HostUsername,
		Mode:         string(r.Mode),
		Status:       string(r.Status),
		Players:      players,
		MaxPlayers:   r.MaxPlayers,
	}
}

// LiveGame represents an in-flight game snapshot
type LiveGame struct {
	ID            string `json:"id"`
	Player1       string `json:"player1"`
	Player2       string `json:"player2"`
	Player1Score  int    `json:"player1Score"`
	Player2Score  int    `json:"player2Score"`
	Mode          string `json:"mode"`
	TimeRemaining int    `json:"timeRemaining"`
	Player1Alive  bool   `json:"player1Alive"`
	Player2Alive  bool   `json:"player2Alive"`
}

// LiveGameFromModel converts a model.LiveGame
func LiveGameFromModel(g *model.LiveGame) LiveGame {
	return LiveGame{
		ID:            string(g.ID),
		Player1:       g.Player1,
		Player2:       g.Player2,
		Player1Score:  g.Player1Score,
		Player2Score:  g.Player2Score,
		Mode:          string(g.Mode),
		TimeRemaining: g.TimeRemaining,
		Player1Alive:  g.Player1Alive,
		Player2Alive:  g.Player2Alive,
	}
}
