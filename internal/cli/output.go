package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case User:
		o.printUser(v)
	case AuthResult:
		o.printAuthResult(v)
	case Room:
		o.printRoom(v)
	case MatchResult:
		o.printMatchResult(v)
	case []MatchResult:
		for i, r := range v {
			if i > 0 {
				fmt.Println()
			}
			o.printMatchResult(r)
		}
	case []LeaderboardEntry:
		o.printLeaderboard(v)
	case []Mode:
		o.printModes(v)
	case []LiveGame:
		o.printLiveGames(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// User response type (matches API)
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// AuthResult combines user and token
type AuthResult struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

// Room response type
type Room struct {
	ID           string   `json:"id"`
	HostUsername string   `json:"hostUsername"`
	Mode         string   `json:"mode"`
	Status       string   `json:"status"`
	Players      []string `json:"players"`
	MaxPlayers   int      `json:"maxPlayers"`
}

// MatchResult response type
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

// LeaderboardEntry response type
type LeaderboardEntry struct {
	Rank         int     `json:"rank"`
	Username     string  `json:"username"`
	Wins         int     `json:"wins"`
	TotalGames   int     `json:"totalGames"`
	HighestScore int     `json:"highestScore"`
	WinRate      float64 `json:"winRate"`
}

// Mode response type
type Mode struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// LiveGame response type
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

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printUser(u User) {
	fmt.Printf("User: %s (%s)\n", u.Username, u.ID)
	fmt.Printf("Email: %s\n", u.Email)
}

func (o *Output) printAuthResult(a AuthResult) {
	o.printUser(a.User)
	fmt.Printf("Token: %s\n", a.Token)
}

func (o *Output) printRoom(r Room) {
	fmt.Printf("Room: %s\n", r.ID)
	fmt.Printf("Host: %s\n", r.HostUsername)
	fmt.Printf("Mode: %s\n", r.Mode)
	fmt.Printf("Status: %s\n", r.Status)
	fmt.Printf("Players (%d/%d):\n", len(r.Players), r.MaxPlayers)
	for _, p := range r.Players {
		hostStr := ""
		if p == r.HostUsername {
			hostStr = " [host]"
		}
		fmt.Printf("  - %s%s\n", p, hostStr)
	}
}

func (o *Output) printMatchResult(r MatchResult) {
	fmt.Printf("Result: %s\n", r.ID)
	fmt.Printf("Match: %s (%d) vs %s (%d)\n", r.Player1, r.Player1Score, r.Player2, r.Player2Score)
	fmt.Printf("Winner: %s\n", r.Winner)
	fmt.Printf("Mode: %s\n", r.Mode)
	fmt.Printf("Duration: %ds\n", r.Duration)
}

func (o *Output) printLeaderboard(entries []LeaderboardEntry) {
	if len(entries) == 0 {
		fmt.Println("Leaderboard is empty")
		return
	}

	fmt.Printf("%-5s %-20s %6s %6s %6s %8s\n", "Rank", "Player", "Wins", "Games", "Best", "WinRate")
	fmt.Println(strings.Repeat("-", 56))
	for _, e := range entries {
		fmt.Printf("%-5d %-20s %6d %6d %6d %7.1f%%\n",
			e.Rank, e.Username, e.Wins, e.TotalGames, e.HighestScore, e.WinRate)
	}
}

func (o *Output) printModes(modes []Mode) {
	for _, m := range modes {
		fmt.Printf("%s: %s - %s\n", m.ID, m.Name, m.Description)
	}
}

func (o *Output) printLiveGames(games []LiveGame) {
	if len(games) == 0 {
		fmt.Println("No live games")
		return
	}

	for _, g := range games {
		fmt.Printf("Game %s [%s]: %s (%d) vs %s (%d), %ds remaining\n",
			g.ID, g.Mode, g.Player1, g.Player1Score, g.Player2, g.Player2Score, g.TimeRemaining)
	}
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}
