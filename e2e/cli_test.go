package e2e_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snakeduel/snakeduel-go/internal/api"
	"github.com/snakeduel/snakeduel-go/internal/factory"
)

// cliRunner manages CLI binary execution
type cliRunner struct {
	binaryPath string
	serverURL  string
	tokenFile  string
}

func newCLIRunner(t *testing.T, serverURL string) *cliRunner {
	t.Helper()

	// Find project root (where go.mod is)
	projectRoot := findProjectRoot(t)

	// Build the CLI binary
	binaryPath := filepath.Join(projectRoot, "bin", "snakectl-test")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/snakectl")
	cmd.Dir = projectRoot
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "failed to build CLI: %s", string(output))

	// Create temp token file
	tokenFile := filepath.Join(t.TempDir(), "token")

	return &cliRunner{
		binaryPath: binaryPath,
		serverURL:  serverURL,
		tokenFile:  tokenFile,
	}
}

func (r *cliRunner) run(args ...string) (string, error) {
	fullArgs := append([]string{
		"--server", r.serverURL,
		"--token-file", r.tokenFile,
		"--output", "json",
	}, args...)

	cmd := exec.Command(r.binaryPath, fullArgs...)
	output, err := cmd.CombinedOutput()
	return string(output), err
}

func (r *cliRunner) runWithToken(token string, args ...string) (string, error) {
	fullArgs := append([]string{
		"--server", r.serverURL,
		"--token", token,
		"--output", "json",
	}, args...)

	cmd := exec.Command(r.binaryPath, fullArgs...)
	output, err := cmd.CombinedOutput()
	return string(output), err
}

func findProjectRoot(t *testing.T) string {
	t.Helper()

	dir, err := os.Getwd()
	require.NoError(t, err)

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			t.Fatal("could not find project root (go.mod)")
		}
		dir = parent
	}
}

// testServer manages a real HTTP server for e2e tests
type testServer struct {
	server   *http.Server
	addr     string
	shutdown func()
}

func startTestServer(t *testing.T) *testServer {
	t.Helper()

	// Find a free port
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := listener.Addr().String()
	require.NoError(t, listener.Close())

	// Create application
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	app, err := factory.New(factory.Config{Logger: logger})
	require.NoError(t, err)

	router := api.NewRouter(api.RouterConfig{
		Logger:             logger,
		IdentityService:    app.IdentityService,
		LedgerService:      app.LedgerService,
		LeaderboardService: app.LeaderboardService,
		LiveGameService:    app.LiveGameService,
		RoomRegistry:       app.RoomRegistry,
	})

	server := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server
	go func() {
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			t.Logf("server error: %v", err)
		}
	}()

	// Wait for server to be ready
	serverURL := "http://" + addr
	waitForServer(t, serverURL+"/api/v1/health")

	return &testServer{
		server: server,
		addr:   serverURL,
		shutdown: func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = server.Shutdown(ctx)
		},
	}
}

func waitForServer(t *testing.T, url string) {
	t.Helper()

	client := &http.Client{Timeout: 100 * time.Millisecond}
	deadline := time.Now().Add(5 * time.Second)

	for time.Now().Before(deadline) {
		resp, err := client.Get(url)
		if err == nil {
			_ = resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return
			}
		}
		time.Sleep(50 * time.Millisecond)
	}

	t.Fatal("server did not become ready in time")
}

// Response types for JSON parsing
type authResponse struct {
	User struct {
		ID       string `json:"id"`
		Username string `json:"username"`
		Email    string `json:"email"`
	} `json:"user"`
	Token string `json:"token"`
}

type roomResponse struct {
	ID           string   `json:"id"`
	HostUsername string   `json:"hostUsername"`
	Mode         string   `json:"mode"`
	Status       string   `json:"status"`
	Players      []string `json:"players"`
	MaxPlayers   int      `json:"maxPlayers"`
}

type resultResponse struct {
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

type leaderboardEntry struct {
	Rank         int     `json:"rank"`
	Username     string  `json:"username"`
	Wins         int     `json:"wins"`
	TotalGames   int     `json:"totalGames"`
	HighestScore int     `json:"highestScore"`
	WinRate      float64 `json:"winRate"`
}

type healthResponse struct {
	Status string `json:"status"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// Tests

func TestCLI_HealthCheck(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	output, err := cli.run("health")
	require.NoError(t, err, "output: %s", output)

	var resp healthResponse
	require.NoError(t, json.Unmarshal([]byte(output), &resp))
	assert.Equal(t, "ok", resp.Status)
}

func TestCLI_AuthCommands(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	// Signup
	output, err := cli.run("auth", "signup", "--user", "alice", "--email", "alice@example.com", "--pass", "secret123")
	require.NoError(t, err, "output: %s", output)

	var authResp authResponse
	require.NoError(t, json.Unmarshal([]byte(output), &authResp))
	assert.Equal(t, "alice", authResp.User.Username)
	assert.Equal(t, "alice@example.com", authResp.User.Email)
	assert.NotEmpty(t, authResp.Token)

	// Get me (token should be saved in token file)
	output, err = cli.run("auth", "me")
	require.NoError(t, err, "output: %s", output)

	var user struct {
		ID       string `json:"id"`
		Username string `json:"username"`
	}
	require.NoError(t, json.Unmarshal([]byte(output), &user))
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, authResp.User.ID, user.ID)

	// Login with a different password still works for the demo verifier
	output, err = cli.run("auth", "login", "--email", "alice@example.com", "--pass", "anything")
	require.NoError(t, err, "output: %s", output)

	var loginResp authResponse
	require.NoError(t, json.Unmarshal([]byte(output), &loginResp))
	assert.Equal(t, authResp.User.ID, loginResp.User.ID)

	// Logout invalidates the saved token
	output, err = cli.run("auth", "logout")
	require.NoError(t, err, "output: %s", output)

	var msgResp messageResponse
	require.NoError(t, json.Unmarshal([]byte(output), &msgResp))
	assert.Contains(t, msgResp.Message, "Logged out")

	_, err = cli.run("auth", "me")
	require.Error(t, err)
}

func TestCLI_RoomCommands(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	// Signup
	output, err := cli.run("auth", "signup", "--user", "alice", "--email", "alice@example.com", "--pass", "pw")
	require.NoError(t, err, "output: %s", output)

	var authResp authResponse
	require.NoError(t, json.Unmarshal([]byte(output), &authResp))
	token := authResp.Token

	// Create room
	output, err = cli.runWithToken(token, "room", "create", "--host", "alice", "--mode", "walls")
	require.NoError(t, err, "output: %s", output)

	var roomResp roomResponse
	require.NoError(t, json.Unmarshal([]byte(output), &roomResp))
	assert.Equal(t, "waiting", roomResp.Status)
	assert.Equal(t, "alice", roomResp.HostUsername)
	assert.Equal(t, 2, roomResp.MaxPlayers)
	roomID := roomResp.ID

	// Get room
	output, err = cli.runWithToken(token, "room", "get", roomID)
	require.NoError(t, err, "output: %s", output)

	var getRoomResp roomResponse
	require.NoError(t, json.Unmarshal([]byte(output), &getRoomResp))
	assert.Equal(t, roomID, getRoomResp.ID)

	// Start match
	output, err = cli.runWithToken(token, "room", "start", roomID)
	require.NoError(t, err, "output: %s", output)

	output, err = cli.runWithToken(token, "room", "get", roomID)
	require.NoError(t, err, "output: %s", output)
	require.NoError(t, json.Unmarshal([]byte(output), &getRoomResp))
	assert.Equal(t, "in-progress", getRoomResp.Status)

	// Leave room (host leaving destroys it)
	output, err = cli.runWithToken(token, "room", "leave", roomID, "--user", "alice")
	require.NoError(t, err, "output: %s", output)

	var msgResp messageResponse
	require.NoError(t, json.Unmarshal([]byte(output), &msgResp))
	assert.Contains(t, msgResp.Message, "Left room")

	_, err = cli.runWithToken(token, "room", "get", roomID)
	require.Error(t, err)
}

func TestCLI_FullMatchFlow(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	// Create two CLI runners with separate token files
	cli1 := newCLIRunner(t, ts.addr)
	cli2 := &cliRunner{
		binaryPath: cli1.binaryPath,
		serverURL:  cli1.serverURL,
		tokenFile:  filepath.Join(t.TempDir(), "token2"),
	}

	// Create two players
	output, err := cli1.run("auth", "signup", "--user", "alice", "--email", "alice@example.com", "--pass", "pw")
	require.NoError(t, err, "output: %s", output)
	var auth1 authResponse
	require.NoError(t, json.Unmarshal([]byte(output), &auth1))
	token1 := auth1.Token

	output, err = cli2.run("auth", "signup", "--user", "bob", "--email", "bob@example.com", "--pass", "pw")
	require.NoError(t, err, "output: %s", output)
	var auth2 authResponse
	require.NoError(t, json.Unmarshal([]byte(output), &auth2))
	token2 := auth2.Token

	// Alice hosts a room
	output, err = cli1.runWithToken(token1, "room", "create", "--host", "alice", "--mode", "pass-through")
	require.NoError(t, err, "output: %s", output)
	var room roomResponse
	require.NoError(t, json.Unmarshal([]byte(output), &room))
	roomID := room.ID
	t.Logf("Created room: %s", roomID)

	// Bob joins the room
	output, err = cli2.runWithToken(token2, "room", "join", roomID, "--user", "bob")
	require.NoError(t, err, "output: %s", output)
	require.NoError(t, json.Unmarshal([]byte(output), &room))
	assert.Equal(t, []string{"alice", "bob"}, room.Players)

	// Alice starts the match
	output, err = cli1.runWithToken(token1, "room", "start", roomID)
	require.NoError(t, err, "output: %s", output)

	// Alice records the result
	output, err = cli1.runWithToken(token1, "result", "save",
		"--player1", "alice", "--player2", "bob", "--winner", "alice",
		"--score1", "14", "--score2", "9", "--mode", "pass-through", "--duration", "120")
	require.NoError(t, err, "output: %s", output)

	var result resultResponse
	require.NoError(t, json.Unmarshal([]byte(output), &result))
	assert.NotEmpty(t, result.ID)
	assert.Equal(t, "alice", result.Winner)
	assert.NotZero(t, result.Timestamp)

	// The leaderboard reflects the match
	output, err = cli1.run("leaderboard")
	require.NoError(t, err, "output: %s", output)

	var entries []leaderboardEntry
	require.NoError(t, json.Unmarshal([]byte(output), &entries))
	require.Len(t, entries, 2)
	assert.Equal(t, "alice", entries[0].Username)
	assert.Equal(t, 1, entries[0].Rank)
	assert.Equal(t, 1, entries[0].Wins)
	assert.Equal(t, 14, entries[0].HighestScore)
	assert.Equal(t, "bob", entries[1].Username)
}

func TestCLI_ModesAndLiveGames(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	output, err := cli.run("modes")
	require.NoError(t, err, "output: %s", output)

	var modes []struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}
	require.NoError(t, json.Unmarshal([]byte(output), &modes))
	require.Len(t, modes, 2)
	assert.Equal(t, "pass-through", modes[0].ID)
	assert.Equal(t, "walls", modes[1].ID)

	output, err = cli.run("live")
	require.NoError(t, err, "output: %s", output)

	var games []any
	require.NoError(t, json.Unmarshal([]byte(output), &games))
	assert.Empty(t, games)
}

func TestCLI_ErrorOutput(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	// Unauthenticated request fails with a non-zero exit
	_, err := cli.run("auth", "me")
	require.Error(t, err)

	// Unknown room
	output, err := cli.run("auth", "signup", "--user", "alice", "--email", "alice@example.com", "--pass", "pw")
	require.NoError(t, err, "output: %s", output)

	out, err := cli.run("room", "get", "room_missing")
	require.Error(t, err)
	assert.Contains(t, out, "ROOM_NOT_FOUND")
}
