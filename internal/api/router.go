package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/snakeduel/snakeduel-go/internal/api/handler"
	"github.com/snakeduel/snakeduel-go/internal/api/middleware"
	"github.com/snakeduel/snakeduel-go/internal/services/identity"
	"github.com/snakeduel/snakeduel-go/internal/services/leaderboard"
	"github.com/snakeduel/snakeduel-go/internal/services/ledger"
	"github.com/snakeduel/snakeduel-go/internal/services/livegame"
	"github.com/snakeduel/snakeduel-go/internal/services/room"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger             *slog.Logger
	IdentityService    *identity.Service
	LedgerService      *ledger.Service
	LeaderboardService *leaderboard.Service
	LiveGameService    *livegame.Service
	RoomRegistry       *room.Registry
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	authHandler := handler.NewAuthHandler(cfg.IdentityService)
	matchHandler := handler.NewMatchHandler(cfg.LedgerService, cfg.LeaderboardService, cfg.LiveGameService)
	roomHandler := handler.NewRoomHandler(cfg.RoomRegistry)

	// Create middleware
	authMiddleware := middleware.Auth(cfg.IdentityService)
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	// Auth routes (no token required for signup/login)
	api.HandleFunc("/auth/signup", authHandler.Signup).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", authHandler.Login).Methods(http.MethodPost)

	// Protected auth routes
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(authMiddleware)
	authProtected.HandleFunc("/logout", authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", authHandler.Me).Methods(http.MethodGet)

	// Public read-only routes
	api.HandleFunc("/modes", matchHandler.Modes).Methods(http.MethodGet)
	api.HandleFunc("/leaderboard", matchHandler.Leaderboard).Methods(http.MethodGet)
	api.HandleFunc("/live-games", matchHandler.LiveGames).Methods(http.MethodGet)

	// Match result routes (recording requires auth, reading does not)
	api.HandleFunc("/games/results", matchHandler.ListResults).Methods(http.MethodGet)
	results := api.PathPrefix("/games/results").Subrouter()
	results.Use(authMiddleware)
	results.HandleFunc("", matchHandler.SaveResult).Methods(http.MethodPost)

	// Room routes (all require auth)
	rooms := api.PathPrefix("/rooms").Subrouter()
	rooms.Use(authMiddleware)
	rooms.HandleFunc("", roomHandler.Create).Methods(http.MethodPost)
	rooms.HandleFunc("/{roomId}", roomHandler.Get).Methods(http.MethodGet)
	rooms.HandleFunc("/{roomId}/join", roomHandler.Join).Methods(http.MethodPost)
	rooms.HandleFunc("/{roomId}/leave", roomHandler.Leave).Methods(http.MethodPost)
	rooms.HandleFunc("/{roomId}/start", roomHandler.Start).Methods(http.MethodPost)

	// Health check endpoint (no auth)
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
