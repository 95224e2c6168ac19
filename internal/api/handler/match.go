package handler

import (
	"encoding/json"
	"net/http"

	"github.com/snakeduel/snakeduel-go/internal/api/request"
	"github.com/snakeduel/snakeduel-go/internal/api/response"
	"github.com/snakeduel/snakeduel-go/internal/model"
	"github.com/snakeduel/snakeduel-go/internal/services/leaderboard"
	"github.com/snakeduel/snakeduel-go/internal/services/ledger"
	"github.com/snakeduel/snakeduel-go/internal/services/livegame"
)

// MatchHandler handles match results, the leaderboard, game modes and
// live game listings
type MatchHandler struct {
	ledgerService      *ledger.Service
	leaderboardService *leaderboard.Service
	liveGameService    *livegame.Service
}

// NewMatchHandler creates a new match handler
func NewMatchHandler(
	ledgerService *ledger.Service,
	leaderboardService *leaderboard.Service,
	liveGameService *livegame.Service,
) *MatchHandler {
	return &MatchHandler{
		ledgerService:      ledgerService,
		leaderboardService: leaderboardService,
		liveGameService:    liveGameService,
	}
}

// SaveResult handles POST /api/v1/games/results
func (h *MatchHandler) SaveResult(w http.ResponseWriter, r *http.Request) {
	var req request.SaveResultRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	result, err := h.ledgerService.Record(r.Context(), model.MatchResultInput{
		Player1:      req.Player1,
		Player2:      req.Player2,
		Winner:       req.Winner,
		Player1Score: req.Player1Score,
		Player2Score: req.Player2Score,
		Mode:         model.GameMode(req.Mode),
		Duration:     req.Duration,
	})
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.MatchResultFromModel(result))
}

// ListResults handles GET /api/v1/games/results
func (h *MatchHandler) ListResults(w http.ResponseWriter, r *http.Request) {
	results, err := h.ledgerService.ListAll(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	out := make([]response.MatchResult, len(results))
	for i, res := range results {
		out[i] = response.MatchResultFromModel(res)
	}
	response.JSON(w, http.StatusOK, out)
}

// Leaderboard handles GET /api/v1/leaderboard
func (h *MatchHandler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	entries, err := h.leaderboardService.Compute(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.LeaderboardFromModel(entries))
}

// Modes handles GET /api/v1/modes
func (h *MatchHandler) Modes(w http.ResponseWriter, _ *http.Request) {
	modes := model.Modes()
	out := make([]response.Mode, len(modes))
	for i, m := range modes {
		out[i] = response.ModeFromModel(m)
	}
	response.JSON(w, http.StatusOK, out)
}

// LiveGames handles GET /api/v1/live-games
func (h *MatchHandler) LiveGames(w http.ResponseWriter, r *http.Request) {
	games, err := h.liveGameService.List(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	out := make([]response.LiveGame, len(games))
	for i, g := range games {
		out[i] = response.LiveGameFromModel(g)
	}
	response.JSON(w, http.StatusOK, out)
}
