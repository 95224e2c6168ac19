package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/snakeduel/snakeduel-go/internal/api/middleware"
	"github.com/snakeduel/snakeduel-go/internal/api/request"
	"github.com/snakeduel/snakeduel-go/internal/api/response"
	"github.com/snakeduel/snakeduel-go/internal/model"
	"github.com/snakeduel/snakeduel-go/internal/services/room"
)

// RoomHandler handles room lifecycle endpoints
type RoomHandler struct {
	registry *room.Registry
}

// NewRoomHandler creates a new room handler
func NewRoomHandler(registry *room.Registry) *RoomHandler {
	return &RoomHandler{
		registry: registry,
	}
}

// Create handles POST /api/v1/rooms
func (h *RoomHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	hostUsername := req.HostUsername
	if hostUsername == "" {
		hostUsername = middleware.MustGetUser(r.Context()).Username
	}

	mode := model.GameMode(req.Mode)
	if !mode.Valid() {
		WriteError(w, NewInvalidRequestError("unknown game mode"))
		return
	}

	created, err := h.registry.Create(r.Context(), hostUsername, mode, req.MaxPlayers)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.RoomFromModel(created))
}

// Get handles GET /api/v1/rooms/{roomId}
func (h *RoomHandler) Get(w http.ResponseWriter, r *http.Request) {
	roomID := model.RoomID(mux.Vars(r)["roomId"])

	found, err := h.registry.Get(r.Context(), roomID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.RoomFromModel(found))
}

// Join handles POST /api/v1/rooms/{roomId}/join
func (h *RoomHandler) Join(w http.ResponseWriter, r *http.Request) {
	roomID := model.RoomID(mux.Vars(r)["roomId"])

	username, ok := h.resolveUsername(w, r)
	if !ok {
		return
	}

	joined, err := h.registry.Join(r.Context(), roomID, username)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.RoomFromModel(joined))
}

// Leave handles POST /api/v1/rooms/{roomId}/leave
func (h *RoomHandler) Leave(w http.ResponseWriter, r *http.Request) {
	roomID := model.RoomID(mux.Vars(r)["roomId"])

	username, ok := h.resolveUsername(w, r)
	if !ok {
		return
	}

	if err := h.registry.Leave(r.Context(), roomID, username); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}

// Start handles POST /api/v1/rooms/{roomId}/start
func (h *RoomHandler) Start(w http.ResponseWriter, r *http.Request) {
	roomID := model.RoomID(mux.Vars(r)["roomId"])

	if _, err := h.registry.Start(r.Context(), roomID); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}

// resolveUsername reads the username from the request body, falling back to
// the authenticated user when the body omits it or is empty
func (h *RoomHandler) resolveUsername(w http.ResponseWriter, r *http.Request) (string, bool) {
	var req request.JoinRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return "", false
	}

	if req.Username != "" {
		return req.Username, true
	}
	return middleware.MustGetUser(r.Context()).Username, true
}
