package request

// Field names follow the original public API contract (camelCase), which
// existing game clients depend on.

// SignupRequest is the request body for creating an account
type SignupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the request body for logging in
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SaveResultRequest is the request body for recording a match result.
// Timestamps are always assigned server-side and cannot be supplied.
type SaveResultRequest struct {
	Player1      string `json:"player1"`
	Player2      string `json:"player2"`
	Winner       string `json:"winner"`
	Player1Score int    `json:"player1Score"`
	Player2Score int    `json:"player2Score"`
	Mode         string `json:"mode"`
	Duration     int    `json:"duration"`
}

// CreateRoomRequest is the request body for creating a room
type CreateRoomRequest struct {
	HostUsername string `json:"hostUsername"`
	Mode         string `json:"mode"`
	MaxPlayers   int    `json:"maxPlayers,omitempty"`
}

// JoinRoomRequest is the request body for joining or leaving a room
type JoinRoomRequest struct {
	Username string `json:"username"`
}
