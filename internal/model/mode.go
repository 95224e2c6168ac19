package model

// GameMode selects the arena rules for a match
type GameMode string

const (
	ModePassThrough GameMode = "pass-through" // snakes wrap around the arena edges
	ModeWalls       GameMode = "walls"        // hitting a wall kills the snake
)

// Valid reports whether m is one of the known game modes
func (m GameMode) Valid() bool {
	return m == ModePassThrough || m == ModeWalls
}

// ModeInfo describes a game mode for API consumers
type ModeInfo struct {
	ID          GameMode
	Name        string
	Description string
}

// Modes returns the static list of available game modes
func Modes() []ModeInfo {
	return []ModeInfo{
		{ID: ModePassThrough, Name: "Pass-Through", Description: "Snakes wrap around"},
		{ID: ModeWalls, Name: "Walls", Description: "Hitting walls kills you"},
	}
}
