package model

// RoomID uniquely identifies a pre-game room
type RoomID string

// RoomStatus represents the current state of a room.
// A room that has been destroyed is simply absent from storage; there is no
// explicit terminal status.
type RoomStatus string

const (
	RoomStatusWaiting    RoomStatus = "waiting"
	RoomStatusInProgress RoomStatus = "in-progress"
)

// DefaultMaxPlayers is the room capacity when the caller does not specify one
const DefaultMaxPlayers = 2

// Room represents a pre-match lobby session tracking prospective participants.
// Players preserves insertion order and never contains duplicates.
type Room struct {
	ID           RoomID
	HostUsername string
	Mode         GameMode
	Status       RoomStatus
	Players      []string
	MaxPlayers   int
}

// HasPlayer reports whether username is a member of the room
func (r *Room) HasPlayer(username string) bool {
	for _, p := range r.Players {
		if p == username {
			return true
		}
	}
	return false
}

// Full reports whether the room is at capacity
func (r *Room) Full() bool {
	return len(r.Players) >= r.MaxPlayers
}
