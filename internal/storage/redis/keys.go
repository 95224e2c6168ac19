package redis

import (
	"fmt"

	"github.com/snakeduel/snakeduel-go/internal/model"
)

// Key prefix for all game-related data
const keyPrefix = "snakeduel"

// Key generation functions for each entity type

// userKey returns the Redis key for a User
func userKey(id model.UserID) string {
	return fmt.Sprintf("%s:user:%s", keyPrefix, id)
}

// emailIndexKey returns the Redis key for the email -> user_id index
func emailIndexKey(email string) string {
	return fmt.Sprintf("%s:idx:email:%s", keyPrefix, email)
}

// usernameIndexKey returns the Redis key for the username -> user_id index
func usernameIndexKey(username string) string {
	return fmt.Sprintf("%s:idx:username:%s", keyPrefix, username)
}

// tokenKey returns the Redis key for a bearer token
func tokenKey(token model.Token) string {
	return fmt.Sprintf("%s:token:%s", keyPrefix, token)
}

// resultsKey returns the Redis key for the append-only result ledger list
func resultsKey() string {
	return fmt.Sprintf("%s:results", keyPrefix)
}

// roomKey returns the Redis key for a Room
func roomKey(id model.RoomID) string {
	return fmt.Sprintf("%s:room:%s", keyPrefix, id)
}

// liveGameKey returns the Redis key for a LiveGame snapshot
func liveGameKey(id model.LiveGameID) string {
	return fmt.Sprintf("%s:live:%s", keyPrefix, id)
}

// liveGamesIndexKey returns the Redis key for the SET of live game ids
func liveGamesIndexKey() string {
	return fmt.Sprintf("%s:idx:live", keyPrefix)
}
