package model

// UserID uniquely identifies a user across the system
type UserID string

// User represents a registered player account.
// Immutable after signup; accounts are never deleted.
type User struct {
	ID       UserID
	Username string
	Email    string
	// PasswordHash is recorded at signup so a real credential verifier can
	// be enabled without a data migration. The default verifier ignores it.
	PasswordHash string
}

// Token is an opaque bearer credential mapping to a user.
// A user may hold any number of live tokens; tokens never expire on their
// own and live until explicitly revoked.
type Token string
