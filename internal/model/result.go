package model

// ResultID uniquely identifies a recorded match result
type ResultID string

// MatchResult is an immutable record of a completed match's outcome.
// The ledger assigns ID and Timestamp; everything else comes from the caller.
type MatchResult struct {
	ID           ResultID
	Player1      string
	Player2      string
	Winner       string
	Player1Score int
	Player2Score int
	Mode         GameMode
	Duration     int // seconds
	Timestamp    int64
}

// MatchResultInput is the caller-supplied portion of a match result
type MatchResultInput struct {
	Player1      string
	Player2      string
	Winner       string
	Player1Score int
	Player2Score int
	Mode         GameMode
	Duration     int
}
