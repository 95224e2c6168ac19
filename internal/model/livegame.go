package model

// LiveGameID uniquely identifies an in-flight game snapshot
type LiveGameID string

// LiveGame is a read-only snapshot of a match in progress. Nothing in this
// service writes live games; the listing endpoint exists for dashboard
// consumers fed by an external simulation.
type LiveGame struct {
	ID            LiveGameID
	Player1       string
	Player2       string
	Player1Score  int
	Player2Score  int
	Mode          GameMode
	TimeRemaining int // seconds
	Player1Alive  bool
	Player2Alive  bool
}
