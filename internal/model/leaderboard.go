package model

// LeaderboardEntry is a derived per-player ranking statistic. Entries are
// recomputed in full from the match-result ledger on every read and are
// never stored.
type LeaderboardEntry struct {
	Rank         int
	Username     string
	Wins         int
	TotalGames   int
	HighestScore int
	WinRate      float64 // percentage in [0, 100]
}
