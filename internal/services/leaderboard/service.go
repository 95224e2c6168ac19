// Package leaderboard derives ranked per-player statistics from the match
// result ledger. It keeps no state of its own: every read recomputes from
// the full ledger, so results are never stale at O(results) cost per query.
package leaderboard

import (
	"context"
	"sort"

	"github.com/snakeduel/snakeduel-go/internal/model"
	"github.com/snakeduel/snakeduel-go/internal/services/ledger"
)

// Service computes the leaderboard on demand
type Service struct {
	ledger *ledger.Service
}

// New creates a new leaderboard Service
func New(ledgerService *ledger.Service) *Service {
	return &Service{ledger: ledgerService}
}

type playerStats struct {
	wins         int
	games        int
	highestScore int
}

// Compute aggregates the full ledger into ranked entries. Both sides of
// every result count toward games and highest score; only the winner's
// wins counter moves. Ordering is wins, then win rate, then highest score,
// all descending, with username ascending as the final tiebreak so the
// ranking is deterministic.
func (s *Service) Compute(ctx context.Context) ([]model.LeaderboardEntry, error) {
	results, err := s.ledger.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	return Aggregate(results), nil
}

// Aggregate is the pure aggregation over a result list
func Aggregate(results []*model.MatchResult) []model.LeaderboardEntry {
	stats := make(map[string]*playerStats)

	tally := func(username string, score int, won bool) {
		ps, ok := stats[username]
		if !ok {
			ps = &playerStats{}
			stats[username] = ps
		}
		ps.games++
		if score > ps.highestScore {
			ps.highestScore = score
		}
		if won {
			ps.wins++
		}
	}

	for _, r := range results {
		tally(r.Player1, r.Player1Score, r.Winner == r.Player1)
		tally(r.Player2, r.Player2Score, r.Winner == r.Player2)
	}

	entries := make([]model.LeaderboardEntry, 0, len(stats))
	for username, ps := range stats {
		var winRate float64
		if ps.games > 0 {
			winRate = float64(ps.wins) / float64(ps.games) * 100
		}
		entries = append(entries, model.LeaderboardEntry{
			Username:     username,
			Wins:         ps.wins,
			TotalGames:   ps.games,
			HighestScore: ps.highestScore,
			WinRate:      winRate,
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.Wins != b.Wins {
			return a.Wins > b.Wins
		}
		if a.WinRate != b.WinRate {
			return a.WinRate > b.WinRate
		}
		if a.HighestScore != b.HighestScore {
			return a.HighestScore > b.HighestScore
		}
		return a.Username < b.Username
	})

	for i := range entries {
		entries[i].Rank = i + 1
	}

	return entries
}
