package app

import (
	"sort"

	"daily-trivia-service/internal/domain"
)

// DefaultLeaderboardLimit bounds rankings when callers pass no limit.
const DefaultLeaderboardLimit = 10

// Rank orders a snapshot of user records by longest streak, tie-broken by
// lifetime correct answers, and truncates to limit. Stable for full ties.
// Empty input or a non-positive limit yields an empty ranking.
func Rank(records []domain.UserRecord, limit int) []domain.LeaderboardEntry {
	if limit <= 0 || len(records) == 0 {
		return []domain.LeaderboardEntry{}
	}

	entries := make([]domain.LeaderboardEntry, 0, len(records))
	for _, rec := range records {
		entries = append(entries, domain.LeaderboardEntry{
			FID:      rec.FID,
			Username: rec.Username,
			Streak:   rec.LongestStreak,
			Total:    rec.TotalCorrect,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Streak != entries[j].Streak {
			return entries[i].Streak > entries[j].Streak
		}
		return entries[i].Total > entries[j].Total
	})

	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}
