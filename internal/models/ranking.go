package models

import "sort"

// RankingEntry is one line of a room's standings
type RankingEntry struct {
	// Rank starts at 1
	Rank int

	Player *Player
}

// Ranking sorts players by points, highest first. Ties keep join order.
func Ranking(players []*Player) []RankingEntry {
	sorted := make([]*Player, len(players))
	copy(sorted, players)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Points > sorted[j].Points
	})

	entries := make([]RankingEntry, 0, len(sorted))
	for i, p := range sorted {
		entries = append(entries, RankingEntry{Rank: i + 1, Player: p})
	}
	return entries
}
