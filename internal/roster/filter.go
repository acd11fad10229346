// Package roster holds small helpers over loaded player and team lists.
package roster

import "github.com/preston-bernstein/fm-stats/internal/domain/players"

// WithoutStatus returns the players whose Status is none of statuses. The
// input slice is left untouched.
func WithoutStatus(items []players.Player, statuses ...string) []players.Player {
	out := make([]players.Player, 0, len(items))
	for _, p := range items {
		if hasStatus(p, statuses) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// RemoveSold drops players that have been sold.
func RemoveSold(items []players.Player) []players.Player {
	return WithoutStatus(items, players.StatusSold)
}

// RemoveOnLoan drops players currently out on loan.
func RemoveOnLoan(items []players.Player) []players.Player {
	return WithoutStatus(items, players.StatusOnLoan)
}

// Active drops both sold and loaned-out players.
func Active(items []players.Player) []players.Player {
	return WithoutStatus(items, players.StatusSold, players.StatusOnLoan)
}

func hasStatus(p players.Player, statuses []string) bool {
	for _, s := range statuses {
		if p.Status == s {
			return true
		}
	}
	return false
}
