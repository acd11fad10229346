package roster

import (
	"github.com/preston-bernstein/fm-stats/internal/domain/players"
	"github.com/preston-bernstein/fm-stats/internal/domain/teams"
)

// TeamName returns the name of the first team with the given id.
func TeamName(items []teams.Team, id string) (string, bool) {
	for _, t := range items {
		if t.ID == id {
			return t.Name, true
		}
	}
	return "", false
}

// PlayerName returns "First Last" for the first player with the given id.
func PlayerName(items []players.Player, id int) (string, bool) {
	for _, p := range items {
		if p.ID == id {
			return p.FullName(), true
		}
	}
	return "", false
}
