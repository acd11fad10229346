package datastore

import (
	"github.com/preston-bernstein/fm-stats/internal/domain/matches"
	"github.com/preston-bernstein/fm-stats/internal/domain/players"
	"github.com/preston-bernstein/fm-stats/internal/domain/teams"
	"github.com/preston-bernstein/fm-stats/internal/season"
)

// Dataset is everything loaded for one season snapshot.
type Dataset struct {
	Season  string
	Version season.Version
	Players []players.Player
	Teams   []teams.Team
	Matches matches.ByCompetition
}
