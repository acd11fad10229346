package datastore

import (
	"path/filepath"

	"github.com/preston-bernstein/fm-stats/internal/season"
)

const (
	playersDir = "players"
	matchesDir = "matches"
	fileExt    = ".json"
)

// PlayersPath builds {base}/{season}/players/{version}.json.
func PlayersPath(basePath, seasonID string, v season.Version) string {
	return filepath.Join(basePath, seasonID, playersDir, v.String()+fileExt)
}

// MatchesPath builds {base}/{season}/matches/{competition}.json.
func MatchesPath(basePath, seasonID, competition string) string {
	return filepath.Join(basePath, seasonID, matchesDir, competition+fileExt)
}
