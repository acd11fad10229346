package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/preston-bernstein/fm-stats/internal/datastore"
	"github.com/preston-bernstein/fm-stats/internal/domain/matches"
	"github.com/preston-bernstein/fm-stats/internal/domain/players"
	"github.com/preston-bernstein/fm-stats/internal/domain/teams"
	"github.com/preston-bernstein/fm-stats/internal/season"
)

// SampleSeason is the season written by WriteSampleData.
const SampleSeason = "2023_2024"

// SampleData locates a fixture data set on disk.
type SampleData struct {
	DataDir   string
	TeamsFile string
}

// SamplePlayers returns a small squad with one sold and one loaned-out player.
func SamplePlayers() []players.Player {
	return []players.Player{
		{ID: 1, FirstName: "Robert", LastName: "Lewandowski", Status: "Active", Stats: map[string]float64{"GoalsScored": 19, "xGp90": 0.71}},
		{ID: 2, FirstName: "Ansu", LastName: "Fati", Status: players.StatusOnLoan, Stats: map[string]float64{"GoalsScored": 4}},
		{ID: 3, FirstName: "Ferran", LastName: "Torres", Status: players.StatusSold, Stats: map[string]float64{}},
		{ID: 4, FirstName: "Pedri", LastName: "González", Status: "Active", Stats: map[string]float64{"xAp90": 0.22, "Passes+Crosses": 1400}},
	}
}

// SampleTeams returns the teams referenced by the sample matches.
func SampleTeams() []teams.Team {
	return []teams.Team{
		{ID: "fcb", Name: "FC Barcelona"},
		{ID: "rma", Name: "Real Madrid"},
		{ID: "nap", Name: "Napoli"},
	}
}

// WriteSampleData writes a season under root: players for start and
// winter_end, valid LaLiga and UCL match files, and a Copa file that is not
// valid JSON.
func WriteSampleData(t *testing.T, root string) SampleData {
	t.Helper()
	data := SampleData{
		DataDir:   filepath.Join(root, "Data"),
		TeamsFile: filepath.Join(root, "utilities", "teams.json"),
	}
	w := datastore.NewWriter(data.DataDir)

	squad := SamplePlayers()
	if err := w.WritePlayers(SampleSeason, season.VersionStart, squad[:2]); err != nil {
		t.Fatalf("failed to write start players: %v", err)
	}
	if err := w.WritePlayers(SampleSeason, season.VersionWinterEnd, squad); err != nil {
		t.Fatalf("failed to write winter_end players: %v", err)
	}
	if err := w.WriteTeams(data.TeamsFile, SampleTeams()); err != nil {
		t.Fatalf("failed to write teams: %v", err)
	}
	if err := w.WriteMatches(SampleSeason, matches.LaLiga, []matches.Match{
		{"Home": "fcb", "Away": "rma", "Score": "2-1"},
		{"Home": "rma", "Away": "fcb", "Score": "3-2"},
	}); err != nil {
		t.Fatalf("failed to write LaLiga matches: %v", err)
	}
	if err := w.WriteMatches(SampleSeason, matches.UCL, []matches.Match{
		{"Home": "nap", "Away": "fcb", "Score": "1-1"},
	}); err != nil {
		t.Fatalf("failed to write UCL matches: %v", err)
	}

	copa := datastore.MatchesPath(data.DataDir, SampleSeason, matches.Copa)
	if err := os.WriteFile(copa, []byte(""), 0o644); err != nil {
		t.Fatalf("failed to write Copa matches: %v", err)
	}
	return data
}
