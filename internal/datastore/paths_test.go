package datastore

import (
	"path/filepath"
	"testing"

	"github.com/preston-bernstein/fm-stats/internal/season"
)

func TestPlayersPath(t *testing.T) {
	got := PlayersPath("Data", "2023_2024", season.VersionSummerEnd)
	want := filepath.Join("Data", "2023_2024", "players", "summer_end.json")
	if got != want {
		t.Fatalf("expected %s, got %s", want, got)
	}
}

func TestMatchesPath(t *testing.T) {
	got := MatchesPath("Data", "2023_2024", "UCL")
	want := filepath.Join("Data", "2023_2024", "matches", "UCL.json")
	if got != want {
		t.Fatalf("expected %s, got %s", want, got)
	}
}
