package datastore

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/preston-bernstein/fm-stats/internal/domain/matches"
	"github.com/preston-bernstein/fm-stats/internal/domain/players"
	"github.com/preston-bernstein/fm-stats/internal/domain/teams"
	"github.com/preston-bernstein/fm-stats/internal/season"
)

// Writer persists season exports in the layout FSStore reads.
type Writer struct {
	basePath string
}

// NewWriter constructs a writer rooted at basePath.
func NewWriter(basePath string) *Writer {
	return &Writer{basePath: basePath}
}

// BasePath exposes the writer root path (primarily for testing).
func (w *Writer) BasePath() string {
	if w == nil {
		return ""
	}
	return w.basePath
}

// WritePlayers writes a players file sorted by id.
func (w *Writer) WritePlayers(seasonID string, v season.Version, items []players.Player) error {
	if w == nil {
		return errors.New("data writer not configured")
	}
	if seasonID == "" {
		return errors.New("season required")
	}
	if !v.Valid() {
		return fmt.Errorf("%w: %d", season.ErrUnknownVersion, int(v))
	}
	sorted := append([]players.Player(nil), items...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })
	return writeJSON(PlayersPath(w.basePath, seasonID, v), sorted)
}

// WriteMatches writes one competition's match file.
func (w *Writer) WriteMatches(seasonID, competition string, items []matches.Match) error {
	if w == nil {
		return errors.New("data writer not configured")
	}
	if seasonID == "" || competition == "" {
		return errors.New("season and competition required")
	}
	if items == nil {
		items = []matches.Match{}
	}
	return writeJSON(MatchesPath(w.basePath, seasonID, competition), items)
}

// WriteTeams writes a teams file at path.
func (w *Writer) WriteTeams(path string, items []teams.Team) error {
	if w == nil {
		return errors.New("data writer not configured")
	}
	if path == "" {
		return errors.New("teams path required")
	}
	return writeJSON(path, items)
}

// writeJSON replaces target atomically and leaves it untouched when the
// content is unchanged.
func writeJSON(target string, payload any) error {
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return err
	}
	if existing, err := os.ReadFile(target); err == nil && bytes.Equal(existing, data) {
		return nil
	}

	tmp := target + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, target)
}
