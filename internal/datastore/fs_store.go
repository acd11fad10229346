// Package datastore reads and writes the per-season JSON exports on disk.
package datastore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/preston-bernstein/fm-stats/internal/domain/matches"
	"github.com/preston-bernstein/fm-stats/internal/domain/players"
	"github.com/preston-bernstein/fm-stats/internal/domain/teams"
	"github.com/preston-bernstein/fm-stats/internal/logging"
	"github.com/preston-bernstein/fm-stats/internal/metrics"
	"github.com/preston-bernstein/fm-stats/internal/season"
)

// Store defines how season data is loaded.
type Store interface {
	Competitions() []string
	LatestVersion(seasonID string) (season.Version, error)
	LoadPlayers(seasonID string, v season.Version) ([]players.Player, error)
	LoadTeams() ([]teams.Team, error)
	Load(ctx context.Context, seasonID string, v season.Version) (Dataset, error)
}

var _ Store = (*FSStore)(nil)

// Options configures an FSStore.
type Options struct {
	BasePath     string
	TeamsFile    string
	Competitions []string
	Logger       *slog.Logger
	Recorder     *metrics.Recorder
}

// FSStore loads season data from the filesystem.
type FSStore struct {
	basePath     string
	teamsFile    string
	competitions []string
	logger       *slog.Logger
	recorder     *metrics.Recorder
}

// NewFSStore constructs an FS-backed store. Competitions default to
// matches.DefaultCompetitions when none are given.
func NewFSStore(opts Options) *FSStore {
	comps := opts.Competitions
	if len(comps) == 0 {
		comps = matches.DefaultCompetitions()
	}
	return &FSStore{
		basePath:     opts.BasePath,
		teamsFile:    opts.TeamsFile,
		competitions: append([]string(nil), comps...),
		logger:       opts.Logger,
		recorder:     opts.Recorder,
	}
}

// Competitions returns the competitions whose match files LoadMatches reads.
func (s *FSStore) Competitions() []string {
	if s == nil {
		return nil
	}
	return append([]string(nil), s.competitions...)
}

// LatestVersion returns the most advanced version with a players file for the season.
func (s *FSStore) LatestVersion(seasonID string) (season.Version, error) {
	if s == nil {
		return 0, errors.New("data store not configured")
	}
	if seasonID == "" {
		return 0, errors.New("season required")
	}
	dir := filepath.Join(s.basePath, seasonID, playersDir)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, fmt.Errorf("list versions: %w", err)
	}
	tags := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		tags = append(tags, strings.TrimSuffix(e.Name(), fileExt))
	}
	v, err := season.LatestVersion(tags)
	if err != nil {
		return 0, fmt.Errorf("list versions in %s: %w", dir, err)
	}
	return v, nil
}

// LoadPlayers reads the players file for a season snapshot.
func (s *FSStore) LoadPlayers(seasonID string, v season.Version) ([]players.Player, error) {
	if s == nil {
		return nil, errors.New("data store not configured")
	}
	if seasonID == "" {
		return nil, errors.New("season required")
	}
	if !v.Valid() {
		return nil, fmt.Errorf("%w: %d", season.ErrUnknownVersion, int(v))
	}
	var items []players.Player
	if err := s.load(metrics.KindPlayers, PlayersPath(s.basePath, seasonID, v), &items); err != nil {
		return nil, err
	}
	return items, nil
}

// LoadTeams reads the shared teams file.
func (s *FSStore) LoadTeams() ([]teams.Team, error) {
	if s == nil {
		return nil, errors.New("data store not configured")
	}
	if s.teamsFile == "" {
		return nil, errors.New("teams file not configured")
	}
	var items []teams.Team
	if err := s.load(metrics.KindTeams, s.teamsFile, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// LoadMatches reads every configured competition's match file. Files that are
// present but not valid JSON are logged and skipped; any other failure aborts.
func (s *FSStore) LoadMatches(ctx context.Context, seasonID string) (matches.ByCompetition, error) {
	if s == nil {
		return nil, errors.New("data store not configured")
	}
	if seasonID == "" {
		return nil, errors.New("season required")
	}
	out := make(matches.ByCompetition, len(s.competitions))
	for _, comp := range s.competitions {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		path := MatchesPath(s.basePath, seasonID, comp)
		var items []matches.Match
		err := s.load(metrics.KindMatches, path, &items)
		var decodeErr *DecodeError
		if errors.As(err, &decodeErr) {
			logging.Warn(logging.FromContext(ctx, s.logger), "skipping undecodable match file",
				logging.FieldCompetition, comp,
				logging.FieldPath, path,
				"error", decodeErr.Err,
			)
			s.recorder.RecordSkippedMatches(comp)
			continue
		}
		if err != nil {
			return nil, err
		}
		out[comp] = items
	}
	return out, nil
}

// Load reads players, teams and matches for a season snapshot.
func (s *FSStore) Load(ctx context.Context, seasonID string, v season.Version) (Dataset, error) {
	if err := ctx.Err(); err != nil {
		return Dataset{}, err
	}
	ps, err := s.LoadPlayers(seasonID, v)
	if err != nil {
		return Dataset{}, err
	}
	if err := ctx.Err(); err != nil {
		return Dataset{}, err
	}
	ts, err := s.LoadTeams()
	if err != nil {
		return Dataset{}, err
	}
	ms, err := s.LoadMatches(ctx, seasonID)
	if err != nil {
		return Dataset{}, err
	}

	logging.Debug(logging.FromContext(ctx, s.logger), "loaded dataset",
		logging.FieldSeason, seasonID,
		logging.FieldDataVersion, v.String(),
		logging.FieldCount, len(ps),
		"teams", len(ts),
		"matches", ms.Count(),
	)
	return Dataset{
		Season:  seasonID,
		Version: v,
		Players: ps,
		Teams:   ts,
		Matches: ms,
	}, nil
}

func (s *FSStore) load(kind, path string, payload any) error {
	start := time.Now()
	err := decodeFile(path, payload)
	s.recorder.RecordLoad(kind, time.Since(start), err)
	return err
}

// decodeFile reads path whole so trailing data after the first value is a
// syntax error. Only syntax errors become a DecodeError; valid JSON of the
// wrong shape is returned as a plain error.
func decodeFile(path string, payload any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	err = json.Unmarshal(data, payload)
	var syntaxErr *json.SyntaxError
	switch {
	case err == nil:
		return nil
	case errors.As(err, &syntaxErr):
		return &DecodeError{Path: path, Err: err}
	default:
		return fmt.Errorf("decode %s: %w", path, err)
	}
}
