package datastore_test

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/preston-bernstein/fm-stats/internal/datastore"
	"github.com/preston-bernstein/fm-stats/internal/domain/matches"
	"github.com/preston-bernstein/fm-stats/internal/logging"
	"github.com/preston-bernstein/fm-stats/internal/metrics"
	"github.com/preston-bernstein/fm-stats/internal/season"
	"github.com/preston-bernstein/fm-stats/internal/testutil"
)

func newStore(t *testing.T) (*datastore.FSStore, testutil.SampleData, *metrics.Recorder) {
	t.Helper()
	data := testutil.WriteSampleData(t, t.TempDir())
	rec := metrics.NewRecorder()
	store := datastore.NewFSStore(datastore.Options{
		BasePath:  data.DataDir,
		TeamsFile: data.TeamsFile,
		Recorder:  rec,
	})
	return store, data, rec
}

func TestFSStoreLatestVersion(t *testing.T) {
	store, _, _ := newStore(t)
	v, err := store.LatestVersion(testutil.SampleSeason)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != season.VersionWinterEnd {
		t.Fatalf("expected winter_end, got %s", v)
	}
}

func TestFSStoreLatestVersionErrors(t *testing.T) {
	store, data, _ := newStore(t)
	if _, err := store.LatestVersion("2030_2031"); !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected not-exist error for missing season, got %v", err)
	}
	if _, err := store.LatestVersion(""); err == nil {
		t.Fatalf("expected error for empty season")
	}

	stray := filepath.Join(data.DataDir, testutil.SampleSeason, "players", "notes.json")
	if err := os.WriteFile(stray, []byte("[]"), 0o644); err != nil {
		t.Fatalf("failed to write stray file: %v", err)
	}
	if _, err := store.LatestVersion(testutil.SampleSeason); !errors.Is(err, season.ErrUnknownVersion) {
		t.Fatalf("expected ErrUnknownVersion for stray file, got %v", err)
	}

	var nilStore *datastore.FSStore
	if _, err := nilStore.LatestVersion(testutil.SampleSeason); err == nil {
		t.Fatalf("expected error for nil store")
	}
}

func TestFSStoreLatestVersionIgnoresDirectories(t *testing.T) {
	store, data, _ := newStore(t)
	if err := os.MkdirAll(filepath.Join(data.DataDir, testutil.SampleSeason, "players", "archive"), 0o755); err != nil {
		t.Fatalf("failed to create dir: %v", err)
	}
	if _, err := store.LatestVersion(testutil.SampleSeason); err != nil {
		t.Fatalf("expected directories to be ignored, got %v", err)
	}
}

func TestFSStoreLoadPlayers(t *testing.T) {
	store, _, rec := newStore(t)
	got, err := store.LoadPlayers(testutil.SampleSeason, season.VersionStart)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 || got[0].FullName() != "Robert Lewandowski" {
		t.Fatalf("unexpected players: %+v", got)
	}
	if got[0].Stats["xGp90"] != 0.71 {
		t.Fatalf("expected stats to round-trip, got %+v", got[0].Stats)
	}
	if rec.Loads(metrics.KindPlayers) != 1 {
		t.Fatalf("expected one recorded players load")
	}

	if _, err := store.LoadPlayers(testutil.SampleSeason, season.VersionEnd); !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
	if rec.Errors(metrics.KindPlayers) != 1 {
		t.Fatalf("expected one recorded players error")
	}
	if _, err := store.LoadPlayers(testutil.SampleSeason, season.Version(12)); !errors.Is(err, season.ErrUnknownVersion) {
		t.Fatalf("expected ErrUnknownVersion, got %v", err)
	}
}

func TestFSStoreLoadTeams(t *testing.T) {
	store, _, _ := newStore(t)
	got, err := store.LoadTeams()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 3 || got[0].Name != "FC Barcelona" {
		t.Fatalf("unexpected teams: %+v", got)
	}

	unconfigured := datastore.NewFSStore(datastore.Options{})
	if _, err := unconfigured.LoadTeams(); err == nil {
		t.Fatalf("expected error without teams file")
	}
}

func TestFSStoreLoadMatchesSkipsUndecodableFiles(t *testing.T) {
	data := testutil.WriteSampleData(t, t.TempDir())
	logger, buf := testutil.NewBufferLogger()
	rec := metrics.NewRecorder()
	store := datastore.NewFSStore(datastore.Options{
		BasePath:  data.DataDir,
		TeamsFile: data.TeamsFile,
		Logger:    logger,
		Recorder:  rec,
	})

	got, err := store.LoadMatches(context.Background(), testutil.SampleSeason)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got[matches.LaLiga]) != 2 || len(got[matches.UCL]) != 1 {
		t.Fatalf("unexpected matches: %+v", got)
	}
	if _, ok := got[matches.Copa]; ok {
		t.Fatalf("expected Copa to be skipped")
	}
	if rec.Skipped(metrics.KindMatches) != 1 {
		t.Fatalf("expected one skipped match file")
	}
	if !strings.Contains(buf.String(), "skipping undecodable match file") || !strings.Contains(buf.String(), "competition=Copa") {
		t.Fatalf("expected skip warning, got %q", buf.String())
	}
}

func TestFSStoreLoadMatchesSkipsTrailingData(t *testing.T) {
	data := testutil.WriteSampleData(t, t.TempDir())
	path := datastore.MatchesPath(data.DataDir, testutil.SampleSeason, matches.LaLiga)
	if err := os.WriteFile(path, []byte(`[{"home":"fcb"}] garbage`), 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}
	rec := metrics.NewRecorder()
	store := datastore.NewFSStore(datastore.Options{
		BasePath:     data.DataDir,
		TeamsFile:    data.TeamsFile,
		Competitions: []string{matches.LaLiga, matches.UCL},
		Recorder:     rec,
	})

	got, err := store.LoadMatches(context.Background(), testutil.SampleSeason)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := got[matches.LaLiga]; ok {
		t.Fatalf("expected LaLiga with trailing data to be skipped, got %+v", got[matches.LaLiga])
	}
	if len(got[matches.UCL]) != 1 {
		t.Fatalf("expected UCL to load, got %+v", got)
	}
	if rec.Skipped(metrics.KindMatches) != 1 {
		t.Fatalf("expected one skipped match file, got %d", rec.Skipped(metrics.KindMatches))
	}
}

func TestFSStoreLoadMatchesRejectsNonListJSON(t *testing.T) {
	data := testutil.WriteSampleData(t, t.TempDir())
	path := datastore.MatchesPath(data.DataDir, testutil.SampleSeason, matches.UCL)
	if err := os.WriteFile(path, []byte(`{"home":"fcb"}`), 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}
	rec := metrics.NewRecorder()
	store := datastore.NewFSStore(datastore.Options{
		BasePath:     data.DataDir,
		TeamsFile:    data.TeamsFile,
		Competitions: []string{matches.LaLiga, matches.UCL},
		Recorder:     rec,
	})

	_, err := store.LoadMatches(context.Background(), testutil.SampleSeason)
	var typeErr *json.UnmarshalTypeError
	if !errors.As(err, &typeErr) {
		t.Fatalf("expected type error for object-shaped match file, got %v", err)
	}
	var decodeErr *datastore.DecodeError
	if errors.As(err, &decodeErr) {
		t.Fatalf("valid JSON must not be reported as undecodable: %v", err)
	}
	if !strings.Contains(err.Error(), path) {
		t.Fatalf("expected error to carry path, got %v", err)
	}
	if rec.Skipped(metrics.KindMatches) != 0 {
		t.Fatalf("expected no skipped match files")
	}
}

func TestFSStoreLoadMatchesMissingFileFails(t *testing.T) {
	data := testutil.WriteSampleData(t, t.TempDir())
	store := datastore.NewFSStore(datastore.Options{
		BasePath:     data.DataDir,
		TeamsFile:    data.TeamsFile,
		Competitions: []string{matches.LaLiga, "Supercopa"},
	})
	if _, err := store.LoadMatches(context.Background(), testutil.SampleSeason); !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected not-exist error for missing competition file, got %v", err)
	}
}

func TestFSStoreLoadMatchesHonoursCancellation(t *testing.T) {
	store, _, _ := newStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := store.LoadMatches(ctx, testutil.SampleSeason); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if _, err := store.Load(ctx, testutil.SampleSeason, season.VersionStart); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled from Load, got %v", err)
	}
}

func TestFSStoreLoad(t *testing.T) {
	store, _, _ := newStore(t)
	logger, buf := testutil.NewBufferLogger()
	ctx := logging.WithLogger(context.Background(), logger)

	ds, err := store.Load(ctx, testutil.SampleSeason, season.VersionWinterEnd)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ds.Season != testutil.SampleSeason || ds.Version != season.VersionWinterEnd {
		t.Fatalf("unexpected dataset identity: %s %s", ds.Season, ds.Version)
	}
	if len(ds.Players) != 4 || len(ds.Teams) != 3 || ds.Matches.Count() != 3 {
		t.Fatalf("unexpected dataset sizes: players=%d teams=%d matches=%d", len(ds.Players), len(ds.Teams), ds.Matches.Count())
	}
	if !strings.Contains(buf.String(), "loaded dataset") {
		t.Fatalf("expected debug log from context logger, got %q", buf.String())
	}
}

func TestFSStoreLoadPropagatesErrors(t *testing.T) {
	store, _, _ := newStore(t)
	if _, err := store.Load(context.Background(), testutil.SampleSeason, season.VersionEnd); err == nil {
		t.Fatalf("expected error for missing players snapshot")
	}

	data := testutil.WriteSampleData(t, t.TempDir())
	noTeams := datastore.NewFSStore(datastore.Options{BasePath: data.DataDir, TeamsFile: filepath.Join(data.DataDir, "missing.json")})
	if _, err := noTeams.Load(context.Background(), testutil.SampleSeason, season.VersionStart); !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected not-exist error for missing teams file, got %v", err)
	}
}

func TestFSStorePlayersDecodeError(t *testing.T) {
	store, data, _ := newStore(t)
	path := datastore.PlayersPath(data.DataDir, testutil.SampleSeason, season.VersionStart)
	if err := os.WriteFile(path, []byte("{bad json"), 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}
	_, err := store.LoadPlayers(testutil.SampleSeason, season.VersionStart)
	var decodeErr *datastore.DecodeError
	if !errors.As(err, &decodeErr) {
		t.Fatalf("expected DecodeError, got %v", err)
	}
	if decodeErr.Path != path || !strings.Contains(err.Error(), path) {
		t.Fatalf("expected error to carry path, got %v", err)
	}
}

func TestFSStoreCompetitions(t *testing.T) {
	defaults := datastore.NewFSStore(datastore.Options{})
	if got := defaults.Competitions(); len(got) != 3 || got[0] != matches.LaLiga {
		t.Fatalf("expected default competitions, got %v", got)
	}

	custom := datastore.NewFSStore(datastore.Options{Competitions: []string{"Supercopa"}})
	got := custom.Competitions()
	got[0] = "mutated"
	if custom.Competitions()[0] != "Supercopa" {
		t.Fatalf("expected a copy of the competitions")
	}
}
