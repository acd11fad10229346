package cli

import (
	"context"
	"fmt"
	"strconv"
	"text/tabwriter"

	appplayers "github.com/preston-bernstein/fm-stats/internal/app/players"
	"github.com/preston-bernstein/fm-stats/internal/logging"
	"github.com/preston-bernstein/fm-stats/internal/statlabel"
	"github.com/preston-bernstein/fm-stats/internal/store"
)

func (a *App) loadPlayerService(ctx context.Context, snap snapshotFlags) (*appplayers.Service, error) {
	v, err := a.resolveVersion(snap.season, snap.version)
	if err != nil {
		return nil, err
	}
	items, err := a.store.LoadPlayers(snap.season, v)
	if err != nil {
		return nil, err
	}
	logging.Info(logging.FromContext(ctx, a.logger), "loaded players",
		logging.FieldSeason, snap.season,
		logging.FieldDataVersion, v.String(),
		logging.FieldCount, len(items),
	)
	svc := appplayers.NewService(store.NewMemoryStore())
	svc.ReplacePlayers(items)
	return svc, nil
}

func (a *App) players(ctx context.Context, args []string) error {
	var (
		snap snapshotFlags
		all  bool
	)
	fs := newFlagSet("players")
	snap.register(fs)
	fs.BoolVar(&all, "all", false, "include sold and loaned-out players")
	if err := parseFlags(fs, args, &snap); err != nil {
		return err
	}

	svc, err := a.loadPlayerService(ctx, snap)
	if err != nil {
		return err
	}
	items := svc.ActivePlayers()
	if all {
		items = svc.Players()
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	for _, p := range items {
		fmt.Fprintf(tw, "%d\t%s\t%s\n", p.ID, p.FullName(), p.Status)
	}
	return tw.Flush()
}

func (a *App) stats(ctx context.Context, args []string) error {
	var (
		snap     snapshotFlags
		playerID int
	)
	fs := newFlagSet("stats")
	snap.register(fs)
	fs.IntVar(&playerID, "player", 0, "player id")
	if err := parseFlags(fs, args, &snap); err != nil {
		return err
	}
	if !flagSet(fs, "player") {
		return fmt.Errorf("%w: stats: -player is required", ErrUsage)
	}

	svc, err := a.loadPlayerService(ctx, snap)
	if err != nil {
		return err
	}
	p, ok := svc.PlayerByID(playerID)
	if !ok {
		return fmt.Errorf("player %d not found in %s", playerID, snap.season)
	}

	fmt.Fprintln(a.out, p.FullName())
	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	for _, s := range statlabel.FormatStats(p.Stats) {
		fmt.Fprintf(tw, "%s\t%s\n", s.Label, strconv.FormatFloat(s.Value, 'f', -1, 64))
	}
	return tw.Flush()
}
