package cli

import (
	"context"
	"fmt"
	"text/tabwriter"
)

func (a *App) matches(ctx context.Context, args []string) error {
	var snap snapshotFlags
	fs := newFlagSet("matches")
	snap.register(fs)
	if err := parseFlags(fs, args, &snap); err != nil {
		return err
	}

	v, err := a.resolveVersion(snap.season, snap.version)
	if err != nil {
		return err
	}
	ds, err := a.store.Load(ctx, snap.season, v)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	for _, comp := range a.store.Competitions() {
		items, ok := ds.Matches[comp]
		if !ok {
			fmt.Fprintf(tw, "%s\tskipped\n", comp)
			continue
		}
		fmt.Fprintf(tw, "%s\t%d\n", comp, len(items))
	}
	fmt.Fprintf(tw, "total\t%d\n", ds.Matches.Count())
	return tw.Flush()
}
