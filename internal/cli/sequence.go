package cli

import (
	"context"
	"fmt"

	"github.com/preston-bernstein/fm-stats/internal/season"
)

func (a *App) nextSeason(_ context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: next-season <season>", ErrUsage)
	}
	next, err := season.AdvanceSeason(args[0])
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, next)
	return nil
}

func (a *App) nextVersion(_ context.Context, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: next-version <season> <version>", ErrUsage)
	}
	nextSeason, nextVersion, err := season.AdvanceVersion(args[0], args[1])
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, nextSeason, nextVersion)
	return nil
}

func (a *App) latest(_ context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: latest <season>", ErrUsage)
	}
	v, err := a.store.LatestVersion(args[0])
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, v)
	return nil
}

// resolveVersion parses tag, or picks the newest snapshot on disk when tag is empty.
func (a *App) resolveVersion(seasonID, tag string) (season.Version, error) {
	if tag == "" {
		return a.store.LatestVersion(seasonID)
	}
	return season.ParseVersion(tag)
}
