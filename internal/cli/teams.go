package cli

import (
	"context"
	"fmt"

	appteams "github.com/preston-bernstein/fm-stats/internal/app/teams"
	"github.com/preston-bernstein/fm-stats/internal/logging"
	"github.com/preston-bernstein/fm-stats/internal/store"
)

func (a *App) loadTeamService(ctx context.Context) (*appteams.Service, error) {
	items, err := a.store.LoadTeams()
	if err != nil {
		return nil, err
	}
	logging.Debug(logging.FromContext(ctx, a.logger), "loaded teams",
		logging.FieldCount, len(items),
	)
	svc := appteams.NewService(store.NewMemoryStore())
	svc.ReplaceTeams(items)
	return svc, nil
}

func (a *App) team(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: team <id>", ErrUsage)
	}
	svc, err := a.loadTeamService(ctx)
	if err != nil {
		return err
	}
	name, ok := svc.TeamName(args[0])
	if !ok {
		return fmt.Errorf("team %q not found", args[0])
	}
	fmt.Fprintln(a.out, name)
	return nil
}
