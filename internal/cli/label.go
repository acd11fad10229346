package cli

import (
	"context"
	"fmt"

	"github.com/preston-bernstein/fm-stats/internal/statlabel"
)

func (a *App) label(_ context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: label <code> [code...]", ErrUsage)
	}
	for _, code := range args {
		fmt.Fprintln(a.out, statlabel.Format(code))
	}
	return nil
}
