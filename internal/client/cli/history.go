package cli

import (
	"context"
	"fmt"
)

// History lists the current user's history, newest first, or prints a
// summary with `history stats`.
func (a *App) History(ctx context.Context, args []string) error {
	email := a.status()

	if len(args) > 0 && args[0] == "stats" {
		st, err := a.historyService.Stats(ctx, email)
		if err != nil {
			return a.report(ctx, err)
		}
		fmt.Fprint(a.out, renderStats(st))
		return nil
	}

	items, err := a.historyService.List(ctx, email)
	if err != nil {
		return a.report(ctx, err)
	}
	if len(items) == 0 {
		fmt.Fprintln(a.out, "No history yet.")
		return nil
	}
	for _, it := range items {
		fmt.Fprint(a.out, renderHistoryItem(it))
	}
	return nil
}
