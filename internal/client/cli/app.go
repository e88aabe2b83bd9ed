package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/toneflow/internal/client/orchestrator"
	"github.com/dmitrijs2005/toneflow/internal/client/services"
	"github.com/dmitrijs2005/toneflow/internal/common"
	"github.com/dmitrijs2005/toneflow/internal/logging"
)

// App is the interactive client. It owns no state of its own beyond the
// terminal streams; sessions, history and panels live in the services
// and orchestrator it is given.
type App struct {
	authService    services.AuthService
	historyService services.HistoryService
	text           *orchestrator.TextAnalysis
	drafts         *orchestrator.DraftGenerator
	log            logging.Logger

	reader *bufio.Reader
	out    io.Writer
}

// NewApp builds an App reading from stdin and writing to stdout.
func NewApp(as services.AuthService, hs services.HistoryService, text *orchestrator.TextAnalysis,
	drafts *orchestrator.DraftGenerator, log logging.Logger) *App {
	return &App{
		authService:    as,
		historyService: hs,
		text:           text,
		drafts:         drafts,
		log:            log,
		reader:         bufio.NewReader(os.Stdin),
		out:            os.Stdout,
	}
}

// Run restores the previous session and blocks in the REPL until the user
// exits or stdin closes.
func (a *App) Run(ctx context.Context) {
	if s, err := a.authService.Restore(ctx); err != nil {
		a.log.Warn(ctx, "session restore failed", "error", err)
	} else if s != nil {
		a.log.Info(ctx, "session restored", "email", s.Email)
	}

	fmt.Fprintln(a.out, titleStyle.Render("Welcome to toneflow")+" (type 'help' for commands)")
	runREPL(ctx, a, a.status, a.reader)
}

func (a *App) isLoggedIn() bool {
	return a.authService.Current() != nil
}

func (a *App) status() string {
	if s := a.authService.Current(); s != nil {
		return s.Email
	}
	return "guest"
}

// report prints the user-facing form of err. Feature errors carry their
// own message; the cause is logged.
func (a *App) report(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	var fe *orchestrator.FeatureError
	switch {
	case errors.As(err, &fe):
		a.log.Debug(ctx, "feature failed", "feature", fe.Feature, "error", fe.Err)
		fmt.Fprintln(a.out, errorStyle.Render(fe.Message))
	case errors.Is(err, common.ErrBusy):
		fmt.Fprintln(a.out, errorStyle.Render("Still working on the previous request."))
	default:
		fmt.Fprintln(a.out, errorStyle.Render("Error: "+err.Error()))
	}
	return err
}
