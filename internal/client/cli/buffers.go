package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/toneflow/internal/client/workspace"
)

// bufferTarget binds the generic buffer subcommands to one panel input.
type bufferTarget struct {
	name    string
	buf     *workspace.Buffer
	paste   func(ctx context.Context) error
	load    func(path string) error
	dictate func(ctx context.Context, interim func(string)) error
}

// editBuffer runs `<name> [show|set|append|paste|load <file>|dictate|clear]`.
func (a *App) editBuffer(ctx context.Context, t bufferTarget, args []string) error {
	sub := "show"
	if len(args) > 0 {
		sub, args = args[0], args[1:]
	}
	rest := strings.Join(args, " ")

	switch sub {
	case "show":
		a.showBuffer(t)
		return nil
	case "set":
		if rest == "" {
			text, err := ReadBufferText(a.reader, t.name, a.out)
			if err != nil {
				return a.report(ctx, err)
			}
			rest = text
		}
		t.buf.Set(rest)
	case "append":
		if rest == "" {
			fmt.Fprintf(a.out, "Usage: %s append <text>\n", t.name)
			return nil
		}
		t.buf.Append(rest)
	case "paste":
		if err := t.paste(ctx); err != nil {
			return a.report(ctx, err)
		}
	case "load":
		if rest == "" {
			fmt.Fprintf(a.out, "Usage: %s load <file>\n", t.name)
			return nil
		}
		if err := t.load(rest); err != nil {
			return a.report(ctx, err)
		}
	case "dictate":
		if err := a.dictate(ctx, t.dictate); err != nil {
			return err
		}
	case "clear":
		t.buf.Clear()
	default:
		fmt.Fprintf(a.out, "Usage: %s [show|set|append|paste|load <file>|dictate|clear]\n", t.name)
		return nil
	}
	a.showBuffer(t)
	return nil
}

func (a *App) showBuffer(t bufferTarget) {
	text := t.buf.Text()
	if text == "" {
		fmt.Fprintf(a.out, "(%s is empty)\n", t.name)
		return
	}
	fmt.Fprintf(a.out, "%s (%d words):\n%s\n", t.name, t.buf.WordCount(), text)
}

// dictate runs a dictation session until the user presses Enter or the
// recognizer stops on its own.
func (a *App) dictate(ctx context.Context, run func(ctx context.Context, interim func(string)) error) error {
	dctx, cancel := context.WithCancel(ctx)
	defer cancel()

	fmt.Fprintln(a.out, "Listening... press Enter to stop.")
	done := make(chan error, 1)
	go func() {
		done <- run(dctx, func(s string) { fmt.Fprintf(a.out, "  ~ %s\n", s) })
	}()

	stop := make(chan struct{})
	go func() {
		readLine(a.reader)
		close(stop)
	}()

	var err error
	select {
	case <-stop:
		cancel()
		err = <-done
	case err = <-done:
		if err != nil {
			_ = a.report(ctx, err)
		}
		fmt.Fprintln(a.out, "Dictation ended. Press Enter to continue.")
		<-stop
		return err
	}
	return a.report(ctx, err)
}
