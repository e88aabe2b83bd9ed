package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/toneflow/internal/client/models"
)

func (a *App) textTarget() bufferTarget {
	return bufferTarget{
		name:    "text",
		buf:     a.text.Buffer(),
		paste:   a.text.Paste,
		load:    a.text.LoadFile,
		dictate: a.text.Dictate,
	}
}

// Text edits or shows the analysis buffer.
func (a *App) Text(ctx context.Context, args []string) error {
	return a.editBuffer(ctx, a.textTarget(), args)
}

func (a *App) Tone(ctx context.Context) error {
	fmt.Fprintln(a.out, "Analyzing tone...")
	if err := a.text.AnalyzeTone(ctx); err != nil {
		return a.report(ctx, err)
	}
	if t := a.text.Snapshot().Tone; t != nil {
		fmt.Fprint(a.out, renderTone(*t))
	}
	return nil
}

func (a *App) Clarity(ctx context.Context) error {
	fmt.Fprintln(a.out, "Checking clarity...")
	if err := a.text.CheckClarity(ctx); err != nil {
		return a.report(ctx, err)
	}
	if c := a.text.Snapshot().Clarity; c != nil {
		fmt.Fprint(a.out, renderClarity(*c))
	}
	return nil
}

// Tones lists the rewrite targets.
func (a *App) Tones(context.Context) error {
	for _, t := range models.ToneOptions {
		fmt.Fprintf(a.out, "  %-13s %s\n", t.Name, t.Description)
	}
	return nil
}

// Rewrite rewrites the text toward one of models.ToneOptions.
func (a *App) Rewrite(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage: rewrite <tone>  (see 'tones')")
		return nil
	}
	opt, ok := models.LookupTone(strings.Join(args, " "))
	if !ok {
		fmt.Fprintf(a.out, "Unknown tone %q (see 'tones')\n", strings.Join(args, " "))
		return nil
	}

	fmt.Fprintf(a.out, "Rewriting to be more %s...\n", opt.Name)
	if err := a.text.Rewrite(ctx, opt.Name); err != nil {
		return a.report(ctx, err)
	}
	if r := a.text.Snapshot().Rewritten; r != nil {
		fmt.Fprintf(a.out, "Rewritten (%s):\n%s\n", opt.Name, *r)
	}
	return nil
}

// Speak reads the text aloud, or the last rewrite with `speak rewrite`.
func (a *App) Speak(ctx context.Context, args []string) error {
	var err error
	if len(args) > 0 && args[0] == "rewrite" {
		err = a.text.PlayRewrite(ctx)
	} else {
		err = a.text.Speak(ctx, a.text.Buffer().Text())
	}
	return a.report(ctx, err)
}

// Copy puts the last rewrite on the clipboard.
func (a *App) Copy(ctx context.Context) error {
	if err := a.text.CopyRewrite(ctx); err != nil {
		return a.report(ctx, err)
	}
	fmt.Fprintln(a.out, "Copied.")
	return nil
}
