package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/toneflow/internal/client/orchestrator"
)

func (a *App) draftTarget(field orchestrator.DraftField) (bufferTarget, error) {
	buf, err := a.drafts.Buffer(field)
	if err != nil {
		return bufferTarget{}, err
	}
	return bufferTarget{
		name:  string(field),
		buf:   buf,
		paste: func(ctx context.Context) error { return a.drafts.Paste(ctx, field) },
		load:  func(path string) error { return a.drafts.LoadFile(field, path) },
		dictate: func(ctx context.Context, interim func(string)) error {
			return a.drafts.Dictate(ctx, field, interim)
		},
	}, nil
}

// Message edits the incoming message the drafts reply to.
func (a *App) Message(ctx context.Context, args []string) error {
	t, err := a.draftTarget(orchestrator.FieldMessage)
	if err != nil {
		return a.report(ctx, err)
	}
	return a.editBuffer(ctx, t, args)
}

// Instruction edits what the reply should say.
func (a *App) Instruction(ctx context.Context, args []string) error {
	t, err := a.draftTarget(orchestrator.FieldInstruction)
	if err != nil {
		return a.report(ctx, err)
	}
	return a.editBuffer(ctx, t, args)
}

func (a *App) Drafts(ctx context.Context) error {
	fmt.Fprintln(a.out, "Generating drafts...")
	if err := a.drafts.Generate(ctx); err != nil {
		return a.report(ctx, err)
	}
	fmt.Fprint(a.out, renderDrafts(a.drafts.Snapshot().Drafts))
	return nil
}

// draftIndex parses a 1-based draft number.
func (a *App) draftIndex(cmd string, args []string) (int, bool) {
	if len(args) != 1 {
		fmt.Fprintf(a.out, "Usage: %s <n>\n", cmd)
		return 0, false
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 1 {
		fmt.Fprintf(a.out, "Usage: %s <n>\n", cmd)
		return 0, false
	}
	return n - 1, true
}

func (a *App) SpeakDraft(ctx context.Context, args []string) error {
	i, ok := a.draftIndex("speakdraft", args)
	if !ok {
		return nil
	}
	return a.report(ctx, a.drafts.PlayDraft(ctx, i))
}

func (a *App) CopyDraft(ctx context.Context, args []string) error {
	i, ok := a.draftIndex("copydraft", args)
	if !ok {
		return nil
	}
	if err := a.drafts.CopyDraft(ctx, i); err != nil {
		return a.report(ctx, err)
	}
	fmt.Fprintln(a.out, "Copied.")
	return nil
}
