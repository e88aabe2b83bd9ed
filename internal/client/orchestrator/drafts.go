package orchestrator

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/toneflow/internal/client/models"
	"github.com/dmitrijs2005/toneflow/internal/client/workspace"
	"github.com/dmitrijs2005/toneflow/internal/common"
)

// DraftField selects one of the draft generator inputs.
type DraftField string

const (
	FieldMessage     DraftField = "message"
	FieldInstruction DraftField = "instruction"
)

// DraftGenerator produces reply drafts from an incoming message and an
// instruction, and plays one draft at a time.
type DraftGenerator struct {
	deps        Deps
	message     *workspace.Buffer
	instruction *workspace.Buffer
	st          *tracker

	mu          sync.Mutex
	drafts      []models.Draft
	playing     int
	recordingTo DraftField
}

func NewDraftGenerator(deps Deps, message, instruction *workspace.Buffer) *DraftGenerator {
	return &DraftGenerator{deps: deps, message: message, instruction: instruction, st: newTracker(), playing: -1}
}

// Buffer returns the buffer behind field.
func (g *DraftGenerator) Buffer(field DraftField) (*workspace.Buffer, error) {
	switch field {
	case FieldMessage:
		return g.message, nil
	case FieldInstruction:
		return g.instruction, nil
	default:
		return nil, fmt.Errorf("%w: unknown field %q", common.ErrValidation, field)
	}
}

// Generate requests three drafts. Blank inputs put the feature in the
// error state without calling the gateway.
func (g *DraftGenerator) Generate(ctx context.Context) error {
	msgText, instr := g.message.Text(), g.instruction.Text()
	if common.IsBlank(msgText) || common.IsBlank(instr) {
		g.st.fail(FeatureDrafts, MsgDraftsInput)
		return &FeatureError{Feature: FeatureDrafts, Message: MsgDraftsInput, Err: blankInput("message or instruction")}
	}
	sess := g.deps.Sessions.Current()
	if sess == nil {
		return errNoSession
	}
	if err := g.st.begin(FeatureDrafts); err != nil {
		return err
	}
	msg := MsgDrafts
	defer func() { g.st.finish(FeatureDrafts, msg) }()

	g.mu.Lock()
	g.drafts = nil
	g.mu.Unlock()

	drafts, err := g.deps.Gateway.GenerateDrafts(ctx, msgText, instr)
	if err != nil {
		g.deps.logger().Warn(ctx, "draft generation failed", "error", err)
		return &FeatureError{Feature: FeatureDrafts, Message: MsgDrafts, Err: err}
	}

	g.mu.Lock()
	g.drafts = drafts
	g.mu.Unlock()
	g.deps.record(ctx, sess, models.HistoryItem{
		Type:   models.OperationDraftGeneration,
		Input:  models.DraftPairInput(msgText, instr),
		Output: drafts,
	})
	msg = ""
	return nil
}

func (g *DraftGenerator) draft(index int) (models.Draft, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if index < 0 || index >= len(g.drafts) {
		return models.Draft{}, fmt.Errorf("%w: no draft %d", common.ErrValidation, index+1)
	}
	return g.drafts[index], nil
}

// PlayDraft speaks draft index (0-based). Only one draft plays at a time
// across the whole list.
func (g *DraftGenerator) PlayDraft(ctx context.Context, index int) error {
	d, err := g.draft(index)
	if err != nil {
		return err
	}
	if common.IsBlank(d.Text) {
		return blankInput("draft")
	}
	if err := g.st.begin(FeatureDraftSpeech); err != nil {
		return err
	}
	g.setPlaying(index)
	msg := MsgSpeech
	defer func() {
		g.setPlaying(-1)
		g.st.finish(FeatureDraftSpeech, msg)
	}()

	if err := g.deps.speak(ctx, g.deps.Sessions.Current(), d.Text); err != nil {
		g.deps.logger().Warn(ctx, "draft speech failed", "draft", index+1, "error", err)
		return &FeatureError{Feature: FeatureDraftSpeech, Message: MsgSpeech, Err: err}
	}
	msg = ""
	return nil
}

func (g *DraftGenerator) setPlaying(i int) {
	g.mu.Lock()
	g.playing = i
	g.mu.Unlock()
}

// CopyDraft puts draft index (0-based) on the clipboard.
func (g *DraftGenerator) CopyDraft(ctx context.Context, index int) error {
	d, err := g.draft(index)
	if err != nil {
		return err
	}
	if err := g.deps.copyText(ctx, d.Text); err != nil {
		g.st.fail(FeatureDraftInput, MsgCopy)
		return &FeatureError{Feature: FeatureDraftInput, Message: MsgCopy, Err: err}
	}
	return nil
}

// Paste appends the clipboard to field.
func (g *DraftGenerator) Paste(ctx context.Context, field DraftField) error {
	buf, err := g.Buffer(field)
	if err != nil {
		return err
	}
	if err := g.deps.paste(ctx, buf); err != nil {
		g.st.fail(FeatureDraftInput, MsgPaste)
		return &FeatureError{Feature: FeatureDraftInput, Message: MsgPaste, Err: err}
	}
	g.st.reset(FeatureDraftInput)
	return nil
}

// LoadFile appends a plain text file to field.
func (g *DraftGenerator) LoadFile(field DraftField, path string) error {
	buf, err := g.Buffer(field)
	if err != nil {
		return err
	}
	if err := workspace.DropFile(path, buf); err != nil {
		g.st.fail(FeatureDraftInput, MsgFile)
		return &FeatureError{Feature: FeatureDraftInput, Message: MsgFile, Err: err}
	}
	g.st.reset(FeatureDraftInput)
	return nil
}

// Dictate records into field until ctx is cancelled or the recognizer
// stops. Only one field records at a time.
func (g *DraftGenerator) Dictate(ctx context.Context, field DraftField, interim func(string)) error {
	buf, err := g.Buffer(field)
	if err != nil {
		return err
	}
	if err := g.st.begin(FeatureDraftInput); err != nil {
		return err
	}
	g.setRecording(field)
	msg := ""
	defer func() {
		g.setRecording("")
		if msg == "" {
			g.st.release(FeatureDraftInput)
			return
		}
		g.st.finish(FeatureDraftInput, msg)
	}()

	if err := workspace.Dictate(ctx, g.deps.Recognizer, buf, interim); err != nil {
		msg = dictationMessage(err)
		return &FeatureError{Feature: FeatureDraftInput, Message: msg, Err: err}
	}
	return nil
}

func (g *DraftGenerator) setRecording(f DraftField) {
	g.mu.Lock()
	g.recordingTo = f
	g.mu.Unlock()
}

// Clear empties both inputs.
func (g *DraftGenerator) Clear() {
	g.message.Clear()
	g.instruction.Clear()
}

// DraftGeneratorView is a copy of the panel for presentation.
type DraftGeneratorView struct {
	Message     string
	Instruction string
	Drafts      []models.Draft
	// PlayingIndex is the 0-based draft being played, or -1.
	PlayingIndex int
	RecordingTo  DraftField
	States       map[Feature]State
}

func (g *DraftGenerator) Snapshot() DraftGeneratorView {
	g.mu.Lock()
	v := DraftGeneratorView{
		Drafts:       append([]models.Draft(nil), g.drafts...),
		PlayingIndex: g.playing,
		RecordingTo:  g.recordingTo,
	}
	g.mu.Unlock()

	v.Message = g.message.Text()
	v.Instruction = g.instruction.Text()
	v.States = g.st.snapshot()
	return v
}

// State returns the state of one feature.
func (g *DraftGenerator) State(f Feature) State { return g.st.get(f) }
