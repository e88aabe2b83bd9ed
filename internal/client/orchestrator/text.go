package orchestrator

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/toneflow/internal/client/models"
	"github.com/dmitrijs2005/toneflow/internal/client/workspace"
	"github.com/dmitrijs2005/toneflow/internal/common"
)

// TextAnalysis drives the tone, clarity, rewrite and speech features over
// a single text buffer.
type TextAnalysis struct {
	deps Deps
	buf  *workspace.Buffer
	st   *tracker

	mu            sync.Mutex
	tone          *models.ToneAnalysis
	clarity       *models.ClarityReport
	rewritten     *string
	rewritingTone string
}

func NewTextAnalysis(deps Deps, buf *workspace.Buffer) *TextAnalysis {
	return &TextAnalysis{deps: deps, buf: buf, st: newTracker()}
}

func (t *TextAnalysis) Buffer() *workspace.Buffer { return t.buf }

// input returns the buffer text and session, or a validation error.
func (t *TextAnalysis) input() (string, *models.Session, error) {
	text := t.buf.Text()
	if common.IsBlank(text) {
		return "", nil, blankInput("text")
	}
	s := t.deps.Sessions.Current()
	if s == nil {
		return "", nil, errNoSession
	}
	return text, s, nil
}

// AnalyzeTone runs the tone feature on the buffer.
func (t *TextAnalysis) AnalyzeTone(ctx context.Context) error {
	text, sess, err := t.input()
	if err != nil {
		return err
	}
	if err := t.st.begin(FeatureTone); err != nil {
		return err
	}
	msg := MsgTone
	defer func() { t.st.finish(FeatureTone, msg) }()

	t.mu.Lock()
	t.tone = nil
	t.mu.Unlock()

	res, err := t.deps.Gateway.AnalyzeTone(ctx, text)
	if err != nil {
		t.deps.logger().Warn(ctx, "tone analysis failed", "error", err)
		return &FeatureError{Feature: FeatureTone, Message: MsgTone, Err: err}
	}

	t.mu.Lock()
	t.tone = &res
	t.mu.Unlock()
	t.deps.record(ctx, sess, models.HistoryItem{Type: models.OperationToneAnalysis, Input: models.TextInput(text), Output: res})
	msg = ""
	return nil
}

// CheckClarity runs the clarity feature on the buffer.
func (t *TextAnalysis) CheckClarity(ctx context.Context) error {
	text, sess, err := t.input()
	if err != nil {
		return err
	}
	if err := t.st.begin(FeatureClarity); err != nil {
		return err
	}
	msg := MsgClarity
	defer func() { t.st.finish(FeatureClarity, msg) }()

	t.mu.Lock()
	t.clarity = nil
	t.mu.Unlock()

	res, err := t.deps.Gateway.CheckClarity(ctx, text)
	if err != nil {
		t.deps.logger().Warn(ctx, "clarity check failed", "error", err)
		return &FeatureError{Feature: FeatureClarity, Message: MsgClarity, Err: err}
	}

	t.mu.Lock()
	t.clarity = &res
	t.mu.Unlock()
	t.deps.record(ctx, sess, models.HistoryItem{Type: models.OperationClarityCheck, Input: models.TextInput(text), Output: res})
	msg = ""
	return nil
}

// Rewrite rewrites the buffer toward tone.
func (t *TextAnalysis) Rewrite(ctx context.Context, tone string) error {
	text, sess, err := t.input()
	if err != nil {
		return err
	}
	if common.IsBlank(tone) {
		return blankInput("tone")
	}
	if err := t.st.begin(FeatureRewrite); err != nil {
		return err
	}
	msg := rewriteMessage(tone)
	defer func() {
		t.mu.Lock()
		t.rewritingTone = ""
		t.mu.Unlock()
		t.st.finish(FeatureRewrite, msg)
	}()

	t.mu.Lock()
	t.rewritingTone = tone
	t.rewritten = nil
	t.mu.Unlock()

	res, err := t.deps.Gateway.RewriteText(ctx, text, tone)
	if err != nil {
		t.deps.logger().Warn(ctx, "rewrite failed", "tone", tone, "error", err)
		return &FeatureError{Feature: FeatureRewrite, Message: msg, Err: err}
	}

	t.mu.Lock()
	t.rewritten = &res
	t.mu.Unlock()
	t.deps.record(ctx, sess, models.HistoryItem{
		Type:   models.OperationTextRewrite,
		Input:  models.TextInput(fmt.Sprintf("Rewrite to %s: %s", tone, text)),
		Output: res,
	})
	msg = ""
	return nil
}

// Speak synthesizes and plays text. Only one playback runs at a time;
// a call while playing returns common.ErrBusy.
func (t *TextAnalysis) Speak(ctx context.Context, text string) error {
	if common.IsBlank(text) {
		return blankInput("speech text")
	}
	if err := t.st.begin(FeatureSpeech); err != nil {
		return err
	}
	msg := MsgSpeech
	defer func() { t.st.finish(FeatureSpeech, msg) }()

	if err := t.deps.speak(ctx, t.deps.Sessions.Current(), text); err != nil {
		t.deps.logger().Warn(ctx, "speech failed", "error", err)
		return &FeatureError{Feature: FeatureSpeech, Message: MsgSpeech, Err: err}
	}
	msg = ""
	return nil
}

// PlayRewrite speaks the last rewrite.
func (t *TextAnalysis) PlayRewrite(ctx context.Context) error {
	t.mu.Lock()
	r := t.rewritten
	t.mu.Unlock()
	if r == nil {
		return blankInput("rewrite")
	}
	return t.Speak(ctx, *r)
}

// CopyRewrite puts the last rewrite on the clipboard.
func (t *TextAnalysis) CopyRewrite(ctx context.Context) error {
	t.mu.Lock()
	r := t.rewritten
	t.mu.Unlock()
	if r == nil {
		return blankInput("rewrite")
	}
	if err := t.deps.copyText(ctx, *r); err != nil {
		t.st.fail(FeatureInput, MsgCopy)
		return &FeatureError{Feature: FeatureInput, Message: MsgCopy, Err: err}
	}
	return nil
}

// Paste appends the clipboard to the buffer.
func (t *TextAnalysis) Paste(ctx context.Context) error {
	if err := t.deps.paste(ctx, t.buf); err != nil {
		t.st.fail(FeatureInput, MsgPaste)
		return &FeatureError{Feature: FeatureInput, Message: MsgPaste, Err: err}
	}
	t.st.reset(FeatureInput)
	return nil
}

// LoadFile appends a plain text file to the buffer.
func (t *TextAnalysis) LoadFile(path string) error {
	if err := workspace.DropFile(path, t.buf); err != nil {
		t.st.fail(FeatureInput, MsgFile)
		return &FeatureError{Feature: FeatureInput, Message: MsgFile, Err: err}
	}
	t.st.reset(FeatureInput)
	return nil
}

// Dictate appends final transcript segments to the buffer until ctx is
// cancelled or the recognizer stops. The input feature stays loading
// while recording.
func (t *TextAnalysis) Dictate(ctx context.Context, interim func(string)) error {
	if err := t.st.begin(FeatureInput); err != nil {
		return err
	}
	msg := ""
	defer func() {
		if msg == "" {
			t.st.release(FeatureInput)
			return
		}
		t.st.finish(FeatureInput, msg)
	}()

	if err := workspace.Dictate(ctx, t.deps.Recognizer, t.buf, interim); err != nil {
		msg = dictationMessage(err)
		return &FeatureError{Feature: FeatureInput, Message: msg, Err: err}
	}
	return nil
}

// TextAnalysisView is a copy of the panel for presentation.
type TextAnalysisView struct {
	Text          string
	WordCount     int
	Tone          *models.ToneAnalysis
	Clarity       *models.ClarityReport
	Rewritten     *string
	RewritingTone string
	IsPlaying     bool
	States        map[Feature]State
}

func (t *TextAnalysis) Snapshot() TextAnalysisView {
	t.mu.Lock()
	v := TextAnalysisView{RewritingTone: t.rewritingTone}
	if t.tone != nil {
		c := *t.tone
		v.Tone = &c
	}
	if t.clarity != nil {
		c := *t.clarity
		c.Suggestions = append([]string(nil), t.clarity.Suggestions...)
		v.Clarity = &c
	}
	if t.rewritten != nil {
		c := *t.rewritten
		v.Rewritten = &c
	}
	t.mu.Unlock()

	v.Text = t.buf.Text()
	v.WordCount = t.buf.WordCount()
	v.States = t.st.snapshot()
	v.IsPlaying = v.States[FeatureSpeech].Loading()
	return v
}

// State returns the state of one feature.
func (t *TextAnalysis) State(f Feature) State { return t.st.get(f) }
