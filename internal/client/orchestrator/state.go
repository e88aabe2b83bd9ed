package orchestrator

import (
	"fmt"
	"maps"
	"sync"

	"github.com/dmitrijs2005/toneflow/internal/common"
)

// Feature names an independently tracked operation.
type Feature string

const (
	FeatureTone        Feature = "tone"
	FeatureClarity     Feature = "clarity"
	FeatureRewrite     Feature = "rewrite"
	FeatureSpeech      Feature = "speech"
	FeatureInput       Feature = "input"
	FeatureDrafts      Feature = "drafts"
	FeatureDraftSpeech Feature = "draft_speech"
	FeatureDraftInput  Feature = "draft_input"
)

// Status is the lifecycle position of a feature.
type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusSuccess
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusLoading:
		return "loading"
	case StatusSuccess:
		return "success"
	case StatusError:
		return "error"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// State is the status of one feature plus its user-facing error message.
type State struct {
	Status Status
	Err    string
}

func (s State) Loading() bool { return s.Status == StatusLoading }

// tracker holds the state of every feature of one panel.
type tracker struct {
	mu     sync.Mutex
	states map[Feature]State
}

func newTracker() *tracker {
	return &tracker{states: make(map[Feature]State)}
}

// begin moves f to loading and clears its error. A feature that is
// already loading yields common.ErrBusy.
func (t *tracker) begin(f Feature) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.states[f].Status == StatusLoading {
		return fmt.Errorf("%w: %s", common.ErrBusy, f)
	}
	t.states[f] = State{Status: StatusLoading}
	return nil
}

// finish ends the run that called begin: success when msg is empty,
// error otherwise. release ends it back at idle. Only the owner of the
// loading state calls them.
func (t *tracker) finish(f Feature, msg string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.set(f, msg)
}

func (t *tracker) release(f Feature) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.states, f)
}

func (t *tracker) set(f Feature, msg string) {
	if msg == "" {
		t.states[f] = State{Status: StatusSuccess}
		return
	}
	t.states[f] = State{Status: StatusError, Err: msg}
}

// fail records an error outside a run. A loading feature is left alone;
// the result reports whether the state changed.
func (t *tracker) fail(f Feature, msg string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.states[f].Status == StatusLoading {
		return false
	}
	t.set(f, msg)
	return true
}

// reset returns f to idle unless it is loading.
func (t *tracker) reset(f Feature) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.states[f].Status == StatusLoading {
		return false
	}
	delete(t.states, f)
	return true
}

func (t *tracker) get(f Feature) State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.states[f]
}

func (t *tracker) snapshot() map[Feature]State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return maps.Clone(t.states)
}
