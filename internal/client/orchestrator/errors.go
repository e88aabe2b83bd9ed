package orchestrator

import "fmt"

// User-facing messages per failure.
const (
	MsgTone             = "Could not analyze tone. Please try again."
	MsgClarity          = "Could not check clarity. Please try again."
	MsgRewriteFormat    = "Could not rewrite text to be more %s."
	MsgSpeech           = "Could not play audio."
	MsgDrafts           = "Could not generate drafts. Please try again."
	MsgDraftsInput      = "Please provide both an incoming message and an instruction."
	MsgPaste            = "Failed to paste from clipboard. Please check clipboard permissions."
	MsgCopy             = "Failed to copy to clipboard."
	MsgFile             = "Please drop a valid .txt file."
	MsgVoiceUnsupported = "Voice input is not supported on this system."
	MsgDictation        = "Speech recognition error. Please check microphone permissions."
)

// FeatureError reports a failed feature. Error returns the message meant
// for the user; Unwrap exposes the cause.
type FeatureError struct {
	Feature Feature
	Message string
	Err     error
}

func (e *FeatureError) Error() string { return e.Message }

func (e *FeatureError) Unwrap() error { return e.Err }

func rewriteMessage(tone string) string {
	return fmt.Sprintf(MsgRewriteFormat, tone)
}
