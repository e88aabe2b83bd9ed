package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// OperationType classifies a history entry. Values match the stored JSON.
type OperationType string

const (
	OperationToneAnalysis    OperationType = "Tone Analysis"
	OperationTextRewrite     OperationType = "Text Rewrite"
	OperationClarityCheck    OperationType = "Clarity Check"
	OperationDraftGeneration OperationType = "Draft Generation"
)

// DraftInput is the input pair of a draft generation request.
type DraftInput struct {
	IncomingMessage string `json:"incomingMessage"`
	Instruction     string `json:"instruction"`
}

// HistoryInput holds either raw Text or a Draft pair. On the wire it is a
// JSON string or an {incomingMessage, instruction} object.
type HistoryInput struct {
	Text  string
	Draft *DraftInput
}

// TextInput wraps a raw string input.
func TextInput(s string) HistoryInput { return HistoryInput{Text: s} }

// DraftPairInput wraps a draft request input.
func DraftPairInput(message, instruction string) HistoryInput {
	return HistoryInput{Draft: &DraftInput{IncomingMessage: message, Instruction: instruction}}
}

func (in HistoryInput) MarshalJSON() ([]byte, error) {
	if in.Draft != nil {
		return json.Marshal(in.Draft)
	}
	return json.Marshal(in.Text)
}

func (in *HistoryInput) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*in = HistoryInput{Text: s}
		return nil
	}
	var d DraftInput
	if err := json.Unmarshal(b, &d); err != nil {
		return fmt.Errorf("history input: %w", err)
	}
	*in = HistoryInput{Draft: &d}
	return nil
}

// String renders the input for display.
func (in HistoryInput) String() string {
	if in.Draft != nil {
		return fmt.Sprintf("Message: %s | Instruction: %s", in.Draft.IncomingMessage, in.Draft.Instruction)
	}
	return in.Text
}

// HistoryItem records one successful operation. Output holds a
// ToneAnalysis, a string, a ClarityReport or a []Draft depending on Type.
type HistoryItem struct {
	ID        string        `json:"id"`
	Timestamp time.Time     `json:"timestamp"`
	Type      OperationType `json:"type"`
	Input     HistoryInput  `json:"input"`
	Output    any           `json:"output"`
}

var ErrUnknownOperation = errors.New("unknown operation type")

type historyItemWire struct {
	ID        string          `json:"id"`
	Timestamp time.Time       `json:"timestamp"`
	Type      OperationType   `json:"type"`
	Input     HistoryInput    `json:"input"`
	Output    json.RawMessage `json:"output"`
}

func (h *HistoryItem) UnmarshalJSON(b []byte) error {
	var w historyItemWire
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	out, err := decodeOutput(w.Type, w.Output)
	if err != nil {
		return err
	}
	*h = HistoryItem{ID: w.ID, Timestamp: w.Timestamp, Type: w.Type, Input: w.Input, Output: out}
	return nil
}

func decodeOutput(t OperationType, raw json.RawMessage) (any, error) {
	switch t {
	case OperationToneAnalysis:
		var v ToneAnalysis
		return v, json.Unmarshal(raw, &v)
	case OperationTextRewrite:
		var v string
		return v, json.Unmarshal(raw, &v)
	case OperationClarityCheck:
		var v ClarityReport
		return v, json.Unmarshal(raw, &v)
	case OperationDraftGeneration:
		var v []Draft
		return v, json.Unmarshal(raw, &v)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownOperation, t)
	}
}
