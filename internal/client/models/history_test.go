package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryInput_StringAndPairOnTheWire(t *testing.T) {
	b, err := json.Marshal(TextInput("hello"))
	require.NoError(t, err)
	assert.JSONEq(t, `"hello"`, string(b))

	b, err = json.Marshal(DraftPairInput("msg", "say no"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"incomingMessage":"msg","instruction":"say no"}`, string(b))
}

func TestHistoryItem_DecodesOutputByType(t *testing.T) {
	raw := `[
	 {"id":"a","timestamp":"2024-05-01T10:00:00.000Z","type":"Tone Analysis","input":"hi","output":{"tone":"Casual","emoji":"😀","reason":"short"}},
	 {"id":"b","timestamp":"2024-05-01T10:00:01.000Z","type":"Text Rewrite","input":"Rewrite to Formal: hi","output":"Greetings."},
	 {"id":"c","timestamp":"2024-05-01T10:00:02.000Z","type":"Clarity Check","input":"hi","output":{"clarityScore":88,"suggestions":["x"]}},
	 {"id":"d","timestamp":"2024-05-01T10:00:03.000Z","type":"Draft Generation","input":{"incomingMessage":"m","instruction":"i"},"output":[{"tone":"Direct","text":"t"}]}
	]`

	var items []HistoryItem
	require.NoError(t, json.Unmarshal([]byte(raw), &items))
	require.Len(t, items, 4)

	assert.Equal(t, ToneAnalysis{Tone: "Casual", Emoji: "😀", Reason: "short"}, items[0].Output)
	assert.Equal(t, "Greetings.", items[1].Output)
	assert.Equal(t, ClarityReport{ClarityScore: 88, Suggestions: []string{"x"}}, items[2].Output)
	assert.Equal(t, []Draft{{Tone: "Direct", Text: "t"}}, items[3].Output)

	require.NotNil(t, items[3].Input.Draft)
	assert.Equal(t, "m", items[3].Input.Draft.IncomingMessage)
	assert.Equal(t, "Rewrite to Formal: hi", items[1].Input.Text)
	assert.Equal(t, time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC), items[0].Timestamp)
}

func TestHistoryItem_UnknownTypeFails(t *testing.T) {
	var h HistoryItem
	err := json.Unmarshal([]byte(`{"id":"x","type":"Poem","input":"a","output":"b"}`), &h)
	require.ErrorIs(t, err, ErrUnknownOperation)
}

func TestHistoryItem_MismatchedOutputFails(t *testing.T) {
	var h HistoryItem
	err := json.Unmarshal([]byte(`{"id":"x","type":"Clarity Check","input":"a","output":"oops"}`), &h)
	require.Error(t, err)
}

func TestHistoryInput_String(t *testing.T) {
	assert.Equal(t, "abc", TextInput("abc").String())
	assert.Equal(t, "Message: m | Instruction: i", DraftPairInput("m", "i").String())
}

func TestLookupTone(t *testing.T) {
	opt, ok := LookupTone(" formal ")
	require.True(t, ok)
	assert.Equal(t, "Formal", opt.Name)
	assert.Equal(t, "Professional and structured", opt.Description)

	_, ok = LookupTone("sarcastic")
	assert.False(t, ok)
	assert.Len(t, ToneOptions, 8)
}
