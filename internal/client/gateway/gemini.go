package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrijs2005/toneflow/internal/client/models"
	"github.com/dmitrijs2005/toneflow/internal/common"
	"github.com/dmitrijs2005/toneflow/internal/logging"
	"github.com/dmitrijs2005/toneflow/internal/netx"
)

// Options configures a Gemini gateway. Zero fields take defaults.
type Options struct {
	APIKey      string
	BaseURL     string
	TextModel   string
	SpeechModel string
	Voice       string
	// Timeout bounds each request; 0 means none.
	Timeout time.Duration
	// HTTPClient overrides the client built from Timeout.
	HTTPClient *http.Client
	Logger     logging.Logger
}

const (
	DefaultBaseURL     = "https://generativelanguage.googleapis.com"
	DefaultTextModel   = "gemini-2.5-flash"
	DefaultSpeechModel = "gemini-2.5-flash-preview-tts"
	DefaultVoice       = "Kore"
)

var errMissingAPIKey = errors.New("missing API key")

// Gemini implements Gateway over the Gemini REST API.
type Gemini struct {
	apiKey      string
	baseURL     string
	textModel   string
	speechModel string
	voice       string
	http        *http.Client
	log         logging.Logger
}

var _ Gateway = (*Gemini)(nil)

func NewGemini(opts Options) *Gemini {
	g := &Gemini{
		apiKey:      strings.TrimSpace(opts.APIKey),
		baseURL:     strings.TrimRight(strings.TrimSpace(opts.BaseURL), "/"),
		textModel:   opts.TextModel,
		speechModel: opts.SpeechModel,
		voice:       opts.Voice,
		http:        opts.HTTPClient,
		log:         opts.Logger,
	}
	if g.baseURL == "" {
		g.baseURL = DefaultBaseURL
	}
	if g.textModel == "" {
		g.textModel = DefaultTextModel
	}
	if g.speechModel == "" {
		g.speechModel = DefaultSpeechModel
	}
	if g.voice == "" {
		g.voice = DefaultVoice
	}
	if g.http == nil {
		g.http = &http.Client{Timeout: opts.Timeout}
	}
	if g.log == nil {
		g.log = logging.Discard()
	}
	return g
}

// serviceError tags err as a model service failure for op.
func serviceError(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", common.ErrService, op, err)
}

func (g *Gemini) generate(ctx context.Context, op, model string, req *generateRequest) (*generateResponse, error) {
	if g.apiKey == "" {
		return nil, serviceError(op, errMissingAPIKey)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", g.baseURL, model)
	headers := map[string]string{"x-goog-api-key": g.apiKey}

	start := time.Now()
	var resp generateResponse
	err := netx.PostJSON(ctx, g.http, url, headers, req, &resp)
	g.log.Debug(ctx, "model request", "op", op, "model", model, "latency", time.Since(start), "ok", err == nil)
	if err != nil {
		return nil, serviceError(op, err)
	}

	if len(resp.Candidates) == 0 {
		if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
			return nil, serviceError(op, fmt.Errorf("prompt blocked: %s", resp.PromptFeedback.BlockReason))
		}
		return nil, serviceError(op, errors.New("response has no candidates"))
	}
	return &resp, nil
}

func (g *Gemini) generateJSON(ctx context.Context, op, prompt string, schema *Schema, out any) error {
	resp, err := g.generate(ctx, op, g.textModel, &generateRequest{
		Contents: userText(prompt),
		GenerationConfig: &generationConfig{
			ResponseMimeType: "application/json",
			ResponseSchema:   schema,
		},
	})
	if err != nil {
		return err
	}

	dec := json.NewDecoder(strings.NewReader(resp.text()))
	dec.DisallowUnknownFields()
	if err := dec.Decode(out); err != nil {
		return serviceError(op, fmt.Errorf("decode structured output: %w", err))
	}
	return nil
}

func (g *Gemini) AnalyzeTone(ctx context.Context, text string) (models.ToneAnalysis, error) {
	var raw struct {
		Tone   *string `json:"tone"`
		Emoji  *string `json:"emoji"`
		Reason *string `json:"reason"`
	}
	if err := g.generateJSON(ctx, "analyze tone", tonePrompt(text), toneSchema, &raw); err != nil {
		return models.ToneAnalysis{}, err
	}

	res := models.ToneAnalysis{Tone: deref(raw.Tone), Emoji: deref(raw.Emoji), Reason: deref(raw.Reason)}
	if common.IsBlank(res.Tone) || common.IsBlank(res.Emoji) || common.IsBlank(res.Reason) {
		return models.ToneAnalysis{}, serviceError("analyze tone", errors.New("tone, emoji and reason are required"))
	}
	return res, nil
}

func (g *Gemini) RewriteText(ctx context.Context, text, targetTone string) (string, error) {
	resp, err := g.generate(ctx, "rewrite text", g.textModel, &generateRequest{
		Contents: userText(rewritePrompt(text, targetTone)),
	})
	if err != nil {
		return "", err
	}
	out := strings.TrimSpace(resp.text())
	if out == "" {
		return "", serviceError("rewrite text", errors.New("empty rewrite"))
	}
	return out, nil
}

func (g *Gemini) CheckClarity(ctx context.Context, text string) (models.ClarityReport, error) {
	var raw struct {
		ClarityScore *int     `json:"clarityScore"`
		Suggestions  []string `json:"suggestions"`
	}
	if err := g.generateJSON(ctx, "check clarity", clarityPrompt(text), claritySchema, &raw); err != nil {
		return models.ClarityReport{}, err
	}

	switch {
	case raw.ClarityScore == nil:
		return models.ClarityReport{}, serviceError("check clarity", errors.New("clarityScore is required"))
	case *raw.ClarityScore < 0 || *raw.ClarityScore > 100:
		return models.ClarityReport{}, serviceError("check clarity", fmt.Errorf("clarityScore %d out of range", *raw.ClarityScore))
	case raw.Suggestions == nil:
		return models.ClarityReport{}, serviceError("check clarity", errors.New("suggestions are required"))
	case len(raw.Suggestions) > models.MaxSuggestions:
		return models.ClarityReport{}, serviceError("check clarity", fmt.Errorf("%d suggestions, at most %d allowed", len(raw.Suggestions), models.MaxSuggestions))
	}
	return models.ClarityReport{ClarityScore: *raw.ClarityScore, Suggestions: raw.Suggestions}, nil
}

func (g *Gemini) GenerateDrafts(ctx context.Context, incomingMessage, instruction string) ([]models.Draft, error) {
	var raw []struct {
		Tone *string `json:"tone"`
		Text *string `json:"text"`
	}
	if err := g.generateJSON(ctx, "generate drafts", draftsPrompt(incomingMessage, instruction), draftsSchema, &raw); err != nil {
		return nil, err
	}
	if len(raw) != models.DraftCount {
		return nil, serviceError("generate drafts", fmt.Errorf("got %d drafts, want %d", len(raw), models.DraftCount))
	}

	drafts := make([]models.Draft, 0, len(raw))
	for i, d := range raw {
		tone, text := deref(d.Tone), deref(d.Text)
		if common.IsBlank(tone) || common.IsBlank(text) {
			return nil, serviceError("generate drafts", fmt.Errorf("draft %d lacks tone or text", i+1))
		}
		drafts = append(drafts, models.Draft{Tone: tone, Text: text})
	}
	return drafts, nil
}

func (g *Gemini) GenerateSpeech(ctx context.Context, text string) (string, error) {
	resp, err := g.generate(ctx, "generate speech", g.speechModel, &generateRequest{
		Contents: []content{{Parts: []part{{Text: text}}}},
		GenerationConfig: &generationConfig{
			ResponseModalities: []string{"AUDIO"},
			SpeechConfig: &speechConfig{
				VoiceConfig: voiceConfig{PrebuiltVoiceConfig: prebuiltVoiceConfig{VoiceName: g.voice}},
			},
		},
	})
	if err != nil {
		return "", err
	}
	data := resp.audio()
	if data == "" {
		return "", serviceError("generate speech", errors.New("no audio data received"))
	}
	return data, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
