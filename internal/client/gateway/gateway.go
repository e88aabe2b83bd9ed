// Package gateway is the contract layer between toneflow and the hosted
// language and speech model. Each operation is a single stateless
// request; structured results are validated before they are returned.
//
// Every failure, whether transport, HTTP status or response shape, wraps
// common.ErrService. A caller never receives a partially filled result.
package gateway

import (
	"context"

	"github.com/dmitrijs2005/toneflow/internal/client/models"
)

// Gateway issues model requests and parses typed results.
type Gateway interface {
	AnalyzeTone(ctx context.Context, text string) (models.ToneAnalysis, error)
	RewriteText(ctx context.Context, text, targetTone string) (string, error)
	CheckClarity(ctx context.Context, text string) (models.ClarityReport, error)
	GenerateDrafts(ctx context.Context, incomingMessage, instruction string) ([]models.Draft, error)
	// GenerateSpeech returns base64 encoded 16-bit little-endian mono PCM.
	GenerateSpeech(ctx context.Context, text string) (string, error)
}
