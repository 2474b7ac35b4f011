package relsdk

import (
	"context"
	"errors"
)

// ──────────────────────────────────────────────
// Model capability — optional, injected, unused by the core
// ──────────────────────────────────────────────

// EnrichFn is an injected large-language-model capability. No core analysis
// operation consults it: every decision above is deterministic. It exists so
// hosts can plug a model in once richer reasoning ships behind the same
// engine interfaces.
type EnrichFn func(ctx context.Context, prompt string) (string, error)

// ErrNoEnrichment is returned by Enrich when no model capability was
// configured.
var ErrNoEnrichment = errors.New("relsdk: no enrichment capability configured")

// Enrich invokes the configured model capability. Unlike the analysis
// operations this propagates errors: enrichment is an explicit host call,
// not part of the never-fail chat loop.
func (e *Engine) Enrich(ctx context.Context, prompt string) (string, error) {
	if e.enrichFn == nil {
		return "", ErrNoEnrichment
	}
	return e.enrichFn(ctx, prompt)
}
