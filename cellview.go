package cellview

import (
	"context"
	"log/slog"

	"github.com/aretw0/cellview/internal/logging"
	"github.com/aretw0/cellview/pkg/decoder"
	"github.com/aretw0/cellview/pkg/domain"
	"github.com/aretw0/cellview/pkg/ports"
	"github.com/aretw0/cellview/pkg/render"
	"github.com/microcosm-cc/bluemonday"
)

// Version is the cellview release.
const Version = "0.3.0"

// Engine is the high-level entry point for the cellview library.
// It pairs the host-side Decoder with the display-side Renderer.
type Engine struct {
	decoder  *decoder.Decoder
	renderer *render.Renderer
	logger   *slog.Logger

	hooks         domain.Hooks
	escape        render.EscapePolicy
	sanitizeHTML  bool
	highlight     string
	maxSize       int
	maxSizeForced bool
}

var (
	_ ports.Decoder  = (*Engine)(nil)
	_ ports.Renderer = (*Engine)(nil)
)

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithHooks registers observability hooks.
func WithHooks(hooks domain.Hooks) Option {
	return func(e *Engine) {
		e.hooks = e.hooks.Merge(hooks)
	}
}

// WithEscapePolicy sets how interpolated content is escaped (default render.EscapeText).
func WithEscapePolicy(p render.EscapePolicy) Option {
	return func(e *Engine) {
		e.escape = p
	}
}

// WithHTMLSanitizer filters HTML payloads through bluemonday's UGC policy.
func WithHTMLSanitizer(enabled bool) Option {
	return func(e *Engine) {
		e.sanitizeHTML = enabled
	}
}

// WithHighlightStyle highlights the fallback JSON view with the named chroma style.
func WithHighlightStyle(name string) Option {
	return func(e *Engine) {
		e.highlight = name
	}
}

// WithMaxPayloadSize rejects payloads over n bytes (0 = unlimited).
// It takes precedence over the CELLVIEW_MAX_PAYLOAD_SIZE environment variable.
func WithMaxPayloadSize(n int) Option {
	return func(e *Engine) {
		e.maxSize = n
		e.maxSizeForced = true
	}
}

// New creates an Engine.
func New(opts ...Option) *Engine {
	e := &Engine{
		logger: logging.NewNop(),
		escape: render.EscapeText,
	}
	for _, opt := range opts {
		opt(e)
	}

	decOpts := []decoder.Option{
		decoder.WithLogger(e.logger),
		decoder.WithHooks(e.hooks),
	}
	if e.maxSizeForced {
		decOpts = append(decOpts, decoder.WithMaxPayloadSize(e.maxSize))
	}
	e.decoder = decoder.New(decOpts...)

	renderOpts := []render.Option{
		render.WithLogger(e.logger),
		render.WithHooks(e.hooks),
		render.WithEscapePolicy(e.escape),
		render.WithHighlightStyle(e.highlight),
	}
	if e.sanitizeHTML {
		renderOpts = append(renderOpts, render.WithHTMLSanitizer(bluemonday.UGCPolicy()))
	}
	e.renderer = render.New(renderOpts...)

	return e
}

// Parse decodes a tagged payload. See decoder.Decoder.Parse.
func (e *Engine) Parse(payload domain.OutputPayload) (domain.Value, error) {
	return e.decoder.Parse(payload)
}

// Format returns the markup for value without touching any region.
func (e *Engine) Format(mime domain.MIMEType, value domain.Value) string {
	return e.renderer.Format(mime, value)
}

// FormatError returns the inline error block for err.
func (e *Engine) FormatError(err error) string {
	return e.renderer.FormatError(err)
}

// Render clears region and writes the markup for value into it.
func (e *Engine) Render(ctx context.Context, region ports.Region, mime domain.MIMEType, value domain.Value) error {
	return e.renderer.Render(ctx, region, mime, value)
}

// Display parses payload and renders it into region.
// When parsing fails the error block is written into region and the parse error is
// returned, so a bad output is visible to both the user and the caller.
func (e *Engine) Display(ctx context.Context, region ports.Region, payload domain.OutputPayload) error {
	if region == nil {
		return render.ErrNilRegion
	}
	value, err := e.Parse(payload)
	if err != nil {
		e.logger.Warn("failed to parse output", "mime", payload.Type, "error", err)
		if werr := replace(ctx, region, e.FormatError(err)); werr != nil {
			e.logger.Error("region rejected error block", "mime", payload.Type, "error", werr)
		}
		return err
	}
	return e.Render(ctx, region, payload.Type, value)
}

func replace(ctx context.Context, region ports.Region, markup string) error {
	if r, ok := region.(ports.Replacer); ok {
		return r.Replace(ctx, markup)
	}
	if err := region.Clear(ctx); err != nil {
		return err
	}
	return region.Write(ctx, markup)
}
