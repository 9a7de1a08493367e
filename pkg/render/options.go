package render

import (
	"log/slog"

	"github.com/aretw0/cellview/pkg/domain"
	"github.com/microcosm-cc/bluemonday"
)

// EscapePolicy controls whether interpolated content is HTML-escaped.
type EscapePolicy int

const (
	// EscapeText escapes every interpolated string except HTML payloads.
	EscapeText EscapePolicy = iota
	// EscapeNone interpolates content verbatim. User content can inject markup.
	EscapeNone
)

// ParseEscapePolicy maps "text" and "none" to their policies.
func ParseEscapePolicy(s string) (EscapePolicy, bool) {
	switch s {
	case "", "text":
		return EscapeText, true
	case "none":
		return EscapeNone, true
	}
	return EscapeText, false
}

func (p EscapePolicy) String() string {
	if p == EscapeNone {
		return "none"
	}
	return "text"
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithEscapePolicy sets the escaping policy (default EscapeText).
func WithEscapePolicy(p EscapePolicy) Option {
	return func(r *Renderer) {
		r.escape = p
	}
}

// WithHTMLSanitizer filters HTML payloads through policy before they are written.
// A nil policy writes HTML payloads verbatim.
func WithHTMLSanitizer(policy *bluemonday.Policy) Option {
	return func(r *Renderer) {
		r.sanitizer = policy
	}
}

// WithHighlightStyle enables syntax highlighting of the fallback JSON view using the
// named chroma style. An empty name disables highlighting.
func WithHighlightStyle(name string) Option {
	return func(r *Renderer) {
		r.highlighter = newHighlighter(name)
	}
}

// WithHooks registers observability hooks.
func WithHooks(hooks domain.Hooks) Option {
	return func(r *Renderer) {
		r.hooks = hooks
	}
}

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Renderer) {
		r.logger = logger
	}
}
