package domain

import (
	"context"
	"time"
)

// ParseEvent describes one completed parse call.
type ParseEvent struct {
	Timestamp time.Time
	Type      MIMEType
	Size      int
	Duration  time.Duration
	Err       error
}

// RenderEvent describes one completed render call.
type RenderEvent struct {
	Timestamp time.Time
	Type      MIMEType
	Route     Route
	Duration  time.Duration
	// Err is set when the content was replaced by an error block.
	Err error
	// WriteErr is the region failure that made Render return an error.
	WriteErr error
}

// Hooks defines callbacks for parser and renderer observability.
type Hooks struct {
	OnParse  func(*ParseEvent)
	OnRender func(context.Context, *RenderEvent)
}

// Merge returns hooks that call h first and then other.
func (h Hooks) Merge(other Hooks) Hooks {
	return Hooks{
		OnParse:  mergeParse(h.OnParse, other.OnParse),
		OnRender: mergeRender(h.OnRender, other.OnRender),
	}
}

func mergeParse(a, b func(*ParseEvent)) func(*ParseEvent) {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	return func(e *ParseEvent) {
		a(e)
		b(e)
	}
}

func mergeRender(a, b func(context.Context, *RenderEvent)) func(context.Context, *RenderEvent) {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	return func(ctx context.Context, e *RenderEvent) {
		a(ctx, e)
		b(ctx, e)
	}
}
