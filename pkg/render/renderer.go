package render

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/aretw0/cellview/internal/logging"
	"github.com/aretw0/cellview/pkg/domain"
	"github.com/aretw0/cellview/pkg/ports"
	"github.com/microcosm-cc/bluemonday"
)

// ErrNilRegion is returned by Render when no region is given.
var ErrNilRegion = errors.New("render: nil region")

// Renderer formats decoded values as HTML. It holds no per-call state and is safe
// for concurrent use.
type Renderer struct {
	escape      EscapePolicy
	sanitizer   *bluemonday.Policy
	highlighter *highlighter
	hooks       domain.Hooks
	logger      *slog.Logger
}

var _ ports.Renderer = (*Renderer)(nil)

// New creates a Renderer.
func New(opts ...Option) *Renderer {
	r := &Renderer{
		escape: EscapeText,
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render clears region and writes the markup for value into it.
// Content problems are rendered as an error block; only a region failure is returned.
func (r *Renderer) Render(ctx context.Context, region ports.Region, mime domain.MIMEType, value domain.Value) error {
	if region == nil {
		return ErrNilRegion
	}
	start := time.Now()

	var (
		markup    string
		formatErr error
		err       error
	)
	if replacer, ok := region.(ports.Replacer); ok {
		markup, formatErr = r.format(mime, value)
		err = replacer.Replace(ctx, markup)
	} else if err = region.Clear(ctx); err == nil {
		markup, formatErr = r.format(mime, value)
		err = region.Write(ctx, markup)
	}

	event := &domain.RenderEvent{
		Timestamp: start,
		Type:      mime,
		Route:     mime.Route(),
		Err:       formatErr,
		WriteErr:  err,
	}
	if err != nil {
		r.logger.Error("region rejected markup", "mime", mime, "error", err)
	}
	event.Duration = time.Since(start)
	if r.hooks.OnRender != nil {
		r.hooks.OnRender(ctx, event)
	}

	if err != nil {
		return fmt.Errorf("failed to write region: %w", err)
	}
	return nil
}

// Format returns the markup for value without touching any region. It never panics.
func (r *Renderer) Format(mime domain.MIMEType, value domain.Value) string {
	markup, _ := r.format(mime, value)
	return markup
}

// FormatError returns the error block for err.
func (r *Renderer) FormatError(err error) string {
	return r.errorBlock(err.Error())
}

// format returns the markup for value and, when the content degraded to an error
// block, the error behind it.
func (r *Renderer) format(mime domain.MIMEType, value domain.Value) (markup string, err error) {
	route := mime.Route()
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("%v", p)
			markup = r.errorBlock(err.Error())
		}
		if err != nil {
			r.logger.Warn("output rendered as error block", "mime", mime, "route", route, "error", err)
		}
	}()

	r.logger.Debug("dispatching output", "mime", mime, "route", route)

	data := domain.DataOf(value)
	switch route {
	case domain.RouteHTML:
		return r.renderHTML(value), nil
	case domain.RouteTable:
		markup, err = r.renderTable(data)
	case domain.RouteChart:
		markup, err = r.renderChart(data)
	default:
		markup, err = r.renderUnknown(value)
	}

	if err != nil {
		return r.errorBlock(err.Error()), err
	}
	return markup, nil
}
