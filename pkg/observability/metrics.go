package observability

import (
	"context"
	"errors"

	"github.com/aretw0/cellview/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	OutcomeOK          = "ok"
	OutcomeUnsupported = "unsupported"
	OutcomeMalformed   = "malformed"
	OutcomeTooLarge    = "too_large"
	OutcomeDegraded    = "degraded"
	OutcomeError       = "error"
)

// Metrics records parse and render activity.
type Metrics struct {
	Parses         *prometheus.CounterVec
	Renders        *prometheus.CounterVec
	RenderDuration *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Parses: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cellview_parse_total",
				Help: "Total number of parsed output payloads",
			},
			[]string{"mime", "outcome"},
		),
		Renders: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cellview_render_total",
				Help: "Total number of render calls",
			},
			[]string{"route", "outcome"},
		),
		RenderDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "cellview_render_duration_seconds",
				Help:    "Duration of render calls",
				Buckets: prometheus.ExponentialBuckets(0.00005, 4, 8),
			},
			[]string{"route"},
		),
	}
	reg.MustRegister(m.Parses, m.Renders, m.RenderDuration)
	return m
}

// Hooks returns hooks that feed the collectors.
func (m *Metrics) Hooks() domain.Hooks {
	return domain.Hooks{
		OnParse: func(e *domain.ParseEvent) {
			m.Parses.WithLabelValues(mimeLabel(e.Type), parseOutcome(e.Err)).Inc()
		},
		OnRender: func(ctx context.Context, e *domain.RenderEvent) {
			outcome := OutcomeOK
			switch {
			case e.WriteErr != nil:
				outcome = OutcomeError
			case e.Err != nil:
				outcome = OutcomeDegraded
			}
			route := string(e.Route)
			m.Renders.WithLabelValues(route, outcome).Inc()
			m.RenderDuration.WithLabelValues(route).Observe(e.Duration.Seconds())
		},
	}
}

// mimeLabel bounds label cardinality: unrecognized tags share one label.
func mimeLabel(t domain.MIMEType) string {
	if t.IsSupported() {
		return string(t)
	}
	return "other"
}

func parseOutcome(err error) string {
	var (
		unsupported *domain.UnsupportedTypeError
		malformed   *domain.MalformedJSONError
	)
	switch {
	case err == nil:
		return OutcomeOK
	case errors.As(err, &unsupported):
		return OutcomeUnsupported
	case errors.As(err, &malformed):
		return OutcomeMalformed
	case errors.Is(err, domain.ErrPayloadTooLarge):
		return OutcomeTooLarge
	}
	return OutcomeError
}
