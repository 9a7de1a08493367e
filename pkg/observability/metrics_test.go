package observability_test

import (
	"context"
	"errors"
	"testing"

	"github.com/aretw0/cellview/pkg/adapters/memory"
	"github.com/aretw0/cellview/pkg/decoder"
	"github.com/aretw0/cellview/pkg/domain"
	"github.com/aretw0/cellview/pkg/observability"
	"github.com/aretw0/cellview/pkg/render"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Parse(t *testing.T) {
	m := observability.NewMetrics(prometheus.NewRegistry())
	d := decoder.New(decoder.WithHooks(m.Hooks()), decoder.WithMaxPayloadSize(64))

	_, _ = d.Parse(domain.OutputPayload{Type: domain.MIMETable, Data: []byte(`{"rows":[]}`)})
	_, _ = d.Parse(domain.OutputPayload{Type: domain.MIMETable, Data: []byte(`{`)})
	_, _ = d.Parse(domain.OutputPayload{Type: "image/png", Data: nil})
	_, _ = d.Parse(domain.OutputPayload{Type: domain.MIMEJSON, Data: make([]byte, 65)})

	assert.Equal(t, 1.0, testutil.ToFloat64(m.Parses.WithLabelValues(string(domain.MIMETable), observability.OutcomeOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Parses.WithLabelValues(string(domain.MIMETable), observability.OutcomeMalformed)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Parses.WithLabelValues("other", observability.OutcomeUnsupported)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Parses.WithLabelValues(string(domain.MIMEJSON), observability.OutcomeTooLarge)))
}

func TestMetrics_Render(t *testing.T) {
	m := observability.NewMetrics(prometheus.NewRegistry())
	r := render.New(render.WithHooks(m.Hooks()))
	ctx := context.Background()

	require.NoError(t, r.Render(ctx, memory.NewRegion(), domain.MIMEChart, domain.JSONValue{Value: map[string]any{"values": []any{1.0}}}))
	require.NoError(t, r.Render(ctx, memory.NewRegion(), domain.MIMETable, domain.JSONValue{Value: map[string]any{"rows": "x"}}))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.Renders.WithLabelValues("chart", observability.OutcomeOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Renders.WithLabelValues("table", observability.OutcomeDegraded)))

	m.Hooks().OnRender(ctx, &domain.RenderEvent{Route: domain.RouteHTML, WriteErr: errors.New("down")})
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Renders.WithLabelValues("html", observability.OutcomeError)))
	assert.Equal(t, 3, testutil.CollectAndCount(m.RenderDuration))
}
