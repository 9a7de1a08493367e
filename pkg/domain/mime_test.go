package domain_test

import (
	"context"
	"testing"

	"github.com/aretw0/cellview/pkg/domain"
	"github.com/stretchr/testify/assert"
)

func TestMIMEType_Route(t *testing.T) {
	tests := []struct {
		mime     domain.MIMEType
		route    domain.Route
		json     bool
		supports bool
	}{
		{domain.MIMECustomJSONOutput, domain.RouteUnknown, true, true},
		{domain.MIMEJSON, domain.RouteUnknown, true, true},
		{domain.MIMEHTML, domain.RouteHTML, false, true},
		{domain.MIMETable, domain.RouteTable, true, true},
		{domain.MIMEChart, domain.RouteChart, true, true},
		{"text/plain", domain.RouteUnknown, false, false},
		{"APPLICATION/VND.CODE.NOTEBOOK.MY-CUSTOM-TABLE", domain.RouteUnknown, false, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.mime), func(t *testing.T) {
			assert.Equal(t, tt.route, tt.mime.Route())
			assert.Equal(t, tt.json, tt.mime.IsJSON())
			assert.Equal(t, tt.supports, tt.mime.IsSupported())
		})
	}
}

func TestHTMLValue_Data(t *testing.T) {
	v := domain.HTMLValue{HTML: "<b>x</b>"}
	assert.Equal(t, map[string]any{"html": "<b>x</b>"}, v.Data())
	assert.Nil(t, domain.DataOf(nil))
}

func TestHooks_Merge(t *testing.T) {
	var calls []string
	a := domain.Hooks{OnRender: func(context.Context, *domain.RenderEvent) { calls = append(calls, "a") }}
	b := domain.Hooks{
		OnParse:  func(*domain.ParseEvent) { calls = append(calls, "parse") },
		OnRender: func(context.Context, *domain.RenderEvent) { calls = append(calls, "b") },
	}

	merged := a.Merge(b)
	merged.OnParse(&domain.ParseEvent{})
	merged.OnRender(context.Background(), &domain.RenderEvent{})

	assert.Equal(t, []string{"parse", "a", "b"}, calls)
	assert.Nil(t, domain.Hooks{}.Merge(domain.Hooks{}).OnParse)
}
