package render

import "github.com/aretw0/cellview/pkg/domain"

// HTMLSource returns the HTML a value carries: the html field, else the content
// field, else nothing.
func HTMLSource(value domain.Value) string {
	if v, ok := value.(domain.HTMLValue); ok {
		return v.HTML
	}
	if obj, ok := domain.DataOf(value).(map[string]any); ok {
		return firstPresent(obj, "html", "content")
	}
	return ""
}

// renderHTML writes the HTML source verbatim unless a sanitizer is configured.
func (r *Renderer) renderHTML(value domain.Value) string {
	markup := HTMLSource(value)
	if r.sanitizer != nil {
		return r.sanitizer.Sanitize(markup)
	}
	return markup
}

func firstPresent(obj map[string]any, keys ...string) string {
	for _, k := range keys {
		v, ok := obj[k]
		if !ok || v == nil || v == "" {
			continue
		}
		return CellText(v)
	}
	return ""
}
