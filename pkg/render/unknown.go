package render

import "github.com/aretw0/cellview/pkg/domain"

func (r *Renderer) renderUnknown(value domain.Value) (string, error) {
	text, err := IndentJSON(value)
	if err != nil {
		return "", err
	}

	body := r.text(text)
	if r.highlighter != nil {
		highlighted, err := r.highlighter.highlight(text)
		if err != nil {
			r.logger.Debug("highlighting failed, using plain text", "error", err)
		} else {
			body = highlighted
		}
	}

	return `<div class="unknown"><pre>` + body + `</pre></div>`, nil
}
