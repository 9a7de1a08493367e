package tui

import (
	"fmt"
	"strings"

	"github.com/aretw0/cellview/pkg/domain"
	"github.com/aretw0/cellview/pkg/render"
)

var sparkBlocks = []rune("▁▂▃▄▅▆▇█")

// Markdown converts a decoded value into a Markdown preview for the terminal,
// following the same routes and shape rules as the HTML renderer.
func Markdown(mime domain.MIMEType, value domain.Value) string {
	switch mime.Route() {
	case domain.RouteHTML:
		return fence("html", render.HTMLSource(value))
	case domain.RouteTable:
		return tableMarkdown(domain.DataOf(value))
	case domain.RouteChart:
		return chartMarkdown(domain.DataOf(value))
	default:
		return jsonMarkdown(value)
	}
}

// Preview renders value for a terminal using glamour with the given style.
func Preview(mime domain.MIMEType, value domain.Value, style string, width int) (string, error) {
	r, err := NewRenderer(style, width)
	if err != nil {
		return "", fmt.Errorf("failed to create terminal renderer: %w", err)
	}
	return r(Markdown(mime, value))
}

func tableMarkdown(data any) string {
	table, err := render.DecodeTable(data)
	if err != nil {
		return errorMarkdown(err.Error())
	}

	var headers []any
	if table.HasHeaders {
		headers = table.Headers
	}
	width := len(headers)
	for _, row := range table.Rows {
		width = max(width, len(row))
	}
	if width == 0 {
		return "_empty table_\n"
	}

	var b strings.Builder
	writeRow(&b, headers, width)
	b.WriteString("|" + strings.Repeat(" --- |", width) + "\n")
	for _, row := range table.Rows {
		writeRow(&b, row, width)
	}
	return b.String()
}

func writeRow(b *strings.Builder, cells []any, width int) {
	b.WriteString("|")
	for i := 0; i < width; i++ {
		text := ""
		if i < len(cells) {
			text = strings.ReplaceAll(render.CellText(cells[i]), "|", `\|`)
			text = strings.ReplaceAll(text, "\n", " ")
		}
		b.WriteString(" " + text + " |")
	}
	b.WriteString("\n")
}

func chartMarkdown(data any) string {
	chart, err := render.DecodeChart(data)
	if err != nil {
		return errorMarkdown(err.Error())
	}

	labels := make([]string, len(chart.Values))
	for i, v := range chart.Values {
		labels[i] = render.CellText(v)
	}

	var b strings.Builder
	b.WriteString("### " + chart.Title + "\n\n")
	b.WriteString("`" + Sparkline(chart.Values) + "`\n\n")
	if len(labels) > 0 {
		b.WriteString(strings.Join(labels, ", ") + "\n")
	}
	return b.String()
}

// Sparkline draws values with block characters on the same scale as the SVG chart:
// the top is the largest value floored at 1, the bottom is 0.
func Sparkline(values []float64) string {
	points := render.ChartPoints(values)
	out := make([]rune, len(points))
	for i, p := range points {
		// Y runs from 100 (zero) up to 10 (the maximum).
		level := (100 - p.Y) / 90
		idx := int(level*float64(len(sparkBlocks)-1) + 0.5)
		idx = min(max(idx, 0), len(sparkBlocks)-1)
		out[i] = sparkBlocks[idx]
	}
	return string(out)
}

func jsonMarkdown(value domain.Value) string {
	text, err := render.IndentJSON(value)
	if err != nil {
		return errorMarkdown(err.Error())
	}
	return fence("json", text)
}

func errorMarkdown(msg string) string {
	return "**Error:** " + msg + "\n"
}

func fence(lang, body string) string {
	return "```" + lang + "\n" + body + "\n```\n"
}
