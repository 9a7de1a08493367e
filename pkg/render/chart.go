package render

import (
	"strconv"
	"strings"
)

const (
	chartWidth   = 400
	chartHeight  = 120
	chartStep    = 50
	chartBase    = 100
	chartSpan    = 90
	chartColor   = "#0078d4"
	defaultTitle = "Chart"
)

// Point is one plotted value in viewport coordinates.
type Point struct {
	X, Y float64
}

// ChartPoints maps values onto the chart viewport. The scale is the largest value,
// floored at 1 so an empty or non-positive series never divides by zero.
func ChartPoints(values []float64) []Point {
	maxValue := 1.0
	for _, v := range values {
		if v > maxValue {
			maxValue = v
		}
	}

	points := make([]Point, len(values))
	for i, v := range values {
		points[i] = Point{
			X: float64(i * chartStep),
			Y: chartBase - (v/maxValue)*chartSpan,
		}
	}
	return points
}

func (r *Renderer) renderChart(data any) (string, error) {
	chart, err := DecodeChart(data)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(`<div class="chart"><h3>`)
	b.WriteString(r.text(chart.Title))
	b.WriteString(`</h3><div class="chart-content">`)
	writeSVG(&b, ChartPoints(chart.Values))
	b.WriteString(`</div></div>`)
	return b.String(), nil
}

func writeSVG(b *strings.Builder, points []Point) {
	w, h := strconv.Itoa(chartWidth), strconv.Itoa(chartHeight)
	b.WriteString(`<svg width="` + w + `" height="` + h + `" viewBox="0 0 ` + w + ` ` + h + `">`)

	b.WriteString(`<polyline points="`)
	for i, p := range points {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(formatNumber(p.X) + "," + formatNumber(p.Y))
	}
	b.WriteString(`" fill="none" stroke="` + chartColor + `" stroke-width="2"/>`)

	for _, p := range points {
		b.WriteString(`<circle cx="` + formatNumber(p.X) + `" cy="` + formatNumber(p.Y) + `" r="3" fill="` + chartColor + `"/>`)
	}
	b.WriteString(`</svg>`)
}
