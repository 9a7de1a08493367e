package render

import "strings"

func (r *Renderer) renderTable(data any) (string, error) {
	table, err := DecodeTable(data)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(`<div class="table-container"><table class="table">`)
	if table.HasHeaders {
		b.WriteString("<thead><tr>")
		for _, h := range table.Headers {
			b.WriteString("<th>")
			b.WriteString(r.text(CellText(h)))
			b.WriteString("</th>")
		}
		b.WriteString("</tr></thead>")
	}
	b.WriteString("<tbody>")
	for _, row := range table.Rows {
		b.WriteString("<tr>")
		for _, cell := range row {
			b.WriteString("<td>")
			b.WriteString(r.text(CellText(cell)))
			b.WriteString("</td>")
		}
		b.WriteString("</tr>")
	}
	b.WriteString("</tbody></table></div>")
	return b.String(), nil
}
