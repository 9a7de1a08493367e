package render

import (
	"encoding/json"
	"errors"
	"fmt"
	"html"
	"io"
	"strconv"
	"strings"

	"github.com/aretw0/cellview/pkg/domain"
)

// text applies the escaping policy to interpolated content.
func (r *Renderer) text(s string) string {
	if r.escape == EscapeNone {
		return s
	}
	return html.EscapeString(s)
}

func (r *Renderer) errorBlock(message string) string {
	return `<div class="error"><strong>Error:</strong> ` + r.text(message) + `</div>`
}

// CellText formats a decoded JSON value for display in a table cell or label.
// Scalars print as JavaScript would print them; containers print as compact JSON.
func CellText(v any) string {
	switch c := v.(type) {
	case nil:
		return "null"
	case string:
		return c
	case json.Number:
		return numberText(c)
	case bool:
		return strconv.FormatBool(c)
	case float64:
		return formatNumber(c)
	case int, int32, int64, uint, uint32, uint64:
		return fmt.Sprint(c)
	}

	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return string(b)
}

// numberText prints n in its shortest form. Integer literals are kept as written
// so values beyond float64 precision stay exact.
func numberText(n json.Number) string {
	s := n.String()
	if !strings.ContainsAny(s, ".eE") {
		return s
	}
	f, err := n.Float64()
	if err != nil {
		return s
	}
	return formatNumber(f)
}

// formatNumber prints f in its shortest round-trip form.
func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// IndentJSON prints value as JSON with two-space indentation.
// When the value carries its source text, object keys keep their source order.
func IndentJSON(value domain.Value) (string, error) {
	if v, ok := value.(domain.JSONValue); ok && v.Source != "" {
		if text, err := indentSource(v.Source); err == nil {
			return text, nil
		}
	}
	return indentJSON(domain.DataOf(value))
}

// indentJSON serializes v with two-space indentation without escaping HTML characters.
func indentJSON(v any) (string, error) {
	var b strings.Builder
	enc := json.NewEncoder(&b)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	return strings.TrimSuffix(b.String(), "\n"), nil
}

// indentSource re-prints one JSON document token by token.
func indentSource(src string) (string, error) {
	dec := json.NewDecoder(strings.NewReader(src))
	dec.UseNumber()

	var b strings.Builder
	if err := writeIndented(&b, dec, 0); err != nil {
		return "", err
	}
	if _, err := dec.Token(); err != io.EOF {
		return "", errors.New("invalid character after top-level value")
	}
	return b.String(), nil
}

func writeIndented(b *strings.Builder, dec *json.Decoder, depth int) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}

	switch t := tok.(type) {
	case json.Delim:
		closing := byte(']')
		if t == '{' {
			closing = '}'
		}
		b.WriteByte(byte(t))

		n := 0
		for dec.More() {
			if n > 0 {
				b.WriteByte(',')
			}
			b.WriteString("\n" + strings.Repeat("  ", depth+1))
			if t == '{' {
				key, err := dec.Token()
				if err != nil {
					return err
				}
				if err := writeString(b, key.(string)); err != nil {
					return err
				}
				b.WriteString(": ")
			}
			if err := writeIndented(b, dec, depth+1); err != nil {
				return err
			}
			n++
		}
		// closing delimiter
		if _, err := dec.Token(); err != nil {
			return err
		}
		if n > 0 {
			b.WriteString("\n" + strings.Repeat("  ", depth))
		}
		b.WriteByte(closing)
	case string:
		return writeString(b, t)
	case json.Number:
		b.WriteString(numberText(t))
	case bool:
		b.WriteString(strconv.FormatBool(t))
	case nil:
		b.WriteString("null")
	}
	return nil
}

func writeString(b *strings.Builder, s string) error {
	var buf strings.Builder
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return err
	}
	b.WriteString(strings.TrimSuffix(buf.String(), "\n"))
	return nil
}
