package tui

import (
	"bytes"
	"testing"

	"github.com/aretw0/cellview/internal/testutils"
	"github.com/aretw0/cellview/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkdown_Table(t *testing.T) {
	md := Markdown(domain.MIMETable, testutils.JSONValue(t, `{"headers":["a","b"],"rows":[[1,"x|y"],[2]]}`))
	assert.Equal(t, "| a | b |\n| --- | --- |\n| 1 | x\\|y |\n| 2 |  |\n", md)

	assert.Equal(t, "**Error:** Invalid table data\n", Markdown(domain.MIMETable, testutils.JSONValue(t, `{"rows":"no"}`)))
	assert.Equal(t, "_empty table_\n", Markdown(domain.MIMETable, testutils.JSONValue(t, `{"rows":[]}`)))
}

func TestMarkdown_Chart(t *testing.T) {
	md := Markdown(domain.MIMEChart, testutils.JSONValue(t, `{"values":[10,20,5]}`))
	assert.Equal(t, "### Chart\n\n`▅█▃`\n\n10, 20, 5\n", md)

	assert.Contains(t, Markdown(domain.MIMEChart, testutils.JSONValue(t, `{"values":["x"]}`)), "**Error:**")
	assert.Equal(t, "### Chart\n\n``\n\n", Markdown(domain.MIMEChart, testutils.JSONValue(t, `null`)))
}

func TestSparkline(t *testing.T) {
	assert.Equal(t, "▁▁", Sparkline([]float64{0, 0}))
	assert.Equal(t, "▁█", Sparkline([]float64{0, 1}))
	assert.Equal(t, "", Sparkline(nil))
}

func TestMarkdown_HTMLAndJSON(t *testing.T) {
	assert.Equal(t, "```html\n<b>x</b>\n```\n", Markdown(domain.MIMEHTML, domain.HTMLValue{HTML: "<b>x</b>"}))
	assert.Equal(t, "```json\n{\n  \"a\": 1\n}\n```\n", Markdown("other/type", testutils.JSONValue(t, `{"a":1}`)))
}

func TestPreview(t *testing.T) {
	out, err := Preview(domain.MIMETable, testutils.JSONValue(t, `{"headers":["name"],"rows":[["ada"]]}`), "notty", 80)
	require.NoError(t, err)
	assert.Contains(t, out, "ada")
}

func TestPrintBanner(t *testing.T) {
	var buf bytes.Buffer
	PrintBanner(&buf, "1.2.3")
	assert.Contains(t, buf.String(), "v1.2.3")
}

func TestMarkdown_MatchesHTMLShapeRules(t *testing.T) {
	t.Run("null chart value plots as zero", func(t *testing.T) {
		md := Markdown(domain.MIMEChart, testutils.JSONValue(t, `{"values":[1,null]}`))
		assert.Equal(t, "### Chart\n\n`█▁`\n\n1, 0\n", md)
	})

	t.Run("values that are not a sequence", func(t *testing.T) {
		md := Markdown(domain.MIMEChart, testutils.JSONValue(t, `{"values":"x"}`))
		assert.Contains(t, md, "**Error:**")
	})

	t.Run("falsy headers omit the header names", func(t *testing.T) {
		md := Markdown(domain.MIMETable, testutils.JSONValue(t, `{"headers":false,"rows":[[1.50]]}`))
		assert.Equal(t, "|  |\n| --- |\n| 1.5 |\n", md)
	})

	t.Run("json keeps key order", func(t *testing.T) {
		md := Markdown(domain.MIMEJSON, testutils.JSONValue(t, `{"b":1,"a":2}`))
		assert.Equal(t, "```json\n{\n  \"b\": 1,\n  \"a\": 2\n}\n```\n", md)
	})
}
