package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/aretw0/cellview/internal/testutils"
	"github.com/aretw0/cellview/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestRenderCommand_HTML(t *testing.T) {
	out, err := run(t, `{"values":[1,2]}`, "render", "--mime", string(domain.MIMEChart), "--format", "html", "-")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, `<div class="chart"><h3>Chart</h3>`))
}

func TestRenderCommand_PageFromFile(t *testing.T) {
	path := testutils.WritePayload(t, "out.json", `{"headers":["a"],"rows":[[1]]}`)

	out, err := run(t, "", "render", "--mime", string(domain.MIMETable), "--format", "page", path)
	require.NoError(t, err)
	assert.Contains(t, out, "<title>out.json</title>")
	assert.Contains(t, out, "<td>1</td>")
}

func TestRenderCommand_ParseError(t *testing.T) {
	out, err := run(t, "{", "render", "--mime", string(domain.MIMEJSON), "--format", "html", "-")
	require.Error(t, err)
	assert.Contains(t, out, `<div class="error"><strong>Error:</strong>`)
}

func TestTypesCommand(t *testing.T) {
	out, err := run(t, "", "types")
	require.NoError(t, err)
	assert.Contains(t, out, string(domain.MIMETable))
	assert.Contains(t, out, "unknown")
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, "", "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "cellview version "))
}
