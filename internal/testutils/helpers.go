package testutils

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aretw0/cellview/pkg/domain"
	"github.com/stretchr/testify/require"
)

// JSONValue decodes doc the way the decoder does (numbers kept as json.Number)
// and wraps it as a domain.Value. It fails the test immediately on error.
func JSONValue(t *testing.T, doc string) domain.Value {
	t.Helper()

	dec := json.NewDecoder(strings.NewReader(doc))
	dec.UseNumber()
	var v any
	require.NoError(t, dec.Decode(&v), "Failed to decode test document")

	return domain.JSONValue{Value: v, Source: doc}
}

// WritePayload writes data into a temporary file named name and returns its absolute path.
func WritePayload(t *testing.T, name, data string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644), "Failed to write payload file")

	absPath, err := filepath.Abs(path)
	require.NoError(t, err, "Failed to get absolute path for payload file")
	return absPath
}
