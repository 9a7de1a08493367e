package decoder_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/aretw0/cellview/pkg/decoder"
	"github.com/aretw0/cellview/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_JSONTags(t *testing.T) {
	docs := []string{
		`{"rows":[[1,"a"],[2,"b"]],"headers":["n","s"]}`,
		`{"values":[10,20,5]}`,
		`[1,2.5,"x",null,true,{"nested":[]}]`,
		`"just a string"`,
		`12345678901234567890`,
		`null`,
	}
	tags := []domain.MIMEType{domain.MIMECustomJSONOutput, domain.MIMEJSON, domain.MIMETable, domain.MIMEChart}

	d := decoder.New()
	for _, tag := range tags {
		for _, doc := range docs {
			t.Run(string(tag)+"/"+doc, func(t *testing.T) {
				v, err := d.Parse(domain.OutputPayload{Type: tag, Data: []byte(doc)})
				require.NoError(t, err)
				require.IsType(t, domain.JSONValue{}, v)

				out, err := json.Marshal(v.Data())
				require.NoError(t, err)
				assert.JSONEq(t, doc, string(out))
			})
		}
	}
}

func TestParse_KeepsNumbersExact(t *testing.T) {
	v, err := decoder.New().Parse(domain.OutputPayload{Type: domain.MIMEJSON, Data: []byte(`{"n":12345678901234567890}`)})
	require.NoError(t, err)

	data := v.Data().(map[string]any)
	assert.Equal(t, json.Number("12345678901234567890"), data["n"])
}

func TestParse_KeepsSourceText(t *testing.T) {
	v, err := decoder.New().Parse(domain.OutputPayload{Type: domain.MIMEJSON, Data: append([]byte{0xEF, 0xBB, 0xBF}, `{"b":1,"a":2}`...)})
	require.NoError(t, err)
	assert.Equal(t, `{"b":1,"a":2}`, v.(domain.JSONValue).Source)
}

func TestParse_HTML(t *testing.T) {
	v, err := decoder.New().Parse(domain.OutputPayload{Type: domain.MIMEHTML, Data: []byte("<b>x</b><script>y()</script>")})
	require.NoError(t, err)
	assert.Equal(t, domain.HTMLValue{HTML: "<b>x</b><script>y()</script>"}, v)
}

func TestParse_TextDecoding(t *testing.T) {
	d := decoder.New()

	t.Run("BOM is dropped", func(t *testing.T) {
		v, err := d.Parse(domain.OutputPayload{Type: domain.MIMEJSON, Data: append([]byte{0xEF, 0xBB, 0xBF}, `{"a":1}`...)})
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"a": json.Number("1")}, v.Data())
	})

	t.Run("invalid UTF-8 is replaced", func(t *testing.T) {
		v, err := d.Parse(domain.OutputPayload{Type: domain.MIMEHTML, Data: []byte{'a', 0xff, 'b'}})
		require.NoError(t, err)
		assert.Equal(t, "a\uFFFDb", v.(domain.HTMLValue).HTML)
	})
}

func TestParse_Unsupported(t *testing.T) {
	for _, tag := range []domain.MIMEType{"", "text/html", "application/json", "application/vnd.code.notebook.my-custom-svg"} {
		t.Run(string(tag), func(t *testing.T) {
			_, err := decoder.New().Parse(domain.OutputPayload{Type: tag, Data: []byte(`{}`)})

			var unsupported *domain.UnsupportedTypeError
			require.True(t, errors.As(err, &unsupported))
			assert.Equal(t, tag, unsupported.Type)
			assert.Contains(t, err.Error(), "unsupported MIME type")
		})
	}
}

func TestParse_MalformedJSON(t *testing.T) {
	for _, doc := range []string{"", "{", `{"a":}`, `{} {}`, `[1,2]x`} {
		t.Run(doc, func(t *testing.T) {
			_, err := decoder.New().Parse(domain.OutputPayload{Type: domain.MIMETable, Data: []byte(doc)})

			var malformed *domain.MalformedJSONError
			require.True(t, errors.As(err, &malformed), "got %v", err)
			assert.Equal(t, domain.MIMETable, malformed.Type)
			assert.NotNil(t, errors.Unwrap(err))
		})
	}
}

func TestParse_MaxPayloadSize(t *testing.T) {
	d := decoder.New(decoder.WithMaxPayloadSize(4))

	_, err := d.Parse(domain.OutputPayload{Type: domain.MIMEJSON, Data: []byte(`[1,2,3]`)})
	assert.ErrorIs(t, err, domain.ErrPayloadTooLarge)

	_, err = d.Parse(domain.OutputPayload{Type: domain.MIMEJSON, Data: []byte(`[1]`)})
	assert.NoError(t, err)
}

func TestParse_MaxPayloadSizeFromEnv(t *testing.T) {
	t.Setenv(decoder.EnvMaxPayloadSize, "2")

	_, err := decoder.New().Parse(domain.OutputPayload{Type: domain.MIMEJSON, Data: []byte(`123`)})
	assert.ErrorIs(t, err, domain.ErrPayloadTooLarge)
}

func TestParse_Hook(t *testing.T) {
	var events []*domain.ParseEvent
	d := decoder.New(decoder.WithHooks(domain.Hooks{
		OnParse: func(e *domain.ParseEvent) { events = append(events, e) },
	}))

	_, _ = d.Parse(domain.OutputPayload{Type: domain.MIMEJSON, Data: []byte(`{}`)})
	_, _ = d.Parse(domain.OutputPayload{Type: "nope", Data: []byte(`{}`)})

	require.Len(t, events, 2)
	assert.NoError(t, events[0].Err)
	assert.Equal(t, 2, events[0].Size)
	assert.Equal(t, domain.MIMEType("nope"), events[1].Type)
	assert.Error(t, events[1].Err)
}
