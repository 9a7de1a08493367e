package decoder

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/aretw0/cellview/internal/logging"
	"github.com/aretw0/cellview/pkg/domain"
)

// EnvMaxPayloadSize is the environment variable that overrides the default size limit.
const EnvMaxPayloadSize = "CELLVIEW_MAX_PAYLOAD_SIZE"

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Decoder parses tagged output payloads. It is safe for concurrent use.
type Decoder struct {
	maxSize int
	hooks   domain.Hooks
	logger  *slog.Logger
}

// Option configures a Decoder.
type Option func(*Decoder)

// WithMaxPayloadSize rejects payloads larger than n bytes. Zero means unlimited.
func WithMaxPayloadSize(n int) Option {
	return func(d *Decoder) {
		d.maxSize = n
	}
}

// WithHooks registers observability hooks.
func WithHooks(hooks domain.Hooks) Option {
	return func(d *Decoder) {
		d.hooks = hooks
	}
}

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(d *Decoder) {
		d.logger = logger
	}
}

// New creates a Decoder. The size limit defaults to the value of
// CELLVIEW_MAX_PAYLOAD_SIZE, or unlimited when unset.
func New(opts ...Option) *Decoder {
	d := &Decoder{
		maxSize: maxSizeFromEnv(),
		logger:  logging.NewNop(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Parse decodes payload according to its type tag.
func (d *Decoder) Parse(payload domain.OutputPayload) (domain.Value, error) {
	start := time.Now()
	value, err := d.parse(payload)

	if err != nil {
		d.logger.Debug("payload rejected", "mime", payload.Type, "size", len(payload.Data), "error", err)
	}
	if d.hooks.OnParse != nil {
		d.hooks.OnParse(&domain.ParseEvent{
			Timestamp: start,
			Type:      payload.Type,
			Size:      len(payload.Data),
			Duration:  time.Since(start),
			Err:       err,
		})
	}
	return value, err
}

func (d *Decoder) parse(payload domain.OutputPayload) (domain.Value, error) {
	if !payload.Type.IsSupported() {
		return nil, &domain.UnsupportedTypeError{Type: payload.Type}
	}
	if d.maxSize > 0 && len(payload.Data) > d.maxSize {
		return nil, fmt.Errorf("%w: size=%d limit=%d", domain.ErrPayloadTooLarge, len(payload.Data), d.maxSize)
	}

	text := decodeText(payload.Data)

	if payload.Type == domain.MIMEHTML {
		return domain.HTMLValue{HTML: text}, nil
	}

	data, err := decodeJSON(text)
	if err != nil {
		return nil, &domain.MalformedJSONError{Type: payload.Type, Err: err}
	}
	return domain.JSONValue{Value: data, Source: text}, nil
}

// decodeText reads b as UTF-8, dropping a leading byte order mark and
// replacing invalid sequences with U+FFFD.
func decodeText(b []byte) string {
	b = bytes.TrimPrefix(b, utf8BOM)
	return strings.ToValidUTF8(string(b), "\uFFFD")
}

// decodeJSON parses exactly one JSON document, keeping numbers as json.Number.
func decodeJSON(text string) (any, error) {
	dec := json.NewDecoder(strings.NewReader(text))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		if err == io.EOF {
			return nil, io.ErrUnexpectedEOF
		}
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("invalid character after top-level value")
	}
	return v, nil
}

func maxSizeFromEnv() int {
	if val := os.Getenv(EnvMaxPayloadSize); val != "" {
		if size, err := strconv.Atoi(val); err == nil && size > 0 {
			return size
		}
	}
	return 0
}
