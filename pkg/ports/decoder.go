package ports

import "github.com/aretw0/cellview/pkg/domain"

// Decoder is the inbound port used by the host that produces cell outputs.
type Decoder interface {
	// Parse decodes a payload into a structured value.
	// It fails with *domain.UnsupportedTypeError or *domain.MalformedJSONError.
	Parse(payload domain.OutputPayload) (domain.Value, error)
}
