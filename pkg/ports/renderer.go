package ports

import (
	"context"

	"github.com/aretw0/cellview/pkg/domain"
)

// Renderer is the outbound port invoked by the display surface.
type Renderer interface {
	// Render clears region and writes the markup for value into it.
	// Content problems never surface as errors; they are rendered as an inline
	// error block. The returned error only reports a region that rejected the write.
	Render(ctx context.Context, region Region, mime domain.MIMEType, value domain.Value) error
}
