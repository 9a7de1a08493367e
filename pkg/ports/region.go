package ports

import "context"

// Region is a mutable markup container owned by the display surface.
// A renderer has exclusive write access to it for the duration of a render call.
type Region interface {
	// Clear removes all markup. Clearing an empty region is a no-op.
	Clear(ctx context.Context) error

	// Write appends markup to the region.
	Write(ctx context.Context, markup string) error

	// Markup returns the current content of the region.
	Markup(ctx context.Context) (string, error)
}

// Replacer is implemented by regions that can swap their whole content in one step.
// Renderers prefer it over Clear+Write so concurrent renders stay last-writer-wins.
type Replacer interface {
	Replace(ctx context.Context, markup string) error
}

// Surface hands out named regions.
type Surface interface {
	// Region returns the region for id, creating it if needed.
	Region(id string) Region
}
