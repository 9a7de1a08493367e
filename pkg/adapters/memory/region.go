package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/aretw0/cellview/pkg/ports"
)

// Region implements ports.Region in memory.
// Safe for concurrent use.
type Region struct {
	mu  sync.RWMutex
	buf strings.Builder
}

var (
	_ ports.Region   = (*Region)(nil)
	_ ports.Replacer = (*Region)(nil)
)

// NewRegion creates an empty region.
func NewRegion() *Region {
	return &Region{}
}

// Clear removes all markup.
func (r *Region) Clear(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.buf.Reset()
	return nil
}

// Write appends markup.
func (r *Region) Write(ctx context.Context, markup string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.buf.WriteString(markup)
	return nil
}

// Replace swaps the whole content under one lock.
func (r *Region) Replace(ctx context.Context, markup string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.buf.Reset()
	r.buf.WriteString(markup)
	return nil
}

// Markup returns the current content.
func (r *Region) Markup(ctx context.Context) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.buf.String(), nil
}

// Surface implements ports.Surface with in-memory regions.
// Safe for concurrent use.
type Surface struct {
	mu      sync.Mutex
	regions map[string]*Region
}

var _ ports.Surface = (*Surface)(nil)

// NewSurface creates an empty surface.
func NewSurface() *Surface {
	return &Surface{
		regions: make(map[string]*Region),
	}
}

// Region returns the region for id, creating it on first use.
func (s *Surface) Region(id string) ports.Region {
	s.mu.Lock()
	defer s.mu.Unlock()

	region, ok := s.regions[id]
	if !ok {
		region = NewRegion()
		s.regions[id] = region
	}
	return region
}

// List returns the ids of all regions handed out so far.
func (s *Surface) List() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := make([]string, 0, len(s.regions))
	for id := range s.regions {
		ids = append(ids, id)
	}
	return ids
}
