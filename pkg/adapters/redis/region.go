package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aretw0/cellview/pkg/ports"
	backend "github.com/redis/go-redis/v9"
)

// DefaultPrefix is the key prefix for region markup.
const DefaultPrefix = "cellview:region:"

// Surface implements ports.Surface on Redis. Each region is one string key, so a
// display process on another host can read what a renderer wrote.
type Surface struct {
	client *backend.Client
	prefix string
	ttl    time.Duration
}

type Option func(*Surface)

// WithTTL expires region markup ttl after its last write.
func WithTTL(ttl time.Duration) Option {
	return func(s *Surface) {
		s.ttl = ttl
	}
}

// WithPrefix sets the key prefix for regions.
func WithPrefix(prefix string) Option {
	return func(s *Surface) {
		s.prefix = prefix
	}
}

// New creates a Redis surface with options.
func New(address, password string, db int, opts ...Option) *Surface {
	rdb := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewFromClient(rdb, opts...)
}

// NewFromClient creates a Redis surface from an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *Surface {
	s := &Surface{
		client: client,
		prefix: DefaultPrefix,
		ttl:    0, // No expiration by default
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Ping checks connectivity.
func (s *Surface) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Close releases the underlying client.
func (s *Surface) Close() error {
	return s.client.Close()
}

// Region returns the region stored under the surface prefix and id.
func (s *Surface) Region(id string) ports.Region {
	return &Region{surface: s, key: s.prefix + id}
}

// Region implements ports.Region and ports.Replacer on a single Redis key.
type Region struct {
	surface *Surface
	key     string
}

var (
	_ ports.Region   = (*Region)(nil)
	_ ports.Replacer = (*Region)(nil)
)

// Clear deletes the key.
func (r *Region) Clear(ctx context.Context) error {
	if err := r.surface.client.Del(ctx, r.key).Err(); err != nil {
		return fmt.Errorf("failed to clear region: %w", err)
	}
	return nil
}

// Write appends markup with APPEND and refreshes the TTL.
func (r *Region) Write(ctx context.Context, markup string) error {
	pipe := r.surface.client.TxPipeline()
	pipe.Append(ctx, r.key, markup)
	if r.surface.ttl > 0 {
		pipe.Expire(ctx, r.key, r.surface.ttl)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to write region: %w", err)
	}
	return nil
}

// Replace overwrites the key in one SET.
func (r *Region) Replace(ctx context.Context, markup string) error {
	if err := r.surface.client.Set(ctx, r.key, markup, r.surface.ttl).Err(); err != nil {
		return fmt.Errorf("failed to replace region: %w", err)
	}
	return nil
}

// Markup returns the stored markup, or "" for a missing key.
func (r *Region) Markup(ctx context.Context) (string, error) {
	val, err := r.surface.client.Get(ctx, r.key).Result()
	if err != nil {
		if errors.Is(err, backend.Nil) {
			return "", nil
		}
		return "", fmt.Errorf("failed to read region: %w", err)
	}
	return val, nil
}
