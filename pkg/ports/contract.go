package ports

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunRegionContract runs a suite of tests to verify that a Region implementation
// adheres to the defined interface contract. The region must start empty.
func RunRegionContract(t *testing.T, region Region) {
	ctx := context.Background()

	t.Run("Empty", func(t *testing.T) {
		markup, err := region.Markup(ctx)
		require.NoError(t, err)
		assert.Empty(t, markup)
	})

	t.Run("Write Appends", func(t *testing.T) {
		require.NoError(t, region.Write(ctx, "<p>a</p>"))
		require.NoError(t, region.Write(ctx, "<p>b</p>"))

		markup, err := region.Markup(ctx)
		require.NoError(t, err)
		assert.Equal(t, "<p>a</p><p>b</p>", markup)
	})

	t.Run("Clear Is Idempotent", func(t *testing.T) {
		require.NoError(t, region.Clear(ctx))
		require.NoError(t, region.Clear(ctx))

		markup, err := region.Markup(ctx)
		require.NoError(t, err)
		assert.Empty(t, markup)
	})

	replacer, ok := region.(Replacer)
	if !ok {
		return
	}

	t.Run("Replace", func(t *testing.T) {
		require.NoError(t, region.Write(ctx, "stale"))
		require.NoError(t, replacer.Replace(ctx, "<p>fresh</p>"))

		markup, err := region.Markup(ctx)
		require.NoError(t, err)
		assert.Equal(t, "<p>fresh</p>", markup)
	})

	t.Run("Concurrent Replace Is Last Writer Wins", func(t *testing.T) {
		var wg sync.WaitGroup
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				_ = replacer.Replace(ctx, fmt.Sprintf("<p>%d</p>", i))
			}(i)
		}
		wg.Wait()

		markup, err := region.Markup(ctx)
		require.NoError(t, err)
		assert.Regexp(t, `^<p>\d</p>$`, markup)
	})
}
