package settings

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"buggy/internal/core"
	"buggy/internal/kv/memory"
	"buggy/internal/storage"
)

func TestSessionCachesUntilInvalidated(t *testing.T) {
	g := storage.New(memory.New())
	s := NewSession(g)
	ctx := context.Background()

	assert.Equal(t, core.DefaultCurrency, s.Currency(ctx))

	// A direct storage write is invisible until the cache is invalidated.
	require.NoError(t, g.SaveCurrencyCode(ctx, "GBP"))
	assert.Equal(t, core.DefaultCurrency, s.Currency(ctx))

	s.Invalidate()
	assert.Equal(t, "GBP", s.Currency(ctx))
	assert.Equal(t, "£", s.Symbol(ctx))
}
