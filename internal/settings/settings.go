// Package settings holds the session-scoped copy of the global display
// settings (currently just the currency code). Presentational components
// receive the currency as a parameter; only this session object reads storage,
// once per TTL window, and profile save invalidates it explicitly.
package settings

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"buggy/internal/core"
	"buggy/internal/storage"
)

const defaultTTL = 5 * time.Minute

// Session is the single authoritative loader of the currency code.
type Session struct {
	mu       sync.Mutex
	gateway  *storage.Gateway
	ttl      time.Duration
	code     string
	loadedAt time.Time
}

func NewSession(gateway *storage.Gateway) *Session {
	return &Session{gateway: gateway, ttl: defaultTTL}
}

// Currency returns the session currency code, reading storage at most once
// per TTL window. A failed read falls back to the default code; the failure
// is logged, never surfaced.
func (s *Session) Currency(ctx context.Context) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.code != "" && time.Since(s.loadedAt) < s.ttl {
		return s.code
	}

	code, err := s.gateway.LoadCurrencyCode(ctx)
	if err != nil {
		slog.WarnContext(ctx, "Failed to load currency setting", "error", err)
		code = core.DefaultCurrency
	}
	s.code = code
	s.loadedAt = time.Now()
	return s.code
}

// Symbol returns the display symbol for the session currency.
func (s *Session) Symbol(ctx context.Context) string {
	return core.CurrencySymbol(s.Currency(ctx))
}

// Invalidate drops the cached code so the next read hits storage. Called
// after every profile save.
func (s *Session) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.code = ""
	s.loadedAt = time.Time{}
}
