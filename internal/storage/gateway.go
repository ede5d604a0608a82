// Package storage is the persistence gateway: it maps the domain records onto
// fixed keys in the key-value store, JSON-encoded except for the standalone
// currency key which holds a plain code string.
package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"buggy/internal/core"
	"buggy/internal/kv"
)

// Persisted keys. The standalone currency key mirrors profile.currency so
// components that only format amounts need not decode the whole profile.
const (
	KeyExpenses = "@expenses"
	KeyProfile  = "@userProfile"
	KeyCurrency = "@selectedCurrency"
)

// Outcome tags a load so callers (and tests) can tell genuinely-empty data
// from a corrupt record that was silently replaced by defaults. Both render
// identically to the user.
type Outcome string

const (
	// OutcomeLoaded means the persisted record decoded cleanly, or no record
	// existed and the empty/default state is the true state.
	OutcomeLoaded Outcome = "loaded"
	// OutcomeDefaulted means a record existed but could not be decoded; the
	// caller received defaults instead.
	OutcomeDefaulted Outcome = "defaulted"
)

// Gateway reads and writes the expense collection and the user profile.
type Gateway struct {
	store kv.Store
}

func New(store kv.Store) *Gateway {
	return &Gateway{store: store}
}

// LoadExpenses returns the persisted collection, newest first as stored. A
// missing key yields an empty collection tagged loaded; an undecodable value
// yields an empty collection tagged defaulted with no error (decode failures
// are treated as "no data"). Engine failures are returned to the caller.
func (g *Gateway) LoadExpenses(ctx context.Context) ([]core.Expense, Outcome, error) {
	raw, ok, err := g.store.Get(ctx, KeyExpenses)
	if err != nil {
		return []core.Expense{}, OutcomeDefaulted, fmt.Errorf("load expenses: %w", err)
	}
	if !ok {
		return []core.Expense{}, OutcomeLoaded, nil
	}

	var expenses []core.Expense
	if err := json.Unmarshal(raw, &expenses); err != nil {
		slog.WarnContext(ctx, "Stored expenses undecodable, substituting empty collection",
			"key", KeyExpenses, "error", err)
		return []core.Expense{}, OutcomeDefaulted, nil
	}
	if expenses == nil {
		expenses = []core.Expense{}
	}
	return expenses, OutcomeLoaded, nil
}

// SaveExpenses serializes and overwrites the full collection. The write is
// optimistic: callers keep their in-memory state even when it fails.
func (g *Gateway) SaveExpenses(ctx context.Context, expenses []core.Expense) error {
	if expenses == nil {
		expenses = []core.Expense{}
	}
	raw, err := json.Marshal(expenses)
	if err != nil {
		return fmt.Errorf("encode expenses: %w", err)
	}
	if err := g.store.Set(ctx, KeyExpenses, raw); err != nil {
		return fmt.Errorf("save expenses: %w", err)
	}
	slog.DebugContext(ctx, "Expenses saved", "count", len(expenses))
	return nil
}

// ClearExpenses deletes the persisted collection key entirely.
func (g *Gateway) ClearExpenses(ctx context.Context) error {
	if err := g.store.Delete(ctx, KeyExpenses); err != nil {
		return fmt.Errorf("clear expenses: %w", err)
	}
	slog.InfoContext(ctx, "Expense collection cleared", "key", KeyExpenses)
	return nil
}

// profileRecord is the persisted profile shape plus the legacy combined name
// field older installations wrote.
type profileRecord struct {
	core.UserProfile
	Name string `json:"name"`
}

// LoadProfile returns the persisted profile, lazily falling back to defaults
// when absent or undecodable. Legacy records with a combined name field are
// migrated by splitting on the first whitespace run; missing fields take the
// documented defaults.
func (g *Gateway) LoadProfile(ctx context.Context) (core.UserProfile, Outcome, error) {
	raw, ok, err := g.store.Get(ctx, KeyProfile)
	if err != nil {
		return core.DefaultProfile(), OutcomeDefaulted, fmt.Errorf("load profile: %w", err)
	}
	if !ok {
		return core.DefaultProfile(), OutcomeLoaded, nil
	}

	var rec profileRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		slog.WarnContext(ctx, "Stored profile undecodable, substituting defaults",
			"key", KeyProfile, "error", err)
		return core.DefaultProfile(), OutcomeDefaulted, nil
	}

	p := rec.UserProfile
	if p.FirstName == "" && p.LastName == "" && rec.Name != "" {
		first, last, _ := strings.Cut(strings.TrimSpace(rec.Name), " ")
		p.FirstName = first
		p.LastName = strings.TrimSpace(last)
		slog.InfoContext(ctx, "Migrated legacy profile name field",
			"first_name", p.FirstName, "last_name", p.LastName)
	}
	if p.PhoneCountryCode == "" {
		p.PhoneCountryCode = "GB"
	}
	if p.PhoneDialCode == "" {
		p.PhoneDialCode = "+44"
	}
	if p.Currency == "" {
		p.Currency = core.DefaultCurrency
	}
	if p.CustomCategories == nil {
		p.CustomCategories = []string{}
	}
	return p, OutcomeLoaded, nil
}

// SaveProfile serializes and overwrites the profile record.
func (g *Gateway) SaveProfile(ctx context.Context, p core.UserProfile) error {
	raw, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}
	if err := g.store.Set(ctx, KeyProfile, raw); err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	slog.DebugContext(ctx, "Profile saved", "currency", p.Currency,
		"custom_categories", len(p.CustomCategories))
	return nil
}

// LoadCurrencyCode reads the standalone currency key, the lighter-weight
// alternative to decoding the full profile. Absent key yields the default.
func (g *Gateway) LoadCurrencyCode(ctx context.Context) (string, error) {
	raw, ok, err := g.store.Get(ctx, KeyCurrency)
	if err != nil {
		return core.DefaultCurrency, fmt.Errorf("load currency: %w", err)
	}
	if !ok || len(raw) == 0 {
		return core.DefaultCurrency, nil
	}
	return string(raw), nil
}

// SaveCurrencyCode writes the standalone currency key. The profile record and
// this key are two independent writes with no transaction across them.
func (g *Gateway) SaveCurrencyCode(ctx context.Context, code string) error {
	if err := g.store.Set(ctx, KeyCurrency, []byte(code)); err != nil {
		return fmt.Errorf("save currency: %w", err)
	}
	return nil
}
