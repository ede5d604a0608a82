// Package screens implements the two screen controllers. Each controller owns
// the in-memory copy of its state for the current session, mirrors every
// mutation through the persistence gateway, and re-reads storage on screen
// activation; there is no cross-screen push.
package screens

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"buggy/internal/core"
	"buggy/internal/storage"
)

// Home drives the main screen: the full expense collection, the active
// daily/monthly tab and the currency code used for display.
type Home struct {
	mu      sync.Mutex
	gateway *storage.Gateway

	expenses  []core.Expense
	activeTab core.Period
	currency  string
}

func NewHome(gateway *storage.Gateway) *Home {
	return &Home{
		gateway:   gateway,
		expenses:  []core.Expense{},
		activeTab: core.PeriodDaily,
		currency:  core.DefaultCurrency,
	}
}

// Reload refreshes session state from storage: two independent reads, the
// expense collection and the standalone currency code. The home screen never
// loads the full profile. A failed expense read resets the session to empty
// and returns the error for a user notification; a failed currency read only
// logs and keeps the previous code.
func (h *Home) Reload(ctx context.Context) (storage.Outcome, error) {
	expenses, outcome, err := h.gateway.LoadExpenses(ctx)

	h.mu.Lock()
	h.expenses = expenses
	h.mu.Unlock()

	if code, cerr := h.gateway.LoadCurrencyCode(ctx); cerr != nil {
		slog.WarnContext(ctx, "Failed to load currency setting", "error", cerr)
	} else {
		h.mu.Lock()
		h.currency = code
		h.mu.Unlock()
	}

	if err != nil {
		return outcome, fmt.Errorf("reload home screen: %w", err)
	}
	return outcome, nil
}

// AddExpense prepends the expense and persists the full collection. The write
// is optimistic: on failure the in-memory prepend is kept (it will vanish on
// the next reload) and the error is returned for a notification.
func (h *Home) AddExpense(ctx context.Context, e core.Expense) error {
	if err := e.Validate(); err != nil {
		return err
	}

	h.mu.Lock()
	h.expenses = append([]core.Expense{e}, h.expenses...)
	snapshot := append([]core.Expense(nil), h.expenses...)
	h.mu.Unlock()

	if err := h.gateway.SaveExpenses(ctx, snapshot); err != nil {
		slog.ErrorContext(ctx, "Failed to persist expense",
			"id", e.ID, "category", e.Category, "amount_cents", e.Amount.Cents, "error", err)
		return err
	}

	slog.InfoContext(ctx, "Expense added",
		"id", e.ID, "category", e.Category, "amount_cents", e.Amount.Cents)
	return nil
}

// ClearAll deletes the persisted collection, then empties the session copy.
// On failure the in-memory state is left unchanged.
func (h *Home) ClearAll(ctx context.Context) error {
	if err := h.gateway.ClearExpenses(ctx); err != nil {
		return err
	}
	h.mu.Lock()
	h.expenses = []core.Expense{}
	h.mu.Unlock()
	return nil
}

// SetTab switches the active period tab.
func (h *Home) SetTab(p core.Period) {
	h.mu.Lock()
	h.activeTab = p
	h.mu.Unlock()
}

// ActiveTab returns the current period tab.
func (h *Home) ActiveTab() core.Period {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.activeTab
}

// Expenses returns a copy of the full session collection, newest first.
func (h *Home) Expenses() []core.Expense {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]core.Expense(nil), h.expenses...)
}

// Currency returns the session currency code.
func (h *Home) Currency() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.currency
}

// CurrentExpenses derives the active tab's subset relative to the supplied
// wall clock. Recomputed on every call; nothing is cached.
func (h *Home) CurrentExpenses(now time.Time) []core.Expense {
	h.mu.Lock()
	tab := h.activeTab
	expenses := append([]core.Expense(nil), h.expenses...)
	h.mu.Unlock()
	return core.FilterByPeriod(expenses, tab, now)
}
