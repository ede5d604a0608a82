package http

import (
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"buggy/internal/core"
	applog "buggy/internal/log"
)

// chartRow is one legend entry of the category breakdown.
type chartRow struct {
	Name    string
	Amount  string
	Color   string
	Percent int
}

// expenseRow is one rendered line of the expense list.
type expenseRow struct {
	Category string
	Amount   string
	When     string
}

// overviewData backs the overview partial: summary figures, the category
// chart and the filtered expense list for the active tab.
type overviewData struct {
	Tab      string
	Symbol   string
	Total    string
	Average  string
	Count    int
	Rows     []chartRow
	Gradient template.CSS
	Items    []expenseRow
	HasData  bool
}

// buildOverview derives the overview for the home screen's active tab. The
// symbol comes from the home session's currency, re-read from the standalone
// key on every reload, so the rendered view always follows storage.
func (s *Server) buildOverview(now time.Time) overviewData {
	tab := s.home.ActiveTab()
	visible := s.home.CurrentExpenses(now)
	summary := core.Summarize(visible)
	byCategory := core.GroupByCategory(visible)
	symbol := core.CurrencySymbol(s.home.Currency())

	data := overviewData{
		Tab:      string(tab),
		Symbol:   symbol,
		Total:    formatAmount(symbol, summary.Total),
		Average:  formatAmount(symbol, summary.Average),
		Count:    summary.Count,
		Gradient: template.CSS(pieGradient(byCategory, summary.Total)),
		HasData:  summary.Count > 0,
	}
	for _, row := range byCategory {
		data.Rows = append(data.Rows, chartRow{
			Name:    row.Name,
			Amount:  formatAmount(symbol, row.Amount),
			Color:   row.Color,
			Percent: roundedPercent(row.Amount.Cents, summary.Total.Cents),
		})
	}
	for _, e := range visible {
		data.Items = append(data.Items, expenseRow{
			Category: e.Category,
			Amount:   formatAmount(symbol, e.Amount),
			When:     e.Time().Format("Mon, 2 Jan 15:04"),
		})
	}
	return data
}

// handleIndex renders the home screen.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if s.templates == nil {
		slog.ErrorContext(r.Context(), "Templates not loaded", "url", r.URL.Path)
		http.Error(w, "templates not loaded", http.StatusInternalServerError)
		return
	}

	// Screen activation re-reads storage.
	if _, err := s.home.Reload(r.Context()); err != nil {
		slog.ErrorContext(r.Context(), "Home reload error", "error", err)
	}
	if _, err := s.profile.Reload(r.Context()); err != nil {
		slog.ErrorContext(r.Context(), "Profile reload error", "error", err)
	}

	if tab := r.URL.Query().Get("tab"); tab != "" {
		s.home.SetTab(core.ParsePeriod(tab))
	}

	data := struct {
		Categories []string
		Overview   overviewData
	}{
		Categories: s.profile.Current().ActiveCategories(),
		Overview:   s.buildOverview(time.Now()),
	}

	if err := s.templates.ExecuteTemplate(w, "index.html", data); err != nil {
		slog.ErrorContext(r.Context(), "Index template execution failed", "error", err, "template", "index.html")
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// handleOverview renders the overview partial for the requested tab.
func (s *Server) handleOverview(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	if _, err := s.home.Reload(r.Context()); err != nil {
		slog.ErrorContext(r.Context(), "Home reload error", "error", err)
		_, _ = w.Write([]byte(`<section id="overview" class="overview"><div class="placeholder">Failed to load expenses</div></section>`))
		return
	}
	if period := r.URL.Query().Get("period"); period != "" {
		s.home.SetTab(core.ParsePeriod(period))
	}

	data := s.buildOverview(time.Now())
	if s.templates == nil {
		_, _ = w.Write([]byte(`<section id="overview" class="overview"><div class="placeholder">Total: ` + data.Total + `</div></section>`))
		return
	}
	if err := s.templates.ExecuteTemplate(w, "overview.html", data); err != nil {
		slog.ErrorContext(r.Context(), "Template execution error", "error", err, "template", "overview.html")
		_, _ = w.Write([]byte(`<section id="overview" class="overview"><div class="placeholder">Failed to render overview</div></section>`))
	}
}

// handleCreateExpense records a new expense from the entry form.
func (s *Server) handleCreateExpense(w http.ResponseWriter, r *http.Request) {
	if resp := RequirePOST(r); resp != nil {
		resp.Write(w)
		return
	}
	if resp := ParseFormOrFail(r); resp != nil {
		resp.Write(w)
		return
	}

	amountStr := FormValue(r, "amount")
	category := FormValue(r, "category")

	cents, err := core.ParseDecimalToCents(amountStr)
	if err != nil {
		UnprocessableEntityError("Please enter a valid amount").
			TriggerErrorNotification("Please enter a valid amount").
			Write(w)
		return
	}

	e := core.NewExpense(core.Money{Cents: cents}, category, time.Now())
	if err := s.home.AddExpense(r.Context(), e); err != nil {
		switch err {
		case core.ErrInvalidAmount, core.ErrEmptyCategory:
			UnprocessableEntityError("Please fill in every field").
				TriggerErrorNotification("Please fill in every field").
				Write(w)
		default:
			applog.FromContext(r.Context()).ErrorContext(r.Context(), "Expense save error",
				applog.NewFields().
					WithError(err).
					WithOperation(applog.OpCreate).
					WithComponent(applog.ComponentHome).
					ToSlice()...)
			InternalServerError("Failed to save expense").
				TriggerErrorNotification("Failed to save expense").
				Write(w)
		}
		return
	}

	applog.FromContext(r.Context()).InfoContext(r.Context(), "Expense recorded",
		applog.NewFields().
			WithExpense(e.ID, e.Amount.Cents, e.Category).
			WithOperation(applog.OpCreate).
			WithComponent(applog.ComponentHome).
			ToSlice()...)

	symbol := s.settings.Symbol(r.Context())
	NewHTMXResponse().
		TriggerExpenseCreated(e.ID).
		TriggerOverviewRefresh().
		TriggerFormReset().
		TriggerSuccessNotification("Expense added").
		BodyHTML(`<div class="success">Recorded ` + template.HTMLEscapeString(e.Category) +
			` ` + template.HTMLEscapeString(formatAmount(symbol, e.Amount)) + `</div>`).
		Write(w)
}

// handleClearExpenses deletes the whole collection.
func (s *Server) handleClearExpenses(w http.ResponseWriter, r *http.Request) {
	if resp := RequirePOST(r); resp != nil {
		resp.Write(w)
		return
	}

	if err := s.home.ClearAll(r.Context()); err != nil {
		applog.FromContext(r.Context()).ErrorContext(r.Context(), "Clear expenses error",
			applog.NewFields().
				WithError(err).
				WithOperation(applog.OpDelete).
				WithComponent(applog.ComponentHome).
				ToSlice()...)
		InternalServerError("Failed to clear expenses").
			TriggerErrorNotification("Failed to clear expenses").
			Write(w)
		return
	}

	NewHTMXResponse().
		TriggerExpensesCleared().
		TriggerOverviewRefresh().
		TriggerSuccessNotification("All expenses cleared").
		BodyHTML(`<div class="success">All expenses cleared</div>`).
		Write(w)
}
