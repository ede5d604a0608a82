package core

import "time"

// Period scopes aggregation to the current calendar day or month.
type Period string

const (
	PeriodDaily   Period = "daily"
	PeriodMonthly Period = "monthly"
)

// ParsePeriod maps a raw tab value to a Period; anything unknown falls back to
// daily at this boundary so callers never carry an invalid period around.
func ParsePeriod(s string) Period {
	if Period(s) == PeriodMonthly {
		return PeriodMonthly
	}
	return PeriodDaily
}

// Start returns the period boundary relative to now: local midnight for daily,
// first day of now's month at midnight for monthly.
func (p Period) Start(now time.Time) time.Time {
	if p == PeriodMonthly {
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	}
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}

// FilterByPeriod keeps the expenses created at or after the period boundary
// computed from the caller-supplied now. Order is preserved; the input is not
// modified.
func FilterByPeriod(expenses []Expense, p Period, now time.Time) []Expense {
	start := p.Start(now).UnixMilli()
	out := make([]Expense, 0, len(expenses))
	for _, e := range expenses {
		if e.Timestamp >= start {
			out = append(out, e)
		}
	}
	return out
}

// Summary holds period totals for the stats cards.
type Summary struct {
	Total   Money
	Average Money
	Count   int
}

// Summarize computes total, per-entry average and count. An empty subset
// yields the zero Summary; the zero-count guard avoids a division error.
func Summarize(expenses []Expense) Summary {
	var total int64
	for _, e := range expenses {
		total += e.Amount.Cents
	}
	s := Summary{Total: Money{Cents: total}, Count: len(expenses)}
	if s.Count > 0 {
		n := int64(s.Count)
		s.Average = Money{Cents: (total + n/2) / n}
	}
	return s
}

// CategoryAmount is an amount aggregated by category name, carrying the chart
// segment color assigned to that category.
type CategoryAmount struct {
	Name   string
	Amount Money
	Color  string
}

var chartPalette = []string{
	"#2E7D32", "#1976D2", "#C2185B", "#7B1FA2",
	"#FBC02D", "#F57C00", "#455A64", "#00796B",
}

// GroupByCategory sums amounts per category in first-occurrence order and
// assigns each distinct category a palette color by position (index modulo
// palette length). Color assignment is therefore stable only while the
// encounter order is stable. An empty subset returns an empty slice.
func GroupByCategory(expenses []Expense) []CategoryAmount {
	index := make(map[string]int)
	out := []CategoryAmount{}
	for _, e := range expenses {
		i, seen := index[e.Category]
		if !seen {
			i = len(out)
			index[e.Category] = i
			out = append(out, CategoryAmount{
				Name:  e.Category,
				Color: chartPalette[i%len(chartPalette)],
			})
		}
		out[i].Amount.Cents += e.Amount.Cents
	}
	return out
}
