package http

import (
	"strings"
	"testing"

	"buggy/internal/core"
)

func TestRoundedPercent(t *testing.T) {
	tests := []struct {
		part, total int64
		want        int
	}{
		{0, 100, 0},
		{50, 100, 50},
		{1, 1000, 2},  // clamped to minimum visibility
		{333, 1000, 33},
		{335, 1000, 34}, // half up
		{1000, 1000, 100},
		{10, 0, 0},
	}
	for _, tt := range tests {
		if got := roundedPercent(tt.part, tt.total); got != tt.want {
			t.Errorf("roundedPercent(%d, %d) = %d, want %d", tt.part, tt.total, got, tt.want)
		}
	}
}

func TestPieGradient(t *testing.T) {
	rows := []core.CategoryAmount{
		{Name: "Food", Amount: core.Money{Cents: 750}, Color: "#2E7D32"},
		{Name: "Bills", Amount: core.Money{Cents: 250}, Color: "#1976D2"},
	}
	g := pieGradient(rows, core.Money{Cents: 1000})

	if !strings.HasPrefix(g, "conic-gradient(") {
		t.Fatalf("unexpected gradient: %s", g)
	}
	if !strings.Contains(g, "#2E7D32 0% 75%") {
		t.Errorf("first segment wrong: %s", g)
	}
	if !strings.Contains(g, "#1976D2 75% 100%") {
		t.Errorf("last segment must close at 100%%: %s", g)
	}
}

func TestPieGradientEmpty(t *testing.T) {
	if g := pieGradient(nil, core.Money{Cents: 0}); g != "" {
		t.Errorf("expected empty gradient, got %s", g)
	}
}

func TestSanitizeInput(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"  hello  ", "hello"},
		{"a\x00b", "ab"},
		{"line1\nline2", "line1\nline2"},
	}
	for _, tt := range tests {
		if got := sanitizeInput(tt.in); got != tt.want {
			t.Errorf("sanitizeInput(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatAmount(t *testing.T) {
	if got := formatAmount("€", core.Money{Cents: 1250}); got != "€12.50" {
		t.Errorf("formatAmount = %q", got)
	}
	if got := formatAmount("$", core.Money{Cents: 5}); got != "$0.05" {
		t.Errorf("formatAmount = %q", got)
	}
}
