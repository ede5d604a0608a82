package core

import "testing"

func TestCurrencySymbol(t *testing.T) {
	want := map[string]string{
		"USD": "$",
		"EUR": "€",
		"GBP": "£",
		"JPY": "¥",
		"AUD": "A$",
		"CAD": "C$",
		"CHF": "Fr",
		"CNY": "¥",
		"INR": "₹",
	}
	for code, sym := range want {
		if got := CurrencySymbol(code); got != sym {
			t.Fatalf("%s: got %q, want %q", code, got, sym)
		}
	}

	// Unknown codes silently fall back, never error.
	for _, code := range []string{"", "XXX", "usd", "BTC"} {
		if got := CurrencySymbol(code); got != FallbackSymbol {
			t.Fatalf("%q: got %q, want fallback %q", code, got, FallbackSymbol)
		}
	}
}

func TestCurrenciesCoverTable(t *testing.T) {
	codes := Currencies()
	if len(codes) != len(currencySymbols) {
		t.Fatalf("list has %d codes, table has %d", len(codes), len(currencySymbols))
	}
	for _, code := range codes {
		if !IsSupportedCurrency(code) {
			t.Fatalf("%s listed but not in table", code)
		}
	}
}
