package core

// DefaultCurrency is used when no profile has been saved and for unknown codes
// at display time the fallback below applies instead.
const DefaultCurrency = "EUR"

// FallbackSymbol is returned for any code outside the supported table. The
// fallback is silent; unknown codes never raise an error.
const FallbackSymbol = "€"

var currencySymbols = map[string]string{
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

var currencyCodes = []string{
	"USD", "EUR", "GBP", "JPY", "AUD", "CAD", "CHF", "CNY", "INR",
}

// CurrencySymbol maps a 3-letter currency code to its display symbol.
func CurrencySymbol(code string) string {
	if sym, ok := currencySymbols[code]; ok {
		return sym
	}
	return FallbackSymbol
}

// Currencies returns the supported codes in display order.
func Currencies() []string {
	return append([]string(nil), currencyCodes...)
}

// IsSupportedCurrency reports whether code is in the fixed table.
func IsSupportedCurrency(code string) bool {
	_, ok := currencySymbols[code]
	return ok
}
