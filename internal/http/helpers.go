package http

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"time"

	"buggy/internal/core"
)

// sanitizeInput removes potentially dangerous characters and trims whitespace.
func sanitizeInput(s string) string {
	s = strings.TrimSpace(s)
	result := strings.Map(func(r rune) rune {
		if r < 32 && r != 9 && r != 10 && r != 13 {
			return -1
		}
		return r
	}, s)
	return result
}

// generateRequestID creates a unique request ID for tracing.
func generateRequestID() string {
	bytes := make([]byte, 8)
	if _, err := rand.Read(bytes); err != nil {
		return fmt.Sprintf("req_%d", time.Now().UnixNano())
	}
	return "req_" + hex.EncodeToString(bytes)
}

// formatAmount formats a monetary amount with its currency symbol
// (e.g. "€12.50").
func formatAmount(symbol string, m core.Money) string {
	return symbol + m.Format()
}

// roundedPercent computes part/total as a whole percent, rounded half up.
// Non-zero parts are clamped to a minimum of 2 so tiny slices stay visible.
func roundedPercent(part, total int64) int {
	if total <= 0 || part <= 0 {
		return 0
	}
	p := int((part*100 + total/2) / total)
	if p < 2 {
		p = 2
	}
	if p > 100 {
		p = 100
	}
	return p
}

// pieGradient builds a CSS conic-gradient stop list from category amounts.
// Segments are laid out cumulatively; the final segment is stretched to
// 100% so rounding never leaves a gap.
func pieGradient(rows []core.CategoryAmount, total core.Money) string {
	if total.Cents <= 0 || len(rows) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("conic-gradient(")
	cursor := 0
	for i, row := range rows {
		end := cursor + roundedPercent(row.Amount.Cents, total.Cents)
		if i == len(rows)-1 || end > 100 {
			end = 100
		}
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(row.Color)
		sb.WriteString(" ")
		sb.WriteString(strconv.Itoa(cursor))
		sb.WriteString("% ")
		sb.WriteString(strconv.Itoa(end))
		sb.WriteString("%")
		cursor = end
	}
	sb.WriteString(")")
	return sb.String()
}
