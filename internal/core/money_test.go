package core

import (
	"encoding/json"
	"testing"
)

func TestParseDecimalToCents(t *testing.T) {
	cases := []struct {
		in      string
		cents   int64
		wantErr bool
	}{
		{"12.34", 1234, false},
		{"12,34", 1234, false},
		{"12.345", 1234, false}, // rounds down
		{"12.346", 1235, false}, // rounds up
		{"0.01", 1, false},
		{"7", 700, false},
		{".5", 50, false},
		{" 12.50 ", 1250, false},
		{"", 0, true},
		{"abc", 0, true},
		{"-1", 0, true},
		{"+1", 0, true},
		{"0", 0, true},
		{"0.00", 0, true},
		{"1.2.3", 0, true},
		{"92233720368547759", 0, true}, // overflows when scaled to cents
		{"1.٥", 0, true},               // non-ASCII numerals are rejected, not mangled
		{"١2.50", 0, true},
		{"１２.５０", 0, true},
	}
	for _, tc := range cases {
		got, err := ParseDecimalToCents(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("%q: expected error, got %d", tc.in, got)
			}
			continue
		}
		if err != nil {
			t.Fatalf("%q: unexpected error %v", tc.in, err)
		}
		if got != tc.cents {
			t.Fatalf("%q: got %d cents, want %d", tc.in, got, tc.cents)
		}
	}
}

func TestMoneyFormat(t *testing.T) {
	cases := []struct {
		cents int64
		want  string
	}{
		{1250, "12.50"},
		{5, "0.05"},
		{100, "1.00"},
		{-1250, "-12.50"},
		{0, "0.00"},
	}
	for _, tc := range cases {
		if got := (Money{Cents: tc.cents}).Format(); got != tc.want {
			t.Fatalf("%d cents: got %q, want %q", tc.cents, got, tc.want)
		}
	}
}

func TestMoneyJSONRoundTrip(t *testing.T) {
	for _, cents := range []int64{1, 99, 100, 1250, 123456789} {
		b, err := json.Marshal(Money{Cents: cents})
		if err != nil {
			t.Fatalf("marshal %d: %v", cents, err)
		}
		var back Money
		if err := json.Unmarshal(b, &back); err != nil {
			t.Fatalf("unmarshal %s: %v", b, err)
		}
		if back.Cents != cents {
			t.Fatalf("round trip %d -> %s -> %d", cents, b, back.Cents)
		}
	}
}

func TestMoneyMarshalShape(t *testing.T) {
	// Persisted records store bare decimal numbers, not strings.
	b, err := json.Marshal(Money{Cents: 1250})
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != "12.5" {
		t.Fatalf("got %s, want 12.5", b)
	}
}

func TestMoneyUnmarshalRejectsNonNumbers(t *testing.T) {
	var m Money
	for _, in := range []string{`"12.50"`, `{}`, `null`, `[1]`} {
		if err := json.Unmarshal([]byte(in), &m); err == nil {
			t.Fatalf("%s: expected error", in)
		}
	}
}
