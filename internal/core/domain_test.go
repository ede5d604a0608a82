package core

import (
	"testing"
	"time"
)

func TestNewExpense(t *testing.T) {
	before := time.Now()
	e := NewExpense(Money{Cents: 1250}, "Food", before)
	if e.ID == "" {
		t.Fatal("expected non-empty id")
	}
	if e.Amount.Cents != 1250 {
		t.Fatalf("amount = %d, want 1250", e.Amount.Cents)
	}
	if e.Timestamp != before.UnixMilli() {
		t.Fatalf("timestamp = %d, want %d", e.Timestamp, before.UnixMilli())
	}
	if e.Time().UnixMilli() > time.Now().UnixMilli() {
		t.Fatal("creation instant is in the future")
	}

	// Identifiers must not collide even within the same instant.
	other := NewExpense(Money{Cents: 1250}, "Food", before)
	if other.ID == e.ID {
		t.Fatal("expected distinct ids for same-instant expenses")
	}
}

func TestExpenseValidate(t *testing.T) {
	good := Expense{ID: "x", Amount: Money{Cents: 100}, Category: "Food", Timestamp: 1}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}

	bads := []Expense{
		{ID: "x", Amount: Money{Cents: 0}, Category: "Food"},
		{ID: "x", Amount: Money{Cents: -100}, Category: "Food"},
		{ID: "x", Amount: Money{Cents: 100}, Category: ""},
		{ID: "x", Amount: Money{Cents: 100}, Category: "   "},
	}
	for i, e := range bads {
		if err := e.Validate(); err == nil {
			t.Fatalf("case %d expected error", i)
		}
	}
}

func TestProfileValidateEmail(t *testing.T) {
	cases := []struct {
		email string
		ok    bool
	}{
		{"", true}, // empty email is allowed
		{"john.smith@example.com", true},
		{"a@b.co", true},
		{"not-an-email", false},
		{"a b@example.com", false},
		{"a@b", false},
	}
	for i, tc := range cases {
		p := DefaultProfile()
		p.Email = tc.email
		err := p.Validate()
		if tc.ok && err != nil {
			t.Fatalf("case %d (%q) expected ok, got %v", i, tc.email, err)
		}
		if !tc.ok && err == nil {
			t.Fatalf("case %d (%q) expected error", i, tc.email)
		}
	}
}

func TestProfileCategories(t *testing.T) {
	p := DefaultProfile()

	if err := p.AddCategory("Travel"); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := p.AddCategory("  Gifts  "); err != nil {
		t.Fatalf("add trimmed: %v", err)
	}
	if got := len(p.CustomCategories); got != 2 {
		t.Fatalf("len = %d, want 2", got)
	}

	// Duplicate add is rejected and the list length is unchanged.
	if err := p.AddCategory("Travel"); err != ErrDuplicateCategory {
		t.Fatalf("expected ErrDuplicateCategory, got %v", err)
	}
	if got := len(p.CustomCategories); got != 2 {
		t.Fatalf("len after duplicate = %d, want 2", got)
	}

	if err := p.AddCategory("   "); err != ErrEmptyCategory {
		t.Fatalf("expected ErrEmptyCategory, got %v", err)
	}

	p.RemoveCategory("Travel")
	if got := len(p.CustomCategories); got != 1 || p.CustomCategories[0] != "Gifts" {
		t.Fatalf("after remove: %v", p.CustomCategories)
	}
	// Removing an absent label is a no-op.
	p.RemoveCategory("Travel")
	if got := len(p.CustomCategories); got != 1 {
		t.Fatalf("len after redundant remove = %d, want 1", got)
	}
}

func TestProfileActiveCategories(t *testing.T) {
	p := DefaultProfile()
	if got := p.ActiveCategories(); len(got) != len(DefaultCategories()) {
		t.Fatalf("expected default set, got %v", got)
	}

	_ = p.AddCategory("Travel")
	p.UseCustomCategories = true
	got := p.ActiveCategories()
	if len(got) != 1 || got[0] != "Travel" {
		t.Fatalf("expected custom set, got %v", got)
	}
}

func TestProfileClone(t *testing.T) {
	p := DefaultProfile()
	_ = p.AddCategory("Travel")
	c := p.Clone()
	_ = c.AddCategory("Gifts")
	if len(p.CustomCategories) != 1 {
		t.Fatalf("clone aliases original: %v", p.CustomCategories)
	}
}
