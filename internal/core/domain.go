package core

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

type (
	// Expense is one recorded spending event. Expenses are immutable after
	// creation; the only destructive operation is clearing the whole collection.
	Expense struct {
		ID        string `json:"id"`
		Amount    Money  `json:"amount"`
		Category  string `json:"category"`
		Timestamp int64  `json:"timestamp"` // milliseconds since epoch
	}

	// UserProfile is the per-installation settings record. Exactly one exists;
	// absence means "use defaults".
	UserProfile struct {
		FirstName           string   `json:"firstName"`
		LastName            string   `json:"lastName"`
		Email               string   `json:"email"`
		PhoneNumber         string   `json:"phoneNumber"`
		PhoneCountryCode    string   `json:"phoneCountryCode"`
		PhoneDialCode       string   `json:"phoneCountryDialCode"`
		Currency            string   `json:"currency"`
		CustomCategories    []string `json:"customCategories"`
		UseCustomCategories bool     `json:"useCustomCategories"`
	}
)

var (
	ErrInvalidAmount     = errors.New("invalid amount")
	ErrEmptyCategory     = errors.New("empty category")
	ErrInvalidEmail      = errors.New("invalid email address")
	ErrDuplicateCategory = errors.New("category already exists")
)

// DefaultCategories is the built-in category set used when the profile has
// custom categories switched off.
func DefaultCategories() []string {
	return []string{
		"Food", "Groceries", "Transport", "Shopping",
		"Entertainment", "Health", "Bills", "Other",
	}
}

// NewExpense builds an expense with a fresh collision-resistant identifier and
// the creation instant taken from now.
func NewExpense(amount Money, category string, now time.Time) Expense {
	return Expense{
		ID:        uuid.NewString(),
		Amount:    amount,
		Category:  strings.TrimSpace(category),
		Timestamp: now.UnixMilli(),
	}
}

// Time returns the creation instant.
func (e Expense) Time() time.Time {
	return time.UnixMilli(e.Timestamp)
}

func (e Expense) Validate() error {
	if err := e.Amount.Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(e.Category) == "" {
		return ErrEmptyCategory
	}
	return nil
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// DefaultProfile returns the profile used when none has been saved yet.
func DefaultProfile() UserProfile {
	return UserProfile{
		PhoneCountryCode: "GB",
		PhoneDialCode:    "+44",
		Currency:         DefaultCurrency,
		CustomCategories: []string{},
	}
}

// Validate checks the superficially-validated fields. Identity fields are free
// text; only a non-empty email must match the address pattern.
func (p UserProfile) Validate() error {
	if p.Email != "" && !emailPattern.MatchString(p.Email) {
		return ErrInvalidEmail
	}
	return nil
}

// ActiveCategories returns the category set offered for new expenses: the
// custom list when the switch is on, the default set otherwise.
func (p UserProfile) ActiveCategories() []string {
	if p.UseCustomCategories {
		return append([]string(nil), p.CustomCategories...)
	}
	return DefaultCategories()
}

// AddCategory appends a custom category, enforcing local uniqueness.
func (p *UserProfile) AddCategory(label string) error {
	label = strings.TrimSpace(label)
	if label == "" {
		return ErrEmptyCategory
	}
	for _, c := range p.CustomCategories {
		if c == label {
			return ErrDuplicateCategory
		}
	}
	p.CustomCategories = append(p.CustomCategories, label)
	return nil
}

// RemoveCategory drops a custom category by label. Already-recorded expenses
// keep referencing the removed label; they stay displayable as-is.
func (p *UserProfile) RemoveCategory(label string) {
	kept := p.CustomCategories[:0]
	for _, c := range p.CustomCategories {
		if c != label {
			kept = append(kept, c)
		}
	}
	p.CustomCategories = kept
}

// Clone returns a deep copy, so a working copy and its original snapshot can
// be compared structurally without aliasing the category slice.
func (p UserProfile) Clone() UserProfile {
	out := p
	out.CustomCategories = append([]string(nil), p.CustomCategories...)
	return out
}
