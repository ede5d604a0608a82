package screens

import (
	"context"
	"fmt"
	"log/slog"
	"reflect"
	"sync"

	"buggy/internal/core"
	"buggy/internal/settings"
	"buggy/internal/storage"
)

// Profile drives the settings screen. It tracks a working copy next to the
// original snapshot so unsaved changes can be detected structurally; field
// setters only touch the working copy, and nothing is persisted until an
// explicit Save.
type Profile struct {
	mu       sync.Mutex
	gateway  *storage.Gateway
	settings *settings.Session

	current  core.UserProfile
	original core.UserProfile
}

func NewProfile(gateway *storage.Gateway, session *settings.Session) *Profile {
	p := core.DefaultProfile()
	return &Profile{
		gateway:  gateway,
		settings: session,
		current:  p,
		original: p.Clone(),
	}
}

// Reload refreshes the working copy and snapshot from storage, discarding any
// unsaved edits.
func (pc *Profile) Reload(ctx context.Context) (storage.Outcome, error) {
	p, outcome, err := pc.gateway.LoadProfile(ctx)

	pc.mu.Lock()
	pc.current = p
	pc.original = p.Clone()
	pc.mu.Unlock()

	if err != nil {
		return outcome, fmt.Errorf("reload profile screen: %w", err)
	}
	return outcome, nil
}

// Current returns a copy of the working profile.
func (pc *Profile) Current() core.UserProfile {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	return pc.current.Clone()
}

// Dirty reports whether the working copy differs structurally from the last
// loaded or saved state.
func (pc *Profile) Dirty() bool {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	return !reflect.DeepEqual(pc.current, pc.original)
}

// SetIdentity updates the free-text identity fields on the working copy.
func (pc *Profile) SetIdentity(firstName, lastName, email string) {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	pc.current.FirstName = firstName
	pc.current.LastName = lastName
	pc.current.Email = email
}

// SetPhone updates the phone fields on the working copy.
func (pc *Profile) SetPhone(number, countryCode, dialCode string) {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	pc.current.PhoneNumber = number
	if countryCode != "" {
		pc.current.PhoneCountryCode = countryCode
	}
	if dialCode != "" {
		pc.current.PhoneDialCode = dialCode
	}
}

// SetCurrency updates the working copy's currency. Codes outside the fixed
// table are ignored; the picker only offers supported codes.
func (pc *Profile) SetCurrency(code string) {
	if !core.IsSupportedCurrency(code) {
		return
	}
	pc.mu.Lock()
	defer pc.mu.Unlock()
	pc.current.Currency = code
}

// SetUseCustomCategories flips the category-set switch on the working copy.
func (pc *Profile) SetUseCustomCategories(on bool) {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	pc.current.UseCustomCategories = on
}

// AddCategory adds a custom category to the working copy, enforcing local
// uniqueness. Duplicates leave the list unchanged and return an error for a
// user-visible notification.
func (pc *Profile) AddCategory(label string) error {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	return pc.current.AddCategory(label)
}

// RemoveCategory drops a custom category from the working copy. Recorded
// expenses referencing the label are unaffected.
func (pc *Profile) RemoveCategory(label string) {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	pc.current.RemoveCategory(label)
}

// Discard reverts the working copy to the last snapshot. Callers confirm with
// the user before invoking this.
func (pc *Profile) Discard() {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	pc.current = pc.original.Clone()
}

// Save validates and persists the working copy, then mirrors the currency to
// the standalone key for lightweight readers. The two writes are independent;
// if the mirror fails after the profile write succeeded the snapshot still
// advances (the profile is durable) and the error is surfaced. The session
// settings cache is invalidated on any successful profile write.
func (pc *Profile) Save(ctx context.Context) error {
	pc.mu.Lock()
	p := pc.current.Clone()
	pc.mu.Unlock()

	if err := p.Validate(); err != nil {
		return err
	}

	if err := pc.gateway.SaveProfile(ctx, p); err != nil {
		return err
	}

	pc.mu.Lock()
	pc.original = p.Clone()
	pc.mu.Unlock()

	if pc.settings != nil {
		pc.settings.Invalidate()
	}

	if err := pc.gateway.SaveCurrencyCode(ctx, p.Currency); err != nil {
		slog.WarnContext(ctx, "Profile saved but currency mirror write failed; keys diverge until next save",
			"currency", p.Currency, "error", err)
		return err
	}

	slog.InfoContext(ctx, "Profile saved", "currency", p.Currency,
		"custom_categories", len(p.CustomCategories))
	return nil
}
