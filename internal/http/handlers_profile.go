package http

import (
	"errors"
	"log/slog"
	"net/http"

	"buggy/internal/core"
	applog "buggy/internal/log"
)

// profileData backs the profile page.
type profileData struct {
	Profile     core.UserProfile
	Currencies  []string
	Categories  []string
	Dirty       bool
	DefaultList bool
}

func (s *Server) profilePageData() profileData {
	p := s.profile.Current()
	return profileData{
		Profile:     p,
		Currencies:  core.Currencies(),
		Categories:  p.ActiveCategories(),
		Dirty:       s.profile.Dirty(),
		DefaultList: !p.UseCustomCategories,
	}
}

func (s *Server) renderProfile(w http.ResponseWriter, r *http.Request) {
	if s.templates == nil {
		http.Error(w, "templates not loaded", http.StatusInternalServerError)
		return
	}
	if err := s.templates.ExecuteTemplate(w, "profile.html", s.profilePageData()); err != nil {
		slog.ErrorContext(r.Context(), "Profile template execution failed", "error", err, "template", "profile.html")
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// renderCategories renders only the categories section so HTMX can swap it
// in place without replacing the whole page.
func (s *Server) renderCategories(w http.ResponseWriter, r *http.Request) {
	if s.templates == nil {
		http.Error(w, "templates not loaded", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.templates.ExecuteTemplate(w, "categories.html", s.profilePageData()); err != nil {
		slog.ErrorContext(r.Context(), "Categories template execution failed", "error", err, "template", "categories.html")
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// handleProfile renders the profile page on GET and applies an explicit
// save on POST. Field edits only exist in the submitted form, so a POST
// carries the complete working copy.
func (s *Server) handleProfile(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		// A reload would overwrite unsaved edits, so a dirty working copy is
		// kept on screen until the user saves or explicitly discards it.
		if !s.profile.Dirty() {
			if _, err := s.profile.Reload(r.Context()); err != nil {
				slog.ErrorContext(r.Context(), "Profile reload error", "error", err)
			}
		}
		s.renderProfile(w, r)
	case http.MethodPost:
		s.handleSaveProfile(w, r)
	default:
		MethodNotAllowedError("GET, POST").Write(w)
	}
}

// handleDiscardProfile drops unsaved edits and renders the stored profile.
func (s *Server) handleDiscardProfile(w http.ResponseWriter, r *http.Request) {
	if resp := RequirePOST(r); resp != nil {
		resp.Write(w)
		return
	}
	s.profile.Discard()
	s.renderProfile(w, r)
}

func (s *Server) handleSaveProfile(w http.ResponseWriter, r *http.Request) {
	if resp := ParseFormOrFail(r); resp != nil {
		resp.Write(w)
		return
	}

	s.profile.SetIdentity(
		FormValue(r, "firstName"),
		FormValue(r, "lastName"),
		FormValue(r, "email"),
	)
	s.profile.SetPhone(
		FormValue(r, "phoneNumber"),
		FormValue(r, "phoneCountryCode"),
		FormValue(r, "phoneDialCode"),
	)
	s.profile.SetCurrency(FormValue(r, "currency"))
	s.profile.SetUseCustomCategories(r.Form.Get("useCustomCategories") == "on")

	if err := s.profile.Save(r.Context()); err != nil {
		if errors.Is(err, core.ErrInvalidEmail) {
			UnprocessableEntityError("Please enter a valid email address").
				TriggerErrorNotification("Please enter a valid email address").
				Write(w)
			return
		}
		applog.FromContext(r.Context()).ErrorContext(r.Context(), "Profile save error",
			applog.NewFields().
				WithError(err).
				WithOperation(applog.OpUpdate).
				WithComponent(applog.ComponentProfile).
				ToSlice()...)
		InternalServerError("Failed to save profile").
			TriggerErrorNotification("Failed to save profile").
			Write(w)
		return
	}

	fields := applog.NewFields().
		WithOperation(applog.OpUpdate).
		WithComponent(applog.ComponentProfile)
	fields[applog.FieldCurrency] = s.profile.Current().Currency
	applog.FromContext(r.Context()).InfoContext(r.Context(), "Profile saved", fields.ToSlice()...)

	NewHTMXResponse().
		TriggerProfileSaved(s.profile.Current().Currency).
		TriggerSuccessNotification("Profile saved").
		BodyHTML(`<div class="success">Profile saved</div>`).
		Write(w)
}

// handleAddCategory adds a custom category and persists immediately.
func (s *Server) handleAddCategory(w http.ResponseWriter, r *http.Request) {
	if resp := RequirePOST(r); resp != nil {
		resp.Write(w)
		return
	}
	if resp := ParseFormOrFail(r); resp != nil {
		resp.Write(w)
		return
	}

	label := FormValue(r, "label")
	if err := s.profile.AddCategory(label); err != nil {
		switch {
		case errors.Is(err, core.ErrDuplicateCategory):
			UnprocessableEntityError("Category already exists").
				TriggerErrorNotification("Category already exists").
				Write(w)
		case errors.Is(err, core.ErrEmptyCategory):
			UnprocessableEntityError("Category name cannot be empty").
				TriggerErrorNotification("Category name cannot be empty").
				Write(w)
		default:
			InternalServerError("Failed to add category").Write(w)
		}
		return
	}

	if err := s.profile.Save(r.Context()); err != nil {
		slog.ErrorContext(r.Context(), "Category save error", "error", err, "category", label)
		InternalServerError("Failed to save category").
			TriggerErrorNotification("Failed to save category").
			Write(w)
		return
	}

	s.renderCategories(w, r)
}

// handleDeleteCategory removes a custom category. Recorded expenses keep
// the removed label.
func (s *Server) handleDeleteCategory(w http.ResponseWriter, r *http.Request) {
	if resp := RequirePOST(r); resp != nil {
		resp.Write(w)
		return
	}
	if resp := ParseFormOrFail(r); resp != nil {
		resp.Write(w)
		return
	}

	label := FormValue(r, "label")
	s.profile.RemoveCategory(label)

	if err := s.profile.Save(r.Context()); err != nil {
		slog.ErrorContext(r.Context(), "Category delete error", "error", err, "category", label)
		InternalServerError("Failed to remove category").
			TriggerErrorNotification("Failed to remove category").
			Write(w)
		return
	}

	s.renderCategories(w, r)
}
