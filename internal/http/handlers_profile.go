package httpx

import (
	"context"
	"net/http"
	"strings"

	"github.com/bankingapplication/bank-ui/internal/domain/model"
	"github.com/bankingapplication/bank-ui/internal/http/validation"
)

// ProfilePage shows the signed-in user's profile.
// GET /profile.
func (h *Handlers) ProfilePage(w http.ResponseWriter, r *http.Request) {
	h.Page(w, r, PageSpec{
		Meta: profileMeta(),
		Fetch: func(ctx context.Context, data map[string]any) error {
			profile, err := h.Auth.Me(ctx, AccessTokenFromContext(ctx))
			if err != nil {
				return err
			}
			data["Profile"] = profile
			return nil
		},
	})
}

// UpdateProfile handles the profile form submission. On success the session
// identity is refreshed so the header shows the new name immediately.
// POST /profile.
func (h *Handlers) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	session := GetSessionFromContext(r.Context())
	if session == nil {
		redirectToLogin(w, r)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	req := model.UserUpdateRequest{
		FirstName:   strings.TrimSpace(r.FormValue("firstName")),
		LastName:    strings.TrimSpace(r.FormValue("lastName")),
		PhoneNumber: strings.TrimSpace(r.FormValue("phoneNumber")),
		Address:     strings.TrimSpace(r.FormValue("address")),
		City:        strings.TrimSpace(r.FormValue("city")),
		State:       strings.TrimSpace(r.FormValue("state")),
		ZipCode:     strings.TrimSpace(r.FormValue("zipCode")),
		Country:     strings.TrimSpace(r.FormValue("country")),
	}

	fieldErrors := validation.New().
		Validate("firstName", req.FirstName, validation.Optional("First name", 50)).
		Validate("lastName", req.LastName, validation.Optional("Last name", 50)).
		Validate("phoneNumber", req.PhoneNumber, validation.Optional("Phone number", 20)).
		Validate("address", req.Address, validation.Optional("Address", 200)).
		Validate("city", req.City, validation.Optional("City", 100)).
		Validate("state", req.State, validation.Optional("State", 100)).
		Validate("zipCode", req.ZipCode, validation.Optional("ZIP code", 20)).
		Validate("country", req.Country, validation.Optional("Country", 100)).
		Errors()
	if len(fieldErrors) > 0 {
		RenderError(ErrorOpts{
			W: w, R: r,
			FieldErrors: fieldErrors,
			Renderer:    h.renderPage,
			PageMeta:    profileMeta(),
			Data:        map[string]any{"Profile": profileFromRequest(req)},
		})
		return
	}

	token := session.Tokens.AccessToken
	updated, err := h.Auth.UpdateUser(r.Context(), token, session.Identity.Username, req)
	if err != nil {
		if h.handleExpiredSession(w, r, err) {
			return
		}
		RenderError(ErrorOpts{
			W: w, R: r,
			Err:      err,
			Renderer: h.renderPage,
			PageMeta: profileMeta(),
			Data:     map[string]any{"Profile": profileFromRequest(req)},
		})
		return
	}

	identity := session.Identity
	identity.FirstName = updated.FirstName
	identity.LastName = updated.LastName
	if updated.Email != "" {
		identity.Email = updated.Email
	}
	if err := h.Sessions.UpdateIdentity(r.Context(), session.ID, identity); err != nil {
		h.logger().Warn("session identity refresh failed", "error", err)
	}

	h.redirectWithToast(w, r, "/profile", "Profile updated successfully!")
}

// profileFromRequest echoes submitted values back into the profile shape the
// template renders, so a failed submit doesn't wipe the form.
func profileFromRequest(req model.UserUpdateRequest) model.UserResponse {
	return model.UserResponse{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		PhoneNumber: req.PhoneNumber,
		Address:     req.Address,
		City:        req.City,
		State:       req.State,
		ZipCode:     req.ZipCode,
		Country:     req.Country,
	}
}

func profileMeta() PageMeta {
	return PageMeta{Title: "Profile", PageTitle: "My Profile", CurrentPage: PageProfile}
}
