package server

import (
	"net/http"
	"strings"
	"time"

	"github.com/jrsteele09/crm-gateway-admin/users"
	"github.com/rs/zerolog/log"
)

type ProfilePageData struct {
	User              users.User
	SessionExpiry     time.Time
	AccessTokenExpiry time.Time
	HasTokenExpiry    bool
}

// ProfileHandler shows the signed-in user's own account (GET /perfil)
func (s *Server) ProfileHandler() http.HandlerFunc {
	tmpl := mustParse(ParsePage("perfil.html"))

	return func(w http.ResponseWriter, r *http.Request) {
		page := s.newPageData(r, "perfil", "Mi Perfil")
		session := page.Session

		user := session.User
		if u, err := s.backend.Users(session).Get(r.Context(), session.User.ID); err != nil {
			log.Warn().Err(err).Int64("user_id", session.User.ID).Msg("Failed to load profile")
			page.Error = "Error al cargar el perfil: " + userMessage(err)
		} else {
			user = *u
		}

		data := ProfilePageData{
			User:          user,
			SessionExpiry: session.Expiry(),
		}
		data.AccessTokenExpiry, data.HasTokenExpiry = session.AccessTokenExpiry()

		page.Data = data
		renderPage(w, r, tmpl, page)
	}
}

// ProfileUpdateHandler updates name, email and optionally the password of the signed-in user.
// The role is never sent from this form.
func (s *Server) ProfileUpdateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form data", http.StatusBadRequest)
			return
		}

		input := parseUserForm(r)
		input.Role = ""
		if messages := s.validateForm(input); len(messages) > 0 {
			redirectWithError(w, r, RouteProfile, strings.Join(messages, " "))
			return
		}

		session := currentSession(r)
		if _, err := s.backend.Users(session).Update(r.Context(), session.User.ID, input); err != nil {
			log.Warn().Err(err).Int64("user_id", session.User.ID).Msg("Failed to update profile")
			redirectWithError(w, r, RouteProfile, "Ocurrió un error al actualizar tu perfil: "+userMessage(err))
			return
		}

		redirectWithMessage(w, r, RouteProfile, "Tu información ha sido actualizada exitosamente.")
	}
}
