package server

import (
	"net/http"
	"strings"

	"github.com/jrsteele09/crm-gateway-admin/domus"
	"github.com/rs/zerolog/log"
)

type SettingsPageData struct {
	Credential domus.Credential
}

// SettingsHandler shows the Domus credentials of the session's tenant
func (s *Server) SettingsHandler() http.HandlerFunc {
	tmpl := mustParse(ParsePage("settings.html"))

	return func(w http.ResponseWriter, r *http.Request) {
		page := s.newPageData(r, "settings", "Ajustes de CRM")

		cred, err := s.backend.Domus(page.Session).Get(r.Context())
		if err != nil {
			log.Warn().Err(err).Msg("Failed to load Domus credentials")
			page.Error = userMessage(err)
			cred = domus.DefaultCredential()
		}

		page.Data = SettingsPageData{Credential: cred}
		renderPage(w, r, tmpl, page)
	}
}

// SettingsUpdateHandler stores the Domus credentials
func (s *Server) SettingsUpdateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form data", http.StatusBadRequest)
			return
		}

		input, err := parseDomusForm(r)
		if err != nil {
			redirectWithError(w, r, RouteSettings, "ID Inmobiliaria debe ser un número.")
			return
		}
		if messages := s.validateForm(input); len(messages) > 0 {
			redirectWithError(w, r, RouteSettings, strings.Join(messages, " "))
			return
		}

		if _, err := s.backend.Domus(currentSession(r)).Update(r.Context(), input); err != nil {
			log.Warn().Err(err).Msg("Failed to update Domus credentials")
			redirectWithError(w, r, RouteSettings, userMessage(err))
			return
		}

		log.Info().Str("slug", currentSession(r).TenantSlug).Msg("Domus credentials updated")
		redirectWithMessage(w, r, RouteSettings, "Credenciales de Domus guardadas exitosamente.")
	}
}
