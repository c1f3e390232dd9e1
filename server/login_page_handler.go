package server

import (
	"net/http"

	"github.com/jrsteele09/crm-gateway-admin/crmapi"
	"github.com/rs/zerolog/log"
)

// LoginPageData contains data for rendering the login page
type LoginPageData struct {
	AppName string
	Slug    string // Preserved on error
	Email   string // Preserved on error
	Errors  []string
}

// LoginPageHandler displays the login page (GET /login)
func (s *Server) LoginPageHandler() http.HandlerFunc {
	loginTmpl := mustParse(ParseTemplate("login.html"))

	return func(w http.ResponseWriter, r *http.Request) {
		data := LoginPageData{
			AppName: s.config.GetAppName(),
			Slug:    r.URL.Query().Get("slug"),
			Email:   r.URL.Query().Get("email"),
		}
		if msg := r.URL.Query().Get("error"); msg != "" {
			data.Errors = []string{msg}
		}
		renderPage(w, r, loginTmpl, data)
	}
}

// LoginSubmissionHandler exchanges the submitted credentials for tokens and starts the session
func (s *Server) LoginSubmissionHandler() http.HandlerFunc {
	loginTmpl := mustParse(ParseTemplate("login.html"))

	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form data", http.StatusBadRequest)
			return
		}

		form := parseLoginForm(r)
		renderError := func(status int, messages ...string) {
			renderPageStatus(w, r, status, loginTmpl, LoginPageData{
				AppName: s.config.GetAppName(),
				Slug:    form.Slug,
				Email:   form.Email,
				Errors:  messages,
			})
		}

		if messages := s.validateForm(form); len(messages) > 0 {
			renderError(http.StatusUnprocessableEntity, messages...)
			return
		}

		result, err := s.backend.Login(r.Context(), form.Slug, form.Email, form.Password)
		if err != nil {
			log.Info().Err(err).Str("slug", form.Slug).Str("email", form.Email).Msg("Login failed")
			renderError(http.StatusUnauthorized, crmapi.UserMessage(err))
			return
		}

		if _, err := s.sessions.Create(w, result.User, result.AccessToken, result.RefreshToken, form.Slug); err != nil {
			log.Err(err).Str("slug", form.Slug).Msg("Failed to create session")
			renderError(http.StatusBadGateway, "Invalid response from server.")
			return
		}

		log.Info().Int64("user_id", result.User.ID).Str("slug", form.Slug).Msg("User signed in")
		redirectSuccess(w, r, RouteDashboard)
	}
}

// LogoutHandler clears the session cookie and returns to the login page
func (s *Server) LogoutHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.sessions.Delete(w)
		redirectSuccess(w, r, RouteLogin)
	}
}
