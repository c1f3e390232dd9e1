package server

import (
	"bytes"
	"html/template"
	"net/http"
	"strings"

	"github.com/jrsteele09/crm-gateway-admin/sessions"
	"github.com/rs/zerolog/log"
)

// NavLink is an entry of the dashboard sidebar
type NavLink struct {
	Href  string
	Label string
	Page  string
}

var navLinks = []NavLink{
	{Href: RouteDashboard, Label: "Panel", Page: "dashboard"},
	{Href: RouteUsers, Label: "Gestión de Usuarios", Page: "users"},
	{Href: RouteProfile, Label: "Mi Perfil", Page: "perfil"},
	{Href: RouteOrganizations, Label: "Organizaciones", Page: "organizations"},
	{Href: RouteDomusEndpoints, Label: "Endpoints Domus", Page: "domus-endpoints"},
	{Href: RouteSettings, Label: "Ajustes de CRM", Page: "settings"},
}

// PageData is the model shared by every dashboard page; Data holds the page specific part
type PageData struct {
	AppName    string
	PageTitle  string
	ActivePage string
	NavLinks   []NavLink
	Session    *sessions.Payload
	Error      string
	Success    string
	Data       any
}

// FirstName is used by the greeting on the dashboard
func (p PageData) FirstName() string {
	if p.Session == nil {
		return "Admin"
	}
	if names := strings.Fields(p.Session.User.FullName); len(names) > 0 {
		return names[0]
	}
	return "Admin"
}

func (s *Server) newPageData(r *http.Request, activePage, pageTitle string) PageData {
	q := r.URL.Query()
	return PageData{
		AppName:    s.config.GetAppName(),
		PageTitle:  pageTitle,
		ActivePage: activePage,
		NavLinks:   navLinks,
		Session:    currentSession(r),
		Error:      q.Get("error"),
		Success:    q.Get("success"),
	}
}

func renderPage(w http.ResponseWriter, r *http.Request, tmpl *template.Template, data any) {
	renderPageStatus(w, r, http.StatusOK, tmpl, data)
}

// renderPageStatus executes a page into a buffer first so a template error never leaves a half written response
func renderPageStatus(w http.ResponseWriter, r *http.Request, status int, tmpl *template.Template, data any) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		log.Err(err).Str("path", r.URL.Path).Str("template", tmpl.Name()).Msg("Failed to render template")
		http.Error(w, "Failed to render page", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", contentTypeHTML)
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

// DashboardData summarises the tenant on the landing page after login
type DashboardData struct {
	UserCount       int
	UsersError      string
	DomusConfigured bool
	DomusError      string
	EndpointCount   int
}

// DashboardHandler renders the admin dashboard
func (s *Server) DashboardHandler() http.HandlerFunc {
	tmpl := mustParse(ParsePage("dashboard.html"))

	return func(w http.ResponseWriter, r *http.Request) {
		page := s.newPageData(r, "dashboard", "Panel")
		session := page.Session
		data := DashboardData{EndpointCount: domusEndpointCount()}

		if list, err := s.backend.Users(session).List(r.Context()); err != nil {
			log.Warn().Err(err).Msg("Dashboard: failed to list users")
			data.UsersError = userMessage(err)
		} else {
			data.UserCount = len(list)
		}

		if cred, err := s.backend.Domus(session).Get(r.Context()); err != nil {
			log.Warn().Err(err).Msg("Dashboard: failed to load Domus credentials")
			data.DomusError = userMessage(err)
		} else {
			data.DomusConfigured = cred.Configured()
		}

		page.Data = data
		renderPage(w, r, tmpl, page)
	}
}
