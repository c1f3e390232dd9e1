package server

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/jrsteele09/crm-gateway-admin/tenants"
	"github.com/rs/zerolog/log"
)

type OrganizationsPageData struct {
	Organizations []tenants.Tenant
	Editing       *tenants.Tenant
}

// OrganizationsListHandler renders the organization management page
func (s *Server) OrganizationsListHandler() http.HandlerFunc {
	tmpl := mustParse(ParsePage("organizations.html"))

	return func(w http.ResponseWriter, r *http.Request) {
		page := s.newPageData(r, "organizations", "Organizaciones")
		data := OrganizationsPageData{}

		list, err := s.backend.Tenants(page.Session).List(r.Context())
		if err != nil {
			log.Warn().Err(err).Msg("Failed to list organizations")
			page.Error = userMessage(err)
		}
		data.Organizations = list

		// The API has no single organization endpoint, so the edit target comes from the list
		if raw := r.URL.Query().Get("edit"); raw != "" {
			id, _ := strconv.ParseInt(raw, 10, 64)
			for i := range list {
				if list[i].ID == id {
					data.Editing = &list[i]
					break
				}
			}
			if data.Editing == nil && err == nil {
				page.Error = "No se pudo encontrar la organización seleccionada."
			}
		}

		page.Data = data
		renderPage(w, r, tmpl, page)
	}
}

// OrganizationCreateHandler registers a new organization
func (s *Server) OrganizationCreateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form data", http.StatusBadRequest)
			return
		}

		input := parseTenantForm(r)
		if messages := s.validateForm(input); len(messages) > 0 {
			redirectWithError(w, r, RouteOrganizations, strings.Join(messages, " "))
			return
		}

		t, err := s.backend.Tenants(currentSession(r)).Create(r.Context(), input)
		if err != nil {
			log.Warn().Err(err).Str("slug", input.Slug).Msg("Failed to create organization")
			redirectWithError(w, r, RouteOrganizations, userMessage(err))
			return
		}

		log.Info().Int64("organization_id", t.ID).Str("slug", t.Slug).Msg("Organization created")
		redirectWithMessage(w, r, RouteOrganizations, "Organización creada exitosamente.")
	}
}

// OrganizationUpdateHandler patches an organization
func (s *Server) OrganizationUpdateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			http.Error(w, "Invalid organization id", http.StatusBadRequest)
			return
		}
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form data", http.StatusBadRequest)
			return
		}

		editURL := fmt.Sprintf("%s?edit=%d", RouteOrganizations, id)
		input := parseTenantForm(r)
		if messages := s.validateForm(input); len(messages) > 0 {
			redirectSuccess(w, r, editURL+"&error="+queryEscape(strings.Join(messages, " ")))
			return
		}

		if _, err := s.backend.Tenants(currentSession(r)).Update(r.Context(), id, input); err != nil {
			log.Warn().Err(err).Int64("organization_id", id).Msg("Failed to update organization")
			redirectSuccess(w, r, editURL+"&error="+queryEscape(userMessage(err)))
			return
		}

		log.Info().Int64("organization_id", id).Msg("Organization updated")
		redirectWithMessage(w, r, RouteOrganizations, "Organización actualizada exitosamente.")
	}
}
