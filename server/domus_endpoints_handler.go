package server

import (
	"net/http"

	"github.com/jrsteele09/crm-gateway-admin/crmapi"
	"github.com/jrsteele09/crm-gateway-admin/domus"
)

type DomusEndpointsPageData struct {
	BaseURL string
	Groups  []domus.EndpointGroup
}

func domusEndpointCount() int {
	n := 0
	for _, g := range domus.Catalogue() {
		n += len(g.Endpoints)
	}
	return n
}

// DomusEndpointsHandler renders the catalogue of gateway routes, prefixed with the tenant's base URL
func (s *Server) DomusEndpointsHandler() http.HandlerFunc {
	tmpl := mustParse(ParsePage("domus_endpoints.html"))
	api := crmapi.New(s.config)

	return func(w http.ResponseWriter, r *http.Request) {
		page := s.newPageData(r, "domus-endpoints", "Endpoints Domus")
		page.Data = DomusEndpointsPageData{
			BaseURL: api.TenantURL(page.Session.TenantSlug, "domus"),
			Groups:  domus.Catalogue(),
		}
		renderPage(w, r, tmpl, page)
	}
}
