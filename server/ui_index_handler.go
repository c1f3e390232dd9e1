package server

import (
	"net/http"
)

// SupportedCRM is a card on the public landing page
type SupportedCRM struct {
	ID          string
	Name        string
	Description string
}

var supportedCRMs = []SupportedCRM{
	{ID: "domus", Name: "Domus", Description: "El CRM inmobiliario líder para optimizar la gestión de propiedades y procesos de venta."},
	{ID: "siesa", Name: "Siesa", Description: "Soluciones integrales de ERP y CRM para empresas en crecimiento, unificando todas sus operaciones."},
	{ID: "inventario-agil", Name: "Inventario Agil", Description: "Optimice su inventario y conéctelo sin problemas con sus canales de venta."},
	{ID: "wasi", Name: "Wasi", Description: "Una potente plataforma para que los profesionales inmobiliarios gestionen clientes y propiedades."},
}

// IndexHandler renders the public home page
func (s *Server) IndexHandler() http.HandlerFunc {
	tmpl := mustParse(ParseTemplate("index.html"))

	return func(w http.ResponseWriter, r *http.Request) {
		data := map[string]interface{}{
			"AppName": s.config.GetAppName(),
			"CRMs":    supportedCRMs,
		}
		renderPage(w, r, tmpl, data)
	}
}
