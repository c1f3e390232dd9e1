package server

import (
	"fmt"
	"net/http"
)

func (s *Server) initRoutes() (err error) {
	// Template parse failures panic inside the handler constructors
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%v", r)
		}
	}()

	page := func(h http.HandlerFunc) http.HandlerFunc {
		return ChainMiddleware(h, s.HTMLMiddleWare(s.RequireSession())...)
	}
	public := func(h http.HandlerFunc) http.HandlerFunc {
		return ChainMiddleware(h, s.HTMLMiddleWare()...)
	}

	s.RegisterRouteFunc("GET /{$}", public(s.IndexHandler()))

	// LOGIN
	s.RegisterRouteFunc("GET "+RouteLogin, public(s.LoginPageHandler()))
	s.RegisterRouteFunc("POST "+RouteLogin, public(s.LoginSubmissionHandler()))
	s.RegisterRouteFunc("POST "+RouteLogout, public(s.LogoutHandler()))

	// Dashboard pages (require a valid session)
	s.RegisterRouteFunc("GET "+RouteDashboard, page(s.DashboardHandler()))
	s.RegisterRouteFunc("GET "+RouteUsers, page(s.UsersListHandler()))
	s.RegisterRouteFunc("POST "+RouteUsers, page(s.UserCreateHandler()))
	s.RegisterRouteFunc("POST "+RouteUser, page(s.UserUpdateHandler()))
	s.RegisterRouteFunc("POST "+RouteUserDelete, page(s.UserDeleteHandler()))
	s.RegisterRouteFunc("GET "+RouteOrganizations, page(s.OrganizationsListHandler()))
	s.RegisterRouteFunc("POST "+RouteOrganizations, page(s.OrganizationCreateHandler()))
	s.RegisterRouteFunc("POST "+RouteOrganization, page(s.OrganizationUpdateHandler()))
	s.RegisterRouteFunc("GET "+RouteSettings, page(s.SettingsHandler()))
	s.RegisterRouteFunc("POST "+RouteSettings, page(s.SettingsUpdateHandler()))
	s.RegisterRouteFunc("GET "+RouteProfile, page(s.ProfileHandler()))
	s.RegisterRouteFunc("POST "+RouteProfile, page(s.ProfileUpdateHandler()))
	s.RegisterRouteFunc("GET "+RouteDomusEndpoints, page(s.DomusEndpointsHandler()))

	// API routes
	s.RegisterRouteHandler("GET "+RouteAPIHealth, ChainMiddleware(s.HealthHandler(), s.APIMiddleware()...))
	s.RegisterRouteHandler("OPTIONS "+RouteAPIHealth, ChainMiddleware(s.HealthHandler(), s.APIMiddleware()...))

	s.RegisterRouteHandler("GET "+RouteStatic, ChainMiddleware(s.serveFileHandler(), s.StaticMiddleware()...))

	return nil
}
