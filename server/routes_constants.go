package server

// Route path constants
// All application routes are defined here to ensure consistency and prevent typos
const (
	RouteIndex = "/"

	// Auth Routes - Login & Logout
	RouteLogin  = "/login"
	RouteLogout = "/logout"

	// Dashboard Routes
	RouteDashboard      = "/dashboard"
	RouteUsers          = "/users"
	RouteUser           = "/users/{id}"
	RouteUserDelete     = "/users/{id}/delete"
	RouteOrganizations  = "/organizations"
	RouteOrganization   = "/organizations/{id}"
	RouteSettings       = "/settings"
	RouteProfile        = "/perfil"
	RouteDomusEndpoints = "/domus-endpoints"

	// API Routes
	RouteAPIHealth = "/api/health"

	// Static Asset Routes (patterns)
	RouteStatic = "/static/{path...}"
)
