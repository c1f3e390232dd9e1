package server

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/jrsteele09/crm-gateway-admin/crmapi"
	"github.com/jrsteele09/crm-gateway-admin/domus"
	"github.com/jrsteele09/crm-gateway-admin/internal/config"
	"github.com/jrsteele09/crm-gateway-admin/sessions"
	"github.com/jrsteele09/crm-gateway-admin/tenants"
	"github.com/jrsteele09/crm-gateway-admin/users"
	"github.com/rs/zerolog/log"
)

// Backend is the upstream the dashboard manages. Each repo is scoped to the
// signed-in session so calls carry its access token and tenant slug.
type Backend interface {
	Login(ctx context.Context, slug, email, password string) (*crmapi.LoginResult, error)
	Users(p *sessions.Payload) users.Repo
	Tenants(p *sessions.Payload) tenants.Repo
	Domus(p *sessions.Payload) domus.Repo
}

var _ Backend = (*crmapi.Client)(nil)

type Server struct {
	env      string // Environment (e.g., "DEV", "PROD")
	mux      *http.ServeMux
	handler  http.Handler
	routes   []string
	config   config.Config
	sessions *sessions.Store
	backend  Backend
	guard    *RouteGuard
	validate *validator.Validate
}

func New(config config.Config, store *sessions.Store, backend Backend) (*Server, error) {
	if store == nil || backend == nil {
		return nil, fmt.Errorf("[Server New] session store and backend are required")
	}

	s := &Server{
		env:      config.GetEnv(),
		mux:      http.NewServeMux(),
		config:   config,
		sessions: store,
		backend:  backend,
		guard:    NewRouteGuard(store.CookieName()),
		validate: newValidator(),
	}

	if err := s.initRoutes(); err != nil {
		return nil, fmt.Errorf("[Server New] failed to register routes: %w", err)
	}
	s.handler = s.guard.Middleware(s.mux)
	s.logRoutes()

	return s, nil
}

// ServeHTTP runs every request through the route guard before the mux
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

func (s *Server) RegisterRouteHandler(pattern string, handler http.Handler) {
	s.routes = append(s.routes, pattern)
	s.mux.Handle(pattern, handler)
}

func (s *Server) RegisterRouteFunc(pattern string, handler func(http.ResponseWriter, *http.Request)) {
	s.routes = append(s.routes, pattern)
	s.mux.HandleFunc(pattern, handler)
}

func (s *Server) logRoutes() {
	if !s.config.IsDevelopment() {
		return
	}
	for _, route := range s.routes {
		parts := strings.SplitN(route, " ", 2)

		if len(parts) > 1 {
			logRoute(parts[0], parts[1])
		} else {
			logRoute("", parts[0])
		}
	}
}

func logRoute(method, path string) {
	log.Info().Msgf("[%-19s] %s", colourMethod(method), path)
}

func logError(method, path, error string) {
	log.Error().Msgf("[%-19s] %s %s", colourMethod(method), path, Red+error+ResetColor)
}

func colourMethod(method string) string {
	paddedMethod := fmt.Sprintf(" %-7s", method)
	if color, ok := methodColors[method]; ok {
		return color + paddedMethod + ResetColor
	}
	return Gray + paddedMethod + ResetColor
}
