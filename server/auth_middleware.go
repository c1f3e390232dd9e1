package server

import (
	"net/http"

	"github.com/jrsteele09/crm-gateway-admin/sessions"
	"github.com/rs/zerolog/log"
)

// RequireSession is middleware for dashboard pages. It loads the session cookie,
// which also clears it when expired or malformed, and stores the payload in the
// request context for the handler.
func (s *Server) RequireSession() func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			payload, ok := s.sessions.Get(w, r)
			if !ok {
				log.Debug().Str("path", r.URL.Path).Msg("No valid session, redirecting to login")
				redirectSuccess(w, r, RouteLogin)
				return
			}

			next(w, r.WithContext(sessions.NewContext(r.Context(), payload)))
		}
	}
}

// currentSession returns the payload RequireSession put in the request context
func currentSession(r *http.Request) *sessions.Payload {
	p, _ := sessions.FromContext(r.Context())
	return p
}
