package server

import (
	"net/http"
	"path"
	"strings"

	"github.com/rs/zerolog/log"
)

// Decision is the outcome of the route guard for a single request
type Decision int

const (
	Pass Decision = iota
	RedirectToLogin
	RedirectToDashboard
)

func (d Decision) String() string {
	switch d {
	case RedirectToLogin:
		return "redirect_login"
	case RedirectToDashboard:
		return "redirect_dashboard"
	default:
		return "pass"
	}
}

// Paths the guard never redirects
var guardExcludedPrefixes = []string{
	"/api",
	"/_next/static",
	"/_next/image",
	"/static/",
}

var guardExcludedExtensions = map[string]struct{}{
	".png":  {},
	".jpg":  {},
	".jpeg": {},
	".gif":  {},
	".svg":  {},
	".ico":  {},
	".webp": {},
}

// RouteGuard redirects page requests based only on whether a session cookie is present.
// It never decodes the cookie, so an expired session still counts as present here;
// the page handlers find out it expired when they load it.
type RouteGuard struct {
	cookieName string
}

func NewRouteGuard(cookieName string) *RouteGuard {
	return &RouteGuard{cookieName: cookieName}
}

// Excluded reports whether path bypasses the guard entirely
func (g *RouteGuard) Excluded(p string) bool {
	for _, prefix := range guardExcludedPrefixes {
		if strings.HasPrefix(p, prefix) {
			return true
		}
	}
	_, image := guardExcludedExtensions[strings.ToLower(path.Ext(p))]
	return image
}

// Decide is the guard's state machine for a non excluded path
func (g *RouteGuard) Decide(p string, hasSession bool) Decision {
	isLogin := strings.HasPrefix(p, RouteLogin)
	isProtected := !isLogin && p != RouteIndex

	switch {
	case isLogin && hasSession:
		return RedirectToDashboard
	case isProtected && !hasSession:
		return RedirectToLogin
	default:
		return Pass
	}
}

// HasSession reports whether the request carries a non empty session cookie.
// An empty value is what a deletion leaves behind, so it counts as absent.
func (g *RouteGuard) HasSession(r *http.Request) bool {
	cookie, err := r.Cookie(g.cookieName)
	return err == nil && cookie.Value != ""
}

func (g *RouteGuard) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p := r.URL.Path
		if g.Excluded(p) {
			next.ServeHTTP(w, r)
			return
		}

		hasSession := g.HasSession(r)
		decision := g.Decide(p, hasSession)
		log.Debug().
			Str("path", p).
			Bool("has_session", hasSession).
			Stringer("decision", decision).
			Msg("Route guard")

		switch decision {
		case RedirectToDashboard:
			redirectSuccess(w, r, RouteDashboard)
		case RedirectToLogin:
			redirectSuccess(w, r, RouteLogin)
		default:
			next.ServeHTTP(w, r)
		}
	})
}
