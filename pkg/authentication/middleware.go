// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"net/http"
	"strings"

	httptypes "github.com/canonical/ops-console/internal/http/types"
	"github.com/canonical/ops-console/internal/logging"
	"github.com/canonical/ops-console/internal/monitoring"
	"github.com/canonical/ops-console/internal/tracing"
	"github.com/canonical/ops-console/internal/types"
)

const (
	loginPath  = "/login"
	deniedPath = "/denied"
)

// Middleware is the access gate every protected operation sits behind.
type Middleware struct {
	service      ServiceInterface
	cookieSecure bool

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewMiddleware(
	service ServiceInterface,
	cookieSecure bool,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Middleware {
	return &Middleware{
		service:      service,
		cookieSecure: cookieSecure,
		tracer:       tracer,
		monitor:      monitor,
		logger:       logger,
	}
}

// Gate returns an interceptor admitting only authenticated callers. With a
// non-nil requiredRole the caller's role must match, the role check is the
// security boundary regardless of which screen issued the request.
func (m *Middleware) Gate(requiredRole *types.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := m.tracer.Start(r.Context(), "authentication.Middleware.Gate")
			defer span.End()

			token := m.getSessionToken(r)
			principal, err := m.service.Validate(ctx, token)
			if err != nil {
				m.logger.Debugf("token validation failed: %v", err)
				// The carrier is proactively cleared, the token is
				// dead either way.
				clearSessionCookie(w, m.cookieSecure)
				m.unauthenticatedResponse(w, r)
				return
			}

			if requiredRole != nil && principal.User.Role != *requiredRole {
				m.logger.Security().AccessDenied(principal.User.ID, r.Method+" "+r.URL.Path)
				m.forbiddenResponse(w, r)
				return
			}

			ctx = WithPrincipal(ctx, principal)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func (m *Middleware) getSessionToken(r *http.Request) string {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

// Interactive callers get a redirect, programmatic ones a structured 401.
func (m *Middleware) unauthenticatedResponse(w http.ResponseWriter, r *http.Request) {
	if wantsHTML(r) {
		http.Redirect(w, r, loginPath, http.StatusSeeOther)
		return
	}

	httptypes.WriteErrors(w, http.StatusUnauthorized, "unauthenticated", "unauthenticated")
}

func (m *Middleware) forbiddenResponse(w http.ResponseWriter, r *http.Request) {
	if wantsHTML(r) {
		http.Redirect(w, r, deniedPath, http.StatusSeeOther)
		return
	}

	httptypes.WriteErrors(w, http.StatusForbidden, "forbidden", "forbidden")
}

func wantsHTML(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "text/html")
}
