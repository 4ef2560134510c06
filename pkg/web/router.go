// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"net/http"
	"time"

	chi "github.com/go-chi/chi/v5"
	middleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/canonical/ops-console/internal/logging"
	"github.com/canonical/ops-console/internal/monitoring"
	"github.com/canonical/ops-console/internal/tracing"
	"github.com/canonical/ops-console/internal/types"
	"github.com/canonical/ops-console/pkg/access"
	"github.com/canonical/ops-console/pkg/authentication"
	"github.com/canonical/ops-console/pkg/diagnostics"
	"github.com/canonical/ops-console/pkg/entitlements"
	"github.com/canonical/ops-console/pkg/metrics"
	"github.com/canonical/ops-console/pkg/requests"
	"github.com/canonical/ops-console/pkg/status"
)

// RouterConfig carries the request-surface knobs the router needs.
type RouterConfig struct {
	SessionLifetime time.Duration
	CookieSecure    bool
}

func NewRouter(
	cfg RouterConfig,
	authService authentication.ServiceInterface,
	entitlementsService entitlements.ServiceInterface,
	requestsService requests.ServiceInterface,
	accessService access.ServiceInterface,
	diagnosticsService diagnostics.ServiceInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) http.Handler {
	router := chi.NewMux()

	middlewares := make(chi.Middlewares, 0)
	middlewares = append(
		middlewares,
		middleware.RequestID,
		monitoring.NewMiddleware(monitor, logger).ResponseTime(),
		middlewareCORS([]string{"*"}),
	)

	router.Use(middlewares...)

	metrics.NewAPI(logger).RegisterEndpoints(router)
	status.NewAPI(tracer, monitor, logger).RegisterEndpoints(router)

	// Login and logout stay outside the gate; logout clears the carrier
	// even when the session is already dead.
	authentication.NewAPI(authService, cfg.SessionLifetime, cfg.CookieSecure, logger).RegisterEndpoints(router)

	gate := authentication.NewMiddleware(authService, cfg.CookieSecure, tracer, monitor, logger)

	entitlementsAPI := entitlements.NewAPI(entitlementsService, tracer, logger)
	requestsAPI := requests.NewAPI(requestsService, tracer, logger)

	router.Group(func(r chi.Router) {
		r.Use(gate.Gate(nil))

		entitlementsAPI.RegisterUserEndpoints(r)
		requestsAPI.RegisterUserEndpoints(r)
	})

	adminRole := types.RoleAdmin
	router.Group(func(r chi.Router) {
		r.Use(gate.Gate(&adminRole))

		entitlementsAPI.RegisterAdminEndpoints(r)
		requestsAPI.RegisterAdminEndpoints(r)
		access.NewAPI(accessService, tracer, logger).RegisterAdminEndpoints(r)
		diagnostics.NewAPI(diagnosticsService, tracer, logger).RegisterAdminEndpoints(r)
	})

	return tracing.NewMiddleware(monitor, logger).OpenTelemetry(router)
}

func middlewareCORS(origins []string) func(http.Handler) http.Handler {
	return cors.Handler(
		cors.Options{
			AllowedOrigins:   origins,
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Content-Type"},
			AllowCredentials: true,
			MaxAge:           300,
		},
	)
}
