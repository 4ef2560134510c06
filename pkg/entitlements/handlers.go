// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package entitlements

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	httptypes "github.com/canonical/ops-console/internal/http/types"
	"github.com/canonical/ops-console/internal/logging"
	"github.com/canonical/ops-console/internal/tracing"
	"github.com/canonical/ops-console/pkg/authentication"
)

type API struct {
	service ServiceInterface

	validate *validator.Validate
	tracer   tracing.TracingInterface
	logger   logging.LoggerInterface
}

func NewAPI(service ServiceInterface, tracer tracing.TracingInterface, logger logging.LoggerInterface) *API {
	a := new(API)

	a.service = service
	a.validate = validator.New()
	a.tracer = tracer
	a.logger = logger

	return a
}

// RegisterUserEndpoints registers the routes open to any authenticated user.
func (a *API) RegisterUserEndpoints(mux chi.Router) {
	mux.Get("/entitlements/mine", a.listMine)
}

// RegisterAdminEndpoints registers the admin-only routes. The role check is
// enforced by the gate the router mounts in front of these, not here.
func (a *API) RegisterAdminEndpoints(mux chi.Router) {
	mux.Post("/entitlements/grant", a.grant)
	mux.Post("/entitlements/revoke", a.revoke)
	mux.Post("/entitlements/unrevoke", a.unrevoke)
	mux.Get("/entitlements/users/{id}", a.listForUser)
}

type entitlementRequest struct {
	UserID string `json:"user_id" validate:"required"`
	ToolID string `json:"tool_id" validate:"required"`
}

func (a *API) grant(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "entitlements.API.grant")
	defer span.End()

	principal, ok := authentication.GetPrincipal(ctx)
	if !ok {
		httptypes.WriteErrors(w, http.StatusUnauthorized, "unauthenticated", "unauthenticated")
		return
	}

	req, ok := a.decode(w, r)
	if !ok {
		return
	}

	entitlement, err := a.service.Grant(ctx, req.UserID, req.ToolID, principal.User.ID)
	if err != nil {
		a.logger.Errorf("failed to grant entitlement: %v", err)
		httptypes.WriteServiceError(w, err)
		return
	}

	httptypes.WriteData(w, http.StatusCreated, "entitlement granted", entitlement)
}

func (a *API) revoke(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "entitlements.API.revoke")
	defer span.End()

	req, ok := a.decode(w, r)
	if !ok {
		return
	}

	if err := a.service.Revoke(ctx, req.UserID, req.ToolID); err != nil {
		a.logger.Errorf("failed to revoke entitlement: %v", err)
		httptypes.WriteServiceError(w, err)
		return
	}

	httptypes.WriteData(w, http.StatusOK, "entitlement revoked", nil)
}

func (a *API) unrevoke(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "entitlements.API.unrevoke")
	defer span.End()

	principal, ok := authentication.GetPrincipal(ctx)
	if !ok {
		httptypes.WriteErrors(w, http.StatusUnauthorized, "unauthenticated", "unauthenticated")
		return
	}

	req, ok := a.decode(w, r)
	if !ok {
		return
	}

	entitlement, err := a.service.Unrevoke(ctx, req.UserID, req.ToolID, principal.User.ID)
	if err != nil {
		a.logger.Errorf("failed to unrevoke entitlement: %v", err)
		httptypes.WriteServiceError(w, err)
		return
	}

	httptypes.WriteData(w, http.StatusOK, "entitlement restored", entitlement)
}

func (a *API) listMine(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "entitlements.API.listMine")
	defer span.End()

	principal, ok := authentication.GetPrincipal(ctx)
	if !ok {
		httptypes.WriteErrors(w, http.StatusUnauthorized, "unauthenticated", "unauthenticated")
		return
	}

	entitlements, err := a.service.ListForUser(ctx, principal.User.ID, false)
	if err != nil {
		a.logger.Errorf("failed to list entitlements: %v", err)
		httptypes.WriteServiceError(w, err)
		return
	}

	httptypes.WriteData(w, http.StatusOK, "entitlements", entitlements)
}

// listForUser is the admin audit view, revoked rows included.
func (a *API) listForUser(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "entitlements.API.listForUser")
	defer span.End()

	userID := chi.URLParam(r, "id")
	entitlements, err := a.service.ListForUser(ctx, userID, true)
	if err != nil {
		a.logger.Errorf("failed to list entitlements for user %s: %v", userID, err)
		httptypes.WriteServiceError(w, err)
		return
	}

	httptypes.WriteData(w, http.StatusOK, "entitlements", entitlements)
}

func (a *API) decode(w http.ResponseWriter, r *http.Request) (*entitlementRequest, bool) {
	var req entitlementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httptypes.WriteErrors(w, http.StatusBadRequest, "invalid request body", "invalid JSON payload")
		return nil, false
	}
	if err := a.validate.Struct(req); err != nil {
		httptypes.WriteErrors(w, http.StatusBadRequest, "invalid request body", "user_id and tool_id are required")
		return nil, false
	}
	return &req, true
}
