// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package access

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	httptypes "github.com/canonical/ops-console/internal/http/types"
	"github.com/canonical/ops-console/internal/logging"
	"github.com/canonical/ops-console/internal/tracing"
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

// RegisterAdminEndpoints mounts the server and allow-list management routes.
// All of them are admin-only; the router's gate enforces that.
func (a *API) RegisterAdminEndpoints(mux chi.Router) {
	mux.Post("/servers", a.createServer)
	mux.Get("/servers", a.listServers)
	mux.Get("/servers/{id}", a.getServer)
	mux.Get("/servers/{id}/databases", a.listDatabases)
	mux.Post("/servers/{id}/databases", a.addDatabase)
	mux.Post("/servers/{id}/databases/grant", a.grantAccess)
	mux.Post("/servers/{id}/databases/revoke", a.revokeAccess)
}

type createServerRequest struct {
	Host          string `json:"host" validate:"required"`
	AdminUser     string `json:"admin_user" validate:"required"`
	AdminPassword string `json:"admin_password" validate:"required"`
	Description   string `json:"description"`
}

func (a *API) createServer(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "access.API.createServer")
	defer span.End()

	var req createServerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httptypes.WriteErrors(w, http.StatusBadRequest, "invalid request body", "invalid JSON payload")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		httptypes.WriteErrors(w, http.StatusBadRequest, "invalid request body", "host, admin_user and admin_password are required")
		return
	}

	server, err := a.service.CreateServer(ctx, ServerInfo{
		Host:          req.Host,
		AdminUser:     req.AdminUser,
		AdminPassword: req.AdminPassword,
		Description:   req.Description,
	})
	if err != nil {
		a.logger.Errorf("failed to create server: %v", err)
		httptypes.WriteServiceError(w, err)
		return
	}

	httptypes.WriteData(w, http.StatusCreated, "server registered", server)
}

func (a *API) getServer(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "access.API.getServer")
	defer span.End()

	server, err := a.service.GetServer(ctx, chi.URLParam(r, "id"))
	if err != nil {
		httptypes.WriteServiceError(w, err)
		return
	}

	httptypes.WriteData(w, http.StatusOK, "server", server)
}

func (a *API) listServers(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "access.API.listServers")
	defer span.End()

	servers, err := a.service.ListServers(ctx)
	if err != nil {
		a.logger.Errorf("failed to list servers: %v", err)
		httptypes.WriteServiceError(w, err)
		return
	}

	httptypes.WriteData(w, http.StatusOK, "servers", servers)
}

type databaseRequest struct {
	Database string `json:"database" validate:"required"`
}

func (a *API) addDatabase(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "access.API.addDatabase")
	defer span.End()

	req, ok := a.decodeDatabase(w, r)
	if !ok {
		return
	}

	entry, err := a.service.AddDatabase(ctx, chi.URLParam(r, "id"), req.Database)
	if err != nil {
		a.logger.Errorf("failed to add allow-list entry: %v", err)
		httptypes.WriteServiceError(w, err)
		return
	}

	httptypes.WriteData(w, http.StatusCreated, "database registered", entry)
}

func (a *API) grantAccess(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "access.API.grantAccess")
	defer span.End()

	req, ok := a.decodeDatabase(w, r)
	if !ok {
		return
	}

	if err := a.service.GrantAccess(ctx, chi.URLParam(r, "id"), req.Database); err != nil {
		a.logger.Errorf("failed to grant allow-list access: %v", err)
		httptypes.WriteServiceError(w, err)
		return
	}

	httptypes.WriteData(w, http.StatusOK, "access granted", nil)
}

func (a *API) revokeAccess(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "access.API.revokeAccess")
	defer span.End()

	req, ok := a.decodeDatabase(w, r)
	if !ok {
		return
	}

	if err := a.service.RevokeAccess(ctx, chi.URLParam(r, "id"), req.Database); err != nil {
		a.logger.Errorf("failed to revoke allow-list access: %v", err)
		httptypes.WriteServiceError(w, err)
		return
	}

	httptypes.WriteData(w, http.StatusOK, "access revoked", nil)
}

func (a *API) listDatabases(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "access.API.listDatabases")
	defer span.End()

	entries, err := a.service.ListDatabases(ctx, chi.URLParam(r, "id"))
	if err != nil {
		httptypes.WriteServiceError(w, err)
		return
	}

	httptypes.WriteData(w, http.StatusOK, "allow-listed databases", entries)
}

func (a *API) decodeDatabase(w http.ResponseWriter, r *http.Request) (*databaseRequest, bool) {
	var req databaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httptypes.WriteErrors(w, http.StatusBadRequest, "invalid request body", "invalid JSON payload")
		return nil, false
	}
	if err := a.validate.Struct(req); err != nil {
		httptypes.WriteErrors(w, http.StatusBadRequest, "invalid request body", "database is required")
		return nil, false
	}
	return &req, true
}
