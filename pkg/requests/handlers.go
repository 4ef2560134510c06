// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package requests

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	httptypes "github.com/canonical/ops-console/internal/http/types"
	"github.com/canonical/ops-console/internal/logging"
	"github.com/canonical/ops-console/internal/tracing"
	"github.com/canonical/ops-console/internal/types"
	"github.com/canonical/ops-console/pkg/authentication"
)

const (
	defaultPageSize uint64 = 50
	maxPageSize     uint64 = 200
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

func (a *API) RegisterUserEndpoints(mux chi.Router) {
	mux.Post("/requests", a.submit)
	mux.Get("/requests/mine", a.listMine)
	mux.Get("/requests/{id}", a.get)
	mux.Post("/requests/{id}/cancel", a.cancel)
}

func (a *API) RegisterAdminEndpoints(mux chi.Router) {
	mux.Get("/requests", a.listAll)
	mux.Post("/requests/{id}/accept", a.accept)
	mux.Post("/requests/{id}/reject", a.reject)
	mux.Get("/requests/{id}/credential-config", a.credentialConfig)
	mux.Post("/requests/{id}/assign-credential", a.assignCredential)
}

type submitRequest struct {
	EmployeeID string `json:"employee_id" validate:"required"`
	CompanyID  string `json:"company_id" validate:"required"`
	ToolID     string `json:"tool_id" validate:"required"`
}

func (a *API) submit(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "requests.API.submit")
	defer span.End()

	principal, ok := authentication.GetPrincipal(ctx)
	if !ok {
		httptypes.WriteErrors(w, http.StatusUnauthorized, "unauthenticated", "unauthenticated")
		return
	}

	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httptypes.WriteErrors(w, http.StatusBadRequest, "invalid request body", "invalid JSON payload")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		httptypes.WriteErrors(w, http.StatusBadRequest, "invalid request body", "employee_id, company_id and tool_id are required")
		return
	}

	request, err := a.service.Submit(ctx, principal.User.ID, req.EmployeeID, req.CompanyID, req.ToolID, principal.Session.ID)
	if err != nil {
		a.logger.Errorf("failed to submit request: %v", err)
		httptypes.WriteServiceError(w, err)
		return
	}

	httptypes.WriteData(w, http.StatusCreated, "request submitted", request)
}

func (a *API) accept(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "requests.API.accept")
	defer span.End()

	principal, ok := authentication.GetPrincipal(ctx)
	if !ok {
		httptypes.WriteErrors(w, http.StatusUnauthorized, "unauthenticated", "unauthenticated")
		return
	}

	id := chi.URLParam(r, "id")
	if err := a.service.Accept(ctx, id, principal.User.ID); err != nil {
		a.logger.Errorf("failed to accept request %s: %v", id, err)
		httptypes.WriteServiceError(w, err)
		return
	}

	httptypes.WriteData(w, http.StatusOK, "request accepted", nil)
}

func (a *API) reject(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "requests.API.reject")
	defer span.End()

	principal, ok := authentication.GetPrincipal(ctx)
	if !ok {
		httptypes.WriteErrors(w, http.StatusUnauthorized, "unauthenticated", "unauthenticated")
		return
	}

	id := chi.URLParam(r, "id")
	if err := a.service.Reject(ctx, id, principal.User.ID); err != nil {
		a.logger.Errorf("failed to reject request %s: %v", id, err)
		httptypes.WriteServiceError(w, err)
		return
	}

	httptypes.WriteData(w, http.StatusOK, "request rejected", nil)
}

type assignCredentialRequest struct {
	Host     string `json:"host" validate:"required"`
	Database string `json:"database" validate:"required"`
	DBUser   string `json:"db_user" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (a *API) assignCredential(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "requests.API.assignCredential")
	defer span.End()

	principal, ok := authentication.GetPrincipal(ctx)
	if !ok {
		httptypes.WriteErrors(w, http.StatusUnauthorized, "unauthenticated", "unauthenticated")
		return
	}

	var req assignCredentialRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httptypes.WriteErrors(w, http.StatusBadRequest, "invalid request body", "invalid JSON payload")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		httptypes.WriteErrors(w, http.StatusBadRequest, "invalid request body", "host, database, db_user and password are required")
		return
	}

	id := chi.URLParam(r, "id")
	assignment, err := a.service.AssignCredential(ctx, id, principal.User.ID, CredentialInfo{
		Host:     req.Host,
		Database: req.Database,
		DBUser:   req.DBUser,
		Password: req.Password,
	})
	if err != nil {
		a.logger.Errorf("failed to assign credential to request %s: %v", id, err)
		httptypes.WriteServiceError(w, err)
		return
	}

	httptypes.WriteData(w, http.StatusCreated, "credential assigned", assignment)
}

func (a *API) cancel(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "requests.API.cancel")
	defer span.End()

	principal, ok := authentication.GetPrincipal(ctx)
	if !ok {
		httptypes.WriteErrors(w, http.StatusUnauthorized, "unauthenticated", "unauthenticated")
		return
	}

	id := chi.URLParam(r, "id")
	if err := a.service.Cancel(ctx, id, principal.User.ID); err != nil {
		a.logger.Errorf("failed to cancel request %s: %v", id, err)
		httptypes.WriteServiceError(w, err)
		return
	}

	httptypes.WriteData(w, http.StatusOK, "request cancelled", nil)
}

// get serves a single request to its owner or to any admin.
func (a *API) get(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "requests.API.get")
	defer span.End()

	principal, ok := authentication.GetPrincipal(ctx)
	if !ok {
		httptypes.WriteErrors(w, http.StatusUnauthorized, "unauthenticated", "unauthenticated")
		return
	}

	id := chi.URLParam(r, "id")
	request, err := a.service.Get(ctx, id)
	if err != nil {
		httptypes.WriteServiceError(w, err)
		return
	}

	if request.RequesterID != principal.User.ID && principal.User.Role != types.RoleAdmin {
		httptypes.WriteErrors(w, http.StatusForbidden, "forbidden", "forbidden")
		return
	}

	httptypes.WriteData(w, http.StatusOK, "request", request)
}

func (a *API) listMine(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "requests.API.listMine")
	defer span.End()

	principal, ok := authentication.GetPrincipal(ctx)
	if !ok {
		httptypes.WriteErrors(w, http.StatusUnauthorized, "unauthenticated", "unauthenticated")
		return
	}

	list, err := a.service.ListMine(ctx, principal.User.ID)
	if err != nil {
		a.logger.Errorf("failed to list requests: %v", err)
		httptypes.WriteServiceError(w, err)
		return
	}

	httptypes.WriteData(w, http.StatusOK, "requests", list)
}

func (a *API) listAll(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "requests.API.listAll")
	defer span.End()

	page := parsePositive(r.URL.Query().Get("page"), 1)
	size := parsePositive(r.URL.Query().Get("size"), defaultPageSize)
	if size > maxPageSize {
		size = maxPageSize
	}

	list, err := a.service.ListAll(ctx, page, size)
	if err != nil {
		a.logger.Errorf("failed to list requests: %v", err)
		httptypes.WriteServiceError(w, err)
		return
	}

	httptypes.WriteData(w, http.StatusOK, "requests", list)
}

// parsePositive reads a positive integer query parameter, falling back to the
// default on anything absent or malformed.
func parsePositive(raw string, fallback uint64) uint64 {
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || v == 0 {
		return fallback
	}
	return v
}

func (a *API) credentialConfig(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "requests.API.credentialConfig")
	defer span.End()

	id := chi.URLParam(r, "id")
	config, err := a.service.CredentialConfig(ctx, id)
	if err != nil {
		httptypes.WriteServiceError(w, err)
		return
	}

	httptypes.WriteData(w, http.StatusOK, "credential configuration", config)
}
