// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	httptypes "github.com/canonical/ops-console/internal/http/types"
	"github.com/canonical/ops-console/internal/logging"
	"github.com/canonical/ops-console/internal/types"
)

type API struct {
	service      ServiceInterface
	lifetime     time.Duration
	cookieSecure bool

	validate *validator.Validate
	logger   logging.LoggerInterface
}

func NewAPI(service ServiceInterface, lifetime time.Duration, cookieSecure bool, logger logging.LoggerInterface) *API {
	a := new(API)

	a.service = service
	a.lifetime = lifetime
	a.cookieSecure = cookieSecure
	a.validate = validator.New()
	a.logger = logger

	return a
}

func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Post("/login", a.login)
	mux.Post("/logout", a.logout)
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (a *API) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httptypes.WriteErrors(w, http.StatusBadRequest, "invalid request body", "invalid JSON payload")
		return
	}

	if err := a.validate.Struct(req); err != nil {
		httptypes.WriteErrors(w, http.StatusBadRequest, "invalid request body", "email and password are required")
		return
	}

	token, user, err := a.service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, types.ErrAuthentication) {
			httptypes.WriteErrors(w, http.StatusUnauthorized, "invalid credentials", "invalid credentials")
			return
		}
		a.logger.Errorf("login failed: %v", err)
		httptypes.WriteErrors(w, http.StatusInternalServerError, "login failed", "internal error")
		return
	}

	setSessionCookie(w, token, a.lifetime, a.cookieSecure)
	httptypes.WriteData(w, http.StatusOK, "logged in", map[string]any{
		"user_id": user.ID,
		"role":    user.Role,
	})
}

func (a *API) logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(CookieName); err == nil && cookie.Value != "" {
		if err := a.service.Logout(r.Context(), cookie.Value); err != nil {
			a.logger.Errorf("logout failed: %v", err)
		}
	}

	// Clearing the carrier is unconditional, logout is idempotent.
	clearSessionCookie(w, a.cookieSecure)
	httptypes.WriteData(w, http.StatusOK, "logged out", nil)
}
