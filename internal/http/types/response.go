// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/canonical/ops-console/internal/types"
)

// Response is the uniform envelope for all API payloads. A non-empty Errors
// slice signals a business-level failure even when the transport status is
// 200; authentication and authorization failures use 401/403 instead.
type Response struct {
	Timestamp time.Time   `json:"timestamp"`
	Errors    []string    `json:"errors"`
	Message   string      `json:"message"`
	Data      interface{} `json:"data,omitempty"`
}

func WriteData(w http.ResponseWriter, status int, message string, data interface{}) {
	write(w, status, Response{
		Timestamp: time.Now().UTC(),
		Message:   message,
		Data:      data,
	})
}

func WriteErrors(w http.ResponseWriter, status int, message string, errs ...string) {
	write(w, status, Response{
		Timestamp: time.Now().UTC(),
		Errors:    errs,
		Message:   message,
	})
}

// WriteServiceError maps the error taxonomy onto the envelope contract.
// Business-rule violations travel as a transport-level success with Errors
// populated; vault and remote-database faults surface a generic message only,
// the detail stays in the logs.
func WriteServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, types.ErrValidation):
		WriteErrors(w, http.StatusOK, "validation failed", err.Error())
	case errors.Is(err, types.ErrIllegalTransition):
		WriteErrors(w, http.StatusOK, "illegal transition", err.Error())
	case errors.Is(err, types.ErrConflict):
		WriteErrors(w, http.StatusOK, "conflict", err.Error())
	case errors.Is(err, types.ErrNotFound):
		WriteErrors(w, http.StatusOK, "not found", err.Error())
	case errors.Is(err, types.ErrAuthorization):
		WriteErrors(w, http.StatusForbidden, "forbidden", "forbidden")
	case errors.Is(err, types.ErrAuthentication):
		WriteErrors(w, http.StatusUnauthorized, "unauthenticated", "unauthenticated")
	case errors.Is(err, types.ErrDecryption), errors.Is(err, types.ErrInfrastructure):
		WriteErrors(w, http.StatusOK, "operation failed", "internal error")
	default:
		WriteErrors(w, http.StatusInternalServerError, "internal error", "internal error")
	}
}

func write(w http.ResponseWriter, status int, r Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(r)
}
