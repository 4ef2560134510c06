// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/canonical/ops-console/internal/types"
)

func decode(t *testing.T, rr *httptest.ResponseRecorder) Response {
	t.Helper()

	var resp Response
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	return resp
}

func TestWriteServiceError(t *testing.T) {
	testCases := []struct {
		name           string
		err            error
		expectedStatus int
		expectedDetail string
	}{
		{
			name:           "validation is a business failure on 200",
			err:            fmt.Errorf("tool missing: %w", types.ErrValidation),
			expectedStatus: http.StatusOK,
			expectedDetail: "tool missing: validation failed",
		},
		{
			name:           "illegal transition is a business failure on 200",
			err:            fmt.Errorf("request already completed: %w", types.ErrIllegalTransition),
			expectedStatus: http.StatusOK,
			expectedDetail: "request already completed: illegal request transition",
		},
		{
			name:           "conflict is a business failure on 200",
			err:            fmt.Errorf("already assigned: %w", types.ErrConflict),
			expectedStatus: http.StatusOK,
			expectedDetail: "already assigned: conflict",
		},
		{
			name:           "missing referent is a business failure on 200",
			err:            fmt.Errorf("request %q: %w", "req-404", types.ErrNotFound),
			expectedStatus: http.StatusOK,
			expectedDetail: `request "req-404": resource not found`,
		},
		{
			name:           "authorization is a transport 403",
			err:            types.ErrAuthorization,
			expectedStatus: http.StatusForbidden,
			expectedDetail: "forbidden",
		},
		{
			name:           "authentication is a transport 401",
			err:            types.ErrAuthentication,
			expectedStatus: http.StatusUnauthorized,
			expectedDetail: "unauthenticated",
		},
		{
			name:           "decryption detail never leaves the process",
			err:            fmt.Errorf("wrong key for blob abc: %w", types.ErrDecryption),
			expectedStatus: http.StatusOK,
			expectedDetail: "internal error",
		},
		{
			name:           "unexpected faults are a plain 500",
			err:            errors.New("nil pointer somewhere"),
			expectedStatus: http.StatusInternalServerError,
			expectedDetail: "internal error",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			WriteServiceError(rr, tc.err)

			assert.Equal(t, tc.expectedStatus, rr.Code)

			resp := decode(t, rr)
			require.Len(t, resp.Errors, 1)
			assert.Equal(t, tc.expectedDetail, resp.Errors[0])
		})
	}
}

func TestWriteDataOmitsEmptyErrors(t *testing.T) {
	rr := httptest.NewRecorder()
	WriteData(rr, http.StatusOK, "servers", []string{"a"})

	resp := decode(t, rr)
	assert.Empty(t, resp.Errors)
	assert.Equal(t, "servers", resp.Message)
	assert.False(t, resp.Timestamp.IsZero())
}
