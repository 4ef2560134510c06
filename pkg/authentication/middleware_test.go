// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/canonical/ops-console/internal/types"
)

func TestMiddleware_Gate(t *testing.T) {
	adminRole := types.RoleAdmin

	userPrincipal := &Principal{
		Session: &types.Session{ID: "session-1", UserID: "user-123", Active: true},
		User:    &types.User{ID: "user-123", Role: types.RoleUser, Active: true},
	}
	adminPrincipal := &Principal{
		Session: &types.Session{ID: "session-2", UserID: "admin-456", Active: true},
		User:    &types.User{ID: "admin-456", Role: types.RoleAdmin, Active: true},
	}

	testCases := []struct {
		name             string
		requiredRole     *types.Role
		cookie           *http.Cookie
		accept           string
		setupMocks       func(*MockServiceInterface, *MockLoggerInterface, *MockSecurityLoggerInterface)
		expectedStatus   int
		expectedLocation string
		expectNext       bool
	}{
		{
			name:         "missing cookie yields 401 for API clients",
			requiredRole: nil,
			cookie:       nil,
			setupMocks: func(mockService *MockServiceInterface, mockLogger *MockLoggerInterface, mockSecurity *MockSecurityLoggerInterface) {
				mockService.EXPECT().Validate(gomock.Any(), "").Return(nil, fmt.Errorf("missing token: %w", types.ErrAuthentication))
				mockLogger.EXPECT().Debugf(gomock.Any(), gomock.Any())
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:         "missing cookie redirects browsers to login",
			requiredRole: nil,
			cookie:       nil,
			accept:       "text/html,application/xhtml+xml",
			setupMocks: func(mockService *MockServiceInterface, mockLogger *MockLoggerInterface, mockSecurity *MockSecurityLoggerInterface) {
				mockService.EXPECT().Validate(gomock.Any(), "").Return(nil, fmt.Errorf("missing token: %w", types.ErrAuthentication))
				mockLogger.EXPECT().Debugf(gomock.Any(), gomock.Any())
			},
			expectedStatus:   http.StatusSeeOther,
			expectedLocation: "/login",
		},
		{
			name:         "invalid token clears cookie and yields 401",
			requiredRole: nil,
			cookie:       &http.Cookie{Name: CookieName, Value: "stale"},
			setupMocks: func(mockService *MockServiceInterface, mockLogger *MockLoggerInterface, mockSecurity *MockSecurityLoggerInterface) {
				mockService.EXPECT().Validate(gomock.Any(), "stale").Return(nil, fmt.Errorf("session expired: %w", types.ErrAuthentication))
				mockLogger.EXPECT().Debugf(gomock.Any(), gomock.Any())
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:         "valid token passes through",
			requiredRole: nil,
			cookie:       &http.Cookie{Name: CookieName, Value: "good"},
			setupMocks: func(mockService *MockServiceInterface, mockLogger *MockLoggerInterface, mockSecurity *MockSecurityLoggerInterface) {
				mockService.EXPECT().Validate(gomock.Any(), "good").Return(userPrincipal, nil)
			},
			expectedStatus: http.StatusOK,
			expectNext:     true,
		},
		{
			name:         "non-admin on admin route yields 403",
			requiredRole: &adminRole,
			cookie:       &http.Cookie{Name: CookieName, Value: "good"},
			setupMocks: func(mockService *MockServiceInterface, mockLogger *MockLoggerInterface, mockSecurity *MockSecurityLoggerInterface) {
				mockService.EXPECT().Validate(gomock.Any(), "good").Return(userPrincipal, nil)
				mockLogger.EXPECT().Security().Return(mockSecurity)
				mockSecurity.EXPECT().AccessDenied("user-123", gomock.Any())
			},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:         "non-admin browser on admin route redirects to denied",
			requiredRole: &adminRole,
			cookie:       &http.Cookie{Name: CookieName, Value: "good"},
			accept:       "text/html",
			setupMocks: func(mockService *MockServiceInterface, mockLogger *MockLoggerInterface, mockSecurity *MockSecurityLoggerInterface) {
				mockService.EXPECT().Validate(gomock.Any(), "good").Return(userPrincipal, nil)
				mockLogger.EXPECT().Security().Return(mockSecurity)
				mockSecurity.EXPECT().AccessDenied("user-123", gomock.Any())
			},
			expectedStatus:   http.StatusSeeOther,
			expectedLocation: "/denied",
		},
		{
			name:         "admin on admin route passes through",
			requiredRole: &adminRole,
			cookie:       &http.Cookie{Name: CookieName, Value: "good"},
			setupMocks: func(mockService *MockServiceInterface, mockLogger *MockLoggerInterface, mockSecurity *MockSecurityLoggerInterface) {
				mockService.EXPECT().Validate(gomock.Any(), "good").Return(adminPrincipal, nil)
			},
			expectedStatus: http.StatusOK,
			expectNext:     true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := NewMockServiceInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)
			mockSecurity := NewMockSecurityLoggerInterface(ctrl)

			m := NewMiddleware(mockService, true, mockTracer, mockMonitor, mockLogger)

			mockTracer.EXPECT().Start(gomock.Any(), "authentication.Middleware.Gate").Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockService, mockLogger, mockSecurity)

			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				if _, ok := GetPrincipal(r.Context()); !ok {
					t.Error("expected principal in request context")
				}
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/requests", nil)
			if tc.cookie != nil {
				req.AddCookie(tc.cookie)
			}
			if tc.accept != "" {
				req.Header.Set("Accept", tc.accept)
			}
			rec := httptest.NewRecorder()

			m.Gate(tc.requiredRole)(next).ServeHTTP(rec, req)

			if rec.Code != tc.expectedStatus {
				t.Errorf("expected status %d, got %d", tc.expectedStatus, rec.Code)
			}
			if tc.expectedLocation != "" && rec.Header().Get("Location") != tc.expectedLocation {
				t.Errorf("expected redirect to %s, got %s", tc.expectedLocation, rec.Header().Get("Location"))
			}
			if nextCalled != tc.expectNext {
				t.Errorf("expected next called=%v, got %v", tc.expectNext, nextCalled)
			}
		})
	}
}
