// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/canonical/ops-console/internal/password"
	"github.com/canonical/ops-console/internal/storage"
	"github.com/canonical/ops-console/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package authentication -destination ./mock_authentication.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package authentication -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package authentication -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package authentication -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

func TestService_Validate(t *testing.T) {
	token := "opaque-token"
	userID := "user-123"
	lifetime := 24 * time.Hour

	activeSession := func() *types.Session {
		return &types.Session{ID: "session-1", UserID: userID, Token: token, LoginAt: time.Now().Add(-time.Hour), Active: true}
	}
	activeUser := &types.User{ID: userID, Email: "u@example.com", Role: types.RoleUser, Active: true}

	testCases := []struct {
		name        string
		token       string
		setupMocks  func(*MockStorageInterface, *MockLoggerInterface, *MockSecurityLoggerInterface)
		expectedErr error
	}{
		{
			name:  "success",
			token: token,
			setupMocks: func(mockStorage *MockStorageInterface, mockLogger *MockLoggerInterface, mockSecurity *MockSecurityLoggerInterface) {
				mockStorage.EXPECT().GetSessionByToken(gomock.Any(), token).Return(activeSession(), nil)
				mockStorage.EXPECT().GetUserByID(gomock.Any(), userID).Return(activeUser, nil)
			},
		},
		{
			name:        "empty token",
			token:       "",
			setupMocks:  func(*MockStorageInterface, *MockLoggerInterface, *MockSecurityLoggerInterface) {},
			expectedErr: types.ErrAuthentication,
		},
		{
			name:  "unknown token",
			token: token,
			setupMocks: func(mockStorage *MockStorageInterface, mockLogger *MockLoggerInterface, mockSecurity *MockSecurityLoggerInterface) {
				mockStorage.EXPECT().GetSessionByToken(gomock.Any(), token).Return(nil, storage.ErrNotFound)
			},
			expectedErr: types.ErrAuthentication,
		},
		{
			name:  "revoked session",
			token: token,
			setupMocks: func(mockStorage *MockStorageInterface, mockLogger *MockLoggerInterface, mockSecurity *MockSecurityLoggerInterface) {
				s := activeSession()
				s.Active = false
				mockStorage.EXPECT().GetSessionByToken(gomock.Any(), token).Return(s, nil)
			},
			expectedErr: types.ErrAuthentication,
		},
		{
			name:  "expired session is healed",
			token: token,
			setupMocks: func(mockStorage *MockStorageInterface, mockLogger *MockLoggerInterface, mockSecurity *MockSecurityLoggerInterface) {
				s := activeSession()
				s.LoginAt = time.Now().Add(-48 * time.Hour)
				mockStorage.EXPECT().GetSessionByToken(gomock.Any(), token).Return(s, nil)
				mockStorage.EXPECT().DeactivateSessionByToken(gomock.Any(), token).Return(nil)
			},
			expectedErr: types.ErrAuthentication,
		},
		{
			name:  "deactivated user loses all sessions",
			token: token,
			setupMocks: func(mockStorage *MockStorageInterface, mockLogger *MockLoggerInterface, mockSecurity *MockSecurityLoggerInterface) {
				mockStorage.EXPECT().GetSessionByToken(gomock.Any(), token).Return(activeSession(), nil)
				inactive := *activeUser
				inactive.Active = false
				mockStorage.EXPECT().GetUserByID(gomock.Any(), userID).Return(&inactive, nil)
				mockStorage.EXPECT().DeactivateSessionsByUserID(gomock.Any(), userID).Return(nil)
				mockLogger.EXPECT().Security().Return(mockSecurity)
				mockSecurity.EXPECT().SessionRevoked(userID)
			},
			expectedErr: types.ErrAuthentication,
		},
		{
			name:  "storage error passes through",
			token: token,
			setupMocks: func(mockStorage *MockStorageInterface, mockLogger *MockLoggerInterface, mockSecurity *MockSecurityLoggerInterface) {
				mockStorage.EXPECT().GetSessionByToken(gomock.Any(), token).Return(nil, errors.New("db error"))
			},
			expectedErr: errors.New("db error"),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)
			mockSecurity := NewMockSecurityLoggerInterface(ctrl)

			s := NewService(mockStorage, lifetime, mockTracer, mockMonitor, mockLogger)

			mockTracer.EXPECT().Start(gomock.Any(), "authentication.Service.Validate").Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockStorage, mockLogger, mockSecurity)

			principal, err := s.Validate(context.Background(), tc.token)

			if tc.expectedErr != nil {
				if err == nil {
					t.Fatal("expected error but got none")
				}
				if errors.Is(tc.expectedErr, types.ErrAuthentication) && !errors.Is(err, types.ErrAuthentication) {
					t.Errorf("expected authentication error, got %v", err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if principal == nil || principal.User.ID != userID {
				t.Errorf("unexpected principal: %+v", principal)
			}
		})
	}
}

func TestService_Login(t *testing.T) {
	email := "u@example.com"
	plaintext := "s3cret-passw0rd"
	userID := "user-123"

	phc, err := password.Hash(password.Default, plaintext)
	if err != nil {
		t.Fatal(err)
	}

	activeUser := func() *types.User {
		return &types.User{ID: userID, Email: email, PasswordHash: &phc, Role: types.RoleUser, Active: true}
	}

	testCases := []struct {
		name        string
		password    string
		setupMocks  func(*MockStorageInterface, *MockTracingInterface, *MockLoggerInterface, *MockSecurityLoggerInterface)
		expectedErr error
	}{
		{
			name:     "success",
			password: plaintext,
			setupMocks: func(mockStorage *MockStorageInterface, mockTracer *MockTracingInterface, mockLogger *MockLoggerInterface, mockSecurity *MockSecurityLoggerInterface) {
				mockStorage.EXPECT().GetUserByEmail(gomock.Any(), email).Return(activeUser(), nil)
				mockTracer.EXPECT().Start(gomock.Any(), "authentication.Service.Issue").Return(context.Background(), trace.SpanFromContext(context.Background()))
				mockStorage.EXPECT().CreateSession(gomock.Any(), userID, gomock.Any()).Return(&types.Session{ID: "session-1", UserID: userID, Active: true}, nil)
				mockLogger.EXPECT().Security().Return(mockSecurity)
				mockSecurity.EXPECT().LoginSuccess(userID)
			},
		},
		{
			name:     "unknown email",
			password: plaintext,
			setupMocks: func(mockStorage *MockStorageInterface, mockTracer *MockTracingInterface, mockLogger *MockLoggerInterface, mockSecurity *MockSecurityLoggerInterface) {
				mockStorage.EXPECT().GetUserByEmail(gomock.Any(), email).Return(nil, storage.ErrNotFound)
				mockLogger.EXPECT().Security().Return(mockSecurity)
				mockSecurity.EXPECT().LoginFailure(email)
			},
			expectedErr: types.ErrAuthentication,
		},
		{
			name:     "wrong password",
			password: "not-the-password",
			setupMocks: func(mockStorage *MockStorageInterface, mockTracer *MockTracingInterface, mockLogger *MockLoggerInterface, mockSecurity *MockSecurityLoggerInterface) {
				mockStorage.EXPECT().GetUserByEmail(gomock.Any(), email).Return(activeUser(), nil)
				mockLogger.EXPECT().Security().Return(mockSecurity)
				mockSecurity.EXPECT().LoginFailure(email)
			},
			expectedErr: types.ErrAuthentication,
		},
		{
			name:     "federated-only account",
			password: plaintext,
			setupMocks: func(mockStorage *MockStorageInterface, mockTracer *MockTracingInterface, mockLogger *MockLoggerInterface, mockSecurity *MockSecurityLoggerInterface) {
				u := activeUser()
				u.PasswordHash = nil
				mockStorage.EXPECT().GetUserByEmail(gomock.Any(), email).Return(u, nil)
				mockLogger.EXPECT().Security().Return(mockSecurity)
				mockSecurity.EXPECT().LoginFailure(email)
			},
			expectedErr: types.ErrAuthentication,
		},
		{
			name:     "inactive user",
			password: plaintext,
			setupMocks: func(mockStorage *MockStorageInterface, mockTracer *MockTracingInterface, mockLogger *MockLoggerInterface, mockSecurity *MockSecurityLoggerInterface) {
				u := activeUser()
				u.Active = false
				mockStorage.EXPECT().GetUserByEmail(gomock.Any(), email).Return(u, nil)
				mockLogger.EXPECT().Security().Return(mockSecurity)
				mockSecurity.EXPECT().LoginFailure(email)
			},
			expectedErr: types.ErrAuthentication,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)
			mockSecurity := NewMockSecurityLoggerInterface(ctrl)

			s := NewService(mockStorage, 24*time.Hour, mockTracer, mockMonitor, mockLogger)

			mockTracer.EXPECT().Start(gomock.Any(), "authentication.Service.Login").Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockStorage, mockTracer, mockLogger, mockSecurity)

			token, user, err := s.Login(context.Background(), email, tc.password)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Errorf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if token == "" {
				t.Error("expected a token")
			}
			if user == nil || user.ID != userID {
				t.Errorf("unexpected user: %+v", user)
			}
		})
	}
}

func TestService_RevokeAll(t *testing.T) {
	userID := "user-123"

	testCases := []struct {
		name        string
		setupMocks  func(*MockStorageInterface, *MockLoggerInterface, *MockSecurityLoggerInterface)
		expectedErr bool
	}{
		{
			name: "success",
			setupMocks: func(mockStorage *MockStorageInterface, mockLogger *MockLoggerInterface, mockSecurity *MockSecurityLoggerInterface) {
				mockStorage.EXPECT().DeactivateSessionsByUserID(gomock.Any(), userID).Return(nil)
				mockLogger.EXPECT().Security().Return(mockSecurity)
				mockSecurity.EXPECT().SessionRevoked(userID)
			},
		},
		{
			name: "storage error",
			setupMocks: func(mockStorage *MockStorageInterface, mockLogger *MockLoggerInterface, mockSecurity *MockSecurityLoggerInterface) {
				mockStorage.EXPECT().DeactivateSessionsByUserID(gomock.Any(), userID).Return(errors.New("db error"))
			},
			expectedErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)
			mockSecurity := NewMockSecurityLoggerInterface(ctrl)

			s := NewService(mockStorage, 24*time.Hour, mockTracer, mockMonitor, mockLogger)

			mockTracer.EXPECT().Start(gomock.Any(), "authentication.Service.RevokeAll").Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockStorage, mockLogger, mockSecurity)

			err := s.RevokeAll(context.Background(), userID)

			if tc.expectedErr && err == nil {
				t.Error("expected error but got none")
			}
			if !tc.expectedErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}
