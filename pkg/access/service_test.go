// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package access

import (
	"context"
	"errors"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/canonical/ops-console/internal/storage"
	"github.com/canonical/ops-console/internal/types"
	"github.com/canonical/ops-console/internal/vault"
)

//go:generate mockgen -build_flags=--mod=mod -package access -destination ./mock_access.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package access -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package access -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package access -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

func newTestService(ctrl *gomock.Controller) (*Service, *MockStorageInterface, *MockVaultInterface, *MockTracingInterface, *MockLoggerInterface) {
	mockStorage := NewMockStorageInterface(ctrl)
	mockVault := NewMockVaultInterface(ctrl)
	mockTracer := NewMockTracingInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)
	mockMonitor := NewMockMonitorInterface(ctrl)

	s := NewService(mockStorage, mockVault, mockTracer, mockMonitor, mockLogger)
	return s, mockStorage, mockVault, mockTracer, mockLogger
}

func span(mockTracer *MockTracingInterface, name string) {
	mockTracer.EXPECT().Start(gomock.Any(), name).Return(context.Background(), trace.SpanFromContext(context.Background()))
}

func TestService_CreateServer(t *testing.T) {
	info := ServerInfo{Host: "10.0.0.5:5432", AdminUser: "admin", AdminPassword: "hunter2", Description: "staging"}
	secret := vault.FromCiphertext("bm9uY2U=|Y2lwaGVy")

	t.Run("success - admin password stored encrypted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		s, mockStorage, mockVault, mockTracer, _ := newTestService(ctrl)
		span(mockTracer, "access.Service.CreateServer")

		mockVault.EXPECT().Store(info.AdminPassword).Return(secret, nil)
		mockStorage.EXPECT().CreateServer(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, srv *types.ServerEndpoint) (*types.ServerEndpoint, error) {
				if srv.AdminPassEnc != secret.Ciphertext() {
					return nil, errors.New("plaintext must never reach storage")
				}
				if !srv.Active {
					return nil, errors.New("new servers start active")
				}
				return srv, nil
			})

		server, err := s.CreateServer(context.Background(), info)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if server.Host != info.Host {
			t.Errorf("unexpected server: %+v", server)
		}
	})

	t.Run("validation - missing fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		s, _, _, mockTracer, _ := newTestService(ctrl)
		span(mockTracer, "access.Service.CreateServer")

		_, err := s.CreateServer(context.Background(), ServerInfo{Host: "10.0.0.5"})
		if !errors.Is(err, types.ErrValidation) {
			t.Errorf("expected validation error, got %v", err)
		}
	})

	t.Run("infrastructure - vault failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		s, _, mockVault, mockTracer, mockLogger := newTestService(ctrl)
		span(mockTracer, "access.Service.CreateServer")
		mockVault.EXPECT().Store(info.AdminPassword).Return(vault.Secret{}, errors.New("bad key"))
		mockLogger.EXPECT().Errorf(gomock.Any(), gomock.Any(), gomock.Any())

		_, err := s.CreateServer(context.Background(), info)
		if !errors.Is(err, types.ErrInfrastructure) {
			t.Errorf("expected infrastructure error, got %v", err)
		}
	})
}

func TestService_AddDatabase(t *testing.T) {
	serverID := "server-1"
	database := "Acme"
	server := &types.ServerEndpoint{ID: serverID, Host: "10.0.0.5", Active: true}

	testCases := []struct {
		name        string
		setupMocks  func(*MockStorageInterface, *MockTracingInterface)
		expectedErr error
	}{
		{
			name: "success - registered without access",
			setupMocks: func(mockStorage *MockStorageInterface, mockTracer *MockTracingInterface) {
				span(mockTracer, "access.Service.GetServer")
				mockStorage.EXPECT().GetServerByID(gomock.Any(), serverID).Return(server, nil)
				mockStorage.EXPECT().CreateAllowEntry(gomock.Any(), serverID, database).Return(
					&types.DatabaseAllowEntry{ID: "entry-1", ServerID: serverID, Database: database, HasAccess: false, Active: true}, nil)
			},
		},
		{
			name: "conflict - duplicate entry",
			setupMocks: func(mockStorage *MockStorageInterface, mockTracer *MockTracingInterface) {
				span(mockTracer, "access.Service.GetServer")
				mockStorage.EXPECT().GetServerByID(gomock.Any(), serverID).Return(server, nil)
				mockStorage.EXPECT().CreateAllowEntry(gomock.Any(), serverID, database).Return(nil, storage.ErrDuplicateKey)
			},
			expectedErr: types.ErrConflict,
		},
		{
			name: "not found - unknown server",
			setupMocks: func(mockStorage *MockStorageInterface, mockTracer *MockTracingInterface) {
				span(mockTracer, "access.Service.GetServer")
				mockStorage.EXPECT().GetServerByID(gomock.Any(), serverID).Return(nil, storage.ErrNotFound)
			},
			expectedErr: types.ErrNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, mockStorage, _, mockTracer, _ := newTestService(ctrl)
			span(mockTracer, "access.Service.AddDatabase")
			tc.setupMocks(mockStorage, mockTracer)

			entry, err := s.AddDatabase(context.Background(), serverID, database)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Errorf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if entry.HasAccess {
				t.Error("new entries must not have access until granted")
			}
		})
	}
}

func TestService_GrantRevokeAccess(t *testing.T) {
	serverID := "server-1"
	database := "Acme"

	t.Run("grant flips access on", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		s, mockStorage, _, mockTracer, mockLogger := newTestService(ctrl)
		span(mockTracer, "access.Service.GrantAccess")
		mockStorage.EXPECT().SetAllowAccess(gomock.Any(), serverID, database, true).Return(int64(1), nil)
		mockLogger.EXPECT().Infof(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any())

		if err := s.GrantAccess(context.Background(), serverID, database); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("revoke on missing entry is not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		s, mockStorage, _, mockTracer, _ := newTestService(ctrl)
		span(mockTracer, "access.Service.RevokeAccess")
		mockStorage.EXPECT().SetAllowAccess(gomock.Any(), serverID, database, false).Return(int64(0), nil)

		if err := s.RevokeAccess(context.Background(), serverID, database); !errors.Is(err, types.ErrNotFound) {
			t.Errorf("expected not-found error, got %v", err)
		}
	})
}

func TestService_IsAccessible(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, mockStorage, _, mockTracer, _ := newTestService(ctrl)
	span(mockTracer, "access.Service.IsAccessible")
	mockStorage.EXPECT().IsAccessible(gomock.Any(), "server-1", "Acme").Return(false, nil)

	ok, err := s.IsAccessible(context.Background(), "server-1", "Acme")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Error("absence from the allow-list must read as inaccessible")
	}
}
