// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package entitlements

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/canonical/ops-console/internal/storage"
	"github.com/canonical/ops-console/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package entitlements -destination ./mock_entitlements.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package entitlements -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package entitlements -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package entitlements -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

func TestService_Grant(t *testing.T) {
	userID := "user-123"
	toolID := "tool-456"
	adminID := "admin-789"

	activeTool := &types.Tool{ID: toolID, Name: "query-runner", Active: true}
	entitlement := &types.ToolEntitlement{ID: "ent-1", UserID: userID, ToolID: toolID, GrantedBy: adminID}

	testCases := []struct {
		name        string
		setupMocks  func(*MockStorageInterface, *MockLoggerInterface)
		expectedErr error
	}{
		{
			name: "success - first grant",
			setupMocks: func(mockStorage *MockStorageInterface, mockLogger *MockLoggerInterface) {
				mockStorage.EXPECT().GetToolByID(gomock.Any(), toolID).Return(activeTool, nil)
				mockStorage.EXPECT().UnrevokeEntitlement(gomock.Any(), userID, toolID).Return(int64(0), nil)
				mockStorage.EXPECT().CreateEntitlement(gomock.Any(), userID, toolID, adminID).Return(entitlement, nil)
			},
		},
		{
			name: "success - re-grant flips revoked row",
			setupMocks: func(mockStorage *MockStorageInterface, mockLogger *MockLoggerInterface) {
				mockStorage.EXPECT().GetToolByID(gomock.Any(), toolID).Return(activeTool, nil)
				mockStorage.EXPECT().UnrevokeEntitlement(gomock.Any(), userID, toolID).Return(int64(1), nil)
				mockStorage.EXPECT().GetActiveEntitlement(gomock.Any(), userID, toolID).Return(entitlement, nil)
			},
		},
		{
			name: "conflict - already entitled",
			setupMocks: func(mockStorage *MockStorageInterface, mockLogger *MockLoggerInterface) {
				mockStorage.EXPECT().GetToolByID(gomock.Any(), toolID).Return(activeTool, nil)
				mockStorage.EXPECT().UnrevokeEntitlement(gomock.Any(), userID, toolID).Return(int64(0), nil)
				mockStorage.EXPECT().CreateEntitlement(gomock.Any(), userID, toolID, adminID).Return(nil, storage.ErrDuplicateKey)
			},
			expectedErr: types.ErrConflict,
		},
		{
			name: "validation - unknown tool",
			setupMocks: func(mockStorage *MockStorageInterface, mockLogger *MockLoggerInterface) {
				mockStorage.EXPECT().GetToolByID(gomock.Any(), toolID).Return(nil, storage.ErrNotFound)
			},
			expectedErr: types.ErrValidation,
		},
		{
			name: "validation - inactive tool",
			setupMocks: func(mockStorage *MockStorageInterface, mockLogger *MockLoggerInterface) {
				mockStorage.EXPECT().GetToolByID(gomock.Any(), toolID).Return(&types.Tool{ID: toolID, Active: false}, nil)
			},
			expectedErr: types.ErrValidation,
		},
		{
			name: "storage error passes through",
			setupMocks: func(mockStorage *MockStorageInterface, mockLogger *MockLoggerInterface) {
				mockStorage.EXPECT().GetToolByID(gomock.Any(), toolID).Return(activeTool, nil)
				mockStorage.EXPECT().UnrevokeEntitlement(gomock.Any(), userID, toolID).Return(int64(0), errors.New("db error"))
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

			s := NewService(mockStorage, mockTracer, mockMonitor, mockLogger)

			mockTracer.EXPECT().Start(gomock.Any(), "entitlements.Service.Grant").Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockStorage, mockLogger)

			result, err := s.Grant(context.Background(), userID, toolID, adminID)

			if tc.expectedErr != nil {
				if err == nil {
					t.Fatal("expected error but got none")
				}
				for _, sentinel := range []error{types.ErrConflict, types.ErrValidation} {
					if errors.Is(tc.expectedErr, sentinel) && !errors.Is(err, sentinel) {
						t.Errorf("expected %v, got %v", sentinel, err)
					}
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if result == nil || result.UserID != userID {
				t.Errorf("unexpected entitlement: %+v", result)
			}
		})
	}
}

func TestService_Revoke(t *testing.T) {
	userID := "user-123"
	toolID := "tool-456"

	testCases := []struct {
		name        string
		setupMocks  func(*MockStorageInterface)
		expectedErr error
	}{
		{
			name: "success",
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().RevokeEntitlement(gomock.Any(), userID, toolID).Return(int64(1), nil)
			},
		},
		{
			name: "not found - none active",
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().RevokeEntitlement(gomock.Any(), userID, toolID).Return(int64(0), nil)
			},
			expectedErr: types.ErrNotFound,
		},
		{
			name: "storage error",
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().RevokeEntitlement(gomock.Any(), userID, toolID).Return(int64(0), errors.New("db error"))
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

			s := NewService(mockStorage, mockTracer, mockMonitor, mockLogger)

			mockTracer.EXPECT().Start(gomock.Any(), "entitlements.Service.Revoke").Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockStorage)

			err := s.Revoke(context.Background(), userID, toolID)

			if tc.expectedErr != nil {
				if err == nil {
					t.Fatal("expected error but got none")
				}
				if errors.Is(tc.expectedErr, types.ErrNotFound) && !errors.Is(err, types.ErrNotFound) {
					t.Errorf("expected not-found error, got %v", err)
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestService_Unrevoke(t *testing.T) {
	userID := "user-123"
	toolID := "tool-456"
	adminID := "admin-789"

	revokedAt := time.Now()
	revoked := &types.ToolEntitlement{
		ID:        "ent-1",
		UserID:    userID,
		ToolID:    toolID,
		Revoked:   true,
		RevokedAt: &revokedAt,
	}

	testCases := []struct {
		name        string
		setupMocks  func(*MockStorageInterface, *MockLoggerInterface)
		expectedErr error
	}{
		{
			name: "success returns the reactivated row",
			setupMocks: func(mockStorage *MockStorageInterface, mockLogger *MockLoggerInterface) {
				mockStorage.EXPECT().GetRevokedEntitlement(gomock.Any(), userID, toolID).Return(revoked, nil)
				mockStorage.EXPECT().UnrevokeEntitlement(gomock.Any(), userID, toolID).Return(int64(1), nil)
				mockLogger.EXPECT().Infof(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any())
			},
		},
		{
			name: "not found - nothing revoked",
			setupMocks: func(mockStorage *MockStorageInterface, mockLogger *MockLoggerInterface) {
				mockStorage.EXPECT().GetRevokedEntitlement(gomock.Any(), userID, toolID).Return(nil, storage.ErrNotFound)
			},
			expectedErr: types.ErrNotFound,
		},
		{
			name: "not found - concurrent flip won",
			setupMocks: func(mockStorage *MockStorageInterface, mockLogger *MockLoggerInterface) {
				mockStorage.EXPECT().GetRevokedEntitlement(gomock.Any(), userID, toolID).Return(revoked, nil)
				mockStorage.EXPECT().UnrevokeEntitlement(gomock.Any(), userID, toolID).Return(int64(0), nil)
			},
			expectedErr: types.ErrNotFound,
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

			s := NewService(mockStorage, mockTracer, mockMonitor, mockLogger)

			mockTracer.EXPECT().Start(gomock.Any(), "entitlements.Service.Unrevoke").Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockStorage, mockLogger)

			entitlement, err := s.Unrevoke(context.Background(), userID, toolID, adminID)

			if tc.expectedErr != nil {
				if !errors.Is(err, types.ErrNotFound) {
					t.Errorf("expected not-found error, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if entitlement == nil || entitlement.Revoked || entitlement.RevokedAt != nil {
				t.Errorf("expected an active row back, got %+v", entitlement)
			}
		})
	}
}

func TestService_HasAccess(t *testing.T) {
	userID := "user-123"
	toolID := "tool-456"

	testCases := []struct {
		name        string
		setupMocks  func(*MockStorageInterface)
		expected    bool
		expectedErr bool
	}{
		{
			name: "entitled",
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().GetActiveEntitlement(gomock.Any(), userID, toolID).Return(&types.ToolEntitlement{ID: "ent-1"}, nil)
			},
			expected: true,
		},
		{
			name: "not entitled",
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().GetActiveEntitlement(gomock.Any(), userID, toolID).Return(nil, storage.ErrNotFound)
			},
			expected: false,
		},
		{
			name: "storage error",
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().GetActiveEntitlement(gomock.Any(), userID, toolID).Return(nil, errors.New("db error"))
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

			s := NewService(mockStorage, mockTracer, mockMonitor, mockLogger)

			mockTracer.EXPECT().Start(gomock.Any(), "entitlements.Service.HasAccess").Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockStorage)

			got, err := s.HasAccess(context.Background(), userID, toolID)

			if tc.expectedErr {
				if err == nil {
					t.Fatal("expected error but got none")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.expected {
				t.Errorf("expected %v, got %v", tc.expected, got)
			}
		})
	}
}
