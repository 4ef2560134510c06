// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package requests

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

//go:generate mockgen -build_flags=--mod=mod -package requests -destination ./mock_requests.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package requests -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package requests -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package requests -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

type serviceMocks struct {
	storage      *MockStorageInterface
	entitlements *MockEntitlementsInterface
	directory    *MockDirectoryInterface
	vault        *MockVaultInterface
	tx           *MockTxRunner
	tracer       *MockTracingInterface
	logger       *MockLoggerInterface
	monitor      *MockMonitorInterface
}

func newServiceWithMocks(ctrl *gomock.Controller) (*Service, *serviceMocks) {
	m := &serviceMocks{
		storage:      NewMockStorageInterface(ctrl),
		entitlements: NewMockEntitlementsInterface(ctrl),
		directory:    NewMockDirectoryInterface(ctrl),
		vault:        NewMockVaultInterface(ctrl),
		tx:           NewMockTxRunner(ctrl),
		tracer:       NewMockTracingInterface(ctrl),
		logger:       NewMockLoggerInterface(ctrl),
		monitor:      NewMockMonitorInterface(ctrl),
	}

	s := NewService(m.storage, m.entitlements, m.directory, m.vault, m.tx, m.tracer, m.monitor, m.logger)
	return s, m
}

func expectSpan(m *serviceMocks, name string) {
	m.tracer.EXPECT().Start(gomock.Any(), name).Return(context.Background(), trace.SpanFromContext(context.Background()))
}

func TestService_Submit(t *testing.T) {
	requesterID := "user-123"
	employeeID := "emp-1"
	companyID := "company-1"
	toolID := "tool-1"
	sessionID := "session-1"

	activeTool := &types.Tool{ID: toolID, Name: "query-runner", Active: true}

	testCases := []struct {
		name        string
		setupMocks  func(*serviceMocks)
		expectedErr error
	}{
		{
			name: "success",
			setupMocks: func(m *serviceMocks) {
				m.entitlements.EXPECT().HasAccess(gomock.Any(), requesterID, toolID).Return(true, nil)
				m.storage.EXPECT().GetToolByID(gomock.Any(), toolID).Return(activeTool, nil)
				m.directory.EXPECT().CompanyActive(gomock.Any(), companyID).Return(true, nil)
				m.directory.EXPECT().EmployeeExists(gomock.Any(), employeeID).Return(true, nil)
				m.storage.EXPECT().CreateRequest(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, r *types.TenantRequest) (*types.TenantRequest, error) {
						if r.Status != types.StatusNew {
							return nil, errors.New("new requests must start as NR")
						}
						if r.Cancelled {
							return nil, errors.New("new requests must not be cancelled")
						}
						return r, nil
					})
			},
		},
		{
			name: "validation - no entitlement",
			setupMocks: func(m *serviceMocks) {
				m.entitlements.EXPECT().HasAccess(gomock.Any(), requesterID, toolID).Return(false, nil)
			},
			expectedErr: types.ErrValidation,
		},
		{
			name: "validation - tool inactive",
			setupMocks: func(m *serviceMocks) {
				m.entitlements.EXPECT().HasAccess(gomock.Any(), requesterID, toolID).Return(true, nil)
				m.storage.EXPECT().GetToolByID(gomock.Any(), toolID).Return(&types.Tool{ID: toolID, Active: false}, nil)
			},
			expectedErr: types.ErrValidation,
		},
		{
			name: "validation - tool missing",
			setupMocks: func(m *serviceMocks) {
				m.entitlements.EXPECT().HasAccess(gomock.Any(), requesterID, toolID).Return(true, nil)
				m.storage.EXPECT().GetToolByID(gomock.Any(), toolID).Return(nil, storage.ErrNotFound)
			},
			expectedErr: types.ErrValidation,
		},
		{
			name: "validation - tenant inactive",
			setupMocks: func(m *serviceMocks) {
				m.entitlements.EXPECT().HasAccess(gomock.Any(), requesterID, toolID).Return(true, nil)
				m.storage.EXPECT().GetToolByID(gomock.Any(), toolID).Return(activeTool, nil)
				m.directory.EXPECT().CompanyActive(gomock.Any(), companyID).Return(false, nil)
			},
			expectedErr: types.ErrValidation,
		},
		{
			name: "validation - employee missing",
			setupMocks: func(m *serviceMocks) {
				m.entitlements.EXPECT().HasAccess(gomock.Any(), requesterID, toolID).Return(true, nil)
				m.storage.EXPECT().GetToolByID(gomock.Any(), toolID).Return(activeTool, nil)
				m.directory.EXPECT().CompanyActive(gomock.Any(), companyID).Return(true, nil)
				m.directory.EXPECT().EmployeeExists(gomock.Any(), employeeID).Return(false, nil)
			},
			expectedErr: types.ErrValidation,
		},
		{
			name: "validation - referent deleted between pre-check and insert",
			setupMocks: func(m *serviceMocks) {
				m.entitlements.EXPECT().HasAccess(gomock.Any(), requesterID, toolID).Return(true, nil)
				m.storage.EXPECT().GetToolByID(gomock.Any(), toolID).Return(activeTool, nil)
				m.directory.EXPECT().CompanyActive(gomock.Any(), companyID).Return(true, nil)
				m.directory.EXPECT().EmployeeExists(gomock.Any(), employeeID).Return(true, nil)
				m.storage.EXPECT().CreateRequest(gomock.Any(), gomock.Any()).Return(nil, storage.ErrForeignKeyViolation)
			},
			expectedErr: types.ErrValidation,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, m := newServiceWithMocks(ctrl)
			expectSpan(m, "requests.Service.Submit")
			tc.setupMocks(m)

			request, err := s.Submit(context.Background(), requesterID, employeeID, companyID, toolID, sessionID)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Errorf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if request.Status != types.StatusNew {
				t.Errorf("expected status NR, got %s", request.Status)
			}
			if request.RequesterID != requesterID || request.SessionID != sessionID {
				t.Errorf("unexpected request: %+v", request)
			}
		})
	}
}

func TestService_Accept(t *testing.T) {
	requestID := "req-1"
	adminID := "admin-1"

	testCases := []struct {
		name        string
		setupMocks  func(*serviceMocks)
		expectedErr error
	}{
		{
			name: "success",
			setupMocks: func(m *serviceMocks) {
				m.storage.EXPECT().TransitionRequestStatus(gomock.Any(), requestID,
					[]types.RequestStatus{types.StatusNew}, types.StatusInProgress).Return(int64(1), nil)
				m.logger.EXPECT().Infof(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any())
			},
		},
		{
			name: "not found",
			setupMocks: func(m *serviceMocks) {
				m.storage.EXPECT().TransitionRequestStatus(gomock.Any(), requestID,
					[]types.RequestStatus{types.StatusNew}, types.StatusInProgress).Return(int64(0), nil)
				m.storage.EXPECT().GetRequestByID(gomock.Any(), requestID).Return(nil, storage.ErrNotFound)
			},
			expectedErr: types.ErrNotFound,
		},
		{
			name: "illegal - cancelled wins the race",
			setupMocks: func(m *serviceMocks) {
				m.storage.EXPECT().TransitionRequestStatus(gomock.Any(), requestID,
					[]types.RequestStatus{types.StatusNew}, types.StatusInProgress).Return(int64(0), nil)
				m.storage.EXPECT().GetRequestByID(gomock.Any(), requestID).Return(
					&types.TenantRequest{ID: requestID, Status: types.StatusNew, Cancelled: true}, nil)
			},
			expectedErr: types.ErrIllegalTransition,
		},
		{
			name: "illegal - already in progress",
			setupMocks: func(m *serviceMocks) {
				m.storage.EXPECT().TransitionRequestStatus(gomock.Any(), requestID,
					[]types.RequestStatus{types.StatusNew}, types.StatusInProgress).Return(int64(0), nil)
				m.storage.EXPECT().GetRequestByID(gomock.Any(), requestID).Return(
					&types.TenantRequest{ID: requestID, Status: types.StatusInProgress}, nil)
			},
			expectedErr: types.ErrIllegalTransition,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, m := newServiceWithMocks(ctrl)
			expectSpan(m, "requests.Service.Accept")
			tc.setupMocks(m)

			err := s.Accept(context.Background(), requestID, adminID)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Errorf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestService_Reject(t *testing.T) {
	requestID := "req-1"
	adminID := "admin-1"

	t.Run("reject is legal from NR and IP", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		s, m := newServiceWithMocks(ctrl)
		expectSpan(m, "requests.Service.Reject")
		m.storage.EXPECT().TransitionRequestStatus(gomock.Any(), requestID,
			[]types.RequestStatus{types.StatusNew, types.StatusInProgress}, types.StatusRejected).Return(int64(1), nil)
		m.logger.EXPECT().Infof(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any())

		if err := s.Reject(context.Background(), requestID, adminID); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("reject on completed request is illegal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		s, m := newServiceWithMocks(ctrl)
		expectSpan(m, "requests.Service.Reject")
		m.storage.EXPECT().TransitionRequestStatus(gomock.Any(), requestID,
			[]types.RequestStatus{types.StatusNew, types.StatusInProgress}, types.StatusRejected).Return(int64(0), nil)
		m.storage.EXPECT().GetRequestByID(gomock.Any(), requestID).Return(
			&types.TenantRequest{ID: requestID, Status: types.StatusCompleted}, nil)

		if err := s.Reject(context.Background(), requestID, adminID); !errors.Is(err, types.ErrIllegalTransition) {
			t.Errorf("expected illegal transition, got %v", err)
		}
	})
}

func TestService_AssignCredential(t *testing.T) {
	requestID := "req-1"
	adminID := "admin-1"
	info := CredentialInfo{Host: "10.0.0.5", Database: "Acme", DBUser: "svc", Password: "hunter2"}
	secret := vault.FromCiphertext("bm9uY2U=|Y2lwaGVy")

	passthroughTx := func(m *serviceMocks) {
		m.tx.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, fn func(context.Context) error) error {
				return fn(ctx)
			})
	}

	testCases := []struct {
		name        string
		info        CredentialInfo
		setupMocks  func(*serviceMocks)
		expectedErr error
	}{
		{
			name: "success - insert and flip commit together",
			info: info,
			setupMocks: func(m *serviceMocks) {
				m.vault.EXPECT().Store(info.Password).Return(secret, nil)
				passthroughTx(m)
				m.storage.EXPECT().CreateAssignment(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, a *types.CredentialAssignment) (*types.CredentialAssignment, error) {
						if a.PasswordEnc != secret.Ciphertext() {
							return nil, errors.New("assignment must carry the encrypted secret")
						}
						return a, nil
					})
				m.storage.EXPECT().TransitionRequestStatus(gomock.Any(), requestID,
					[]types.RequestStatus{types.StatusInProgress}, types.StatusCompleted).Return(int64(1), nil)
				m.logger.EXPECT().Infof(gomock.Any(), gomock.Any(), gomock.Any())
			},
		},
		{
			name:        "validation - missing fields",
			info:        CredentialInfo{Host: "10.0.0.5"},
			setupMocks:  func(m *serviceMocks) {},
			expectedErr: types.ErrValidation,
		},
		{
			name: "conflict - second assignment on same request",
			info: info,
			setupMocks: func(m *serviceMocks) {
				m.vault.EXPECT().Store(info.Password).Return(secret, nil)
				passthroughTx(m)
				m.storage.EXPECT().CreateAssignment(gomock.Any(), gomock.Any()).Return(nil, storage.ErrDuplicateKey)
			},
			expectedErr: types.ErrConflict,
		},
		{
			name: "not found - request id has no row",
			info: info,
			setupMocks: func(m *serviceMocks) {
				m.vault.EXPECT().Store(info.Password).Return(secret, nil)
				passthroughTx(m)
				m.storage.EXPECT().CreateAssignment(gomock.Any(), gomock.Any()).Return(nil, storage.ErrForeignKeyViolation)
			},
			expectedErr: types.ErrNotFound,
		},
		{
			name: "illegal - request not in progress, insert rolls back",
			info: info,
			setupMocks: func(m *serviceMocks) {
				m.vault.EXPECT().Store(info.Password).Return(secret, nil)
				passthroughTx(m)
				m.storage.EXPECT().CreateAssignment(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, a *types.CredentialAssignment) (*types.CredentialAssignment, error) {
						return a, nil
					})
				m.storage.EXPECT().TransitionRequestStatus(gomock.Any(), requestID,
					[]types.RequestStatus{types.StatusInProgress}, types.StatusCompleted).Return(int64(0), nil)
			},
			expectedErr: types.ErrIllegalTransition,
		},
		{
			name: "infrastructure - vault store fails",
			info: info,
			setupMocks: func(m *serviceMocks) {
				m.vault.EXPECT().Store(info.Password).Return(vault.Secret{}, errors.New("bad key"))
				m.logger.EXPECT().Errorf(gomock.Any(), gomock.Any(), gomock.Any())
			},
			expectedErr: types.ErrInfrastructure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, m := newServiceWithMocks(ctrl)
			expectSpan(m, "requests.Service.AssignCredential")
			tc.setupMocks(m)

			assignment, err := s.AssignCredential(context.Background(), requestID, adminID, tc.info)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Errorf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if assignment == nil || assignment.RequestID != requestID {
				t.Errorf("unexpected assignment: %+v", assignment)
			}
			if assignment.AssignedBy != adminID {
				t.Errorf("expected assigned_by %s, got %s", adminID, assignment.AssignedBy)
			}
		})
	}
}

func TestService_Cancel(t *testing.T) {
	requestID := "req-1"
	requesterID := "user-123"

	testCases := []struct {
		name        string
		setupMocks  func(*serviceMocks)
		expectedErr error
	}{
		{
			name: "success",
			setupMocks: func(m *serviceMocks) {
				m.storage.EXPECT().CancelRequest(gomock.Any(), requestID, requesterID).Return(int64(1), nil)
			},
		},
		{
			name: "idempotent - already cancelled",
			setupMocks: func(m *serviceMocks) {
				m.storage.EXPECT().CancelRequest(gomock.Any(), requestID, requesterID).Return(int64(0), nil)
				m.storage.EXPECT().GetRequestByID(gomock.Any(), requestID).Return(
					&types.TenantRequest{ID: requestID, RequesterID: requesterID, Status: types.StatusNew, Cancelled: true}, nil)
			},
		},
		{
			name: "not owner",
			setupMocks: func(m *serviceMocks) {
				m.storage.EXPECT().CancelRequest(gomock.Any(), requestID, requesterID).Return(int64(0), nil)
				m.storage.EXPECT().GetRequestByID(gomock.Any(), requestID).Return(
					&types.TenantRequest{ID: requestID, RequesterID: "someone-else", Status: types.StatusNew}, nil)
			},
			expectedErr: types.ErrAuthorization,
		},
		{
			name: "illegal - request already completed",
			setupMocks: func(m *serviceMocks) {
				m.storage.EXPECT().CancelRequest(gomock.Any(), requestID, requesterID).Return(int64(0), nil)
				m.storage.EXPECT().GetRequestByID(gomock.Any(), requestID).Return(
					&types.TenantRequest{ID: requestID, RequesterID: requesterID, Status: types.StatusCompleted}, nil)
			},
			expectedErr: types.ErrIllegalTransition,
		},
		{
			name: "not found",
			setupMocks: func(m *serviceMocks) {
				m.storage.EXPECT().CancelRequest(gomock.Any(), requestID, requesterID).Return(int64(0), nil)
				m.storage.EXPECT().GetRequestByID(gomock.Any(), requestID).Return(nil, storage.ErrNotFound)
			},
			expectedErr: types.ErrNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, m := newServiceWithMocks(ctrl)
			expectSpan(m, "requests.Service.Cancel")
			tc.setupMocks(m)

			err := s.Cancel(context.Background(), requestID, requesterID)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Errorf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestService_ListMine(t *testing.T) {
	requesterID := "user-123"
	list := []*types.TenantRequest{
		{ID: "req-1", RequesterID: requesterID, CompanyID: "company-1"},
		{ID: "req-2", RequesterID: requesterID, CompanyID: "company-2"},
		{ID: "req-3", RequesterID: requesterID, CompanyID: "company-1"},
	}

	t.Run("company names resolved once per company", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		s, m := newServiceWithMocks(ctrl)
		expectSpan(m, "requests.Service.ListMine")
		m.storage.EXPECT().ListRequestsByRequesterID(gomock.Any(), requesterID).Return(list, nil)
		m.directory.EXPECT().CompanyNamesByIDs(gomock.Any(), []string{"company-1", "company-2"}).Return(
			map[string]string{"company-1": "Acme", "company-2": "Globex"}, nil)

		views, err := s.ListMine(context.Background(), requesterID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(views) != 3 {
			t.Fatalf("expected 3 views, got %d", len(views))
		}
		if views[0].CompanyName != "Acme" || views[1].CompanyName != "Globex" {
			t.Errorf("unexpected company names: %+v", views)
		}
	})

	t.Run("directory failure degrades to bare ids", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		s, m := newServiceWithMocks(ctrl)
		expectSpan(m, "requests.Service.ListMine")
		m.storage.EXPECT().ListRequestsByRequesterID(gomock.Any(), requesterID).Return(list, nil)
		m.directory.EXPECT().CompanyNamesByIDs(gomock.Any(), gomock.Any()).Return(nil, errors.New("directory down"))
		m.logger.EXPECT().Warnf(gomock.Any(), gomock.Any())

		views, err := s.ListMine(context.Background(), requesterID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(views) != 3 {
			t.Fatalf("expected 3 views, got %d", len(views))
		}
		if views[0].CompanyName != "" {
			t.Errorf("expected empty company name, got %q", views[0].CompanyName)
		}
	})
}

func TestService_ListAll(t *testing.T) {
	list := []*types.TenantRequest{
		{ID: "req-1", RequesterID: "user-1", CompanyID: "company-1"},
		{ID: "req-2", RequesterID: "user-2", CompanyID: "company-2"},
	}

	t.Run("returns one page with the overall total", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		s, m := newServiceWithMocks(ctrl)
		expectSpan(m, "requests.Service.ListAll")
		m.storage.EXPECT().ListRequests(gomock.Any(), uint64(2), uint64(50)).Return(list, int64(120), nil)
		m.directory.EXPECT().CompanyNamesByIDs(gomock.Any(), []string{"company-1", "company-2"}).Return(
			map[string]string{"company-1": "Acme", "company-2": "Globex"}, nil)

		page, err := s.ListAll(context.Background(), 2, 50)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if page.Total != 120 {
			t.Errorf("expected total 120, got %d", page.Total)
		}
		if len(page.Items) != 2 {
			t.Fatalf("expected 2 items, got %d", len(page.Items))
		}
		if page.Items[0].CompanyName != "Acme" {
			t.Errorf("unexpected company name %q", page.Items[0].CompanyName)
		}
	})

	t.Run("storage failure propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		s, m := newServiceWithMocks(ctrl)
		expectSpan(m, "requests.Service.ListAll")
		m.storage.EXPECT().ListRequests(gomock.Any(), uint64(1), uint64(50)).Return(nil, int64(0), errors.New("connection refused"))

		if _, err := s.ListAll(context.Background(), 1, 50); err == nil {
			t.Fatal("expected error")
		}
	})
}

func TestService_CredentialConfig(t *testing.T) {
	requestID := "req-1"

	t.Run("returns metadata without the secret", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		s, m := newServiceWithMocks(ctrl)
		expectSpan(m, "requests.Service.CredentialConfig")
		m.storage.EXPECT().GetAssignmentByRequestID(gomock.Any(), requestID).Return(&types.CredentialAssignment{
			ID:          "assign-1",
			RequestID:   requestID,
			Host:        "10.0.0.5",
			Database:    "Acme",
			DBUser:      "svc",
			PasswordEnc: "bm9uY2U=|Y2lwaGVy",
			AssignedBy:  "admin-1",
		}, nil)

		config, err := s.CredentialConfig(context.Background(), requestID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if config.Host != "10.0.0.5" || config.Database != "Acme" || config.DBUser != "svc" {
			t.Errorf("unexpected config: %+v", config)
		}
	})

	t.Run("no assignment yields not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		s, m := newServiceWithMocks(ctrl)
		expectSpan(m, "requests.Service.CredentialConfig")
		m.storage.EXPECT().GetAssignmentByRequestID(gomock.Any(), requestID).Return(nil, storage.ErrNotFound)

		if _, err := s.CredentialConfig(context.Background(), requestID); !errors.Is(err, types.ErrNotFound) {
			t.Errorf("expected not-found error, got %v", err)
		}
	})
}
