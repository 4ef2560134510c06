// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package diagnostics

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/canonical/ops-console/internal/storage"
	"github.com/canonical/ops-console/internal/types"
	"github.com/canonical/ops-console/internal/vault"
)

//go:generate mockgen -build_flags=--mod=mod -package diagnostics -destination ./mock_diagnostics.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package diagnostics -destination ./mock_remotedb.go -source=../../internal/remotedb/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package diagnostics -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package diagnostics -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package diagnostics -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

type serviceMocks struct {
	storage   *MockStorageInterface
	allowList *MockAllowListInterface
	vault     *MockVaultInterface
	connector *MockConnectorInterface
	target    *MockTargetInterface
	tracer    *MockTracingInterface
	logger    *MockLoggerInterface
}

func newServiceWithMocks(ctrl *gomock.Controller, concurrency int) (*Service, *serviceMocks) {
	m := &serviceMocks{
		storage:   NewMockStorageInterface(ctrl),
		allowList: NewMockAllowListInterface(ctrl),
		vault:     NewMockVaultInterface(ctrl),
		connector: NewMockConnectorInterface(ctrl),
		target:    NewMockTargetInterface(ctrl),
		tracer:    NewMockTracingInterface(ctrl),
		logger:    NewMockLoggerInterface(ctrl),
	}

	s := NewService(
		m.storage, m.allowList, m.vault, m.connector,
		concurrency, 30*time.Second,
		m.tracer, NewMockMonitorInterface(ctrl), m.logger,
	)
	return s, m
}

func expectSpan(m *serviceMocks) {
	m.tracer.EXPECT().Start(gomock.Any(), "diagnostics.Service.FanoutInsert").Return(context.Background(), trace.SpanFromContext(context.Background()))
}

func probeRecords(n int) []Record {
	records := make([]Record, n)
	for i := range records {
		records[i] = Record{Key: fmt.Sprintf("probe-%03d", i), Payload: "payload"}
	}
	return records
}

const serverID = "server-1"
const database = "Acme"

var testServer = &types.ServerEndpoint{
	ID:           serverID,
	Host:         "10.0.0.5:5432",
	AdminUser:    "admin",
	AdminPassEnc: "bm9uY2U=|Y2lwaGVy",
	Active:       true,
}

// expectHappyPathThroughOpen wires the precondition chain up to an open
// target; per-probe expectations are left to the caller.
func expectHappyPathThroughOpen(m *serviceMocks) {
	m.allowList.EXPECT().IsAccessible(gomock.Any(), serverID, database).Return(true, nil)
	m.storage.EXPECT().GetServerByID(gomock.Any(), serverID).Return(testServer, nil)
	m.vault.EXPECT().Reveal(vault.FromCiphertext(testServer.AdminPassEnc)).Return("s3cret", nil)
	m.vault.EXPECT().BuildConnectionDescriptor(testServer.Host, testServer.AdminUser, "s3cret", database, 30*time.Second).Return(vault.ConnectionDescriptor{})
	m.connector.EXPECT().Open(gomock.Any(), gomock.Any()).Return(m.target, nil)
	m.target.EXPECT().EnsureProbeTable(gomock.Any()).Return(nil)
	m.target.EXPECT().Close().Return(nil)
}

func TestService_FanoutInsert_Accounting(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := newServiceWithMocks(ctrl, 8)
	expectSpan(m)
	expectHappyPathThroughOpen(m)

	// 5 of 50 probes lose their connection; the rest must still land.
	records := probeRecords(50)
	m.target.EXPECT().InsertProbe(gomock.Any(), gomock.Any(), "payload").DoAndReturn(
		func(_ context.Context, key, _ string) error {
			if strings.HasSuffix(key, "7") {
				return errors.New("connection reset")
			}
			return nil
		}).Times(50)
	m.logger.EXPECT().Infof(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any())

	result, err := s.FanoutInsert(context.Background(), serverID, database, records)
	if err != nil {
		t.Fatalf("partial write failures must not fail the call: %v", err)
	}

	if result.Total != 50 || result.Succeeded != 45 || result.Failed != 5 {
		t.Errorf("unexpected accounting: %+v", result)
	}
	if result.Succeeded+result.Failed != result.Total {
		t.Errorf("accounting does not add up: %+v", result)
	}
	if len(result.Errors) != result.Failed {
		t.Errorf("expected one error entry per failed record, got %d for %d failures", len(result.Errors), result.Failed)
	}
	for _, e := range result.Errors {
		if !strings.Contains(e, "connection reset") {
			t.Errorf("error entry lost the captured cause: %q", e)
		}
	}
}

func TestService_FanoutInsert_UnboundedPool(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := newServiceWithMocks(ctrl, 0)
	expectSpan(m)
	expectHappyPathThroughOpen(m)

	m.target.EXPECT().InsertProbe(gomock.Any(), gomock.Any(), "payload").Return(nil).Times(20)
	m.logger.EXPECT().Infof(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any())

	result, err := s.FanoutInsert(context.Background(), serverID, database, probeRecords(20))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Succeeded != 20 || result.Failed != 0 {
		t.Errorf("unexpected accounting: %+v", result)
	}
}

func TestService_FanoutInsert_SurvivesCallerDisconnect(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := newServiceWithMocks(ctrl, 4)
	m.tracer.EXPECT().Start(gomock.Any(), "diagnostics.Service.FanoutInsert").DoAndReturn(
		func(ctx context.Context, _ string, _ ...trace.SpanStartOption) (context.Context, trace.Span) {
			return ctx, trace.SpanFromContext(ctx)
		})
	expectHappyPathThroughOpen(m)

	// Every writer must see a live context even though the caller is gone.
	m.target.EXPECT().InsertProbe(gomock.Any(), gomock.Any(), "payload").DoAndReturn(
		func(ctx context.Context, _, _ string) error {
			return ctx.Err()
		}).Times(10)
	m.logger.EXPECT().Infof(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := s.FanoutInsert(ctx, serverID, database, probeRecords(10))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Succeeded != 10 || result.Failed != 0 {
		t.Errorf("probes aborted by the dead caller context: %+v", result)
	}
}

func TestService_FanoutInsert_Preconditions(t *testing.T) {
	testCases := []struct {
		name        string
		records     []Record
		setupMocks  func(*serviceMocks)
		expectedErr error
	}{
		{
			name:        "no records",
			records:     nil,
			setupMocks:  func(m *serviceMocks) {},
			expectedErr: types.ErrValidation,
		},
		{
			name:    "target not allow-listed",
			records: probeRecords(1),
			setupMocks: func(m *serviceMocks) {
				m.allowList.EXPECT().IsAccessible(gomock.Any(), serverID, database).Return(false, nil)
			},
			expectedErr: types.ErrAuthorization,
		},
		{
			name:    "server not found",
			records: probeRecords(1),
			setupMocks: func(m *serviceMocks) {
				m.allowList.EXPECT().IsAccessible(gomock.Any(), serverID, database).Return(true, nil)
				m.storage.EXPECT().GetServerByID(gomock.Any(), serverID).Return(nil, storage.ErrNotFound)
			},
			expectedErr: types.ErrNotFound,
		},
		{
			name:    "server deactivated",
			records: probeRecords(1),
			setupMocks: func(m *serviceMocks) {
				inactive := *testServer
				inactive.Active = false
				m.allowList.EXPECT().IsAccessible(gomock.Any(), serverID, database).Return(true, nil)
				m.storage.EXPECT().GetServerByID(gomock.Any(), serverID).Return(&inactive, nil)
			},
			expectedErr: types.ErrValidation,
		},
		{
			name:    "credential decrypt failure",
			records: probeRecords(1),
			setupMocks: func(m *serviceMocks) {
				m.allowList.EXPECT().IsAccessible(gomock.Any(), serverID, database).Return(true, nil)
				m.storage.EXPECT().GetServerByID(gomock.Any(), serverID).Return(testServer, nil)
				m.vault.EXPECT().Reveal(gomock.Any()).Return("", types.ErrDecryption)
				m.logger.EXPECT().Errorf(gomock.Any(), gomock.Any(), gomock.Any())
			},
			expectedErr: types.ErrDecryption,
		},
		{
			name:    "target unreachable",
			records: probeRecords(1),
			setupMocks: func(m *serviceMocks) {
				m.allowList.EXPECT().IsAccessible(gomock.Any(), serverID, database).Return(true, nil)
				m.storage.EXPECT().GetServerByID(gomock.Any(), serverID).Return(testServer, nil)
				m.vault.EXPECT().Reveal(gomock.Any()).Return("s3cret", nil)
				m.vault.EXPECT().BuildConnectionDescriptor(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(vault.ConnectionDescriptor{})
				m.connector.EXPECT().Open(gomock.Any(), gomock.Any()).Return(nil, fmt.Errorf("remote database unreachable: %w", types.ErrInfrastructure))
			},
			expectedErr: types.ErrInfrastructure,
		},
		{
			name:    "probe table unavailable",
			records: probeRecords(1),
			setupMocks: func(m *serviceMocks) {
				m.allowList.EXPECT().IsAccessible(gomock.Any(), serverID, database).Return(true, nil)
				m.storage.EXPECT().GetServerByID(gomock.Any(), serverID).Return(testServer, nil)
				m.vault.EXPECT().Reveal(gomock.Any()).Return("s3cret", nil)
				m.vault.EXPECT().BuildConnectionDescriptor(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(vault.ConnectionDescriptor{})
				m.connector.EXPECT().Open(gomock.Any(), gomock.Any()).Return(m.target, nil)
				m.target.EXPECT().EnsureProbeTable(gomock.Any()).Return(errors.New("permission denied"))
				m.target.EXPECT().Close().Return(nil)
				m.logger.EXPECT().Errorf(gomock.Any(), gomock.Any(), gomock.Any())
			},
			expectedErr: types.ErrInfrastructure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, m := newServiceWithMocks(ctrl, 4)
			expectSpan(m)
			tc.setupMocks(m)

			_, err := s.FanoutInsert(context.Background(), serverID, database, tc.records)
			if !errors.Is(err, tc.expectedErr) {
				t.Errorf("expected error %v, got %v", tc.expectedErr, err)
			}
		})
	}
}
