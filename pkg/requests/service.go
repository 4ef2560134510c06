// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package requests

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/canonical/ops-console/internal/logging"
	"github.com/canonical/ops-console/internal/monitoring"
	"github.com/canonical/ops-console/internal/storage"
	"github.com/canonical/ops-console/internal/tracing"
	"github.com/canonical/ops-console/internal/types"
)

var _ ServiceInterface = (*Service)(nil)

// Service drives the tenant-request state machine. Every admin transition is
// a single conditional UPDATE guarded on (status, cancelled), so two racing
// admins (or an admin racing the requester's cancel) cannot both commit.
type Service struct {
	storage      StorageInterface
	entitlements EntitlementsInterface
	directory    DirectoryInterface
	vault        VaultInterface
	tx           TxRunner

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	entitlements EntitlementsInterface,
	directory DirectoryInterface,
	vault VaultInterface,
	tx TxRunner,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage:      storage,
		entitlements: entitlements,
		directory:    directory,
		vault:        vault,
		tx:           tx,
		tracer:       tracer,
		monitor:      monitor,
		logger:       logger,
	}
}

func (s *Service) Submit(ctx context.Context, requesterID, employeeID, companyID, toolID, sessionID string) (*types.TenantRequest, error) {
	ctx, span := s.tracer.Start(ctx, "requests.Service.Submit")
	defer span.End()

	entitled, err := s.entitlements.HasAccess(ctx, requesterID, toolID)
	if err != nil {
		return nil, err
	}
	if !entitled {
		return nil, fmt.Errorf("requester %q has no entitlement for tool %q: %w", requesterID, toolID, types.ErrValidation)
	}

	tool, err := s.storage.GetToolByID(ctx, toolID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("unknown tool %q: %w", toolID, types.ErrValidation)
		}
		return nil, err
	}
	if !tool.Active {
		return nil, fmt.Errorf("tool %q is inactive: %w", toolID, types.ErrValidation)
	}

	active, err := s.directory.CompanyActive(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if !active {
		return nil, fmt.Errorf("tenant %q missing or inactive: %w", companyID, types.ErrValidation)
	}

	exists, err := s.directory.EmployeeExists(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("unknown employee %q: %w", employeeID, types.ErrValidation)
	}

	request := &types.TenantRequest{
		ID:          uuid.Must(uuid.NewV7()).String(),
		RequesterID: requesterID,
		EmployeeID:  employeeID,
		CompanyID:   companyID,
		ToolID:      toolID,
		SessionID:   sessionID,
		Status:      types.StatusNew,
	}

	created, err := s.storage.CreateRequest(ctx, request)
	if err != nil {
		// A referent deleted between the pre-checks and the insert.
		if errors.Is(err, storage.ErrForeignKeyViolation) {
			return nil, fmt.Errorf("referenced entity no longer exists: %w", types.ErrValidation)
		}
		return nil, err
	}

	return created, nil
}

func (s *Service) Accept(ctx context.Context, requestID, adminID string) error {
	ctx, span := s.tracer.Start(ctx, "requests.Service.Accept")
	defer span.End()

	return s.transition(ctx, requestID, []types.RequestStatus{types.StatusNew}, types.StatusInProgress, adminID)
}

func (s *Service) Reject(ctx context.Context, requestID, adminID string) error {
	ctx, span := s.tracer.Start(ctx, "requests.Service.Reject")
	defer span.End()

	return s.transition(ctx, requestID, []types.RequestStatus{types.StatusNew, types.StatusInProgress}, types.StatusRejected, adminID)
}

// transition applies one guarded status change. Zero rows affected means the
// guard failed; a follow-up read disambiguates "gone" from "illegal".
func (s *Service) transition(ctx context.Context, requestID string, from []types.RequestStatus, to types.RequestStatus, adminID string) error {
	rows, err := s.storage.TransitionRequestStatus(ctx, requestID, from, to)
	if err != nil {
		return err
	}
	if rows > 0 {
		s.logger.Infof("request %s moved to %s by %s", requestID, to, adminID)
		return nil
	}

	request, err := s.storage.GetRequestByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("request %q: %w", requestID, types.ErrNotFound)
		}
		return err
	}
	if request.Cancelled {
		return fmt.Errorf("request %q is cancelled: %w", requestID, types.ErrIllegalTransition)
	}
	return fmt.Errorf("request %q is %s, cannot move to %s: %w", requestID, request.Status, to, types.ErrIllegalTransition)
}

func (s *Service) AssignCredential(ctx context.Context, requestID, adminID string, info CredentialInfo) (*types.CredentialAssignment, error) {
	ctx, span := s.tracer.Start(ctx, "requests.Service.AssignCredential")
	defer span.End()

	if info.Host == "" || info.Database == "" || info.DBUser == "" || info.Password == "" {
		return nil, fmt.Errorf("host, database, db_user and password are required: %w", types.ErrValidation)
	}

	secret, err := s.vault.Store(info.Password)
	if err != nil {
		s.logger.Errorf("failed to encrypt credential for request %s: %v", requestID, err)
		return nil, fmt.Errorf("credential encryption failed: %w", types.ErrInfrastructure)
	}

	assignment := &types.CredentialAssignment{
		ID:          uuid.Must(uuid.NewV7()).String(),
		RequestID:   requestID,
		Host:        info.Host,
		Database:    info.Database,
		DBUser:      info.DBUser,
		PasswordEnc: secret.Ciphertext(),
		AssignedBy:  adminID,
	}

	// Insert and the IP -> CP flip commit together or not at all; a reader
	// must never see CP without an assignment or the reverse.
	var created *types.CredentialAssignment
	err = s.tx.WithTx(ctx, func(ctx context.Context) error {
		created, err = s.storage.CreateAssignment(ctx, assignment)
		if err != nil {
			if errors.Is(err, storage.ErrDuplicateKey) {
				return fmt.Errorf("request %q already has an assignment: %w", requestID, types.ErrConflict)
			}
			if errors.Is(err, storage.ErrForeignKeyViolation) {
				return fmt.Errorf("request %q: %w", requestID, types.ErrNotFound)
			}
			return err
		}

		rows, err := s.storage.TransitionRequestStatus(ctx, requestID,
			[]types.RequestStatus{types.StatusInProgress}, types.StatusCompleted)
		if err != nil {
			return err
		}
		if rows == 0 {
			return fmt.Errorf("request %q is not in progress or is cancelled: %w", requestID, types.ErrIllegalTransition)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Infof("credential assigned to request %s by %s", requestID, adminID)
	return created, nil
}

func (s *Service) Cancel(ctx context.Context, requestID, requesterID string) error {
	ctx, span := s.tracer.Start(ctx, "requests.Service.Cancel")
	defer span.End()

	rows, err := s.storage.CancelRequest(ctx, requestID, requesterID)
	if err != nil {
		return err
	}
	if rows > 0 {
		return nil
	}

	request, err := s.storage.GetRequestByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("request %q: %w", requestID, types.ErrNotFound)
		}
		return err
	}
	if request.RequesterID != requesterID {
		return fmt.Errorf("request %q is not owned by caller: %w", requestID, types.ErrAuthorization)
	}
	if request.Cancelled {
		// Cancelling twice is a no-op.
		return nil
	}
	return fmt.Errorf("request %q is %s, cancel is only legal from NR or IP: %w", requestID, request.Status, types.ErrIllegalTransition)
}

func (s *Service) Get(ctx context.Context, requestID string) (*types.TenantRequest, error) {
	ctx, span := s.tracer.Start(ctx, "requests.Service.Get")
	defer span.End()

	request, err := s.storage.GetRequestByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("request %q: %w", requestID, types.ErrNotFound)
		}
		return nil, err
	}

	return request, nil
}

func (s *Service) ListAll(ctx context.Context, page, size uint64) (*PagedRequests, error) {
	ctx, span := s.tracer.Start(ctx, "requests.Service.ListAll")
	defer span.End()

	list, total, err := s.storage.ListRequests(ctx, page, size)
	if err != nil {
		return nil, err
	}

	return &PagedRequests{Items: s.enrich(ctx, list), Total: total}, nil
}

func (s *Service) ListMine(ctx context.Context, requesterID string) ([]*RequestView, error) {
	ctx, span := s.tracer.Start(ctx, "requests.Service.ListMine")
	defer span.End()

	list, err := s.storage.ListRequestsByRequesterID(ctx, requesterID)
	if err != nil {
		return nil, err
	}

	return s.enrich(ctx, list), nil
}

// enrich resolves tenant display names; a directory failure degrades the
// view to bare ids instead of failing the list.
func (s *Service) enrich(ctx context.Context, list []*types.TenantRequest) []*RequestView {
	ids := make([]string, 0, len(list))
	seen := make(map[string]bool, len(list))
	for _, r := range list {
		if !seen[r.CompanyID] {
			seen[r.CompanyID] = true
			ids = append(ids, r.CompanyID)
		}
	}

	names := map[string]string{}
	if len(ids) > 0 {
		var err error
		names, err = s.directory.CompanyNamesByIDs(ctx, ids)
		if err != nil {
			s.logger.Warnf("failed to resolve company names: %v", err)
			names = map[string]string{}
		}
	}

	views := make([]*RequestView, len(list))
	for i, r := range list {
		views[i] = &RequestView{TenantRequest: r, CompanyName: names[r.CompanyID]}
	}
	return views
}

func (s *Service) CredentialConfig(ctx context.Context, requestID string) (*CredentialConfig, error) {
	ctx, span := s.tracer.Start(ctx, "requests.Service.CredentialConfig")
	defer span.End()

	assignment, err := s.storage.GetAssignmentByRequestID(ctx, requestID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("no assignment for request %q: %w", requestID, types.ErrNotFound)
		}
		return nil, err
	}

	return &CredentialConfig{
		RequestID:  assignment.RequestID,
		Host:       assignment.Host,
		Database:   assignment.Database,
		DBUser:     assignment.DBUser,
		AssignedBy: assignment.AssignedBy,
		AssignedAt: assignment.AssignedAt,
	}, nil
}
