// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package entitlements

import (
	"context"
	"errors"
	"fmt"

	"github.com/canonical/ops-console/internal/logging"
	"github.com/canonical/ops-console/internal/monitoring"
	"github.com/canonical/ops-console/internal/storage"
	"github.com/canonical/ops-console/internal/tracing"
	"github.com/canonical/ops-console/internal/types"
)

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	storage StorageInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage: storage,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

func (s *Service) Grant(ctx context.Context, userID, toolID, grantedBy string) (*types.ToolEntitlement, error) {
	ctx, span := s.tracer.Start(ctx, "entitlements.Service.Grant")
	defer span.End()

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

	// Re-grant of a revoked pair flips the existing row back instead of
	// inserting, so the (user, tool) history stays single-rowed.
	rows, err := s.storage.UnrevokeEntitlement(ctx, userID, toolID)
	if err != nil {
		return nil, err
	}
	if rows > 0 {
		return s.storage.GetActiveEntitlement(ctx, userID, toolID)
	}

	entitlement, err := s.storage.CreateEntitlement(ctx, userID, toolID, grantedBy)
	if err != nil {
		if errors.Is(err, storage.ErrDuplicateKey) {
			return nil, fmt.Errorf("user %q already entitled to tool %q: %w", userID, toolID, types.ErrConflict)
		}
		return nil, err
	}

	return entitlement, nil
}

func (s *Service) Revoke(ctx context.Context, userID, toolID string) error {
	ctx, span := s.tracer.Start(ctx, "entitlements.Service.Revoke")
	defer span.End()

	rows, err := s.storage.RevokeEntitlement(ctx, userID, toolID)
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("no active entitlement for user %q on tool %q: %w", userID, toolID, types.ErrNotFound)
	}

	return nil
}

// Unrevoke restores a previously revoked entitlement and returns the
// reactivated row.
func (s *Service) Unrevoke(ctx context.Context, userID, toolID, by string) (*types.ToolEntitlement, error) {
	ctx, span := s.tracer.Start(ctx, "entitlements.Service.Unrevoke")
	defer span.End()

	entitlement, err := s.storage.GetRevokedEntitlement(ctx, userID, toolID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("no revoked entitlement for user %q on tool %q: %w", userID, toolID, types.ErrNotFound)
		}
		return nil, err
	}

	rows, err := s.storage.UnrevokeEntitlement(ctx, userID, toolID)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		// A concurrent unrevoke or re-grant already flipped the row.
		return nil, fmt.Errorf("no revoked entitlement for user %q on tool %q: %w", userID, toolID, types.ErrNotFound)
	}

	s.logger.Infof("entitlement (%s, %s) unrevoked by %s", userID, toolID, by)

	entitlement.Revoked = false
	entitlement.RevokedAt = nil
	return entitlement, nil
}

func (s *Service) HasAccess(ctx context.Context, userID, toolID string) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "entitlements.Service.HasAccess")
	defer span.End()

	_, err := s.storage.GetActiveEntitlement(ctx, userID, toolID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return false, nil
		}
		return false, err
	}

	return true, nil
}

func (s *Service) ListForUser(ctx context.Context, userID string, includeRevoked bool) ([]*types.ToolEntitlement, error) {
	ctx, span := s.tracer.Start(ctx, "entitlements.Service.ListForUser")
	defer span.End()

	return s.storage.ListEntitlementsByUserID(ctx, userID, includeRevoked)
}
