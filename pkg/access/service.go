// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package access

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

type Service struct {
	storage StorageInterface
	vault   VaultInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	vault VaultInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage: storage,
		vault:   vault,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

func (s *Service) CreateServer(ctx context.Context, info ServerInfo) (*types.ServerEndpoint, error) {
	ctx, span := s.tracer.Start(ctx, "access.Service.CreateServer")
	defer span.End()

	if info.Host == "" || info.AdminUser == "" || info.AdminPassword == "" {
		return nil, fmt.Errorf("host, admin_user and admin_password are required: %w", types.ErrValidation)
	}

	secret, err := s.vault.Store(info.AdminPassword)
	if err != nil {
		s.logger.Errorf("failed to encrypt admin password for %s: %v", info.Host, err)
		return nil, fmt.Errorf("credential encryption failed: %w", types.ErrInfrastructure)
	}

	server := &types.ServerEndpoint{
		ID:           uuid.Must(uuid.NewV7()).String(),
		Host:         info.Host,
		AdminUser:    info.AdminUser,
		AdminPassEnc: secret.Ciphertext(),
		Description:  info.Description,
		Active:       true,
	}

	return s.storage.CreateServer(ctx, server)
}

func (s *Service) GetServer(ctx context.Context, id string) (*types.ServerEndpoint, error) {
	ctx, span := s.tracer.Start(ctx, "access.Service.GetServer")
	defer span.End()

	server, err := s.storage.GetServerByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("server %q: %w", id, types.ErrNotFound)
		}
		return nil, err
	}

	return server, nil
}

func (s *Service) ListServers(ctx context.Context) ([]*types.ServerEndpoint, error) {
	ctx, span := s.tracer.Start(ctx, "access.Service.ListServers")
	defer span.End()

	return s.storage.ListServers(ctx)
}

func (s *Service) AddDatabase(ctx context.Context, serverID, database string) (*types.DatabaseAllowEntry, error) {
	ctx, span := s.tracer.Start(ctx, "access.Service.AddDatabase")
	defer span.End()

	if _, err := s.GetServer(ctx, serverID); err != nil {
		return nil, err
	}

	entry, err := s.storage.CreateAllowEntry(ctx, serverID, database)
	if err != nil {
		if errors.Is(err, storage.ErrDuplicateKey) {
			return nil, fmt.Errorf("database %q already registered on server %q: %w", database, serverID, types.ErrConflict)
		}
		return nil, err
	}

	return entry, nil
}

func (s *Service) GrantAccess(ctx context.Context, serverID, database string) error {
	ctx, span := s.tracer.Start(ctx, "access.Service.GrantAccess")
	defer span.End()

	return s.setAccess(ctx, serverID, database, true)
}

func (s *Service) RevokeAccess(ctx context.Context, serverID, database string) error {
	ctx, span := s.tracer.Start(ctx, "access.Service.RevokeAccess")
	defer span.End()

	return s.setAccess(ctx, serverID, database, false)
}

func (s *Service) setAccess(ctx context.Context, serverID, database string, hasAccess bool) error {
	rows, err := s.storage.SetAllowAccess(ctx, serverID, database, hasAccess)
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("no allow-list entry for %q on server %q: %w", database, serverID, types.ErrNotFound)
	}

	s.logger.Infof("allow-list entry (%s, %s) set has_access=%v", serverID, database, hasAccess)
	return nil
}

func (s *Service) IsAccessible(ctx context.Context, serverID, database string) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "access.Service.IsAccessible")
	defer span.End()

	return s.storage.IsAccessible(ctx, serverID, database)
}

func (s *Service) ListDatabases(ctx context.Context, serverID string) ([]*types.DatabaseAllowEntry, error) {
	ctx, span := s.tracer.Start(ctx, "access.Service.ListDatabases")
	defer span.End()

	if _, err := s.GetServer(ctx, serverID); err != nil {
		return nil, err
	}

	return s.storage.ListAllowedDatabases(ctx, serverID)
}
