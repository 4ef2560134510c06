// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/canonical/ops-console/internal/db"
	"github.com/canonical/ops-console/internal/logging"
	"github.com/canonical/ops-console/internal/monitoring"
	"github.com/canonical/ops-console/internal/tracing"
	"github.com/canonical/ops-console/internal/types"
)

var _ StorageInterface = (*Storage)(nil)

type Storage struct {
	db db.DBClientInterface

	logger  logging.LoggerInterface
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
}

func NewStorage(c db.DBClientInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Storage {
	s := new(Storage)

	s.db = c

	s.logger = logger
	s.tracer = tracer
	s.monitor = monitor

	return s
}

func (s *Storage) GetUserByID(ctx context.Context, id string) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetUserByID")
	defer span.End()

	return s.getUser(ctx, sq.Eq{"id": id})
}

func (s *Storage) GetUserByEmail(ctx context.Context, email string) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetUserByEmail")
	defer span.End()

	return s.getUser(ctx, sq.Eq{"email": email})
}

func (s *Storage) getUser(ctx context.Context, pred sq.Eq) (*types.User, error) {
	var u types.User
	err := s.db.Statement(ctx).
		Select("id", "name", "email", "password_hash", "role", "federated_id", "active", "created_at").
		From("users").
		Where(pred).
		QueryRowContext(ctx).
		Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role, &u.FederatedID, &u.Active, &u.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &u, nil
}

func (s *Storage) GetToolByID(ctx context.Context, id string) (*types.Tool, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetToolByID")
	defer span.End()

	var t types.Tool
	err := s.db.Statement(ctx).
		Select("id", "name", "description", "active", "under_development").
		From("tools").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx).
		Scan(&t.ID, &t.Name, &t.Description, &t.Active, &t.UnderDevelopment)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get tool: %w", err)
	}

	return &t, nil
}

func (s *Storage) CompanyActive(ctx context.Context, id string) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CompanyActive")
	defer span.End()

	var active bool
	err := s.db.Statement(ctx).
		Select("active").
		From("companies").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx).
		Scan(&active)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check company: %w", err)
	}

	return active, nil
}

func (s *Storage) EmployeeExists(ctx context.Context, id string) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "storage.EmployeeExists")
	defer span.End()

	var one int
	err := s.db.Statement(ctx).
		Select("1").
		From("employees").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx).
		Scan(&one)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check employee: %w", err)
	}

	return true, nil
}

func (s *Storage) CompanyNamesByIDs(ctx context.Context, ids []string) (map[string]string, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CompanyNamesByIDs")
	defer span.End()

	names := make(map[string]string, len(ids))
	if len(ids) == 0 {
		return names, nil
	}

	rows, err := s.db.Statement(ctx).
		Select("id", "name").
		From("companies").
		Where(sq.Eq{"id": ids}).
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to look up company names: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id, name string
		if err := rows.Scan(&id, &name); err != nil {
			return nil, fmt.Errorf("failed to scan company name: %w", err)
		}
		names[id] = name
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return names, nil
}
