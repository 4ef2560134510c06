// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/canonical/ops-console/internal/types"
)

func (s *Storage) CreateServer(ctx context.Context, srv *types.ServerEndpoint) (*types.ServerEndpoint, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateServer")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate server ID: %w", err)
	}

	var created types.ServerEndpoint
	err = s.db.Statement(ctx).
		Insert("server_endpoints").
		Columns("id", "host", "admin_user", "admin_pass_enc", "description", "active").
		Values(id.String(), srv.Host, srv.AdminUser, srv.AdminPassEnc, srv.Description, true).
		Suffix("RETURNING id, host, admin_user, admin_pass_enc, description, active").
		QueryRowContext(ctx).
		Scan(&created.ID, &created.Host, &created.AdminUser, &created.AdminPassEnc, &created.Description, &created.Active)

	if err != nil {
		if IsDuplicateKeyError(err) {
			return nil, ErrDuplicateKey
		}
		return nil, fmt.Errorf("failed to insert server: %w", err)
	}

	return &created, nil
}

func (s *Storage) GetServerByID(ctx context.Context, id string) (*types.ServerEndpoint, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetServerByID")
	defer span.End()

	var srv types.ServerEndpoint
	err := s.db.Statement(ctx).
		Select("id", "host", "admin_user", "admin_pass_enc", "description", "active").
		From("server_endpoints").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx).
		Scan(&srv.ID, &srv.Host, &srv.AdminUser, &srv.AdminPassEnc, &srv.Description, &srv.Active)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get server: %w", err)
	}

	return &srv, nil
}

func (s *Storage) ListServers(ctx context.Context) ([]*types.ServerEndpoint, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListServers")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("id", "host", "admin_user", "admin_pass_enc", "description", "active").
		From("server_endpoints").
		OrderBy("host").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list servers: %w", err)
	}
	defer rows.Close()

	var servers []*types.ServerEndpoint
	for rows.Next() {
		var srv types.ServerEndpoint
		if err := rows.Scan(&srv.ID, &srv.Host, &srv.AdminUser, &srv.AdminPassEnc, &srv.Description, &srv.Active); err != nil {
			return nil, fmt.Errorf("failed to scan server: %w", err)
		}
		servers = append(servers, &srv)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return servers, nil
}

func (s *Storage) CreateAllowEntry(ctx context.Context, serverID, database string) (*types.DatabaseAllowEntry, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateAllowEntry")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate allow entry ID: %w", err)
	}

	var created types.DatabaseAllowEntry
	err = s.db.Statement(ctx).
		Insert("database_allow_entries").
		Columns("id", "server_id", "db_name", "has_access", "active").
		Values(id.String(), serverID, database, false, true).
		Suffix("RETURNING id, server_id, db_name, has_access, active").
		QueryRowContext(ctx).
		Scan(&created.ID, &created.ServerID, &created.Database, &created.HasAccess, &created.Active)

	if err != nil {
		if IsDuplicateKeyError(err) {
			return nil, ErrDuplicateKey
		}
		if IsForeignKeyViolation(err) {
			return nil, ErrForeignKeyViolation
		}
		return nil, fmt.Errorf("failed to insert allow entry: %w", err)
	}

	return &created, nil
}

func (s *Storage) SetAllowAccess(ctx context.Context, serverID, database string, hasAccess bool) (int64, error) {
	ctx, span := s.tracer.Start(ctx, "storage.SetAllowAccess")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("database_allow_entries").
		Set("has_access", hasAccess).
		Where(sq.Eq{"server_id": serverID, "db_name": database, "active": true}).
		ExecContext(ctx)

	if err != nil {
		return 0, fmt.Errorf("failed to update allow entry: %w", err)
	}

	return res.RowsAffected()
}

// IsAccessible reports whether an active allow-list entry with access exists
// for the (server, database) pair. Absence is simply false, not an error.
func (s *Storage) IsAccessible(ctx context.Context, serverID, database string) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "storage.IsAccessible")
	defer span.End()

	var one int
	err := s.db.Statement(ctx).
		Select("1").
		From("database_allow_entries").
		Where(sq.Eq{"server_id": serverID, "db_name": database, "has_access": true, "active": true}).
		QueryRowContext(ctx).
		Scan(&one)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check allow entry: %w", err)
	}

	return true, nil
}

func (s *Storage) ListAllowedDatabases(ctx context.Context, serverID string) ([]*types.DatabaseAllowEntry, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListAllowedDatabases")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("id", "server_id", "db_name", "has_access", "active").
		From("database_allow_entries").
		Where(sq.Eq{"server_id": serverID, "active": true}).
		OrderBy("db_name").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list allow entries: %w", err)
	}
	defer rows.Close()

	var entries []*types.DatabaseAllowEntry
	for rows.Next() {
		var e types.DatabaseAllowEntry
		if err := rows.Scan(&e.ID, &e.ServerID, &e.Database, &e.HasAccess, &e.Active); err != nil {
			return nil, fmt.Errorf("failed to scan allow entry: %w", err)
		}
		entries = append(entries, &e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return entries, nil
}
