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

// CreateEntitlement inserts a fresh grant. The partial unique index on
// (user_id, tool_id) WHERE NOT revoked turns concurrent duplicate grants
// into ErrDuplicateKey.
func (s *Storage) CreateEntitlement(ctx context.Context, userID, toolID, grantedBy string) (*types.ToolEntitlement, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateEntitlement")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate entitlement ID: %w", err)
	}

	var e types.ToolEntitlement
	err = s.db.Statement(ctx).
		Insert("tool_entitlements").
		Columns("id", "user_id", "tool_id", "granted_by").
		Values(id.String(), userID, toolID, grantedBy).
		Suffix("RETURNING id, user_id, tool_id, granted_by, granted_at, revoked, revoked_at").
		QueryRowContext(ctx).
		Scan(&e.ID, &e.UserID, &e.ToolID, &e.GrantedBy, &e.GrantedAt, &e.Revoked, &e.RevokedAt)

	if err != nil {
		if IsDuplicateKeyError(err) {
			return nil, ErrDuplicateKey
		}
		if IsForeignKeyViolation(err) {
			return nil, ErrForeignKeyViolation
		}
		return nil, fmt.Errorf("failed to insert entitlement: %w", err)
	}

	return &e, nil
}

func (s *Storage) GetActiveEntitlement(ctx context.Context, userID, toolID string) (*types.ToolEntitlement, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetActiveEntitlement")
	defer span.End()

	return s.getEntitlement(ctx, userID, toolID, false)
}

func (s *Storage) GetRevokedEntitlement(ctx context.Context, userID, toolID string) (*types.ToolEntitlement, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetRevokedEntitlement")
	defer span.End()

	return s.getEntitlement(ctx, userID, toolID, true)
}

func (s *Storage) getEntitlement(ctx context.Context, userID, toolID string, revoked bool) (*types.ToolEntitlement, error) {
	query := s.db.Statement(ctx).
		Select("id", "user_id", "tool_id", "granted_by", "granted_at", "revoked", "revoked_at").
		From("tool_entitlements").
		Where(sq.Eq{"user_id": userID, "tool_id": toolID, "revoked": revoked})

	if revoked {
		// A pair may have several revoked rows over its history, return
		// the most recent one.
		query = query.OrderBy("revoked_at DESC").Limit(1)
	}

	var e types.ToolEntitlement
	err := query.
		QueryRowContext(ctx).
		Scan(&e.ID, &e.UserID, &e.ToolID, &e.GrantedBy, &e.GrantedAt, &e.Revoked, &e.RevokedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get entitlement: %w", err)
	}

	return &e, nil
}

// RevokeEntitlement flips the active row's revoked flag. Returns the number
// of rows affected, zero meaning no active entitlement existed.
func (s *Storage) RevokeEntitlement(ctx context.Context, userID, toolID string) (int64, error) {
	ctx, span := s.tracer.Start(ctx, "storage.RevokeEntitlement")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("tool_entitlements").
		Set("revoked", true).
		Set("revoked_at", sq.Expr("now()")).
		Where(sq.Eq{"user_id": userID, "tool_id": toolID, "revoked": false}).
		ExecContext(ctx)

	if err != nil {
		return 0, fmt.Errorf("failed to revoke entitlement: %w", err)
	}

	return res.RowsAffected()
}

// UnrevokeEntitlement re-activates the most recently revoked row for the
// pair. The flag flips back, no new row is created.
func (s *Storage) UnrevokeEntitlement(ctx context.Context, userID, toolID string) (int64, error) {
	ctx, span := s.tracer.Start(ctx, "storage.UnrevokeEntitlement")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("tool_entitlements").
		Set("revoked", false).
		Set("revoked_at", nil).
		Where(sq.Expr(
			"id = (SELECT id FROM tool_entitlements WHERE user_id = ? AND tool_id = ? AND revoked ORDER BY revoked_at DESC LIMIT 1)",
			userID, toolID,
		)).
		ExecContext(ctx)

	if err != nil {
		if IsDuplicateKeyError(err) {
			// An active entitlement already exists for the pair.
			return 0, ErrDuplicateKey
		}
		return 0, fmt.Errorf("failed to unrevoke entitlement: %w", err)
	}

	return res.RowsAffected()
}

func (s *Storage) ListEntitlementsByUserID(ctx context.Context, userID string, includeRevoked bool) ([]*types.ToolEntitlement, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListEntitlementsByUserID")
	defer span.End()

	query := s.db.Statement(ctx).
		Select("id", "user_id", "tool_id", "granted_by", "granted_at", "revoked", "revoked_at").
		From("tool_entitlements").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("granted_at DESC")

	if !includeRevoked {
		query = query.Where(sq.Eq{"revoked": false})
	}

	rows, err := query.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list entitlements: %w", err)
	}
	defer rows.Close()

	var entitlements []*types.ToolEntitlement
	for rows.Next() {
		var e types.ToolEntitlement
		if err := rows.Scan(&e.ID, &e.UserID, &e.ToolID, &e.GrantedBy, &e.GrantedAt, &e.Revoked, &e.RevokedAt); err != nil {
			return nil, fmt.Errorf("failed to scan entitlement: %w", err)
		}
		entitlements = append(entitlements, &e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return entitlements, nil
}
