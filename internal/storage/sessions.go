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

func (s *Storage) CreateSession(ctx context.Context, userID, token string) (*types.Session, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateSession")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate session ID: %w", err)
	}

	var session types.Session
	err = s.db.Statement(ctx).
		Insert("sessions").
		Columns("id", "user_id", "token", "active").
		Values(id.String(), userID, token, true).
		Suffix("RETURNING id, user_id, token, login_at, logout_at, active").
		QueryRowContext(ctx).
		Scan(&session.ID, &session.UserID, &session.Token, &session.LoginAt, &session.LogoutAt, &session.Active)

	if err != nil {
		// Token collision is astronomically unlikely given 256 bits of
		// entropy, but surface it as a conflict rather than a crash.
		if IsDuplicateKeyError(err) {
			return nil, ErrDuplicateKey
		}
		return nil, fmt.Errorf("failed to insert session: %w", err)
	}

	return &session, nil
}

func (s *Storage) GetSessionByToken(ctx context.Context, token string) (*types.Session, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetSessionByToken")
	defer span.End()

	var session types.Session
	err := s.db.Statement(ctx).
		Select("id", "user_id", "token", "login_at", "logout_at", "active").
		From("sessions").
		Where(sq.Eq{"token": token}).
		QueryRowContext(ctx).
		Scan(&session.ID, &session.UserID, &session.Token, &session.LoginAt, &session.LogoutAt, &session.Active)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	return &session, nil
}

// DeactivateSessionByToken marks a session inactive and stamps its logout
// time. The active guard makes it idempotent: a second writer racing to
// deactivate the same row simply affects zero rows.
func (s *Storage) DeactivateSessionByToken(ctx context.Context, token string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeactivateSessionByToken")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Update("sessions").
		Set("active", false).
		Set("logout_at", sq.Expr("now()")).
		Where(sq.Eq{"token": token, "active": true}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to deactivate session: %w", err)
	}

	return nil
}

func (s *Storage) DeactivateSessionsByUserID(ctx context.Context, userID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeactivateSessionsByUserID")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Update("sessions").
		Set("active", false).
		Set("logout_at", sq.Expr("now()")).
		Where(sq.Eq{"user_id": userID, "active": true}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to deactivate sessions: %w", err)
	}

	return nil
}
