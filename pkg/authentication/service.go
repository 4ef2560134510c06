// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/canonical/ops-console/internal/logging"
	"github.com/canonical/ops-console/internal/monitoring"
	"github.com/canonical/ops-console/internal/password"
	"github.com/canonical/ops-console/internal/storage"
	"github.com/canonical/ops-console/internal/tracing"
	"github.com/canonical/ops-console/internal/types"
)

const tokenBytes = 32

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	storage  StorageInterface
	lifetime time.Duration

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	lifetime time.Duration,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage:  storage,
		lifetime: lifetime,
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}

func (s *Service) Issue(ctx context.Context, userID string) (string, *types.Session, error) {
	ctx, span := s.tracer.Start(ctx, "authentication.Service.Issue")
	defer span.End()

	token, err := generateOpaqueToken(tokenBytes)
	if err != nil {
		return "", nil, fmt.Errorf("failed to generate token: %w", err)
	}

	session, err := s.storage.CreateSession(ctx, userID, token)
	if err != nil {
		if errors.Is(err, storage.ErrDuplicateKey) {
			return "", nil, fmt.Errorf("token collision: %w", types.ErrConflict)
		}
		return "", nil, err
	}

	return token, session, nil
}

// Validate resolves a token and heals stale sessions on the way: discovery
// of a revoked, expired or orphaned session marks the row inactive even
// though this is logically a read path. The deactivation is a conditional
// update, so two requests racing to discover the same expiry are harmless.
func (s *Service) Validate(ctx context.Context, token string) (*Principal, error) {
	ctx, span := s.tracer.Start(ctx, "authentication.Service.Validate")
	defer span.End()

	if token == "" {
		return nil, fmt.Errorf("missing token: %w", types.ErrAuthentication)
	}

	session, err := s.storage.GetSessionByToken(ctx, token)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("unknown token: %w", types.ErrAuthentication)
		}
		return nil, err
	}

	if !session.Active {
		return nil, fmt.Errorf("session revoked: %w", types.ErrAuthentication)
	}

	if time.Now().After(session.LoginAt.Add(s.lifetime)) {
		if err := s.storage.DeactivateSessionByToken(ctx, token); err != nil {
			s.logger.Errorf("failed to expire session: %v", err)
		}
		return nil, fmt.Errorf("session expired: %w", types.ErrAuthentication)
	}

	user, err := s.storage.GetUserByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("session owner missing: %w", types.ErrAuthentication)
		}
		return nil, err
	}

	if !user.Active {
		// Deactivated users lose every session, not just this one.
		if err := s.storage.DeactivateSessionsByUserID(ctx, user.ID); err != nil {
			s.logger.Errorf("failed to deactivate sessions of inactive user: %v", err)
		}
		s.logger.Security().SessionRevoked(user.ID)
		return nil, fmt.Errorf("user deactivated: %w", types.ErrAuthentication)
	}

	return &Principal{Session: session, User: user}, nil
}

func (s *Service) Revoke(ctx context.Context, token string) error {
	ctx, span := s.tracer.Start(ctx, "authentication.Service.Revoke")
	defer span.End()

	return s.storage.DeactivateSessionByToken(ctx, token)
}

func (s *Service) RevokeAll(ctx context.Context, userID string) error {
	ctx, span := s.tracer.Start(ctx, "authentication.Service.RevokeAll")
	defer span.End()

	if err := s.storage.DeactivateSessionsByUserID(ctx, userID); err != nil {
		return err
	}

	s.logger.Security().SessionRevoked(userID)
	return nil
}

func (s *Service) Login(ctx context.Context, email, plaintext string) (string, *types.User, error) {
	ctx, span := s.tracer.Start(ctx, "authentication.Service.Login")
	defer span.End()

	user, err := s.storage.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			s.logger.Security().LoginFailure(email)
			return "", nil, fmt.Errorf("invalid credentials: %w", types.ErrAuthentication)
		}
		return "", nil, err
	}

	// Federated-identity-only accounts carry no local hash and cannot
	// log in with a password.
	if !user.Active || user.PasswordHash == nil || !password.Verify(plaintext, *user.PasswordHash) {
		s.logger.Security().LoginFailure(email)
		return "", nil, fmt.Errorf("invalid credentials: %w", types.ErrAuthentication)
	}

	token, _, err := s.Issue(ctx, user.ID)
	if err != nil {
		return "", nil, err
	}

	s.logger.Security().LoginSuccess(user.ID)
	return token, user, nil
}

func (s *Service) Logout(ctx context.Context, token string) error {
	ctx, span := s.tracer.Start(ctx, "authentication.Service.Logout")
	defer span.End()

	return s.Revoke(ctx, token)
}

// generateOpaqueToken returns a random base64url token without padding.
func generateOpaqueToken(nBytes int) (string, error) {
	b := make([]byte, nBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
