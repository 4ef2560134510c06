// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"

	"github.com/canonical/ops-console/internal/types"
)

// Principal is the authenticated caller: a live session and its owning user.
type Principal struct {
	Session *types.Session
	User    *types.User
}

type ServiceInterface interface {
	// Issue creates a fresh opaque token and persists the backing session.
	Issue(ctx context.Context, userID string) (string, *types.Session, error)
	// Validate resolves a token to a principal. It heals stale state: a
	// session found expired or orphaned by a deactivated user is marked
	// inactive as a side effect of this call.
	Validate(ctx context.Context, token string) (*Principal, error)
	// Revoke marks the session behind the token inactive. Idempotent.
	Revoke(ctx context.Context, token string) error
	// RevokeAll deactivates every active session of a user.
	RevokeAll(ctx context.Context, userID string) error
	Login(ctx context.Context, email, plaintext string) (string, *types.User, error)
	Logout(ctx context.Context, token string) error
}

// StorageInterface is the subset of the storage layer this package needs.
type StorageInterface interface {
	GetUserByID(ctx context.Context, id string) (*types.User, error)
	GetUserByEmail(ctx context.Context, email string) (*types.User, error)
	CreateSession(ctx context.Context, userID, token string) (*types.Session, error)
	GetSessionByToken(ctx context.Context, token string) (*types.Session, error)
	DeactivateSessionByToken(ctx context.Context, token string) error
	DeactivateSessionsByUserID(ctx context.Context, userID string) error
}
