// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package access

import (
	"context"

	"github.com/canonical/ops-console/internal/types"
	"github.com/canonical/ops-console/internal/vault"
)

// ServerInfo is the admin-supplied registration data for a remote server.
type ServerInfo struct {
	Host          string
	AdminUser     string
	AdminPassword string
	Description   string
}

type ServiceInterface interface {
	CreateServer(ctx context.Context, info ServerInfo) (*types.ServerEndpoint, error)
	GetServer(ctx context.Context, id string) (*types.ServerEndpoint, error)
	ListServers(ctx context.Context) ([]*types.ServerEndpoint, error)
	// AddDatabase registers a database on the allow-list with access off;
	// a separate grant turns it on.
	AddDatabase(ctx context.Context, serverID, database string) (*types.DatabaseAllowEntry, error)
	GrantAccess(ctx context.Context, serverID, database string) error
	RevokeAccess(ctx context.Context, serverID, database string) error
	// IsAccessible reports whether an active entry with access exists;
	// absence is false, not an error.
	IsAccessible(ctx context.Context, serverID, database string) (bool, error)
	ListDatabases(ctx context.Context, serverID string) ([]*types.DatabaseAllowEntry, error)
}

type StorageInterface interface {
	CreateServer(ctx context.Context, s *types.ServerEndpoint) (*types.ServerEndpoint, error)
	GetServerByID(ctx context.Context, id string) (*types.ServerEndpoint, error)
	ListServers(ctx context.Context) ([]*types.ServerEndpoint, error)
	CreateAllowEntry(ctx context.Context, serverID, database string) (*types.DatabaseAllowEntry, error)
	SetAllowAccess(ctx context.Context, serverID, database string, hasAccess bool) (int64, error)
	IsAccessible(ctx context.Context, serverID, database string) (bool, error)
	ListAllowedDatabases(ctx context.Context, serverID string) ([]*types.DatabaseAllowEntry, error)
}

// VaultInterface narrows the vault to encrypting server admin passwords.
type VaultInterface interface {
	Store(plaintext string) (vault.Secret, error)
}
