// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"

	"github.com/canonical/ops-console/internal/types"
)

type StorageInterface interface {
	// users
	GetUserByID(ctx context.Context, id string) (*types.User, error)
	GetUserByEmail(ctx context.Context, email string) (*types.User, error)

	// sessions
	CreateSession(ctx context.Context, userID, token string) (*types.Session, error)
	GetSessionByToken(ctx context.Context, token string) (*types.Session, error)
	DeactivateSessionByToken(ctx context.Context, token string) error
	DeactivateSessionsByUserID(ctx context.Context, userID string) error

	// tools
	GetToolByID(ctx context.Context, id string) (*types.Tool, error)

	// entitlements
	CreateEntitlement(ctx context.Context, userID, toolID, grantedBy string) (*types.ToolEntitlement, error)
	GetActiveEntitlement(ctx context.Context, userID, toolID string) (*types.ToolEntitlement, error)
	GetRevokedEntitlement(ctx context.Context, userID, toolID string) (*types.ToolEntitlement, error)
	RevokeEntitlement(ctx context.Context, userID, toolID string) (int64, error)
	UnrevokeEntitlement(ctx context.Context, userID, toolID string) (int64, error)
	ListEntitlementsByUserID(ctx context.Context, userID string, includeRevoked bool) ([]*types.ToolEntitlement, error)

	// tenant requests
	CreateRequest(ctx context.Context, r *types.TenantRequest) (*types.TenantRequest, error)
	GetRequestByID(ctx context.Context, id string) (*types.TenantRequest, error)
	ListRequests(ctx context.Context, page, size uint64) ([]*types.TenantRequest, int64, error)
	ListRequestsByRequesterID(ctx context.Context, requesterID string) ([]*types.TenantRequest, error)
	TransitionRequestStatus(ctx context.Context, id string, from []types.RequestStatus, to types.RequestStatus) (int64, error)
	CancelRequest(ctx context.Context, id, requesterID string) (int64, error)

	// credential assignments
	CreateAssignment(ctx context.Context, a *types.CredentialAssignment) (*types.CredentialAssignment, error)
	GetAssignmentByRequestID(ctx context.Context, requestID string) (*types.CredentialAssignment, error)

	// server endpoints and allow-list
	CreateServer(ctx context.Context, s *types.ServerEndpoint) (*types.ServerEndpoint, error)
	GetServerByID(ctx context.Context, id string) (*types.ServerEndpoint, error)
	ListServers(ctx context.Context) ([]*types.ServerEndpoint, error)
	CreateAllowEntry(ctx context.Context, serverID, database string) (*types.DatabaseAllowEntry, error)
	SetAllowAccess(ctx context.Context, serverID, database string, hasAccess bool) (int64, error)
	IsAccessible(ctx context.Context, serverID, database string) (bool, error)
	ListAllowedDatabases(ctx context.Context, serverID string) ([]*types.DatabaseAllowEntry, error)

	// directory lookups against the out-of-scope company/employee tables
	CompanyActive(ctx context.Context, id string) (bool, error)
	EmployeeExists(ctx context.Context, id string) (bool, error)
	CompanyNamesByIDs(ctx context.Context, ids []string) (map[string]string, error)
}
