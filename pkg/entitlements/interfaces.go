// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package entitlements

import (
	"context"

	"github.com/canonical/ops-console/internal/types"
)

type ServiceInterface interface {
	// Grant entitles userID to toolID. A previously revoked pair is
	// re-granted by flipping the revoked flag back, no new row is created.
	Grant(ctx context.Context, userID, toolID, grantedBy string) (*types.ToolEntitlement, error)
	Revoke(ctx context.Context, userID, toolID string) error
	// Unrevoke restores a revoked pair and returns the reactivated row.
	Unrevoke(ctx context.Context, userID, toolID, by string) (*types.ToolEntitlement, error)
	HasAccess(ctx context.Context, userID, toolID string) (bool, error)
	ListForUser(ctx context.Context, userID string, includeRevoked bool) ([]*types.ToolEntitlement, error)
}

type StorageInterface interface {
	GetToolByID(ctx context.Context, id string) (*types.Tool, error)
	CreateEntitlement(ctx context.Context, userID, toolID, grantedBy string) (*types.ToolEntitlement, error)
	GetActiveEntitlement(ctx context.Context, userID, toolID string) (*types.ToolEntitlement, error)
	GetRevokedEntitlement(ctx context.Context, userID, toolID string) (*types.ToolEntitlement, error)
	RevokeEntitlement(ctx context.Context, userID, toolID string) (int64, error)
	UnrevokeEntitlement(ctx context.Context, userID, toolID string) (int64, error)
	ListEntitlementsByUserID(ctx context.Context, userID string, includeRevoked bool) ([]*types.ToolEntitlement, error)
}
