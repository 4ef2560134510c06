// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package remotedb

import (
	"context"

	"github.com/canonical/ops-console/internal/vault"
)

// ConnectorInterface opens connections to remote tenant databases described
// by a vault connection descriptor.
type ConnectorInterface interface {
	Open(ctx context.Context, d vault.ConnectionDescriptor) (TargetInterface, error)
}

// TargetInterface is one open remote tenant database.
type TargetInterface interface {
	// EnsureProbeTable creates the diagnostic probe table when missing.
	EnsureProbeTable(ctx context.Context) error
	// InsertProbe writes one independent probe row.
	InsertProbe(ctx context.Context, key, payload string) error
	Close() error
}

// RemoteProcedureRunner is the boundary for the branch-reprocessing feature,
// a thin pass-through to stored procedures on the tenant side. It is consumed
// here but implemented by the out-of-scope reprocessing component.
type RemoteProcedureRunner interface {
	RunRemoteProcedure(ctx context.Context, d vault.ConnectionDescriptor, procName string, args ...any) error
}
