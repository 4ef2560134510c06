// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package diagnostics

import (
	"context"
	"time"

	"github.com/canonical/ops-console/internal/types"
	"github.com/canonical/ops-console/internal/vault"
)

// Record is one independent probe row to write against the target database.
type Record struct {
	Key     string `json:"key"`
	Payload string `json:"payload"`
}

// FanoutResult aggregates per-record outcomes. Succeeded+Failed always equals
// Total, and every failed record contributes exactly one entry to Errors.
type FanoutResult struct {
	Total     int      `json:"total"`
	Succeeded int      `json:"succeeded"`
	Failed    int      `json:"failed"`
	Errors    []string `json:"errors"`
}

type ServiceInterface interface {
	// FanoutInsert writes each record concurrently against the named
	// database on the server. Partial write failures are reported in the
	// result, not as a call error; the error return is reserved for
	// precondition failures (no records, target not allow-listed, server
	// unknown, credential decrypt failure, unreachable target).
	FanoutInsert(ctx context.Context, serverID, database string, records []Record) (*FanoutResult, error)
}

type StorageInterface interface {
	GetServerByID(ctx context.Context, id string) (*types.ServerEndpoint, error)
}

// AllowListInterface is the pre-filter consulted before any remote touch.
type AllowListInterface interface {
	IsAccessible(ctx context.Context, serverID, database string) (bool, error)
}

// VaultInterface narrows the vault to decrypting server admin credentials
// and assembling connection descriptors.
type VaultInterface interface {
	Reveal(s vault.Secret) (string, error)
	BuildConnectionDescriptor(host, user, password, database string, timeout time.Duration) vault.ConnectionDescriptor
}
