// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package remotedb

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/canonical/ops-console/internal/logging"
	"github.com/canonical/ops-console/internal/types"
	"github.com/canonical/ops-console/internal/vault"
)

var _ ConnectorInterface = (*Connector)(nil)

type Connector struct {
	logger logging.LoggerInterface
}

func NewConnector(logger logging.LoggerInterface) *Connector {
	c := new(Connector)
	c.logger = logger
	return c
}

// Open dials the remote tenant database. Failures are infrastructure
// errors: the DSN detail is logged, never surfaced to the caller.
func (c *Connector) Open(ctx context.Context, d vault.ConnectionDescriptor) (TargetInterface, error) {
	db, err := sql.Open("pgx", d.DSN())
	if err != nil {
		c.logger.Errorf("failed to open remote database %s: %v", d, err)
		return nil, fmt.Errorf("remote database unavailable: %w", types.ErrInfrastructure)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		c.logger.Errorf("failed to reach remote database %s: %v", d, err)
		return nil, fmt.Errorf("remote database unreachable: %w", types.ErrInfrastructure)
	}

	return &Target{db: db}, nil
}

var _ TargetInterface = (*Target)(nil)

type Target struct {
	db *sql.DB
}

func (t *Target) EnsureProbeTable(ctx context.Context) error {
	_, err := t.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS diagnostic_probes (
			key TEXT NOT NULL,
			payload TEXT NOT NULL,
			inserted_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`)
	if err != nil {
		return fmt.Errorf("failed to create probe table: %w", err)
	}
	return nil
}

// InsertProbe is one independent write, no transaction spans probes.
func (t *Target) InsertProbe(ctx context.Context, key, payload string) error {
	_, err := t.db.ExecContext(ctx,
		`INSERT INTO diagnostic_probes (key, payload) VALUES ($1, $2)`, key, payload)
	if err != nil {
		return fmt.Errorf("failed to insert probe %s: %w", key, err)
	}
	return nil
}

func (t *Target) Close() error {
	return t.db.Close()
}
