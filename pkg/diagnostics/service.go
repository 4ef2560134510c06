// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package diagnostics

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/canonical/ops-console/internal/logging"
	"github.com/canonical/ops-console/internal/monitoring"
	"github.com/canonical/ops-console/internal/remotedb"
	"github.com/canonical/ops-console/internal/storage"
	"github.com/canonical/ops-console/internal/tracing"
	"github.com/canonical/ops-console/internal/types"
	"github.com/canonical/ops-console/internal/vault"
)

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	storage   StorageInterface
	allowList AllowListInterface
	vault     VaultInterface
	connector remotedb.ConnectorInterface

	// concurrency bounds the in-flight probe writers; 0 means unbounded.
	concurrency int64
	connTimeout time.Duration

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	allowList AllowListInterface,
	vault VaultInterface,
	connector remotedb.ConnectorInterface,
	concurrency int,
	connTimeout time.Duration,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage:     storage,
		allowList:   allowList,
		vault:       vault,
		connector:   connector,
		concurrency: int64(concurrency),
		connTimeout: connTimeout,
		tracer:      tracer,
		monitor:     monitor,
		logger:      logger,
	}
}

func (s *Service) FanoutInsert(ctx context.Context, serverID, database string, records []Record) (*FanoutResult, error) {
	ctx, span := s.tracer.Start(ctx, "diagnostics.Service.FanoutInsert")
	defer span.End()

	if len(records) == 0 {
		return nil, fmt.Errorf("no records to write: %w", types.ErrValidation)
	}

	ok, err := s.allowList.IsAccessible(ctx, serverID, database)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("database %q on server %q is not allow-listed: %w", database, serverID, types.ErrAuthorization)
	}

	server, err := s.storage.GetServerByID(ctx, serverID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("server %q: %w", serverID, types.ErrNotFound)
		}
		return nil, err
	}
	if !server.Active {
		return nil, fmt.Errorf("server %q is deactivated: %w", serverID, types.ErrValidation)
	}

	password, err := s.vault.Reveal(vault.FromCiphertext(server.AdminPassEnc))
	if err != nil {
		s.logger.Errorf("failed to decrypt admin credential for server %s: %v", serverID, err)
		return nil, fmt.Errorf("admin credential for server %q: %w", serverID, types.ErrDecryption)
	}

	descriptor := s.vault.BuildConnectionDescriptor(server.Host, server.AdminUser, password, database, s.connTimeout)

	target, err := s.connector.Open(ctx, descriptor)
	if err != nil {
		return nil, err
	}
	defer target.Close()

	if err := target.EnsureProbeTable(ctx); err != nil {
		s.logger.Errorf("failed to prepare probe table on %s: %v", descriptor, err)
		return nil, fmt.Errorf("probe table unavailable: %w", types.ErrInfrastructure)
	}

	result := s.fanout(ctx, target, records)

	s.logger.Infof("fan-out against %s: %d/%d probes succeeded", descriptor, result.Succeeded, result.Total)
	return result, nil
}

// fanout runs one writer per record and collects every outcome. A failed
// record never aborts the others, and the call returns only once all writers
// have finished.
func (s *Service) fanout(ctx context.Context, target remotedb.TargetInterface, records []Record) *FanoutResult {
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs []string
	)

	var sem *semaphore.Weighted
	if s.concurrency > 0 {
		sem = semaphore.NewWeighted(s.concurrency)
	}

	// There is no cancellation once the fan-out is launched; a client
	// disconnect must not abort probes mid-flight.
	writeCtx := context.WithoutCancel(ctx)

	for _, rec := range records {
		wg.Add(1)
		go func(rec Record) {
			defer wg.Done()

			if sem != nil {
				// Acquisition only waits on peers.
				_ = sem.Acquire(context.Background(), 1)
				defer sem.Release(1)
			}

			if err := target.InsertProbe(writeCtx, rec.Key, rec.Payload); err != nil {
				mu.Lock()
				errs = append(errs, fmt.Sprintf("record %s: %v", rec.Key, err))
				mu.Unlock()
			}
		}(rec)
	}

	wg.Wait()

	return &FanoutResult{
		Total:     len(records),
		Succeeded: len(records) - len(errs),
		Failed:    len(errs),
		Errors:    errs,
	}
}
