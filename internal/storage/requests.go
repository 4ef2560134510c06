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

const requestColumns = "id, requester_id, employee_id, company_id, tool_id, session_id, status, cancelled, created_at, updated_at"

func (s *Storage) CreateRequest(ctx context.Context, r *types.TenantRequest) (*types.TenantRequest, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateRequest")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate request ID: %w", err)
	}

	var created types.TenantRequest
	err = s.db.Statement(ctx).
		Insert("tenant_requests").
		Columns("id", "requester_id", "employee_id", "company_id", "tool_id", "session_id", "status").
		Values(id.String(), r.RequesterID, r.EmployeeID, r.CompanyID, r.ToolID, r.SessionID, types.StatusNew).
		Suffix("RETURNING " + requestColumns).
		QueryRowContext(ctx).
		Scan(&created.ID, &created.RequesterID, &created.EmployeeID, &created.CompanyID, &created.ToolID,
			&created.SessionID, &created.Status, &created.Cancelled, &created.CreatedAt, &created.UpdatedAt)

	if err != nil {
		if IsForeignKeyViolation(err) {
			return nil, ErrForeignKeyViolation
		}
		return nil, fmt.Errorf("failed to insert request: %w", err)
	}

	return &created, nil
}

func (s *Storage) GetRequestByID(ctx context.Context, id string) (*types.TenantRequest, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetRequestByID")
	defer span.End()

	var r types.TenantRequest
	err := s.db.Statement(ctx).
		Select("id", "requester_id", "employee_id", "company_id", "tool_id", "session_id", "status", "cancelled", "created_at", "updated_at").
		From("tenant_requests").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx).
		Scan(&r.ID, &r.RequesterID, &r.EmployeeID, &r.CompanyID, &r.ToolID,
			&r.SessionID, &r.Status, &r.Cancelled, &r.CreatedAt, &r.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get request: %w", err)
	}

	return &r, nil
}

// ListRequests returns one page of requests, newest first, plus the total row
// count so list consumers can render pagination.
func (s *Storage) ListRequests(ctx context.Context, page, size uint64) ([]*types.TenantRequest, int64, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListRequests")
	defer span.End()

	var total int64
	err := s.db.Statement(ctx).
		Select("COUNT(*)").
		From("tenant_requests").
		QueryRowContext(ctx).
		Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count requests: %w", err)
	}

	if page < 1 {
		page = 1
	}
	requests, err := s.listRequests(ctx, nil, size, (page-1)*size)
	if err != nil {
		return nil, 0, err
	}

	return requests, total, nil
}

func (s *Storage) ListRequestsByRequesterID(ctx context.Context, requesterID string) ([]*types.TenantRequest, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListRequestsByRequesterID")
	defer span.End()

	return s.listRequests(ctx, sq.Eq{"requester_id": requesterID}, 0, 0)
}

func (s *Storage) listRequests(ctx context.Context, pred sq.Eq, limit, offset uint64) ([]*types.TenantRequest, error) {
	query := s.db.Statement(ctx).
		Select("id", "requester_id", "employee_id", "company_id", "tool_id", "session_id", "status", "cancelled", "created_at", "updated_at").
		From("tenant_requests").
		OrderBy("created_at DESC")

	if pred != nil {
		query = query.Where(pred)
	}
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}

	rows, err := query.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list requests: %w", err)
	}
	defer rows.Close()

	var requests []*types.TenantRequest
	for rows.Next() {
		var r types.TenantRequest
		if err := rows.Scan(&r.ID, &r.RequesterID, &r.EmployeeID, &r.CompanyID, &r.ToolID,
			&r.SessionID, &r.Status, &r.Cancelled, &r.CreatedAt, &r.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan request: %w", err)
		}
		requests = append(requests, &r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return requests, nil
}

// TransitionRequestStatus moves a request from one of the given source states
// to the target state as a single conditional update. The cancelled guard is
// part of the same statement so a racing cancel always wins: by the time the
// update commits, a cancelled row no longer matches and zero rows are
// affected.
func (s *Storage) TransitionRequestStatus(ctx context.Context, id string, from []types.RequestStatus, to types.RequestStatus) (int64, error) {
	ctx, span := s.tracer.Start(ctx, "storage.TransitionRequestStatus")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("tenant_requests").
		Set("status", to).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id, "cancelled": false}).
		Where(sq.Eq{"status": from}).
		ExecContext(ctx)

	if err != nil {
		return 0, fmt.Errorf("failed to transition request: %w", err)
	}

	return res.RowsAffected()
}

// CancelRequest sets the cancelled flag if the caller owns the request and it
// is still in a cancellable state. Status itself is left untouched.
func (s *Storage) CancelRequest(ctx context.Context, id, requesterID string) (int64, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CancelRequest")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("tenant_requests").
		Set("cancelled", true).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{
			"id":           id,
			"requester_id": requesterID,
			"cancelled":    false,
			"status":       []types.RequestStatus{types.StatusNew, types.StatusInProgress},
		}).
		ExecContext(ctx)

	if err != nil {
		return 0, fmt.Errorf("failed to cancel request: %w", err)
	}

	return res.RowsAffected()
}

func (s *Storage) CreateAssignment(ctx context.Context, a *types.CredentialAssignment) (*types.CredentialAssignment, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateAssignment")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate assignment ID: %w", err)
	}

	var created types.CredentialAssignment
	err = s.db.Statement(ctx).
		Insert("credential_assignments").
		Columns("id", "request_id", "host", "db_name", "db_user", "password_enc", "assigned_by").
		Values(id.String(), a.RequestID, a.Host, a.Database, a.DBUser, a.PasswordEnc, a.AssignedBy).
		Suffix("RETURNING id, request_id, host, db_name, db_user, password_enc, assigned_by, assigned_at").
		QueryRowContext(ctx).
		Scan(&created.ID, &created.RequestID, &created.Host, &created.Database, &created.DBUser,
			&created.PasswordEnc, &created.AssignedBy, &created.AssignedAt)

	if err != nil {
		if IsDuplicateKeyError(err) {
			return nil, ErrDuplicateKey
		}
		if IsForeignKeyViolation(err) {
			return nil, ErrForeignKeyViolation
		}
		return nil, fmt.Errorf("failed to insert assignment: %w", err)
	}

	return &created, nil
}

func (s *Storage) GetAssignmentByRequestID(ctx context.Context, requestID string) (*types.CredentialAssignment, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetAssignmentByRequestID")
	defer span.End()

	var a types.CredentialAssignment
	err := s.db.Statement(ctx).
		Select("id", "request_id", "host", "db_name", "db_user", "password_enc", "assigned_by", "assigned_at").
		From("credential_assignments").
		Where(sq.Eq{"request_id": requestID}).
		QueryRowContext(ctx).
		Scan(&a.ID, &a.RequestID, &a.Host, &a.Database, &a.DBUser, &a.PasswordEnc, &a.AssignedBy, &a.AssignedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get assignment: %w", err)
	}

	return &a, nil
}
