// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package requests

import (
	"context"
	"time"

	"github.com/canonical/ops-console/internal/types"
	"github.com/canonical/ops-console/internal/vault"
)

// CredentialInfo is the admin-supplied connection data for assignCredential.
// The password travels plaintext only between the handler and the vault.
type CredentialInfo struct {
	Host     string
	Database string
	DBUser   string
	Password string
}

// CredentialConfig is the assignment metadata returned to admins. It never
// carries the secret.
type CredentialConfig struct {
	RequestID  string    `json:"request_id"`
	Host       string    `json:"host"`
	Database   string    `json:"database"`
	DBUser     string    `json:"db_user"`
	AssignedBy string    `json:"assigned_by"`
	AssignedAt time.Time `json:"assigned_at"`
}

// RequestView is a TenantRequest enriched with the tenant's display name
// from the directory.
type RequestView struct {
	*types.TenantRequest
	CompanyName string `json:"company_name,omitempty"`
}

// PagedRequests is one page of the admin list view plus the total row count.
type PagedRequests struct {
	Items []*RequestView `json:"items"`
	Total int64          `json:"total"`
}

type ServiceInterface interface {
	Submit(ctx context.Context, requesterID, employeeID, companyID, toolID, sessionID string) (*types.TenantRequest, error)
	// Accept moves NR -> IP. Reject moves NR/IP -> RR. Both fail with
	// ErrIllegalTransition when the request is cancelled or out of state.
	Accept(ctx context.Context, requestID, adminID string) error
	Reject(ctx context.Context, requestID, adminID string) error
	// AssignCredential inserts the encrypted assignment and flips IP -> CP
	// in one transaction; a reader never sees one without the other.
	AssignCredential(ctx context.Context, requestID, adminID string, info CredentialInfo) (*types.CredentialAssignment, error)
	// Cancel sets the cancelled flag; only the owning requester may call it
	// and only from NR or IP. Status is left untouched.
	Cancel(ctx context.Context, requestID, requesterID string) error
	Get(ctx context.Context, requestID string) (*types.TenantRequest, error)
	ListAll(ctx context.Context, page, size uint64) (*PagedRequests, error)
	ListMine(ctx context.Context, requesterID string) ([]*RequestView, error)
	CredentialConfig(ctx context.Context, requestID string) (*CredentialConfig, error)
}

type StorageInterface interface {
	GetToolByID(ctx context.Context, id string) (*types.Tool, error)
	CreateRequest(ctx context.Context, r *types.TenantRequest) (*types.TenantRequest, error)
	GetRequestByID(ctx context.Context, id string) (*types.TenantRequest, error)
	ListRequests(ctx context.Context, page, size uint64) ([]*types.TenantRequest, int64, error)
	ListRequestsByRequesterID(ctx context.Context, requesterID string) ([]*types.TenantRequest, error)
	TransitionRequestStatus(ctx context.Context, id string, from []types.RequestStatus, to types.RequestStatus) (int64, error)
	CancelRequest(ctx context.Context, id, requesterID string) (int64, error)
	CreateAssignment(ctx context.Context, a *types.CredentialAssignment) (*types.CredentialAssignment, error)
	GetAssignmentByRequestID(ctx context.Context, requestID string) (*types.CredentialAssignment, error)
}

// EntitlementsInterface is the tool-access check consulted on submit.
type EntitlementsInterface interface {
	HasAccess(ctx context.Context, userID, toolID string) (bool, error)
}

// DirectoryInterface is the boundary to the out-of-scope company/employee
// tables: existence checks on submit and display names on list views.
type DirectoryInterface interface {
	CompanyActive(ctx context.Context, id string) (bool, error)
	EmployeeExists(ctx context.Context, id string) (bool, error)
	CompanyNamesByIDs(ctx context.Context, ids []string) (map[string]string, error)
}

// VaultInterface narrows the credential vault to what assignment needs.
type VaultInterface interface {
	Store(plaintext string) (vault.Secret, error)
}

// TxRunner runs a function inside one database transaction.
type TxRunner interface {
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error
}
