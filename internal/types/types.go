// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"time"
)

type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleUser  Role = "USER"
)

// RequestStatus is the TenantRequest lifecycle state.
// Legal transitions: NR -> IP -> CP, and NR/IP -> RR. CP and RR are terminal.
type RequestStatus string

const (
	StatusNew        RequestStatus = "NR"
	StatusInProgress RequestStatus = "IP"
	StatusCompleted  RequestStatus = "CP"
	StatusRejected   RequestStatus = "RR"
)

type User struct {
	ID           string    `db:"id" json:"id"`
	Name         string    `db:"name" json:"name"`
	Email        string    `db:"email" json:"email"`
	PasswordHash *string   `db:"password_hash" json:"-"`
	Role         Role      `db:"role" json:"role"`
	FederatedID  *string   `db:"federated_id" json:"federated_id,omitempty"`
	Active       bool      `db:"active" json:"active"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

type Session struct {
	ID       string     `db:"id" json:"id"`
	UserID   string     `db:"user_id" json:"user_id"`
	Token    string     `db:"token" json:"-"`
	LoginAt  time.Time  `db:"login_at" json:"login_at"`
	LogoutAt *time.Time `db:"logout_at" json:"logout_at,omitempty"`
	Active   bool       `db:"active" json:"active"`
}

type Tool struct {
	ID               string `db:"id" json:"id"`
	Name             string `db:"name" json:"name"`
	Description      string `db:"description" json:"description"`
	Active           bool   `db:"active" json:"active"`
	UnderDevelopment bool   `db:"under_development" json:"under_development"`
}

type ToolEntitlement struct {
	ID        string     `db:"id" json:"id"`
	UserID    string     `db:"user_id" json:"user_id"`
	ToolID    string     `db:"tool_id" json:"tool_id"`
	GrantedBy string     `db:"granted_by" json:"granted_by"`
	GrantedAt time.Time  `db:"granted_at" json:"granted_at"`
	Revoked   bool       `db:"revoked" json:"revoked"`
	RevokedAt *time.Time `db:"revoked_at" json:"revoked_at,omitempty"`
}

// TenantRequest carries an orthogonal Cancelled flag next to Status.
// Once Cancelled is true no further status transition is permitted.
type TenantRequest struct {
	ID          string        `db:"id" json:"id"`
	RequesterID string        `db:"requester_id" json:"requester_id"`
	EmployeeID  string        `db:"employee_id" json:"employee_id"`
	CompanyID   string        `db:"company_id" json:"company_id"`
	ToolID      string        `db:"tool_id" json:"tool_id"`
	SessionID   string        `db:"session_id" json:"session_id"`
	Status      RequestStatus `db:"status" json:"status"`
	Cancelled   bool          `db:"cancelled" json:"cancelled"`
	CreatedAt   time.Time     `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time     `db:"updated_at" json:"updated_at"`
}

// CredentialAssignment is unique per request (request_id carries a unique
// constraint). PasswordEnc is the vault-encrypted secret, never plaintext.
type CredentialAssignment struct {
	ID          string    `db:"id" json:"id"`
	RequestID   string    `db:"request_id" json:"request_id"`
	Host        string    `db:"host" json:"host"`
	Database    string    `db:"db_name" json:"database"`
	DBUser      string    `db:"db_user" json:"db_user"`
	PasswordEnc string    `db:"password_enc" json:"-"`
	AssignedBy  string    `db:"assigned_by" json:"assigned_by"`
	AssignedAt  time.Time `db:"assigned_at" json:"assigned_at"`
}

type ServerEndpoint struct {
	ID           string `db:"id" json:"id"`
	Host         string `db:"host" json:"host"`
	AdminUser    string `db:"admin_user" json:"admin_user"`
	AdminPassEnc string `db:"admin_pass_enc" json:"-"`
	Description  string `db:"description" json:"description"`
	Active       bool   `db:"active" json:"active"`
}

type DatabaseAllowEntry struct {
	ID        string `db:"id" json:"id"`
	ServerID  string `db:"server_id" json:"server_id"`
	Database  string `db:"db_name" json:"database"`
	HasAccess bool   `db:"has_access" json:"has_access"`
	Active    bool   `db:"active" json:"active"`
}
